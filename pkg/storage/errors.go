package storage

import "errors"

// ErrAccountNotFound is returned when no account exists for the given ID.
var ErrAccountNotFound = errors.New("account not found")

// ErrDuplicateAccount is returned when creating an account whose ID already exists.
var ErrDuplicateAccount = errors.New("account already exists")

// ErrTransactionNotFound is returned when no transaction exists for the given ID.
var ErrTransactionNotFound = errors.New("transaction not found")
