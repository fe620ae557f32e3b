package interest

import "sync"

// Assignments maps accounts to their assigned strategy key. Keeping the
// assignment outside the Account record keeps the stored account plain data.
type Assignments struct {
	mu sync.Mutex
	m  map[string]string
}

// NewAssignments creates an empty assignment table.
func NewAssignments() *Assignments {
	return &Assignments{m: make(map[string]string)}
}

// Assign sets or replaces the strategy key for an account.
func (a *Assignments) Assign(accountID, strategyKey string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.m[accountID] = strategyKey
}

// Lookup returns the assigned strategy key for an account, if any.
func (a *Assignments) Lookup(accountID string) (string, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	key, ok := a.m[accountID]
	return key, ok
}
