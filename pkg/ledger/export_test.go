package ledger

import "time"

// SetNowFunc overrides the engine clock so tests can cross day boundaries.
func (e *Engine) SetNowFunc(now func() time.Time) {
	e.now = now
}
