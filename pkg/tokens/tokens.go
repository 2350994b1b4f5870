// Package tokens tracks the daily quota of edit tokens that gate
// retroactive changes to the ledger. The quota refills lazily: whoever
// touches the ledger first on a new day triggers the reset, there is no
// background timer.
package tokens

// Max is the daily token grant.
const Max = 3

type Ledger struct {
	Count      int    `json:"count"`
	LastRefill string `json:"lastRefillDate"`
}

// EnsureFreshToday resets the count to Max on the first touch of a new
// day. Callers must invoke it before any read or consume. Returns true
// when a refill happened so the caller knows to persist.
func (t *Ledger) EnsureFreshToday(today string) bool {
	if t.LastRefill == today {
		return false
	}
	t.Count = Max
	t.LastRefill = today
	return true
}

// Consume spends one token. With none left it changes nothing and reports
// false; it never errors.
func (t *Ledger) Consume() bool {
	if t.Count <= 0 {
		return false
	}
	t.Count--
	return true
}
