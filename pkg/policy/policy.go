// Package policy decides whether a grid cell may be edited. Today and
// yesterday are always open; the future never is; anything older needs a
// per-session unlock paid for with a token.
package policy

import (
	"errors"

	"tableflip.dev/lactivity/pkg/dates"
	"tableflip.dev/lactivity/pkg/tokens"
)

// Class buckets a day relative to today.
type Class int

const (
	// Recent covers today and yesterday, editable without ceremony.
	Recent Class = iota
	// DistantPast is older than yesterday and locked by default.
	DistantPast
	// Future days are immutable, no exceptions.
	Future
)

// Classify compares day keys; the canonical key form sorts
// chronologically, so plain string comparison is enough.
func Classify(today, day string) Class {
	if day > today {
		return Future
	}
	if day == today || day == dates.Yesterday(today) {
		return Recent
	}
	return DistantPast
}

// Cell addresses one editable slot of the grid.
type Cell struct {
	Date       string
	ActivityID string
}

// Denial reasons. Callers tell them apart to show the right message:
// a locked cell can still be opened with a token, an exhausted quota and
// the future cannot.
var (
	ErrFutureDay = errors.New("policy: future days are immutable")
	ErrLocked    = errors.New("policy: day is locked, spend a token to edit it")
	ErrNoTokens  = errors.New("policy: no tokens remaining")
)

// Session holds the cells unlocked since the process started. Unlocks are
// monotonic for the life of the session and deliberately not persisted; a
// restart re-locks everything without refunding tokens.
type Session struct {
	unlocked map[Cell]struct{}
}

func NewSession() *Session {
	return &Session{unlocked: make(map[Cell]struct{})}
}

// Unlocked reports whether the cell was opened earlier this session.
func (s *Session) Unlocked(c Cell) bool {
	_, ok := s.unlocked[c]
	return ok
}

// Permit returns nil when the cell is editable right now, ErrFutureDay for
// future days, and ErrLocked for distant-past cells not yet unlocked.
func (s *Session) Permit(today string, c Cell) error {
	switch Classify(today, c.Date) {
	case Future:
		return ErrFutureDay
	case Recent:
		return nil
	default:
		if s.Unlocked(c) {
			return nil
		}
		return ErrLocked
	}
}

// RequestUnlock opens a locked cell by spending a token. Cells that are
// already editable cost nothing. A failed consume leaves everything
// unchanged and reports ErrNoTokens.
func (s *Session) RequestUnlock(today string, c Cell, t *tokens.Ledger) error {
	switch err := s.Permit(today, c); {
	case err == nil:
		return nil
	case errors.Is(err, ErrFutureDay):
		return err
	}
	if !t.Consume() {
		return ErrNoTokens
	}
	s.unlocked[c] = struct{}{}
	return nil
}
