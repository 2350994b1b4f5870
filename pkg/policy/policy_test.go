package policy

import (
	"errors"
	"testing"

	"tableflip.dev/lactivity/pkg/tokens"
)

const today = "2024-06-10"

func TestClassifyBoundaries(t *testing.T) {
	cases := map[string]Class{
		"2024-06-10": Recent,      // today
		"2024-06-09": Recent,      // yesterday
		"2024-06-08": DistantPast, // two days back
		"2023-12-31": DistantPast,
		"2024-06-11": Future,
		"2025-01-01": Future,
	}
	for day, want := range cases {
		if got := Classify(today, day); got != want {
			t.Fatalf("Classify(%s): expected %v, got %v", day, want, got)
		}
	}
}

func TestPermitRecentNeedsNoToken(t *testing.T) {
	s := NewSession()
	for _, day := range []string{"2024-06-10", "2024-06-09"} {
		if err := s.Permit(today, Cell{Date: day, ActivityID: "gym"}); err != nil {
			t.Fatalf("day %s should be editable: %v", day, err)
		}
	}
}

func TestPermitFutureAlwaysDenied(t *testing.T) {
	s := NewSession()
	tk := &tokens.Ledger{}
	tk.EnsureFreshToday(today)
	cell := Cell{Date: "2024-06-11", ActivityID: "gym"}

	if err := s.Permit(today, cell); !errors.Is(err, ErrFutureDay) {
		t.Fatalf("expected ErrFutureDay, got %v", err)
	}
	if err := s.RequestUnlock(today, cell, tk); !errors.Is(err, ErrFutureDay) {
		t.Fatalf("tokens must not open the future, got %v", err)
	}
	if tk.Count != tokens.Max {
		t.Fatalf("denied unlock must not spend a token")
	}
}

func TestUnlockFlow(t *testing.T) {
	s := NewSession()
	tk := &tokens.Ledger{}
	tk.EnsureFreshToday(today)
	cell := Cell{Date: "2024-06-08", ActivityID: "gym"}

	if err := s.Permit(today, cell); !errors.Is(err, ErrLocked) {
		t.Fatalf("distant past should start locked, got %v", err)
	}
	if err := s.RequestUnlock(today, cell, tk); err != nil {
		t.Fatalf("unlock with tokens available: %v", err)
	}
	if tk.Count != tokens.Max-1 {
		t.Fatalf("unlock should cost one token, count %d", tk.Count)
	}
	if err := s.Permit(today, cell); err != nil {
		t.Fatalf("unlocked cell should be editable: %v", err)
	}

	// Unlocks are per cell: a sibling cell on the same day stays locked.
	other := Cell{Date: "2024-06-08", ActivityID: "work"}
	if err := s.Permit(today, other); !errors.Is(err, ErrLocked) {
		t.Fatalf("sibling cell should still be locked, got %v", err)
	}
}

func TestUnlockIdempotentWithinSession(t *testing.T) {
	s := NewSession()
	tk := &tokens.Ledger{}
	tk.EnsureFreshToday(today)
	cell := Cell{Date: "2024-06-01", ActivityID: "gym"}

	if err := s.RequestUnlock(today, cell, tk); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if err := s.RequestUnlock(today, cell, tk); err != nil {
		t.Fatalf("re-unlock: %v", err)
	}
	if tk.Count != tokens.Max-1 {
		t.Fatalf("re-unlocking the same cell must not spend again, count %d", tk.Count)
	}
}

func TestUnlockExhaustedQuota(t *testing.T) {
	s := NewSession()
	tk := &tokens.Ledger{Count: 0, LastRefill: today}
	cell := Cell{Date: "2024-06-01", ActivityID: "gym"}

	err := s.RequestUnlock(today, cell, tk)
	if !errors.Is(err, ErrNoTokens) {
		t.Fatalf("expected ErrNoTokens, got %v", err)
	}
	// Denials are distinguishable: the cell is still merely locked.
	if err := s.Permit(today, cell); !errors.Is(err, ErrLocked) {
		t.Fatalf("failed unlock must leave the cell locked, got %v", err)
	}
}

func TestSessionResetRelocks(t *testing.T) {
	tk := &tokens.Ledger{}
	tk.EnsureFreshToday(today)
	cell := Cell{Date: "2024-06-01", ActivityID: "gym"}

	s := NewSession()
	if err := s.RequestUnlock(today, cell, tk); err != nil {
		t.Fatalf("unlock: %v", err)
	}

	// A fresh session models a reload: the token stays spent, the cell
	// locks again.
	fresh := NewSession()
	if err := fresh.Permit(today, cell); !errors.Is(err, ErrLocked) {
		t.Fatalf("new session should re-lock the cell, got %v", err)
	}
	if tk.Count != tokens.Max-1 {
		t.Fatalf("session reset must not refund tokens, count %d", tk.Count)
	}
}
