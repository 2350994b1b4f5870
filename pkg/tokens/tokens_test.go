package tokens

import (
	"testing"
)

func TestConsumeFromFull(t *testing.T) {
	l := Ledger{}
	l.EnsureFreshToday("2024-06-10")

	for i := 0; i < Max; i++ {
		if !l.Consume() {
			t.Fatalf("consume %d should succeed", i+1)
		}
	}
	for i := 0; i < 5; i++ {
		if l.Consume() {
			t.Fatalf("consume past empty should fail")
		}
	}
	if l.Count != 0 {
		t.Fatalf("count should bottom out at 0, got %d", l.Count)
	}
}

func TestRefillOncePerDay(t *testing.T) {
	l := Ledger{}
	if !l.EnsureFreshToday("2024-06-10") {
		t.Fatalf("first touch of the day should refill")
	}
	l.Consume()
	if l.EnsureFreshToday("2024-06-10") {
		t.Fatalf("same day must not refill again")
	}
	if l.Count != Max-1 {
		t.Fatalf("count should survive repeated same-day checks, got %d", l.Count)
	}

	if !l.EnsureFreshToday("2024-06-11") {
		t.Fatalf("day boundary should refill")
	}
	if l.Count != Max {
		t.Fatalf("refill should restore %d, got %d", Max, l.Count)
	}
}

func TestZeroValueRefillsImmediately(t *testing.T) {
	// A corrupt or missing persisted value decodes to the zero ledger; its
	// empty refill date never matches today, so the first touch grants a
	// full quota.
	l := Ledger{}
	if !l.EnsureFreshToday("2024-06-10") {
		t.Fatalf("zero value should refill on first touch")
	}
	if l.Count != Max {
		t.Fatalf("expected %d tokens, got %d", Max, l.Count)
	}
}
