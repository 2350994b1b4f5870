package stats

import (
	"testing"

	"tableflip.dev/lactivity/pkg/activity"
	"tableflip.dev/lactivity/pkg/ledger"
	"tableflip.dev/lactivity/pkg/survival"
)

func catalog(names ...string) activity.Catalog {
	c := activity.Catalog{}
	for _, n := range names {
		c.Add(n)
	}
	return c
}

func TestComputeSingleDay(t *testing.T) {
	// Survival {8,2,2} leaves 12 available; gym 2 + work 6 logs 8, loss 4.
	acts := catalog("gym", "work")
	gym, _ := acts.Find("gym")
	work, _ := acts.Find("work")

	l := ledger.Ledger{}
	l.LogHours("2024-06-10", gym.ID, 2)
	l.LogHours("2024-06-10", work.ID, 6)

	s := Compute(l, survival.Default(), []string{"2024-06-10"}, acts)

	if s.TotalLogged != 8 {
		t.Fatalf("expected 8 logged, got %v", s.TotalLogged)
	}
	if s.TotalLoss != 4 {
		t.Fatalf("expected loss 4, got %v", s.TotalLoss)
	}
	if s.TotalAvailable != 12 {
		t.Fatalf("expected 12 available, got %v", s.TotalAvailable)
	}
	if s.Efficiency != 67 {
		t.Fatalf("expected efficiency 67, got %d", s.Efficiency)
	}

	want := map[string]float64{"gym": 2, "work": 6, "Loss": 4}
	if len(s.Distribution) != len(want) {
		t.Fatalf("expected %d slices, got %d", len(want), len(s.Distribution))
	}
	for _, slice := range s.Distribution {
		if slice.Hours != want[slice.Name] {
			t.Fatalf("slice %s: expected %v, got %v", slice.Name, want[slice.Name], slice.Hours)
		}
	}
}

func TestDistributionExcludesZeroCategories(t *testing.T) {
	acts := catalog("gym", "idle")
	gym, _ := acts.Find("gym")

	l := ledger.Ledger{}
	l.LogHours("2024-06-10", gym.ID, 12)

	s := Compute(l, survival.Default(), []string{"2024-06-10"}, acts)
	for _, slice := range s.Distribution {
		if slice.Name == "idle" {
			t.Fatalf("zero-valued category must be excluded")
		}
		if slice.Name == "Loss" {
			t.Fatalf("zero loss must be excluded")
		}
	}
}

func TestLossNeverNegative(t *testing.T) {
	acts := catalog("work")
	work, _ := acts.Find("work")

	l := ledger.Ledger{}
	l.LogHours("2024-06-10", work.ID, 20) // overtime past the 12h ceiling

	s := Compute(l, survival.Default(), []string{"2024-06-10"}, acts)
	for _, d := range s.Days {
		if d.Loss < 0 {
			t.Fatalf("day %s: loss went negative: %v", d.Date, d.Loss)
		}
	}
	if s.TotalLoss != 0 {
		t.Fatalf("overtime day should have zero loss, got %v", s.TotalLoss)
	}
}

func TestEfficiencyZeroWhenNothingAvailable(t *testing.T) {
	acts := catalog("work")
	work, _ := acts.Find("work")

	l := ledger.Ledger{}
	l.LogHours("2024-06-10", work.ID, 5)

	oversubscribed := survival.Budget{Sleep: 12, Mobile: 8, Pass: 8}
	s := Compute(l, oversubscribed, []string{"2024-06-10"}, acts)
	if s.Efficiency != 0 {
		t.Fatalf("efficiency must be 0 with no available hours, got %d", s.Efficiency)
	}
	if s.TotalLoss != 0 {
		t.Fatalf("loss must clamp to 0 with no available hours, got %v", s.TotalLoss)
	}
}

func TestOrphanedEntriesDoNotCount(t *testing.T) {
	acts := catalog("gym")
	gym, _ := acts.Find("gym")

	l := ledger.Ledger{}
	l.LogHours("2024-06-10", gym.ID, 2)
	l.LogHours("2024-06-10", "deleted-activity-id", 5)

	s := Compute(l, survival.Default(), []string{"2024-06-10"}, acts)
	if s.TotalLogged != 2 {
		t.Fatalf("orphaned history must not count, got %v logged", s.TotalLogged)
	}
}

func TestComputeWeekRange(t *testing.T) {
	acts := catalog("work")
	work, _ := acts.Find("work")

	l := ledger.Ledger{}
	week := []string{
		"2024-06-10", "2024-06-11", "2024-06-12", "2024-06-13",
		"2024-06-14", "2024-06-15", "2024-06-16",
	}
	l.LogHours("2024-06-10", work.ID, 6)
	l.LogHours("2024-06-11", work.ID, 12)

	s := Compute(l, survival.Default(), week, acts)
	if len(s.Days) != 7 {
		t.Fatalf("expected 7 day stats, got %d", len(s.Days))
	}
	if s.TotalLogged != 18 {
		t.Fatalf("expected 18 logged, got %v", s.TotalLogged)
	}
	if s.TotalAvailable != 84 {
		t.Fatalf("expected 84 available, got %v", s.TotalAvailable)
	}
	// 5 empty days lose 12 each, Monday loses 6, Tuesday loses 0.
	if s.TotalLoss != 66 {
		t.Fatalf("expected loss 66, got %v", s.TotalLoss)
	}
	if s.Efficiency != 21 {
		t.Fatalf("expected efficiency 21, got %d", s.Efficiency)
	}
}
