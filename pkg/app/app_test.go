package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/lactivity/pkg/activity"
	"tableflip.dev/lactivity/pkg/badge"
	"tableflip.dev/lactivity/pkg/ledger"
	"tableflip.dev/lactivity/pkg/policy"
	"tableflip.dev/lactivity/pkg/store"
	"tableflip.dev/lactivity/pkg/survival"
	"tableflip.dev/lactivity/pkg/theme"
	"tableflip.dev/lactivity/pkg/tokens"
)

// memoryPersistence keeps everything in process for tests.
type memoryPersistence struct {
	activities   activity.Catalog
	entries      ledger.Ledger
	budget       survival.Budget
	tokens       tokens.Ledger
	achievements []badge.Achievement
	theme        theme.Theme
	columnSize   int
}

func newMemoryPersistence() *memoryPersistence {
	return &memoryPersistence{
		entries:    ledger.Ledger{},
		budget:     survival.Default(),
		theme:      theme.Default(),
		columnSize: store.DefaultColumnSize,
	}
}

func (m *memoryPersistence) Activities(_ context.Context) activity.Catalog { return m.activities }
func (m *memoryPersistence) SaveActivities(a activity.Catalog) error       { m.activities = a; return nil }
func (m *memoryPersistence) Entries(_ context.Context) ledger.Ledger       { return m.entries }
func (m *memoryPersistence) SaveEntries(l ledger.Ledger) error             { m.entries = l; return nil }
func (m *memoryPersistence) Survival(_ context.Context) survival.Budget    { return m.budget }
func (m *memoryPersistence) SaveSurvival(b survival.Budget) error          { m.budget = b; return nil }
func (m *memoryPersistence) Tokens(_ context.Context) tokens.Ledger        { return m.tokens }
func (m *memoryPersistence) SaveTokens(t tokens.Ledger) error              { m.tokens = t; return nil }
func (m *memoryPersistence) Achievements(_ context.Context) []badge.Achievement {
	return m.achievements
}
func (m *memoryPersistence) SaveAchievements(a []badge.Achievement) error { m.achievements = a; return nil }
func (m *memoryPersistence) Theme(_ context.Context) theme.Theme          { return m.theme }
func (m *memoryPersistence) SaveTheme(t theme.Theme) error                { m.theme = t; return nil }
func (m *memoryPersistence) ColumnSize(_ context.Context) int             { return m.columnSize }
func (m *memoryPersistence) SaveColumnSize(px int) error                  { m.columnSize = px; return nil }
func (m *memoryPersistence) Watch(_ context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	close(ch)
	return ch, nil
}

// newService pins the clock to 2024-06-10 noon local time.
func newService(mp *memoryPersistence) *Service {
	svc := New(mp)
	svc.Now = func() time.Time {
		return time.Date(2024, 6, 10, 12, 0, 0, 0, time.Local)
	}
	return svc
}

func TestLogHoursToday(t *testing.T) {
	ctx := context.Background()
	mp := newMemoryPersistence()
	svc := newService(mp)

	a, err := svc.AddActivity(ctx, "gym")
	if err != nil {
		t.Fatalf("add activity: %v", err)
	}

	fresh, err := svc.LogHours(ctx, "2024-06-10", "gym", 2, false)
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	if mp.entries.Day("2024-06-10")[a.ID] != 2 {
		t.Fatalf("hours not persisted")
	}
	// First entry ever earns the spark toast.
	if len(fresh) != 1 || fresh[0].ID != "spark" {
		t.Fatalf("expected spark toast, got %v", fresh)
	}
}

func TestLogHoursUnknownActivity(t *testing.T) {
	ctx := context.Background()
	svc := newService(newMemoryPersistence())
	if _, err := svc.LogHours(ctx, "2024-06-10", "nope", 1, false); !errors.Is(err, ErrUnknownActivity) {
		t.Fatalf("expected ErrUnknownActivity, got %v", err)
	}
}

func TestLogHoursYesterdayFreely(t *testing.T) {
	ctx := context.Background()
	mp := newMemoryPersistence()
	svc := newService(mp)
	svc.AddActivity(ctx, "gym")

	if _, err := svc.LogHours(ctx, "2024-06-09", "gym", 1, false); err != nil {
		t.Fatalf("yesterday should need no token: %v", err)
	}
	if mp.tokens.Count != 0 || mp.tokens.LastRefill != "" {
		t.Fatalf("no token activity expected, got %+v", mp.tokens)
	}
}

func TestLogHoursFutureDenied(t *testing.T) {
	ctx := context.Background()
	mp := newMemoryPersistence()
	svc := newService(mp)
	svc.AddActivity(ctx, "gym")

	_, err := svc.LogHours(ctx, "2024-06-11", "gym", 1, true)
	if !errors.Is(err, policy.ErrFutureDay) {
		t.Fatalf("expected ErrFutureDay, got %v", err)
	}
	if len(mp.entries) != 0 {
		t.Fatalf("denied write must not touch the ledger")
	}
}

func TestLogHoursDistantPastNeedsToken(t *testing.T) {
	ctx := context.Background()
	mp := newMemoryPersistence()
	svc := newService(mp)
	a, _ := svc.AddActivity(ctx, "gym")

	// Without the flag: locked.
	_, err := svc.LogHours(ctx, "2024-06-01", "gym", 1, false)
	if !errors.Is(err, policy.ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}

	// With the flag: token spent, write lands.
	if _, err := svc.LogHours(ctx, "2024-06-01", "gym", 1, true); err != nil {
		t.Fatalf("unlock-and-log: %v", err)
	}
	if mp.tokens.Count != tokens.Max-1 {
		t.Fatalf("expected one token spent, count %d", mp.tokens.Count)
	}
	if mp.entries.Day("2024-06-01")[a.ID] != 1 {
		t.Fatalf("hours not persisted after unlock")
	}

	// Cell stays open for the rest of the session.
	if _, err := svc.LogHours(ctx, "2024-06-01", "gym", 2, false); err != nil {
		t.Fatalf("unlocked cell should stay editable: %v", err)
	}
	if mp.tokens.Count != tokens.Max-1 {
		t.Fatalf("no second token should be spent, count %d", mp.tokens.Count)
	}
}

func TestLogHoursTokenExhaustion(t *testing.T) {
	ctx := context.Background()
	mp := newMemoryPersistence()
	mp.tokens = tokens.Ledger{Count: 0, LastRefill: "2024-06-10"}
	svc := newService(mp)
	svc.AddActivity(ctx, "gym")

	_, err := svc.LogHours(ctx, "2024-06-01", "gym", 1, true)
	if !errors.Is(err, policy.ErrNoTokens) {
		t.Fatalf("expected ErrNoTokens, got %v", err)
	}
	if len(mp.entries) != 0 {
		t.Fatalf("denied write must not touch the ledger")
	}
}

func TestSessionResetRelocksWithoutRefund(t *testing.T) {
	ctx := context.Background()
	mp := newMemoryPersistence()
	svc := newService(mp)
	svc.AddActivity(ctx, "gym")

	if _, err := svc.LogHours(ctx, "2024-06-01", "gym", 1, true); err != nil {
		t.Fatalf("unlock-and-log: %v", err)
	}

	// New Service over the same store models a restart.
	svc2 := newService(mp)
	_, err := svc2.LogHours(ctx, "2024-06-01", "gym", 2, false)
	if !errors.Is(err, policy.ErrLocked) {
		t.Fatalf("restart should re-lock the cell, got %v", err)
	}
	if mp.tokens.Count != tokens.Max-1 {
		t.Fatalf("restart must not refund the token, count %d", mp.tokens.Count)
	}
}

func TestBadgeProgression(t *testing.T) {
	ctx := context.Background()
	mp := newMemoryPersistence()
	svc := newService(mp)
	svc.AddActivity(ctx, "gym")

	// Yesterday and today: spark only.
	if _, err := svc.LogHours(ctx, "2024-06-09", "gym", 1, false); err != nil {
		t.Fatalf("log: %v", err)
	}
	fresh, err := svc.LogHours(ctx, "2024-06-10", "gym", 1, false)
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	for _, a := range fresh {
		if a.ID == "momentum" {
			t.Fatalf("two days must not earn momentum")
		}
	}

	// Third consecutive day (via token) completes the streak.
	fresh, err = svc.LogHours(ctx, "2024-06-08", "gym", 1, true)
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	var momentum bool
	for _, a := range fresh {
		if a.ID == "momentum" {
			momentum = true
		}
	}
	if !momentum {
		t.Fatalf("three-day streak should earn momentum, got %v", fresh)
	}

	// Logging again re-evaluates with no new unlocks.
	fresh, err = svc.LogHours(ctx, "2024-06-10", "gym", 2, false)
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	if len(fresh) != 0 {
		t.Fatalf("re-evaluation must not duplicate badges, got %v", fresh)
	}
	if len(mp.achievements) != 2 {
		t.Fatalf("expected spark+momentum persisted, got %v", mp.achievements)
	}
}

func TestTokensRemainingRefillsLazily(t *testing.T) {
	ctx := context.Background()
	mp := newMemoryPersistence()
	mp.tokens = tokens.Ledger{Count: 1, LastRefill: "2024-06-09"}
	svc := newService(mp)

	n, err := svc.TokensRemaining(ctx)
	if err != nil {
		t.Fatalf("tokens: %v", err)
	}
	if n != tokens.Max {
		t.Fatalf("day boundary should refill to %d, got %d", tokens.Max, n)
	}
	if mp.tokens.LastRefill != "2024-06-10" {
		t.Fatalf("refill date not persisted: %+v", mp.tokens)
	}
}

func TestStatsEndToEnd(t *testing.T) {
	ctx := context.Background()
	mp := newMemoryPersistence()
	svc := newService(mp)
	svc.AddActivity(ctx, "gym")
	svc.AddActivity(ctx, "work")

	svc.LogHours(ctx, "2024-06-10", "gym", 2, false)
	svc.LogHours(ctx, "2024-06-10", "work", 6, false)

	s, err := svc.Stats(ctx, []string{"2024-06-10"})
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if s.TotalLogged != 8 || s.TotalLoss != 4 {
		t.Fatalf("expected 8 logged / 4 loss, got %v / %v", s.TotalLogged, s.TotalLoss)
	}
}

func TestNilPersistence(t *testing.T) {
	ctx := context.Background()
	svc := New(nil)
	if _, err := svc.Activities(ctx); !errors.Is(err, ErrNoPersistence) {
		t.Fatalf("expected ErrNoPersistence, got %v", err)
	}
	if _, err := svc.LogHours(ctx, "2024-06-10", "gym", 1, false); !errors.Is(err, ErrNoPersistence) {
		t.Fatalf("expected ErrNoPersistence, got %v", err)
	}
}
