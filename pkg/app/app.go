// Package app provides high-level tracker operations. It wraps persistence
// and the metric engines so the CLI runners and the dashboard UI share one
// mutation path: every write goes through the edit policy, and every
// successful write re-evaluates achievements.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/lactivity/pkg/activity"
	"tableflip.dev/lactivity/pkg/badge"
	"tableflip.dev/lactivity/pkg/dates"
	"tableflip.dev/lactivity/pkg/ledger"
	"tableflip.dev/lactivity/pkg/policy"
	"tableflip.dev/lactivity/pkg/stats"
	"tableflip.dev/lactivity/pkg/store"
	"tableflip.dev/lactivity/pkg/survival"
	"tableflip.dev/lactivity/pkg/theme"
)

var (
	ErrNoPersistence   = errors.New("app: no persistence configured")
	ErrUnknownActivity = errors.New("app: unknown activity")
)

// Service owns the session state: the unlock set lives here and dies with
// the process, while the token count it spends from is durable.
type Service struct {
	Persistence store.Persistence

	// Now is the clock; tests pin it.
	Now func() time.Time

	session *policy.Session
}

func New(p store.Persistence) *Service {
	return &Service{
		Persistence: p,
		Now:         time.Now,
		session:     policy.NewSession(),
	}
}

// Today returns the current day key.
func (s *Service) Today() string {
	return dates.Key(s.Now())
}

func (s *Service) Activities(ctx context.Context) (activity.Catalog, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.Activities(ctx), nil
}

// AddActivity creates an activity and persists the catalog.
func (s *Service) AddActivity(ctx context.Context, name string) (activity.Activity, error) {
	if s.Persistence == nil {
		return activity.Activity{}, ErrNoPersistence
	}
	acts := s.Persistence.Activities(ctx)
	a, err := acts.Add(name)
	if err != nil {
		return activity.Activity{}, err
	}
	if err := s.Persistence.SaveActivities(acts); err != nil {
		return activity.Activity{}, err
	}
	return a, nil
}

// RemoveActivity hides the activity from the catalog. Its ledger history
// stays put; only the column disappears.
func (s *Service) RemoveActivity(ctx context.Context, nameOrID string) (activity.Activity, error) {
	if s.Persistence == nil {
		return activity.Activity{}, ErrNoPersistence
	}
	acts := s.Persistence.Activities(ctx)
	a, ok := acts.Remove(nameOrID)
	if !ok {
		return activity.Activity{}, fmt.Errorf("%w: %q", ErrUnknownActivity, nameOrID)
	}
	if err := s.Persistence.SaveActivities(acts); err != nil {
		return activity.Activity{}, err
	}
	return a, nil
}

// LogHours records hours for one cell, honoring the edit policy. With
// spendToken set, a locked cell is unlocked first when the quota allows.
// Newly earned badges come back so callers can toast the first one.
func (s *Service) LogHours(ctx context.Context, day, nameOrID string, hours float64, spendToken bool) ([]badge.Achievement, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	acts := s.Persistence.Activities(ctx)
	a, ok := acts.Find(nameOrID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownActivity, nameOrID)
	}

	today := s.Today()
	cell := policy.Cell{Date: day, ActivityID: a.ID}

	if err := s.session.Permit(today, cell); err != nil {
		if !errors.Is(err, policy.ErrLocked) || !spendToken {
			return nil, err
		}
		if err := s.unlock(ctx, today, cell); err != nil {
			return nil, err
		}
	}

	entries := s.Persistence.Entries(ctx)
	entries.LogHours(day, a.ID, hours)
	if err := s.Persistence.SaveEntries(entries); err != nil {
		return nil, err
	}

	return s.evaluateBadges(ctx, entries)
}

// Unlock spends a token on the given cell for the rest of the session.
func (s *Service) Unlock(ctx context.Context, day, nameOrID string) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	acts := s.Persistence.Activities(ctx)
	a, ok := acts.Find(nameOrID)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownActivity, nameOrID)
	}
	return s.unlock(ctx, s.Today(), policy.Cell{Date: day, ActivityID: a.ID})
}

func (s *Service) unlock(ctx context.Context, today string, cell policy.Cell) error {
	tk := s.Persistence.Tokens(ctx)
	if tk.EnsureFreshToday(today) {
		if err := s.Persistence.SaveTokens(tk); err != nil {
			return err
		}
	}
	if err := s.session.RequestUnlock(today, cell, &tk); err != nil {
		return err
	}
	return s.Persistence.SaveTokens(tk)
}

// Permit reports the policy decision for a cell without changing anything.
func (s *Service) Permit(day, activityID string) error {
	return s.session.Permit(s.Today(), policy.Cell{Date: day, ActivityID: activityID})
}

func (s *Service) evaluateBadges(ctx context.Context, entries ledger.Ledger) ([]badge.Achievement, error) {
	have := s.Persistence.Achievements(ctx)
	fresh := badge.Evaluate(entries.Dates(), have, s.Now())
	if len(fresh) == 0 {
		return nil, nil
	}
	if err := s.Persistence.SaveAchievements(append(have, fresh...)); err != nil {
		return nil, err
	}
	return fresh, nil
}

// Stats computes the summary for the given range of day keys.
func (s *Service) Stats(ctx context.Context, days []string) (stats.Summary, error) {
	if s.Persistence == nil {
		return stats.Summary{}, ErrNoPersistence
	}
	return stats.Compute(
		s.Persistence.Entries(ctx),
		s.Persistence.Survival(ctx),
		days,
		s.Persistence.Activities(ctx),
	), nil
}

func (s *Service) Survival(ctx context.Context) (survival.Budget, error) {
	if s.Persistence == nil {
		return survival.Budget{}, ErrNoPersistence
	}
	return s.Persistence.Survival(ctx), nil
}

func (s *Service) SetSurvival(ctx context.Context, b survival.Budget) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	return s.Persistence.SaveSurvival(b)
}

// TokensRemaining applies the lazy daily refill and reports the count.
func (s *Service) TokensRemaining(ctx context.Context) (int, error) {
	if s.Persistence == nil {
		return 0, ErrNoPersistence
	}
	tk := s.Persistence.Tokens(ctx)
	if tk.EnsureFreshToday(s.Today()) {
		if err := s.Persistence.SaveTokens(tk); err != nil {
			return 0, err
		}
	}
	return tk.Count, nil
}

// Badges returns the unlocked set and the current streak length.
func (s *Service) Badges(ctx context.Context) ([]badge.Achievement, int, error) {
	if s.Persistence == nil {
		return nil, 0, ErrNoPersistence
	}
	streak := badge.Streak(s.Persistence.Entries(ctx).Dates())
	return s.Persistence.Achievements(ctx), streak, nil
}

func (s *Service) Entries(ctx context.Context) (ledger.Ledger, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.Entries(ctx), nil
}

func (s *Service) Theme(ctx context.Context) (theme.Theme, error) {
	if s.Persistence == nil {
		return theme.Default(), ErrNoPersistence
	}
	return s.Persistence.Theme(ctx), nil
}

func (s *Service) SetTheme(ctx context.Context, t theme.Theme) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	return s.Persistence.SaveTheme(t)
}

func (s *Service) ColumnSize(ctx context.Context) (int, error) {
	if s.Persistence == nil {
		return 0, ErrNoPersistence
	}
	return s.Persistence.ColumnSize(ctx), nil
}

func (s *Service) SetColumnSize(ctx context.Context, px int) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	return s.Persistence.SaveColumnSize(px)
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.Watch(ctx)
}
