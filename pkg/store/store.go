// Package store persists tracker state as JSON values in a diskv-backed
// key-value store. Every read has a well-defined default, so missing or
// corrupt values degrade to absence and the tracker always starts.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/lactivity/pkg/activity"
	"tableflip.dev/lactivity/pkg/badge"
	"tableflip.dev/lactivity/pkg/ledger"
	"tableflip.dev/lactivity/pkg/survival"
	"tableflip.dev/lactivity/pkg/theme"
	"tableflip.dev/lactivity/pkg/tokens"
)

// Durable-state keys. These seven are the whole storage contract.
const (
	KeyActivities   = "activities"
	KeyEntries      = "entries"
	KeySurvival     = "survival-config"
	KeyTokens       = "tokens"
	KeyAchievements = "achievements"
	KeyTheme        = "theme"
	KeyColumnSize   = "column-size"
)

// Column width bounds for the grid, UI-only.
const (
	DefaultColumnSize = 120
	MinColumnSize     = 80
	MaxColumnSize     = 300
)

// Persistence is the durable-state contract for the tracker.
type Persistence interface {
	Activities(ctx context.Context) activity.Catalog
	SaveActivities(acts activity.Catalog) error
	Entries(ctx context.Context) ledger.Ledger
	SaveEntries(l ledger.Ledger) error
	Survival(ctx context.Context) survival.Budget
	SaveSurvival(b survival.Budget) error
	Tokens(ctx context.Context) tokens.Ledger
	SaveTokens(t tokens.Ledger) error
	Achievements(ctx context.Context) []badge.Achievement
	SaveAchievements(a []badge.Achievement) error
	Theme(ctx context.Context) theme.Theme
	SaveTheme(t theme.Theme) error
	ColumnSize(ctx context.Context) int
	SaveColumnSize(px int) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return nil }, // flat: one file per key
		CacheSizeMax: 1024 * 1024,                          // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

// read unmarshals the key into v. Missing keys are silent; corrupt values
// are reported and then treated as absent.
func (p *persistence) read(key string, v interface{}) bool {
	data, err := p.d.Read(key)
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		fmt.Fprintf(os.Stderr, "store: %s: %v\n", key, err)
		return false
	}
	return true
}

func (p *persistence) write(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: marshal %s: %w", key, err)
	}
	if err := p.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (p *persistence) Activities(_ context.Context) activity.Catalog {
	var acts activity.Catalog
	if !p.read(KeyActivities, &acts) {
		return activity.Catalog{}
	}
	return acts
}

func (p *persistence) SaveActivities(acts activity.Catalog) error {
	return p.write(KeyActivities, acts)
}

func (p *persistence) Entries(_ context.Context) ledger.Ledger {
	var l ledger.Ledger
	if !p.read(KeyEntries, &l) || l == nil {
		return ledger.Ledger{}
	}
	return l
}

func (p *persistence) SaveEntries(l ledger.Ledger) error {
	return p.write(KeyEntries, l)
}

func (p *persistence) Survival(_ context.Context) survival.Budget {
	b := survival.Default()
	if !p.read(KeySurvival, &b) {
		return survival.Default()
	}
	return b
}

func (p *persistence) SaveSurvival(b survival.Budget) error {
	return p.write(KeySurvival, b)
}

func (p *persistence) Tokens(_ context.Context) tokens.Ledger {
	var t tokens.Ledger
	if !p.read(KeyTokens, &t) {
		// Zero value: empty refill date forces a full grant on first touch.
		return tokens.Ledger{}
	}
	return t
}

func (p *persistence) SaveTokens(t tokens.Ledger) error {
	return p.write(KeyTokens, t)
}

func (p *persistence) Achievements(_ context.Context) []badge.Achievement {
	var a []badge.Achievement
	if !p.read(KeyAchievements, &a) {
		return nil
	}
	return a
}

func (p *persistence) SaveAchievements(a []badge.Achievement) error {
	return p.write(KeyAchievements, a)
}

func (p *persistence) Theme(_ context.Context) theme.Theme {
	var id string
	if !p.read(KeyTheme, &id) {
		return theme.Default()
	}
	t, err := theme.Parse(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: %s: %v\n", KeyTheme, err)
		return theme.Default()
	}
	return t
}

func (p *persistence) SaveTheme(t theme.Theme) error {
	return p.write(KeyTheme, t.String())
}

func (p *persistence) ColumnSize(_ context.Context) int {
	var px int
	if !p.read(KeyColumnSize, &px) {
		return DefaultColumnSize
	}
	return clampColumnSize(px)
}

func (p *persistence) SaveColumnSize(px int) error {
	return p.write(KeyColumnSize, clampColumnSize(px))
}

func clampColumnSize(px int) int {
	if px < MinColumnSize {
		return MinColumnSize
	}
	if px > MaxColumnSize {
		return MaxColumnSize
	}
	return px
}
