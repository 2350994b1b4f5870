// Package badge holds the achievement catalog and the streak engine. The
// catalog is a closed set so new badges force a conscious change here
// rather than appearing as ad hoc string ids.
package badge

import (
	"time"

	"tableflip.dev/lactivity/pkg/dates"
)

type Badge int

const (
	// Spark unlocks on the very first logged entry.
	Spark Badge = iota
	// Momentum unlocks at a three-day streak.
	Momentum
	// Orbit unlocks at a seven-day streak.
	Orbit
)

// Info describes a badge for display.
type Info struct {
	ID      string
	Name    string
	Symbol  string
	Meaning string
	// Streak is the consecutive-day threshold; 0 means any entry at all.
	Streak int
}

var catalog = []Info{
	{ID: "spark", Name: "The Spark", Symbol: "✦", Meaning: "logged your first entry"},
	{ID: "momentum", Name: "Momentum", Symbol: "➠", Meaning: "three consecutive days", Streak: 3},
	{ID: "orbit", Name: "Orbit", Symbol: "◍", Meaning: "seven consecutive days", Streak: 7},
}

func (b Badge) Info() Info {
	return catalog[b]
}

func (b Badge) String() string {
	return b.Info().ID
}

// All lists every badge in unlock order.
func All() []Badge {
	return []Badge{Spark, Momentum, Orbit}
}

// ByID resolves a stored badge id.
func ByID(id string) (Badge, bool) {
	for _, b := range All() {
		if b.Info().ID == id {
			return b, true
		}
	}
	return 0, false
}

// Achievement is one unlocked badge. The set is append-only and keyed by
// badge id; a badge unlocks at most once.
type Achievement struct {
	ID         string    `json:"id"`
	UnlockedAt time.Time `json:"unlockedAt"`
}

// Streak counts the unbroken run of populated days ending at the most
// recent one. Input is populated day keys, most recent first. A gap wider
// than one calendar day ends the walk; the historical maximum is not
// interesting, only the streak the user is currently on.
func Streak(datesDesc []string) int {
	if len(datesDesc) == 0 {
		return 0
	}
	streak := 1
	for i := 1; i < len(datesDesc); i++ {
		if dates.Gap(datesDesc[i-1], datesDesc[i]) != 1 {
			break
		}
		streak++
	}
	return streak
}

// Evaluate returns the badges newly earned by the given ledger state,
// skipping anything already in have. Running it again on the same state
// yields nothing, so callers may re-evaluate after every mutation.
func Evaluate(datesDesc []string, have []Achievement, now time.Time) []Achievement {
	if len(datesDesc) == 0 {
		return nil
	}

	owned := make(map[string]bool, len(have))
	for _, a := range have {
		owned[a.ID] = true
	}

	streak := Streak(datesDesc)

	var fresh []Achievement
	for _, b := range All() {
		info := b.Info()
		if owned[info.ID] || streak < info.Streak {
			continue
		}
		fresh = append(fresh, Achievement{ID: info.ID, UnlockedAt: now})
	}
	return fresh
}
