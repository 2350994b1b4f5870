// Package activity holds the user-defined activity catalog. Activities are
// the columns of the tracker grid; deleting one hides it from the grid but
// leaves its logged history in the ledger untouched.
package activity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Palette is the rotation of chart colors assigned to new activities.
var Palette = []string{
	"#8b5cf6", // violet
	"#3b82f6", // blue
	"#10b981", // emerald
	"#f59e0b", // amber
	"#ec4899", // pink
	"#06b6d4", // cyan
	"#84cc16", // lime
	"#d946ef", // fuchsia
}

// LossColor renders the synthetic loss category in charts and tables.
const LossColor = "#ef4444"

type Activity struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
}

// Catalog is the ordered set of visible activities.
type Catalog []Activity

var ErrNameRequired = errors.New("activity: name required")

// New creates an activity with a fresh id and the next palette color for
// the given catalog position.
func New(name string, position int) (Activity, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Activity{}, ErrNameRequired
	}
	return Activity{
		ID:        uuid.NewString(),
		Name:      name,
		Color:     Palette[position%len(Palette)],
		CreatedAt: time.Now(),
	}, nil
}

// Add appends a new activity and returns it.
func (c *Catalog) Add(name string) (Activity, error) {
	a, err := New(name, len(*c))
	if err != nil {
		return Activity{}, err
	}
	*c = append(*c, a)
	return a, nil
}

// Find matches by id first, then case-insensitive name.
func (c Catalog) Find(nameOrID string) (Activity, bool) {
	for _, a := range c {
		if a.ID == nameOrID {
			return a, true
		}
	}
	for _, a := range c {
		if strings.EqualFold(a.Name, strings.TrimSpace(nameOrID)) {
			return a, true
		}
	}
	return Activity{}, false
}

// Remove drops the activity from the visible set. The caller keeps its
// ledger history; this is a soft delete.
func (c *Catalog) Remove(nameOrID string) (Activity, bool) {
	a, ok := c.Find(nameOrID)
	if !ok {
		return Activity{}, false
	}
	kept := make(Catalog, 0, len(*c)-1)
	for _, it := range *c {
		if it.ID != a.ID {
			kept = append(kept, it)
		}
	}
	*c = kept
	return a, true
}
