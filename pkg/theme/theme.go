// Package theme enumerates the dashboard color themes.
package theme

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

type Theme int

const (
	Immense Theme = iota
	Glacier
	Viper
	Abyss
	Magma
)

// Info describes a theme for pickers and persistence.
type Info struct {
	ID     string
	Label  string
	Accent string // hex
}

var catalog = []Info{
	{ID: "immense", Label: "Immense (Amber)", Accent: "#d97706"},
	{ID: "glacier", Label: "Breeze (Peach/Pink)", Accent: "#fb7185"},
	{ID: "viper", Label: "Viper (Neon Green)", Accent: "#84cc16"},
	{ID: "abyss", Label: "Abyss (Deep Teal)", Accent: "#2dd4bf"},
	{ID: "magma", Label: "Magma (Red)", Accent: "#ef4444"},
}

func Default() Theme {
	return Immense
}

func All() []Theme {
	return []Theme{Immense, Glacier, Viper, Abyss, Magma}
}

func (t Theme) Info() Info {
	return catalog[t]
}

func (t Theme) String() string {
	return t.Info().ID
}

// Parse resolves a persisted theme id.
func Parse(id string) (Theme, error) {
	for _, t := range All() {
		if t.Info().ID == id {
			return t, nil
		}
	}
	return Default(), fmt.Errorf("theme: unknown theme %q", id)
}

// Accent returns the theme's accent color, ready for blending.
func (t Theme) Accent() colorful.Color {
	c, err := colorful.Hex(t.Info().Accent)
	if err != nil {
		// Catalog entries are compile-time constants; a bad hex here is a
		// programming error, fall back to white rather than panic.
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return c
}

// Dimmed blends the accent toward black for secondary UI chrome.
func (t Theme) Dimmed() colorful.Color {
	return t.Accent().BlendLab(colorful.Color{}, 0.55)
}
