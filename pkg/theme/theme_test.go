package theme

import (
	"testing"
)

func TestParseRoundTrip(t *testing.T) {
	for _, th := range All() {
		back, err := Parse(th.Info().ID)
		if err != nil {
			t.Fatalf("parse %s: %v", th, err)
		}
		if back != th {
			t.Fatalf("expected %v, got %v", th, back)
		}
	}
}

func TestParseUnknownFallsBackToDefault(t *testing.T) {
	th, err := Parse("neon-dreams")
	if err == nil {
		t.Fatalf("expected error for unknown theme")
	}
	if th != Default() {
		t.Fatalf("unknown theme should fall back to default, got %v", th)
	}
}

func TestAccentsParse(t *testing.T) {
	for _, th := range All() {
		c := th.Accent()
		if c.R == 1 && c.G == 1 && c.B == 1 {
			t.Fatalf("%s: accent hex failed to parse", th)
		}
	}
}
