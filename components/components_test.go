package components

import (
	"math"
	"testing"

	"github.com/pthm-cable/devour/config"
)

func TestNewBodyMassIsOne(t *testing.T) {
	b := NewBody(12)
	if b.Mass != 1 {
		t.Errorf("Mass = %v, want 1", b.Mass)
	}
	if b.HasSizeTarget {
		t.Error("new body should not animate")
	}
}

func TestRecomputeMass(t *testing.T) {
	b := NewBody(10)
	b.Radius = 20
	b.RecomputeMass()
	if math.Abs(b.Mass-8) > 1e-9 {
		t.Errorf("Mass = %v, want 8", b.Mass)
	}
}

func TestSkinNamesRoundtrip(t *testing.T) {
	for i, name := range SkinNames() {
		s, ok := ParseSkin(name)
		if !ok || s != Skin(i) {
			t.Errorf("ParseSkin(%q) = %v, %v", name, s, ok)
		}
		if s.String() != name {
			t.Errorf("String() = %q, want %q", s.String(), name)
		}
	}
	if _, ok := ParseSkin("plaid"); ok {
		t.Error("unexpected skin parsed")
	}
}

func TestNewAgentIdentity(t *testing.T) {
	a := NewAgent(1, "Gulp", false)
	b := NewAgent(2, "Gulp", false)
	if a.ID == b.ID {
		t.Error("agent ids must be unique")
	}
	if a.SpeedMultiplier != 1 || a.Skin != SkinDefault {
		t.Errorf("unexpected modifiers: %+v", a)
	}
}

func TestBandFor(t *testing.T) {
	bands := config.BandsConfig{Small: 8, Medium: 15, Large: 30, Huge: 60}
	tests := []struct {
		radius float64
		want   Band
	}{
		{2, BandTiny},
		{8, BandSmall},
		{14.9, BandSmall},
		{15, BandMedium},
		{45, BandLarge},
		{200, BandHuge},
	}
	for _, tt := range tests {
		if got := BandFor(tt.radius, bands); got != tt.want {
			t.Errorf("BandFor(%v) = %v, want %v", tt.radius, got, tt.want)
		}
	}
}
