package telemetry

import (
	"testing"

	"github.com/google/uuid"
)

func TestLifetimeTracker(t *testing.T) {
	lt := NewLifetimeTracker()
	id := uuid.New()

	lt.Register(id, "Blob", false, 100, 8)
	lt.RecordEat(id, 40)
	lt.RecordEat(id, 20)
	lt.RecordPowerUp(id)
	lt.UpdateRadius(id, 12)
	lt.UpdateRadius(id, 10)
	lt.RecordEat(uuid.New(), 5) // unknown ids are ignored

	s := lt.Remove(id, 160, 0.5)
	if s == nil {
		t.Fatal("Remove returned nil")
	}
	if s.Eats != 2 || s.PointsEarned != 60 || s.PowerUps != 1 {
		t.Errorf("counters wrong: %+v", s)
	}
	if s.PeakRadius != 12 || s.StartRadius != 8 {
		t.Errorf("radii wrong: %+v", s)
	}
	if s.SurvivalTimeSec != 30 {
		t.Errorf("survival = %v, want 30", s.SurvivalTimeSec)
	}
	if lt.Count() != 0 || lt.Remove(id, 0, 1) != nil {
		t.Error("agent still tracked after Remove")
	}
}

func TestHallOfFameRanking(t *testing.T) {
	hof := NewHallOfFame(3)

	for _, r := range []float64{10, 30, 20, 5, 25} {
		hof.Consider(&LifetimeStats{PeakRadius: r})
	}

	entries := hof.Entries()
	if hof.Len() != 3 {
		t.Fatalf("Len = %d, want 3", hof.Len())
	}
	want := []float64{30, 25, 20}
	for i, e := range entries {
		if e.PeakRadius != want[i] {
			t.Errorf("entry %d radius = %v, want %v", i, e.PeakRadius, want[i])
		}
	}

	if hof.Consider(&LifetimeStats{PeakRadius: 1}) {
		t.Error("low entry admitted to full hall")
	}
	if !hof.Consider(&LifetimeStats{PeakRadius: 20, Eats: 4}) {
		t.Error("tie with more eats should rank above")
	}
	if hof.Entries()[2].Eats != 4 {
		t.Errorf("tie-break by eats failed: %+v", hof.Entries())
	}
}
