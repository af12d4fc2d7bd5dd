package telemetry

import (
	"testing"

	"github.com/pthm-cable/devour/config"
)

var testBookmarks = config.BookmarksConfig{
	FeedingFrenzy:    config.FeedingFrenzyConfig{Multiplier: 2, MinConsumptions: 3},
	PopulationCrash:  config.PopulationCrashConfig{MinDrop: 0.5, MinLoss: 5},
	ScoreMilestone:   1000,
	GiantRadius:      60,
	StalemateWindows: 5,
}

func hasBookmark(bookmarks []Bookmark, typ BookmarkType) bool {
	for _, bm := range bookmarks {
		if bm.Type == typ {
			return true
		}
	}
	return false
}

func TestBookmarkDetector_FeedingFrenzy(t *testing.T) {
	bd := NewBookmarkDetector(10, testBookmarks)

	for i := 0; i < 5; i++ {
		bd.Check(WindowStats{WindowEndTick: int64(i * 600), Consumptions: 2, Enemies: 15})
	}

	bookmarks := bd.Check(WindowStats{WindowEndTick: 3000, Consumptions: 9, Enemies: 15})
	if !hasBookmark(bookmarks, BookmarkFeedingFrenzy) {
		t.Error("expected feeding_frenzy bookmark")
	}
}

func TestBookmarkDetector_PopulationCrash(t *testing.T) {
	bd := NewBookmarkDetector(10, testBookmarks)

	for i := 0; i < 5; i++ {
		bd.Check(WindowStats{WindowEndTick: int64(i * 600), Enemies: 40})
	}

	bookmarks := bd.Check(WindowStats{WindowEndTick: 3000, Enemies: 12})
	if !hasBookmark(bookmarks, BookmarkPopulationCrash) {
		t.Error("expected population_crash bookmark")
	}

	// Peak resets after a crash.
	if hasBookmark(bd.Check(WindowStats{WindowEndTick: 3600, Enemies: 12}), BookmarkPopulationCrash) {
		t.Error("crash reported twice")
	}
}

func TestBookmarkDetector_ScoreMilestone(t *testing.T) {
	bd := NewBookmarkDetector(10, testBookmarks)

	tests := []struct {
		score int
		want  bool
	}{
		{500, false},
		{1200, true},
		{1900, false},
		{3500, true},
		{3900, false},
	}
	for _, tt := range tests {
		got := hasBookmark(bd.Check(WindowStats{Score: tt.score}), BookmarkScoreMilestone)
		if got != tt.want {
			t.Errorf("score %d: milestone = %v, want %v", tt.score, got, tt.want)
		}
	}

	bd.Reset()
	if !hasBookmark(bd.Check(WindowStats{Score: 1000}), BookmarkScoreMilestone) {
		t.Error("expected milestone again after Reset")
	}
}

func TestBookmarkDetector_GiantOnce(t *testing.T) {
	bd := NewBookmarkDetector(10, testBookmarks)

	if hasBookmark(bd.Check(WindowStats{RadiusMax: 30}), BookmarkGiantEmerged) {
		t.Error("giant reported below threshold")
	}
	if !hasBookmark(bd.Check(WindowStats{RadiusMax: 61}), BookmarkGiantEmerged) {
		t.Error("expected giant_emerged bookmark")
	}
	if hasBookmark(bd.Check(WindowStats{RadiusMax: 70}), BookmarkGiantEmerged) {
		t.Error("giant reported twice")
	}
}

func TestBookmarkDetector_Stalemate(t *testing.T) {
	bd := NewBookmarkDetector(10, testBookmarks)

	count := 0
	for i := 0; i < 12; i++ {
		if hasBookmark(bd.Check(WindowStats{Enemies: 10}), BookmarkStalemate) {
			count++
		}
	}
	if count != 1 {
		t.Errorf("stalemate reported %d times, want 1", count)
	}
}

func TestBookmarkDetector_ThresholdsFromConfig(t *testing.T) {
	cfg := testBookmarks
	cfg.FeedingFrenzy.MinConsumptions = 10
	cfg.StalemateWindows = 2
	cfg.ScoreMilestone = 250
	bd := NewBookmarkDetector(10, cfg)

	for i := 0; i < 5; i++ {
		bd.Check(WindowStats{Consumptions: 2, Enemies: 15})
	}
	if hasBookmark(bd.Check(WindowStats{Consumptions: 9, Enemies: 15}), BookmarkFeedingFrenzy) {
		t.Error("frenzy reported below min_consumptions")
	}

	if hasBookmark(bd.Check(WindowStats{Enemies: 15}), BookmarkStalemate) {
		t.Error("stalemate reported after one quiet window")
	}
	if !hasBookmark(bd.Check(WindowStats{Enemies: 15}), BookmarkStalemate) {
		t.Error("expected stalemate after two quiet windows")
	}

	if !hasBookmark(bd.Check(WindowStats{Score: 300, Enemies: 15}), BookmarkScoreMilestone) {
		t.Error("expected milestone at the configured step")
	}
}
