package telemetry

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/devour/config"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkFeedingFrenzy   BookmarkType = "feeding_frenzy"
	BookmarkPopulationCrash BookmarkType = "population_crash"
	BookmarkScoreMilestone  BookmarkType = "score_milestone"
	BookmarkGiantEmerged    BookmarkType = "giant_emerged"
	BookmarkStalemate       BookmarkType = "stalemate"
)

// Bookmark marks an interesting moment in a run.
type Bookmark struct {
	Type        BookmarkType `csv:"type"`
	Tick        int64        `csv:"tick"`
	Description string       `csv:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"tick", b.Tick,
		"description", b.Description,
	)
}

// BookmarkDetector watches successive windows for notable changes.
type BookmarkDetector struct {
	// Rolling history (circular buffer)
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	cfg           config.BookmarksConfig
	nextMilestone int // next score that triggers a milestone
	giantSeen     bool
	recentPeak    int // peak enemy count since the last crash
	quietWindows  int // consecutive windows without consumptions
}

// NewBookmarkDetector creates a detector with the given history size and
// thresholds.
func NewBookmarkDetector(historySize int, cfg config.BookmarksConfig) *BookmarkDetector {
	if historySize < 3 {
		historySize = 3 // minimum for a frenzy average
	}
	if cfg.ScoreMilestone < 1 {
		cfg.ScoreMilestone = 1000
	}
	if cfg.StalemateWindows < 1 {
		cfg.StalemateWindows = 1
	}
	return &BookmarkDetector{
		history:       make([]WindowStats, historySize),
		historySize:   historySize,
		cfg:           cfg,
		nextMilestone: cfg.ScoreMilestone,
	}
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark

	if b := bd.checkFeedingFrenzy(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkPopulationCrash(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkScoreMilestone(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkGiant(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkStalemate(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	bd.addToHistory(stats)
	bd.recentPeak = max(bd.recentPeak, stats.Enemies)

	return bookmarks
}

// Reset clears history and per-run progress after a restart.
func (bd *BookmarkDetector) Reset() {
	bd.historyIdx = 0
	bd.historyFull = false
	bd.nextMilestone = bd.cfg.ScoreMilestone
	bd.giantSeen = false
	bd.recentPeak = 0
	bd.quietWindows = 0
}

func (bd *BookmarkDetector) addToHistory(stats WindowStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

func (bd *BookmarkDetector) getHistory() []WindowStats {
	if bd.historyFull {
		return bd.history
	}
	return bd.history[:bd.historyIdx]
}

func (bd *BookmarkDetector) checkFeedingFrenzy(stats WindowStats) *Bookmark {
	history := bd.getHistory()
	if len(history) < 3 {
		return nil
	}

	var total int
	for _, h := range history {
		total += h.Consumptions
	}
	avg := float64(total) / float64(len(history))
	frenzy := bd.cfg.FeedingFrenzy
	if avg == 0 || stats.Consumptions < frenzy.MinConsumptions {
		return nil
	}

	if float64(stats.Consumptions) > avg*frenzy.Multiplier {
		return &Bookmark{
			Type:        BookmarkFeedingFrenzy,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("%d consumptions is %.1fx average (%.1f)", stats.Consumptions, float64(stats.Consumptions)/avg, avg),
		}
	}
	return nil
}

func (bd *BookmarkDetector) checkPopulationCrash(stats WindowStats) *Bookmark {
	if bd.recentPeak == 0 {
		return nil
	}

	drop := 1 - float64(stats.Enemies)/float64(bd.recentPeak)
	crash := bd.cfg.PopulationCrash
	if drop > crash.MinDrop && stats.Enemies < bd.recentPeak-crash.MinLoss {
		oldPeak := bd.recentPeak
		bd.recentPeak = stats.Enemies
		return &Bookmark{
			Type:        BookmarkPopulationCrash,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Enemies fell %.0f%% from peak %d to %d", drop*100, oldPeak, stats.Enemies),
		}
	}
	return nil
}

func (bd *BookmarkDetector) checkScoreMilestone(stats WindowStats) *Bookmark {
	if stats.Score < bd.nextMilestone {
		return nil
	}

	step := bd.cfg.ScoreMilestone
	reached := stats.Score / step * step
	bd.nextMilestone = reached + step
	return &Bookmark{
		Type:        BookmarkScoreMilestone,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("Score passed %d", reached),
	}
}

func (bd *BookmarkDetector) checkGiant(stats WindowStats) *Bookmark {
	if bd.giantSeen || bd.cfg.GiantRadius <= 0 || stats.RadiusMax < bd.cfg.GiantRadius {
		return nil
	}
	bd.giantSeen = true
	return &Bookmark{
		Type:        BookmarkGiantEmerged,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("Enemy reached radius %.1f", stats.RadiusMax),
	}
}

func (bd *BookmarkDetector) checkStalemate(stats WindowStats) *Bookmark {
	if stats.Consumptions > 0 || stats.Enemies == 0 {
		bd.quietWindows = 0
		return nil
	}

	bd.quietWindows++
	if bd.quietWindows == bd.cfg.StalemateWindows { // trigger exactly once per quiet stretch
		return &Bookmark{
			Type:        BookmarkStalemate,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("No consumptions for %d windows with %d enemies", bd.quietWindows, stats.Enemies),
		}
	}
	return nil
}
