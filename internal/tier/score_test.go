package tier

import (
	"strings"
	"testing"

	"github.com/regbook/regbook/internal/model"
)

func TestScoreClauseEssentialTitleKeyword(t *testing.T) {
	clause := &model.Clause{
		ID:      "c1",
		Title:   "Purpose",
		Content: "This document sets out the firm's approach.",
	}
	got := ScoreClause(clause, model.LevelEssential, false)
	if got != 20 {
		t.Errorf("ScoreClause = %d, want 20 (one essential title hit)", got)
	}
}

func TestScoreClauseMandatoryBonus(t *testing.T) {
	clause := &model.Clause{ID: "c1", Title: "Purpose", Content: "short body"}
	base := ScoreClause(clause, model.LevelEssential, false)
	withOverride := ScoreClause(clause, model.LevelEssential, true)
	if withOverride != base+100 {
		t.Errorf("mandatory override bonus = %d, want %d", withOverride-base, 100)
	}

	flagged := &model.Clause{ID: "c2", Title: "Purpose", Content: "short body", IsMandatory: true}
	if got := ScoreClause(flagged, model.LevelEssential, false); got != base+100 {
		t.Errorf("own-flag mandatory score = %d, want %d", got, base+100)
	}
}

func TestScoreClauseTierGating(t *testing.T) {
	clause := &model.Clause{
		ID:      "c1",
		Title:   "Appendix Checklist Template",
		Content: "neutral body",
	}

	// Comprehensive keywords are excluded below comprehensive level.
	if got := ScoreClause(clause, model.LevelEssential, false); got != 0 {
		t.Errorf("essential score = %d, want 0", got)
	}
	if got := ScoreClause(clause, model.LevelStandard, false); got != 0 {
		t.Errorf("standard score = %d, want 0", got)
	}
	// Three comprehensive title hits: appendix, template, checklist.
	if got := ScoreClause(clause, model.LevelComprehensive, false); got != 30 {
		t.Errorf("comprehensive score = %d, want 30", got)
	}
}

func TestScoreClauseStandardKeywords(t *testing.T) {
	clause := &model.Clause{
		ID:      "c1",
		Title:   "Escalation",
		Content: "neutral body",
	}
	if got := ScoreClause(clause, model.LevelEssential, false); got != 0 {
		t.Errorf("essential score = %d, want 0 (standard keyword gated out)", got)
	}
	if got := ScoreClause(clause, model.LevelStandard, false); got != 15 {
		t.Errorf("standard score = %d, want 15", got)
	}
}

func TestScoreClauseContentKeywords(t *testing.T) {
	clause := &model.Clause{
		ID:      "c1",
		Title:   "Neutral Heading",
		Content: "The firm must meet every regulatory obligation in force.",
	}
	// Two essential content hits: "regulatory", "obligation" → +5 each.
	if got := ScoreClause(clause, model.LevelEssential, false); got != 10 {
		t.Errorf("content keyword score = %d, want 10", got)
	}
}

func TestScoreClauseContentWindow(t *testing.T) {
	// Keyword placed beyond the first 500 characters must not score.
	clause := &model.Clause{
		ID:      "c1",
		Title:   "Neutral Heading",
		Content: strings.Repeat("x", 600) + " regulatory",
	}
	if got := ScoreClause(clause, model.LevelEssential, false); got != 0 {
		t.Errorf("keyword beyond window scored %d, want 0", got)
	}
}

func TestScoreClauseLengthPenalty(t *testing.T) {
	long := &model.Clause{
		ID:      "c1",
		Title:   "Neutral Heading",
		Content: strings.Repeat("z", 2500),
	}
	if got := ScoreClause(long, model.LevelEssential, false); got != -20 {
		t.Errorf("essential length penalty score = %d, want -20", got)
	}
	// 2500 chars is under the standard cutoff.
	if got := ScoreClause(long, model.LevelStandard, false); got != 0 {
		t.Errorf("standard score for 2500-char clause = %d, want 0", got)
	}

	longer := &model.Clause{
		ID:      "c2",
		Title:   "Neutral Heading",
		Content: strings.Repeat("z", 4500),
	}
	if got := ScoreClause(longer, model.LevelStandard, false); got != -10 {
		t.Errorf("standard length penalty score = %d, want -10", got)
	}
	// Comprehensive carries no length penalty.
	if got := ScoreClause(longer, model.LevelComprehensive, false); got != 0 {
		t.Errorf("comprehensive score for long clause = %d, want 0", got)
	}
}

func TestScoreClauseAccumulates(t *testing.T) {
	clause := &model.Clause{
		ID:      "c1",
		Title:   "Compliance Monitoring Procedure",
		Content: "neutral body",
	}
	// Essential: only "compliance" (+20).
	if got := ScoreClause(clause, model.LevelEssential, false); got != 20 {
		t.Errorf("essential score = %d, want 20", got)
	}
	// Standard adds "monitoring" and "procedure" title hits (+15 each).
	if got := ScoreClause(clause, model.LevelStandard, false); got != 50 {
		t.Errorf("standard score = %d, want 50", got)
	}
}
