package tier

import (
	"strings"

	"github.com/regbook/regbook/internal/model"
)

// contentWindow bounds how far into a clause body keyword matching
// looks. Long clauses front-load their operative language.
const contentWindow = 500

// mandatoryBonus guarantees mandatory clauses outrank any keyword score
// and survive truncation whenever the section cap is at least 1.
const mandatoryBonus = 100

// Keyword sets are cumulative and tier-gated: essential keywords are
// always scored, standard keywords from the standard level up,
// comprehensive keywords only at comprehensive.
var (
	essentialKeywords = []string{
		"purpose", "scope", "definition", "mandatory", "requirement",
		"compliance", "fca", "regulatory", "principle", "obligation",
	}
	standardKeywords = []string{
		"procedure", "process", "responsible", "governance", "oversight",
		"monitoring", "reporting", "escalation", "timeline",
	}
	comprehensiveKeywords = []string{
		"appendix", "template", "checklist", "example", "case study",
		"detailed", "enhanced", "additional",
	}
)

// Length penalties bias shorter documents toward shorter clauses.
const (
	essentialLengthCutoff  = 2000
	essentialLengthPenalty = 20
	standardLengthCutoff   = 4000
	standardLengthPenalty  = 10
)

// ScoreClause assigns a priority score for ranking a clause within a
// section at the given detail level. Scores accumulate additively
// across every matching keyword; negative results are permitted and
// only meaningful relative to other candidates. Deterministic.
func ScoreClause(clause *model.Clause, level model.DetailLevel, mandatory bool) int {
	score := 0
	if mandatory || clause.IsMandatory {
		score += mandatoryBonus
	}

	title := strings.ToLower(clause.Title)
	snippet := strings.ToLower(clause.Content)
	if len(snippet) > contentWindow {
		snippet = snippet[:contentWindow]
	}

	for _, kw := range essentialKeywords {
		if strings.Contains(title, kw) {
			score += 20
		}
		if strings.Contains(snippet, kw) {
			score += 5
		}
	}

	if level != model.LevelEssential {
		for _, kw := range standardKeywords {
			if strings.Contains(title, kw) {
				score += 15
			}
			if strings.Contains(snippet, kw) {
				score += 3
			}
		}
	}

	if level == model.LevelComprehensive {
		for _, kw := range comprehensiveKeywords {
			if strings.Contains(title, kw) {
				score += 10
			}
			if strings.Contains(snippet, kw) {
				score += 2
			}
		}
	}

	switch level {
	case model.LevelEssential:
		if len(clause.Content) > essentialLengthCutoff {
			score -= essentialLengthPenalty
		}
	case model.LevelStandard:
		if len(clause.Content) > standardLengthCutoff {
			score -= standardLengthPenalty
		}
	}

	return score
}
