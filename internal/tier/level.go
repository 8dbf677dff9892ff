package tier

import "github.com/regbook/regbook/internal/model"

// SectionLimits bounds clause counts per section at one detail level.
// AppendixMax applies to appendix-classified sections and the "related"
// canonical section; Max applies everywhere else.
type SectionLimits struct {
	Min         int
	Max         int
	AppendixMax int
}

// LimitsByLevel is the per-level clause-count table. Caps are
// non-decreasing with level so that a higher level never selects fewer
// clauses than a lower one for the same inputs.
var LimitsByLevel = map[model.DetailLevel]SectionLimits{
	model.LevelEssential:     {Min: 1, Max: 2, AppendixMax: 1},
	model.LevelStandard:      {Min: 1, Max: 4, AppendixMax: 2},
	model.LevelComprehensive: {Min: 2, Max: 7, AppendixMax: 4},
}

// limitFor returns the clause cap for a section of the given type and ID
// at the given detail level.
func limitFor(level model.DetailLevel, sectionType model.SectionType, sectionID string) int {
	limits, ok := LimitsByLevel[level]
	if !ok {
		limits = LimitsByLevel[model.LevelStandard]
	}
	if sectionType == model.SectionAppendix || sectionID == "related" {
		return limits.AppendixMax
	}
	return limits.Max
}

// RecommendedDetailLevel maps firm size to a starting detail level.
func RecommendedDetailLevel(size model.FirmSize) model.DetailLevel {
	switch size {
	case model.FirmSmall:
		return model.LevelEssential
	case model.FirmMedium:
		return model.LevelStandard
	case model.FirmLarge:
		return model.LevelComprehensive
	default:
		return model.LevelStandard
	}
}
