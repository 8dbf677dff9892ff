package tier

import (
	"testing"

	"github.com/regbook/regbook/internal/model"
)

func TestLimitsMonotonicAcrossLevels(t *testing.T) {
	e := LimitsByLevel[model.LevelEssential]
	s := LimitsByLevel[model.LevelStandard]
	c := LimitsByLevel[model.LevelComprehensive]

	if !(e.Max <= s.Max && s.Max <= c.Max) {
		t.Error("Max caps must be non-decreasing with detail level")
	}
	if !(e.AppendixMax <= s.AppendixMax && s.AppendixMax <= c.AppendixMax) {
		t.Error("AppendixMax caps must be non-decreasing with detail level")
	}
}

func TestLimitForAppendixSections(t *testing.T) {
	limits := LimitsByLevel[model.LevelStandard]

	if got := limitFor(model.LevelStandard, model.SectionAppendix, "extras"); got != limits.AppendixMax {
		t.Errorf("appendix-typed section limit = %d, want %d", got, limits.AppendixMax)
	}
	// The "related" canonical section takes the appendix cap by ID.
	if got := limitFor(model.LevelStandard, model.SectionPolicy, "related"); got != limits.AppendixMax {
		t.Errorf("related section limit = %d, want %d", got, limits.AppendixMax)
	}
	if got := limitFor(model.LevelStandard, model.SectionPolicy, "policy"); got != limits.Max {
		t.Errorf("regular section limit = %d, want %d", got, limits.Max)
	}
}

func TestLimitForUnknownLevelFallsBack(t *testing.T) {
	want := LimitsByLevel[model.LevelStandard].Max
	if got := limitFor(model.DetailLevel("bogus"), model.SectionPolicy, "policy"); got != want {
		t.Errorf("unknown level limit = %d, want standard fallback %d", got, want)
	}
}
