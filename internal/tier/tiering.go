package tier

import (
	"sort"

	"github.com/regbook/regbook/internal/model"
)

// ApplyTiering selects a bounded, ranked clause subset per section of
// the template, producing the final document structure for the given
// detail level.
//
// Canonical sections come first in taxonomy order, then template
// sections that mapped to no canonical section, in declaration order.
// Overrides are keyed by the original template section ID and replace
// only that section's contribution. Missing data degrades silently:
// dangling clause references are skipped and sections left with no
// candidates are omitted, never errors.
func ApplyTiering(tmpl *model.Template, allClauses []model.Clause, level model.DetailLevel, overrides map[string][]string) []model.TieredSection {
	byID := make(map[string]model.Clause, len(allClauses))
	for _, c := range allClauses {
		byID[c.ID] = c
	}

	// Partition template sections by mapped canonical section.
	grouped := make(map[string][]model.TemplateSection)
	var unmapped []model.TemplateSection
	for _, sec := range tmpl.Sections {
		std := MapToStandardSection(sec.Title)
		if std == nil {
			unmapped = append(unmapped, sec)
			continue
		}
		grouped[std.ID] = append(grouped[std.ID], sec)
	}

	var out []model.TieredSection

	for _, std := range StandardSections {
		sources := grouped[std.ID]
		if len(sources) == 0 {
			continue
		}

		// Merge contributions, deduplicated by clause ID. First
		// occurrence wins, preserving encounter order across sources.
		seen := make(map[string]bool)
		var candidates []model.Clause
		for _, sec := range sources {
			for _, id := range effectiveClauseIDs(sec, overrides) {
				clause, ok := byID[id]
				if !ok || seen[id] {
					continue
				}
				seen[id] = true
				candidates = append(candidates, clause)
			}
		}
		if len(candidates) == 0 {
			continue
		}

		limit := limitFor(level, std.SectionType, std.ID)
		selected := selectTop(candidates, tmpl, level, limit)
		if len(selected) == 0 {
			continue
		}

		out = append(out, model.TieredSection{
			ID:                std.ID,
			Title:             std.Title,
			SectionType:       std.SectionType,
			Clauses:           selected,
			OriginalSectionID: sources[0].ID,
		})
	}

	// Unmapped sections keep their own identity, no canonicalization.
	for _, sec := range unmapped {
		seen := make(map[string]bool)
		var candidates []model.Clause
		for _, id := range effectiveClauseIDs(sec, overrides) {
			clause, ok := byID[id]
			if !ok || seen[id] {
				continue
			}
			seen[id] = true
			candidates = append(candidates, clause)
		}
		if len(candidates) == 0 {
			continue
		}

		sectionType := sec.SectionType
		if sectionType == "" {
			sectionType = model.SectionPolicy
		}
		limit := limitFor(level, sectionType, sec.ID)
		selected := selectTop(candidates, tmpl, level, limit)
		if len(selected) == 0 {
			continue
		}

		out = append(out, model.TieredSection{
			ID:                sec.ID,
			Title:             sec.Title,
			SectionType:       sectionType,
			Clauses:           selected,
			OriginalSectionID: sec.ID,
		})
	}

	return out
}

// effectiveClauseIDs resolves a section's clause list: a caller
// override keyed by the section's original ID replaces its suggested
// list entirely.
func effectiveClauseIDs(sec model.TemplateSection, overrides map[string][]string) []string {
	if ids, ok := overrides[sec.ID]; ok {
		return ids
	}
	return sec.SuggestedClauses
}

// selectTop scores candidates, sorts by descending score and truncates
// to the limit. The sort is stable: ties keep encounter order.
func selectTop(candidates []model.Clause, tmpl *model.Template, level model.DetailLevel, limit int) []model.Clause {
	scored := make([]model.Clause, len(candidates))
	copy(scored, candidates)

	scores := make(map[string]int, len(scored))
	for i := range scored {
		mandatory := tmpl.IsMandatoryClause(scored[i].ID)
		scores[scored[i].ID] = ScoreClause(&scored[i], level, mandatory)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scores[scored[i].ID] > scores[scored[j].ID]
	})

	if limit < len(scored) {
		scored = scored[:limit]
	}
	return scored
}
