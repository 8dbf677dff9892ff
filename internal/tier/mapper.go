package tier

import (
	"strings"
	"unicode"

	"github.com/regbook/regbook/internal/model"
)

// StandardSections is the fixed canonical section taxonomy, in document
// order. Every arbitrary template section is normalized into one of
// these (or carried through unmapped).
var StandardSections = []model.StandardSection{
	{ID: "purpose", Title: "Purpose", SectionType: model.SectionPolicy},
	{ID: "scope", Title: "Scope", SectionType: model.SectionPolicy},
	{ID: "definitions", Title: "Definitions", SectionType: model.SectionPolicy},
	{ID: "policy", Title: "Policy Statement", SectionType: model.SectionPolicy},
	{ID: "procedures", Title: "Procedures", SectionType: model.SectionProcedure},
	{ID: "roles", Title: "Roles & Responsibilities", SectionType: model.SectionPolicy},
	{ID: "governance", Title: "Governance & Oversight", SectionType: model.SectionPolicy},
	{ID: "monitoring", Title: "Monitoring & Reporting", SectionType: model.SectionProcedure},
	{ID: "training", Title: "Training & Competence", SectionType: model.SectionProcedure},
	{ID: "related", Title: "Related Documents & Appendices", SectionType: model.SectionAppendix},
}

// mappingRule binds a keyword group to a canonical section ID.
type mappingRule struct {
	SectionID string
	Keywords  []string
}

// MappingRules is evaluated in order; first matching group wins.
//
// INVARIANT: order is load-bearing. Titles can contain keywords from
// several groups ("Governance & Reporting" hits "governance" before the
// monitoring group's "report"), so this must stay an ordered table, not
// a map.
var MappingRules = []mappingRule{
	{SectionID: "purpose", Keywords: []string{"purpose", "objective", "overview"}},
	{SectionID: "scope", Keywords: []string{"scope", "applicab"}},
	{SectionID: "definitions", Keywords: []string{"definition", "glossary", "terminology"}},
	{SectionID: "policy", Keywords: []string{"policy", "principle", "statement", "requirement"}},
	{SectionID: "procedures", Keywords: []string{"procedure", "process", "handling", "workflow"}},
	{SectionID: "roles", Keywords: []string{"role", "responsibility", "owner"}},
	{SectionID: "governance", Keywords: []string{"governance", "oversight", "approval"}},
	{SectionID: "monitoring", Keywords: []string{"monitor", "report", "mi", "metric"}},
	{SectionID: "training", Keywords: []string{"training", "competence", "awareness"}},
	{SectionID: "related", Keywords: []string{"related", "reference", "appendix"}},
}

// MapToStandardSection classifies a free-text section title into one of
// the ten canonical sections. Returns nil when no keyword group
// matches; callers treat that as "unmapped", not an error.
//
// Keywords match at word boundaries, as prefixes of title words:
// "applicab" matches "Applicability" and "objective" matches
// "Objectives", but "related" does not match "Unrelated" and "mi" does
// not match "Administration".
func MapToStandardSection(title string) *model.StandardSection {
	words := titleWords(title)
	for _, rule := range MappingRules {
		for _, kw := range rule.Keywords {
			if matchesWord(words, kw) {
				return standardSectionByID(rule.SectionID)
			}
		}
	}
	return nil
}

// titleWords lowercases a title and splits it into alphanumeric runs.
func titleWords(title string) []string {
	return strings.FieldsFunc(strings.ToLower(title), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func matchesWord(words []string, kw string) bool {
	for _, w := range words {
		if strings.HasPrefix(w, kw) {
			return true
		}
	}
	return false
}

func standardSectionByID(id string) *model.StandardSection {
	for i := range StandardSections {
		if StandardSections[i].ID == id {
			return &StandardSections[i]
		}
	}
	return nil
}
