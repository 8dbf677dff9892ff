package model

// ClauseCategory groups clauses by regulatory concern.
type ClauseCategory string

const (
	CategoryGovernance     ClauseCategory = "governance"
	CategoryOperations     ClauseCategory = "operations"
	CategoryCustomer       ClauseCategory = "customer"
	CategoryFinancialCrime ClauseCategory = "financial-crime"
	CategoryMarket         ClauseCategory = "market"
)

// SectionType classifies where a section sits in the generated document.
type SectionType string

const (
	SectionPolicy    SectionType = "policy"
	SectionProcedure SectionType = "procedure"
	SectionAppendix  SectionType = "appendix"
)

// DetailLevel controls target document length via per-section clause caps.
type DetailLevel string

const (
	LevelEssential     DetailLevel = "essential"
	LevelStandard      DetailLevel = "standard"
	LevelComprehensive DetailLevel = "comprehensive"
)

// LevelRank maps detail levels to a comparable integer for monotonic scaling.
var LevelRank = map[DetailLevel]int{
	LevelEssential:     0,
	LevelStandard:      1,
	LevelComprehensive: 2,
}

// ParseDetailLevel maps a string to a DetailLevel. Unknown → standard.
func ParseDetailLevel(s string) DetailLevel {
	switch DetailLevel(s) {
	case LevelEssential, LevelStandard, LevelComprehensive:
		return DetailLevel(s)
	default:
		return LevelStandard
	}
}

// Clause is an atomic reusable policy text fragment.
// Clauses are defined at catalog load and immutable thereafter; firms
// generate derived documents, they never mutate the library.
type Clause struct {
	ID          string              `json:"id" yaml:"id"`
	Title       string              `json:"title" yaml:"title"`
	Summary     string              `json:"summary,omitempty" yaml:"summary,omitempty"`
	Content     string              `json:"content" yaml:"content"`
	Category    ClauseCategory      `json:"category" yaml:"category"`
	AppliesTo   []string            `json:"applies_to,omitempty" yaml:"applies_to,omitempty"`
	IsMandatory bool                `json:"is_mandatory,omitempty" yaml:"is_mandatory,omitempty"`
	Permissions *PermissionRequired `json:"permissions,omitempty" yaml:"permissions,omitempty"`
}

// AppliesToTemplate reports whether the clause is valid for the given
// template code. An empty AppliesTo set means universally applicable.
func (c *Clause) AppliesToTemplate(code string) bool {
	if len(c.AppliesTo) == 0 {
		return true
	}
	for _, t := range c.AppliesTo {
		if t == code {
			return true
		}
	}
	return false
}

// TemplateSection is one logical subdivision of a template.
type TemplateSection struct {
	ID                string      `json:"id" yaml:"id"`
	Title             string      `json:"title" yaml:"title"`
	Summary           string      `json:"summary,omitempty" yaml:"summary,omitempty"`
	SuggestedClauses  []string    `json:"suggested_clauses" yaml:"suggested_clauses"`
	SectionType       SectionType `json:"section_type,omitempty" yaml:"section_type,omitempty"`
	RequiresFirmNotes bool        `json:"requires_firm_notes,omitempty" yaml:"requires_firm_notes,omitempty"`
}

// Template is a named policy document type composed of ordered sections.
type Template struct {
	Code             string            `json:"code" yaml:"code"`
	Name             string            `json:"name" yaml:"name"`
	Category         ClauseCategory    `json:"category" yaml:"category"`
	Description      string            `json:"description,omitempty" yaml:"description,omitempty"`
	Sections         []TemplateSection `json:"sections" yaml:"sections"`
	MandatoryClauses []string          `json:"mandatory_clauses,omitempty" yaml:"mandatory_clauses,omitempty"`
}

// IsMandatoryClause reports whether the clause ID must always be
// included when this template is generated.
func (t *Template) IsMandatoryClause(id string) bool {
	for _, m := range t.MandatoryClauses {
		if m == id {
			return true
		}
	}
	return false
}

// StandardSection is one entry of the fixed canonical section taxonomy
// that arbitrary template sections are normalized into.
type StandardSection struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	SectionType SectionType `json:"section_type"`
}

// TieredSection is one section of the final document structure: the
// selected clause subset ordered by descending priority score. It is a
// view created per invocation, never persisted.
type TieredSection struct {
	ID                string      `json:"id"`
	Title             string      `json:"title"`
	SectionType       SectionType `json:"section_type"`
	Clauses           []Clause    `json:"clauses"`
	OriginalSectionID string      `json:"original_section_id"`
}
