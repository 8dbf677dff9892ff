package tier

import "testing"

func TestMapToStandardSectionKeywords(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Purpose", "purpose"},
		{"Objectives of this Policy", "purpose"},
		{"Document Overview", "purpose"},
		{"Scope", "scope"},
		{"Applicability", "scope"},
		{"Definitions and Glossary", "definitions"},
		{"Key Terminology", "definitions"},
		{"Policy Statement", "policy"},
		{"Core Principles", "policy"},
		{"Regulatory Requirements", "policy"},
		{"Procedures", "procedures"},
		{"Complaint Handling", "procedures"},
		{"Roles and Responsibilities", "roles"},
		{"Accountable Owner", "roles"},
		{"Governance & Oversight", "governance"},
		{"Approval Matrix", "governance"},
		{"MI & Metrics", "monitoring"},
		{"Monitoring Arrangements", "monitoring"},
		{"Training and Awareness", "training"},
		{"Staff Competence", "training"},
		{"Related Documents", "related"},
		{"Appendix A", "related"},
	}
	for _, c := range cases {
		got := MapToStandardSection(c.title)
		if got == nil {
			t.Errorf("MapToStandardSection(%q) = nil, want %q", c.title, c.want)
			continue
		}
		if got.ID != c.want {
			t.Errorf("MapToStandardSection(%q) = %q, want %q", c.title, got.ID, c.want)
		}
	}
}

func TestMapToStandardSectionOrderMatters(t *testing.T) {
	// "Governance & Reporting" contains keywords from both the
	// governance and monitoring groups; governance is evaluated first.
	got := MapToStandardSection("Governance & Reporting")
	if got == nil || got.ID != "governance" {
		t.Errorf("expected governance for mixed-keyword title, got %v", got)
	}

	// "Purpose and Scope" hits purpose before scope.
	got = MapToStandardSection("Purpose and Scope")
	if got == nil || got.ID != "purpose" {
		t.Errorf("expected purpose for 'Purpose and Scope', got %v", got)
	}
}

func TestMapToStandardSectionCaseInsensitive(t *testing.T) {
	got := MapToStandardSection("GOVERNANCE ARRANGEMENTS")
	if got == nil || got.ID != "governance" {
		t.Errorf("expected case-insensitive match, got %v", got)
	}
}

func TestMapToStandardSectionUnmapped(t *testing.T) {
	if got := MapToStandardSection("Random Unrelated Heading"); got != nil {
		t.Errorf("expected nil for unmappable title, got %q", got.ID)
	}
	if got := MapToStandardSection(""); got != nil {
		t.Errorf("expected nil for empty title, got %q", got.ID)
	}
}

func TestMapToStandardSectionWordBoundaries(t *testing.T) {
	// Keywords match as prefixes of whole words, never mid-word:
	// "unrelated" must not hit "related" and "administration" must not
	// hit the monitoring group's "mi".
	for _, title := range []string{
		"Random Unrelated Heading",
		"Administration",
		"Remit of the Committee",
	} {
		if got := MapToStandardSection(title); got != nil {
			t.Errorf("MapToStandardSection(%q) = %q, want nil", title, got.ID)
		}
	}

	// Prefix matching still covers inflected forms.
	cases := []struct {
		title string
		want  string
	}{
		{"Objectives", "purpose"},
		{"Applicability", "scope"},
		{"Monthly MI Pack", "monitoring"},
		{"Reporting Lines", "monitoring"},
	}
	for _, c := range cases {
		got := MapToStandardSection(c.title)
		if got == nil || got.ID != c.want {
			t.Errorf("MapToStandardSection(%q) = %v, want %q", c.title, got, c.want)
		}
	}
}

func TestStandardSectionsTaxonomy(t *testing.T) {
	if len(StandardSections) != 10 {
		t.Fatalf("canonical taxonomy must have exactly 10 sections, got %d", len(StandardSections))
	}
	if StandardSections[0].ID != "purpose" {
		t.Errorf("first canonical section must be purpose, got %q", StandardSections[0].ID)
	}
	last := StandardSections[len(StandardSections)-1]
	if last.ID != "related" {
		t.Errorf("last canonical section must be related, got %q", last.ID)
	}

	// Every mapping rule must target a section that exists.
	for _, rule := range MappingRules {
		if standardSectionByID(rule.SectionID) == nil {
			t.Errorf("mapping rule targets unknown section %q", rule.SectionID)
		}
	}
}
