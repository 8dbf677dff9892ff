package model

import "testing"

func TestParseDetailLevel(t *testing.T) {
	cases := []struct {
		in   string
		want DetailLevel
	}{
		{"essential", LevelEssential},
		{"standard", LevelStandard},
		{"comprehensive", LevelComprehensive},
		{"", LevelStandard},
		{"exhaustive", LevelStandard},
	}
	for _, c := range cases {
		if got := ParseDetailLevel(c.in); got != c.want {
			t.Errorf("ParseDetailLevel(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestLevelRankOrdering(t *testing.T) {
	if !(LevelRank[LevelEssential] < LevelRank[LevelStandard] &&
		LevelRank[LevelStandard] < LevelRank[LevelComprehensive]) {
		t.Error("detail level ranks must be strictly increasing")
	}
}

func TestClauseAppliesToTemplate(t *testing.T) {
	universal := &Clause{ID: "u1"}
	if !universal.AppliesToTemplate("AML_CTF") {
		t.Error("clause with empty applies_to must apply everywhere")
	}

	scoped := &Clause{ID: "s1", AppliesTo: []string{"SAFEGUARDING", "AML_CTF"}}
	if !scoped.AppliesToTemplate("AML_CTF") {
		t.Error("expected scoped clause to apply to listed template")
	}
	if scoped.AppliesToTemplate("VULNERABLE_CUST") {
		t.Error("expected scoped clause not to apply to unlisted template")
	}
}

func TestTemplateIsMandatoryClause(t *testing.T) {
	tmpl := &Template{Code: "AML_CTF", MandatoryClauses: []string{"c1", "c2"}}
	if !tmpl.IsMandatoryClause("c2") {
		t.Error("expected c2 to be mandatory")
	}
	if tmpl.IsMandatoryClause("c9") {
		t.Error("expected c9 not to be mandatory")
	}
}

func TestPermissionRequiredMatchedBy(t *testing.T) {
	yes := true
	no := false
	firm := PermissionSet{PaymentServices: true, HoldsClientMoney: false}

	cases := []struct {
		name string
		pred *PermissionRequired
		want bool
	}{
		{"nil predicate matches", nil, true},
		{"empty predicate matches", &PermissionRequired{}, true},
		{"matching flag", &PermissionRequired{PaymentServices: &yes}, true},
		{"mismatched flag", &PermissionRequired{HoldsClientMoney: &yes}, false},
		{"negative match", &PermissionRequired{HoldsClientMoney: &no}, true},
		{"one of two mismatched", &PermissionRequired{PaymentServices: &yes, CreditBroking: &yes}, false},
	}
	for _, c := range cases {
		if got := c.pred.MatchedBy(firm); got != c.want {
			t.Errorf("%s: MatchedBy = %v, want %v", c.name, got, c.want)
		}
	}
}
