package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/regbook/regbook/internal/model"
)

func TestDefaultCatalogIsInternallyConsistent(t *testing.T) {
	c := Default()
	if problems := c.Validate(); len(problems) != 0 {
		t.Errorf("builtin catalog has referential problems:\n%s", strings.Join(problems, "\n"))
	}
	if len(c.Templates()) != 3 {
		t.Errorf("expected 3 builtin templates, got %d", len(c.Templates()))
	}
	for _, code := range []string{"AML_CTF", "VULNERABLE_CUST", "SAFEGUARDING"} {
		if _, ok := c.TemplateByCode(code); !ok {
			t.Errorf("missing builtin template %s", code)
		}
	}
}

func TestCatalogLookups(t *testing.T) {
	c := Default()
	clause, ok := c.ClauseByID("aml-mlro")
	if !ok {
		t.Fatal("expected aml-mlro in builtin library")
	}
	if !clause.IsMandatory {
		t.Error("aml-mlro must be flagged mandatory")
	}
	if _, ok := c.ClauseByID("no-such-clause"); ok {
		t.Error("unexpected hit for unknown clause ID")
	}
}

func TestNewReplacesDuplicates(t *testing.T) {
	c := New(
		[]model.Clause{
			{ID: "c1", Title: "Original"},
			{ID: "c1", Title: "Replacement"},
		},
		[]model.Template{
			{Code: "T", Name: "Original"},
			{Code: "T", Name: "Replacement"},
		},
	)
	clause, _ := c.ClauseByID("c1")
	if clause.Title != "Replacement" {
		t.Errorf("later clause must replace earlier, got %q", clause.Title)
	}
	tmpl, _ := c.TemplateByCode("T")
	if tmpl.Name != "Replacement" {
		t.Errorf("later template must replace earlier, got %q", tmpl.Name)
	}
	if len(c.Clauses()) != 1 || len(c.Templates()) != 1 {
		t.Error("replacement must not grow the catalog")
	}
}

func TestValidateReportsDanglingReferences(t *testing.T) {
	c := New(
		[]model.Clause{{ID: "c1", Title: "One", AppliesTo: []string{"MISSING"}}},
		[]model.Template{{
			Code:             "T",
			MandatoryClauses: []string{"ghost"},
			Sections: []model.TemplateSection{
				{ID: "s1", Title: "Purpose", SuggestedClauses: []string{"c1", "ghost2"}},
			},
		}},
	)
	problems := c.Validate()
	if len(problems) != 3 {
		t.Fatalf("expected 3 problems, got %d: %v", len(problems), problems)
	}
}

func TestLoadMissingFileFallsBackToBuiltins(t *testing.T) {
	c, hash, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(c.Templates()) != 3 {
		t.Errorf("expected builtin templates, got %d", len(c.Templates()))
	}
	if !strings.HasPrefix(hash, "sha256:") {
		t.Errorf("expected sha256 hash, got %q", hash)
	}
}

func TestLoadOverlayExtendsAndReplaces(t *testing.T) {
	overlay := `
clauses:
  - id: purpose-statement
    title: Overridden Purpose
    content: Replaced body text.
    category: governance
  - id: firm-extra
    title: Firm Specific Clause
    content: Added by the firm.
    category: operations
templates:
  - code: CUSTOM
    name: Custom Policy
    sections:
      - id: cu-1
        title: Purpose
        suggested_clauses: [firm-extra]
`
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(overlay), 0600); err != nil {
		t.Fatal(err)
	}

	c, hash, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	clause, ok := c.ClauseByID("purpose-statement")
	if !ok || clause.Title != "Overridden Purpose" {
		t.Errorf("overlay must replace builtin clause, got %+v", clause)
	}
	if _, ok := c.ClauseByID("firm-extra"); !ok {
		t.Error("overlay must add new clauses")
	}
	if _, ok := c.TemplateByCode("CUSTOM"); !ok {
		t.Error("overlay must add new templates")
	}
	if _, ok := c.TemplateByCode("AML_CTF"); !ok {
		t.Error("builtin templates must survive overlay")
	}
	if hash == emptyHash() {
		t.Error("overlay hash must differ from empty hash")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("clauses: [unclosed"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}
