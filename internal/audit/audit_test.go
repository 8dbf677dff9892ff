package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestTrailChainAndVerify(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.jsonl")

	trail, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	entries := []Entry{
		{Event: EventDocumentGenerated, Firm: "Acme Payments Ltd", Template: "AML_CTF", DetailLevel: "standard", ClauseIDs: []string{"aml-mlro", "aml-cdd"}, CatalogHash: "sha256:abc"},
		{Event: EventRegisterStatus, EntryID: "e1", Status: "approved", Actor: "compliance"},
		{Event: EventCatalogReloaded, CatalogHash: "sha256:def"},
	}
	for _, e := range entries {
		if err := trail.Record(e); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}
	if err := trail.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	res := Verify(path)
	if !res.Valid {
		t.Fatalf("chain invalid: %s (line %d)", res.Error, res.ErrorLine)
	}
	if res.Lines != 3 {
		t.Errorf("Lines = %d, want 3", res.Lines)
	}
}

func TestTrailResumesChainAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.jsonl")

	first, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := first.Record(Entry{Event: EventDocumentGenerated, Template: "SAFEGUARDING"}); err != nil {
		t.Fatal(err)
	}
	first.Close()

	second, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := second.Record(Entry{Event: EventDocumentGenerated, Template: "VULNERABLE_CUST"}); err != nil {
		t.Fatal(err)
	}
	second.Close()

	res := Verify(path)
	if !res.Valid || res.Lines != 2 {
		t.Fatalf("reopened chain invalid: %+v", res)
	}
}

func TestVerifyDetectsTampering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.jsonl")

	trail, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	trail.Record(Entry{Event: EventDocumentGenerated, Template: "AML_CTF"})
	trail.Record(Entry{Event: EventDocumentGenerated, Template: "SAFEGUARDING"})
	trail.Close()

	// Rewrite the first line with a modified template field.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := splitLines(data)
	var e Entry
	if err := json.Unmarshal(lines[0], &e); err != nil {
		t.Fatal(err)
	}
	e.Template = "VULNERABLE_CUST"
	tampered, _ := json.Marshal(e)
	out := append(tampered, '\n')
	out = append(out, lines[1]...)
	out = append(out, '\n')
	if err := os.WriteFile(path, out, 0600); err != nil {
		t.Fatal(err)
	}

	res := Verify(path)
	if res.Valid {
		t.Fatal("expected tampered chain to fail verification")
	}
	if res.ErrorLine != 2 {
		t.Errorf("ErrorLine = %d, want 2", res.ErrorLine)
	}
}

func TestVerifyRejectsWrongGenesis(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.jsonl")
	line, _ := json.Marshal(Entry{Event: EventDocumentGenerated, PrevHash: "sha256:bogus"})
	if err := os.WriteFile(path, append(line, '\n'), 0600); err != nil {
		t.Fatal(err)
	}

	res := Verify(path)
	if res.Valid || res.ErrorLine != 1 {
		t.Errorf("expected genesis failure on line 1, got %+v", res)
	}
}

func splitLines(data []byte) [][]byte {
	var lines [][]byte
	start := 0
	for i, b := range data {
		if b == '\n' {
			lines = append(lines, data[start:i])
			start = i + 1
		}
	}
	if start < len(data) {
		lines = append(lines, data[start:])
	}
	return lines
}
