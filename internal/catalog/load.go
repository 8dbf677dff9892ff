package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/regbook/regbook/internal/model"
)

// File is the on-disk catalog overlay format. Entries extend the
// built-in catalog; a clause ID or template code matching a builtin
// replaces it.
type File struct {
	Clauses   []model.Clause   `yaml:"clauses"`
	Templates []model.Template `yaml:"templates"`
}

// Load builds the catalog from the builtins plus an optional overlay
// file, returning the catalog and a SHA-256 hash over the raw overlay
// bytes for the audit trail. Missing file returns the builtins with the
// hash of empty input. Invalid YAML returns an error.
func Load(path string) (*Catalog, string, error) {
	if path == "" {
		return Default(), emptyHash(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), emptyHash(), nil
		}
		return nil, "", fmt.Errorf("catalog: read %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, "", fmt.Errorf("catalog: parse %s: %w", path, err)
	}

	h := sha256.Sum256(data)
	hash := "sha256:" + hex.EncodeToString(h[:])

	clauses := append(builtinClauses(), f.Clauses...)
	templates := append(builtinTemplates(), f.Templates...)
	return New(clauses, templates), hash, nil
}

func emptyHash() string {
	h := sha256.Sum256(nil)
	return "sha256:" + hex.EncodeToString(h[:])
}
