// Package catalog holds the clause library and policy templates. The
// catalog is built once at startup and read-only thereafter; documents
// are derived from it, never written back.
package catalog

import (
	"fmt"
	"sort"

	"github.com/regbook/regbook/internal/model"
)

// Catalog is the in-memory clause and template store.
type Catalog struct {
	clauses   []model.Clause
	templates []model.Template
	byID      map[string]int
	byCode    map[string]int
}

// New builds a catalog from the given clauses and templates. Later
// entries with a duplicate ID or code replace earlier ones, which is
// how file overlays override builtins.
func New(clauses []model.Clause, templates []model.Template) *Catalog {
	c := &Catalog{
		byID:   make(map[string]int),
		byCode: make(map[string]int),
	}
	for _, cl := range clauses {
		if i, ok := c.byID[cl.ID]; ok {
			c.clauses[i] = cl
			continue
		}
		c.byID[cl.ID] = len(c.clauses)
		c.clauses = append(c.clauses, cl)
	}
	for _, t := range templates {
		if i, ok := c.byCode[t.Code]; ok {
			c.templates[i] = t
			continue
		}
		c.byCode[t.Code] = len(c.templates)
		c.templates = append(c.templates, t)
	}
	return c
}

// ClauseByID returns the clause with the given ID.
func (c *Catalog) ClauseByID(id string) (model.Clause, bool) {
	i, ok := c.byID[id]
	if !ok {
		return model.Clause{}, false
	}
	return c.clauses[i], true
}

// TemplateByCode returns the template with the given policy code.
func (c *Catalog) TemplateByCode(code string) (model.Template, bool) {
	i, ok := c.byCode[code]
	if !ok {
		return model.Template{}, false
	}
	return c.templates[i], true
}

// Clauses returns the full clause library in load order.
func (c *Catalog) Clauses() []model.Clause {
	out := make([]model.Clause, len(c.clauses))
	copy(out, c.clauses)
	return out
}

// Templates returns all templates in load order.
func (c *Catalog) Templates() []model.Template {
	out := make([]model.Template, len(c.templates))
	copy(out, c.templates)
	return out
}

// Validate reports referential problems in the catalog. The tiering
// engine tolerates dangling references at generation time; this exists
// so catalog authors can find them before firms do.
func (c *Catalog) Validate() []string {
	var problems []string
	for _, t := range c.templates {
		for _, id := range t.MandatoryClauses {
			if _, ok := c.byID[id]; !ok {
				problems = append(problems, fmt.Sprintf("template %s: mandatory clause %q not in library", t.Code, id))
			}
		}
		for _, sec := range t.Sections {
			for _, id := range sec.SuggestedClauses {
				if _, ok := c.byID[id]; !ok {
					problems = append(problems, fmt.Sprintf("template %s section %s: suggested clause %q not in library", t.Code, sec.ID, id))
				}
			}
		}
	}
	for _, cl := range c.clauses {
		for _, code := range cl.AppliesTo {
			if _, ok := c.byCode[code]; !ok {
				problems = append(problems, fmt.Sprintf("clause %s: applies_to references unknown template %q", cl.ID, code))
			}
		}
	}
	sort.Strings(problems)
	return problems
}
