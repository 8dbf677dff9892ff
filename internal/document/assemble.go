// Package document assembles firm-specific policy documents: it filters
// the clause library for the firm, runs tiering and attaches the
// metadata downstream exporters and the audit trail need.
package document

import (
	"fmt"
	"time"

	"github.com/regbook/regbook/internal/catalog"
	"github.com/regbook/regbook/internal/model"
	"github.com/regbook/regbook/internal/permission"
	"github.com/regbook/regbook/internal/tier"
)

// Document is a generated, firm-specific policy document. It is a
// derived artifact; regenerating with the same inputs yields the same
// sections and clause order.
type Document struct {
	Code         string                `json:"code"`
	Title        string                `json:"title"`
	FirmName     string                `json:"firm_name"`
	FRN          string                `json:"frn,omitempty"`
	DetailLevel  model.DetailLevel     `json:"detail_level"`
	Sections     []model.TieredSection `json:"sections"`
	PageEstimate int                   `json:"page_estimate"`
	CatalogHash  string                `json:"catalog_hash,omitempty"`
	GeneratedAt  time.Time             `json:"generated_at"`
}

// ClauseIDs lists every selected clause in document order, for the
// audit trail.
func (d *Document) ClauseIDs() []string {
	var ids []string
	for _, sec := range d.Sections {
		for _, c := range sec.Clauses {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// Request carries one generation invocation.
type Request struct {
	Firm      model.FirmProfile   `json:"firm"`
	Code      string              `json:"code"`
	Level     model.DetailLevel   `json:"level,omitempty"`
	Overrides map[string][]string `json:"overrides,omitempty"`
}

// Assemble generates a policy document for the firm. An empty detail
// level falls back to the recommendation for the firm's size. The
// clause library is filtered to the firm's permissions before tiering;
// the tiering engine itself stays permission-agnostic.
func Assemble(cat *catalog.Catalog, catalogHash string, req Request) (*Document, error) {
	tmpl, ok := cat.TemplateByCode(req.Code)
	if !ok {
		return nil, fmt.Errorf("document: unknown template %q", req.Code)
	}

	level := req.Level
	if level == "" {
		level = tier.RecommendedDetailLevel(req.Firm.Size)
	}

	clauses := permission.FilterClauses(cat.Clauses(), tmpl.Code, req.Firm.Permissions)
	sections := tier.ApplyTiering(&tmpl, clauses, level, req.Overrides)

	return &Document{
		Code:         tmpl.Code,
		Title:        tmpl.Name,
		FirmName:     req.Firm.Name,
		FRN:          req.Firm.FRN,
		DetailLevel:  level,
		Sections:     sections,
		PageEstimate: tier.EstimatePageCount(sections),
		CatalogHash:  catalogHash,
		GeneratedAt:  time.Now().UTC(),
	}, nil
}

// RequiredDocuments lists the documents a firm must hold given its
// permissions, with the templates resolved from the catalog. Unknown
// codes from the rule table are skipped.
func RequiredDocuments(cat *catalog.Catalog, perms model.PermissionSet) []model.Template {
	var out []model.Template
	for _, code := range permission.RequiredTemplates(perms) {
		if tmpl, ok := cat.TemplateByCode(code); ok {
			out = append(out, tmpl)
		}
	}
	return out
}
