package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/regbook/regbook/internal/audit"
	"github.com/regbook/regbook/internal/document"
	"github.com/regbook/regbook/internal/forms"
	"github.com/regbook/regbook/internal/model"
	"github.com/regbook/regbook/internal/register"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, format string, args ...any) {
	writeJSON(w, status, map[string]string{"error": fmt.Sprintf(format, args...)})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	_, hash := s.snapshot()
	writeJSON(w, http.StatusOK, map[string]string{
		"status":       "ok",
		"catalog_hash": hash,
	})
}

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	cat, _ := s.snapshot()
	writeJSON(w, http.StatusOK, cat.Templates())
}

func (s *Server) handleGetTemplate(w http.ResponseWriter, r *http.Request) {
	cat, _ := s.snapshot()
	code := r.PathValue("code")
	tmpl, ok := cat.TemplateByCode(code)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown template %q", code)
		return
	}
	writeJSON(w, http.StatusOK, tmpl)
}

func (s *Server) handleListClauses(w http.ResponseWriter, r *http.Request) {
	cat, _ := s.snapshot()
	clauses := cat.Clauses()
	if tmpl := r.URL.Query().Get("template"); tmpl != "" {
		filtered := clauses[:0]
		for _, c := range clauses {
			if c.AppliesToTemplate(tmpl) {
				filtered = append(filtered, c)
			}
		}
		clauses = filtered
	}
	writeJSON(w, http.StatusOK, clauses)
}

func (s *Server) handleGenerateDocument(w http.ResponseWriter, r *http.Request) {
	var req document.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: %v", err)
		return
	}

	cat, hash := s.snapshot()
	doc, err := document.Assemble(cat, hash, req)
	if err != nil {
		writeError(w, http.StatusNotFound, "%v", err)
		return
	}

	s.recordAudit(audit.Entry{
		Event:       audit.EventDocumentGenerated,
		Firm:        doc.FirmName,
		FRN:         doc.FRN,
		Template:    doc.Code,
		DetailLevel: string(doc.DetailLevel),
		ClauseIDs:   doc.ClauseIDs(),
		CatalogHash: hash,
	})

	writeJSON(w, http.StatusOK, doc)
}

// handleEstimate runs a full assembly but returns only the sizing
// metadata, so the UI can preview length without storing a document.
func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	var req document.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: %v", err)
		return
	}

	cat, hash := s.snapshot()
	doc, err := document.Assemble(cat, hash, req)
	if err != nil {
		writeError(w, http.StatusNotFound, "%v", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"code":          doc.Code,
		"detail_level":  doc.DetailLevel,
		"section_count": len(doc.Sections),
		"clause_count":  len(doc.ClauseIDs()),
		"page_estimate": doc.PageEstimate,
	})
}

func (s *Server) handleRequiredDocuments(w http.ResponseWriter, r *http.Request) {
	var perms model.PermissionSet
	if err := json.NewDecoder(r.Body).Decode(&perms); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: %v", err)
		return
	}

	cat, _ := s.snapshot()
	tmpls := document.RequiredDocuments(cat, perms)
	if tmpls == nil {
		tmpls = []model.Template{}
	}
	writeJSON(w, http.StatusOK, tmpls)
}

func (s *Server) handleListRegister(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := register.Filter{
		Kind:     model.EntryKind(q.Get("kind")),
		Status:   model.EntryStatus(q.Get("status")),
		Employee: q.Get("employee"),
	}

	entries, err := s.store.List(r.Context(), f)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list register: %v", err)
		return
	}
	if entries == nil {
		entries = []model.RegisterEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleAddRegister(w http.ResponseWriter, r *http.Request) {
	var e model.RegisterEntry
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: %v", err)
		return
	}

	added, err := s.store.Add(r.Context(), e)
	if err != nil {
		writeError(w, http.StatusBadRequest, "add entry: %v", err)
		return
	}
	writeJSON(w, http.StatusCreated, added)
}

func (s *Server) handleRegisterSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := s.store.Summarize(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "summarize register: %v", err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

func (s *Server) handleRegisterExport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := register.Filter{
		Kind:     model.EntryKind(q.Get("kind")),
		Status:   model.EntryStatus(q.Get("status")),
		Employee: q.Get("employee"),
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="register.csv"`)
	if err := s.store.ExportCSV(r.Context(), w, f); err != nil {
		// Headers are already out; the status cannot change now.
		log.Printf("regbook: export register: %v", err)
	}
}

func (s *Server) handleRegisterStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req struct {
		Status   model.EntryStatus `json:"status"`
		Approver string            `json:"approver"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: %v", err)
		return
	}
	if !model.ValidEntryStatus(req.Status) {
		writeError(w, http.StatusBadRequest, "invalid status %q", req.Status)
		return
	}

	if err := s.store.SetStatus(r.Context(), id, req.Status, req.Approver); err != nil {
		if err == register.ErrNotFound {
			writeError(w, http.StatusNotFound, "entry %q not found", id)
			return
		}
		writeError(w, http.StatusInternalServerError, "set status: %v", err)
		return
	}

	s.recordAudit(audit.Entry{
		Event:   audit.EventRegisterStatus,
		EntryID: id,
		Status:  string(req.Status),
		Actor:   req.Approver,
	})

	entry, err := s.store.Get(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "get entry: %v", err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (s *Server) handleDeleteRegister(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.store.Delete(r.Context(), id); err != nil {
		if err == register.ErrNotFound {
			writeError(w, http.StatusNotFound, "entry %q not found", id)
			return
		}
		writeError(w, http.StatusInternalServerError, "delete entry: %v", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListForms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, forms.All())
}

func (s *Server) handleGetForm(w http.ResponseWriter, r *http.Request) {
	kind := forms.FormKind(r.PathValue("kind"))
	form, ok := forms.ByKind(kind)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown form %q", kind)
		return
	}
	writeJSON(w, http.StatusOK, form)
}

func (s *Server) handleValidateStep(w http.ResponseWriter, r *http.Request) {
	kind := forms.FormKind(r.PathValue("kind"))
	form, ok := forms.ByKind(kind)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown form %q", kind)
		return
	}

	step, err := strconv.Atoi(r.PathValue("step"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid step %q", r.PathValue("step"))
		return
	}

	var sub forms.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: %v", err)
		return
	}

	issues, err := forms.ValidateStep(form, step, sub)
	if err != nil {
		writeError(w, http.StatusBadRequest, "%v", err)
		return
	}
	if issues == nil {
		issues = []forms.Issue{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"valid":  len(issues) == 0,
		"issues": issues,
	})
}
