// Package server exposes the regbook REST API: policy document
// generation, the template catalog, form validation and the gifts &
// hospitality register.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/regbook/regbook/internal/audit"
	"github.com/regbook/regbook/internal/catalog"
	"github.com/regbook/regbook/internal/register"
)

// Config holds REST server configuration.
type Config struct {
	ListenAddr   string
	CatalogPath  string
	RegisterDB   string
	AuditLogPath string
}

// Server serves the regbook API over HTTP/JSON. The catalog is swapped
// atomically on hot reload; request handlers take a read lock snapshot.
type Server struct {
	mu          sync.RWMutex
	cat         *catalog.Catalog
	catalogHash string

	store *register.Store
	trail *audit.Trail
	cfg   Config
	srv   *http.Server
}

// New creates a server with a loaded catalog, an open register store
// and (when configured) an audit trail.
func New(cfg Config) (*Server, error) {
	cat, hash, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	store, err := register.Open(cfg.RegisterDB)
	if err != nil {
		return nil, fmt.Errorf("open register: %w", err)
	}

	var trail *audit.Trail
	if cfg.AuditLogPath != "" {
		trail, err = audit.Open(cfg.AuditLogPath)
		if err != nil {
			store.Close()
			return nil, fmt.Errorf("open audit trail: %w", err)
		}
	}

	s := &Server{
		cat:         cat,
		catalogHash: hash,
		store:       store,
		trail:       trail,
		cfg:         cfg,
	}
	s.srv = &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

// Handler builds the API routing table. Exported for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", s.handleHealth)

	mux.HandleFunc("GET /v1/templates", s.handleListTemplates)
	mux.HandleFunc("GET /v1/templates/{code}", s.handleGetTemplate)
	mux.HandleFunc("GET /v1/clauses", s.handleListClauses)

	mux.HandleFunc("POST /v1/documents", s.handleGenerateDocument)
	mux.HandleFunc("POST /v1/documents/estimate", s.handleEstimate)
	mux.HandleFunc("POST /v1/documents/required", s.handleRequiredDocuments)

	mux.HandleFunc("GET /v1/register", s.handleListRegister)
	mux.HandleFunc("POST /v1/register", s.handleAddRegister)
	mux.HandleFunc("GET /v1/register/summary", s.handleRegisterSummary)
	mux.HandleFunc("GET /v1/register/export", s.handleRegisterExport)
	mux.HandleFunc("POST /v1/register/{id}/status", s.handleRegisterStatus)
	mux.HandleFunc("DELETE /v1/register/{id}", s.handleDeleteRegister)

	mux.HandleFunc("GET /v1/forms", s.handleListForms)
	mux.HandleFunc("GET /v1/forms/{kind}", s.handleGetForm)
	mux.HandleFunc("POST /v1/forms/{kind}/steps/{step}/validate", s.handleValidateStep)

	return mux
}

// Serve starts the HTTP server. Blocks until shutdown.
func (s *Server) Serve() error {
	log.Printf("regbook: listening on %s", s.cfg.ListenAddr)
	err := s.srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// Close releases the register store and audit trail.
func (s *Server) Close() error {
	var firstErr error
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			firstErr = err
		}
	}
	if s.trail != nil {
		if err := s.trail.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// ReloadCatalog atomically swaps the catalog after a file change.
// Called by the hot-reloader.
func (s *Server) ReloadCatalog() error {
	cat, hash, err := catalog.Load(s.cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("reload catalog: %w", err)
	}

	s.mu.Lock()
	s.cat = cat
	s.catalogHash = hash
	s.mu.Unlock()

	s.recordAudit(audit.Entry{Event: audit.EventCatalogReloaded, CatalogHash: hash})
	return nil
}

// snapshot returns the current catalog and its hash under a read lock.
func (s *Server) snapshot() (*catalog.Catalog, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cat, s.catalogHash
}

func (s *Server) recordAudit(entry audit.Entry) {
	if s.trail == nil {
		return
	}
	if err := s.trail.Record(entry); err != nil {
		log.Printf("regbook: audit record failed: %v", err)
	}
}
