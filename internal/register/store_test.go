package register

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"github.com/regbook/regbook/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAddAssignsDefaults(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	e, err := s.Add(ctx, model.RegisterEntry{
		Kind:         model.KindGift,
		Direction:    model.DirectionReceived,
		Description:  "Bottle of wine",
		Counterparty: "Vendor Ltd",
		Employee:     "j.smith",
		ValuePence:   3500,
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if e.ID == "" {
		t.Error("expected assigned ID")
	}
	if e.Status != model.StatusPending {
		t.Errorf("default status = %q, want pending", e.Status)
	}
	if e.RecordedAt.IsZero() || e.OccurredAt.IsZero() {
		t.Error("expected stamped timestamps")
	}

	got, err := s.Get(ctx, e.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Description != "Bottle of wine" || got.ValuePence != 3500 {
		t.Errorf("round-trip mismatch: %+v", got)
	}
}

func TestAddRejectsInvalidStatus(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Add(context.Background(), model.RegisterEntry{
		Kind:   model.KindGift,
		Status: model.EntryStatus("maybe"),
	})
	if err == nil {
		t.Error("expected error for invalid status")
	}
}

func TestGetNotFound(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func seedEntries(t *testing.T, s *Store) {
	t.Helper()
	ctx := context.Background()
	entries := []model.RegisterEntry{
		{Kind: model.KindGift, Direction: model.DirectionReceived, Employee: "j.smith", ValuePence: 3500, Description: "Wine", Counterparty: "Vendor Ltd"},
		{Kind: model.KindHospitality, Direction: model.DirectionReceived, Employee: "j.smith", ValuePence: 12000, Description: "Dinner", Counterparty: "Broker LLP", ConflictFlag: true},
		{Kind: model.KindHospitality, Direction: model.DirectionGiven, Employee: "a.jones", ValuePence: 8000, Description: "Event tickets", Counterparty: "Client Plc"},
	}
	for _, e := range entries {
		if _, err := s.Add(ctx, e); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
}

func TestListFilters(t *testing.T) {
	s := newTestStore(t)
	seedEntries(t, s)
	ctx := context.Background()

	all, err := s.List(ctx, Filter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(all))
	}

	gifts, _ := s.List(ctx, Filter{Kind: model.KindGift})
	if len(gifts) != 1 {
		t.Errorf("gift filter returned %d entries, want 1", len(gifts))
	}

	smith, _ := s.List(ctx, Filter{Employee: "j.smith"})
	if len(smith) != 2 {
		t.Errorf("employee filter returned %d entries, want 2", len(smith))
	}
}

func TestSetStatus(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	e, _ := s.Add(ctx, model.RegisterEntry{Kind: model.KindGift, Employee: "j.smith"})

	if err := s.SetStatus(ctx, e.ID, model.StatusApproved, "compliance.officer"); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	got, _ := s.Get(ctx, e.ID)
	if got.Status != model.StatusApproved || got.Approver != "compliance.officer" {
		t.Errorf("status update not persisted: %+v", got)
	}

	if err := s.SetStatus(ctx, "missing", model.StatusApproved, "x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := s.SetStatus(ctx, e.ID, model.EntryStatus("bogus"), "x"); err == nil {
		t.Error("expected error for invalid status")
	}
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	e, _ := s.Add(ctx, model.RegisterEntry{Kind: model.KindGift, Employee: "j.smith"})

	if err := s.Delete(ctx, e.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, e.ID); !errors.Is(err, ErrNotFound) {
		t.Error("expected entry gone after delete")
	}
	if err := s.Delete(ctx, e.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("double delete should return ErrNotFound, got %v", err)
	}
}

func TestSummarize(t *testing.T) {
	s := newTestStore(t)
	seedEntries(t, s)

	sum, err := s.Summarize(context.Background())
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if sum.TotalEntries != 3 {
		t.Errorf("TotalEntries = %d, want 3", sum.TotalEntries)
	}
	if sum.TotalValuePence != 23500 {
		t.Errorf("TotalValuePence = %d, want 23500", sum.TotalValuePence)
	}
	if sum.PendingCount != 3 {
		t.Errorf("PendingCount = %d, want 3", sum.PendingCount)
	}
	if sum.ConflictCount != 1 {
		t.Errorf("ConflictCount = %d, want 1", sum.ConflictCount)
	}
	if sum.ByKind["hospitality"] != 2 || sum.ByKind["gift"] != 1 {
		t.Errorf("ByKind = %v", sum.ByKind)
	}
	if sum.ValueByEmployee["j.smith"] != 15500 {
		t.Errorf("ValueByEmployee[j.smith] = %d, want 15500", sum.ValueByEmployee["j.smith"])
	}
}

func TestExportCSV(t *testing.T) {
	s := newTestStore(t)
	seedEntries(t, s)

	var buf bytes.Buffer
	if err := s.ExportCSV(context.Background(), &buf, Filter{}); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse exported csv: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("expected header + 3 rows, got %d", len(records))
	}
	if records[0][0] != "id" || records[0][6] != "value_gbp" {
		t.Errorf("unexpected header: %v", records[0])
	}
	// Values render in pounds.
	found := false
	for _, row := range records[1:] {
		if row[6] == "120.00" {
			found = true
		}
	}
	if !found {
		t.Error("expected 12000 pence rendered as 120.00")
	}
}

func TestEntriesPersistTimes(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	when := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	e, _ := s.Add(ctx, model.RegisterEntry{Kind: model.KindGift, Employee: "j.smith", OccurredAt: when})

	got, _ := s.Get(ctx, e.ID)
	if !got.OccurredAt.Equal(when) {
		t.Errorf("OccurredAt = %v, want %v", got.OccurredAt, when)
	}
}

func TestGetRejectsCorruptTimestamps(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO entries (id, kind, direction, description, counterparty,
			employee, value_pence, status, approver, conflict_flag, occurred_at, recorded_at)
		VALUES ('bad-row', 'gift', 'received', 'x', '', 'j.smith', 100, 'pending', '', 0, 'not-a-time', 'not-a-time')`)
	if err != nil {
		t.Fatalf("insert corrupt row: %v", err)
	}

	if _, err := s.Get(ctx, "bad-row"); err == nil {
		t.Error("expected error for corrupt occurred_at, got nil")
	}
}
