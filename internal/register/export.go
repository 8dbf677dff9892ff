package register

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

// csvHeader is the fixed column order of register exports.
var csvHeader = []string{
	"id", "kind", "direction", "description", "counterparty", "employee",
	"value_gbp", "status", "approver", "conflict_flag", "occurred_at", "recorded_at",
}

// ExportCSV writes the register (after filtering) as CSV. Values are
// rendered in pounds with two decimal places.
func (s *Store) ExportCSV(ctx context.Context, w io.Writer, f Filter) error {
	entries, err := s.List(ctx, f)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("register: write csv header: %w", err)
	}
	for _, e := range entries {
		record := []string{
			e.ID,
			string(e.Kind),
			string(e.Direction),
			e.Description,
			e.Counterparty,
			e.Employee,
			fmt.Sprintf("%.2f", float64(e.ValuePence)/100),
			string(e.Status),
			e.Approver,
			strconv.FormatBool(e.ConflictFlag),
			e.OccurredAt.Format(time.RFC3339),
			e.RecordedAt.Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("register: write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
