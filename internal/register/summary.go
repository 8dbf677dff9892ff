package register

import (
	"context"

	"github.com/regbook/regbook/internal/model"
)

// Summary aggregates the register for the compliance dashboard.
type Summary struct {
	TotalEntries    int              `json:"total_entries"`
	PendingCount    int              `json:"pending_count"`
	ConflictCount   int              `json:"conflict_count"`
	TotalValuePence int64            `json:"total_value_pence"`
	ByKind          map[string]int   `json:"by_kind"`
	ByStatus        map[string]int   `json:"by_status"`
	ByDirection     map[string]int   `json:"by_direction"`
	ValueByEmployee map[string]int64 `json:"value_by_employee"`
}

// Summarize computes dashboard aggregates over the whole register.
func (s *Store) Summarize(ctx context.Context) (Summary, error) {
	entries, err := s.List(ctx, Filter{})
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{
		ByKind:          make(map[string]int),
		ByStatus:        make(map[string]int),
		ByDirection:     make(map[string]int),
		ValueByEmployee: make(map[string]int64),
	}
	for _, e := range entries {
		sum.TotalEntries++
		sum.TotalValuePence += e.ValuePence
		sum.ByKind[string(e.Kind)]++
		sum.ByStatus[string(e.Status)]++
		sum.ByDirection[string(e.Direction)]++
		sum.ValueByEmployee[e.Employee] += e.ValuePence
		if e.Status == model.StatusPending {
			sum.PendingCount++
		}
		if e.ConflictFlag {
			sum.ConflictCount++
		}
	}
	return sum, nil
}
