package model

import "time"

// EntryKind distinguishes gifts from hospitality.
type EntryKind string

const (
	KindGift        EntryKind = "gift"
	KindHospitality EntryKind = "hospitality"
)

// EntryDirection records whether the benefit was given or received.
type EntryDirection string

const (
	DirectionGiven    EntryDirection = "given"
	DirectionReceived EntryDirection = "received"
)

// EntryStatus is the approval state of a register entry.
type EntryStatus string

const (
	StatusPending  EntryStatus = "pending"
	StatusApproved EntryStatus = "approved"
	StatusDeclined EntryStatus = "declined"
)

// ValidEntryStatus reports whether s is a known status value.
func ValidEntryStatus(s EntryStatus) bool {
	switch s {
	case StatusPending, StatusApproved, StatusDeclined:
		return true
	}
	return false
}

// RegisterEntry is one record in the gifts & hospitality register.
// Values are held in pence to avoid float accumulation in summaries.
type RegisterEntry struct {
	ID           string         `json:"id"`
	Kind         EntryKind      `json:"kind"`
	Direction    EntryDirection `json:"direction"`
	Description  string         `json:"description"`
	Counterparty string         `json:"counterparty"`
	Employee     string         `json:"employee"`
	ValuePence   int64          `json:"value_pence"`
	Status       EntryStatus    `json:"status"`
	Approver     string         `json:"approver,omitempty"`
	ConflictFlag bool           `json:"conflict_flag"`
	OccurredAt   time.Time      `json:"occurred_at"`
	RecordedAt   time.Time      `json:"recorded_at"`
}
