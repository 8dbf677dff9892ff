package audit

// Event names recorded in the trail.
const (
	EventDocumentGenerated = "document_generated"
	EventRegisterStatus    = "register_status_changed"
	EventCatalogReloaded   = "catalog_reloaded"
)

// Entry is one line in the hash-chained JSONL audit trail. All fields
// are concrete types (no map[string]any) so json.Marshal field order is
// deterministic and hashing reproducible.
type Entry struct {
	Timestamp   string   `json:"ts"`
	Event       string   `json:"event"`
	Firm        string   `json:"firm,omitempty"`
	FRN         string   `json:"frn,omitempty"`
	Template    string   `json:"template,omitempty"`
	DetailLevel string   `json:"detail_level,omitempty"`
	ClauseIDs   []string `json:"clause_ids,omitempty"`
	EntryID     string   `json:"entry_id,omitempty"`
	Status      string   `json:"status,omitempty"`
	Actor       string   `json:"actor,omitempty"`
	CatalogHash string   `json:"catalog_hash,omitempty"`
	PrevHash    string   `json:"prev_hash"`
}
