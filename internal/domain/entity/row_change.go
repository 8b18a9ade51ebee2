package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ChangeType is the kind of row mutation carried by a RowChange.
type ChangeType string

const (
	ChangeInsert ChangeType = "INSERT"
	ChangeUpdate ChangeType = "UPDATE"
	ChangeDelete ChangeType = "DELETE"
)

// Tables that emit row changes.
const (
	TableServiceRequests    = "service_requests"
	TableDeliveries         = "deliveries"
	TableOrders             = "orders"
	TableProducts           = "products"
	TableProfiles           = "profiles"
	TableTechnicians        = "technicians"
	TableWalletTransactions = "wallet_transactions"
	TableSupportTickets     = "support_tickets"
	TablePlatformSettings   = "platform_settings"
	TableCategories         = "categories"
	TableSpecialties        = "specialties"
	TableServices           = "service_offerings"
	TableDevices            = "profile_devices"
)

// RowChange describes one committed row mutation.
type RowChange struct {
	Table     string          `json:"table"`
	Type      ChangeType      `json:"type"`
	RecordID  uuid.UUID       `json:"record_id"`
	Record    json.RawMessage `json:"record,omitempty"`
	OldRecord json.RawMessage `json:"old_record,omitempty"`
	At        time.Time       `json:"at"`
}

// NewRowChange encodes record into a change event.
func NewRowChange(table string, changeType ChangeType, recordID uuid.UUID, record any) (*RowChange, error) {
	change := &RowChange{
		Table:    table,
		Type:     changeType,
		RecordID: recordID,
		At:       time.Now().UTC(),
	}

	if record != nil {
		raw, err := json.Marshal(record)
		if err != nil {
			return nil, err
		}
		change.Record = raw
	}

	return change, nil
}

// Field returns a top-level field of the new record as a string, or "" when absent.
func (c *RowChange) Field(name string) string {
	return lookupField(c.Record, name)
}

// OldField returns a top-level field of the previous record as a string, or "" when absent.
func (c *RowChange) OldField(name string) string {
	return lookupField(c.OldRecord, name)
}

func lookupField(raw json.RawMessage, name string) string {
	if len(raw) == 0 {
		return ""
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return ""
	}

	value, ok := fields[name]
	if !ok || value == nil {
		return ""
	}

	if s, ok := value.(string); ok {
		return s
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		return ""
	}

	return string(encoded)
}

// Strip removes top-level fields from both records. Records that are not JSON objects are kept as they are.
func (c *RowChange) Strip(names ...string) {
	c.Record = stripFields(c.Record, names)
	c.OldRecord = stripFields(c.OldRecord, names)
}

func stripFields(raw json.RawMessage, names []string) json.RawMessage {
	if len(raw) == 0 {
		return raw
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return raw
	}

	removed := false
	for _, name := range names {
		if _, ok := fields[name]; ok {
			delete(fields, name)
			removed = true
		}
	}
	if !removed {
		return raw
	}

	stripped, err := json.Marshal(fields)
	if err != nil {
		return raw
	}

	return stripped
}
