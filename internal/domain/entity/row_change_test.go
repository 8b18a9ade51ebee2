package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowChange_Field(t *testing.T) {
	clientID := uuid.New()
	req := &ServiceRequest{ID: uuid.New(), ClientID: clientID, Status: ServiceRequestPending}

	change, err := NewRowChange(TableServiceRequests, ChangeInsert, req.ID, req)
	require.NoError(t, err)

	assert.Equal(t, clientID.String(), change.Field("client_id"))
	assert.Equal(t, "pending", change.Field("status"))
	assert.Empty(t, change.Field("technician_id"))
	assert.Empty(t, change.OldField("client_id"))
}

func TestRowChange_Strip(t *testing.T) {
	change := &RowChange{
		Table:     TableDeliveries,
		Type:      ChangeUpdate,
		Record:    []byte(`{"status":"accepted","pickup_code":"042137"}`),
		OldRecord: []byte(`{"status":"pending","pickup_code":"042137"}`),
	}

	change.Strip("pickup_code", "password_hash")

	assert.Equal(t, "accepted", change.Field("status"))
	assert.Equal(t, "pending", change.OldField("status"))
	assert.NotContains(t, string(change.Record), "pickup_code")
	assert.NotContains(t, string(change.OldRecord), "042137")

	untouched := &RowChange{Record: []byte(`["not","an","object"]`)}
	untouched.Strip("pickup_code")
	assert.JSONEq(t, `["not","an","object"]`, string(untouched.Record))
	assert.Empty(t, untouched.OldRecord)
}
