package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateClientRequest_KeepsClientSuppliedUserID(t *testing.T) {
	payload := `{"userId":"u1","name":"Ana","phone":"11999990000"}`

	var req CreateClientRequest
	require.NoError(t, json.Unmarshal([]byte(payload), &req))

	item := req.ToEntity()

	// The id submitted on create must be the id the record is stored
	// under, so later edit/delete by userId find it.
	assert.Equal(t, "u1", item.ID)
	assert.Equal(t, "Ana", item.Name)
	assert.Equal(t, "11999990000", item.Phone)
}

func TestCreateClientRequest_GeneratesIDWhenAbsent(t *testing.T) {
	req := CreateClientRequest{Name: "Ana", Phone: "11999990000"}

	item := req.ToEntity()
	assert.NotEmpty(t, item.ID)
}

func TestEditClientRequest_UsesSameIdentifierField(t *testing.T) {
	payload := `{"userId":"u1","name":"Ana Renamed","phone":""}`

	var req EditClientRequest
	require.NoError(t, json.Unmarshal([]byte(payload), &req))

	item := req.ToEntity()
	assert.Equal(t, "u1", item.ID)
}
