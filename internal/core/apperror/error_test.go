package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFactoryStatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantCode   string
		wantStatus int
	}{
		{"invalid input", NewInvalidInput("bad", "name"), CodeInvalidInput, http.StatusBadRequest},
		{"invalid reference", NewInvalidReference("category", "categoryId", "x"), CodeInvalidReference, http.StatusBadRequest},
		{"not found", NewNotFound("product", "p1"), CodeNotFound, http.StatusNotFound},
		{"duplicate name", NewDuplicateName("client", "Maria"), CodeDuplicateName, http.StatusConflict},
		{"duplicate phone", NewDuplicatePhone("client", "111"), CodeDuplicatePhone, http.StatusConflict},
		{"conflict", NewConflict("concurrent write"), CodeConflict, http.StatusConflict},
		{"timeout", NewTimeout(errors.New("deadline")), CodeTimeout, http.StatusGatewayTimeout},
		{"unavailable", NewUnavailable(errors.New("conn refused")), CodeUnavailable, http.StatusServiceUnavailable},
		{"internal", NewInternal(errors.New("boom")), CodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.wantStatus, tt.err.HTTPStatus)
		})
	}
}

func TestUnwrapThroughWrappedChain(t *testing.T) {
	cause := errors.New("row locked")
	appErr := NewConflict("concurrent write").WithCause(cause)
	wrapped := fmt.Errorf("replace client: %w", appErr)

	got, ok := AsAppError(wrapped)
	assert.True(t, ok)
	assert.Equal(t, CodeConflict, got.Code)
	assert.True(t, errors.Is(wrapped, cause))
}

func TestGetHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, GetHTTPStatus(NewNotFound("client", "c1")))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus(errors.New("plain")))
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFound("client", "c1")))
	assert.False(t, IsNotFound(NewConflict("x")))

	assert.True(t, IsInvalidInput(NewInvalidInput("bad", "")))
	assert.True(t, IsDuplicate(NewDuplicateName("client", "Maria")))
	assert.True(t, IsDuplicate(NewDuplicatePhone("client", "111")))
	assert.False(t, IsDuplicate(NewConflict("x")))
}

func TestWithDetail(t *testing.T) {
	err := NewConflict("x").WithDetail("entity", "client").WithDetail("constraint", "clients_phone_normalized_key")
	assert.Equal(t, "client", err.Details["entity"])
	assert.Equal(t, "clients_phone_normalized_key", err.Details["constraint"])
}
