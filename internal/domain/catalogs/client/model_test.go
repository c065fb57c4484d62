package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"stockpilot/internal/core/apperror"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"+55 (11) 99999-0000", "5511999990000"},
		{"11999990000", "11999990000"},
		{"  555 0102 ", "5550102"},
		{"no digits", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.input))
		})
	}
}

func TestClientValidate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		client    *Client
		wantField string
	}{
		{"valid", NewClient("", "Maria", "11 99999-0000"), ""},
		{"missing name", NewClient("", "", "11999990000"), "name"},
		{"missing phone", NewClient("", "Maria", ""), "phone"},
		{"phone without digits", NewClient("", "Maria", "call me"), "phone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.client.Validate(ctx)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			appErr, ok := apperror.AsAppError(err)
			if assert.True(t, ok, "expected AppError, got %v", err) {
				assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
				assert.Equal(t, tt.wantField, appErr.Details["field"])
			}
		})
	}
}
