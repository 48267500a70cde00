package shared

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type greetRequest struct {
	Name  string `json:"name" validate:"required,max=32"`
	Email string `json:"email" validate:"omitempty,email"`
}

type selfValidating struct {
	Value int `json:"value"`
}

func (s selfValidating) Validate() error {
	if s.Value < 0 {
		return errors.New("value must not be negative")
	}
	return nil
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		requestBody string
		wantErr     bool
		errContains string
	}{
		{
			name:        "valid json",
			requestBody: `{"name": "test", "email": "test@example.com"}`,
		},
		{
			name:        "invalid json",
			requestBody: `{"name": "test",}`,
			wantErr:     true,
			errContains: "invalid character",
		},
		{
			name:        "empty body",
			requestBody: "",
			wantErr:     true,
			errContains: "EOF",
		},
		{
			name:        "unknown field",
			requestBody: `{"name": "test", "admin": true}`,
			wantErr:     true,
			errContains: "unknown field",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(tc.requestBody))
			var target greetRequest

			err := DecodeJSON(req, &target)

			if tc.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "test", target.Name)
		})
	}
}

func TestValidateRequest(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateRequest(&greetRequest{Name: "ada"}))
	assert.Error(t, ValidateRequest(&greetRequest{}))
	assert.Error(t, ValidateRequest(&greetRequest{Name: "ada", Email: "not-an-email"}))

	assert.NoError(t, ValidateRequest(selfValidating{Value: 1}))
	assert.EqualError(t, ValidateRequest(selfValidating{Value: -1}), "value must not be negative")
}

func TestDecodeAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantOK      bool
		wantStatus  int
		wantMessage string
	}{
		{
			name:   "valid request",
			body:   `{"name":"ada"}`,
			wantOK: true,
		},
		{
			name:        "malformed body",
			body:        `{`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid request format",
		},
		{
			name:        "missing required field",
			body:        `{"email":"ada@example.com"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid request: Name failed on the 'required' rule",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			captureLogs(t)
			req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(tc.body))
			w := httptest.NewRecorder()
			var target greetRequest

			ok := DecodeAndValidate(w, req, &target)

			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, "ada", target.Name)
				assert.Zero(t, w.Body.Len(), "nothing should be written on success")
				return
			}

			assert.Equal(t, tc.wantStatus, w.Code)
			var response ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tc.wantMessage, response.Error)
		})
	}
}

func TestValidationMessageNonValidatorError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Invalid request", ValidationMessage(errors.New("boom")))
}
