package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBody(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	testCases := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid", body: `{"name":"a"}`},
		{name: "unknown field", body: `{"name":"a","extra":1}`, wantErr: true},
		{name: "trailing document", body: `{"name":"a"}{"name":"b"}`, wantErr: true},
		{name: "broken json", body: `{"name":`, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))
			var p payload
			err := DecodeBody(r, &p)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "a", p.Name)
		})
	}
}

func TestWriteValidationError(t *testing.T) {
	type payload struct {
		Email string `validate:"required,email"`
	}
	err := validator.New().Struct(payload{Email: "nope"})
	require.Error(t, err)

	rr := httptest.NewRecorder()
	require.NoError(t, WriteValidationError(rr, err))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), `"payload.Email":"email"`)
}

func TestWriteErrorCode(t *testing.T) {
	rr := httptest.NewRecorder()
	require.NoError(t, WriteErrorCode(rr, "cart is empty", "empty_cart", http.StatusBadRequest))

	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"cart is empty","code":"empty_cart"}`, rr.Body.String())
}
