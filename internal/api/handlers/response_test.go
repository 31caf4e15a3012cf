package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusCreated, map[string]string{"k": "v"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, map[string]interface{}{"k": "v"}, env.Data)
	assert.Empty(t, env.Error)
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondNotFound(rec, "нет такого")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "нет такого", env.Error)
	assert.Nil(t, env.Data)
}

func TestRespondInternalErrorWithDetails(t *testing.T) {
	defer SetExposeErrors(false)

	rec := httptest.NewRecorder()
	RespondInternalErrorWithDetails(rec, errors.New("pq: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, decodeEnvelope(t, rec).Message)

	SetExposeErrors(true)
	rec = httptest.NewRecorder()
	RespondInternalErrorWithDetails(rec, errors.New("pq: connection refused"))
	assert.Equal(t, "pq: connection refused", decodeEnvelope(t, rec).Message)
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"valid", `{"name":"ok"}`, false},
		{"unknown field", `{"name":"ok","status":"confirmed"}`, true},
		{"empty", ``, true},
		{"malformed", `{"name":`, true},
		{"two objects", `{"name":"a"}{"name":"b"}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dst payload
			err := DecodeJSON(req, &dst)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "ok", dst.Name)
		})
	}
}

func TestDecodeJSON_EmptyBody(t *testing.T) {
	var dst map[string]interface{}

	err := DecodeJSON(httptest.NewRequest(http.MethodPost, "/", strings.NewReader("")), &dst)
	assert.ErrorIs(t, err, ErrEmptyBody)

	err = DecodeJSON(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"a":`)), &dst)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmptyBody)
}

func TestNotFoundHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFoundHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, decodeEnvelope(t, rec).Error, "/api/nope")
}
