// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-cipher-chat/internal/config"
	"github.com/MKhiriev/go-cipher-chat/internal/logger"
	"github.com/MKhiriev/go-cipher-chat/internal/utils"
	"github.com/MKhiriev/go-cipher-chat/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHashKey = "testhashkey"

// newTestAdapter creates an httpChatAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpChatAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL}
	appCfg := config.ClientApp{HashKey: testHashKey}

	a, err := NewHTTPChatAdapter(adapterCfg, appCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpChatAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── NewHTTPChatAdapter ──────────────────────────────────────────────────────

func TestNewHTTPChatAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPChatAdapter(config.ClientAdapter{HTTPAddress: "  "}, config.ClientApp{}, logger.Nop())
	require.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"localhost:8080/apis", "http://localhost:8080/apis"},
		{"http://localhost:8080/apis/", "http://localhost:8080/apis"},
		{"https://chat.example.com", "https://chat.example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── ReadMessages ────────────────────────────────────────────────────────────

func TestReadMessages_Success(t *testing.T) {
	want := []models.Message{
		{Timestamp: 1700000000000, Name: "alice", Message: "ZW52MQ=="},
		{Timestamp: 1700000001000, Name: "bob", Message: "ZW52Mg=="},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/apis/chat/read", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("from"))
		assert.Equal(t, "private", r.URL.Query().Get("channel"))
		assert.Equal(t, "Bearer "+utils.EncodeGateToken("p1"), r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Trace-ID"))
		writeJSON(t, w, http.StatusOK, want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL+"/apis")
	got, err := a.ReadMessages(context.Background(), "private", 3, "p1")

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "alice", got[0].Name)
	assert.Equal(t, "ZW52Mg==", got[1].Message)
	assert.Equal(t, "private", got[0].Channel)
}

func TestReadMessages_NoPasswordNoHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, []models.Message{})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.ReadMessages(context.Background(), "default", 0, "")

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestReadMessages_PropagatesTraceID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "trace-42", r.Header.Get("X-Trace-ID"))
		writeJSON(t, w, http.StatusOK, []models.Message{})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.ReadMessages(utils.WithTraceID(context.Background(), "trace-42"), "default", 0, "")
	require.NoError(t, err)
}

func TestReadMessages_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.ReadMessages(context.Background(), "private", 0, "wrong")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, http.StatusUnauthorized, StatusOf(err))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Unauthorized", apiErr.Message)
}

func TestReadMessages_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	_, err := a.ReadMessages(context.Background(), "default", 0, "")

	require.Error(t, err)
	assert.Zero(t, StatusOf(err))
}

// ── SendMessage ─────────────────────────────────────────────────────────────

func TestSendMessage_Success(t *testing.T) {
	req := models.SendRequest{Name: "alice", Message: "ZW52", Channel: "private"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/send", r.URL.Path)
		assert.Equal(t, "Bearer "+utils.EncodeGateToken("p1"), r.Header.Get("Authorization"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.True(t, utils.NewHasher(testHashKey).Verify(body, r.Header.Get(utils.HashHeader)))

		var got models.SendRequest
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, req, got)

		writeJSON(t, w, http.StatusOK, models.SendResponse{Success: true})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.SendMessage(context.Background(), req, "p1"))
}

func TestSendMessage_NoHashWithoutKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get(utils.HashHeader))
		writeJSON(t, w, http.StatusOK, models.SendResponse{Success: true})
	}))
	defer srv.Close()

	a, err := NewHTTPChatAdapter(config.ClientAdapter{HTTPAddress: srv.URL}, config.ClientApp{}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, a.SendMessage(context.Background(), models.SendRequest{Name: "a", Message: "m", Channel: "c"}, ""))
}

func TestSendMessage_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.SendMessage(context.Background(), models.SendRequest{Name: "a", Message: "m", Channel: "c"}, "stale")

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestSendMessage_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.ErrorResponse{Error: "Missing required fields"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.SendMessage(context.Background(), models.SendRequest{Name: "a", Message: "m", Channel: "c"}, "")

	assert.ErrorIs(t, err, ErrBadRequest)
	assert.NotErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "Missing required fields")
}

func TestSendMessage_NotSuccessful(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.SendResponse{})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.SendMessage(context.Background(), models.SendRequest{Name: "a", Message: "m", Channel: "c"}, "")

	assert.ErrorIs(t, err, ErrSendRejected)
}

// ── ProbeRead ───────────────────────────────────────────────────────────────

func TestProbeRead_ReturnsStatus(t *testing.T) {
	tests := []struct {
		name     string
		password string
		status   int
	}{
		{name: "gate open", password: "", status: http.StatusOK},
		{name: "gate closed", password: "", status: http.StatusUnauthorized},
		{name: "server error", password: "p1", status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "0", r.URL.Query().Get("from"))
				assert.Equal(t, "private", r.URL.Query().Get("channel"))
				if tt.password == "" {
					assert.Empty(t, r.Header.Get("Authorization"))
				}
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			status, err := a.ProbeRead(context.Background(), "private", tt.password)

			require.NoError(t, err)
			assert.Equal(t, tt.status, status)
		})
	}
}

// ── APIError ────────────────────────────────────────────────────────────────

func TestAPIError_Is(t *testing.T) {
	err := &APIError{Status: http.StatusForbidden}

	assert.ErrorIs(t, err, ErrForbidden)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "http 403: Forbidden", err.Error())
}
