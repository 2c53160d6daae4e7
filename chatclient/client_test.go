package chatclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheKalyaniMohite/TableGrapeAgent/chatclient"
)

func TestClientSendMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/chat/message", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "farm-1", body["farm_id"])
		assert.Equal(t, "when to harvest?", body["message"])
		assert.Equal(t, "sess-1", body["session_id"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"reply":"Check brix first.","session_id":"sess-1"}`))
	}))
	defer server.Close()

	client := chatclient.New(server.URL + "/api")
	res, err := client.SendMessage(context.Background(), "farm-1", "when to harvest?", "en", "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "Check brix first.", res.Reply)
	assert.Equal(t, "sess-1", res.SessionID)
}

func TestClientHistory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/chat/history", r.URL.Path)
		assert.Equal(t, "farm-1", r.URL.Query().Get("farm_id"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":"d1","role":"user","content":"hi","created_at":"2026-03-01T10:00:00Z"},
			{"id":"d2","role":"assistant","content":"hello","created_at":"2026-03-01T10:00:01Z"}
		]`))
	}))
	defer server.Close()

	client := chatclient.New(server.URL + "/api")
	msgs, err := client.History(context.Background(), "farm-1", 10)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "d1", msgs[0].ID)
	assert.Equal(t, "hello", msgs[1].Content)
}

func TestClientClearHistory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "farm-1", r.URL.Query().Get("farm_id"))
		_, _ = w.Write([]byte(`{"ok":true,"deleted":4}`))
	}))
	defer server.Close()

	client := chatclient.New(server.URL + "/api")
	deleted, err := client.ClearHistory(context.Background(), "farm-1")
	require.NoError(t, err)
	assert.Equal(t, int64(4), deleted)
}

func TestClientSurfacesHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"farm_not_found"}`, http.StatusNotFound)
	}))
	defer server.Close()

	client := chatclient.New(server.URL + "/api")
	_, err := client.SendMessage(context.Background(), "missing", "hi", "en", "")

	var httpErr *chatclient.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	assert.Contains(t, httpErr.Body, "farm_not_found")
}
