package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/statsync/internal/server/storage/sqlite"
	"github.com/courtside/statsync/pkg/api"
)

func createTestHandler(t *testing.T) *httptest.Server {
	t.Helper()

	store, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	handler := NewDocumentHandler(slog.New(slog.DiscardHandler), store)
	server := httptest.NewServer(handler.Routes())
	t.Cleanup(server.Close)

	return server
}

func putDocument(t *testing.T, server *httptest.Server, collection string, doc api.Document, merge bool) *http.Response {
	t.Helper()

	body, err := json.Marshal(doc)
	require.NoError(t, err)

	url := server.URL + "/" + collection + "/" + doc.ID
	if merge {
		url += "?merge=true"
	}
	req, err := http.NewRequest(http.MethodPut, url, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func getDocument(t *testing.T, server *httptest.Server, collection, id string) (*http.Response, api.Document) {
	t.Helper()

	resp, err := http.Get(server.URL + "/" + collection + "/" + id)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var doc api.Document
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	}
	return resp, doc
}

func sampleDoc(id string) api.Document {
	return api.Document{
		ID:           id,
		OwnerID:      "coach-1",
		Payload:      json.RawMessage(`{"status":"scheduled","date":"2025-03-15T18:30:00Z"}`),
		Version:      1,
		LastModified: time.Date(2025, 3, 14, 19, 0, 0, 0, time.UTC),
	}
}

func TestPutThenGet(t *testing.T) {
	server := createTestHandler(t)

	resp := putDocument(t, server, "games", sampleDoc("g1"), false)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, doc := getDocument(t, server, "games", "g1")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "g1", doc.ID)
	assert.Equal(t, "coach-1", doc.OwnerID)
	assert.EqualValues(t, 1, doc.Version)
}

func TestGetMissing(t *testing.T) {
	server := createTestHandler(t)

	resp, _ := getDocument(t, server, "games", "missing")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestURLOverridesBodyID(t *testing.T) {
	server := createTestHandler(t)

	doc := sampleDoc("body-id")
	body, err := json.Marshal(doc)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPut, server.URL+"/games/url-id", bytes.NewReader(body))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	getResp, got := getDocument(t, server, "games", "url-id")
	require.Equal(t, http.StatusOK, getResp.StatusCode)
	assert.Equal(t, "url-id", got.ID)

	missing, _ := getDocument(t, server, "games", "body-id")
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}

func TestMergePreservesTombstonedPayload(t *testing.T) {
	server := createTestHandler(t)

	resp := putDocument(t, server, "games", sampleDoc("g1"), false)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	now := time.Date(2025, 3, 14, 20, 0, 0, 0, time.UTC)
	tombstone := api.Document{ID: "g1", Version: 2, LastModified: now, Deleted: true, DeletedAt: now}
	resp = putDocument(t, server, "games", tombstone, true)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	getResp, got := getDocument(t, server, "games", "g1")
	require.Equal(t, http.StatusOK, getResp.StatusCode, "tombstoned documents stay readable")
	assert.True(t, got.Deleted)
	assert.Equal(t, "coach-1", got.OwnerID)
	assert.JSONEq(t, string(sampleDoc("g1").Payload), string(got.Payload))
}

func TestPutInvalidBody(t *testing.T) {
	server := createTestHandler(t)

	req, err := http.NewRequest(http.MethodPut, server.URL+"/games/g1", bytes.NewReader([]byte("{broken")))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Equal(t, "bad_request", errResp.Error)
}

func TestDeleteDocument(t *testing.T) {
	server := createTestHandler(t)

	resp := putDocument(t, server, "games", sampleDoc("g1"), false)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	req, err := http.NewRequest(http.MethodDelete, server.URL+"/games/g1", nil)
	require.NoError(t, err)
	delResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer delResp.Body.Close()
	assert.Equal(t, http.StatusNoContent, delResp.StatusCode)

	getResp, _ := getDocument(t, server, "games", "g1")
	assert.Equal(t, http.StatusNotFound, getResp.StatusCode)

	req, err = http.NewRequest(http.MethodDelete, server.URL+"/games/g1", nil)
	require.NoError(t, err)
	againResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer againResp.Body.Close()
	assert.Equal(t, http.StatusNotFound, againResp.StatusCode)
}

func TestQueryByOwner(t *testing.T) {
	server := createTestHandler(t)

	first := sampleDoc("g1")
	second := sampleDoc("g2")
	second.Payload = json.RawMessage(`{"status":"scheduled","date":"2025-03-20T18:30:00Z"}`)
	other := sampleDoc("g3")
	other.OwnerID = "coach-2"

	for _, doc := range []api.Document{first, second, other} {
		resp := putDocument(t, server, "games", doc, false)
		require.Equal(t, http.StatusNoContent, resp.StatusCode)
	}

	resp, err := http.Get(server.URL + "/games?field=owner_id&value=coach-1&order_by=date")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result api.QueryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	require.Len(t, result.Documents, 2)
	assert.Equal(t, "g2", result.Documents[0].ID)
	assert.Equal(t, "g1", result.Documents[1].ID)
}

func TestQueryValidation(t *testing.T) {
	server := createTestHandler(t)

	resp, err := http.Get(server.URL + "/games?field=owner_id")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "value is required")

	resp, err = http.Get(server.URL + "/games?field=status&value=completed")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Contains(t, errResp.Message, "unsupported")
}

func TestHealth(t *testing.T) {
	handler := NewHealthHandler(slog.New(slog.DiscardHandler))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	handler.Health(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
