package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/courtside/statsync/internal/server/storage"
	"github.com/courtside/statsync/pkg/api"
)

// DocumentStore defines the storage operations the handler needs
type DocumentStore interface {
	Get(ctx context.Context, collection, id string) (*api.Document, error)
	Set(ctx context.Context, collection string, doc api.Document, merge bool) error
	Delete(ctx context.Context, collection, id string) error
	QueryByField(ctx context.Context, collection, field, value, orderBy string) ([]api.Document, error)
}

// DocumentHandler serves the document store API
type DocumentHandler struct {
	logger  *slog.Logger
	storage DocumentStore
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(logger *slog.Logger, storage DocumentStore) *DocumentHandler {
	return &DocumentHandler{
		logger:  logger,
		storage: storage,
	}
}

// Routes returns the handler's route tree
func (h *DocumentHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/{collection}", h.handleQuery)
	r.Get("/{collection}/{id}", h.handleGet)
	r.Put("/{collection}/{id}", h.handleSet)
	r.Delete("/{collection}/{id}", h.handleDelete)
	return r
}

// handleGet serves GET /{collection}/{id}. Tombstoned documents are returned
// with the tombstone set, not as 404: late-arriving readers must observe the
// deletion.
func (h *DocumentHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")
	id := chi.URLParam(r, "id")

	doc, err := h.storage.Get(r.Context(), collection, id)
	if err != nil {
		if errors.Is(err, storage.ErrDocumentNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "document not found")
			return
		}
		h.logger.Error("failed to get document", "collection", collection, "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal", "failed to get document")
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

// handleSet serves PUT /{collection}/{id}?merge=true
func (h *DocumentHandler) handleSet(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")
	id := chi.URLParam(r, "id")
	merge := r.URL.Query().Get("merge") == "true"

	var doc api.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid document body")
		return
	}
	// The URL is authoritative for the document identity.
	doc.ID = id

	if err := h.storage.Set(r.Context(), collection, doc, merge); err != nil {
		h.logger.Error("failed to set document", "collection", collection, "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal", "failed to write document")
		return
	}

	h.logger.Info("document written",
		"collection", collection,
		"id", id,
		"version", doc.Version,
		"merge", merge,
		"deleted", doc.Deleted)

	w.WriteHeader(http.StatusNoContent)
}

// handleDelete serves DELETE /{collection}/{id}, a hard removal
func (h *DocumentHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")
	id := chi.URLParam(r, "id")

	if err := h.storage.Delete(r.Context(), collection, id); err != nil {
		if errors.Is(err, storage.ErrDocumentNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "document not found")
			return
		}
		h.logger.Error("failed to delete document", "collection", collection, "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal", "failed to delete document")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleQuery serves GET /{collection}?field=&value=&order_by=
func (h *DocumentHandler) handleQuery(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")
	field := r.URL.Query().Get("field")
	value := r.URL.Query().Get("value")
	orderBy := r.URL.Query().Get("order_by")

	if field == "" || value == "" {
		writeError(w, http.StatusBadRequest, "bad_request", "field and value are required")
		return
	}

	docs, err := h.storage.QueryByField(r.Context(), collection, field, value, orderBy)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedField) {
			writeError(w, http.StatusBadRequest, "bad_request", "unsupported query field or ordering")
			return
		}
		h.logger.Error("failed to query documents", "collection", collection, "field", field, "error", err)
		writeError(w, http.StatusInternalServerError, "internal", "failed to query documents")
		return
	}

	writeJSON(w, http.StatusOK, api.QueryResponse{Documents: docs})
}

// writeJSON writes a JSON response body
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError writes the standard error envelope
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, api.ErrorResponse{Error: code, Message: message})
}
