package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/courtside/statsync/pkg/api"
)

// HTTPStore talks to the document store server over its JSON HTTP API.
type HTTPStore struct {
	httpClient *http.Client
	baseURL    string
}

var _ Store = (*HTTPStore)(nil)

// NewHTTPStore creates a new HTTP document store client
func NewHTTPStore(baseURL string) *HTTPStore {
	return &HTTPStore{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GetDocument fetches one document by collection and id
func (c *HTTPStore) GetDocument(ctx context.Context, collection, id string) (*api.Document, error) {
	var doc api.Document
	path := fmt.Sprintf("/api/v1/docs/%s/%s", url.PathEscape(collection), url.PathEscape(id))
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// SetDocument writes a document, merging into the existing one when merge is
// set
func (c *HTTPStore) SetDocument(ctx context.Context, collection, id string, doc api.Document, merge bool) error {
	path := fmt.Sprintf("/api/v1/docs/%s/%s", url.PathEscape(collection), url.PathEscape(id))
	if merge {
		path += "?merge=true"
	}
	if err := c.doRequest(ctx, http.MethodPut, path, doc, nil); err != nil {
		return fmt.Errorf("set document request failed: %w", err)
	}
	return nil
}

// DeleteDocument removes a document outright
func (c *HTTPStore) DeleteDocument(ctx context.Context, collection, id string) error {
	path := fmt.Sprintf("/api/v1/docs/%s/%s", url.PathEscape(collection), url.PathEscape(id))
	if err := c.doRequest(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("delete document request failed: %w", err)
	}
	return nil
}

// QueryByField returns all documents whose field matches value
func (c *HTTPStore) QueryByField(ctx context.Context, collection, field, value, orderBy string) ([]api.Document, error) {
	query := url.Values{}
	query.Set("field", field)
	query.Set("value", value)
	if orderBy != "" {
		query.Set("order_by", orderBy)
	}

	var resp api.QueryResponse
	path := fmt.Sprintf("/api/v1/docs/%s?%s", url.PathEscape(collection), query.Encode())
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("query request failed: %w", err)
	}
	return resp.Documents, nil
}

// doRequest performs one HTTP round trip with JSON bodies on both sides
func (c *HTTPStore) doRequest(ctx context.Context, method, path string, body, result any) error {
	u := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return ErrDocumentNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Message)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
