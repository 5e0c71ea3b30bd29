package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"excelsearch/internal/domain"
)

const (
	searchPath = "/api/search"
	uploadPath = "/api/upload"
	countPath  = "/api/products/count"
	clearPath  = "/api/products"

	// UploadField is the multipart field the backend reads the spreadsheet from
	UploadField = "file"
)

// Backend is the catalog service the UI talks to
type Backend interface {
	Search(ctx context.Context, query string) (*domain.SearchResponse, error)
	Upload(ctx context.Context, fileName string, content io.Reader) (*domain.UploadResponse, error)
	Count(ctx context.Context) (int, error)
	Clear(ctx context.Context) (*domain.ClearResponse, error)
}

// Client talks to the catalog backend over HTTP. Requests are never retried.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// NewClient creates a client for baseURL. A zero timeout leaves requests
// without a deadline beyond the caller's context.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: "excelsearch/1.0",
	}
}

// BaseURL returns the backend address requests are sent to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Search runs a free-text query. Result order is passed through untouched.
func (c *Client) Search(ctx context.Context, query string) (*domain.SearchResponse, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, ErrEmptyQuery
	}

	params := url.Values{}
	params.Set("q", q)
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, searchPath, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	var resp domain.SearchResponse
	if err := c.do(req, "search", &resp); err != nil {
		return nil, err
	}

	if resp.Results == nil {
		resp.Results = []domain.SearchResult{}
	}
	if resp.TotalCount == 0 {
		resp.TotalCount = len(resp.Results)
	}
	if resp.Query == "" {
		resp.Query = q
	}

	log.Printf("[catalog] search %q returned %d results", q, len(resp.Results))
	return &resp, nil
}

// Upload sends a spreadsheet as the multipart field "file".
func (c *Client) Upload(ctx context.Context, fileName string, content io.Reader) (*domain.UploadResponse, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile(UploadField, filepath.Base(fileName))
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", fileName, err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+uploadPath, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var resp domain.UploadResponse
	if err := c.do(req, "upload", &resp); err != nil {
		return nil, err
	}

	log.Printf("[catalog] upload %s accepted: %d products", filepath.Base(fileName), resp.ProductsCount)
	return &resp, nil
}

// Count returns the number of products currently in the catalog
func (c *Client) Count(ctx context.Context) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+countPath, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	var resp domain.CountResponse
	if err := c.do(req, "count", &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

// Clear deletes every product in the catalog
func (c *Client) Clear(ctx context.Context) (*domain.ClearResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+clearPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	var resp domain.ClearResponse
	if err := c.do(req, "clear", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// do executes req, classifies failures and decodes a JSON body into out
func (c *Client) do(req *http.Request, op string, out interface{}) error {
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[catalog] %s %s id=%s failed after %v: %v", req.Method, req.URL.Path, requestID, time.Since(start), err)
		return NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[catalog] %s %s id=%s body read failed: %v", req.Method, req.URL.Path, requestID, err)
		return NetworkError{Op: op, Err: err}
	}

	log.Printf("[catalog] %s %s id=%s status=%d in %v", req.Method, req.URL.Path, requestID, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return ServerError{Op: op, StatusCode: resp.StatusCode, Detail: parseDetail(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%s: failed to decode response: %w", op, err)
	}
	return nil
}

// parseDetail extracts a string "detail" field from an error body. Bodies that
// are not JSON, or whose detail is not a string, yield "".
func parseDetail(body []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Detail) == 0 {
		return ""
	}
	var detail string
	if err := json.Unmarshal(payload.Detail, &detail); err != nil {
		return ""
	}
	return strings.TrimSpace(detail)
}
