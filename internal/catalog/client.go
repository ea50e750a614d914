package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// API defines the remote operations the book screen depends on.
// This interface is implemented by *Client and can be used for testing.
type API interface {
	ListBooks(ctx context.Context) ([]Book, error)
	CreateBook(ctx context.Context, req CreateRequest) (Book, error)
	UpdateBook(ctx context.Context, req UpdateRequest) error
	DeleteBook(ctx context.Context, id int64) error
}

// Ensure Client implements API at compile time.
var _ API = (*Client)(nil)

// Client talks to the catalog HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultBaseURL   = "http://127.0.0.1:8000"
	defaultUserAgent = "bookshelf/0.1"
	requestTimeout   = 5 * time.Second

	// RequestIDHeader carries a per-request correlation id.
	RequestIDHeader = "X-Request-ID"
)

// StatusError reports a response with an HTTP error status. The request
// reached the server; only the outcome was unsuccessful.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("api %s %s returned status %d", e.Method, e.Path, e.Code)
	}
	return fmt.Sprintf("api %s %s returned status %d: %s", e.Method, e.Path, e.Code, e.Body)
}

// NewClient builds a Client rooted at baseURL. A bare host:port is accepted
// and treated as plain http.
func NewClient(baseURL string) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// BaseURL returns the normalized API root.
func (c *Client) BaseURL() string {
	if c == nil || c.baseURL == nil {
		return ""
	}
	return c.baseURL.String()
}

// ListBooks retrieves every book.
func (c *Client) ListBooks(ctx context.Context) ([]Book, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []Book
	if err := c.do(ctx, http.MethodGet, "/api/books/", nil, &payload); err != nil {
		return nil, err
	}
	if payload == nil {
		payload = []Book{}
	}
	return payload, nil
}

// CreateBook stores a new book and returns the server's representation,
// including the assigned id.
func (c *Client) CreateBook(ctx context.Context, req CreateRequest) (Book, error) {
	if c == nil {
		return Book{}, fmt.Errorf("client is nil")
	}
	var payload Book
	if err := c.do(ctx, http.MethodPost, "/api/books/create/", req, &payload); err != nil {
		return Book{}, err
	}
	return payload, nil
}

// UpdateBook replaces a book's title and release year. The response body is
// ignored.
func (c *Client) UpdateBook(ctx context.Context, req UpdateRequest) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	if req.ID <= 0 {
		return fmt.Errorf("book id required")
	}
	return c.do(ctx, http.MethodPut, bookPath(req.ID), req, nil)
}

// DeleteBook removes a book. The response body is ignored.
func (c *Client) DeleteBook(ctx context.Context, id int64) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	if id <= 0 {
		return fmt.Errorf("book id required")
	}
	return c.do(ctx, http.MethodDelete, bookPath(id), nil, nil)
}

func bookPath(id int64) string {
	return "/api/books/" + strconv.FormatInt(id, 10)
}

func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	reqURL := strings.TrimRight(c.baseURL.String(), "/") + path

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(RequestIDHeader, uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return &StatusError{
			Method: method,
			Path:   path,
			Code:   resp.StatusCode,
			Body:   strings.TrimSpace(string(snippet)),
		}
	}
	if dest == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse base url %q: missing host", raw)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
