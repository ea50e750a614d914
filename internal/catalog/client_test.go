package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != defaultBaseURL {
		t.Fatalf("url = %q, want %q", u.String(), defaultBaseURL)
	}

	u, err = parseBaseURL("10.0.0.5:9000")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" || u.Host != "10.0.0.5:9000" {
		t.Fatalf("url = %q, want http://10.0.0.5:9000", u.String())
	}

	u, err = parseBaseURL("https://example.com/books-api/?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != "https://example.com/books-api" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestParseBaseURL_MissingHost(t *testing.T) {
	if _, err := parseBaseURL("http://"); err == nil {
		t.Fatalf("parseBaseURL returned nil error, want missing host")
	}
}

type recordedRequest struct {
	Method    string
	Path      string
	Body      string
	RequestID string
	UserAgent string
	CType     string
}

func newRecordingServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, func() []recordedRequest) {
	t.Helper()
	var mu sync.Mutex
	var seen []recordedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		seen = append(seen, recordedRequest{
			Method:    r.Method,
			Path:      r.URL.Path,
			Body:      string(body),
			RequestID: r.Header.Get(RequestIDHeader),
			UserAgent: r.Header.Get("User-Agent"),
			CType:     r.Header.Get("Content-Type"),
		})
		mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(server.Close)
	return server, func() []recordedRequest {
		mu.Lock()
		defer mu.Unlock()
		out := make([]recordedRequest, len(seen))
		copy(out, seen)
		return out
	}
}

func TestClient_CRUDEndpoints(t *testing.T) {
	t.Parallel()

	server, requests := newRecordingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/books/":
			_ = json.NewEncoder(w).Encode([]Book{{ID: 1, Title: "Dune", ReleaseYear: 1965}})
		case r.Method == http.MethodPost && r.URL.Path == "/api/books/create/":
			_ = json.NewEncoder(w).Encode(Book{ID: 2, Title: "Foundation", ReleaseYear: 1951})
		case r.Method == http.MethodPut && r.URL.Path == "/api/books/1":
			_, _ = w.Write([]byte(`{"ok":true}`))
		case r.Method == http.MethodDelete && r.URL.Path == "/api/books/2":
			w.WriteHeader(http.StatusNoContent)
		default:
			http.NotFound(w, r)
		}
	})

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	books, err := c.ListBooks(ctx)
	if err != nil {
		t.Fatalf("ListBooks returned error: %v", err)
	}
	if len(books) != 1 || books[0].Title != "Dune" || books[0].ReleaseYear != 1965 {
		t.Fatalf("ListBooks = %#v, want Dune/1965", books)
	}

	created, err := c.CreateBook(ctx, CreateRequest{Title: "Foundation", ReleaseYear: 1951})
	if err != nil {
		t.Fatalf("CreateBook returned error: %v", err)
	}
	if created.ID != 2 || created.Title != "Foundation" {
		t.Fatalf("CreateBook = %#v, want id=2 Foundation", created)
	}

	if err := c.UpdateBook(ctx, UpdateRequest{ID: 1, Title: "Dune Messiah", ReleaseYear: 1969}); err != nil {
		t.Fatalf("UpdateBook returned error: %v", err)
	}
	if err := c.DeleteBook(ctx, 2); err != nil {
		t.Fatalf("DeleteBook returned error: %v", err)
	}

	got := requests()
	if len(got) != 4 {
		t.Fatalf("server saw %d requests, want 4", len(got))
	}
	if got[1].Body != `{"title":"Foundation","release_year":1951}` {
		t.Fatalf("create body = %s", got[1].Body)
	}
	if got[2].Body != `{"id":1,"title":"Dune Messiah","release_year":1969}` {
		t.Fatalf("update body = %s", got[2].Body)
	}
	if got[1].CType != "application/json" || got[0].CType != "" {
		t.Fatalf("content types = %q/%q, want only bodies typed", got[0].CType, got[1].CType)
	}
	ids := map[string]bool{}
	for _, r := range got {
		if !strings.HasPrefix(r.UserAgent, "bookshelf/") {
			t.Fatalf("User-Agent = %q, want bookshelf/*", r.UserAgent)
		}
		if r.RequestID == "" || ids[r.RequestID] {
			t.Fatalf("request id %q missing or reused", r.RequestID)
		}
		ids[r.RequestID] = true
	}
}

func TestClient_BasePathPrefixIsKept(t *testing.T) {
	server, requests := newRecordingServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	c, err := NewClient(server.URL + "/prefix/")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	books, err := c.ListBooks(context.Background())
	if err != nil {
		t.Fatalf("ListBooks returned error: %v", err)
	}
	if books == nil || len(books) != 0 {
		t.Fatalf("ListBooks = %#v, want empty non-nil slice", books)
	}
	if got := requests(); len(got) != 1 || got[0].Path != "/prefix/api/books/" {
		t.Fatalf("requests = %#v, want /prefix/api/books/", got)
	}
}

func TestClient_StatusAndDecodeErrors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("{not-json"))
		case http.MethodDelete:
			http.Error(w, "nope", http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.ListBooks(context.Background())
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("ListBooks error = %v, want decode response error", err)
	}

	err = c.DeleteBook(context.Background(), 7)
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("DeleteBook error = %v, want *StatusError", err)
	}
	if statusErr.Code != http.StatusInternalServerError || statusErr.Path != "/api/books/7" {
		t.Fatalf("StatusError = %#v, want 500 on /api/books/7", statusErr)
	}
	if !strings.Contains(err.Error(), "returned status 500") {
		t.Fatalf("error text = %q", err.Error())
	}
}

func TestClient_TransportErrorIsNotStatusError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	c, err := NewClient(url)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	err = c.DeleteBook(context.Background(), 1)
	if err == nil {
		t.Fatalf("DeleteBook returned nil error against closed server")
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		t.Fatalf("transport failure reported as StatusError: %v", err)
	}
}

func TestClient_RejectsMissingIDs(t *testing.T) {
	c, err := NewClient("127.0.0.1:1")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if err := c.UpdateBook(context.Background(), UpdateRequest{}); err == nil {
		t.Fatalf("UpdateBook returned nil error, want id required")
	}
	if err := c.DeleteBook(context.Background(), 0); err == nil {
		t.Fatalf("DeleteBook returned nil error, want id required")
	}
}

func TestIndexOfAndClone(t *testing.T) {
	books := []Book{{ID: 3}, {ID: 9}}
	if IndexOf(books, 9) != 1 || IndexOf(books, 4) != -1 {
		t.Fatalf("IndexOf mismatch")
	}
	dup := CloneBooks(books)
	dup[0].ID = 100
	if books[0].ID != 3 {
		t.Fatalf("CloneBooks shares backing array")
	}
	if CloneBooks(nil) != nil {
		t.Fatalf("CloneBooks(nil) should stay nil")
	}
}
