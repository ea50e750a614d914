package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/five82/bookshelf/internal/catalog"
	"github.com/five82/bookshelf/internal/server/storage"
)

const (
	healthPath      = "/health"
	maxBodyBytes    = 1 << 20
	shutdownTimeout = 5 * time.Second
)

// Server serves the books API from a repository.
type Server struct {
	repo   storage.Repository
	logger *slog.Logger
	mux    *http.ServeMux
}

// New builds a Server over repo.
func New(repo storage.Repository, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Server{repo: repo, logger: logger, mux: http.NewServeMux()}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /api/books/{$}", s.handleList)
	s.mux.HandleFunc("POST /api/books/create/{$}", s.handleCreate)
	s.mux.HandleFunc("GET /api/books/{id}", s.handleGet)
	s.mux.HandleFunc("PUT /api/books/{id}", s.handleUpdate)
	s.mux.HandleFunc("DELETE /api/books/{id}", s.handleDelete)
	s.mux.HandleFunc("GET "+healthPath, s.handleHealth)
}

// Handler returns the API with request id, logging and recovery applied.
func (s *Server) Handler() http.Handler {
	var h http.Handler = s.mux
	h = recoveryMiddleware(s.logger)(h)
	h = loggingMiddleware(s.logger)(h)
	h = requestIDMiddleware(h)
	return h
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully. ready, when non-nil, receives the bound address.
func (s *Server) ListenAndServe(ctx context.Context, addr string, ready func(net.Addr)) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	if ready != nil {
		ready(ln.Addr())
	}
	s.logger.Info("books api listening", "addr", ln.Addr().String())

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.logger.Info("books api stopped")
	return nil
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "book not found")
		return
	}
	s.logger.Error("repository error", "request_id", RequestID(r.Context()), "error", err)
	writeError(w, http.StatusInternalServerError, "internal server error")
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid book id %q", r.PathValue("id"))
	}
	return id, nil
}

func decodeBody(r *http.Request, dest any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dest); err != nil {
		return fmt.Errorf("invalid json body: %w", err)
	}
	return nil
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	books, err := s.repo.List(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if books == nil {
		books = []catalog.Book{}
	}
	writeJSON(w, http.StatusOK, books)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req catalog.CreateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	book, err := s.repo.Create(r.Context(), req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, book)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	book, err := s.repo.Get(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, book)
}

// handleUpdate replaces the whole row. The id in the path wins over the body.
func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req catalog.UpdateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	book, err := s.repo.Update(r.Context(), catalog.Book{ID: id, Title: req.Title, ReleaseYear: req.ReleaseYear})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, book)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.repo.Delete(r.Context(), id); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type healthResponse struct {
	Status string `json:"status"`
	Books  int    `json:"books"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	books, err := s.repo.List(r.Context())
	if err != nil {
		s.logger.Error("health check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Books: len(books)})
}
