package stats

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"

	"github.com/ayoisaiah/slumber/internal/apperr"
	"github.com/ayoisaiah/slumber/internal/models"
	"github.com/ayoisaiah/slumber/session"
	"github.com/ayoisaiah/slumber/store"
)

//go:embed web/*
var web embed.FS

var tpl = template.Must(
	template.New("index.html").ParseFS(web, "web/index.html"),
)

var errBadLimit = &apperr.Error{
	Message: "limit must be a positive integer",
}

// TemplateData is passed to the history page.
type TemplateData struct {
	Limit int
}

// Opener opens the store for the duration of a single request.
type Opener func() (store.DB, error)

// Server serves a read-only history page on localhost. The store is opened
// for each request and closed before the response is written, so the lock is
// free for other slumber commands in between.
type Server struct {
	open  Opener
	limit int

	// bolt locks the file per handle, so requests take turns
	mu sync.Mutex
}

// NewServer returns a history server that charts the last limit sessions by
// default.
func NewServer(open Opener, limit int) *Server {
	return &Server{
		open:  open,
		limit: limit,
	}
}

// load reads every saved session through a freshly opened store.
func (s *Server) load() (sessions []models.SleepSession, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.open()
	if err != nil {
		return nil, err
	}

	defer func() {
		err = errors.Join(err, db.Close())
	}()

	return session.Load(db)
}

type errorHandler func(w http.ResponseWriter, r *http.Request) error

func (h errorHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	err := h(w, r)
	if err == nil {
		return
	}

	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errBadLimit):
		status = http.StatusBadRequest
	case errors.Is(err, store.ErrAlreadyRunning):
		status = http.StatusServiceUnavailable
	}

	slog.Error(
		"history request failed",
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)

	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}

func (s *Server) limitParam(r *http.Request) (int, error) {
	v := r.URL.Query().Get("limit")
	if v == "" {
		return s.limit, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, errBadLimit
	}

	return n, nil
}

func (s *Server) index(w http.ResponseWriter, _ *http.Request) error {
	var buf bytes.Buffer

	err := tpl.Execute(&buf, &TemplateData{Limit: s.limit})
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	_, err = w.Write(buf.Bytes())

	return err
}

func (s *Server) sessions(w http.ResponseWriter, _ *http.Request) error {
	sessions, err := s.load()
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, sessions)

	return nil
}

func (s *Server) history(w http.ResponseWriter, r *http.Request) error {
	n, err := s.limitParam(r)
	if err != nil {
		return err
	}

	sessions, err := s.load()
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, Chart(sessions, n))

	return nil
}

func (s *Server) summary(w http.ResponseWriter, r *http.Request) error {
	n, err := s.limitParam(r)
	if err != nil {
		return err
	}

	sessions, err := s.load()
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, Summarize(session.Last(sessions, n)))

	return nil
}

// Handler returns the router for the history page and its API.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/health"))

	r.Method(http.MethodGet, "/", errorHandler(s.index))

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/sessions", errorHandler(s.sessions))
		r.Method(http.MethodGet, "/history", errorHandler(s.history))
		r.Method(http.MethodGet, "/summary", errorHandler(s.summary))
	})

	return r
}

// ListenAndServe serves the history page on localhost until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, port uint) error {
	srv := &http.Server{
		Addr:              net.JoinHostPort("127.0.0.1", fmt.Sprint(port)),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		errCh <- srv.ListenAndServe()
	}()

	slog.Info("history server started", slog.String("addr", srv.Addr))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			5*time.Second,
		)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	}
}
