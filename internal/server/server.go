// Package server is the HTTP+JSON term API consumed by the glossary client.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"glossary/internal/glossary"
	"glossary/internal/store"
)

// TermStore is the persistence the server needs.
type TermStore interface {
	Create(ctx context.Context, f glossary.Form) (glossary.Term, error)
	Get(ctx context.Context, id int64) (glossary.Term, error)
	List(ctx context.Context, q store.ListQuery) ([]glossary.Term, error)
	Search(ctx context.Context, keyword string) ([]glossary.Term, error)
	Update(ctx context.Context, id int64, f glossary.Form) error
	Delete(ctx context.Context, id int64) error
}

// Server serves the term API.
type Server struct {
	store      TermStore
	logger     logrus.FieldLogger
	tracer     oteltrace.Tracer
	httpServer *http.Server
}

// New creates a server listening on addr. A nil tracer disables spans.
func New(addr string, st TermStore, logger logrus.FieldLogger, tracer oteltrace.Tracer) *Server {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("glossary/server")
	}
	s := &Server{
		store:  st,
		logger: logger,
		tracer: tracer,
	}
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the routed API.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler)
	r.Use(s.requestLogger)
	r.Use(s.traceRequests)

	r.Post("/add_term/", s.addTerm)
	r.Get("/terms/", s.listTerms)
	r.Get("/search/", s.searchTerms)
	r.Get("/terms/{id}", s.getTerm)
	r.Delete("/delete_term/{id}", s.deleteTerm)
	r.Put("/update_term/{id}", s.updateTerm)
	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof("term API listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down term API")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}
