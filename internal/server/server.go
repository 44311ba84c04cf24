// Package server exposes the annotation core over HTTP: project CRUD
// against the injected store, village CSV import, and the four export
// artifacts as downloads.
package server

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/worldsmith/worldsmith/internal/export"
	"github.com/worldsmith/worldsmith/internal/store"
)

// Server routes HTTP requests onto a project store.
type Server struct {
	store       store.Store
	defaultOpts export.Options
}

// New returns a Server over the given store. defaultOpts applies to
// projects saved without export settings.
func New(st store.Store, defaultOpts export.Options) *Server {
	return &Server{store: st, defaultOpts: defaultOpts}
}

// Router builds the chi router.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", s.listProjects)
		r.Route("/projects/{name}", func(r chi.Router) {
			r.Get("/", s.getProject)
			r.Put("/", s.putProject)
			r.Delete("/", s.deleteProject)
			r.Post("/villages", s.importVillages)
			r.Get("/export/{kind}", s.exportArtifact)
		})
	})

	return r
}

// Run serves the API on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("http api listening", "addr", addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// sampler returns a fresh mob sampler for one export request.
func (s *Server) sampler() export.MobSampler {
	r := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	return export.NewMobSampler(r)
}
