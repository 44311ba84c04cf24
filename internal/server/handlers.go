package server

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/worldsmith/worldsmith/internal/export"
	"github.com/worldsmith/worldsmith/internal/project"
	"github.com/worldsmith/worldsmith/internal/store"
	"github.com/worldsmith/worldsmith/internal/village"
)

func (s *Server) listProjects(w http.ResponseWriter, r *http.Request) {
	slugs, err := s.store.List(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if slugs == nil {
		slugs = []string{}
	}
	respondJSON(w, http.StatusOK, map[string][]string{"projects": slugs})
}

func (s *Server) getProject(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.loadProject(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, doc)
}

func (s *Server) putProject(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 32<<20))
	if err != nil {
		respondError(w, http.StatusBadRequest, "reading request body: "+err.Error())
		return
	}
	doc, err := project.Parse(body)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if name := chi.URLParam(r, "name"); doc.Slug() != name {
		respondError(w, http.StatusBadRequest, "document world name does not match URL")
		return
	}
	if err := s.store.Save(r.Context(), doc); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"saved": doc.Slug()})
}

func (s *Server) deleteProject(w http.ResponseWriter, r *http.Request) {
	err := s.store.Delete(r.Context(), chi.URLParam(r, "name"))
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "project not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) importVillages(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.loadProject(w, r)
	if !ok {
		return
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 8<<20))
	if err != nil {
		respondError(w, http.StatusBadRequest, "reading request body: "+err.Error())
		return
	}
	villages, err := village.ParseCSV(string(body))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	gen := village.NewNameGenerator(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	stats := village.Derive(villages, doc.Regions, doc.World().Type, gen)

	if err := s.store.Save(r.Context(), doc); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]int{
		"parsed":    len(villages),
		"assigned":  stats.Assigned,
		"unmatched": stats.Unmatched,
	})
}

func (s *Server) exportArtifact(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.loadProject(w, r)
	if !ok {
		return
	}

	opts := s.defaultOpts
	if doc.ExportSettings != nil {
		opts = *doc.ExportSettings
	}
	notify := func(msg string, sev export.Severity) {
		slog.Info("export note", "severity", sev, "msg", msg)
	}
	e := export.NewExporter(opts, s.sampler(), notify)
	world := doc.World()

	var art export.Artifact
	var err error
	switch kind := chi.URLParam(r, "kind"); kind {
	case "regions":
		art, err = e.Regions(world, doc.Regions)
	case "achievements":
		art, err = e.Achievements(world, doc.Regions)
	case "events":
		art, err = e.Events(world, doc.Regions)
	case "rules":
		art, err = e.Rules(world, doc.Regions)
	default:
		respondError(w, http.StatusNotFound, "unknown export kind "+kind)
		return
	}
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/yaml; charset=utf-8")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment",
		map[string]string{"filename": art.Filename}))
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, art.Content)
}

// loadProject resolves the {name} URL parameter against the store,
// writing the error response itself on failure.
func (s *Server) loadProject(w http.ResponseWriter, r *http.Request) (*project.Document, bool) {
	name := chi.URLParam(r, "name")
	doc, err := s.store.Load(r.Context(), name)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "project not found")
		return nil, false
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return nil, false
	}
	return doc, true
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encoding response", "err", err)
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
