package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/deuslabs/pitchboard/internal/application"
	appanalysis "github.com/deuslabs/pitchboard/internal/application/analysis"
	appprojects "github.com/deuslabs/pitchboard/internal/application/projects"
	appuploads "github.com/deuslabs/pitchboard/internal/application/uploads"
	domprojects "github.com/deuslabs/pitchboard/internal/domain/projects"
	domuploads "github.com/deuslabs/pitchboard/internal/domain/uploads"
	"github.com/deuslabs/pitchboard/internal/middleware"
	"github.com/deuslabs/pitchboard/internal/platform/logger"
)

type Router struct {
	projectsSvc *appprojects.Service
	analysisSvc *appanalysis.Service
	store       domuploads.ObjectStore // nil when remote storage is not configured
	clock       application.Clock
	log         *logger.Logger
}

// NewRouter assembles the HTTP surface. checkers are extra health
// probes beyond the built-in storage one; nil is fine.
func NewRouter(
	projectsSvc *appprojects.Service,
	analysisSvc *appanalysis.Service,
	store domuploads.ObjectStore,
	clock application.Clock,
	log *logger.Logger,
	checkers map[string]middleware.HealthChecker,
) http.Handler {
	if clock == nil {
		clock = application.SystemClock{}
	}
	if log == nil {
		log = logger.NewNop()
	}
	r := &Router{
		projectsSvc: projectsSvc,
		analysisSvc: analysisSvc,
		store:       store,
		clock:       clock,
		log:         log,
	}

	mux := chi.NewRouter()
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	mux.Use(middleware.Logging(log))
	mux.Use(middleware.MetricsMiddleware)
	mux.Use(middleware.RateLimitMiddleware(100, 50))

	allCheckers := map[string]middleware.HealthChecker{}
	for name, c := range checkers {
		allCheckers[name] = c
	}
	if store != nil {
		allCheckers["storage"] = &middleware.StorageHealthChecker{Store: store}
	}
	mux.Get("/health", middleware.HealthHandler(allCheckers))
	mux.Get("/health/live", middleware.LivenessHandler)
	mux.Get("/metrics", middleware.MetricsHandler)

	mux.Route("/v1", func(rt chi.Router) {
		rt.Get("/projects", r.wrap(r.handleList))
		rt.Post("/projects", r.wrap(r.handleCreate))
		rt.Get("/projects/stats", r.wrap(r.handleStats))
		rt.Get("/projects/{id}", r.wrap(r.handleGet))
		rt.Patch("/projects/{id}", r.wrap(r.handleUpdate))
		rt.Delete("/projects/{id}", r.wrap(r.handleDelete))
		rt.Get("/projects/{id}/analysis", r.wrap(r.handleAnalysis))
		rt.Get("/files/{key}", r.wrap(r.handleDownload))
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

// wrap maps domain errors onto status codes so handlers stay small.
func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		err := h(w, req)
		if err == nil {
			return
		}

		var fieldErr *appprojects.FieldError
		if errors.As(err, &fieldErr) {
			writeJSON(w, http.StatusUnprocessableEntity, fieldErr)
			return
		}
		var valErr *domuploads.ValidationError
		if errors.As(err, &valErr) {
			writeJSON(w, http.StatusUnprocessableEntity, &appprojects.FieldError{
				Field:   "file",
				Message: valErr.Reason,
			})
			return
		}
		if errors.Is(err, domprojects.ErrNotFound) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		r.log.Error("request failed", "path", req.URL.Path, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// GET /v1/projects?q=
func (r *Router) handleList(w http.ResponseWriter, req *http.Request) error {
	query := middleware.SanitizeString(req.URL.Query().Get("q"))
	list, err := r.projectsSvc.Search(req.Context(), query)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, list)
}

// POST /v1/projects
// multipart form: file (required), projectName + context (optional).
// The upload runs inline: validate, push to remote storage, fall back
// to a synthesized key when storage is unavailable, then register the
// project.
func (r *Router) handleCreate(w http.ResponseWriter, req *http.Request) error {
	if err := req.ParseMultipartForm(domuploads.MaxFileSize + 1<<20); err != nil {
		return &appprojects.FieldError{Field: "file", Message: "Please select a file to upload"}
	}
	file, header, err := req.FormFile("file")
	if err != nil {
		return &appprojects.FieldError{Field: "file", Message: "Please select a file to upload"}
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	pipe := appuploads.NewPipeline(r.store, r.clock, r.log)
	key, err := pipe.Upload(req.Context(), domuploads.File{
		Name:        header.Filename,
		ContentType: contentType,
		Size:        header.Size,
		Content:     file,
	})
	if err != nil {
		return err
	}
	middleware.IncrementUploads()
	if pipe.Status() == domuploads.StatusFallbackSucceeded {
		middleware.IncrementUploadsFallback()
	}

	p, err := r.projectsSvc.CreateFromUpload(req.Context(), appprojects.CreateFromUploadCommand{
		Name:     middleware.SanitizeString(req.FormValue("projectName")),
		Context:  middleware.SanitizeString(req.FormValue("context")),
		FileName: header.Filename,
		FileKey:  key,
	})
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusCreated, p)
}

// GET /v1/projects/{id}
func (r *Router) handleGet(w http.ResponseWriter, req *http.Request) error {
	id := chi.URLParam(req, "id")
	if err := middleware.ValidateProjectID(id); err != nil {
		return &appprojects.FieldError{Field: "id", Message: err.Error()}
	}
	p, err := r.projectsSvc.Get(req.Context(), domprojects.ID(id))
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, p)
}

// PATCH /v1/projects/{id}
// Body carries only the fields to change.
func (r *Router) handleUpdate(w http.ResponseWriter, req *http.Request) error {
	id := chi.URLParam(req, "id")
	var body struct {
		Name    *string `json:"projectName"`
		Context *string `json:"context"`
		FileKey *string `json:"fileKey"`
		Status  *string `json:"status"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}

	upd := domprojects.Update{
		Name:    body.Name,
		Context: body.Context,
		FileKey: body.FileKey,
	}
	if body.Status != nil {
		st := domprojects.Status(*body.Status)
		upd.Status = &st
	}
	if err := r.projectsSvc.Update(req.Context(), domprojects.ID(id), upd); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// DELETE /v1/projects/{id}
func (r *Router) handleDelete(w http.ResponseWriter, req *http.Request) error {
	id := chi.URLParam(req, "id")
	if err := r.projectsSvc.Delete(req.Context(), domprojects.ID(id)); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// GET /v1/projects/stats
func (r *Router) handleStats(w http.ResponseWriter, req *http.Request) error {
	stats, err := r.projectsSvc.Stats(req.Context())
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, stats)
}

// GET /v1/projects/{id}/analysis
func (r *Router) handleAnalysis(w http.ResponseWriter, req *http.Request) error {
	id := chi.URLParam(req, "id")
	report, err := r.analysisSvc.Fetch(req.Context(), domprojects.ID(id))
	if err != nil {
		return err
	}
	middleware.IncrementAnalyses()
	return writeJSON(w, http.StatusOK, report)
}

// GET /v1/files/{key}
// Managed download of the stored artifact; when the store cannot serve
// the bytes the client is redirected to the direct URL instead.
func (r *Router) handleDownload(w http.ResponseWriter, req *http.Request) error {
	key := chi.URLParam(req, "key")
	if err := middleware.ValidateFileKey(key); err != nil {
		return &appprojects.FieldError{Field: "key", Message: err.Error()}
	}
	if r.store == nil {
		http.Error(w, "remote storage not configured", http.StatusNotFound)
		return nil
	}

	data, ok := r.store.Download(req.Context(), key)
	if !ok {
		http.Redirect(w, req, r.store.ResolveURL(key), http.StatusFound)
		return nil
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", key))
	_, err := w.Write(data)
	return err
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}
