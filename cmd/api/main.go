package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deuslabs/pitchboard/internal/application"
	appanalysis "github.com/deuslabs/pitchboard/internal/application/analysis"
	appprojects "github.com/deuslabs/pitchboard/internal/application/projects"
	"github.com/deuslabs/pitchboard/internal/config"
	domanalysis "github.com/deuslabs/pitchboard/internal/domain/analysis"
	domprojects "github.com/deuslabs/pitchboard/internal/domain/projects"
	domuploads "github.com/deuslabs/pitchboard/internal/domain/uploads"
	aiopenai "github.com/deuslabs/pitchboard/internal/infra/ai/openai"
	mysqldb "github.com/deuslabs/pitchboard/internal/infra/db/mysql"
	postgresdb "github.com/deuslabs/pitchboard/internal/infra/db/postgres"
	"github.com/deuslabs/pitchboard/internal/infra/httpserver"
	"github.com/deuslabs/pitchboard/internal/infra/memstore"
	"github.com/deuslabs/pitchboard/internal/infra/reports"
	"github.com/deuslabs/pitchboard/internal/infra/storage"
	"github.com/deuslabs/pitchboard/internal/middleware"
	"github.com/deuslabs/pitchboard/internal/platform/logger"
)

func main() {
	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	// load config
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	zl, err := logger.New(cfg.Log.Mode)
	if err != nil {
		log.Fatalf("logger init error: %v", err)
	}
	defer zl.Sync()

	ctx := context.Background()
	clock := application.SystemClock{}

	// init project registry
	repo, db, cleanup, err := buildRegistry(ctx, cfg)
	if err != nil {
		zl.Fatal("registry init error", "driver", cfg.Registry.Driver, "error", err)
	}
	defer cleanup()

	// init object store (optional; uploads fall back to local keys
	// when the section is empty)
	var store domuploads.ObjectStore
	if cfg.StorageEnabled() {
		st, err := storage.New(ctx, storage.Config{
			Endpoint:  cfg.Storage.Endpoint,
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
			Bucket:    cfg.Storage.Bucket,
			Region:    cfg.Storage.Region,
			UseSSL:    cfg.Storage.UseSSL,
		}, zl)
		if err != nil {
			zl.Fatal("object store init error", "error", err)
		}
		store = st
	} else {
		zl.Warn("remote storage not configured, uploads will use fallback keys")
	}

	// init report source
	source := buildSource(cfg, clock)

	// init services
	projectsSvc := appprojects.NewService(repo, clock, zl)
	analysisSvc := appanalysis.NewService(repo, source, zl)
	analysisSvc.Latency = time.Duration(cfg.Analysis.LatencyMS) * time.Millisecond

	// init router
	checkers := map[string]middleware.HealthChecker{}
	if db != nil {
		checkers["database"] = &middleware.DatabaseHealthChecker{DB: db}
	}
	handler := httpserver.NewRouter(projectsSvc, analysisSvc, store, clock, zl, checkers)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// run server
	go func() {
		zl.Info("server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zl.Fatal("server error", "error", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	zl.Info("shutting down server")

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		zl.Error("shutdown error", "error", err)
	}
}

// buildRegistry picks the registry backend. The in-memory registry is
// the default: state lives for the process lifetime only. The returned
// *sql.DB is nil for the in-memory backend.
func buildRegistry(ctx context.Context, cfg *config.Config) (domprojects.Repository, *sql.DB, func(), error) {
	noop := func() {}
	switch cfg.Registry.Driver {
	case "mysql":
		db, err := mysqldb.Connect(ctx, cfg.MySQLDSN())
		if err != nil {
			return nil, nil, noop, err
		}
		return mysqldb.NewProjectRepository(db), db, func() { db.Close() }, nil
	case "postgres":
		db, err := postgresdb.Connect(ctx, cfg.PostgresDSN())
		if err != nil {
			return nil, nil, noop, err
		}
		return postgresdb.NewProjectRepository(db), db, func() { db.Close() }, nil
	default:
		repo := memstore.NewProjectRepository(time.Duration(cfg.Registry.LatencyMS) * time.Millisecond)
		if cfg.Registry.SeedDemo {
			repo.Seed(memstore.DemoProjects()...)
		}
		return repo, nil, noop, nil
	}
}

func buildSource(cfg *config.Config, clock application.Clock) domanalysis.Source {
	switch cfg.Analysis.Source {
	case "canned":
		return reports.NewCannedSource(clock)
	case "openai":
		return aiopenai.NewClient(cfg.Analysis.APIKey, cfg.Analysis.Model, clock)
	default:
		return reports.NewTemplateSource(clock)
	}
}
