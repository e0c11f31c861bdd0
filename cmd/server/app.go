package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/studyroom/studyroom-api/internal/api"
	"github.com/studyroom/studyroom-api/internal/config"
	"github.com/studyroom/studyroom-api/internal/platform/postgres"
	"github.com/studyroom/studyroom-api/internal/service"
	"github.com/studyroom/studyroom-api/internal/service/auth"
	"github.com/studyroom/studyroom-api/internal/store"
)

// application holds the shared application dependencies to simplify
// wiring and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore    store.UserStore
	subjectStore store.SubjectStore

	jwtService auth.JWTService

	userService    api.UserService
	subjectService api.SubjectService
}

// newApplication creates an application instance with all dependencies
// initialized. The configuration, logger and database connection must be
// established before calling this.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	hasher, err := auth.NewHasher(cfg.Auth.PasswordScheme)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize password hasher: %w", err)
	}
	verifier, err := auth.NewVerifier(cfg.Auth.PasswordScheme)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize password verifier: %w", err)
	}
	logger.Info("Password scheme configured", "scheme", cfg.Auth.PasswordScheme)

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.subjectStore = postgres.NewPostgresSubjectStore(db, logger)

	app.userService = service.NewUserService(db, app.userStore, hasher, verifier, logger)
	app.subjectService = service.NewSubjectService(db, app.subjectStore, logger)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the HTTP server and blocks until shutdown.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
