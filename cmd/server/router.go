package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/studyroom/studyroom-api/internal/api"
	apiMiddleware "github.com/studyroom/studyroom-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	userHandler := api.NewUserHandler(app.userService, app.jwtService)
	subjectHandler := api.NewSubjectHandler(app.subjectService)
	healthHandler := api.NewHealthHandler(app.db)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	// Public endpoints
	r.Post("/users/register", userHandler.Register)
	r.Post("/users/login", userHandler.Login)
	r.Post("/subjects/create", subjectHandler.Create)
	r.Get("/subjects/list", subjectHandler.List)
	r.Get("/health", healthHandler.Check)

	// Protected endpoints
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)
		r.Get("/users/me", userHandler.GetMe)
		r.Put("/users/me", userHandler.UpdateMe)
		r.Delete("/users/me", userHandler.DeleteMe)
	})

	return r
}
