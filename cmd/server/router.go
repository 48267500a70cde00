package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/api-starter/internal/api"
	apiMiddleware "github.com/phrazzld/api-starter/internal/api/middleware"

	// Registers the generated OpenAPI description with swag.
	_ "github.com/phrazzld/api-starter/docs"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.GetHead)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(api.NewCORSMiddleware(app.config.Frontend, app.logger))

	rootHandler := api.NewRootHandler(app.logger)

	api.RegisterDocs(r)

	r.Get("/", rootHandler.Greet)
	r.Get("/health", rootHandler.Health)

	r.NotFound(rootHandler.NotFound)
	r.MethodNotAllowed(rootHandler.MethodNotAllowed)

	return r
}
