package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/cors"
	"github.com/phrazzld/api-starter/internal/config"
)

// CORSOptions returns the cross-origin policy for the API.
//
// Every origin is allowed and reflected back in Access-Control-Allow-Origin,
// and preflights may request any header. This is a permissive default for
// development; deployments should narrow it to the configured frontend by
// replacing AllowOriginFunc with AllowedOrigins: []string{cfg.URL}, where cfg
// is the config.FrontendConfig handed to NewCORSMiddleware.
func CORSOptions() cors.Options {
	return cors.Options{
		AllowOriginFunc: func(r *http.Request, origin string) bool {
			return true
		},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPut,
			http.MethodPatch,
			http.MethodPost,
			http.MethodDelete,
		},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"X-Request-Id", "X-Trace-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}
}

// NewCORSMiddleware builds the CORS middleware and logs that the policy is not
// restricted to the configured frontend URL.
func NewCORSMiddleware(cfg config.FrontendConfig, logger *slog.Logger) func(http.Handler) http.Handler {
	logger.Warn("CORS policy allows requests from any origin",
		"frontend_url", cfg.URL)

	return cors.Handler(CORSOptions())
}
