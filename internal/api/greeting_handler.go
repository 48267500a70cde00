package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/api-starter/internal/api/shared"
)

// Greeting is the body served on the root route.
const Greeting = "Hello, world 👋"

// HealthResponse is the payload returned by the health endpoint.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// RootHandler serves the placeholder routes of the API.
type RootHandler struct {
	logger *slog.Logger
}

// NewRootHandler creates a RootHandler.
func NewRootHandler(logger *slog.Logger) *RootHandler {
	return &RootHandler{logger: logger.With("component", "root_handler")}
}

// Greet godoc
//
//	@Summary		Greeting
//	@Description	Returns a static greeting. Placeholder until real routes are added.
//	@Tags			root
//	@Produce		plain
//	@Success		200	{string}	string	"Hello, world 👋"
//	@Router			/ [get]
func (h *RootHandler) Greet(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithText(w, r, http.StatusOK, Greeting)
}

// Health godoc
//
//	@Summary		Health check
//	@Description	Reports that the process is up and serving requests.
//	@Tags			root
//	@Produce		json
//	@Success		200	{object}	HealthResponse
//	@Router			/health [get]
func (h *RootHandler) Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{Status: "ok"})
}

// NotFound answers requests for unregistered paths.
func (h *RootHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotFound, "Route not found")
}

// MethodNotAllowed answers requests using a method the path does not support.
func (h *RootHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.logger.Debug("method not allowed", "method", r.Method, "path", r.URL.Path)
	shared.RespondWithError(w, r, http.StatusMethodNotAllowed, "Method not allowed")
}
