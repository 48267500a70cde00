package api

import (
	"bytes"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/api-starter/internal/api/shared"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"github.com/swaggo/swag"
)

// DocsPath is the prefix under which the API documentation is served.
const DocsPath = "/docs"

// RegisterDocs mounts the Swagger UI and the OpenAPI description on r.
// The description itself must be registered with swag beforehand, which the
// generated docs package does in its init function.
//
//	GET /docs          UI page
//	GET /docs/json     OpenAPI description
//	GET /docs/*        UI assets and doc.json
func RegisterDocs(r chi.Router) {
	ui := httpSwagger.Handler(
		httpSwagger.URL(DocsPath+"/doc.json"),
		httpSwagger.DocExpansion("list"),
	)

	r.Get(DocsPath, serveUIIndex(ui))
	r.Get(DocsPath+"/json", ServeOpenAPI)
	r.Get(DocsPath+"/*", ui)
}

// serveUIIndex renders the UI page at the bare docs prefix. The page links its
// assets relative to the prefix directory, so a base element pointing there is
// added to its head.
func serveUIIndex(ui http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := &pageRecorder{header: w.Header(), status: http.StatusOK}

		index := r.Clone(r.Context())
		index.Method = http.MethodGet
		index.RequestURI = DocsPath + "/index.html"
		index.URL.Path = DocsPath + "/index.html"
		ui(page, index)

		body := page.body.Bytes()
		if page.status == http.StatusOK {
			body = bytes.Replace(body, []byte("<head>"),
				[]byte(`<head>`+"\n"+`  <base href="`+DocsPath+`/">`), 1)
		}

		w.WriteHeader(page.status)
		_, _ = w.Write(body)
	}
}

// pageRecorder buffers a response body while sharing the real header map.
type pageRecorder struct {
	header http.Header
	status int
	body   bytes.Buffer
}

func (p *pageRecorder) Header() http.Header { return p.header }

func (p *pageRecorder) WriteHeader(status int) { p.status = status }

func (p *pageRecorder) Write(b []byte) (int, error) { return p.body.Write(b) }

// ServeOpenAPI writes the registered OpenAPI description as JSON.
func ServeOpenAPI(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to render API documentation", err)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc))
}
