// Package console hosts the circuitgen web surface: the sketch page and the
// JSON generate endpoint. Each request builds its own circuit; the server
// keeps no state between requests.
package console

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/panyam/templar"

	"github.com/panyam/circuitgen/viz"
)

// DefaultTemplatesDir is where the serve command looks for page templates
// relative to the working directory. The console falls back to an embedded
// page when the directory is missing.
const DefaultTemplatesDir = "./console/templates"

// WebServer routes the sketch page and the generate API.
type WebServer struct {
	router    *mux.Router
	templates *templar.TemplateGroup
	generator *viz.SchematicGenerator
}

// NewWebServer creates a server loading page templates from templatesDir.
func NewWebServer(templatesDir string) *WebServer {
	ws := &WebServer{
		router:    mux.NewRouter(),
		templates: SetupTemplates(templatesDir),
		generator: viz.NewSchematicGenerator(),
	}
	ws.setupRoutes()
	return ws
}

func (ws *WebServer) setupRoutes() {
	ws.router.HandleFunc("/api/generate", ws.handleGenerate).Methods("POST")
	// Alias kept for clients of the original tool, which served /generate.
	ws.router.HandleFunc("/generate", ws.handleGenerate).Methods("POST")
	ws.router.HandleFunc("/", ws.handleIndex).Methods("GET")
}

// Handler returns the root handler with request logging applied.
func (ws *WebServer) Handler() http.Handler {
	return withRequestLogging(ws.router)
}
