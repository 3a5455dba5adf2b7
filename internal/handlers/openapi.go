package handlers

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gorilla/mux"
	"gopkg.in/yaml.v3"
)

// OpenAPIHandler serves the OpenAPI document from disk, as the original
// YAML and as a JSON conversion. The file is read per request so edits
// to the document show up without a restart.
type OpenAPIHandler struct {
	specPath string
}

// NewOpenAPIHandler creates a handler for the spec file at specPath.
// The path is fixed here and never derived from the request.
func NewOpenAPIHandler(specPath string) *OpenAPIHandler {
	abs, err := filepath.Abs(specPath)
	if err != nil {
		abs = filepath.Clean(specPath)
	}
	return &OpenAPIHandler{specPath: abs}
}

// RegisterRoutes registers the OpenAPI document routes
func (h *OpenAPIHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/openapi.yaml", h.ServeYAML).Methods("GET")
	r.HandleFunc("/api/openapi.json", h.ServeJSON).Methods("GET")
}

// document reads the spec file, reporting absence to the client as 404.
// Returns false when a response has already been written.
func (h *OpenAPIHandler) document(w http.ResponseWriter) ([]byte, bool) {
	data, err := os.ReadFile(h.specPath)
	if err != nil {
		http.Error(w, "OpenAPI specification not found", http.StatusNotFound)
		return nil, false
	}
	return data, true
}

// ServeYAML serves the document verbatim
func (h *OpenAPIHandler) ServeYAML(w http.ResponseWriter, r *http.Request) {
	data, ok := h.document(w)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/x-yaml")
	if _, err := w.Write(data); err != nil {
		http.Error(w, "Failed to write response", http.StatusInternalServerError)
	}
}

// ServeJSON serves the document converted to JSON. yaml.v3 decodes
// nested mappings with string keys, so the result encodes cleanly.
func (h *OpenAPIHandler) ServeJSON(w http.ResponseWriter, r *http.Request) {
	data, ok := h.document(w)
	if !ok {
		return
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		http.Error(w, "Failed to parse OpenAPI specification", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(doc); err != nil {
		http.Error(w, "Failed to encode JSON response", http.StatusInternalServerError)
	}
}
