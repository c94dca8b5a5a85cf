package console

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/panyam/circuitgen/circuit"
)

// GenerateRequest is the JSON body of the generate endpoint.
type GenerateRequest struct {
	Description string `json:"description"`
}

// GenerateResponse carries the rendered SVG markup.
type GenerateResponse struct {
	SVG string `json:"svg"`
}

// handleGenerate renders a circuit description to SVG. A malformed body is
// the only failure mode; an empty or unrecognizable description is a normal
// render that produces the fallback circuit.
func (ws *WebServer) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c := circuit.Extract(req.Description)
	svg, err := ws.generator.Generate(c)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to render circuit: %v", err), http.StatusInternalServerError)
		return
	}
	slog.Info("rendered circuit",
		"components", len(c.Components),
		"connections", len(c.Connections),
		"inputLen", len(req.Description))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(GenerateResponse{SVG: svg})
}
