// Package circuitgen turns free-form natural-language circuit descriptions
// (Japanese or English) into simple SVG schematics.
package circuitgen

import (
	"github.com/panyam/circuitgen/circuit"
	"github.com/panyam/circuitgen/viz"
)

// Render extracts a circuit from text and renders it as a standalone SVG
// document. It never fails: input with no recognizable vocabulary renders
// the canonical fallback circuit (battery, resistor, LED in series).
func Render(text string) string {
	c := circuit.Extract(text)
	svg, _ := viz.NewSchematicGenerator().Generate(c)
	return svg
}
