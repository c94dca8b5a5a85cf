package viz

import (
	"bytes"
	"fmt"

	"github.com/panyam/circuitgen/circuit"
)

// DotGenerator renders the extracted circuit as a Graphviz digraph. Unlike
// the schematic, this view shows the advisory connections from the text, so
// it is useful for inspecting what the extractor actually found.
type DotGenerator struct{}

func NewDotGenerator() *DotGenerator {
	return &DotGenerator{}
}

func (g *DotGenerator) Generate(c *circuit.Circuit) (string, error) {
	var b bytes.Buffer
	b.WriteString("digraph circuit {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString("  node [shape=record];\n")

	for i, comp := range c.Components {
		b.WriteString(fmt.Sprintf("  c%d [label=\"%s\\n(%s)\"];\n", i, comp.Label, comp.Kind))
	}
	for _, conn := range c.Connections {
		b.WriteString(fmt.Sprintf("  \"%s\" -> \"%s\";\n", conn.From, conn.To))
	}
	b.WriteString("}\n")
	return b.String(), nil
}
