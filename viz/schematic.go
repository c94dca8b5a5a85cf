package viz

import (
	"fmt"
	"strings"

	"github.com/panyam/circuitgen/circuit"
)

// LeadOffset is the universal connection-point convention: every glyph draws
// lead lines out to x±40 so the wiring between adjacent components lines up
// exactly with the icon edges.
const LeadOffset = 40

// SchematicGenerator renders a circuit as a standalone SVG schematic:
// background, series wiring in component list order, then one glyph per
// component. Output is deterministic for a given circuit.
type SchematicGenerator struct{}

func NewSchematicGenerator() *SchematicGenerator {
	return &SchematicGenerator{}
}

// Generate produces the SVG markup for the circuit. The returned error is
// always nil today; the signature follows the generator convention so
// callers treat all diagram generators alike.
func (g *SchematicGenerator) Generate(c *circuit.Circuit) (string, error) {
	doc := NewDocument(circuit.CanvasWidth, circuit.CanvasHeight)
	doc.Background("white")

	drawWiring(doc, c.Components)
	for _, comp := range c.Components {
		draw, ok := glyphs[comp.Kind]
		if !ok {
			draw = drawGeneric
		}
		draw(doc, comp)
	}
	return doc.String(), nil
}

// drawWiring joins adjacent components with straight wires between their
// lead points, then closes the circuit with a three-segment return path
// below the centerline when there are more than two components. Connections
// extracted from the text are deliberately not consulted here: wiring always
// follows component list order.
func drawWiring(doc *Document, comps []circuit.Component) {
	if len(comps) < 2 {
		return
	}
	for i := 0; i < len(comps)-1; i++ {
		a, b := comps[i], comps[i+1]
		wire(doc, a.X+LeadOffset, a.Y, b.X-LeadOffset, b.Y)
	}
	if len(comps) > 2 {
		first, last := comps[0], comps[len(comps)-1]
		wire(doc, last.X, last.Y+20, last.X, last.Y+80)
		wire(doc, last.X, last.Y+80, first.X, first.Y+80)
		wire(doc, first.X, first.Y+80, first.X, first.Y+20)
	}
}

// wire draws a standard schematic stroke.
func wire(doc *Document, x1, y1, x2, y2 int) {
	doc.Line(x1, y1, x2, y2, "black", 2)
}

type glyphFunc func(*Document, circuit.Component)

// One drawing routine per kind. The set is closed; both source kinds share
// the generic body, matching their rendering in the original tool.
var glyphs = map[circuit.Kind]glyphFunc{
	circuit.KindResistor:      drawResistor,
	circuit.KindCapacitor:     drawCapacitor,
	circuit.KindInductor:      drawInductor,
	circuit.KindBattery:       drawBattery,
	circuit.KindLED:           drawLED,
	circuit.KindSwitch:        drawSwitch,
	circuit.KindGround:        drawGround,
	circuit.KindVoltageSource: drawGeneric,
	circuit.KindCurrentSource: drawGeneric,
	circuit.KindGeneric:       drawGeneric,
}

// drawResistor draws a seven-point zigzag spanning x-30..x+30.
func drawResistor(doc *Document, c circuit.Component) {
	x, y := c.X, c.Y
	points := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		px := x - 30 + i*10
		py := y - 10
		if i%2 == 1 {
			py = y + 10
		}
		points = append(points, fmt.Sprintf("%d,%d", px, py))
	}
	doc.Polyline(strings.Join(points, " "), "black", 2)

	wire(doc, x-LeadOffset, y, x-30, y)
	wire(doc, x+30, y, x+LeadOffset, y)
	doc.Text(x, y-20, 12, "black", c.Label)
}

// drawCapacitor draws two parallel plates at x±5.
func drawCapacitor(doc *Document, c circuit.Component) {
	x, y := c.X, c.Y
	doc.Line(x-5, y-20, x-5, y+20, "black", 3)
	doc.Line(x+5, y-20, x+5, y+20, "black", 3)

	wire(doc, x-LeadOffset, y, x-5, y)
	wire(doc, x+5, y, x+LeadOffset, y)
	doc.Text(x, y-30, 12, "black", c.Label)
}

// drawInductor draws the coil as four small arcs spanning x-15..x+15.
func drawInductor(doc *Document, c circuit.Component) {
	x, y := c.X, c.Y
	for i := 0; i < 4; i++ {
		cx := x - 15 + i*10
		doc.Path(fmt.Sprintf("M %d %d A 5 5 0 0 1 %d %d", cx, y, cx+10, y), "black", 2)
	}

	wire(doc, x-LeadOffset, y, x-15, y)
	wire(doc, x+15, y, x+LeadOffset, y)
	doc.Text(x, y-20, 12, "black", c.Label)
}

// drawBattery draws the plate pair (long positive at x+5, short negative at
// x-5) with colored polarity marks.
func drawBattery(doc *Document, c circuit.Component) {
	x, y := c.X, c.Y
	doc.Line(x+5, y-20, x+5, y+20, "black", 3)
	doc.Line(x-5, y-10, x-5, y+10, "black", 3)

	wire(doc, x-LeadOffset, y, x-5, y)
	wire(doc, x+5, y, x+LeadOffset, y)

	doc.Text(x+15, y+5, 14, "red", "+")
	doc.Text(x-15, y+5, 14, "blue", "-")
	doc.Text(x, y-30, 12, "black", c.Label)
}

// drawLED draws the diode symbol (right-pointing triangle plus bar) with
// small strokes for the emitted light.
func drawLED(doc *Document, c circuit.Component) {
	x, y := c.X, c.Y
	doc.Polygon(fmt.Sprintf("%d,%d %d,%d %d,%d", x-15, y-10, x-15, y+10, x+5, y),
		"none", "black", 2)
	doc.Line(x+5, y-10, x+5, y+10, "black", 2)

	wire(doc, x-LeadOffset, y, x-15, y)
	wire(doc, x+5, y, x+LeadOffset, y)

	doc.Path(fmt.Sprintf("M %d %d L %d %d M %d %d L %d %d L %d %d",
		x+10, y-15, x+15, y-20, x+12, y-20, x+15, y-20, x+15, y-17), "orange", 1)
	doc.Text(x, y-30, 12, "black", c.Label)
}

// drawSwitch draws two contact dots joined by an open diagonal stroke.
func drawSwitch(doc *Document, c circuit.Component) {
	x, y := c.X, c.Y
	doc.Circle(x-15, y, 2, "black")
	doc.Circle(x+15, y, 2, "black")
	wire(doc, x-15, y, x+10, y-10)

	wire(doc, x-LeadOffset, y, x-15, y)
	wire(doc, x+15, y, x+LeadOffset, y)
	doc.Text(x, y-25, 12, "black", c.Label)
}

// drawGround draws the stem and three successively shorter bars. Ground has
// a single lead on the left; nothing connects past it.
func drawGround(doc *Document, c circuit.Component) {
	x, y := c.X, c.Y
	wire(doc, x, y, x, y+20)
	for i, length := range []int{20, 12, 6} {
		wire(doc, x-length/2, y+20+i*4, x+length/2, y+20+i*4)
	}

	wire(doc, x-LeadOffset, y, x, y)
	doc.Text(x, y-10, 12, "black", c.Label)
}

// drawGeneric draws a filled rectangle body with the label centered inside,
// used for the source kinds and anything unclassified.
func drawGeneric(doc *Document, c circuit.Component) {
	x, y := c.X, c.Y
	doc.Box(x-20, y-15, 40, 30, "lightgray", "black", 2)

	wire(doc, x-LeadOffset, y, x-20, y)
	wire(doc, x+20, y, x+LeadOffset, y)
	doc.Text(x, y+5, 10, "black", c.Label)
}
