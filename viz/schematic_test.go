package viz

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panyam/circuitgen/circuit"
)

func circuitOf(kinds ...circuit.Kind) *circuit.Circuit {
	c := &circuit.Circuit{}
	for _, k := range kinds {
		c.Components = append(c.Components, circuit.Component{Kind: k, Label: k.DisplayName()})
	}
	circuit.Layout(c.Components)
	return c
}

func generate(t *testing.T, c *circuit.Circuit) string {
	t.Helper()
	out, err := NewSchematicGenerator().Generate(c)
	require.NoError(t, err)
	return out
}

func TestGenerateDocumentSize(t *testing.T) {
	for _, c := range []*circuit.Circuit{
		circuitOf(),
		circuitOf(circuit.KindResistor),
		circuitOf(circuit.KindResistor, circuit.KindBattery, circuit.KindLED, circuit.KindSwitch),
	} {
		out := generate(t, c)
		assert.Contains(t, out, `<svg width="800" height="600" xmlns="http://www.w3.org/2000/svg">`)
		assert.Contains(t, out, `<rect width="800" height="600" fill="white" stroke="none"/>`)
	}
}

func TestWiringSingleComponent(t *testing.T) {
	// One component: glyph leads only, no wiring between components.
	out := generate(t, circuitOf(circuit.KindCapacitor))
	assert.NotContains(t, out, `y2="380"`, "no return path for a single component")
}

func TestWiringTwoComponents(t *testing.T) {
	// Components at x=266 and x=532; one line between facing lead points.
	out := generate(t, circuitOf(circuit.KindResistor, circuit.KindCapacitor))
	assert.Contains(t, out, `<line x1="306" y1="300" x2="492" y2="300" stroke="black" stroke-width="2"/>`)
	assert.NotContains(t, out, `380`, "exactly two components must not emit the return path")
}

func TestWiringReturnPath(t *testing.T) {
	// Three components at x=200, 400, 600: two adjacent lines plus the
	// three-segment return path under the centerline.
	out := generate(t, circuitOf(circuit.KindBattery, circuit.KindResistor, circuit.KindLED))

	assert.Contains(t, out, `<line x1="240" y1="300" x2="360" y2="300" stroke="black" stroke-width="2"/>`)
	assert.Contains(t, out, `<line x1="440" y1="300" x2="560" y2="300" stroke="black" stroke-width="2"/>`)

	assert.Contains(t, out, `<line x1="600" y1="320" x2="600" y2="380" stroke="black" stroke-width="2"/>`)
	assert.Contains(t, out, `<line x1="600" y1="380" x2="200" y2="380" stroke="black" stroke-width="2"/>`)
	assert.Contains(t, out, `<line x1="200" y1="380" x2="200" y2="320" stroke="black" stroke-width="2"/>`)
}

func TestResistorGlyph(t *testing.T) {
	out := generate(t, circuitOf(circuit.KindResistor))
	// Seven-point zigzag centered at (400, 300).
	assert.Contains(t, out, `<polyline points="370,290 380,310 390,290 400,310 410,290 420,310 430,290" fill="none" stroke="black" stroke-width="2"/>`)
	// Lead lines out to x±40.
	assert.Contains(t, out, `<line x1="360" y1="300" x2="370" y2="300" stroke="black" stroke-width="2"/>`)
	assert.Contains(t, out, `<line x1="430" y1="300" x2="440" y2="300" stroke="black" stroke-width="2"/>`)
	assert.Contains(t, out, `>抵抗</text>`)
}

func TestCapacitorGlyph(t *testing.T) {
	out := generate(t, circuitOf(circuit.KindCapacitor))
	assert.Contains(t, out, `<line x1="395" y1="280" x2="395" y2="320" stroke="black" stroke-width="3"/>`)
	assert.Contains(t, out, `<line x1="405" y1="280" x2="405" y2="320" stroke="black" stroke-width="3"/>`)
}

func TestInductorGlyph(t *testing.T) {
	out := generate(t, circuitOf(circuit.KindInductor))
	for _, arc := range []string{
		`<path d="M 385 300 A 5 5 0 0 1 395 300"`,
		`<path d="M 395 300 A 5 5 0 0 1 405 300"`,
		`<path d="M 405 300 A 5 5 0 0 1 415 300"`,
	} {
		assert.Contains(t, out, arc)
	}
}

func TestBatteryGlyph(t *testing.T) {
	out := generate(t, circuitOf(circuit.KindBattery))
	// Long positive plate, short negative plate.
	assert.Contains(t, out, `<line x1="405" y1="280" x2="405" y2="320" stroke="black" stroke-width="3"/>`)
	assert.Contains(t, out, `<line x1="395" y1="290" x2="395" y2="310" stroke="black" stroke-width="3"/>`)
	assert.Contains(t, out, `fill="red">+</text>`)
	assert.Contains(t, out, `fill="blue">-</text>`)
}

func TestLEDGlyph(t *testing.T) {
	out := generate(t, circuitOf(circuit.KindLED))
	assert.Contains(t, out, `<polygon points="385,290 385,310 405,300" fill="none" stroke="black" stroke-width="2"/>`)
	assert.Contains(t, out, `stroke="orange" stroke-width="1"/>`)
}

func TestSwitchGlyph(t *testing.T) {
	out := generate(t, circuitOf(circuit.KindSwitch))
	assert.Contains(t, out, `<circle cx="385" cy="300" r="2" fill="black"/>`)
	assert.Contains(t, out, `<circle cx="415" cy="300" r="2" fill="black"/>`)
	assert.Contains(t, out, `<line x1="385" y1="300" x2="410" y2="290" stroke="black" stroke-width="2"/>`)
}

func TestGroundGlyph(t *testing.T) {
	out := generate(t, circuitOf(circuit.KindGround))
	assert.Contains(t, out, `<line x1="400" y1="300" x2="400" y2="320" stroke="black" stroke-width="2"/>`)
	// Three successively shorter bars.
	assert.Contains(t, out, `<line x1="390" y1="320" x2="410" y2="320" stroke="black" stroke-width="2"/>`)
	assert.Contains(t, out, `<line x1="394" y1="324" x2="406" y2="324" stroke="black" stroke-width="2"/>`)
	assert.Contains(t, out, `<line x1="397" y1="328" x2="403" y2="328" stroke="black" stroke-width="2"/>`)
	// Ground has a left lead only.
	assert.Contains(t, out, `<line x1="360" y1="300" x2="400" y2="300" stroke="black" stroke-width="2"/>`)
}

func TestSourceKindsUseGenericBody(t *testing.T) {
	for _, kind := range []circuit.Kind{circuit.KindVoltageSource, circuit.KindCurrentSource, circuit.KindGeneric} {
		out := generate(t, circuitOf(kind))
		assert.Contains(t, out, `<rect x="380" y="285" width="40" height="30" fill="lightgray" stroke="black" stroke-width="2"/>`)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	c := circuit.Extract("電池と抵抗とLEDを直列に接続")
	first := generate(t, c)
	second := generate(t, c)
	assert.Equal(t, first, second)
}

func TestGenerateSeriesCircuit(t *testing.T) {
	c := circuit.Extract("電池と抵抗とLEDを直列に接続")
	out := generate(t, c)

	// One resistor zigzag, one LED triangle, three labels.
	assert.Equal(t, 1, strings.Count(out, "<polyline"))
	assert.Equal(t, 1, strings.Count(out, "<polygon"))
	assert.Contains(t, out, `>抵抗</text>`)
	assert.Contains(t, out, `>電池</text>`)
	assert.Contains(t, out, `>LED</text>`)

	// Two adjacent wires plus the three return segments.
	assert.Contains(t, out, `<line x1="240" y1="300" x2="360" y2="300"`)
	assert.Contains(t, out, `<line x1="440" y1="300" x2="560" y2="300"`)
	assert.Contains(t, out, `<line x1="600" y1="380" x2="200" y2="380"`)
}
