package circuitgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderNeverFails(t *testing.T) {
	for _, input := range []string{"", "no circuit here", "電池と抵抗とLEDを直列に接続"} {
		svg := Render(input)
		assert.True(t, strings.HasPrefix(svg, "<?xml"), "input %q", input)
		assert.Contains(t, svg, `<svg width="800" height="600"`)
		assert.Contains(t, svg, "</svg>")
	}
}

func TestRenderStable(t *testing.T) {
	input := "LEDとスイッチと電池の回路"
	assert.Equal(t, Render(input), Render(input))
}

func TestRenderSingleComponent(t *testing.T) {
	svg := Render("R1")
	assert.Contains(t, svg, "<polyline", "resistor draws its zigzag")
	assert.Contains(t, svg, ">R1</text>")
}
