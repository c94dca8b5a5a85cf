// Package viz renders circuits as SVG documents. The Document type is a
// small tree of drawing primitives serialized with readable indentation;
// SchematicGenerator populates one from a circuit.
package viz

import (
	"bytes"
	"fmt"
	"html"
	"strconv"
)

// Attr is one element attribute. Attributes keep their insertion order so
// serialization is deterministic.
type Attr struct {
	Key   string
	Value string
}

func attr(key, value string) Attr { return Attr{key, value} }

func attrInt(key string, v int) Attr { return Attr{key, strconv.Itoa(v)} }

// Element is one node of the primitive tree.
type Element struct {
	Name     string
	Attrs    []Attr
	Text     string
	Children []*Element
}

// Child appends a new child element and returns it.
func (e *Element) Child(name string, attrs ...Attr) *Element {
	child := &Element{Name: name, Attrs: attrs}
	e.Children = append(e.Children, child)
	return child
}

// Document is a complete SVG document. Build it once, serialize it once.
type Document struct {
	Width  int
	Height int
	root   *Element
}

// NewDocument creates an empty SVG document of the given pixel size with
// the SVG default namespace on the root element.
func NewDocument(width, height int) *Document {
	root := &Element{
		Name: "svg",
		Attrs: []Attr{
			attrInt("width", width),
			attrInt("height", height),
			attr("xmlns", "http://www.w3.org/2000/svg"),
		},
	}
	return &Document{Width: width, Height: height, root: root}
}

// Add appends a primitive to the document root and returns it.
func (d *Document) Add(name string, attrs ...Attr) *Element {
	return d.root.Child(name, attrs...)
}

// Background fills the whole canvas with a borderless rectangle.
func (d *Document) Background(fill string) *Element {
	return d.Add("rect",
		attrInt("width", d.Width),
		attrInt("height", d.Height),
		attr("fill", fill),
		attr("stroke", "none"))
}

// Box draws a stroked rectangle.
func (d *Document) Box(x, y, w, h int, fill, stroke string, strokeWidth int) *Element {
	return d.Add("rect",
		attrInt("x", x), attrInt("y", y),
		attrInt("width", w), attrInt("height", h),
		attr("fill", fill),
		attr("stroke", stroke),
		attrInt("stroke-width", strokeWidth))
}

// Line draws a straight stroke between two points.
func (d *Document) Line(x1, y1, x2, y2 int, stroke string, strokeWidth int) *Element {
	return d.Add("line",
		attrInt("x1", x1), attrInt("y1", y1),
		attrInt("x2", x2), attrInt("y2", y2),
		attr("stroke", stroke),
		attrInt("stroke-width", strokeWidth))
}

// Polyline draws an unfilled polyline. points is the SVG points string,
// e.g. "170,290 180,310 190,290".
func (d *Document) Polyline(points, stroke string, strokeWidth int) *Element {
	return d.Add("polyline",
		attr("points", points),
		attr("fill", "none"),
		attr("stroke", stroke),
		attrInt("stroke-width", strokeWidth))
}

// Polygon draws a closed polygon.
func (d *Document) Polygon(points, fill, stroke string, strokeWidth int) *Element {
	return d.Add("polygon",
		attr("points", points),
		attr("fill", fill),
		attr("stroke", stroke),
		attrInt("stroke-width", strokeWidth))
}

// Path draws an unfilled SVG path.
func (d *Document) Path(pathData, stroke string, strokeWidth int) *Element {
	return d.Add("path",
		attr("d", pathData),
		attr("fill", "none"),
		attr("stroke", stroke),
		attrInt("stroke-width", strokeWidth))
}

// Circle draws a filled circle.
func (d *Document) Circle(cx, cy, r int, fill string) *Element {
	return d.Add("circle",
		attrInt("cx", cx), attrInt("cy", cy),
		attrInt("r", r),
		attr("fill", fill))
}

// Text draws a centered text label.
func (d *Document) Text(x, y, fontSize int, fill, content string) *Element {
	el := d.Add("text",
		attrInt("x", x), attrInt("y", y),
		attr("text-anchor", "middle"),
		attr("font-family", "Arial"),
		attrInt("font-size", fontSize),
		attr("fill", fill))
	el.Text = content
	return el
}

// String serializes the document as standalone SVG markup with two-space
// indentation. Output is byte-identical across calls.
func (d *Document) String() string {
	var b bytes.Buffer
	b.WriteString("<?xml version=\"1.0\" ?>\n")
	writeElement(&b, d.root, 0)
	return b.String()
}

func writeElement(b *bytes.Buffer, e *Element, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
	b.WriteString("<")
	b.WriteString(e.Name)
	for _, a := range e.Attrs {
		fmt.Fprintf(b, " %s=\"%s\"", a.Key, html.EscapeString(a.Value))
	}
	switch {
	case len(e.Children) == 0 && e.Text == "":
		b.WriteString("/>\n")
	case len(e.Children) == 0:
		b.WriteString(">")
		b.WriteString(html.EscapeString(e.Text))
		b.WriteString("</")
		b.WriteString(e.Name)
		b.WriteString(">\n")
	default:
		b.WriteString(">\n")
		for _, child := range e.Children {
			writeElement(b, child, depth+1)
		}
		for i := 0; i < depth; i++ {
			b.WriteString("  ")
		}
		b.WriteString("</")
		b.WriteString(e.Name)
		b.WriteString(">\n")
	}
}
