package circuit

// Canvas dimensions shared by layout and rendering.
const (
	CanvasWidth  = 800
	CanvasHeight = 600
)

// Layout assigns canvas coordinates in place: components are distributed
// evenly along the horizontal centerline, in list order. Spacing is
// CanvasWidth / (n+1) so the row stays centered regardless of count.
// Re-running on the same list always yields identical coordinates.
func Layout(components []Component) {
	if len(components) == 0 {
		return
	}
	spacing := CanvasWidth / (len(components) + 1)
	for i := range components {
		components[i].X = spacing * (i + 1)
		components[i].Y = CanvasHeight / 2
	}
}
