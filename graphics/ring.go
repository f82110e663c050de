package graphics

import (
	"image/color"

	"github.com/HamletTheHamster/plothelper/plotobj"
)

var ring = []color.RGBA{
	{R: 51, G: 102, B: 204, A: 255}, // azure
	{R: 255, G: 51, B: 0, A: 255},   // orange-red
	{R: 51, G: 153, B: 102, A: 255}, // teal
	{R: 255, G: 0, B: 255, A: 255},  // magenta
	{R: 0, G: 204, B: 204, A: 255},  // cyan
}

// ColorInRing returns the i-th color of the five-color ring, and black
// past its end.
func ColorInRing(i int) color.RGBA {
	if i < 0 || i >= len(ring) {
		return color.RGBA{A: 255}
	}
	return ring[i]
}

// basic is the indexed palette walked by SetGraphColorsByRing, starting
// from black.
var basic = []color.RGBA{
	{A: 255},
	{R: 255, A: 255},
	{G: 255, A: 255},
	{B: 255, A: 255},
	{R: 255, G: 255, A: 255},
	{R: 255, B: 255, A: 255},
	{G: 255, B: 255, A: 255},
	{R: 89, G: 211, B: 84, A: 255},
	{R: 89, G: 84, B: 216, A: 255},
}

// Marker styles, numbered from 20 for a filled circle.
const (
	MarkerCircle = 20 + iota
	MarkerSquare
	MarkerTriangle
	MarkerPyramid
	MarkerRing
	MarkerOpenSquare
	MarkerPlus
	MarkerCross
)

// SetGraphColorsByRing gives each graph of mg the next color of the basic
// palette, for both lines and markers.
func SetGraphColorsByRing(mg *plotobj.MultiGraph) *plotobj.MultiGraph {
	for i, g := range mg.Graphs {
		c := basic[i%len(basic)]
		g.Style.LineColor = c
		g.Style.MarkerColor = c
	}
	return mg
}

// SetGraphMarkerStylesByRing gives each graph of mg the next marker style
// starting from a filled circle.
func SetGraphMarkerStylesByRing(mg *plotobj.MultiGraph) *plotobj.MultiGraph {
	for i, g := range mg.Graphs {
		g.Style.MarkerStyle = MarkerCircle + i
	}
	return mg
}

// SetMultiGraphAxisFromMember copies the axis titles of the first graph to
// mg, keeping its own title.
func SetMultiGraphAxisFromMember(mg *plotobj.MultiGraph) *plotobj.MultiGraph {
	if len(mg.Graphs) == 0 {
		return mg
	}
	g := mg.Graphs[0]
	mg.Axes.X.Title = g.XTitle()
	mg.Axes.Y.Title = g.YTitle()
	return mg
}
