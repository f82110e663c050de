package plotobj

import (
	"image/color"
	"math"
)

// Point is one entry of a Graph with symmetric errors.
type Point struct {
	X, Y   float64
	EX, EY float64
}

// Style is the line and marker appearance of a drawable object.
type Style struct {
	LineColor   color.Color
	MarkerColor color.Color
	FillColor   color.Color
	MarkerStyle int
	LineWidth   float64
}

// Graph is an ordered series of points with optional errors.
type Graph struct {
	name   string
	Points []Point
	Axes   Axes
	Style  Style
}

// NewGraph returns an empty graph with n zeroed points.
func NewGraph(name string, n int) *Graph {
	return &Graph{name: name, Points: make([]Point, n)}
}

// NewGraphXY returns a graph without errors. xs and ys must have the same
// length; the shorter one bounds the result.
func NewGraphXY(name string, xs, ys []float64) *Graph {
	n := min(len(xs), len(ys))
	g := NewGraph(name, n)
	for i := 0; i < n; i++ {
		g.Points[i].X = xs[i]
		g.Points[i].Y = ys[i]
	}
	return g
}

func (g *Graph) Name() string        { return g.name }
func (g *Graph) SetName(name string) { g.name = name }
func (*Graph) Kind() Kind            { return KindGraph }
func (g *Graph) Title() string       { return g.Axes.Title }
func (g *Graph) XTitle() string      { return g.Axes.X.Title }
func (g *Graph) YTitle() string      { return g.Axes.Y.Title }

// Len returns the number of points.
func (g *Graph) Len() int { return len(g.Points) }

// XY returns the i-th point, implementing gonum's plotter.XYer.
func (g *Graph) XY(i int) (float64, float64) {
	return g.Points[i].X, g.Points[i].Y
}

// XError implements gonum's plotter.XErrorer.
func (g *Graph) XError(i int) (float64, float64) {
	return g.Points[i].EX, g.Points[i].EX
}

// YError implements gonum's plotter.YErrorer.
func (g *Graph) YError(i int) (float64, float64) {
	return g.Points[i].EY, g.Points[i].EY
}

// SetPoint sets the coordinates of point i.
func (g *Graph) SetPoint(i int, x, y float64) {
	g.Points[i].X = x
	g.Points[i].Y = y
}

// SetPointError sets the errors of point i.
func (g *Graph) SetPointError(i int, ex, ey float64) {
	g.Points[i].EX = ex
	g.Points[i].EY = ey
}

// Xs returns a copy of the x values.
func (g *Graph) Xs() []float64 {
	xs := make([]float64, len(g.Points))
	for i, p := range g.Points {
		xs[i] = p.X
	}
	return xs
}

// Ys returns a copy of the y values.
func (g *Graph) Ys() []float64 {
	ys := make([]float64, len(g.Points))
	for i, p := range g.Points {
		ys[i] = p.Y
	}
	return ys
}

// DataRange returns the extent of the points including their errors.
func (g *Graph) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, p := range g.Points {
		xmin = math.Min(xmin, p.X-p.EX)
		xmax = math.Max(xmax, p.X+p.EX)
		ymin = math.Min(ymin, p.Y-p.EY)
		ymax = math.Max(ymax, p.Y+p.EY)
	}
	return xmin, xmax, ymin, ymax
}

// Point3 is one entry of a Graph2D.
type Point3 struct {
	X, Y, Z float64
}

// Graph2D is a set of (x, y, z) points.
type Graph2D struct {
	name   string
	Points []Point3
	Axes   Axes
	ZTitle string
	Style  Style
}

// NewGraph2D returns an empty 2-D graph.
func NewGraph2D(name string, pts ...Point3) *Graph2D {
	return &Graph2D{name: name, Points: pts}
}

func (g *Graph2D) Name() string   { return g.name }
func (*Graph2D) Kind() Kind       { return KindGraph2D }
func (g *Graph2D) Title() string  { return g.Axes.Title }
func (g *Graph2D) XTitle() string { return g.Axes.X.Title }
func (g *Graph2D) YTitle() string { return g.Axes.Y.Title }

// Len returns the number of points.
func (g *Graph2D) Len() int { return len(g.Points) }

// XY projects the points on the x-y plane.
func (g *Graph2D) XY(i int) (float64, float64) {
	return g.Points[i].X, g.Points[i].Y
}

func (g *Graph2D) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, p := range g.Points {
		xmin = math.Min(xmin, p.X)
		xmax = math.Max(xmax, p.X)
		ymin = math.Min(ymin, p.Y)
		ymax = math.Max(ymax, p.Y)
	}
	return xmin, xmax, ymin, ymax
}
