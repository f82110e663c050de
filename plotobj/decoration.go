package plotobj

import "math"

// Line is a straight segment in data coordinates.
type Line struct {
	name           string
	X1, Y1, X2, Y2 float64
	Style          Style
}

func NewLine(name string, x1, y1, x2, y2 float64) *Line {
	return &Line{name: name, X1: x1, Y1: y1, X2: x2, Y2: y2}
}

func (l *Line) Name() string { return l.name }
func (*Line) Kind() Kind     { return KindLine }

// LegendEntry labels one drawn object.
type LegendEntry struct {
	Label  string
	Object Object
}

// Legend is a box of labelled entries. The corners are in pad
// coordinates (0 at the bottom-left, 1 at the top-right).
type Legend struct {
	name           string
	X1, Y1, X2, Y2 float64
	TextSize       float64
	BorderSize     int
	Option         string
	Entries        []LegendEntry
}

func NewLegend(name string, x1, y1, x2, y2 float64) *Legend {
	return &Legend{name: name, X1: x1, Y1: y1, X2: x2, Y2: y2, BorderSize: 1}
}

func (l *Legend) Name() string { return l.name }
func (*Legend) Kind() Kind     { return KindLegend }

// AddEntry appends an entry for obj.
func (l *Legend) AddEntry(obj Object, label string) {
	l.Entries = append(l.Entries, LegendEntry{Label: label, Object: obj})
}

// Function is an analytic curve drawn on [XMin, XMax].
type Function struct {
	name       string
	F          func(x float64) float64
	XMin, XMax float64
	NPoints    int
	Axes       Axes
	Style      Style
}

// NewFunction returns a function sampled on 100 points when drawn.
func NewFunction(name string, f func(float64) float64, xmin, xmax float64) *Function {
	return &Function{name: name, F: f, XMin: xmin, XMax: xmax, NPoints: 100}
}

func (f *Function) Name() string   { return f.name }
func (*Function) Kind() Kind       { return KindFunction }
func (f *Function) Title() string  { return f.Axes.Title }
func (f *Function) XTitle() string { return f.Axes.X.Title }
func (f *Function) YTitle() string { return f.Axes.Y.Title }

// Copy returns a copy of f named name, like TF1::DrawCopy.
func (f *Function) Copy(name string) *Function {
	c := *f
	c.name = name
	return &c
}

func (f *Function) DataRange() (xmin, xmax, ymin, ymax float64) {
	ymin, ymax = math.Inf(1), math.Inf(-1)
	n := max(f.NPoints, 2)
	for i := 0; i < n; i++ {
		x := f.XMin + (f.XMax-f.XMin)*float64(i)/float64(n-1)
		y := f.F(x)
		if math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		ymin = math.Min(ymin, y)
		ymax = math.Max(ymax, y)
	}
	return f.XMin, f.XMax, ymin, ymax
}
