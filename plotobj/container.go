package plotobj

import (
	"fmt"
	"math"
)

// Margins are fractions of the pad size.
type Margins struct {
	Top, Right, Bottom, Left float64
}

// Pad is a drawing area. A Pad with Canvas set is a top-level canvas.
// Divide splits a pad into sub-pads which become its first primitives.
type Pad struct {
	name    string
	Title   string
	Canvas  bool
	Width   int // pixels
	Height  int // pixels
	Margins Margins

	Cols, Rows int

	primitives []Object
	subPads    []*Pad
}

// NewCanvas returns a top-level pad of w×h pixels.
func NewCanvas(name, title string, w, h int) *Pad {
	return &Pad{name: name, Title: title, Canvas: true, Width: w, Height: h}
}

// NewPad returns a pad that is not a top-level canvas.
func NewPad(name, title string, w, h int) *Pad {
	return &Pad{name: name, Title: title, Width: w, Height: h}
}

func (p *Pad) Name() string { return p.name }
func (*Pad) Kind() Kind     { return KindPad }

// Children returns the primitives in drawing order, sub-pads first.
func (p *Pad) Children() []Object { return p.primitives }

// Divide splits the pad in nx columns and ny rows of sub-pads named
// <name>_<i>, numbered from 1 row by row. The sub-pads of a previous
// Divide are dropped; the other primitives are kept after the new
// sub-pads.
func (p *Pad) Divide(nx, ny int) {
	if nx < 1 {
		nx = 1
	}
	if ny < 1 {
		ny = 1
	}
	p.Cols, p.Rows = nx, ny

	old := make(map[*Pad]bool, len(p.subPads))
	for _, sub := range p.subPads {
		old[sub] = true
	}

	w, h := p.Width/nx, p.Height/ny
	subs := make([]*Pad, 0, nx*ny)
	prims := make([]Object, 0, nx*ny+len(p.primitives))
	for i := 1; i <= nx*ny; i++ {
		sub := NewPad(fmt.Sprintf("%s_%d", p.name, i), fmt.Sprintf("%s_%d", p.name, i), w, h)
		sub.Margins = p.Margins
		subs = append(subs, sub)
		prims = append(prims, sub)
	}
	for _, o := range p.primitives {
		if pad, ok := o.(*Pad); ok && old[pad] {
			continue
		}
		prims = append(prims, o)
	}
	p.subPads = subs
	p.primitives = prims
}

// NPads returns the number of sub-pads.
func (p *Pad) NPads() int { return len(p.subPads) }

// Cd returns the i-th sub-pad, counted from 1. Cd(0) returns the pad itself.
func (p *Pad) Cd(i int) *Pad {
	if i == 0 {
		return p
	}
	if i < 0 || i > len(p.subPads) {
		return nil
	}
	return p.subPads[i-1]
}

// SubPads returns the sub-pads in order.
func (p *Pad) SubPads() []*Pad { return p.subPads }

// Draw appends obj to the pad's primitives.
func (p *Pad) Draw(obj Object) {
	p.primitives = append(p.primitives, obj)
}

// Frame returns the first drawn object with axes, which sets the pad's
// axis titles and range the way the first drawn object does in ROOT.
func (p *Pad) Frame() Object {
	for _, o := range p.primitives {
		switch o.Kind() {
		case KindPad, KindLine, KindLegend:
			continue
		}
		return o
	}
	return nil
}

// DataRange returns the union of the ranges of the pad's drawable
// primitives. It returns NaNs on an empty pad.
func (p *Pad) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	found := false
	for _, o := range p.primitives {
		r, ok := o.(Ranger)
		if !ok || o.Kind() == KindPad {
			continue
		}
		x0, x1, y0, y1 := r.DataRange()
		if math.IsInf(x0, 0) || math.IsInf(x1, 0) {
			continue
		}
		found = true
		xmin, xmax = math.Min(xmin, x0), math.Max(xmax, x1)
		ymin, ymax = math.Min(ymin, y0), math.Max(ymax, y1)
	}
	if !found {
		nan := math.NaN()
		return nan, nan, nan, nan
	}
	return xmin, xmax, ymin, ymax
}

// MultiGraph groups graphs drawn on common axes.
type MultiGraph struct {
	name   string
	Graphs []*Graph
	Axes   Axes
}

// NewMultiGraph returns an empty multi-graph. title may carry the axis
// titles as "title;x title;y title".
func NewMultiGraph(name, title string) *MultiGraph {
	mg := &MultiGraph{name: name}
	mg.Axes.SetTitles(title)
	return mg
}

func (mg *MultiGraph) Name() string   { return mg.name }
func (*MultiGraph) Kind() Kind        { return KindMultiGraph }
func (mg *MultiGraph) Title() string  { return mg.Axes.Title }
func (mg *MultiGraph) XTitle() string { return mg.Axes.X.Title }
func (mg *MultiGraph) YTitle() string { return mg.Axes.Y.Title }

// Add appends g to the multi-graph.
func (mg *MultiGraph) Add(g *Graph) { mg.Graphs = append(mg.Graphs, g) }

func (mg *MultiGraph) Children() []Object {
	objs := make([]Object, len(mg.Graphs))
	for i, g := range mg.Graphs {
		objs[i] = g
	}
	return objs
}

func (mg *MultiGraph) DataRange() (xmin, xmax, ymin, ymax float64) {
	return unionRange(mg.Children())
}

// Stack groups histograms drawn on top of each other.
type Stack struct {
	name  string
	Hists []*Histogram
	Axes  Axes
}

// NewStack returns an empty stack. title is parsed like NewMultiGraph's.
func NewStack(name, title string) *Stack {
	s := &Stack{name: name}
	s.Axes.SetTitles(title)
	return s
}

func (s *Stack) Name() string   { return s.name }
func (*Stack) Kind() Kind       { return KindStack }
func (s *Stack) Title() string  { return s.Axes.Title }
func (s *Stack) XTitle() string { return s.Axes.X.Title }
func (s *Stack) YTitle() string { return s.Axes.Y.Title }

// Add appends h to the stack.
func (s *Stack) Add(h *Histogram) { s.Hists = append(s.Hists, h) }

func (s *Stack) Children() []Object {
	objs := make([]Object, len(s.Hists))
	for i, h := range s.Hists {
		objs[i] = h
	}
	return objs
}

// DataRange uses the summed contents for the y maximum.
func (s *Stack) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax, ymin, ymax = unionRange(s.Children())
	sum := 0.
	for _, h := range s.Hists {
		_, _, _, y1 := h.DataRange()
		sum += y1
	}
	return xmin, xmax, ymin, math.Max(ymax, sum)
}

func unionRange(objs []Object) (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, o := range objs {
		r, ok := o.(Ranger)
		if !ok {
			continue
		}
		x0, x1, y0, y1 := r.DataRange()
		xmin, xmax = math.Min(xmin, x0), math.Max(xmax, x1)
		ymin, ymax = math.Min(ymin, y0), math.Max(ymax, y1)
	}
	return xmin, xmax, ymin, ymax
}
