// Package plotobj is the object model shared by the saver, graphics and
// analysis packages: pads, multi-graphs, stacks and the leaves drawn in them.
package plotobj

import (
	"fmt"
	"strings"
)

// Kind tags the concrete type of an Object.
type Kind int

const (
	KindPad Kind = iota
	KindMultiGraph
	KindStack
	KindHistogram
	KindGraph
	KindGraph2D

	// Decorations. Drawn, never persisted.
	KindLine
	KindLegend
	KindFunction
)

var kindNames = [...]string{
	KindPad:        "Pad",
	KindMultiGraph: "MultiGraph",
	KindStack:      "Stack",
	KindHistogram:  "Histogram",
	KindGraph:      "Graph",
	KindGraph2D:    "Graph2D",
	KindLine:       "Line",
	KindLegend:     "Legend",
	KindFunction:   "Function",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// IsContainer reports whether objects of kind k own children.
func (k Kind) IsContainer() bool {
	switch k {
	case KindPad, KindMultiGraph, KindStack:
		return true
	}
	return false
}

// persistable is the allow-list of kinds written to a backing store when
// reached as a leaf.
var persistable = map[Kind]bool{
	KindHistogram:  true,
	KindGraph:      true,
	KindGraph2D:    true,
	KindMultiGraph: true,
}

// Persistable reports whether kind k is in the persistence allow-list.
func Persistable(k Kind) bool {
	return persistable[k]
}

// Object is a node of a plot tree.
type Object interface {
	Name() string
	Kind() Kind
}

// Container is an Object owning an ordered list of children.
type Container interface {
	Object
	Children() []Object
}

// Titled is implemented by objects carrying axis titles.
type Titled interface {
	Object
	Title() string
	XTitle() string
	YTitle() string
}

// Ranger is implemented by objects with a data extent.
type Ranger interface {
	DataRange() (xmin, xmax, ymin, ymax float64)
}

// Axes holds the titles and title/label layout of a drawable object.
type Axes struct {
	Title string
	X, Y  Axis
}

// Axis describes one axis. Sizes are fractions of the pad height, offsets
// are multiples of the text size.
type Axis struct {
	Title       string
	TitleSize   float64
	LabelSize   float64
	TitleOffset float64
	LabelOffset float64
	Divisions   int
	MaxDigits   int
	Centered    bool
	TimeFormat  string
}

// SetTitles sets the titles of a from a "title;x title;y title" string.
// Missing fields leave the corresponding title unchanged.
func (a *Axes) SetTitles(s string) {
	parts := strings.SplitN(s, ";", 3)
	a.Title = parts[0]
	if len(parts) > 1 {
		a.X.Title = parts[1]
	}
	if len(parts) > 2 {
		a.Y.Title = parts[2]
	}
}

// AxesOf returns the axes of obj, or nil if obj has none.
func AxesOf(obj Object) *Axes {
	switch o := obj.(type) {
	case *Graph:
		return &o.Axes
	case *Graph2D:
		return &o.Axes
	case *Histogram:
		return &o.Axes
	case *MultiGraph:
		return &o.Axes
	case *Stack:
		return &o.Axes
	case *Function:
		return &o.Axes
	}
	return nil
}
