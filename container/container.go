// Package container builds multi-graphs and histogram stacks from a list of
// objects or from the names of objects kept in a store group.
package container

import (
	"errors"
	"fmt"
	"path"

	"github.com/HamletTheHamster/plothelper/graphics"
	"github.com/HamletTheHamster/plothelper/plotobj"
	"github.com/HamletTheHamster/plothelper/store"
)

var (
	ErrUnknownType   = errors.New("container: unknown container type")
	ErrMissingObject = errors.New("container: missing object")
	ErrKindMismatch  = errors.New("container: object kind does not match the container")
)

// Type selects the container built by a MultiObject.
type Type int

const (
	MultiGraphType Type = iota
	StackType
)

func (t Type) String() string {
	switch t {
	case MultiGraphType:
		return "MultiGraph"
	case StackType:
		return "Stack"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// MultiObject is a multi-graph or a stack of histograms.
type MultiObject struct {
	Type Type

	mg   *plotobj.MultiGraph
	hs   *plotobj.Stack
	objs []plotobj.Object
}

// New builds a container of type typ called name holding objs. A
// multi-graph takes graphs, a stack takes histograms.
func New(typ Type, name string, objs []plotobj.Object) (*MultiObject, error) {
	mo := &MultiObject{Type: typ}
	switch typ {
	case MultiGraphType:
		mo.mg = plotobj.NewMultiGraph(name, name)
	case StackType:
		mo.hs = plotobj.NewStack(name, name)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownType, typ)
	}
	for _, o := range objs {
		if err := mo.add(o); err != nil {
			return nil, err
		}
	}
	return mo, nil
}

// Load builds a container from the objects called names in group g.
func Load(typ Type, name string, g store.Group, names []string) (*MultiObject, error) {
	objs := make([]plotobj.Object, 0, len(names))
	for _, n := range names {
		o, err := g.Get(n)
		if err != nil {
			return nil, fmt.Errorf("%w: %q in %q: %v", ErrMissingObject, n, g.Name(), err)
		}
		objs = append(objs, o)
	}
	return New(typ, name, objs)
}

func (mo *MultiObject) add(o plotobj.Object) error {
	switch mo.Type {
	case MultiGraphType:
		g, ok := o.(*plotobj.Graph)
		if !ok {
			return fmt.Errorf("%w: %v %q in a multi-graph", ErrKindMismatch, o.Kind(), o.Name())
		}
		mo.mg.Add(g)
	case StackType:
		h, ok := o.(*plotobj.Histogram)
		if !ok {
			return fmt.Errorf("%w: %v %q in a stack", ErrKindMismatch, o.Kind(), o.Name())
		}
		mo.hs.Add(h)
	}
	mo.objs = append(mo.objs, o)
	return nil
}

// ObjectPaths returns the store path of the object called name in each of
// dirs.
func ObjectPaths(name string, dirs []string) []string {
	paths := make([]string, len(dirs))
	for i, d := range dirs {
		paths[i] = path.Join(d, name)
	}
	return paths
}

// LoadPaths builds a container from objects given by their full store path,
// such as the paths returned by ObjectPaths.
func LoadPaths(typ Type, name string, st store.Store, paths []string) (*MultiObject, error) {
	objs := make([]plotobj.Object, 0, len(paths))
	for _, p := range paths {
		dir, base := path.Split(p)
		g, err := st.Group(dir)
		if err != nil {
			return nil, fmt.Errorf("container: %w", err)
		}
		o, err := g.Get(base)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrMissingObject, p, err)
		}
		objs = append(objs, o)
	}
	return New(typ, name, objs)
}

// Object returns the multi-graph or the stack.
func (mo *MultiObject) Object() plotobj.Object {
	if mo.Type == StackType {
		return mo.hs
	}
	return mo.mg
}

// Objects returns the members in insertion order.
func (mo *MultiObject) Objects() []plotobj.Object { return mo.objs }

// Draw draws the container in pad with the axis layout of s. Axis titles
// left empty are taken from the first member.
func (mo *MultiObject) Draw(pad *plotobj.Pad, s *graphics.Style) {
	obj := mo.Object()
	if len(mo.objs) > 0 {
		dst, src := plotobj.AxesOf(obj), plotobj.AxesOf(mo.objs[0])
		if dst.X.Title == "" {
			dst.X.Title = src.X.Title
		}
		if dst.Y.Title == "" {
			dst.Y.Title = src.Y.Title
		}
	}
	pad.Draw(obj)
	s.SetAxes(pad, obj)
}
