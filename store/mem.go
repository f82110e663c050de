package store

import (
	"fmt"

	"github.com/HamletTheHamster/plothelper/plotobj"
)

// Mem is a Store kept in memory. Entries are stored by reference.
type Mem struct {
	root   node
	closed bool
}

// NewMem returns an empty in-memory store.
func NewMem() *Mem {
	return &Mem{}
}

func (m *Mem) Group(path string) (Group, error) {
	if m.closed {
		return nil, ErrClosed
	}
	segs := SplitPath(path)
	return &memGroup{n: m.root.mkdirAll(segs), closed: &m.closed}, nil
}

func (m *Mem) Close() error {
	m.closed = true
	return nil
}

type memGroup struct {
	n      *node
	closed *bool
}

func (g *memGroup) Name() string { return g.n.name }

func (g *memGroup) Put(obj plotobj.Object) error {
	if *g.closed {
		return ErrClosed
	}
	if err := checkName(obj); err != nil {
		return err
	}
	g.n.put(&entry{name: obj.Name(), obj: obj})
	return nil
}

func (g *memGroup) Get(name string) (plotobj.Object, error) {
	e := g.n.lookup(name)
	if e == nil {
		return nil, fmt.Errorf("%w: %q in group %q", ErrNotFound, name, g.n.name)
	}
	return e.obj, nil
}

func (g *memGroup) Names() []string  { return g.n.names() }
func (g *memGroup) Groups() []string { return g.n.groupNames() }
