package store

import (
	"errors"
	"fmt"
	"os"

	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/rbase"
	"go-hep.org/x/hep/groot/rhist"
	"go-hep.org/x/hep/groot/riofs"
	"go-hep.org/x/hep/groot/root"
	"go-hep.org/x/hep/hbook/rootcnv"

	"github.com/HamletTheHamster/plothelper/plotobj"
)

// RootFile is a Store backed by a ROOT file. Groups are TDirectories,
// histograms are written as TH1D and graphs as TGraphAsymmErrors; the
// other kinds are written as TObjString holding a JSON record.
//
// Objects are converted when they are put, so later changes to them do not
// alter what was saved. The content of an existing file is read when the
// store is opened and the whole tree is written back on Close, so each name
// holds a single key.
type RootFile struct {
	path   string
	src    *groot.File
	root   node
	closed bool
}

// OpenRootFile opens path in create-or-update mode. With recreate set, any
// previous content is discarded.
func OpenRootFile(path string, recreate bool) (*RootFile, error) {
	rf := &RootFile{path: path}
	if recreate {
		return rf, nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return rf, nil
	}

	f, err := groot.Open(path)
	if err != nil {
		return nil, fmt.Errorf("store: could not open %q: %w", path, err)
	}
	if err := load(&rf.root, f); err != nil {
		f.Close()
		return nil, fmt.Errorf("store: could not read %q: %w", path, err)
	}
	rf.src = f
	return rf, nil
}

func load(n *node, dir riofs.Directory) error {
	seen := make(map[string]bool)
	for _, k := range dir.Keys() {
		name := k.Name()
		if seen[name] {
			continue
		}
		seen[name] = true

		// Get returns the highest cycle.
		obj, err := dir.Get(name)
		if err != nil {
			return err
		}
		if sub, ok := obj.(riofs.Directory); ok {
			g := n.mkdirAll([]string{name})
			if err := load(g, sub); err != nil {
				return err
			}
			continue
		}
		n.put(&entry{name: name, raw: obj})
	}
	return nil
}

func (rf *RootFile) Group(path string) (Group, error) {
	if rf.closed {
		return nil, ErrClosed
	}
	return &rootGroup{n: rf.root.mkdirAll(SplitPath(path)), rf: rf}, nil
}

// Close writes the tree to a temporary file and moves it over the target.
func (rf *RootFile) Close() error {
	if rf.closed {
		return nil
	}
	rf.closed = true

	tmp := rf.path + ".tmp"
	f, err := groot.Create(tmp)
	if err != nil {
		return fmt.Errorf("store: could not create %q: %w", tmp, err)
	}
	if err := write(f, &rf.root); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("store: could not write %q: %w", rf.path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("store: could not close %q: %w", tmp, err)
	}
	if rf.src != nil {
		rf.src.Close()
		rf.src = nil
	}
	if err := os.Rename(tmp, rf.path); err != nil {
		return fmt.Errorf("store: could not replace %q: %w", rf.path, err)
	}
	return nil
}

func write(dir riofs.Directory, n *node) error {
	for _, e := range n.entries {
		obj, ok := e.raw.(root.Object)
		if !ok {
			return fmt.Errorf("entry %q holds no ROOT object", e.name)
		}
		if err := dir.Put(e.name, obj); err != nil {
			return fmt.Errorf("could not put %q: %w", e.name, err)
		}
	}
	for _, g := range n.groups {
		sub, err := dir.Mkdir(g.name)
		if err != nil {
			return fmt.Errorf("could not create directory %q: %w", g.name, err)
		}
		if err := write(sub, g); err != nil {
			return err
		}
	}
	return nil
}

type rootGroup struct {
	n  *node
	rf *RootFile
}

func (g *rootGroup) Name() string { return g.n.name }

func (g *rootGroup) Put(obj plotobj.Object) error {
	if g.rf.closed {
		return ErrClosed
	}
	if err := checkName(obj); err != nil {
		return err
	}
	raw, err := toROOT(obj)
	if err != nil {
		return err
	}
	g.n.put(&entry{name: obj.Name(), raw: raw})
	return nil
}

func (g *rootGroup) Get(name string) (plotobj.Object, error) {
	e := g.n.lookup(name)
	if e == nil {
		return nil, fmt.Errorf("%w: %q in directory %q", ErrNotFound, name, g.n.name)
	}
	return fromROOT(name, e.raw.(root.Object))
}

func (g *rootGroup) Names() []string  { return g.n.names() }
func (g *rootGroup) Groups() []string { return g.n.groupNames() }

func toROOT(obj plotobj.Object) (root.Object, error) {
	switch o := obj.(type) {
	case *plotobj.Histogram:
		return rhist.NewH1DFrom(o.H1D()), nil
	case *plotobj.Graph:
		return rhist.NewGraphAsymmErrorsFrom(o.S2D()), nil
	}
	s, err := marshalRecord(obj)
	if err != nil {
		return nil, err
	}
	return rbase.NewObjString(s), nil
}

func fromROOT(name string, obj root.Object) (plotobj.Object, error) {
	switch o := obj.(type) {
	case rhist.H1:
		return plotobj.HistogramFromH1D(name, rootcnv.H1D(o))
	case rhist.Graph:
		return plotobj.GraphFromS2D(name, rootcnv.S2D(o)), nil
	case *rbase.ObjString:
		return unmarshalRecord(o.String())
	}
	return nil, fmt.Errorf("store: unsupported class %s for %q", obj.Class(), name)
}
