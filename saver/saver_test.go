package saver

import (
	"bytes"
	"log"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/HamletTheHamster/plothelper/graphics"
	"github.com/HamletTheHamster/plothelper/plotobj"
	"github.com/HamletTheHamster/plothelper/store"
)

// newTree builds a 2-pad canvas holding a multi-graph, a stack, a 2-D
// graph and decorations.
func newTree(t *testing.T) *plotobj.Pad {
	t.Helper()
	s := graphics.NewStyle(graphics.Size8pt)
	c := s.NewCanvas("c_tree", "c_tree", 2, 1)

	mg := plotobj.NewMultiGraph("mg", "mg;x;y")
	mg.Add(plotobj.NewGraphXY("g1", []float64{0, 1}, []float64{1, 2}))
	mg.Add(plotobj.NewGraphXY("g2", []float64{0, 1}, []float64{2, 1}))
	c.Cd(1).Draw(mg)
	graphics.DrawHorizontalLine(c.Cd(1), 1.5)

	h1, err := plotobj.NewHistogram("h1", 4, 0, 4)
	if err != nil {
		t.Fatal(err)
	}
	h2, _ := plotobj.NewHistogram("h2", 4, 0, 4)
	h1.Fill(1.5, 1)
	h2.Fill(2.5, 2)
	st := plotobj.NewStack("hs", "hs")
	st.Add(h1)
	st.Add(h2)
	c.Cd(2).Draw(st)
	c.Cd(2).Draw(plotobj.NewGraph2D("g2d", plotobj.Point3{X: 1, Y: 1, Z: 3}))
	c.Cd(2).Draw(plotobj.NewFunction("f", math.Sqrt, 0, 4))
	if _, err := s.PutLegend(c.Cd(2), graphics.TopRight, 0.3, 0.2, ""); err != nil {
		t.Fatal(err)
	}
	return c
}

func TestSaveObject(t *testing.T) {
	mem := store.NewMem()
	ds := New(t.TempDir(), mem)
	var trace bytes.Buffer
	ds.Logger = log.New(&trace, "", 0)

	c := newTree(t)
	if err := ds.SaveObject(c, "run/a"); err != nil {
		t.Fatal(err)
	}

	g, _ := mem.Group("run/a")
	want := []string{"c_tree", "mg", "g1", "g2", "hs", "h1", "h2", "g2d"}
	if got := g.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("saved %q, want %q", got, want)
	}
	if n := strings.Count(trace.String(), "\n"); n != len(want) {
		t.Errorf("trace has %d lines, want %d:\n%s", n, len(want), trace.String())
	}
	if fi, err := os.Stat(filepath.Join(ds.BaseDir, "run", "a")); err != nil || !fi.IsDir() {
		t.Errorf("directory not created: %v", err)
	}

	root, _ := mem.Group("")
	if got := root.Groups(); !reflect.DeepEqual(got, []string{"run"}) {
		t.Errorf("root groups = %q", got)
	}
}

func TestSaveObjectSkipsDecorations(t *testing.T) {
	mem := store.NewMem()
	ds := New(t.TempDir(), mem)

	pad := plotobj.NewPad("p", "p", 700, 500)
	pad.Draw(plotobj.NewFunction("f", math.Sin, 0, 1))
	pad.Draw(plotobj.NewLine("l", 0, 0, 1, 1))
	for _, o := range []plotobj.Object{pad, plotobj.NewLegend("leg", 0, 0, 1, 1)} {
		if err := ds.SaveObject(o, "d"); err != nil {
			t.Fatal(err)
		}
	}
	g, _ := mem.Group("d")
	if names := g.Names(); len(names) != 0 {
		t.Errorf("saved %q, want nothing", names)
	}
}

func TestSaveObjectOverwrite(t *testing.T) {
	mem := store.NewMem()
	ds := New(t.TempDir(), mem)

	for _, n := range []int{2, 5} {
		if err := ds.SaveObject(plotobj.NewGraph("gr", n), "d"); err != nil {
			t.Fatal(err)
		}
	}
	g, _ := mem.Group("d")
	if names := g.Names(); len(names) != 1 {
		t.Fatalf("names = %q", names)
	}
	o, _ := g.Get("gr")
	if n := o.(*plotobj.Graph).Len(); n != 5 {
		t.Errorf("len = %d, want the last write", n)
	}
}

func TestCreateDirectories(t *testing.T) {
	ds := New(t.TempDir(), store.NewMem())
	for i := 0; i < 2; i++ {
		dir, err := ds.CreateDirectories("x/y/z")
		if err != nil {
			t.Fatal(err)
		}
		if dir != filepath.Join(ds.BaseDir, "x", "y", "z") {
			t.Errorf("dir = %q", dir)
		}
	}
}

func TestWriteCanvas(t *testing.T) {
	mem := store.NewMem()
	ds := New(t.TempDir(), mem)
	c := newTree(t)

	if err := ds.WriteCanvasWithoutDataSaving(c, "plots"); err != nil {
		t.Fatal(err)
	}
	g, _ := mem.Group("plots")
	if names := g.Names(); len(names) != 0 {
		t.Errorf("saved %q without data saving", names)
	}

	if err := ds.WriteCanvas(c, "plots"); err != nil {
		t.Fatal(err)
	}
	for _, p := range []string{"c_tree.pdf", "png/c_tree.png"} {
		fi, err := os.Stat(filepath.Join(ds.BaseDir, "plots", filepath.FromSlash(p)))
		if err != nil {
			t.Errorf("%s: %v", p, err)
			continue
		}
		if fi.Size() == 0 {
			t.Errorf("%s is empty", p)
		}
	}
	if len(g.Names()) == 0 {
		t.Errorf("canvas was not saved")
	}
}

func TestWriteAnimation(t *testing.T) {
	ds := New(t.TempDir(), store.NewMem())
	s := graphics.NewStyle(graphics.Size8pt)
	frames := s.DrawWithAutoRecreatorOfCanvas("c_frame", 1, 1, []plotobj.Object{
		plotobj.NewFunction("f1", math.Sin, 0, 3),
		plotobj.NewFunction("f2", math.Cos, 0, 3),
	})
	if err := ds.WriteAnimation("wave", frames, 5, "anim"); err != nil {
		t.Fatal(err)
	}
	fi, err := os.Stat(filepath.Join(ds.BaseDir, "anim", "wave.gif"))
	if err != nil {
		t.Fatal(err)
	}
	if fi.Size() == 0 {
		t.Errorf("empty animation")
	}
}

func TestOpen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	ds, err := Open(dir, true)
	if err != nil {
		t.Fatal(err)
	}
	if err := ds.SaveObject(newTree(t), "a"); err != nil {
		t.Fatal(err)
	}
	if err := ds.Close(); err != nil {
		t.Fatal(err)
	}

	// Reopen in update mode and overwrite one graph.
	ds, err = Open(dir, false)
	if err != nil {
		t.Fatal(err)
	}
	if err := ds.SaveObject(plotobj.NewGraphXY("g1", []float64{0, 1, 2}, []float64{0, 0, 0}), "a"); err != nil {
		t.Fatal(err)
	}
	if err := ds.Close(); err != nil {
		t.Fatal(err)
	}

	ds, err = Open(dir, false)
	if err != nil {
		t.Fatal(err)
	}
	g, err := ds.Store().Group("a")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"c_tree", "mg", "g1", "g2", "hs", "h1", "h2", "g2d"}
	if got := g.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("names = %q, want %q", got, want)
	}
	o, err := g.Get("g1")
	if err != nil {
		t.Fatal(err)
	}
	if n := o.(*plotobj.Graph).Len(); n != 3 {
		t.Errorf("g1 len = %d, want 3", n)
	}
	if err := ds.Close(); err != nil {
		t.Fatal(err)
	}

	// Recreate discards the previous content.
	ds, err = Open(dir, true)
	if err != nil {
		t.Fatal(err)
	}
	defer ds.Close()
	g, _ = ds.Store().Group("a")
	if n := len(g.Names()); n != 0 {
		t.Errorf("recreated store has %d entries", n)
	}
}
