package store

import (
	"errors"
	"math"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/HamletTheHamster/plothelper/plotobj"
)

func TestSplitPath(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"/", nil},
		{"a", []string{"a"}},
		{"a//b/./c/", []string{"a", "b", "c"}},
	} {
		if got := SplitPath(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMemOverwrite(t *testing.T) {
	m := NewMem()
	g, err := m.Group("a/b")
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Put(plotobj.NewGraphXY("gr", []float64{1}, []float64{1})); err != nil {
		t.Fatal(err)
	}
	if err := g.Put(plotobj.NewGraphXY("gr", []float64{1, 2}, []float64{1, 2})); err != nil {
		t.Fatal(err)
	}
	if names := g.Names(); len(names) != 1 {
		t.Fatalf("names = %q", names)
	}
	o, err := g.Get("gr")
	if err != nil {
		t.Fatal(err)
	}
	if n := o.(*plotobj.Graph).Len(); n != 2 {
		t.Errorf("kept the old graph, len = %d", n)
	}
}

func TestMemIdempotentGroups(t *testing.T) {
	m := NewMem()
	for i := 0; i < 3; i++ {
		if _, err := m.Group("x/y"); err != nil {
			t.Fatal(err)
		}
	}
	root, _ := m.Group("")
	if got := root.Groups(); !reflect.DeepEqual(got, []string{"x"}) {
		t.Errorf("root groups = %q", got)
	}
	x, _ := m.Group("x")
	if got := x.Groups(); !reflect.DeepEqual(got, []string{"y"}) {
		t.Errorf("x groups = %q", got)
	}
}

func TestMemErrors(t *testing.T) {
	m := NewMem()
	g, _ := m.Group("")
	if _, err := g.Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v", err)
	}
	if err := g.Put(plotobj.NewGraph("a/b", 0)); err == nil {
		t.Errorf("expected an error for a name holding a slash")
	}
	m.Close()
	if err := g.Put(plotobj.NewGraph("g", 0)); !errors.Is(err, ErrClosed) {
		t.Errorf("err = %v", err)
	}
	if _, err := m.Group("a"); !errors.Is(err, ErrClosed) {
		t.Errorf("err = %v", err)
	}
}

func TestRecordRoundTrip(t *testing.T) {
	mg := plotobj.NewMultiGraph("mg", "title;x;y")
	mg.Add(plotobj.NewGraphXY("g1", []float64{0, 1}, []float64{2, 3}))
	mg.Add(plotobj.NewGraphXY("g2", []float64{0, 1}, []float64{4, 5}))

	s, err := marshalRecord(mg)
	if err != nil {
		t.Fatal(err)
	}
	o, err := unmarshalRecord(s)
	if err != nil {
		t.Fatal(err)
	}
	got, ok := o.(*plotobj.MultiGraph)
	if !ok {
		t.Fatalf("decoded a %v", o.Kind())
	}
	if len(got.Graphs) != 2 || got.Graphs[1].Name() != "g2" {
		t.Fatalf("members = %v", got.Graphs)
	}
	if x, y := got.Graphs[1].XY(1); x != 1 || y != 5 {
		t.Errorf("point = (%v, %v)", x, y)
	}
	if got.Axes != mg.Axes {
		t.Errorf("axes = %+v, want %+v", got.Axes, mg.Axes)
	}
}

func TestRecordGraph2D(t *testing.T) {
	g := plotobj.NewGraph2D("g2d", plotobj.Point3{X: 1, Y: 2, Z: 3}, plotobj.Point3{X: 4, Y: 5, Z: 6})
	g.ZTitle = "counts"
	s, err := marshalRecord(g)
	if err != nil {
		t.Fatal(err)
	}
	o, err := unmarshalRecord(s)
	if err != nil {
		t.Fatal(err)
	}
	got := o.(*plotobj.Graph2D)
	if got.Len() != 2 || got.ZTitle != "counts" || got.Points[1].Z != 6 {
		t.Errorf("got %+v", got)
	}
}

func TestRootFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.root")

	rf, err := OpenRootFile(path, true)
	if err != nil {
		t.Fatal(err)
	}
	g, err := rf.Group("run1/spectra")
	if err != nil {
		t.Fatal(err)
	}
	h, _ := plotobj.NewHistogram("h", 4, 0, 4)
	h.Fill(0.5, 2)
	h.Fill(2.5, 3)
	gr := plotobj.NewGraphXY("gr", []float64{1, 2, 3}, []float64{4, 5, 6})
	gr.SetPointError(1, 0.1, 0.2)
	mg := plotobj.NewMultiGraph("mg", "")
	mg.Add(plotobj.NewGraphXY("m1", []float64{0}, []float64{1}))
	for _, o := range []plotobj.Object{h, gr, mg} {
		if err := g.Put(o); err != nil {
			t.Fatal(err)
		}
	}
	if err := rf.Close(); err != nil {
		t.Fatal(err)
	}

	// Reopen in update mode and overwrite one entry.
	rf, err = OpenRootFile(path, false)
	if err != nil {
		t.Fatal(err)
	}
	g, err = rf.Group("run1/spectra")
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Put(plotobj.NewGraphXY("gr", []float64{7}, []float64{8})); err != nil {
		t.Fatal(err)
	}
	if err := rf.Close(); err != nil {
		t.Fatal(err)
	}

	rf, err = OpenRootFile(path, false)
	if err != nil {
		t.Fatal(err)
	}
	defer rf.Close()
	g, _ = rf.Group("run1/spectra")
	if got := len(g.Names()); got != 3 {
		t.Fatalf("names = %q", g.Names())
	}

	o, err := g.Get("h")
	if err != nil {
		t.Fatal(err)
	}
	hh := o.(*plotobj.Histogram)
	if hh.NBins() != 4 || hh.Contents[0] != 2 || hh.Contents[2] != 3 {
		t.Errorf("histogram contents = %v", hh.Contents)
	}
	if math.Abs(hh.Errors[2]-3) > 1e-9 {
		t.Errorf("histogram errors = %v", hh.Errors)
	}
	if hh.Entries != 2 {
		t.Errorf("histogram entries = %d, want 2", hh.Entries)
	}

	o, err = g.Get("gr")
	if err != nil {
		t.Fatal(err)
	}
	if gg := o.(*plotobj.Graph); gg.Len() != 1 {
		t.Errorf("graph was not overwritten, len = %d", gg.Len())
	}

	o, err = g.Get("mg")
	if err != nil {
		t.Fatal(err)
	}
	if o.Kind() != plotobj.KindMultiGraph {
		t.Errorf("kind = %v", o.Kind())
	}
}

func TestRootFileKeepsPutState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.root")
	rf, err := OpenRootFile(path, true)
	if err != nil {
		t.Fatal(err)
	}
	run1, _ := rf.Group("run1")
	run2, _ := rf.Group("run2")

	g := plotobj.NewGraphXY("g", []float64{0, 1}, []float64{10, 20})
	h, _ := plotobj.NewHistogram("h", 2, 0, 2)
	for i := 0; i < 10; i++ {
		h.Fill(0.5, 1)
	}
	h.Fill(5, 1) // overflow still counts as an entry
	for _, o := range []plotobj.Object{g, h} {
		if err := run1.Put(o); err != nil {
			t.Fatal(err)
		}
	}

	// Reuse the objects for a second run.
	g.SetPoint(0, 0, 99)
	h.Fill(1.5, 7)
	for _, o := range []plotobj.Object{g, h} {
		if err := run2.Put(o); err != nil {
			t.Fatal(err)
		}
	}

	o, _ := run1.Get("g")
	if _, y := o.(*plotobj.Graph).XY(0); y != 10 {
		t.Errorf("run1/g y[0] before close = %v, want 10", y)
	}
	if err := rf.Close(); err != nil {
		t.Fatal(err)
	}

	rf, err = OpenRootFile(path, false)
	if err != nil {
		t.Fatal(err)
	}
	defer rf.Close()
	for _, tt := range []struct {
		dir     string
		y0      float64
		entries int64
		bin1    float64
	}{
		{"run1", 10, 11, 0},
		{"run2", 99, 12, 7},
	} {
		grp, _ := rf.Group(tt.dir)
		o, err := grp.Get("g")
		if err != nil {
			t.Fatal(err)
		}
		if _, y := o.(*plotobj.Graph).XY(0); y != tt.y0 {
			t.Errorf("%s/g y[0] = %v, want %v", tt.dir, y, tt.y0)
		}
		o, err = grp.Get("h")
		if err != nil {
			t.Fatal(err)
		}
		hh := o.(*plotobj.Histogram)
		if hh.Entries != tt.entries {
			t.Errorf("%s/h entries = %d, want %d", tt.dir, hh.Entries, tt.entries)
		}
		if hh.Contents[0] != 10 || hh.Contents[1] != tt.bin1 {
			t.Errorf("%s/h contents = %v", tt.dir, hh.Contents)
		}
	}
}
