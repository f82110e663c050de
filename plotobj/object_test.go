package plotobj

import (
	"errors"
	"math"
	"testing"
)

func TestPersistable(t *testing.T) {
	for _, tt := range []struct {
		kind Kind
		want bool
	}{
		{KindPad, false},
		{KindMultiGraph, true},
		{KindStack, false},
		{KindHistogram, true},
		{KindGraph, true},
		{KindGraph2D, true},
		{KindLine, false},
		{KindLegend, false},
		{KindFunction, false},
	} {
		if got := Persistable(tt.kind); got != tt.want {
			t.Errorf("Persistable(%v) = %v, want %v", tt.kind, got, tt.want)
		}
	}
}

func TestKindString(t *testing.T) {
	if s := KindGraph2D.String(); s != "Graph2D" {
		t.Errorf("got %q", s)
	}
	if s := Kind(42).String(); s != "Kind(42)" {
		t.Errorf("got %q", s)
	}
}

func TestDivide(t *testing.T) {
	c := NewCanvas("c", "c", 1400, 1000)
	c.Divide(2, 2)
	if c.NPads() != 4 {
		t.Fatalf("NPads = %d", c.NPads())
	}
	if got := c.Cd(3).Name(); got != "c_3" {
		t.Errorf("Cd(3) = %q", got)
	}
	if c.Cd(0) != c {
		t.Errorf("Cd(0) is not the canvas")
	}
	if c.Cd(5) != nil {
		t.Errorf("Cd(5) should be nil")
	}
	if w := c.Cd(1).Width; w != 700 {
		t.Errorf("sub-pad width = %d", w)
	}
	if len(c.Children()) != 4 {
		t.Errorf("children = %d", len(c.Children()))
	}
}

func TestDivideAgain(t *testing.T) {
	c := NewCanvas("c", "c", 1400, 1000)
	g := NewGraphXY("g", []float64{0}, []float64{0})
	c.Draw(g)
	c.Divide(2, 1)
	first := c.Cd(1)
	c.Divide(2, 1)

	if c.NPads() != 2 {
		t.Fatalf("NPads = %d", c.NPads())
	}
	kids := c.Children()
	if len(kids) != 3 {
		t.Fatalf("children = %d, want 2 sub-pads and the graph", len(kids))
	}
	if kids[0] != c.Cd(1) || kids[1] != c.Cd(2) || kids[2] != g {
		t.Errorf("children order = %v", kids)
	}
	for _, k := range kids {
		if k == first {
			t.Errorf("sub-pad of the first Divide is still a child")
		}
	}
}

func TestHistogramFill(t *testing.T) {
	h, err := NewHistogram("h", 4, 0, 4)
	if err != nil {
		t.Fatal(err)
	}
	h.Fill(0, 1)
	h.Fill(1, 1)
	h.Fill(1.5, 2)
	h.Fill(3.999, 1)
	h.Fill(4, 1)
	h.Fill(-1, 1)

	want := []float64{1, 3, 0, 1}
	for i, w := range want {
		if h.Contents[i] != w {
			t.Errorf("bin %d = %v, want %v", i, h.Contents[i], w)
		}
	}
	if e := h.Errors[1]; math.Abs(e-math.Sqrt(5)) > 1e-12 {
		t.Errorf("error bin 1 = %v", e)
	}
	if h.Entries != 6 {
		t.Errorf("entries = %d", h.Entries)
	}
	if h.Integral() != 5 {
		t.Errorf("integral = %v", h.Integral())
	}
}

func TestHistogramBadEdges(t *testing.T) {
	_, err := NewHistogramFromEdges("h", []float64{0, 1, 1})
	if !errors.Is(err, ErrBadBinning) {
		t.Errorf("err = %v", err)
	}
	_, err = NewHistogram("h", 0, 0, 1)
	if !errors.Is(err, ErrBadBinning) {
		t.Errorf("err = %v", err)
	}
}

func TestPadDataRange(t *testing.T) {
	p := NewPad("p", "p", 700, 500)
	if x0, _, _, _ := p.DataRange(); !math.IsNaN(x0) {
		t.Errorf("empty pad range = %v", x0)
	}
	p.Draw(NewGraphXY("g", []float64{1, 2, 3}, []float64{-1, 5, 2}))
	p.Draw(NewLine("l", 0, 0, 10, 10))
	x0, x1, y0, y1 := p.DataRange()
	if x0 != 1 || x1 != 3 || y0 != -1 || y1 != 5 {
		t.Errorf("range = %v %v %v %v", x0, x1, y0, y1)
	}
	if p.Frame().Name() != "g" {
		t.Errorf("frame = %v", p.Frame().Name())
	}
}

func TestSetTitles(t *testing.T) {
	mg := NewMultiGraph("mg", "Spectra;f (GHz);S (nV)")
	if mg.Title() != "Spectra" || mg.XTitle() != "f (GHz)" || mg.YTitle() != "S (nV)" {
		t.Errorf("titles = %q %q %q", mg.Title(), mg.XTitle(), mg.YTitle())
	}
	s := NewStack("s", "only title")
	if s.Title() != "only title" || s.XTitle() != "" {
		t.Errorf("titles = %q %q", s.Title(), s.XTitle())
	}
	if AxesOf(mg) != &mg.Axes {
		t.Errorf("AxesOf returned a copy")
	}
	if AxesOf(NewLine("l", 0, 0, 1, 1)) != nil {
		t.Errorf("line has no axes")
	}
}

func TestHBookConversion(t *testing.T) {
	h, _ := NewHistogramFromEdges("h", []float64{0, 1, 2, 4})
	h.Fill(0.5, 2)
	h.Fill(0.5, 1)
	h.Fill(3, 4)
	h.Axes.Title = "counts"

	back, err := HistogramFromH1D("h", h.H1D())
	if err != nil {
		t.Fatal(err)
	}
	for i := range h.Edges {
		if back.Edges[i] != h.Edges[i] {
			t.Fatalf("edges = %v", back.Edges)
		}
	}
	for i := range h.Contents {
		if math.Abs(back.Contents[i]-h.Contents[i]) > 1e-12 {
			t.Errorf("content %d = %v, want %v", i, back.Contents[i], h.Contents[i])
		}
		if math.Abs(back.Errors[i]-h.Errors[i]) > 1e-12 {
			t.Errorf("error %d = %v, want %v", i, back.Errors[i], h.Errors[i])
		}
	}
	if back.Title() != "counts" {
		t.Errorf("title = %q", back.Title())
	}
	if back.Entries != 3 {
		t.Errorf("entries = %d, want 3", back.Entries)
	}

	g := NewGraphXY("g", []float64{1, 2}, []float64{3, 4})
	g.SetPointError(1, 0.5, 0.25)
	gb := GraphFromS2D("g", g.S2D())
	if gb.Len() != 2 || gb.Points[1] != g.Points[1] {
		t.Errorf("points = %+v", gb.Points)
	}
}
