package plotobj

import (
	"fmt"

	"go-hep.org/x/hep/hbook"
)

// H1D converts h to an hbook histogram. The bin errors are carried in the
// sum of squared weights and the entry count in the total distribution.
func (h *Histogram) H1D() *hbook.H1D {
	hh := hbook.NewH1DFromEdges(h.Edges)
	hh.Annotation()["name"] = h.Name()
	hh.Annotation()["title"] = h.Title()
	for i, c := range h.Contents {
		if c == 0 && h.Errors[i] == 0 {
			continue
		}
		hh.Fill(h.BinCenter(i), c)
		hh.Binning.Bins[i].Dist.Dist.SumW2 = h.Errors[i] * h.Errors[i]
	}
	hh.Binning.Dist.Dist.N = h.Entries
	return hh
}

// HistogramFromH1D converts an hbook histogram, naming the result name.
func HistogramFromH1D(name string, hh *hbook.H1D) (*Histogram, error) {
	bins := hh.Binning.Bins
	if len(bins) == 0 {
		return nil, fmt.Errorf("plotobj: histogram %q has no bins", name)
	}
	edges := make([]float64, len(bins)+1)
	for i := range bins {
		edges[i] = bins[i].XMin()
	}
	edges[len(bins)] = bins[len(bins)-1].XMax()

	h, err := NewHistogramFromEdges(name, edges)
	if err != nil {
		return nil, err
	}
	for i := range bins {
		h.Contents[i] = bins[i].SumW()
		h.Errors[i] = bins[i].ErrW()
	}
	h.Entries = hh.Entries()
	if t, ok := hh.Annotation()["title"].(string); ok {
		h.Axes.Title = t
	}
	return h, nil
}

// S2D converts g to an hbook scatter with symmetric errors.
func (g *Graph) S2D() *hbook.S2D {
	pts := make([]hbook.Point2D, len(g.Points))
	for i, p := range g.Points {
		pts[i] = hbook.Point2D{
			X:    p.X,
			Y:    p.Y,
			ErrX: hbook.Range{Min: p.EX, Max: p.EX},
			ErrY: hbook.Range{Min: p.EY, Max: p.EY},
		}
	}
	s2 := hbook.NewS2D(pts...)
	s2.Annotation()["name"] = g.Name()
	s2.Annotation()["title"] = g.Title()
	return s2
}

// GraphFromS2D converts an hbook scatter. Asymmetric errors are averaged.
func GraphFromS2D(name string, s2 *hbook.S2D) *Graph {
	g := NewGraph(name, s2.Len())
	for i := range g.Points {
		x, y := s2.XY(i)
		exl, exh := s2.XError(i)
		eyl, eyh := s2.YError(i)
		g.SetPoint(i, x, y)
		g.SetPointError(i, 0.5*(exl+exh), 0.5*(eyl+eyh))
	}
	if t, ok := s2.Annotation()["title"].(string); ok {
		g.Axes.Title = t
	}
	return g
}
