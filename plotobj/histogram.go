package plotobj

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var ErrBadBinning = errors.New("plotobj: bin edges must be strictly increasing")

// Histogram is a 1-D histogram. Bin i spans [Edges[i], Edges[i+1]).
type Histogram struct {
	name     string
	Edges    []float64
	Contents []float64
	Errors   []float64
	Entries  int64
	Axes     Axes
	Style    Style
}

// NewHistogram returns a histogram with n fixed-width bins on [xmin, xmax).
func NewHistogram(name string, n int, xmin, xmax float64) (*Histogram, error) {
	if n < 1 || !(xmax > xmin) {
		return nil, fmt.Errorf("%w: %d bins on [%v, %v)", ErrBadBinning, n, xmin, xmax)
	}
	edges := make([]float64, n+1)
	w := (xmax - xmin) / float64(n)
	for i := range edges {
		edges[i] = xmin + float64(i)*w
	}
	edges[n] = xmax
	return NewHistogramFromEdges(name, edges)
}

// NewHistogramFromEdges returns a histogram with the given bin edges.
func NewHistogramFromEdges(name string, edges []float64) (*Histogram, error) {
	if len(edges) < 2 {
		return nil, fmt.Errorf("%w: %d edges", ErrBadBinning, len(edges))
	}
	for i := 1; i < len(edges); i++ {
		if !(edges[i] > edges[i-1]) {
			return nil, fmt.Errorf("%w: edge %d", ErrBadBinning, i)
		}
	}
	n := len(edges) - 1
	return &Histogram{
		name:     name,
		Edges:    append([]float64(nil), edges...),
		Contents: make([]float64, n),
		Errors:   make([]float64, n),
	}, nil
}

func (h *Histogram) Name() string        { return h.name }
func (h *Histogram) SetName(name string) { h.name = name }
func (*Histogram) Kind() Kind            { return KindHistogram }
func (h *Histogram) Title() string       { return h.Axes.Title }
func (h *Histogram) XTitle() string      { return h.Axes.X.Title }
func (h *Histogram) YTitle() string      { return h.Axes.Y.Title }

// NBins returns the number of bins.
func (h *Histogram) NBins() int { return len(h.Contents) }

// BinWidth returns the width of bin i.
func (h *Histogram) BinWidth(i int) float64 { return h.Edges[i+1] - h.Edges[i] }

// BinCenter returns the middle of bin i.
func (h *Histogram) BinCenter(i int) float64 { return 0.5 * (h.Edges[i] + h.Edges[i+1]) }

// FindBin returns the bin containing x, or -1 outside the axis range.
func (h *Histogram) FindBin(x float64) int {
	if x < h.Edges[0] || x >= h.Edges[len(h.Edges)-1] {
		return -1
	}
	return sort.Search(len(h.Edges), func(i int) bool { return h.Edges[i] > x }) - 1
}

// Fill adds weight w at x. Out-of-range values only count as entries.
func (h *Histogram) Fill(x, w float64) {
	h.Entries++
	i := h.FindBin(x)
	if i < 0 {
		return
	}
	h.Contents[i] += w
	h.Errors[i] = math.Sqrt(h.Errors[i]*h.Errors[i] + w*w)
}

// Integral returns the sum of the bin contents.
func (h *Histogram) Integral() float64 {
	sum := 0.
	for _, c := range h.Contents {
		sum += c
	}
	return sum
}

// Clone returns a deep copy named name.
func (h *Histogram) Clone(name string) *Histogram {
	c := *h
	c.name = name
	c.Edges = append([]float64(nil), h.Edges...)
	c.Contents = append([]float64(nil), h.Contents...)
	c.Errors = append([]float64(nil), h.Errors...)
	return &c
}

func (h *Histogram) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = h.Edges[0], h.Edges[len(h.Edges)-1]
	ymin, ymax = math.Inf(1), math.Inf(-1)
	for i, c := range h.Contents {
		ymin = math.Min(ymin, c-h.Errors[i])
		ymax = math.Max(ymax, c+h.Errors[i])
	}
	ymin = math.Min(ymin, 0)
	return xmin, xmax, ymin, ymax
}
