// Package analysis holds numeric helpers for measured series and
// histograms: merging, curve inversion, rescaling and peak fitting.
package analysis

import (
	"errors"
	"fmt"
	"math"

	"github.com/HamletTheHamster/plothelper/plotobj"
)

var ErrLengthMismatch = errors.New("analysis: series have different number of points")

// MergeScaled returns the series a*g0 + g1, matched point by point by index.
//
// Y errors add in quadrature. When both x errors of a pair are zero the
// merged x is their mean; otherwise each x is weighted by the other
// point's x error.
func MergeScaled(
	a float64, g0, g1 *plotobj.Graph,
) (
	*plotobj.Graph, error,
) {

	n := g0.Len()
	if n != g1.Len() {
		return nil, fmt.Errorf("%w: %d and %d", ErrLengthMismatch, n, g1.Len())
	}

	sum := plotobj.NewGraph(g0.Name()+"_merged", n)
	sum.Axes.X.Title = g0.Axes.X.Title
	sum.Axes.Y.Title = g0.Axes.Y.Title

	for i := 0; i < n; i++ {
		p0, p1 := g0.Points[i], g1.Points[i]

		var x, ex float64
		if p0.EX == 0 && p1.EX == 0 {
			x = (p0.X + p1.X) / 2
		} else {
			wSum := p0.EX + p1.EX
			w0, w1 := p1.EX/wSum, p0.EX/wSum
			x = p0.X*w0 + p1.X*w1
			ex = math.Sqrt2 * p0.EX * p1.EX / wSum
		}

		y := a*p0.Y + p1.Y
		ey := math.Hypot(a*p0.EY, p1.EY)

		sum.SetPoint(i, x, y)
		sum.SetPointError(i, ex, ey)
	}

	return sum, nil
}
