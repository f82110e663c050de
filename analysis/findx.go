package analysis

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/gonum/optimize"

	"github.com/HamletTheHamster/plothelper/plotobj"
)

var (
	ErrTooFewPoints  = errors.New("analysis: curve needs at least 2 points")
	ErrNotIncreasing = errors.New("analysis: curve x values are not strictly increasing")
)

// gridSteps is the number of sub-intervals scanned on the search window.
const gridSteps = 100

const (
	rootTol = 1e-12
	maxIter = 200
	machEps = 2.220446049250313e-16
)

// FindX returns an x at which the natural cubic spline through g takes the
// value y, searching [xStart, xEnd]. The window is clipped to the x range
// of the samples since the spline is not extrapolated; a degenerate window
// (xStart >= xEnd, before or after clipping) is replaced by that range.
//
// If y lies above the spline maximum on the window, the position of the
// maximum is returned; below the minimum, the position of the minimum.
// Otherwise the first crossing in ascending x is returned.
func FindX(
	g *plotobj.Graph, y, xStart, xEnd float64,
) (
	float64, error,
) {

	if g.Len() < 2 {
		return 0, ErrTooFewPoints
	}

	xs, ys := g.Xs(), g.Ys()
	inds := make([]int, len(xs))
	floats.Argsort(xs, inds)
	sorted := make([]float64, len(ys))
	for i, j := range inds {
		sorted[i] = ys[j]
	}
	ys = sorted
	for i := 1; i < len(xs); i++ {
		if !(xs[i] > xs[i-1]) {
			return 0, fmt.Errorf("%w: x[%d]=%v, x[%d]=%v", ErrNotIncreasing, i-1, xs[i-1], i, xs[i])
		}
	}

	lo, hi := xs[0], xs[len(xs)-1]
	if xStart < xEnd {
		xStart, xEnd = math.Max(xStart, lo), math.Min(xEnd, hi)
	}
	if xStart >= xEnd {
		xStart, xEnd = lo, hi
	}

	var spl interp.NaturalCubic
	if err := spl.Fit(xs, ys); err != nil {
		return 0, fmt.Errorf("analysis: could not fit spline: %w", err)
	}
	f := spl.Predict

	// Grid scan of the window.
	grid := make([]float64, gridSteps+1)
	vals := make([]float64, gridSteps+1)
	step := (xEnd - xStart) / gridSteps
	for i := range grid {
		grid[i] = xStart + float64(i)*step
		vals[i] = f(grid[i])
	}
	grid[gridSteps] = xEnd
	vals[gridSteps] = f(xEnd)

	iMax, iMin := floats.MaxIdx(vals), floats.MinIdx(vals)
	xMax, yMax := refineExtremum(f, xStart, xEnd, grid[iMax], -1)
	xMin, yMin := refineExtremum(f, xStart, xEnd, grid[iMin], +1)

	switch {
	case y > yMax:
		return xMax, nil
	case y < yMin:
		return xMin, nil
	}

	h := func(x float64) float64 { return f(x) - y }
	for i := 0; i < gridSteps; i++ {
		lo, hi := vals[i]-y, vals[i+1]-y
		if lo == 0 {
			return grid[i], nil
		}
		if lo*hi < 0 {
			return brent(h, grid[i], grid[i+1], lo, hi, rootTol)
		}
	}
	if vals[gridSteps] == y {
		return xEnd, nil
	}

	// y is within [min, max] but no grid interval brackets it: the crossing
	// is a tangency near one of the refined extrema.
	if math.Abs(yMax-y) < math.Abs(yMin-y) {
		return xMax, nil
	}
	return xMin, nil
}

// refineExtremum polishes a grid extremum at x0 with Nelder-Mead. The
// search variable t maps onto [lo, hi] through lo+(hi-lo)(sin t+1)/2 so the
// minimiser cannot leave the window. sign is +1 for a minimum and -1 for a
// maximum. The grid value is kept if the refinement does not improve it.
func refineExtremum(
	f func(float64) float64, lo, hi, x0, sign float64,
) (
	x, fx float64,
) {

	toX := func(t float64) float64 {
		return lo + (hi-lo)*(math.Sin(t)+1)/2
	}
	u := 2*(x0-lo)/(hi-lo) - 1
	t0 := math.Asin(math.Max(-1, math.Min(1, u)))

	p := optimize.Problem{
		Func: func(t []float64) float64 {
			return sign * f(toX(t[0]))
		},
	}
	x, fx = x0, f(x0)
	res, err := optimize.Minimize(p, []float64{t0}, nil, &optimize.NelderMead{})
	if err != nil || res == nil {
		return x, fx
	}
	if xr := toX(res.X[0]); sign*f(xr) < sign*fx {
		x, fx = xr, f(xr)
	}
	return x, fx
}

// brent finds a root of f on [a, b] with f(a)=fa and f(b)=fb of opposite
// signs, using the Brent-Dekker method.
func brent(f func(float64) float64, a, b, fa, fb, tol float64) (float64, error) {
	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}
	if fa*fb > 0 {
		return 0, fmt.Errorf("analysis: root not bracketed in [%v, %v]", a, b)
	}

	c, fc := b, fb
	var d, e float64
	for i := 0; i < maxIter; i++ {
		if (fb > 0 && fc > 0) || (fb < 0 && fc < 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}
		tol1 := 2*machEps*math.Abs(b) + 0.5*tol
		xm := 0.5 * (c - b)
		if math.Abs(xm) <= tol1 || fb == 0 {
			return b, nil
		}
		if math.Abs(e) >= tol1 && math.Abs(fa) > math.Abs(fb) {
			var p, q float64
			s := fb / fa
			if a == c {
				p = 2 * xm * s
				q = 1 - s
			} else {
				q = fa / fc
				r := fb / fc
				p = s * (2*xm*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			}
			p = math.Abs(p)
			if 2*p < math.Min(3*xm*q-math.Abs(tol1*q), math.Abs(e*q)) {
				e = d
				d = p / q
			} else {
				d = xm
				e = d
			}
		} else {
			d = xm
			e = d
		}
		a, fa = b, fb
		if math.Abs(d) > tol1 {
			b += d
		} else {
			b += math.Copysign(tol1, xm)
		}
		fb = f(b)
	}
	return b, fmt.Errorf("analysis: root search did not converge in %d iterations", maxIter)
}
