package analysis

import (
	"errors"
	"fmt"
	"math"

	"github.com/maorshutman/lm"

	"github.com/HamletTheHamster/plothelper/plotobj"
)

// LorentzianFit holds the parameters of
//
//	.25*A*Γ² / ((x-X0)² + .25*Γ²) + C
//
// where Gamma is the full width at half maximum.
type LorentzianFit struct {
	A, X0, Gamma, C float64
}

// Params returns the parameters in the order A, X0, Gamma, C.
func (p LorentzianFit) Params() []float64 {
	return []float64{p.A, p.X0, p.Gamma, p.C}
}

// Eval evaluates the fitted curve at x.
func (p LorentzianFit) Eval(x float64) float64 {
	return Lorentzian(x, p.A, p.X0, p.Gamma, p.C)
}

// Curve samples the fitted curve on n points starting at x0 with step dx.
func (p LorentzianFit) Curve(name string, x0, dx float64, n int) *plotobj.Graph {
	g := plotobj.NewGraph(name, n)
	for i := 0; i < n; i++ {
		x := x0 + float64(i)*dx
		g.SetPoint(i, x, p.Eval(x))
	}
	return g
}

func Lorentzian(
	x, A, x0, gamma, C float64,
) (
	float64,
) {
	return .25*A*math.Pow(gamma, 2)/(math.Pow(x-x0, 2)+(.25*math.Pow(gamma, 2))) + C
}

// FitLorentzian fits a Lorentzian to g with Levenberg-Marquardt, starting
// from init. Residuals are weighted by the y errors of the points where they
// are non-zero.
func FitLorentzian(
	g *plotobj.Graph, init LorentzianFit,
) (
	LorentzianFit, error,
) {

	if g.Len() < 4 {
		return init, fmt.Errorf("analysis: Lorentzian fit needs at least 4 points, got %d", g.Len())
	}

	resFunc := func(dst, params []float64) {
		A, x0, gamma, C := params[0], params[1], params[2], params[3]
		for i, p := range g.Points {
			r := p.Y - Lorentzian(p.X, A, x0, gamma, C)
			if p.EY != 0 {
				r /= p.EY
			}
			dst[i] = r
		}
	}

	nj := &lm.NumJac{Func: resFunc}

	problem := lm.LMProblem{
		Dim:        4,
		Size:       g.Len(),
		Func:       resFunc,
		Jac:        nj.Jac,
		InitParams: init.Params(),
		Tau:        1e-6,
		Eps1:       1e-8,
		Eps2:       1e-8,
	}

	result, err := lm.LM(problem, &lm.Settings{Iterations: 1000, ObjectiveTol: 1e-16})
	if err != nil {
		return init, fmt.Errorf("analysis: Lorentzian fit failed: %w", err)
	}
	if len(result.X) != 4 {
		return init, errors.New("analysis: Lorentzian fit returned no parameters")
	}

	return LorentzianFit{
		A:     result.X[0],
		X0:    result.X[1],
		Gamma: math.Abs(result.X[2]),
		C:     result.X[3],
	}, nil
}
