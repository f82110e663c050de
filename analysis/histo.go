package analysis

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/HamletTheHamster/plothelper/plotobj"
)

var ErrEmptyHistogram = errors.New("analysis: histogram integral is zero")

// ScaleHistoX returns a copy of h with every bin edge multiplied by k.
// Contents and errors are unchanged.
func ScaleHistoX(
	h *plotobj.Histogram, k float64,
) (
	*plotobj.Histogram, error,
) {

	if !(k > 0) {
		return nil, fmt.Errorf("analysis: x scale factor must be positive, got %v", k)
	}

	scaled := h.Clone(h.Name() + "_scaled")
	floats.Scale(k, scaled.Edges)
	return scaled, nil
}

// ConvertToDensityHisto returns a copy of h in which each bin content and
// error is divided by the bin width times the integral of h, so that the
// sum of content*width is 1.
func ConvertToDensityHisto(
	h *plotobj.Histogram,
) (
	*plotobj.Histogram, error,
) {

	integral := floats.Sum(h.Contents)
	if integral == 0 {
		return nil, ErrEmptyHistogram
	}

	density := h.Clone(h.Name() + "_density")
	for i := range density.Contents {
		norm := density.BinWidth(i) * integral
		density.Contents[i] /= norm
		density.Errors[i] /= norm
	}
	return density, nil
}
