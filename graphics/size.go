// Package graphics creates and styles canvases: pad grids, calibrated
// fonts and margins, legends, color rings and rendering through gonum/plot.
//
// Every helper takes the pad it acts on explicitly; sizes come from a Style.
package graphics

// Size is a set of font and margin calibrations for a given printed size.
// Text sizes and margins are fractions of the pad, offsets are multiples of
// the text size.
type Size struct {
	PadWidth, PadHeight int // pixels

	TextSize float64

	TitleOffsetX, TitleOffsetY float64
	TitleOffsetStepHorizontal  float64

	TopMargin, RightMargin, BottomMargin, LeftMargin float64
	TopMarginWithExponent, RightMarginWithExponent   float64

	MarginStepHorizontal, MarginStepVertical float64
}

// Size8pt gives 8pt text on an 86 mm wide figure.
var Size8pt = Size{
	PadWidth:                  700,
	PadHeight:                 500,
	TextSize:                  0.05195,
	TitleOffsetX:              1.1,
	TitleOffsetY:              1.15,
	TitleOffsetStepHorizontal: 0.225,
	TopMargin:                 0.01,
	RightMargin:               0.005,
	BottomMargin:              0.14,
	LeftMargin:                0.14,
	TopMarginWithExponent:     0.06,
	RightMarginWithExponent:   0.07,
	MarginStepHorizontal:      0.019,
	MarginStepVertical:        0.01,
}

// Size10pt gives 10pt text on an 86 mm wide figure.
var Size10pt = Size{
	PadWidth:                  700,
	PadHeight:                 500,
	TextSize:                  0.06494,
	TitleOffsetX:              1.15,
	TitleOffsetY:              1.20,
	TitleOffsetStepHorizontal: 0.2,
	TopMargin:                 0.01,
	RightMargin:               0.005,
	BottomMargin:              0.155,
	LeftMargin:                0.15,
	TopMarginWithExponent:     0.06,
	RightMarginWithExponent:   0.07,
	MarginStepHorizontal:      0.025,
	MarginStepVertical:        0.01,
}

// SizeByName returns the preset called "8pt" or "10pt".
func SizeByName(name string) (Size, bool) {
	switch name {
	case "8pt":
		return Size8pt, true
	case "10pt":
		return Size10pt, true
	}
	return Size{}, false
}
