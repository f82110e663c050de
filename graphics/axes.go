package graphics

import (
	"math"

	"github.com/HamletTheHamster/plothelper/plotobj"
)

// IncreaseTopMargin grows the top margin of pad by scale vertical steps,
// leaving room for a label on the top border. It returns the new margin.
func (s *Style) IncreaseTopMargin(pad *plotobj.Pad, scale float64) float64 {
	pad.Margins.Top = math.Max(0, pad.Margins.Top+scale*s.Size.MarginStepVertical)
	return pad.Margins.Top
}

// IncreaseRightMargin grows the right margin of pad by scale horizontal
// steps. It returns the new margin.
func (s *Style) IncreaseRightMargin(pad *plotobj.Pad, scale float64) float64 {
	pad.Margins.Right = math.Max(0, pad.Margins.Right+scale*s.Size.MarginStepHorizontal)
	return pad.Margins.Right
}

// IncreaseLeftMargin grows the left margin of pad by scale horizontal steps
// and moves the y title of obj by as many title offset steps.
func (s *Style) IncreaseLeftMargin(pad *plotobj.Pad, obj plotobj.Object, scale float64) float64 {
	pad.Margins.Left = math.Max(0, pad.Margins.Left+scale*s.Size.MarginStepHorizontal)
	if ax := plotobj.AxesOf(obj); ax != nil {
		ax.Y.TitleOffset += scale * s.Size.TitleOffsetStepHorizontal
	}
	return pad.Margins.Left
}

// SetXAxis applies the style's x axis layout to obj and sets the right and
// bottom margins of pad.
func (s *Style) SetXAxis(pad *plotobj.Pad, obj plotobj.Object) {
	pad.Margins.Right = s.Size.RightMargin
	pad.Margins.Bottom = s.Size.BottomMargin

	ax := plotobj.AxesOf(obj)
	if ax == nil {
		return
	}
	ax.X.TitleSize = s.Size.TextSize
	ax.X.LabelSize = s.Size.TextSize
	ax.X.TitleOffset = s.Size.TitleOffsetX
	ax.X.Divisions = 510
	ax.X.Centered = true
}

// SetYAxis applies the style's y axis layout to obj and sets the top and
// left margins of pad. The left margin is calibrated for 2-digit labels and
// grows by one step per extra digit, and by one more when the range
// reaches zero or below.
func (s *Style) SetYAxis(pad *plotobj.Pad, obj plotobj.Object) {
	pad.Margins.Top = s.Size.TopMargin
	pad.Margins.Left = s.Size.LeftMargin

	ax := plotobj.AxesOf(obj)
	if ax == nil {
		return
	}
	ax.Y.TitleSize = s.Size.TextSize
	ax.Y.LabelSize = s.Size.TextSize
	ax.Y.TitleOffset = s.Size.TitleOffsetY
	ax.Y.Divisions = 505
	ax.Y.Centered = true

	r, ok := obj.(plotobj.Ranger)
	if !ok {
		return
	}
	_, _, lo, hi := r.DataRange()
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return
	}

	if !(lo > 0) {
		s.IncreaseLeftMargin(pad, obj, 1)
	}

	perDiv := (hi - lo) / 5
	if perDiv <= 0 {
		return
	}
	digits := math.Floor(math.Log10(math.Max(math.Abs(hi)/perDiv, math.Abs(lo)/perDiv))) + 2
	if math.IsInf(digits, 0) || math.IsNaN(digits) {
		return
	}
	s.IncreaseLeftMargin(pad, obj, digits-2)
}

// SetAxes applies SetXAxis and SetYAxis.
func (s *Style) SetAxes(pad *plotobj.Pad, obj plotobj.Object) {
	s.SetXAxis(pad, obj)
	s.SetYAxis(pad, obj)
}

// SetMaxDigitX limits the x labels to 3 digits, moving the exponent next to
// the axis end.
func SetMaxDigitX(pad *plotobj.Pad, obj plotobj.Object) {
	pad.Margins.Right = 0.11
	if ax := plotobj.AxesOf(obj); ax != nil {
		ax.X.MaxDigits = 3
	}
}

// SetMaxDigitY limits the y labels to 3 digits, moving the exponent above
// the axis.
func SetMaxDigitY(pad *plotobj.Pad, obj plotobj.Object) {
	pad.Margins.Top = 0.075
	if ax := plotobj.AxesOf(obj); ax != nil {
		ax.Y.MaxDigits = 3
	}
}

// SetYAxisFullWidth makes room for a y axis on a full-width figure.
func SetYAxisFullWidth(pad *plotobj.Pad, obj plotobj.Object) {
	pad.Margins.Left = 0.185
	if ax := plotobj.AxesOf(obj); ax != nil {
		ax.Y.TitleOffset = 1.4
	}
}

// TimeFormat is the two-line date layout used by SetTimeXAxis.
const TimeFormat = "15:04\n01/02"

// SetTimeXAxis turns the x axis of obj into a date axis labelled
// "Datetime".
func SetTimeXAxis(pad *plotobj.Pad, obj plotobj.Object) {
	pad.Margins.Right = 0.05
	pad.Margins.Bottom = 0.19

	ax := plotobj.AxesOf(obj)
	if ax == nil {
		return
	}
	ax.X.Title = "Datetime"
	ax.X.TimeFormat = TimeFormat
	ax.X.LabelSize = 0.06
	ax.X.LabelOffset = 0.03
	ax.X.TitleSize = 0.06
	ax.X.TitleOffset = 1.6
	ax.X.Divisions = 503
	ax.X.Centered = true
}
