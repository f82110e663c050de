package graphics

import (
	"errors"
	"fmt"
	"math"

	"github.com/HamletTheHamster/plothelper/plotobj"
)

var ErrUnknownPosition = errors.New("graphics: unknown legend position")

// LegendPosition is the pad corner a legend is attached to.
type LegendPosition int

const (
	TopLeft LegendPosition = iota
	TopRight
	BottomRight
	BottomLeft
)

func (p LegendPosition) String() string {
	switch p {
	case TopLeft:
		return "TopLeft"
	case TopRight:
		return "TopRight"
	case BottomRight:
		return "BottomRight"
	case BottomLeft:
		return "BottomLeft"
	}
	return fmt.Sprintf("LegendPosition(%d)", int(p))
}

// legendGap is the distance kept between a legend and the frame.
const legendGap = 0.02

// PutLegend builds a legend with one entry per drawn object of pad and
// places it in the pos corner of the frame. width and height are fractions
// of the pad and set the stored rectangle; when rendered, the legend is
// anchored at the rectangle's pos corner and sized by its entries. The
// legend has no border and uses the style's text size.
func (s *Style) PutLegend(pad *plotobj.Pad, pos LegendPosition, width, height float64, option string) (*plotobj.Legend, error) {
	top := 1 - pad.Margins.Top - legendGap
	right := 1 - pad.Margins.Right - legendGap
	bottom := pad.Margins.Bottom + legendGap
	left := pad.Margins.Left + legendGap

	var x1, y1, x2, y2 float64
	switch pos {
	case TopLeft:
		x1, y1, x2, y2 = left, top, left+width, top-height
	case TopRight:
		x1, y1, x2, y2 = right-width, top, right, top-height
	case BottomRight:
		x1, y1, x2, y2 = right-width, bottom+height, right, bottom
	case BottomLeft:
		x1, y1, x2, y2 = left, bottom+height, left+width, bottom
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownPosition, pos)
	}

	leg := plotobj.NewLegend(
		pad.Name()+"_legend",
		math.Min(x1, x2), math.Min(y1, y2),
		math.Max(x1, x2), math.Max(y1, y2),
	)
	leg.BorderSize = 0
	leg.TextSize = s.Size.TextSize
	leg.Option = option

	for _, o := range pad.Children() {
		addLegendEntries(leg, o)
	}
	pad.Draw(leg)
	return leg, nil
}

func addLegendEntries(leg *plotobj.Legend, o plotobj.Object) {
	switch o.Kind() {
	case plotobj.KindPad, plotobj.KindLine, plotobj.KindLegend:
		return
	case plotobj.KindMultiGraph, plotobj.KindStack:
		for _, c := range o.(plotobj.Container).Children() {
			addLegendEntries(leg, c)
		}
		return
	}
	label := o.Name()
	if t, ok := o.(plotobj.Titled); ok && t.Title() != "" {
		label = t.Title()
	}
	leg.AddEntry(o, label)
}
