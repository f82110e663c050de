package graphics

import (
	"fmt"
	"math"

	"github.com/HamletTheHamster/plothelper/plotobj"
)

// DrawHorizontalLine draws a line at y across the x range of what pad
// holds so far.
func DrawHorizontalLine(pad *plotobj.Pad, y float64) *plotobj.Line {
	x0, x1, _, _ := padRange(pad)
	l := plotobj.NewLine(fmt.Sprintf("%s_hline_%d", pad.Name(), len(pad.Children())), x0, y, x1, y)
	pad.Draw(l)
	return l
}

// DrawVerticalLine draws a line at x across the y range of what pad holds
// so far.
func DrawVerticalLine(pad *plotobj.Pad, x float64) *plotobj.Line {
	_, _, y0, y1 := padRange(pad)
	l := plotobj.NewLine(fmt.Sprintf("%s_vline_%d", pad.Name(), len(pad.Children())), x, y0, x, y1)
	pad.Draw(l)
	return l
}

// padRange is the data range of pad, or the unit square on an empty pad.
func padRange(pad *plotobj.Pad) (x0, x1, y0, y1 float64) {
	x0, x1, y0, y1 = pad.DataRange()
	if math.IsNaN(x0) {
		return 0, 1, 0, 1
	}
	return x0, x1, y0, y1
}
