package graphics

import (
	"fmt"

	"github.com/HamletTheHamster/plothelper/plotobj"
)

// Style carries the size calibration used by the canvas and axis helpers.
type Style struct {
	Size Size
}

// NewStyle returns a Style using size.
func NewStyle(size Size) *Style {
	return &Style{Size: size}
}

// DefaultPadGrid returns the columns and rows used to lay out n plots.
func DefaultPadGrid(n int) (nx, ny int) {
	switch {
	case n <= 1:
		return 1, 1
	case n <= 2:
		return 2, 1
	case n <= 4:
		return 2, 2
	case n <= 6:
		return 3, 2
	case n <= 9:
		return 3, 3
	}
	return 4, 3
}

// NewCanvas returns a canvas of nx×ny pads of the style's pad size. The
// canvas is divided only when it holds more than one pad.
func (s *Style) NewCanvas(name, title string, nx, ny int) *plotobj.Pad {
	nx, ny = max(nx, 1), max(ny, 1)
	c := plotobj.NewCanvas(name, title, nx*s.Size.PadWidth, ny*s.Size.PadHeight)
	c.Margins = plotobj.Margins{
		Top:    s.Size.TopMargin,
		Right:  s.Size.RightMargin,
		Bottom: s.Size.BottomMargin,
		Left:   s.Size.LeftMargin,
	}
	if nx > 1 || ny > 1 {
		c.Divide(nx, ny)
	}
	return c
}

// NewCanvasWithDefaultGrid returns a canvas laid out for n plots.
func (s *Style) NewCanvasWithDefaultGrid(name, title string, n int) *plotobj.Pad {
	nx, ny := DefaultPadGrid(n)
	return s.NewCanvas(name, title, nx, ny)
}

// DrawWithAutoRecreatorOfCanvas draws objs one per pad on nx×ny canvases,
// starting a new canvas <name>_<k> each time the current one is full.
func (s *Style) DrawWithAutoRecreatorOfCanvas(name string, nx, ny int, objs []plotobj.Object) []*plotobj.Pad {
	nx, ny = max(nx, 1), max(ny, 1)
	nPad := nx * ny

	var canvases []*plotobj.Pad
	current := nPad + 1
	for _, obj := range objs {
		if current > nPad {
			cname := fmt.Sprintf("%s_%d", name, len(canvases))
			canvases = append(canvases, s.NewCanvas(cname, cname, nx, ny))
			current = 1
		}
		c := canvases[len(canvases)-1]
		if c.NPads() == 0 {
			c.Draw(obj)
		} else {
			c.Cd(current).Draw(obj)
		}
		current++
	}
	return canvases
}
