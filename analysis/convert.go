package analysis

import "github.com/HamletTheHamster/plothelper/plotobj"

// ConvertGraphYAxis replaces every y value of g by conv(y) and sets the
// y-axis title. Errors are left as they are. It returns g.
func ConvertGraphYAxis(g *plotobj.Graph, conv func(float64) float64, yTitle string) *plotobj.Graph {
	for i := range g.Points {
		g.Points[i].Y = conv(g.Points[i].Y)
	}
	g.Axes.Y.Title = yTitle
	return g
}
