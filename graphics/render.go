package graphics

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/HamletTheHamster/plothelper/plotobj"
)

// pixel is the printed size of one canvas pixel (96 dpi).
const pixel = vg.Inch / 96

// Render draws canvas c in the given format ("pdf", "png", "svg", ...) and
// writes it to w.
func Render(c *plotobj.Pad, w io.Writer, format string) error {
	cw, err := draw.NewFormattedCanvas(vg.Length(c.Width)*pixel, vg.Length(c.Height)*pixel, format)
	if err != nil {
		return fmt.Errorf("graphics: could not create %s canvas: %w", format, err)
	}
	if err := drawPad(c, draw.New(cw)); err != nil {
		return err
	}
	if _, err := cw.WriteTo(w); err != nil {
		return fmt.Errorf("graphics: could not write %q as %s: %w", c.Name(), format, err)
	}
	return nil
}

// RenderFile renders c to path, the format being the file extension.
func RenderFile(c *plotobj.Pad, path string) error {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphics: %w", err)
	}
	defer f.Close()

	if err := Render(c, f, format); err != nil {
		return err
	}
	return f.Close()
}

func drawPad(p *plotobj.Pad, dc draw.Canvas) error {
	if subs := p.SubPads(); len(subs) > 0 {
		tiles := draw.Tiles{Rows: p.Rows, Cols: p.Cols}
		for i, sub := range subs {
			if err := drawPad(sub, tiles.At(dc, i%p.Cols, i/p.Cols)); err != nil {
				return err
			}
		}
	}

	pl, err := newPlot(p)
	if err != nil || pl == nil {
		return err
	}

	// Margins are kept free around the plot, axes included.
	w, h := dc.Max.X-dc.Min.X, dc.Max.Y-dc.Min.Y
	m := p.Margins
	if leg := padLegend(p); leg != nil {
		pl.Legend.XOffs, pl.Legend.YOffs = legendOffsets(leg, m, w, h)
	}
	pl.Draw(draw.Crop(dc, vg.Length(m.Left)*w, -vg.Length(m.Right)*w, vg.Length(m.Bottom)*h, -vg.Length(m.Top)*h))
	return nil
}

// newPlot builds the plot of the primitives of p. It returns nil when p
// holds nothing drawable.
func newPlot(p *plotobj.Pad) (*plot.Plot, error) {
	frame := p.Frame()
	if frame == nil {
		return nil, nil
	}
	padHeight := vg.Length(p.Height) * pixel

	pl := plot.New()
	pl.BackgroundColor = color.RGBA{A: 0}
	if ax := plotobj.AxesOf(frame); ax != nil {
		setPlotAxes(pl, ax, padHeight)
	}

	b := &builder{pl: pl, thumbs: make(map[plotobj.Object][]plot.Thumbnailer)}
	for _, o := range p.Children() {
		if err := b.add(o); err != nil {
			return nil, fmt.Errorf("graphics: pad %q: %w", p.Name(), err)
		}
	}
	for _, r := range b.extra {
		x0, x1, y0, y1 := r.DataRange()
		pl.X.Min, pl.X.Max = math.Min(pl.X.Min, x0), math.Max(pl.X.Max, x1)
		pl.Y.Min, pl.Y.Max = math.Min(pl.Y.Min, y0), math.Max(pl.Y.Max, y1)
	}
	if b.legend != nil {
		setLegend(pl, b.legend, b.thumbs, padHeight)
	}
	return pl, nil
}

func setPlotAxes(pl *plot.Plot, ax *plotobj.Axes, padHeight vg.Length) {
	pl.Title.Text = ax.Title
	pl.Title.TextStyle.Font.Variant = "Sans"

	for _, a := range []struct {
		axis *plot.Axis
		desc plotobj.Axis
	}{
		{&pl.X, ax.X},
		{&pl.Y, ax.Y},
	} {
		a.axis.Label.Text = a.desc.Title
		a.axis.Label.TextStyle.Font.Variant = "Sans"
		a.axis.Tick.Label.Font.Variant = "Sans"
		a.axis.LineStyle.Width = vg.Points(1.5)
		a.axis.Tick.LineStyle.Width = vg.Points(1.5)
		if a.desc.TitleSize > 0 {
			a.axis.Label.TextStyle.Font.Size = vg.Length(a.desc.TitleSize) * padHeight
		}
		if a.desc.LabelSize > 0 {
			a.axis.Tick.Label.Font.Size = vg.Length(a.desc.LabelSize) * padHeight
		}
		if a.desc.TimeFormat != "" {
			a.axis.Tick.Marker = plot.TimeTicks{Format: a.desc.TimeFormat}
		}
	}
	// Uncentered titles sit at the axis end.
	if !ax.X.Centered {
		pl.X.Label.Position = draw.PosRight
	}
	if !ax.Y.Centered {
		pl.Y.Label.Position = draw.PosTop
	}
}

func setLegend(pl *plot.Plot, leg *plotobj.Legend, thumbs map[plotobj.Object][]plot.Thumbnailer, padHeight vg.Length) {
	pl.Legend.TextStyle.Font.Variant = "Sans"
	if leg.TextSize > 0 {
		pl.Legend.TextStyle.Font.Size = vg.Length(leg.TextSize) * padHeight
	}
	pl.Legend.Top = (leg.Y1+leg.Y2)/2 > 0.5
	pl.Legend.Left = (leg.X1+leg.X2)/2 < 0.5
	pl.Legend.ThumbnailWidth = vg.Points(25)
	for _, e := range leg.Entries {
		pl.Legend.Add(e.Label, thumbs[e.Object]...)
	}
}

func padLegend(p *plotobj.Pad) *plotobj.Legend {
	var leg *plotobj.Legend
	for _, o := range p.Children() {
		if l, ok := o.(*plotobj.Legend); ok {
			leg = l
		}
	}
	return leg
}

// legendOffsets returns the shift moving the legend from the frame corner
// chosen by setLegend to the corner of its rectangle, for a pad of size w
// by h. The legend box itself is sized by its entries.
func legendOffsets(leg *plotobj.Legend, m plotobj.Margins, w, h vg.Length) (x, y vg.Length) {
	if (leg.X1+leg.X2)/2 < 0.5 {
		x = vg.Length(leg.X1-m.Left) * w
	} else {
		x = -vg.Length(1-m.Right-leg.X2) * w
	}
	if (leg.Y1+leg.Y2)/2 > 0.5 {
		y = -vg.Length(1-m.Top-leg.Y2) * h
	} else {
		y = vg.Length(leg.Y1-m.Bottom) * h
	}
	return x, y
}

// builder turns plot objects into gonum plotters.
type builder struct {
	pl     *plot.Plot
	thumbs map[plotobj.Object][]plot.Thumbnailer
	legend *plotobj.Legend
	extra  []plotobj.Ranger
}

func (b *builder) add(o plotobj.Object) error {
	switch o := o.(type) {
	case *plotobj.Pad:
		// drawn by drawPad
	case *plotobj.MultiGraph:
		for _, g := range o.Graphs {
			if err := b.add(g); err != nil {
				return err
			}
		}
	case *plotobj.Stack:
		hs := make([]*hplot.H1D, len(o.Hists))
		for i, h := range o.Hists {
			hs[i] = newH1D(h)
			b.thumbs[h] = []plot.Thumbnailer{hs[i]}
		}
		b.pl.Add(hplot.NewHStack(hs))
	case *plotobj.Histogram:
		hh := newH1D(o)
		b.pl.Add(hh)
		b.thumbs[o] = []plot.Thumbnailer{hh}
	case *plotobj.Graph:
		return b.addGraph(o)
	case *plotobj.Graph2D:
		return b.addGraph2D(o)
	case *plotobj.Function:
		f := plotter.NewFunction(o.F)
		f.XMin, f.XMax, f.Samples = o.XMin, o.XMax, o.NPoints
		f.LineStyle.Color = colorOr(o.Style.LineColor, color.Black)
		f.LineStyle.Width = lineWidth(o.Style)
		b.pl.Add(f)
		b.thumbs[o] = []plot.Thumbnailer{f}
		b.extra = append(b.extra, o)
	case *plotobj.Line:
		l, err := plotter.NewLine(plotter.XYs{{X: o.X1, Y: o.Y1}, {X: o.X2, Y: o.Y2}})
		if err != nil {
			return fmt.Errorf("line %q: %w", o.Name(), err)
		}
		l.LineStyle.Color = colorOr(o.Style.LineColor, color.Black)
		l.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		b.pl.Add(l)
	case *plotobj.Legend:
		b.legend = o
	default:
		return fmt.Errorf("cannot draw %v %q", o.Kind(), o.Name())
	}
	return nil
}

func (b *builder) addGraph(g *plotobj.Graph) error {
	s, err := plotter.NewScatter(g)
	if err != nil {
		return fmt.Errorf("graph %q: %w", g.Name(), err)
	}
	c := colorOr(g.Style.MarkerColor, color.Black)
	s.GlyphStyle.Color = c
	s.GlyphStyle.Shape = glyph(g.Style.MarkerStyle)
	s.GlyphStyle.Radius = vg.Points(2.5)
	b.pl.Add(s)
	b.thumbs[g] = []plot.Thumbnailer{s}

	var hasEX, hasEY bool
	for _, p := range g.Points {
		hasEX = hasEX || p.EX != 0
		hasEY = hasEY || p.EY != 0
	}
	if hasEX {
		xe, err := plotter.NewXErrorBars(g)
		if err != nil {
			return fmt.Errorf("graph %q: %w", g.Name(), err)
		}
		xe.LineStyle.Color = c
		b.pl.Add(xe)
	}
	if hasEY {
		ye, err := plotter.NewYErrorBars(g)
		if err != nil {
			return fmt.Errorf("graph %q: %w", g.Name(), err)
		}
		ye.LineStyle.Color = c
		b.pl.Add(ye)
	}
	return nil
}

// addGraph2D draws the points in the x-y plane colored by z.
func (b *builder) addGraph2D(g *plotobj.Graph2D) error {
	s, err := plotter.NewScatter(g)
	if err != nil {
		return fmt.Errorf("graph %q: %w", g.Name(), err)
	}
	zmin, zmax := math.Inf(1), math.Inf(-1)
	for _, p := range g.Points {
		zmin, zmax = math.Min(zmin, p.Z), math.Max(zmax, p.Z)
	}
	cm := moreland.SmoothBlueRed()
	if zmax > zmin {
		cm.SetMin(zmin)
		cm.SetMax(zmax)
	}
	shape := glyph(g.Style.MarkerStyle)
	s.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		gs := draw.GlyphStyle{Shape: shape, Radius: vg.Points(2.5), Color: color.Black}
		if zmax > zmin {
			if c, err := cm.At(g.Points[i].Z); err == nil {
				gs.Color = c
			}
		}
		return gs
	}
	b.pl.Add(s)
	b.thumbs[g] = []plot.Thumbnailer{s}
	return nil
}

func newH1D(h *plotobj.Histogram) *hplot.H1D {
	hh := hplot.NewH1D(h.H1D())
	hh.LineStyle.Color = colorOr(h.Style.LineColor, color.Black)
	hh.LineStyle.Width = lineWidth(h.Style)
	if h.Style.FillColor != nil {
		hh.FillColor = h.Style.FillColor
	}
	return hh
}

func colorOr(c, def color.Color) color.Color {
	if c == nil {
		return def
	}
	return c
}

func lineWidth(s plotobj.Style) vg.Length {
	if s.LineWidth > 0 {
		return vg.Points(s.LineWidth)
	}
	return vg.Points(1)
}

// glyph maps a marker style number to a gonum glyph.
func glyph(style int) draw.GlyphDrawer {
	switch style {
	case MarkerSquare:
		return draw.BoxGlyph{}
	case MarkerTriangle:
		return draw.TriangleGlyph{}
	case MarkerPyramid:
		return draw.PyramidGlyph{}
	case MarkerRing:
		return draw.RingGlyph{}
	case MarkerOpenSquare:
		return draw.SquareGlyph{}
	case MarkerPlus:
		return draw.PlusGlyph{}
	case MarkerCross:
		return draw.CrossGlyph{}
	}
	return draw.CircleGlyph{}
}
