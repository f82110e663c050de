package main

import (
	"bufio"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Arafatk/glot"

	"github.com/HamletTheHamster/plothelper/analysis"
	"github.com/HamletTheHamster/plothelper/container"
	"github.com/HamletTheHamster/plothelper/graphics"
	"github.com/HamletTheHamster/plothelper/plotobj"
	"github.com/HamletTheHamster/plothelper/saver"
)

func main() {

	out, recreate, size, note, merge, scale, findx, y, fit, preview, verbose := flags()

	if out == "" {
		out = logpath(note)
	}

	style := graphics.NewStyle(size)

	ds, err := saver.Open(out, recreate)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if verbose {
		ds.Logger = log.New(os.Stdout, "plothelper: ", 0)
	}

	logFile := logHeader(out, size, note)

	switch {
	case merge != "":
		logFile = mergeSeries(ds, style, logFile, merge, scale, preview)
	case findx != "":
		logFile = invertCurve(ds, style, logFile, findx, y, preview)
	case fit != "":
		logFile = fitPeak(ds, style, logFile, fit, preview)
	default:
		logFile = graphicsTestSet(ds, logFile)
	}

	if err := ds.Close(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	writeLog(out, logFile)
}

//----------------------------------------------------------------------------//

func flags() (
	string, bool, graphics.Size, string, string, float64, string, float64, string,
	bool, bool,
) {

	var out, sizeName, note, merge, findx, fit string
	var recreate, preview, verbose bool
	var scale, y float64

	flag.StringVar(&out, "out", "", "output directory (default plots/<date>/<time>: <note>)")
	flag.BoolVar(&recreate, "recreate", false, "discard the previous content of data.root")
	flag.StringVar(&sizeName, "size", "8pt", "text size calibration: 8pt or 10pt")
	flag.StringVar(&note, "note", "", "note to append folder name")
	flag.StringVar(&merge, "merge", "", "two comma separated CSV series to merge")
	flag.Float64Var(&scale, "scale", 1, "factor applied to the first merged series")
	flag.StringVar(&findx, "findx", "", "CSV curve to invert")
	flag.Float64Var(&y, "y", 0, "y value to invert with -findx")
	flag.StringVar(&fit, "fit", "", "CSV spectrum to fit with a Lorentzian")
	flag.BoolVar(&preview, "preview", false, "quick look of the input with gnuplot")
	flag.BoolVar(&verbose, "v", false, "print each saved object")
	flag.Parse()

	size, ok := graphics.SizeByName(sizeName)
	if !ok {
		fmt.Println("flag.Parse(): unknown size " + sizeName + ", use 8pt or 10pt")
		os.Exit(1)
	}

	n := 0
	for _, mode := range []string{merge, findx, fit} {
		if mode != "" {
			n++
		}
	}
	if n > 1 {
		fmt.Println("flag.Parse(): -merge, -findx and -fit are exclusive")
		os.Exit(1)
	}

	if merge != "" && len(strings.Split(merge, ",")) != 2 {
		fmt.Println("Specify two series with -merge=a.csv,b.csv")
		os.Exit(1)
	}

	return out, recreate, size, note, merge, scale, findx, y, fit, preview, verbose
}

func logpath(
	note string,
) (
	string,
) {
	now := time.Now()
	return "plots/" + now.Format("2006-Jan-02") + "/" + now.Format("15:04:05") + ": " + note
}

func logHeader(
	out string,
	size graphics.Size,
	note string,
) (
	[]string,
) {

	logFile := []string{}
	logFile = append(logFile, "Output: " + out + "\n")
	if note != "" {
		logFile = append(logFile, "Runtime note: " + note + "\n")
	}
	if size == graphics.Size10pt {
		logFile = append(logFile, "Figures formatted for 10pt text\n")
	} else {
		logFile = append(logFile, "Figures formatted for 8pt text\n")
	}

	fmt.Print(logFile[0])
	return logFile
}

//----------------------------------------------------------------------------//

// graphicsTestSet draws a sine wave on single pad canvases for both text
// size calibrations, making room for a label at the end of the x axis.
func graphicsTestSet(
	ds *saver.DataSaver,
	logFile []string,
) (
	[]string,
) {

	for _, t := range []struct {
		name string
		size graphics.Size
	}{
		{"SinglePad_8pt_LabelAtXend", graphics.Size8pt},
		{"SinglePad_10pt_LabelAtXend", graphics.Size10pt},
	} {
		style := graphics.NewStyle(t.size)
		name := "c_" + t.name
		c := style.NewCanvas(name, name, 1, 1)

		fWave := plotobj.NewFunction("f_wave", func(x float64) float64 {
			return math.Sin(2 * math.Pi * 4 * x)
		}, 0, 1)
		fWave.Style.LineColor = graphics.ColorInRing(0)
		c.Draw(fWave)
		style.SetAxes(c, fWave)
		fWave.Axes.X.Title = "xyzABC (arb. units)"
		fWave.Axes.Y.Title = "yzxBCA (arb. units)"
		right := style.IncreaseRightMargin(c, 1)

		if err := ds.WriteCanvas(c, ""); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		logFile = append(logFile, fmt.Sprintf("%s: right margin %.3f\n", name, right))
	}

	// Travelling wave, one frame per canvas
	style := graphics.NewStyle(graphics.Size8pt)
	objs := []plotobj.Object{}
	for i := 0; i < 8; i++ {
		phase := float64(i) / 8
		f := plotobj.NewFunction(fmt.Sprintf("f_wave_%d", i), func(x float64) float64 {
			return math.Sin(2 * math.Pi * (4*x - phase))
		}, 0, 1)
		f.Style.LineColor = graphics.ColorInRing(0)
		objs = append(objs, f)
	}
	frames := style.DrawWithAutoRecreatorOfCanvas("c_wave", 1, 1, objs)
	if err := ds.WriteAnimation("wave", frames, 5, ""); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	logFile = append(logFile, fmt.Sprintf("wave.gif: %d frames\n", len(frames)))

	return logFile
}

func mergeSeries(
	ds *saver.DataSaver,
	style *graphics.Style,
	logFile []string,
	merge string,
	scale float64,
	preview bool,
) (
	[]string,
) {

	files := strings.Split(merge, ",")
	g0 := getSeries(files[0])
	g1 := getSeries(files[1])

	merged, err := analysis.MergeScaled(scale, g0, g1)
	if errors.Is(err, analysis.ErrLengthMismatch) {
		fmt.Printf("%s and %s do not have the same number of points\n", files[0], files[1])
		os.Exit(1)
	} else if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	mo, err := container.New(
		container.MultiGraphType, "mg_merge",
		[]plotobj.Object{g0, g1, merged},
	)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	mg := mo.Object().(*plotobj.MultiGraph)
	graphics.SetGraphColorsByRing(mg)
	graphics.SetGraphMarkerStylesByRing(mg)

	c := style.NewCanvas("c_merge", "c_merge", 1, 1)
	mo.Draw(c, style)
	if _, err := style.PutLegend(c, graphics.TopRight, 0.3, 0.2, ""); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if err := ds.WriteCanvas(c, "merge"); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if preview {
		previewSeries("Merged", ds.BaseDir, merged)
	}

	logFile = append(logFile, fmt.Sprintf("\nMerged %s + %.4g × %s (%d points)\n", files[1], scale, files[0], merged.Len()))
	return logFile
}

func invertCurve(
	ds *saver.DataSaver,
	style *graphics.Style,
	logFile []string,
	file string,
	y float64,
	preview bool,
) (
	[]string,
) {

	g := getSeries(file)

	x, err := analysis.FindX(g, y, 0, 0)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	c := style.NewCanvas("c_findx", "c_findx", 1, 1)
	c.Draw(g)
	style.SetAxes(c, g)
	graphics.DrawHorizontalLine(c, y)
	graphics.DrawVerticalLine(c, x)
	if err := ds.WriteCanvas(c, "findx"); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if preview {
		previewSeries("Curve", ds.BaseDir, g)
	}

	fmt.Printf("x(%g) = %g\n", y, x)
	logFile = append(logFile, fmt.Sprintf("\nInverted %s: x(%g) = %g\n", file, y, x))
	return logFile
}

func fitPeak(
	ds *saver.DataSaver,
	style *graphics.Style,
	logFile []string,
	file string,
	preview bool,
) (
	[]string,
) {

	g := getSeries(file)
	xs, ys := g.Xs(), g.Ys()
	xmin, xmax, _, _ := g.DataRange()

	// Initial guesses from the highest point and the baseline at the edges
	imax := 0
	for i := range ys {
		if ys[i] > ys[imax] {
			imax = i
		}
	}
	base := math.Min(ys[0], ys[len(ys)-1])
	init := analysis.LorentzianFit{
		A:     ys[imax] - base,
		X0:    xs[imax],
		Gamma: (xmax - xmin) / 10,
		C:     base,
	}

	res, err := analysis.FitLorentzian(g, init)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	fn := plotobj.NewFunction("f_fit", res.Eval, xmin, xmax)
	fn.NPoints = 500
	fn.Axes.Title = "Lorentzian fit"
	fn.Style.LineColor = graphics.ColorInRing(1)

	c := style.NewCanvas("c_fit", "c_fit", 1, 1)
	c.Draw(g)
	c.Draw(fn)
	style.SetAxes(c, g)
	if _, err := style.PutLegend(c, graphics.TopLeft, 0.3, 0.2, ""); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if err := ds.WriteCanvas(c, "fit"); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	// Keep the sampled fit next to the data
	curve := res.Curve("fit", xmin, (xmax - xmin) / 500, 501)
	curve.Axes = g.Axes
	if err := ds.SaveObject(curve, "fit"); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if preview {
		previewSeries("Spectrum", ds.BaseDir, g)
	}

	str := fmt.Sprintf(
		"\nLorentzian fit of %s\n\tAmplitude: %.4g\n\tCenter: %.4g\n\tWidth: %.4g\n\tOffset: %.4g\n",
		file, res.A, res.X0, res.Gamma, res.C,
	)
	fmt.Print(str)
	logFile = append(logFile, str)
	return logFile
}

//----------------------------------------------------------------------------//

// getSeries reads a CSV with a header row and x, y and optional ex, ey
// columns.
func getSeries(
	file string,
) (
	*plotobj.Graph,
) {

	f, err := os.Open(file)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer f.Close()

	header, rows, err := readCSV(f)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if len(rows) == 0 {
		fmt.Println(file + " holds no data rows")
		os.Exit(1)
	}

	name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	g := plotobj.NewGraph(name, len(rows))
	g.Axes.Title = name
	if len(header) > 1 {
		g.Axes.X.Title, g.Axes.Y.Title = header[0], header[1]
	}

	for i, row := range rows {
		vals := make([]float64, 4)
		for j := 0; j < len(row) && j < 4; j++ {
			if vals[j], err = strconv.ParseFloat(strings.TrimSpace(row[j]), 64); err != nil {
				fmt.Printf("%s row %d: %v\n", file, i+2, err)
				os.Exit(1)
			}
		}
		g.SetPoint(i, vals[0], vals[1])
		g.SetPointError(i, vals[2], vals[3])
	}

	return g
}

func readCSV(
	rs io.ReadSeeker,
) (
	[]string, [][]string, error,
) {
	// Read first row (line) as header
	row1, err := bufio.NewReader(rs).ReadSlice('\n')
	if err != nil {
		return nil, nil, err
	}
	header, err := csv.NewReader(strings.NewReader(string(row1))).Read()
	if err != nil {
		return nil, nil, err
	}
	_, err = rs.Seek(int64(len(row1)), io.SeekStart)
	if err != nil {
		return nil, nil, err
	}

	// Read remaining rows
	r := csv.NewReader(rs)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	return header, rows, nil
}

// previewSeries saves a gnuplot quick look next to the outputs. A missing
// gnuplot is reported and ignored.
func previewSeries(
	title, dir string,
	g *plotobj.Graph,
) {

	dimensions := 2
	persist := false
	debug := false
	plot, err := glot.NewPlot(dimensions, persist, debug)
	if err != nil {
		fmt.Println("preview:", err)
		return
	}
	defer plot.Close()

	points := [][]float64{g.Xs(), g.Ys()}
	plot.AddPointGroup(g.Name(), "points", points)
	plot.SetTitle(title)
	plot.SetXLabel(g.XTitle())
	plot.SetYLabel(g.YTitle())
	if err := plot.SavePlot(filepath.Join(dir, "preview.png")); err != nil {
		fmt.Println("preview:", err)
	}
}

func writeLog(
	logpath string,
	logFile []string,
) {

	// Make output folder if it doesn't already exist
	if err := os.MkdirAll(logpath, 0755); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	txt, err := os.Create(logpath + "/log.txt")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer txt.Close()

	w := bufio.NewWriter(txt)
	defer w.Flush()
	for _, line := range logFile {
		if _, err := w.WriteString(line); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	}
}
