package graphics

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	imgdraw "image/draw"
	"image/gif"
	"io"
	"sort"
	"sync"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/HamletTheHamster/plothelper/plotobj"
)

var ErrNoFrames = errors.New("graphics: no frames to animate")

type frameResult struct {
	index int
	frame *image.Paletted
	err   error
}

// Animate renders each canvas as one frame of an animated GIF written to
// w. Frames are rendered concurrently and shown for delay hundredths of a
// second each. The palette is taken from the last frame.
func Animate(w io.Writer, canvases []*plotobj.Pad, delay int) error {
	if len(canvases) == 0 {
		return ErrNoFrames
	}

	last, err := rasterize(canvases[len(canvases)-1])
	if err != nil {
		return err
	}
	pal := generatePalette(last)

	resultCh := make(chan frameResult, len(canvases))
	var wg sync.WaitGroup
	for i, c := range canvases {
		wg.Add(1)
		go convertToPaletted(i, c, pal, resultCh, &wg)
	}
	wg.Wait()
	close(resultCh)

	var results []frameResult
	for r := range resultCh {
		if r.err != nil {
			return r.err
		}
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].index < results[j].index
	})

	anim := &gif.GIF{}
	for _, r := range results {
		anim.Image = append(anim.Image, r.frame)
		anim.Delay = append(anim.Delay, delay)
	}
	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("graphics: could not encode animation: %w", err)
	}
	return nil
}

func convertToPaletted(index int, c *plotobj.Pad, pal color.Palette, resultCh chan<- frameResult, wg *sync.WaitGroup) {
	defer wg.Done()
	img, err := rasterize(c)
	if err != nil {
		resultCh <- frameResult{index: index, err: err}
		return
	}
	paletted := image.NewPaletted(img.Bounds(), pal)
	imgdraw.Draw(paletted, img.Bounds(), img, image.Point{}, imgdraw.Over)
	resultCh <- frameResult{index: index, frame: paletted}
}

func generatePalette(img image.Image) color.Palette {
	paletted := image.NewPaletted(img.Bounds(), palette.Plan9)
	imgdraw.Draw(paletted, img.Bounds(), img, image.Point{}, imgdraw.Over)
	return paletted.Palette
}

// rasterize draws c on a white image of its pixel size.
func rasterize(c *plotobj.Pad) (image.Image, error) {
	cv := vgimg.NewWith(
		vgimg.UseWH(vg.Length(c.Width)*pixel, vg.Length(c.Height)*pixel),
		vgimg.UseDPI(96),
		vgimg.UseBackgroundColor(color.White),
	)
	if err := drawPad(c, draw.New(cv)); err != nil {
		return nil, err
	}
	return cv.Image(), nil
}
