// Package chart renders bar series to raster images with go-chart.
package chart

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"formchart/internal/logger"
	"formchart/internal/models"
)

const (
	captionPad  = 18
	minBarWidth = 2
	barSpacing  = 4
)

var (
	textColor       = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	backgroundColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Renderer is a ChartSurface that turns each plotted series into one image.
type Renderer struct {
	mu      sync.Mutex
	width   int
	height  int
	pending []models.BarSeries
	images  []image.Image
	onDraw  []func([]image.Image)
	logger  logger.Logger
}

// NewRenderer creates a renderer producing width x height images per series.
func NewRenderer(width, height int, log logger.Logger) *Renderer {
	if log == nil {
		log = logger.NewNop()
	}
	return &Renderer{width: width, height: height, logger: log}
}

// OnDraw registers a callback receiving the images of every Draw.
func (r *Renderer) OnDraw(fn func([]image.Image)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onDraw = append(r.onDraw, fn)
}

// Clear drops all series plotted since the last Draw and the last images.
func (r *Renderer) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending = nil
	r.images = nil
}

// Plot queues one series for the next Draw.
func (r *Renderer) Plot(series models.BarSeries) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending = append(r.pending, series)
}

// Draw renders every queued series and publishes the images.
func (r *Renderer) Draw() error {
	r.mu.Lock()
	if r.width <= 0 || r.height <= 0 {
		r.mu.Unlock()
		return fmt.Errorf("invalid chart size %dx%d", r.width, r.height)
	}
	images := make([]image.Image, 0, len(r.pending))
	for _, s := range r.pending {
		images = append(images, r.render(s))
	}
	r.images = images
	callbacks := append([]func([]image.Image){}, r.onDraw...)
	r.mu.Unlock()

	for _, fn := range callbacks {
		fn(images)
	}
	return nil
}

// Images returns the images produced by the last Draw.
func (r *Renderer) Images() []image.Image {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]image.Image(nil), r.images...)
}

// Titles returns the titles of the series drawn last, aligned with Images.
func (r *Renderer) Titles() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	titles := make([]string, 0, len(r.pending))
	for _, s := range r.pending {
		titles = append(titles, s.Title)
	}
	return titles
}

// WritePNG writes the last drawn images into dir, one file per series named
// after its title ("Age Chart" -> age_chart.png). It returns the written paths.
func (r *Renderer) WritePNG(dir string) ([]string, error) {
	images := r.Images()
	titles := r.Titles()
	if len(images) == 0 {
		return nil, fmt.Errorf("no chart drawn")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	paths := make([]string, 0, len(images))
	for i, img := range images {
		path := filepath.Join(dir, FileName(titles[i]))
		if err := writePNGFile(path, img); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// FileName derives the PNG file name for a chart title.
func FileName(title string) string {
	slug := strings.ToLower(strings.Join(strings.Fields(title), "_"))
	if slug == "" {
		slug = "chart"
	}
	return slug + ".png"
}

func writePNGFile(path string, img image.Image) (retErr error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if err := f.Close(); err != nil && retErr == nil {
			retErr = fmt.Errorf("close %s: %w", path, err)
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// render must be called with r.mu held.
func (r *Renderer) render(s models.BarSeries) image.Image {
	if len(s.Values) == 0 {
		return r.placeholder(s, "No data")
	}

	bc := gochart.BarChart{
		Title:      s.Title,
		Width:      r.width,
		Height:     r.height,
		BarWidth:   r.barWidth(len(s.Values)),
		BarSpacing: barSpacing,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 10, Right: 10, Bottom: captionPad}},
		YAxis: gochart.YAxis{
			Name:  s.YLabel,
			Range: valueRange(s.Values),
		},
		Bars: bars(s),
	}

	var buf bytes.Buffer
	if err := bc.Render(gochart.PNG, &buf); err != nil {
		r.logger.Warning("ChartRenderer", "bar chart render failed, showing blank panel", map[string]interface{}{
			"title": s.Title,
			"bars":  len(s.Values),
			"error": err.Error(),
		})
		return r.placeholder(s, "Chart unavailable")
	}
	img, err := png.Decode(&buf)
	if err != nil {
		r.logger.Warning("ChartRenderer", "bar chart decode failed, showing blank panel", map[string]interface{}{
			"title": s.Title,
			"error": err.Error(),
		})
		return r.placeholder(s, "Chart unavailable")
	}
	return drawCaptions(img, s)
}

func (r *Renderer) barWidth(n int) int {
	usable := r.width - 80
	w := usable/n - barSpacing
	if w < minBarWidth {
		return minBarWidth
	}
	if w > 50 {
		return 50
	}
	return w
}

func bars(s models.BarSeries) []gochart.Value {
	fill := drawing.Color{R: s.Color.R, G: s.Color.G, B: s.Color.B, A: s.Color.A}
	out := make([]gochart.Value, len(s.Values))
	for i, v := range s.Values {
		out[i] = gochart.Value{
			Label: strconv.Itoa(i),
			Value: v,
			Style: gochart.Style{FillColor: fill, StrokeColor: fill, StrokeWidth: 1},
		}
	}
	return out
}

// valueRange always includes zero and never collapses to an empty range.
func valueRange(values []float64) *gochart.ContinuousRange {
	lo, hi := 0.0, 0.0
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi == lo {
		hi = lo + 1
	}
	return &gochart.ContinuousRange{Min: lo, Max: hi * 1.1}
}

func (r *Renderer) placeholder(s models.BarSeries, message string) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	draw.Draw(img, img.Bounds(), image.NewUniform(backgroundColor), image.Point{}, draw.Src)

	drawCentered(img, s.Title, 24)
	drawCentered(img, message, r.height/2)
	return drawCaptions(img, s)
}

// drawCaptions overlays the axis titles: x below the plot, y in the top-left corner.
func drawCaptions(img image.Image, s models.BarSeries) image.Image {
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)

	if s.XLabel != "" {
		drawCentered(rgba, s.XLabel, b.Max.Y-5)
	}
	if s.YLabel != "" {
		drawText(rgba, b.Min.X+8, b.Min.Y+basicfont.Face7x13.Metrics().Ascent.Ceil()+4, s.YLabel)
	}
	return rgba
}

func drawCentered(img *image.RGBA, text string, y int) {
	dr := &font.Drawer{Face: basicfont.Face7x13}
	w := dr.MeasureString(text).Ceil()
	b := img.Bounds()
	drawText(img, b.Min.X+(b.Dx()-w)/2, y, text)
}

func drawText(img *image.RGBA, x, y int, text string) {
	dr := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(textColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	dr.DrawString(text)
}
