package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ironsheep/optics-tools-mcp/internal/optics"
	"github.com/ironsheep/optics-tools-mcp/internal/params"
)

const (
	defaultMapWidth     = 320
	maxMapWidth         = 2048
	mapSamplesPerAxis   = 64
	defaultLowColorHex  = "#1d2b64"
	defaultHighColorHex = "#f8e16c"
)

// MapOptions controls RenderIlluminationMap. Zero values select the
// defaults.
type MapOptions struct {
	Width     int
	LowColor  string // hex colour for a ratio of 0
	HighColor string // hex colour for a ratio of 1
	Labels    bool
}

// ImageResult carries a rendered PNG.
type ImageResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// IlluminationMapResult is a rendered falloff map plus the figures it shows.
type IlluminationMapResult struct {
	ImageResult
	CenterPercent optics.Number `json:"center_percent"`
	CornerPercent optics.Number `json:"corner_percent"`
	Source        string        `json:"source"`
}

// RenderIlluminationMap draws the relative illumination predicted for p
// across the sensor, with the same source selection as the calculation:
// lens data when supplied, the cos⁴ law otherwise.
//
// Lens data gives only the corner figure, so the map interpolates it
// quadratically in image height from the centre.
func RenderIlluminationMap(p params.Params, opts MapOptions) (*IlluminationMapResult, error) {
	if p.SensorWidthMM <= 0 || p.SensorHeightMM <= 0 {
		return nil, fmt.Errorf("sensor_width_mm and sensor_height_mm must be positive")
	}
	width := opts.Width
	if width <= 0 {
		width = defaultMapWidth
	}
	if width > maxMapWidth {
		return nil, fmt.Errorf("width %d exceeds maximum %d", width, maxMapWidth)
	}
	height := max(1, int(math.Round(float64(width)*p.SensorHeightMM/p.SensorWidthMM)))

	low, err := colorOrDefault(opts.LowColor, defaultLowColorHex)
	if err != nil {
		return nil, err
	}
	high, err := colorOrDefault(opts.HighColor, defaultHighColorHex)
	if err != nil {
		return nil, err
	}

	sensor := optics.SensorModel(p)
	lens := optics.LensGeometry(p)
	illum := optics.Illumination(p, sensor, lens)
	falloff := falloffFunc(illum, float64(lens.ImageDistanceMM))

	// Sample coarsely in sensor coordinates, then let the resampler
	// smooth the ramp up to the requested size.
	cols := mapSamplesPerAxis
	rows := max(1, int(math.Round(float64(cols)*p.SensorHeightMM/p.SensorWidthMM)))
	halfDiag := 0.5 * math.Hypot(p.SensorWidthMM, p.SensorHeightMM)
	coarse := image.NewNRGBA(image.Rect(0, 0, cols, rows))
	for j := 0; j < rows; j++ {
		y := (float64(j)+0.5)/float64(rows)*p.SensorHeightMM - p.SensorHeightMM/2
		for i := 0; i < cols; i++ {
			x := (float64(i)+0.5)/float64(cols)*p.SensorWidthMM - p.SensorWidthMM/2
			v := falloff(math.Hypot(x, y), halfDiag)
			r, g, b := low.BlendLab(high, v).Clamped().RGB255()
			coarse.SetNRGBA(i, j, color.NRGBA{R: r, G: g, B: b, A: 255})
		}
	}

	resized := imaging.Resize(coarse, width, height, imaging.Linear)
	canvas := image.NewRGBA(resized.Bounds())
	draw.Draw(canvas, canvas.Bounds(), resized, image.Point{}, draw.Src)

	if opts.Labels {
		drawLabel(canvas, width/2, height/2, fmt.Sprintf("%.0f%%", float64(illum.CenterPercent)))
		drawLabel(canvas, 4, 4, fmt.Sprintf("%.0f%%", float64(illum.CornerPercent)))
	}

	img, err := encodePNG(canvas)
	if err != nil {
		return nil, err
	}
	return &IlluminationMapResult{
		ImageResult:   *img,
		CenterPercent: illum.CenterPercent,
		CornerPercent: illum.CornerPercent,
		Source:        illum.Source,
	}, nil
}

// falloffFunc returns the relative illumination at image height r for a
// sensor whose corner sits at halfDiag.
func falloffFunc(illum optics.IlluminationSection, imageDistance float64) func(r, halfDiag float64) float64 {
	if illum.Source == optics.IlluminationFromLensData {
		corner := float64(illum.CornerToCenterRatio)
		return func(r, halfDiag float64) float64 {
			t := r / halfDiag
			return optics.NormalizeRatio(1 - (1-corner)*t*t)
		}
	}
	return func(r, _ float64) float64 {
		return optics.Cos4Falloff(r, imageDistance)
	}
}

func colorOrDefault(hex, def string) (colorful.Color, error) {
	if hex == "" {
		hex = def
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid colour %q: %w", hex, err)
	}
	return c, nil
}

// drawLabel writes text with its top-left corner near (x, y) on a dark
// backing box so it stays legible on either end of the ramp.
func drawLabel(img *image.RGBA, x, y int, text string) {
	face := basicfont.Face7x13
	w := font.MeasureString(face, text).Ceil()
	box := image.Rect(x-2, y-1, x+w+2, y+face.Height+1).Intersect(img.Bounds())
	draw.Draw(img, box, image.NewUniform(color.RGBA{0, 0, 0, 180}), image.Point{}, draw.Over)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: face,
		Dot:  fixed.P(x, y+face.Ascent),
	}
	d.DrawString(text)
}

func encodePNG(img image.Image) (*ImageResult, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	b := img.Bounds()
	return &ImageResult{
		Width:       b.Dx(),
		Height:      b.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
