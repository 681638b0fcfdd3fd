package imaging

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/ironsheep/optics-tools-mcp/internal/optics"
)

const (
	defaultPatchFraction = 0.1
	defaultFitGrid       = 9
	minPatchPixels       = 2
)

// FlatFieldOptions tunes AnalyzeFlatField. Zero values select the defaults.
type FlatFieldOptions struct {
	// PatchFraction is the side of each sample patch as a fraction of the
	// shorter image side.
	PatchFraction float64

	// FitGrid is the number of cells per axis sampled for the radial fit.
	FitGrid int
}

// PatchStats holds the luminance statistics of one sample patch (0-255).
type PatchStats struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
}

// CornerStats holds the four corner patches.
type CornerStats struct {
	TopLeft     PatchStats `json:"top_left"`
	TopRight    PatchStats `json:"top_right"`
	BottomLeft  PatchStats `json:"bottom_left"`
	BottomRight PatchStats `json:"bottom_right"`
}

func (c CornerStats) means() []float64 {
	return []float64{c.TopLeft.Mean, c.TopRight.Mean, c.BottomLeft.Mean, c.BottomRight.Mean}
}

// FlatFieldResult reports the measured illumination falloff of a capture.
type FlatFieldResult struct {
	Width           int         `json:"width"`
	Height          int         `json:"height"`
	PatchSizePixels int         `json:"patch_size_pixels"`
	Center          PatchStats  `json:"center"`
	Corners         CornerStats `json:"corners"`
	CornerMean      float64     `json:"corner_mean"`

	// CornerToCenterRatio is the measured ratio of the corner patches to
	// the centre patch.
	CornerToCenterRatio float64 `json:"corner_to_center_ratio"`

	// CornerSpreadPercent is the spread between the brightest and darkest
	// corner relative to their mean. A large spread points at tilt or
	// decentre rather than symmetric falloff.
	CornerSpreadPercent float64 `json:"corner_spread_percent"`

	// FitCoefficients are a, b, c of I(ρ) = a + bρ² + cρ⁴, with ρ = 1 at
	// the image corner.
	FitCoefficients           [3]float64    `json:"fit_coefficients"`
	FittedCornerToCenterRatio optics.Number `json:"fitted_corner_to_center_ratio"`

	// LensRelativeIllumination is the measured ratio clamped to [0, 1],
	// ready to be passed back as the lens_relative_illumination input.
	LensRelativeIllumination float64 `json:"lens_relative_illumination"`
	PotentialVignetting      bool    `json:"potential_vignetting"`
}

// AnalyzeFlatField measures how brightness falls off from the centre to the
// corners of a capture of a uniformly lit target.
func AnalyzeFlatField(img image.Image, opts FlatFieldOptions) (*FlatFieldResult, error) {
	if opts.PatchFraction <= 0 || opts.PatchFraction > 0.5 {
		opts.PatchFraction = defaultPatchFraction
	}
	if opts.FitGrid < 2 {
		opts.FitGrid = defaultFitGrid
	}

	gray := imaging.Grayscale(img)
	w, h := gray.Bounds().Dx(), gray.Bounds().Dy()
	if w < minPatchPixels || h < minPatchPixels {
		return nil, fmt.Errorf("image %dx%d too small for flat-field analysis", w, h)
	}

	size := int(math.Round(opts.PatchFraction * float64(min(w, h))))
	size = max(size, minPatchPixels)

	cx, cy := (w-size)/2, (h-size)/2
	center := patchStats(gray, image.Rect(cx, cy, cx+size, cy+size))
	if center.Mean == 0 {
		return nil, fmt.Errorf("centre patch is black")
	}

	corners := CornerStats{
		TopLeft:     patchStats(gray, image.Rect(0, 0, size, size)),
		TopRight:    patchStats(gray, image.Rect(w-size, 0, w, size)),
		BottomLeft:  patchStats(gray, image.Rect(0, h-size, size, h)),
		BottomRight: patchStats(gray, image.Rect(w-size, h-size, w, h)),
	}
	means := corners.means()
	cornerMean := stat.Mean(means, nil)
	spread := 0.0
	if cornerMean > 0 {
		spread = (floats.Max(means) - floats.Min(means)) / cornerMean * 100
	}

	ratio := cornerMean / center.Mean

	// A grid too coarse to separate the radial terms leaves the fit
	// undetermined; the patch measurement still stands.
	fitted := optics.Number(math.NaN())
	coeffs, err := fitRadialFalloff(gray, min(opts.FitGrid, w, h))
	if err == nil && coeffs[0] > 0 {
		fitted = optics.Number((coeffs[0] + coeffs[1] + coeffs[2]) / coeffs[0])
	}

	return &FlatFieldResult{
		Width:                     w,
		Height:                    h,
		PatchSizePixels:           size,
		Center:                    center,
		Corners:                   corners,
		CornerMean:                round(cornerMean, 100),
		CornerToCenterRatio:       round(ratio, 1e4),
		CornerSpreadPercent:       round(spread, 100),
		FitCoefficients:           coeffs,
		FittedCornerToCenterRatio: fitted,
		LensRelativeIllumination:  round(math.Max(0, math.Min(1, ratio)), 1e4),
		PotentialVignetting:       ratio < optics.VignettingThreshold,
	}, nil
}

// fitRadialFalloff least-squares fits I(ρ) = a + bρ² + cρ⁴ to the mean
// luminance of an n×n grid of cells.
func fitRadialFalloff(gray *image.NRGBA, n int) ([3]float64, error) {
	b := gray.Bounds()
	w, h := b.Dx(), b.Dy()
	halfW, halfH := float64(w)/2, float64(h)/2
	norm := halfW*halfW + halfH*halfH

	cells := n * n
	A := mat.NewDense(cells, 3, nil)
	B := mat.NewVecDense(cells, nil)
	radii := make(map[float64]bool)

	for j := 0; j < n; j++ {
		y0, y1 := j*h/n, (j+1)*h/n
		for i := 0; i < n; i++ {
			x0, x1 := i*w/n, (i+1)*w/n
			cell := image.Rect(x0, y0, x1, y1).Add(b.Min)

			dx := float64(x0+x1)/2 - halfW
			dy := float64(y0+y1)/2 - halfH
			rho2 := (dx*dx + dy*dy) / norm
			radii[rho2] = true

			row := j*n + i
			A.Set(row, 0, 1)
			A.Set(row, 1, rho2)
			A.Set(row, 2, rho2*rho2)
			B.SetVec(row, stat.Mean(luminance(imaging.Crop(gray, cell)), nil))
		}
	}

	if len(radii) < 3 {
		return [3]float64{}, fmt.Errorf("%dx%d grid has only %d distinct radii", n, n, len(radii))
	}

	var qr mat.QR
	qr.Factorize(A)

	var coeffs mat.VecDense
	if err := qr.SolveVecTo(&coeffs, false, B); err != nil {
		return [3]float64{}, err
	}
	return [3]float64{coeffs.AtVec(0), coeffs.AtVec(1), coeffs.AtVec(2)}, nil
}

func patchStats(gray *image.NRGBA, r image.Rectangle) PatchStats {
	values := luminance(imaging.Crop(gray, r.Add(gray.Bounds().Min)))
	return PatchStats{
		Mean:   round(stat.Mean(values, nil), 100),
		StdDev: round(stat.StdDev(values, nil), 100),
	}
}

// luminance returns the red channel of a greyscale image, one value per
// pixel.
func luminance(gray *image.NRGBA) []float64 {
	b := gray.Bounds()
	values := make([]float64, 0, b.Dx()*b.Dy())
	for y := 0; y < b.Dy(); y++ {
		row := gray.Pix[y*gray.Stride:]
		for x := 0; x < b.Dx(); x++ {
			values = append(values, float64(row[x*4]))
		}
	}
	return values
}
