package imaging

import (
	"fmt"
	"image"
	"math"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/convolution"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/optics-tools-mcp/internal/params"
)

const (
	// airySigmaFactor relates the standard deviation of the Gaussian that
	// best fits an Airy pattern to the Airy disk diameter (0.42λN / 2.44λN).
	airySigmaFactor = 0.42 / 2.44

	maxMotionKernel = 255
	maxPreviewWidth = 1024
)

// BlurOptions describes the blur a setup is predicted to add to a capture.
type BlurOptions struct {
	// AiryDiameterPixels is the Airy disk diameter on the sensor in pixels.
	// Non-positive or non-finite values skip the diffraction blur.
	AiryDiameterPixels float64

	// MotionLengthPixels is how far the object moves during one exposure.
	MotionLengthPixels float64
	MotionAxis         params.Axis

	// PreviewWidth downsizes the result when positive.
	PreviewWidth int
}

// BlurResult is the blurred capture plus the kernels that were applied.
type BlurResult struct {
	ImageResult
	GaussianSigmaPixels float64 `json:"gaussian_sigma_pixels"`
	MotionKernelPixels  int     `json:"motion_kernel_pixels"`
}

// SimulateBlur applies the predicted diffraction spot and motion smear to
// img. The input image is not modified.
func SimulateBlur(img image.Image, opts BlurOptions) (*BlurResult, error) {
	if opts.PreviewWidth > maxPreviewWidth {
		return nil, fmt.Errorf("preview width %d exceeds maximum %d", opts.PreviewWidth, maxPreviewWidth)
	}

	out := img
	sigma := 0.0
	if usable(opts.AiryDiameterPixels) {
		sigma = opts.AiryDiameterPixels * airySigmaFactor
		out = blur.Gaussian(out, sigma)
	}

	kernel := motionKernelLength(opts.MotionLengthPixels)
	if kernel > 1 {
		out = convolution.Convolve(out, motionKernel(kernel, opts.MotionAxis), &convolution.Options{KeepAlpha: true})
	}

	if opts.PreviewWidth > 0 && opts.PreviewWidth < out.Bounds().Dx() {
		out = imaging.Resize(out, opts.PreviewWidth, 0, imaging.Lanczos)
	}

	encoded, err := encodePNG(out)
	if err != nil {
		return nil, err
	}
	return &BlurResult{
		ImageResult:         *encoded,
		GaussianSigmaPixels: round(sigma, 1000),
		MotionKernelPixels:  kernel,
	}, nil
}

// motionKernelLength rounds a smear length to the odd kernel size that
// covers it. Lengths below one pixel need no kernel.
func motionKernelLength(px float64) int {
	if !usable(px) || px < 1 {
		return 0
	}
	n := int(math.Round(px))
	if n%2 == 0 {
		n++
	}
	return min(n, maxMotionKernel)
}

// motionKernel is a normalised box of n taps along axis.
func motionKernel(n int, axis params.Axis) convolution.Matrix {
	k := convolution.NewKernel(n, 1)
	for i := range k.Matrix {
		k.Matrix[i] = 1 / float64(n)
	}
	if axis == params.AxisHeight {
		return k.Transposed()
	}
	return k
}
