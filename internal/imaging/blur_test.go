package imaging

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/ironsheep/optics-tools-mcp/internal/params"
)

// createLineImage draws a one-pixel white vertical line at x on black.
func createLineImage(width, height, x int) *image.RGBA {
	img := createInMemoryImage(width, height, color.Black)
	for y := 0; y < height; y++ {
		img.Set(x, y, color.White)
	}
	return img
}

func TestMotionKernelLength(t *testing.T) {
	tests := []struct {
		px   float64
		want int
	}{
		{0, 0},
		{0.4, 0},
		{1, 1},
		{2, 3},
		{2.4, 3},
		{4.6, 5},
		{-3, 0},
		{math.NaN(), 0},
		{math.Inf(1), 0},
		{1000, maxMotionKernel},
	}
	for _, tt := range tests {
		if got := motionKernelLength(tt.px); got != tt.want {
			t.Errorf("motionKernelLength(%v): got %d, want %d", tt.px, got, tt.want)
		}
	}
}

func TestSimulateBlur_None(t *testing.T) {
	src := createLineImage(41, 21, 20)

	result, err := SimulateBlur(src, BlurOptions{})
	if err != nil {
		t.Fatalf("SimulateBlur failed: %v", err)
	}
	if result.GaussianSigmaPixels != 0 || result.MotionKernelPixels != 0 {
		t.Errorf("kernels applied without blur: %+v", result)
	}

	img := decodeResult(t, result.ImageResult)
	if luma(img, 20, 10) != 255 || luma(img, 21, 10) != 0 {
		t.Error("image changed without blur")
	}
}

func TestSimulateBlur_Motion(t *testing.T) {
	tests := []struct {
		name      string
		axis      params.Axis
		wantSmear bool
	}{
		{"across the line", params.AxisWidth, true},
		{"along the line", params.AxisHeight, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := createLineImage(41, 21, 20)
			result, err := SimulateBlur(src, BlurOptions{MotionLengthPixels: 9, MotionAxis: tt.axis})
			if err != nil {
				t.Fatalf("SimulateBlur failed: %v", err)
			}
			if result.MotionKernelPixels != 9 {
				t.Errorf("MotionKernelPixels: got %d, want 9", result.MotionKernelPixels)
			}

			img := decodeResult(t, result.ImageResult)
			smeared := luma(img, 23, 10) > 0
			if smeared != tt.wantSmear {
				t.Errorf("pixel beside the line: smeared=%v, want %v", smeared, tt.wantSmear)
			}
			if luma(img, 30, 10) != 0 {
				t.Error("smear reached beyond the kernel")
			}
			if luma(img, 20, 10) == 0 {
				t.Error("line vanished")
			}
		})
	}
}

func TestSimulateBlur_Diffraction(t *testing.T) {
	src := createLineImage(41, 21, 20)

	result, err := SimulateBlur(src, BlurOptions{AiryDiameterPixels: 5})
	if err != nil {
		t.Fatalf("SimulateBlur failed: %v", err)
	}
	if math.Abs(result.GaussianSigmaPixels-0.861) > 1e-9 {
		t.Errorf("GaussianSigmaPixels: got %v, want 0.861", result.GaussianSigmaPixels)
	}

	img := decodeResult(t, result.ImageResult)
	if luma(img, 21, 10) == 0 {
		t.Error("diffraction blur did not spread the line")
	}
	if luma(img, 20, 10) >= 255 {
		t.Error("line peak not reduced by blur")
	}
}

func TestSimulateBlur_UnboundedAirySkipped(t *testing.T) {
	result, err := SimulateBlur(createLineImage(10, 10, 5), BlurOptions{AiryDiameterPixels: math.Inf(1)})
	if err != nil {
		t.Fatalf("SimulateBlur failed: %v", err)
	}
	if result.GaussianSigmaPixels != 0 {
		t.Errorf("GaussianSigmaPixels: got %v, want 0", result.GaussianSigmaPixels)
	}
}

func TestSimulateBlur_Preview(t *testing.T) {
	src := createInMemoryImage(200, 100, color.Gray{Y: 90})

	result, err := SimulateBlur(src, BlurOptions{PreviewWidth: 50})
	if err != nil {
		t.Fatalf("SimulateBlur failed: %v", err)
	}
	if result.Width != 50 || result.Height != 25 {
		t.Errorf("preview size: got %dx%d, want 50x25", result.Width, result.Height)
	}

	if _, err := SimulateBlur(src, BlurOptions{PreviewWidth: maxPreviewWidth + 1}); err == nil {
		t.Error("expected error for oversized preview")
	}
}
