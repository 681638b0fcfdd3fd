package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/ironsheep/optics-tools-mcp/internal/optics"
	"github.com/ironsheep/optics-tools-mcp/internal/params"
)

func decodeResult(t *testing.T, r ImageResult) image.Image {
	t.Helper()
	if r.MimeType != "image/png" {
		t.Errorf("MimeType: got %q", r.MimeType)
	}
	data, err := base64.StdEncoding.DecodeString(r.ImageBase64)
	if err != nil {
		t.Fatalf("invalid base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("invalid PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != r.Width || b.Dy() != r.Height {
		t.Errorf("reported %dx%d, decoded %dx%d", r.Width, r.Height, b.Dx(), b.Dy())
	}
	return img
}

func luma(img image.Image, x, y int) uint8 {
	return color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y
}

func mapParams() params.Params {
	return params.Params{
		SensorWidthMM:     11.3,
		SensorHeightMM:    7.1,
		FocalLengthMM:     16,
		FNumber:           2.8,
		WorkingDistanceMM: 200,
	}
}

func TestRenderIlluminationMap_Cos4(t *testing.T) {
	result, err := RenderIlluminationMap(mapParams(), MapOptions{Width: 200})
	if err != nil {
		t.Fatalf("RenderIlluminationMap failed: %v", err)
	}
	if result.Width != 200 || result.Height != 126 {
		t.Errorf("size: got %dx%d, want 200x126", result.Width, result.Height)
	}
	if result.Source != optics.IlluminationFromCos4 {
		t.Errorf("Source: got %q", result.Source)
	}
	if result.CenterPercent != 100 {
		t.Errorf("CenterPercent: got %v", result.CenterPercent)
	}

	img := decodeResult(t, result.ImageResult)
	center, corner := luma(img, 100, 63), luma(img, 0, 0)
	if center <= corner {
		t.Errorf("centre (%d) should be brighter than corner (%d)", center, corner)
	}
}

func TestRenderIlluminationMap_LensData(t *testing.T) {
	p := mapParams()
	ri := 50.0
	p.LensRelativeIllumination = &ri

	result, err := RenderIlluminationMap(p, MapOptions{})
	if err != nil {
		t.Fatalf("RenderIlluminationMap failed: %v", err)
	}
	if result.Width != defaultMapWidth {
		t.Errorf("Width: got %d, want default %d", result.Width, defaultMapWidth)
	}
	if result.Source != optics.IlluminationFromLensData {
		t.Errorf("Source: got %q", result.Source)
	}
	if result.CornerPercent != 50 {
		t.Errorf("CornerPercent: got %v, want 50", result.CornerPercent)
	}
	decodeResult(t, result.ImageResult)
}

func TestRenderIlluminationMap_Labels(t *testing.T) {
	plain, err := RenderIlluminationMap(mapParams(), MapOptions{Width: 160})
	if err != nil {
		t.Fatalf("RenderIlluminationMap failed: %v", err)
	}
	labelled, err := RenderIlluminationMap(mapParams(), MapOptions{Width: 160, Labels: true})
	if err != nil {
		t.Fatalf("RenderIlluminationMap failed: %v", err)
	}
	if plain.ImageBase64 == labelled.ImageBase64 {
		t.Error("labels did not change the image")
	}
}

func TestRenderIlluminationMap_CustomColors(t *testing.T) {
	result, err := RenderIlluminationMap(mapParams(), MapOptions{Width: 64, LowColor: "#000000", HighColor: "#ffffff"})
	if err != nil {
		t.Fatalf("RenderIlluminationMap failed: %v", err)
	}
	img := decodeResult(t, result.ImageResult)
	r, g, b, _ := img.At(32, 20).RGBA()
	if spread(r>>8, g>>8, b>>8) > 1 {
		t.Errorf("black-to-white ramp produced a coloured pixel: %d,%d,%d", r>>8, g>>8, b>>8)
	}
}

func TestRenderIlluminationMap_Errors(t *testing.T) {
	noSensor := mapParams()
	noSensor.SensorHeightMM = 0

	tests := []struct {
		name string
		p    params.Params
		opts MapOptions
	}{
		{"no sensor", noSensor, MapOptions{}},
		{"too wide", mapParams(), MapOptions{Width: maxMapWidth + 1}},
		{"bad low colour", mapParams(), MapOptions{LowColor: "blue"}},
		{"bad high colour", mapParams(), MapOptions{HighColor: "#12"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := RenderIlluminationMap(tt.p, tt.opts); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func spread(vs ...uint32) uint32 {
	lo, hi := vs[0], vs[0]
	for _, v := range vs {
		lo, hi = min(lo, v), max(hi, v)
	}
	return hi - lo
}
