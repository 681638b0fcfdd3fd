package datasheet

import (
	"image"
	"image/color"
	"image/draw"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// createDatasheetImage renders lines of text black on white, scaled up so
// Tesseract can read the bitmap font.
func createDatasheetImage(t *testing.T, lines []string, scale int) string {
	t.Helper()

	longest := 0
	for _, l := range lines {
		longest = max(longest, len(l))
	}
	width := longest*7 + 40
	height := len(lines)*20 + 20

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
	}
	for i, l := range lines {
		d.Dot = fixed.P(20, 25+i*20)
		d.DrawString(l)
	}

	scaled := imaging.Resize(img, width*scale, height*scale, imaging.NearestNeighbor)
	path := filepath.Join(t.TempDir(), "datasheet.png")
	if err := imaging.Save(scaled, path); err != nil {
		t.Fatalf("failed to save image: %v", err)
	}
	return path
}

func skipIfNoTesseract(t *testing.T, err error) {
	t.Helper()
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "tesseract") || strings.Contains(msg, "library") || strings.Contains(msg, "traineddata") {
		t.Skipf("Tesseract not available: %v", err)
	}
}

func TestRecognize_NonExistentFile(t *testing.T) {
	if _, err := Recognize("/nonexistent/path/datasheet.png", ""); err == nil {
		t.Error("Recognize should fail for non-existent file")
	}
}

func TestRecognize_RenderedDatasheet(t *testing.T) {
	path := createDatasheetImage(t, []string{"Focal length: 25 mm", "Distortion: -0.5 %"}, 4)

	rec, err := Recognize(path, DefaultLanguage)
	if err != nil {
		skipIfNoTesseract(t, err)
		t.Fatalf("Recognize failed: %v", err)
	}
	t.Logf("recognised %q", rec.Text)

	for _, l := range rec.Lines {
		if l.Confidence < 0 || l.Confidence > 1 {
			t.Errorf("line %q confidence %v out of range", l.Text, l.Confidence)
		}
	}

	// Recognition quality depends on the installed model; only check that
	// whatever was read parses without inventing keys.
	for _, m := range ParseParameters(rec.Text).Matches {
		if m.Key != "lens_focal_length_mm" && m.Key != "lens_distortion_perc" {
			t.Errorf("unexpected key %q from %q", m.Key, m.Line)
		}
	}
}
