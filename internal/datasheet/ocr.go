package datasheet

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// DefaultLanguage is the Tesseract language used when none is given.
const DefaultLanguage = "eng"

// Line is one recognised text line with its OCR confidence (0 to 1).
type Line struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

// Recognition is the raw OCR output for a datasheet image.
type Recognition struct {
	Text  string `json:"text"`
	Lines []Line `json:"lines"`
}

// Recognize runs OCR over the image at path.
//
// Line-level confidences are best effort: if Tesseract cannot report line
// boxes the text is still returned with Lines empty.
func Recognize(path, language string) (*Recognition, error) {
	if language == "" {
		language = DefaultLanguage
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(language); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetImage(path); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err != nil {
		return &Recognition{Text: text, Lines: []Line{}}, nil
	}

	lines := make([]Line, 0, len(boxes))
	for _, box := range boxes {
		word := strings.TrimSpace(box.Word)
		if word == "" {
			continue
		}
		lines = append(lines, Line{Text: word, Confidence: box.Confidence / 100})
	}
	return &Recognition{Text: text, Lines: lines}, nil
}
