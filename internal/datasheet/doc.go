// Package datasheet turns camera and lens datasheets into calculator input.
//
// Recognize runs Tesseract (via gosseract) over a scanned or screenshotted
// datasheet. ParseParameters then scans the recognised text line by line for
// the figures the calculator needs (sensor size, pixel pitch, focal length,
// f-number, image circle, distortion, relative illumination, frame rate and
// so on) and returns them under the calculator's input keys.
//
// ParseParameters is independent of OCR and works on any datasheet text,
// including text copied out of a PDF.
//
// # Prerequisites
//
// Recognize needs the Tesseract library and the language data for the
// requested language:
//   - Ubuntu/Debian: apt-get install libtesseract-dev tesseract-ocr-eng
//   - macOS: brew install tesseract
package datasheet
