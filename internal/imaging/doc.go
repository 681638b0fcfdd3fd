// Package imaging holds the image-side tooling that goes with the optics
// calculator: checking a real capture against the numbers it predicts, and
// rendering what it predicts.
//
// # Operations
//
//   - MeasureDistance: distance between two pixels, converted to object-space
//     millimetres with the mm-per-pixel figures of a calculation.
//   - AnalyzeFlatField: centre and corner brightness of a flat-field capture,
//     plus a radial falloff fit, giving a measured corner-to-centre ratio that
//     can be fed back as lens_relative_illumination.
//   - RenderIlluminationMap: the predicted falloff across the sensor as a
//     colour-mapped PNG.
//   - SimulateBlur: applies the predicted diffraction spot and motion smear to
//     a capture.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner. X
// increases rightward and Y increases downward. Points must lie inside the
// image bounds.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The operations themselves are
// stateless and never modify their input image.
package imaging
