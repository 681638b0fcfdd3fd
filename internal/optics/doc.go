// Package optics computes the imaging performance of a machine-vision setup:
// a camera sensor, a lens focused at a working distance, and optionally a
// target moving through the field of view.
//
// # Stages
//
// The calculation is split into independent stages, each a pure function of
// the typed parameters and the sections it depends on:
//
//   - SensorModel: pixel counts, aspect ratio, Nyquist frequency
//   - LensGeometry: thin-lens conjugate, aperture, effective f-number
//   - FieldOfViewSampling: object-space field of view and pixel density
//   - MotionExposure: exposure limits from motion blur and frame rate
//   - DepthOfField: hyperfocal distance and focus limits
//   - DiffractionAndSampling: Airy disk, diffraction cutoff, sampling regime
//   - CoverageAndDistortion: image-circle coverage and edge distortion
//   - Illumination: corner falloff and exposure compensation
//   - AppearanceTiming: time in frame and per-frame displacement
//   - FlagSynthesis: summary warnings
//
// Calculate runs them in dependency order. No stage keeps state, so
// Calculate may be called concurrently.
//
// # Units
//
// Lengths are in millimetres, pixel pitch and wavelength in micrometres,
// exposure times in microseconds, spatial frequencies in line pairs per
// millimetre.
//
// # Sentinels
//
// The calculation never fails. A quantity that is physically unbounded (a
// lens focused inside its focal length, an unlimited exposure) is +Inf. NaN
// is reserved for ratios that are undefined because a comparison input is
// missing, such as the FOV-versus-target percentage without a target.
// Number preserves both through JSON as "Infinity" and "NaN".
package optics
