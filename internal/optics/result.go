package optics

// Result is the report produced by Calculate. Each section corresponds to one
// calculation stage.
type Result struct {
	Sensor             SensorSection       `json:"sensor"`
	LensGeometry       LensSection         `json:"lens_geometry"`
	FOVSampling        FOVSection          `json:"fov_sampling"`
	MotionExposure     MotionSection       `json:"motion_exposure"`
	DepthOfField       DOFSection          `json:"depth_of_field"`
	DiffractionMTF     DiffractionSection  `json:"diffraction_mtf"`
	CoverageDistortion CoverageSection     `json:"coverage_distortion"`
	Illumination       IlluminationSection `json:"illumination"`
	Appearances        AppearanceSection   `json:"appearances"`
	Flags              FlagsSection        `json:"flags"`
}

// SensorSection holds pixel geometry derived from the sensor size and pitch.
type SensorSection struct {
	PixelsHorz           Number `json:"pixels_horz"`
	PixelsVert           Number `json:"pixels_vert"`
	TotalPixels          Number `json:"total_pixels"`
	AspectRatio          Number `json:"aspect_ratio"`
	SensorDiagonalMM     Number `json:"sensor_diagonal_mm"`
	PixelSizeMinMM       Number `json:"pixel_size_min_mm"`
	SensorNyquistLpPerMM Number `json:"sensor_nyquist_lp_per_mm"`
}

// LensSection holds the thin-lens conjugate and aperture figures.
type LensSection struct {
	FocalLengthMM        Number `json:"focal_length_mm"`
	ApertureDiameterMM   Number `json:"aperture_diameter_mm"`
	EffectiveFNumber     Number `json:"effective_f_number"`
	WorkingDistanceMM    Number `json:"working_distance_mm"`
	ImageDistanceMM      Number `json:"image_distance_mm"`
	Magnification        Number `json:"magnification"`
	MagnificationPercent Number `json:"magnification_percent"`
}

// FOVSection holds the object-space field of view and sampling density.
type FOVSection struct {
	FOVWidthMM                     Number `json:"fov_width_mm"`
	FOVHeightMM                    Number `json:"fov_height_mm"`
	FOVDiagonalMM                  Number `json:"fov_diagonal_mm"`
	FOVAreaMM2                     Number `json:"fov_area_mm2"`
	PixelsPerMMX                   Number `json:"pixels_per_mm_x"`
	PixelsPerMMY                   Number `json:"pixels_per_mm_y"`
	MMPerPixelX                    Number `json:"mm_per_pixel_x"`
	MMPerPixelY                    Number `json:"mm_per_pixel_y"`
	FOVWidthActualVsTargetPercent  Number `json:"fov_width_actual_vs_target_percent"`
	FOVHeightActualVsTargetPercent Number `json:"fov_height_actual_vs_target_percent"`
}

// MotionSection holds the exposure limits imposed by motion and frame rate.
type MotionSection struct {
	MotionAxis                string `json:"motion_axis"`
	ObjectSpeedMMPerS         Number `json:"object_speed_mm_s"`
	ObjectSpeedPxPerS         Number `json:"object_speed_px_s"`
	AllowedBlurPx             Number `json:"allowed_blur_px"`
	FramePeriodUS             Number `json:"frame_period_us"`
	MaxExposureUSAllowedBlur  Number `json:"max_exposure_us_motion_blur_for_allowed_blur_px"`
	MaxExposureUSOnePixelBlur Number `json:"max_exposure_us_motion_blur_1px"`
	MaxExposureUSFrame        Number `json:"max_exposure_us_frame"`
	RecommendedExposureUS     Number `json:"recommended_exposure_us"`
}

// DOFSection holds the depth-of-field limits around the working distance.
type DOFSection struct {
	CircleOfConfusionMM Number `json:"circle_of_confusion_mm_used"`
	HyperfocalMM        Number `json:"hyperfocal_mm"`
	NearMM              Number `json:"near_mm"`
	FarMM               Number `json:"far_mm"`
	DOFMM               Number `json:"DOF_mm"`
}

// Sampling regimes reported in DiffractionSection.SamplingRegime.
const (
	RegimeDiffractionLimited = "optics-limited (diffraction)"
	RegimeAberrationLimited  = "optics-limited (aberrations)"
	RegimeSensorLimited      = "sensor-limited"
	RegimeBalanced           = "balanced"
)

// DiffractionSection compares the lens resolving power with the pixel grid.
type DiffractionSection struct {
	WavelengthUM                 Number `json:"wavelength_um"`
	AiryDiskDiameterUM           Number `json:"airy_disk_diameter_um"`
	AiryDiskDiameterPixels       Number `json:"airy_disk_diameter_pixels"`
	DiffractionCutoffLpPerMM     Number `json:"diffraction_cutoff_lp_per_mm"`
	SamplingNyquistLpPerMM       Number `json:"sampling_nyquist_lp_per_mm"`
	NyquistOverDiffractionCutoff Number `json:"nyquist_over_diffraction_cutoff"`
	LensMTF50LpPerMM             Number `json:"lens_mtf50_lp_per_mm"`
	MTF50VsNyquistRatio          Number `json:"mtf50_vs_nyquist_ratio"`
	SamplingRegime               string `json:"sampling_regime"`
}

// CoverageSection compares the lens image circle with the sensor.
type CoverageSection struct {
	CoverageOK                       bool   `json:"coverage_ok"`
	CoverageMarginMM                 Number `json:"coverage_margin_mm"`
	CoverageRatioActualVsDesign      Number `json:"coverage_ratio_actual_vs_design"`
	FOVWidthScaleVsDesign            Number `json:"fov_width_scale_vs_design"`
	FOVHeightScaleVsDesign           Number `json:"fov_height_scale_vs_design"`
	FOVAreaScaleVsDesign             Number `json:"fov_area_scale_vs_design"`
	EffectiveDistortionPercentAtEdge Number `json:"effective_distortion_percent_at_actual_edge"`
	EdgePositionErrorMM              Number `json:"edge_position_error_mm_effective"`
}

// Illumination sources reported in IlluminationSection.Source.
const (
	IlluminationFromLensData = "lens-data"
	IlluminationFromCos4     = "cos4"
)

// IlluminationSection holds the corner falloff and its exposure cost.
type IlluminationSection struct {
	CenterPercent             Number `json:"relative_illumination_center_percent"`
	CornerPercent             Number `json:"relative_illumination_corner_percent"`
	CornerToCenterRatio       Number `json:"corner_to_center_ratio"`
	VignettingLossPercent     Number `json:"vignetting_loss_percent"`
	ExposureCompensationStops Number `json:"exposure_compensation_stops_at_corners"`
	Source                    string `json:"source"`
}

// AppearanceSection describes how long a moving object stays in frame.
type AppearanceSection struct {
	AxisUsed               string `json:"appearance_axis_used"`
	TraversalExtentMM      Number `json:"traversal_extent_mm"`
	DurationS              Number `json:"duration_s"`
	ExpectedFrames         Number `json:"expected_frames"`
	FramesMin              Number `json:"frames_min"`
	FramesMax              Number `json:"frames_max"`
	DisplacementPerFrameMM Number `json:"displacement_per_frame_mm"`
	DisplacementPerFramePx Number `json:"displacement_per_frame_px"`
}

// FlagsSection summarises the report.
type FlagsSection struct {
	DiffractionDominant    bool `json:"diffraction_dominant"`
	ExposureLimitedByFrame bool `json:"exposure_limited_by_frame"`
	PotentialVignetting    bool `json:"potential_vignetting"`
}
