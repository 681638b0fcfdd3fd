package params

// Field describes one supported input key.
type Field struct {
	Name        string   `json:"name"`
	Aliases     []string `json:"aliases,omitempty"`
	Unit        string   `json:"unit,omitempty"`
	Default     string   `json:"default"`
	Description string   `json:"description"`
}

// Fields lists every key FromMap understands, in report order.
var Fields = []Field{
	{Name: "sensor_width_mm", Unit: "mm", Default: "0", Description: "Active sensor width"},
	{Name: "sensor_height_mm", Unit: "mm", Default: "0", Description: "Active sensor height"},
	{Name: "sensor_diagonal_mm", Unit: "mm", Default: "hypot(width, height)", Description: "Active sensor diagonal"},
	{Name: "sensor_pixel_size_width_um", Aliases: []string{"sensor_pixel_size_um"}, Unit: "µm", Default: "mirrors height pitch", Description: "Horizontal pixel pitch"},
	{Name: "sensor_pixel_size_height_um", Aliases: []string{"sensor_pixel_size_um"}, Unit: "µm", Default: "mirrors width pitch", Description: "Vertical pixel pitch"},
	{Name: "lens_focal_length_mm", Unit: "mm", Default: "0", Description: "Lens focal length"},
	{Name: "lens_fstop", Aliases: []string{"lens_f_number"}, Default: "0", Description: "Nominal f-number"},
	{Name: "lens_diagonal_mm", Aliases: []string{"lens_image_circle_mm"}, Unit: "mm", Default: "0", Description: "Design image circle of the lens"},
	{Name: "lens_distortion_perc", Unit: "%", Default: "absent", Description: "Nominal distortion at the design image circle"},
	{Name: "lens_resolution", Unit: "lp/mm", Default: "diffraction cutoff / 2", Description: "Lens MTF50"},
	{Name: "lens_relative_illumination", Unit: "fraction or %", Default: "cos⁴ law", Description: "Corner-to-centre illumination supplied by the lens vendor"},
	{Name: "working_distance_mm", Unit: "mm", Default: "0", Description: "Object-to-lens distance"},
	{Name: "target_fov_width", Unit: "mm", Default: "absent", Description: "Desired field-of-view width"},
	{Name: "target_fov_height", Unit: "mm", Default: "absent", Description: "Desired field-of-view height"},
	{Name: "sensor_framerate", Aliases: []string{"framerate_fps"}, Unit: "fps", Default: "0", Description: "Camera frame rate"},
	{Name: "object_allowed_blur_pixels", Unit: "px", Default: "0", Description: "Tolerated motion blur"},
	{Name: "object_initial_speed_mm_s", Aliases: []string{"object_speed_mm_s"}, Unit: "mm/s", Default: "0", Description: "Target speed"},
	{Name: "object_motion_axis", Default: "W", Description: "Axis of motion, W or H"},
	{Name: "circle_of_confusion_mm", Unit: "mm", Default: "minimum pixel pitch", Description: "Circle of confusion used for depth of field"},
	{Name: "wavelength_um", Unit: "µm", Default: "0.55", Description: "Design wavelength for diffraction"},
}

var fieldIndex = func() map[string]Field {
	m := make(map[string]Field, len(Fields))
	for _, f := range Fields {
		m[f.Name] = f
	}
	return m
}()

// Lookup returns the keys probed for a field: its canonical name followed by
// its aliases. Unknown names are returned unchanged.
func Lookup(name string) []string {
	f, ok := fieldIndex[name]
	if !ok {
		return []string{name}
	}
	return append([]string{f.Name}, f.Aliases...)
}
