package server

import (
	"fmt"

	"github.com/ironsheep/optics-tools-mcp/internal/params"
)

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Calculation
		{
			Name:        "optics_calculate",
			Description: "Run the full machine-vision optics calculation (sensor, lens geometry, field of view, motion exposure, depth of field, diffraction, coverage, illumination, appearance timing, flags). Arguments are the input keys themselves; missing keys take their defaults. Unbounded results are reported as \"Infinity\", undefined comparisons as \"NaN\".",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": parameterProperties(),
			},
		},
		{
			Name:        "optics_parameters",
			Description: "List every input key the calculation understands, with unit, default and accepted aliases.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},

		// Rendering
		{
			Name:        "optics_illumination_map",
			Description: "Render the predicted relative illumination across the sensor as a colour-mapped PNG (base64). Uses lens_relative_illumination when supplied, the cos⁴ law otherwise.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"parameters": parametersSchema(),
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Output width in pixels; height follows the sensor aspect ratio. Default 320",
						"default":     320,
					},
					"low_color": map[string]interface{}{
						"type":        "string",
						"description": "Hex colour for zero illumination. Default #1d2b64",
					},
					"high_color": map[string]interface{}{
						"type":        "string",
						"description": "Hex colour for full illumination. Default #f8e16c",
					},
					"labels": map[string]interface{}{
						"type":        "boolean",
						"description": "Print the centre and corner percentages on the map",
						"default":     true,
					},
				},
				"required": []string{"parameters"},
			},
		},
		{
			Name:        "optics_simulate_blur",
			Description: "Apply the diffraction spot and motion smear predicted for a setup to a captured image and return the result as base64 PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":       pathSchema(),
					"parameters": parametersSchema(),
					"exposure_us": map[string]interface{}{
						"type":        "number",
						"description": "Exposure time for the motion smear. Default: the recommended exposure",
					},
					"diffraction": map[string]interface{}{
						"type":        "boolean",
						"description": "Apply the diffraction blur. Default true",
						"default":     true,
					},
					"motion": map[string]interface{}{
						"type":        "boolean",
						"description": "Apply the motion blur. Default true",
						"default":     true,
					},
					"preview_width": map[string]interface{}{
						"type":        "integer",
						"description": "Downsize the result to this width (max 1024)",
					},
				},
				"required": []string{"path", "parameters"},
			},
		},

		// Capture analysis
		{
			Name:        "optics_measure_distance",
			Description: "Measure the distance between two pixels of a captured image, in pixels and, when a scale is known, in object-space millimetres. The scale comes from mm_per_pixel_x/y or is calculated from parameters.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathSchema(),
					"x1":   coordSchema("Start X coordinate"),
					"y1":   coordSchema("Start Y coordinate"),
					"x2":   coordSchema("End X coordinate"),
					"y2":   coordSchema("End Y coordinate"),
					"mm_per_pixel_x": map[string]interface{}{
						"type":        "number",
						"description": "Object-space millimetres per pixel across",
					},
					"mm_per_pixel_y": map[string]interface{}{
						"type":        "number",
						"description": "Object-space millimetres per pixel down",
					},
					"parameters": parametersSchema(),
				},
				"required": []string{"path", "x1", "y1", "x2", "y2"},
			},
		},
		{
			Name:        "optics_flat_field",
			Description: "Measure centre and corner brightness of a flat-field capture and fit a radial falloff. Returns a measured corner-to-centre ratio usable as lens_relative_illumination.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathSchema(),
					"patch_fraction": map[string]interface{}{
						"type":        "number",
						"description": "Sample patch side as a fraction of the shorter image side. Default 0.1",
						"default":     0.1,
					},
					"fit_grid": map[string]interface{}{
						"type":        "integer",
						"description": "Cells per axis for the radial fit. Default 9",
						"default":     9,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "optics_datasheet_ocr",
			Description: "Read a camera or lens datasheet (image via OCR, or plain text) and extract calculation inputs from it. Optionally runs the calculation on what was found.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to a datasheet image. Ignored when text is given",
					},
					"text": map[string]interface{}{
						"type":        "string",
						"description": "Datasheet text to parse instead of running OCR",
					},
					"language": map[string]interface{}{
						"type":        "string",
						"description": "Tesseract language code. Default eng",
						"default":     "eng",
					},
					"calculate": map[string]interface{}{
						"type":        "boolean",
						"description": "Also run the calculation on the extracted inputs",
						"default":     false,
					},
				},
			},
		},
		{
			Name:        "optics_cache_clear",
			Description: "Drop decoded captures from memory so that files rewritten on disk (a new flat field at the same path, say) are read again. Clears one path when given, every capture otherwise.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Image path to forget, exactly as passed to the other tools. Default: all",
					},
				},
			},
		},
	}
}

// parameterProperties builds one schema property per calculation input.
func parameterProperties() map[string]interface{} {
	props := make(map[string]interface{}, len(params.Fields))
	for _, f := range params.Fields {
		desc := f.Description
		if f.Unit != "" {
			desc = fmt.Sprintf("%s [%s]", desc, f.Unit)
		}
		desc = fmt.Sprintf("%s. Default: %s", desc, f.Default)

		prop := map[string]interface{}{
			"type":        "number",
			"description": desc,
		}
		if f.Name == "object_motion_axis" {
			prop["type"] = "string"
			prop["enum"] = []string{string(params.AxisWidth), string(params.AxisHeight)}
		}
		props[f.Name] = prop
	}
	return props
}

func parametersSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": "Calculation inputs, as for optics_calculate",
		"properties":  parameterProperties(),
	}
}

func pathSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

func coordSchema(desc string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": desc + " (0-based)",
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
