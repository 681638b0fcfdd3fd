package server

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/ironsheep/optics-tools-mcp/internal/datasheet"
	"github.com/ironsheep/optics-tools-mcp/internal/imaging"
	"github.com/ironsheep/optics-tools-mcp/internal/optics"
	"github.com/ironsheep/optics-tools-mcp/internal/params"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "optics_calculate").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var call ToolCallParams
	if err := json.Unmarshal(req.Params, &call); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(call.Name, call.Arguments)
	if err != nil {
		if s.debug {
			log.Printf("tool %s failed: %v", call.Name, err)
		}
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Calculation
	case "optics_calculate":
		return s.handleCalculate(args)
	case "optics_parameters":
		return params.Fields, nil

	// Rendering
	case "optics_illumination_map":
		return s.handleIlluminationMap(args)
	case "optics_simulate_blur":
		return s.handleSimulateBlur(args)

	// Capture analysis
	case "optics_measure_distance":
		return s.handleMeasureDistance(args)
	case "optics_flat_field":
		return s.handleFlatField(args)
	case "optics_datasheet_ocr":
		return s.handleDatasheetOCR(args)
	case "optics_cache_clear":
		return s.handleCacheClear(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// decodeArgs unmarshals tool arguments into v. Missing arguments leave v at
// its zero value.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// === Calculation Handlers ===

func (s *Server) handleCalculate(args json.RawMessage) (interface{}, error) {
	values := map[string]interface{}{}
	if err := decodeArgs(args, &values); err != nil {
		return nil, err
	}
	return optics.CalculateMap(values), nil
}

// === Rendering Handlers ===

type illuminationMapArgs struct {
	Parameters map[string]interface{} `json:"parameters"`
	Width      int                    `json:"width"`
	LowColor   string                 `json:"low_color"`
	HighColor  string                 `json:"high_color"`
	Labels     *bool                  `json:"labels"`
}

func (s *Server) handleIlluminationMap(args json.RawMessage) (interface{}, error) {
	var a illuminationMapArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	labels := true
	if a.Labels != nil {
		labels = *a.Labels
	}
	return imaging.RenderIlluminationMap(params.FromMap(a.Parameters), imaging.MapOptions{
		Width:     a.Width,
		LowColor:  a.LowColor,
		HighColor: a.HighColor,
		Labels:    labels,
	})
}

type simulateBlurArgs struct {
	Path         string                 `json:"path"`
	Parameters   map[string]interface{} `json:"parameters"`
	ExposureUS   *float64               `json:"exposure_us"`
	Diffraction  *bool                  `json:"diffraction"`
	Motion       *bool                  `json:"motion"`
	PreviewWidth int                    `json:"preview_width"`
}

func (s *Server) handleSimulateBlur(args json.RawMessage) (interface{}, error) {
	var a simulateBlurArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	p := params.FromMap(a.Parameters)
	res := optics.Calculate(p)

	opts := imaging.BlurOptions{
		MotionAxis:   p.MotionAxis,
		PreviewWidth: a.PreviewWidth,
	}
	if a.Diffraction == nil || *a.Diffraction {
		opts.AiryDiameterPixels = res.DiffractionMTF.AiryDiskDiameterPixels.Float64()
	}
	if a.Motion == nil || *a.Motion {
		exposure := res.MotionExposure.RecommendedExposureUS.Float64()
		if a.ExposureUS != nil {
			exposure = *a.ExposureUS
		}
		opts.MotionLengthPixels = res.MotionExposure.ObjectSpeedPxPerS.Float64() * exposure * 1e-6
	}

	return imaging.SimulateBlur(img, opts)
}

// === Capture Analysis Handlers ===

type measureDistanceArgs struct {
	Path        string                 `json:"path"`
	X1          int                    `json:"x1"`
	Y1          int                    `json:"y1"`
	X2          int                    `json:"x2"`
	Y2          int                    `json:"y2"`
	MMPerPixelX *float64               `json:"mm_per_pixel_x"`
	MMPerPixelY *float64               `json:"mm_per_pixel_y"`
	Parameters  map[string]interface{} `json:"parameters"`
}

// scale resolves the object-space scale: explicit values win, a single
// explicit value is taken as square pixels, and otherwise the field of view
// calculated from the parameters is used.
func (a measureDistanceArgs) scale() imaging.Scale {
	switch {
	case a.MMPerPixelX != nil && a.MMPerPixelY != nil:
		return imaging.Scale{MMPerPixelX: *a.MMPerPixelX, MMPerPixelY: *a.MMPerPixelY}
	case a.MMPerPixelX != nil:
		return imaging.Scale{MMPerPixelX: *a.MMPerPixelX, MMPerPixelY: *a.MMPerPixelX}
	case a.MMPerPixelY != nil:
		return imaging.Scale{MMPerPixelX: *a.MMPerPixelY, MMPerPixelY: *a.MMPerPixelY}
	case a.Parameters != nil:
		fov := optics.CalculateMap(a.Parameters).FOVSampling
		return imaging.Scale{MMPerPixelX: fov.MMPerPixelX.Float64(), MMPerPixelY: fov.MMPerPixelY.Float64()}
	}
	return imaging.Scale{}
}

func (s *Server) handleMeasureDistance(args json.RawMessage) (interface{}, error) {
	var a measureDistanceArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.MeasureDistance(img,
		imaging.Point{X: a.X1, Y: a.Y1},
		imaging.Point{X: a.X2, Y: a.Y2},
		a.scale())
}

type flatFieldArgs struct {
	Path          string  `json:"path"`
	PatchFraction float64 `json:"patch_fraction"`
	FitGrid       int     `json:"fit_grid"`
}

func (s *Server) handleFlatField(args json.RawMessage) (interface{}, error) {
	var a flatFieldArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.AnalyzeFlatField(img, imaging.FlatFieldOptions{
		PatchFraction: a.PatchFraction,
		FitGrid:       a.FitGrid,
	})
}

type datasheetArgs struct {
	Path      string `json:"path"`
	Text      string `json:"text"`
	Language  string `json:"language"`
	Calculate bool   `json:"calculate"`
}

// DatasheetResult is the reply of optics_datasheet_ocr.
type DatasheetResult struct {
	Text        string                `json:"text"`
	Lines       []datasheet.Line      `json:"lines,omitempty"`
	Extraction  *datasheet.Extraction `json:"extraction"`
	Calculation *optics.Result        `json:"calculation,omitempty"`
}

func (s *Server) handleDatasheetOCR(args json.RawMessage) (interface{}, error) {
	var a datasheetArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	out := &DatasheetResult{Text: a.Text}
	if a.Text == "" {
		if a.Path == "" {
			return nil, fmt.Errorf("either path or text is required")
		}
		rec, err := datasheet.Recognize(a.Path, a.Language)
		if err != nil {
			return nil, err
		}
		out.Text = rec.Text
		out.Lines = rec.Lines
	}

	out.Extraction = datasheet.ParseParameters(out.Text)
	if a.Calculate {
		out.Calculation = optics.CalculateMap(out.Extraction.Parameters)
	}
	return out, nil
}

type cacheClearArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleCacheClear(args json.RawMessage) (interface{}, error) {
	var a cacheClearArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path != "" {
		s.cache.Evict(a.Path)
	} else {
		s.cache.Clear()
	}
	return map[string]interface{}{"cached_images": s.cache.Len()}, nil
}
