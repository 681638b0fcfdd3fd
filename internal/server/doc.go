// Package server implements the MCP (Model Context Protocol) server for the
// optics calculator and its capture-analysis tools.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Calculation:
//   - optics_calculate: Full optics report for a set of input keys
//   - optics_parameters: Supported input keys with units and defaults
//
// Rendering:
//   - optics_illumination_map: Colour-mapped relative illumination across the sensor
//   - optics_simulate_blur: Predicted diffraction and motion blur applied to a capture
//
// Capture analysis:
//   - optics_measure_distance: Pixel and object-space distance between two points
//   - optics_flat_field: Measured corner-to-centre falloff of a flat-field capture
//   - optics_datasheet_ocr: Input keys read from a camera or lens datasheet
//
// Calculation results carry unbounded values as "Infinity" and undefined
// comparisons as "NaN" so every reply stays valid JSON.
//
// # Image Caching
//
// Captures are decoded once and cached by path for the lifetime of the
// process, so repeated analysis of the same file skips disk I/O.
//
// # Error Handling
//
// Unknown methods return -32601, unparseable tools/call params -32602, and
// tool failures -32000 with the Go error string as data.
package server
