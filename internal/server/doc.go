// Package server implements the MCP (Model Context Protocol) server for the
// image processor.
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
// Registry:
//   - image_load, image_save: read and write image files
//   - image_info, image_list, image_reset: inspect and clear named images
//
// Transformations (each reads "source" and stores "dest"):
//   - image_brighten, image_darken
//   - image_flip
//   - image_grayscale
//   - image_filter
//   - image_color_transform
//   - image_downscale
//
// Analysis:
//   - image_histogram
//   - image_sample_color
//   - image_preview (base64 PNG)
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with code
// -32000 and the Go error string in data. Arguments that cannot be decoded
// produce -32602.
package server
