package server

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/ironsheep/image-processor-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_brighten").
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
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	start := time.Now()
	result, err := s.runTool(params.Name, params.Arguments)
	if s.debug {
		log.Printf("tool %s finished in %v (err=%v)", params.Name, time.Since(start), err)
	}
	if err != nil {
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

// runTool executes a tool and reports a panic in its handler as an error.
func (s *Server) runTool(name string, args json.RawMessage) (result interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Tool %s panicked: %v", name, r)
			result, err = nil, fmt.Errorf("tool %s failed: %v", name, r)
		}
	}()
	return s.executeTool(name, args)
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Parses enum strings into the engine's typed variants
//  3. Calls the matching Session operation
//  4. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Registry and I/O
	case "image_load":
		return s.handleImageLoad(args)
	case "image_save":
		return s.handleImageSave(args)
	case "image_info":
		return s.handleImageInfo(args)
	case "image_list":
		return s.handleImageList()
	case "image_reset":
		return s.handleImageReset()
	case "image_preview":
		return s.handleImagePreview(args)

	// Transformations
	case "image_brighten":
		return s.handleImageBrighten(args, false)
	case "image_darken":
		return s.handleImageBrighten(args, true)
	case "image_flip":
		return s.handleImageFlip(args)
	case "image_grayscale":
		return s.handleImageGrayscale(args)
	case "image_filter":
		return s.handleImageFilter(args)
	case "image_color_transform":
		return s.handleImageColorTransform(args)
	case "image_downscale":
		return s.handleImageDownscale(args)

	// Analysis
	case "image_histogram":
		return s.handleImageHistogram(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)

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
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Registry and I/O Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
	Name string `json:"name"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := s.session.Load(a.Path, a.Name); err != nil {
		return nil, err
	}
	return s.session.Info(a.Name)
}

type imageSaveArgs struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

type saveResult struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

func (s *Server) handleImageSave(args json.RawMessage) (interface{}, error) {
	var a imageSaveArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := s.session.Save(a.Name, a.Path); err != nil {
		return nil, err
	}
	return &saveResult{Name: a.Name, Path: a.Path}, nil
}

type imageNameArgs struct {
	Name string `json:"name"`
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a imageNameArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return s.session.Info(a.Name)
}

type listResult struct {
	Images []string `json:"images"`
	Count  int      `json:"count"`
}

func (s *Server) handleImageList() (interface{}, error) {
	names := s.session.Registry().Names()
	return &listResult{Images: names, Count: len(names)}, nil
}

func (s *Server) handleImageReset() (interface{}, error) {
	s.session.Reset()
	return &listResult{Images: []string{}, Count: 0}, nil
}

// previewResult contains a registry image encoded as base64 PNG.
type previewResult struct {
	Name        string `json:"name"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

func (s *Server) handleImagePreview(args json.RawMessage) (interface{}, error) {
	var a imageNameArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	info, err := s.session.Info(a.Name)
	if err != nil {
		return nil, err
	}
	data, err := s.session.Encode(a.Name, imaging.FormatPNG)
	if err != nil {
		return nil, err
	}
	return &previewResult{
		Name:        a.Name,
		Width:       info.Width,
		Height:      info.Height,
		ImageBase64: base64.StdEncoding.EncodeToString(data),
		MimeType:    "image/png",
	}, nil
}

// === Transformation Handlers ===

// transformArgs holds the source and destination names shared by every
// transformation tool.
type transformArgs struct {
	Source string `json:"source"`
	Dest   string `json:"dest"`
}

// result reports the stored destination image.
func (s *Server) result(a transformArgs, err error) (interface{}, error) {
	if err != nil {
		return nil, err
	}
	return s.session.Info(a.Dest)
}

type imageBrightenArgs struct {
	transformArgs
	Delta int `json:"delta"`
}

func (s *Server) handleImageBrighten(args json.RawMessage, darken bool) (interface{}, error) {
	var a imageBrightenArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if darken {
		return s.result(a.transformArgs, s.session.Darken(a.Delta, a.Source, a.Dest))
	}
	return s.result(a.transformArgs, s.session.Brighten(a.Delta, a.Source, a.Dest))
}

type imageFlipArgs struct {
	transformArgs
	Axis string `json:"axis"`
}

func (s *Server) handleImageFlip(args json.RawMessage) (interface{}, error) {
	var a imageFlipArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	axis, err := imaging.ParseFlipAxis(a.Axis)
	if err != nil {
		return nil, err
	}
	return s.result(a.transformArgs, s.session.Flip(axis, a.Source, a.Dest))
}

type imageGrayscaleArgs struct {
	transformArgs
	Mode string `json:"mode"`
}

func (s *Server) handleImageGrayscale(args json.RawMessage) (interface{}, error) {
	var a imageGrayscaleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	mode, err := imaging.ParseGrayscaleMode(a.Mode)
	if err != nil {
		return nil, err
	}
	return s.result(a.transformArgs, s.session.Grayscale(mode, a.Source, a.Dest))
}

type imageFilterArgs struct {
	transformArgs
	Filter string `json:"filter"`
}

func (s *Server) handleImageFilter(args json.RawMessage) (interface{}, error) {
	var a imageFilterArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	kind, err := imaging.ParseFilterKind(a.Filter)
	if err != nil {
		return nil, err
	}
	return s.result(a.transformArgs, s.session.Filter(kind, a.Source, a.Dest))
}

type imageColorTransformArgs struct {
	transformArgs
	Transform string `json:"transform"`
}

func (s *Server) handleImageColorTransform(args json.RawMessage) (interface{}, error) {
	var a imageColorTransformArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	kind, err := imaging.ParseColorTransformKind(a.Transform)
	if err != nil {
		return nil, err
	}
	return s.result(a.transformArgs, s.session.ColorTransform(kind, a.Source, a.Dest))
}

type imageDownscaleArgs struct {
	transformArgs
	Height int `json:"height"`
	Width  int `json:"width"`
}

func (s *Server) handleImageDownscale(args json.RawMessage) (interface{}, error) {
	var a imageDownscaleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return s.result(a.transformArgs, s.session.Downscale(a.Height, a.Width, a.Source, a.Dest))
}

// === Analysis Handlers ===

type imageHistogramArgs struct {
	Name    string `json:"name"`
	Channel string `json:"channel"`
}

type histogramResult struct {
	Name    string `json:"name"`
	Channel string `json:"channel"`
	Bins    []int  `json:"bins"`
}

func (s *Server) handleImageHistogram(args json.RawMessage) (interface{}, error) {
	var a imageHistogramArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Channel == "" {
		a.Channel = "intensity"
	}
	ch, err := imaging.ParseChannel(a.Channel)
	if err != nil {
		return nil, err
	}
	bins, err := s.session.Histogram(a.Name, ch)
	if err != nil {
		return nil, err
	}
	return &histogramResult{Name: a.Name, Channel: ch.String(), Bins: bins[:]}, nil
}

type imageSampleColorArgs struct {
	Name   string `json:"name"`
	Row    int    `json:"row"`
	Column int    `json:"column"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return s.session.SampleColor(a.Name, a.Row, a.Column)
}
