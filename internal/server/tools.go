package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func stringProp(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description,
	}
}

func enumProp(description string, values ...string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"enum":        values,
		"description": description,
	}
}

func integerProp(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": description,
	}
}

func objectSchema(properties map[string]interface{}, required ...string) map[string]interface{} {
	if required == nil {
		required = []string{}
	}
	return map[string]interface{}{
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}

// transformSchema builds the schema of a transformation tool: source and
// dest names plus the tool's own parameters.
func transformSchema(extra map[string]interface{}, required ...string) map[string]interface{} {
	props := map[string]interface{}{
		"source": stringProp("Name of the image to transform"),
		"dest":   stringProp("Name to store the result under (overwrites an existing image)"),
	}
	for k, v := range extra {
		props[k] = v
	}
	return objectSchema(props, append([]string{"source", "dest"}, required...)...)
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Registry and I/O
		{
			Name:        "image_load",
			Description: "Load an image file (.ppm plain pixel map, or PNG, JPEG, GIF, TIFF, BMP, WebP) and store it under a name.",
			InputSchema: objectSchema(map[string]interface{}{
				"path": stringProp("Absolute path to the image file"),
				"name": stringProp("Name to store the image under"),
			}, "path", "name"),
		},
		{
			Name:        "image_save",
			Description: "Save a named image to a file. The format follows the extension (.ppm, .png, .jpg, .gif, .tif, .bmp).",
			InputSchema: objectSchema(map[string]interface{}{
				"name": stringProp("Name of the image to save"),
				"path": stringProp("Absolute path of the output file"),
			}, "name", "path"),
		},
		{
			Name:        "image_info",
			Description: "Get the width and height of a named image.",
			InputSchema: objectSchema(map[string]interface{}{
				"name": stringProp("Name of the image"),
			}, "name"),
		},
		{
			Name:        "image_list",
			Description: "List the names of all loaded images.",
			InputSchema: objectSchema(map[string]interface{}{}),
		},
		{
			Name:        "image_reset",
			Description: "Discard every loaded image.",
			InputSchema: objectSchema(map[string]interface{}{}),
		},
		{
			Name:        "image_preview",
			Description: "Return a named image as base64-encoded PNG for display.",
			InputSchema: objectSchema(map[string]interface{}{
				"name": stringProp("Name of the image"),
			}, "name"),
		},

		// Transformations
		{
			Name:        "image_brighten",
			Description: "Add a value to every color channel, saturating at 0 and 255.",
			InputSchema: transformSchema(map[string]interface{}{
				"delta": integerProp("Amount to add to each channel (negative darkens)"),
			}, "delta"),
		},
		{
			Name:        "image_darken",
			Description: "Subtract a value from every color channel, saturating at 0 and 255.",
			InputSchema: transformSchema(map[string]interface{}{
				"delta": integerProp("Amount to subtract from each channel"),
			}, "delta"),
		},
		{
			Name:        "image_flip",
			Description: "Mirror an image horizontally (left-right) or vertically (top-bottom).",
			InputSchema: transformSchema(map[string]interface{}{
				"axis": enumProp("Mirror axis", "horizontal", "vertical"),
			}, "axis"),
		},
		{
			Name:        "image_grayscale",
			Description: "Convert an image to grayscale using one channel, the intensity (mean), the value (max) or the luma.",
			InputSchema: transformSchema(map[string]interface{}{
				"mode": enumProp("Grayscale mode", "red", "green", "blue", "intensity", "value", "luma", "luma-per-channel"),
			}, "mode"),
		},
		{
			Name:        "image_filter",
			Description: "Apply a convolution filter: a 3x3 blur or a 5x5 sharpen.",
			InputSchema: transformSchema(map[string]interface{}{
				"filter": enumProp("Filter kernel", "blur", "sharpen"),
			}, "filter"),
		},
		{
			Name:        "image_color_transform",
			Description: "Apply a color matrix: luma grayscale or sepia tone.",
			InputSchema: transformSchema(map[string]interface{}{
				"transform": enumProp("Color matrix", "grayscale", "sepia"),
			}, "transform"),
		},
		{
			Name:        "image_downscale",
			Description: "Resample an image to a smaller size using bilinear interpolation. The new area may not exceed the original area.",
			InputSchema: transformSchema(map[string]interface{}{
				"height": integerProp("New height in pixels"),
				"width":  integerProp("New width in pixels"),
			}, "height", "width"),
		},

		// Analysis
		{
			Name:        "image_histogram",
			Description: "Count pixels per value (0-255) of one channel or of the intensity.",
			InputSchema: objectSchema(map[string]interface{}{
				"name":    stringProp("Name of the image"),
				"channel": enumProp("Channel to count. Default intensity", "red", "green", "blue", "intensity"),
			}, "name"),
		},
		{
			Name:        "image_sample_color",
			Description: "Get the exact color of the pixel at a row and column, as hex, RGB and HSL.",
			InputSchema: objectSchema(map[string]interface{}{
				"name":   stringProp("Name of the image"),
				"row":    integerProp("Row (0-based, from top)"),
				"column": integerProp("Column (0-based, from left)"),
			}, "name", "row", "column"),
		},
	}
}

// handleToolsList returns the tool catalog
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
