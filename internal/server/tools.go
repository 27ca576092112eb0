package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load a PBM (P4) or PPM (P3) image and return its dimensions, number of LUT colors and detected format.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_create",
			Description: "Create a new image and save it. Kinds: blank (all white), chess (squares of one color on white) and palette (tiles using every LUT entry).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"output": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path of the file to write (.pbm, .ppm, .png, ...)",
					},
					"kind": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"blank", "chess", "palette"},
						"description": "Image pattern (default blank)",
						"default":     "blank",
					},
					"width":  map[string]interface{}{"type": "integer", "description": "Width in pixels"},
					"height": map[string]interface{}{"type": "integer", "description": "Height in pixels"},
					"edge": map[string]interface{}{
						"type":        "integer",
						"description": "Square or tile edge in pixels for chess and palette (default 10)",
						"default":     10,
					},
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Chess square color as #RRGGBB (default #000000)",
						"default":     "#000000",
					},
				},
				"required": []string{"output", "width", "height"},
			},
		},

		// Fill and Segmentation
		{
			Name:        "image_fill",
			Description: "Flood-fill the 4-connected region containing a seed pixel with a color and save the result. Returns the number of pixels changed.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"output": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path of the file to write",
					},
					"x": map[string]interface{}{"type": "integer", "description": "Seed X coordinate (0-based, from left)"},
					"y": map[string]interface{}{"type": "integer", "description": "Seed Y coordinate (0-based, from top)"},
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Fill color as #RRGGBB",
					},
					"strategy": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"stack", "queue", "recursive"},
						"description": "Traversal order (default stack). recursive is refused for images over 1048576 pixels",
						"default":     "stack",
					},
				},
				"required": []string{"path", "output", "x", "y", "color"},
			},
		},
		{
			Name:        "image_segment",
			Description: "Give every 4-connected region of white pixels its own new color and save the result. Stops early if the 1000-entry LUT fills up.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"output": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path of the file to write",
					},
					"strategy": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"stack", "queue", "recursive"},
						"description": "Traversal order (default stack). recursive is refused for images over 1048576 pixels",
						"default":     "stack",
					},
				},
				"required": []string{"path", "output"},
			},
		},

		// Transforms
		{
			Name:        "image_rotate",
			Description: "Rotate an image clockwise by 90, 180 or 270 degrees and save the result.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"output": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path of the file to write",
					},
					"degrees": map[string]interface{}{
						"type":        "integer",
						"enum":        []int{90, 180, 270},
						"description": "Clockwise rotation (default 90)",
						"default":     90,
					},
				},
				"required": []string{"path", "output"},
			},
		},
		{
			Name:        "image_crop",
			Description: "Crop a rectangular region from an image and save it. The LUT is kept unchanged.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"output": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path of the file to write",
					},
					"x1": map[string]interface{}{
						"type":        "integer",
						"description": "Left edge X coordinate (0-based)",
					},
					"y1": map[string]interface{}{
						"type":        "integer",
						"description": "Top edge Y coordinate (0-based)",
					},
					"x2": map[string]interface{}{
						"type":        "integer",
						"description": "Right edge X coordinate (exclusive)",
					},
					"y2": map[string]interface{}{
						"type":        "integer",
						"description": "Bottom edge Y coordinate (exclusive)",
					},
				},
				"required": []string{"path", "output", "x1", "y1", "x2", "y2"},
			},
		},
		{
			Name:        "image_crop_quadrant",
			Description: "Crop a named region of the image (top-left, top-right, bottom-left, bottom-right, top-half, bottom-half, left-half, right-half, center) and save it.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"output": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path of the file to write",
					},
					"region": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"top-left", "top-right", "bottom-left", "bottom-right", "top-half", "bottom-half", "left-half", "right-half", "center"},
						"description": "Named region to extract",
					},
				},
				"required": []string{"path", "output", "region"},
			},
		},
		{
			Name:        "image_outline",
			Description: "Produce a black and white image marking the boundaries between differently labelled regions and save it.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"output": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path of the file to write",
					},
				},
				"required": []string{"path", "output"},
			},
		},

		// Analysis
		{
			Name:        "image_compare",
			Description: "Check whether two images are identical: same size, same LUT in the same order and same label at every pixel.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path1": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the first image file",
					},
					"path2": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the second image file",
					},
				},
				"required": []string{"path1", "path2"},
			},
		},
		{
			Name:        "image_sample_color",
			Description: "Get the label and color value at a specific pixel coordinate.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "image_palette",
			Description: "List every LUT entry of an image with the number and share of pixels using it, most used first.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_regions",
			Description: "Report pixel count, bounding box and centroid for every label in use. Run on a segmented image to measure its regions.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},

		// Interop
		{
			Name:        "image_export",
			Description: "Render an image to PNG, JPEG, GIF, TIFF or BMP (chosen by the output extension), optionally magnified with a coordinate grid.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"output": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path of the file to write",
					},
					"scale": map[string]interface{}{
						"type":        "integer",
						"description": "Integer magnification (default 1)",
						"default":     1,
					},
					"grid_spacing": map[string]interface{}{
						"type":        "integer",
						"description": "Source pixels between grid lines, 0 for no grid (default 0)",
						"default":     0,
					},
					"show_coordinates": map[string]interface{}{
						"type":        "boolean",
						"description": "Whether to label grid intersections with coordinates",
						"default":     false,
					},
					"grid_color": map[string]interface{}{
						"type":        "string",
						"description": "Grid line color as hex (default #FF000080 - semi-transparent red)",
						"default":     "#FF000080",
					},
				},
				"required": []string{"path", "output"},
			},
		},
		{
			Name:        "image_import",
			Description: "Read a PNG, JPEG, GIF, BMP or TIFF file, threshold it to black and white and save it (typically as .pbm).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the raster image file",
					},
					"output": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path of the file to write",
					},
					"threshold": map[string]interface{}{
						"type":        "integer",
						"description": "Luminance level (0-255) at or above which pixels become white (default 128)",
						"default":     128,
					},
				},
				"required": []string{"path", "output"},
			},
		},
		{
			Name:        "image_stats",
			Description: "Report operation counters (pixel accesses) and the time since they were last reset.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"reset": map[string]interface{}{
						"type":        "boolean",
						"description": "Reset the counters after reading them",
						"default":     false,
					},
				},
			},
		},
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
