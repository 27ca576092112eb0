package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/ironsheep/lutimage-mcp/internal/fill"
	"github.com/ironsheep/lutimage-mcp/internal/imaging"
	"github.com/ironsheep/lutimage-mcp/internal/instr"
	"github.com/ironsheep/lutimage-mcp/internal/netpbm"
)

var errOutputRequired = errors.New("output path is required")

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_fill").
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
	pixmem := instr.PixMem.Value()
	result, err := s.executeTool(params.Name, params.Arguments)
	if s.debug {
		log.Printf("tool %s: %v, %d pixel accesses, err=%v",
			params.Name, time.Since(start), instr.PixMem.Value()-pixmem, err)
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

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads images from cache as needed
//  4. Calls the appropriate imaging/fill/netpbm function
//  5. Returns the result or error
//
// Handlers that produce an image never modify the cached source; they work
// on a copy or a freshly allocated result and write it to "output".
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_create":
		return s.handleImageCreate(args)

	// Fill and Segmentation
	case "image_fill":
		return s.handleImageFill(args)
	case "image_segment":
		return s.handleImageSegment(args)

	// Transforms
	case "image_rotate":
		return s.handleImageRotate(args)
	case "image_crop":
		return s.handleImageCrop(args)
	case "image_crop_quadrant":
		return s.handleImageCropQuadrant(args)
	case "image_outline":
		return s.handleImageOutline(args)

	// Analysis
	case "image_compare":
		return s.handleImageCompare(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_palette":
		return s.handleImagePalette(args)
	case "image_regions":
		return s.handleImageRegions(args)

	// Interop
	case "image_export":
		return s.handleImageExport(args)
	case "image_import":
		return s.handleImageImport(args)
	case "image_stats":
		return s.handleImageStats(args)

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

// OutputResult describes an image written by a tool.
type OutputResult struct {
	Output string `json:"output"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Colors int    `json:"colors"`
}

// save writes img to path and drops any stale cache entry for it, so later
// tools reading path see the new content.
func (s *Server) save(img *imaging.Image, path string) (*OutputResult, error) {
	if path == "" {
		return nil, errOutputRequired
	}
	if err := netpbm.Save(img, path); err != nil {
		return nil, err
	}
	s.cache.Evict(path)

	return &OutputResult{
		Output: path,
		Width:  img.Width(),
		Height: img.Height(),
		Colors: img.NumColors(),
	}, nil
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return netpbm.LoadImageInfo(s.cache, a.Path)
}

type imageCreateArgs struct {
	Output string `json:"output"`
	Kind   string `json:"kind"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Edge   int    `json:"edge"`
	Color  string `json:"color"`
}

func (s *Server) handleImageCreate(args json.RawMessage) (interface{}, error) {
	var a imageCreateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Kind == "" {
		a.Kind = "blank"
	}
	if a.Edge == 0 {
		a.Edge = 10
	}
	if a.Color == "" {
		a.Color = "#000000"
	}

	var img *imaging.Image
	var err error
	switch a.Kind {
	case "blank":
		img, err = imaging.New(a.Width, a.Height)
	case "chess":
		var c imaging.RGB
		if c, err = imaging.ParseRGB(a.Color); err != nil {
			return nil, err
		}
		img, err = imaging.NewChess(a.Width, a.Height, a.Edge, c)
	case "palette":
		img, err = imaging.NewPalette(a.Width, a.Height, a.Edge)
	default:
		return nil, fmt.Errorf("unknown image kind: %s", a.Kind)
	}
	if err != nil {
		return nil, err
	}
	defer img.Release()

	return s.save(img, a.Output)
}

// === Fill and Segmentation Handlers ===

// FillResult reports a flood fill.
type FillResult struct {
	OutputResult
	Pixels   int           `json:"pixels"`
	Label    imaging.Label `json:"label"`
	Strategy string        `json:"strategy"`
}

type imageFillArgs struct {
	Path     string `json:"path"`
	Output   string `json:"output"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Color    string `json:"color"`
	Strategy string `json:"strategy"`
}

func (s *Server) handleImageFill(args json.RawMessage) (interface{}, error) {
	var a imageFillArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	strategy, err := fill.ParseStrategy(a.Strategy)
	if err != nil {
		return nil, err
	}
	c, err := imaging.ParseRGB(a.Color)
	if err != nil {
		return nil, err
	}
	src, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	if err := strategy.CheckSize(src); err != nil {
		return nil, err
	}

	img := src.Copy()
	defer img.Release()
	label, err := img.AllocColor(c)
	if err != nil {
		return nil, err
	}
	pixels := strategy.Fill(img, a.X, a.Y, label)

	out, err := s.save(img, a.Output)
	if err != nil {
		return nil, err
	}
	return &FillResult{
		OutputResult: *out,
		Pixels:       pixels,
		Label:        label,
		Strategy:     strategy.String(),
	}, nil
}

// SegmentResult reports a segmentation run.
type SegmentResult struct {
	OutputResult
	fill.Result
	Strategy string `json:"strategy"`
}

type imageSegmentArgs struct {
	Path     string `json:"path"`
	Output   string `json:"output"`
	Strategy string `json:"strategy"`
}

func (s *Server) handleImageSegment(args json.RawMessage) (interface{}, error) {
	var a imageSegmentArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	strategy, err := fill.ParseStrategy(a.Strategy)
	if err != nil {
		return nil, err
	}
	src, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	if err := strategy.CheckSize(src); err != nil {
		return nil, err
	}

	img := src.Copy()
	defer img.Release()
	res := fill.SegmentRegions(img, strategy)

	out, err := s.save(img, a.Output)
	if err != nil {
		return nil, err
	}
	return &SegmentResult{
		OutputResult: *out,
		Result:       res,
		Strategy:     strategy.String(),
	}, nil
}

// === Transform Handlers ===

type imageRotateArgs struct {
	Path    string `json:"path"`
	Output  string `json:"output"`
	Degrees int    `json:"degrees"`
}

func (s *Server) handleImageRotate(args json.RawMessage) (interface{}, error) {
	var a imageRotateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Degrees == 0 {
		a.Degrees = 90
	}

	var rotate func(*imaging.Image) (*imaging.Image, error)
	switch a.Degrees {
	case 90:
		rotate = imaging.Rotate90CW
	case 180:
		rotate = imaging.Rotate180CW
	case 270:
		rotate = imaging.Rotate270CW
	default:
		return nil, fmt.Errorf("unsupported rotation: %d degrees (use 90, 180 or 270)", a.Degrees)
	}

	src, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	img, err := rotate(src)
	if err != nil {
		return nil, err
	}
	defer img.Release()
	return s.save(img, a.Output)
}

type imageCropArgs struct {
	Path   string `json:"path"`
	Output string `json:"output"`
	X1     int    `json:"x1"`
	Y1     int    `json:"y1"`
	X2     int    `json:"x2"`
	Y2     int    `json:"y2"`
}

func (s *Server) handleImageCrop(args json.RawMessage) (interface{}, error) {
	var a imageCropArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	src, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	img, err := imaging.Crop(src, imaging.Region{X1: a.X1, Y1: a.Y1, X2: a.X2, Y2: a.Y2})
	if err != nil {
		return nil, err
	}
	defer img.Release()
	return s.save(img, a.Output)
}

type imageCropQuadrantArgs struct {
	Path   string `json:"path"`
	Output string `json:"output"`
	Region string `json:"region"`
}

func (s *Server) handleImageCropQuadrant(args json.RawMessage) (interface{}, error) {
	var a imageCropQuadrantArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	src, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	img, err := imaging.CropQuadrant(src, a.Region)
	if err != nil {
		return nil, err
	}
	defer img.Release()
	return s.save(img, a.Output)
}

type imageOutlineArgs struct {
	Path   string `json:"path"`
	Output string `json:"output"`
}

func (s *Server) handleImageOutline(args json.RawMessage) (interface{}, error) {
	var a imageOutlineArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	src, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	img, err := imaging.Outline(src)
	if err != nil {
		return nil, err
	}
	defer img.Release()
	return s.save(img, a.Output)
}

// === Analysis Handlers ===

// CompareResult reports whether two images are identical.
type CompareResult struct {
	Equal      bool `json:"equal"`
	SameSize   bool `json:"same_size"`
	SameLUT    bool `json:"same_lut"`
	DiffPixels int  `json:"diff_pixels"`
	Colors1    int  `json:"colors1"`
	Colors2    int  `json:"colors2"`
}

type imageCompareArgs struct {
	Path1 string `json:"path1"`
	Path2 string `json:"path2"`
}

func (s *Server) handleImageCompare(args json.RawMessage) (interface{}, error) {
	var a imageCompareArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img1, err := s.cache.Load(a.Path1)
	if err != nil {
		return nil, err
	}
	img2, err := s.cache.Load(a.Path2)
	if err != nil {
		return nil, err
	}
	return compareImages(img1, img2), nil
}

// compareImages explains the outcome of Equal: whether sizes and LUTs agree,
// and how many pixels carry different labels when the sizes match.
func compareImages(img1, img2 *imaging.Image) *CompareResult {
	res := &CompareResult{
		Equal:    img1.Equal(img2),
		SameSize: img1.Width() == img2.Width() && img1.Height() == img2.Height(),
		Colors1:  img1.NumColors(),
		Colors2:  img2.NumColors(),
	}

	lut1, lut2 := img1.LUT(), img2.LUT()
	res.SameLUT = len(lut1) == len(lut2)
	for i := 0; res.SameLUT && i < len(lut1); i++ {
		res.SameLUT = lut1[i] == lut2[i]
	}

	if res.SameSize {
		for v := 0; v < img1.Height(); v++ {
			for u := 0; u < img1.Width(); u++ {
				if img1.Pixel(u, v) != img2.Pixel(u, v) {
					res.DiffPixels++
				}
			}
		}
	}
	return res
}

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

type imagePaletteArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImagePalette(args json.RawMessage) (interface{}, error) {
	var a imagePaletteArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.Palette(img), nil
}

// RegionsResult lists the regions of an image.
type RegionsResult struct {
	Count   int                   `json:"count"`
	Regions []imaging.RegionStats `json:"regions"`
}

func (s *Server) handleImageRegions(args json.RawMessage) (interface{}, error) {
	var a imagePaletteArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	regions := imaging.MeasureRegions(img)
	return &RegionsResult{Count: len(regions), Regions: regions}, nil
}

// === Interop Handlers ===

type imageExportArgs struct {
	Path            string `json:"path"`
	Output          string `json:"output"`
	Scale           int    `json:"scale"`
	GridSpacing     int    `json:"grid_spacing"`
	ShowCoordinates bool   `json:"show_coordinates"`
	GridColor       string `json:"grid_color"`
}

func (s *Server) handleImageExport(args json.RawMessage) (interface{}, error) {
	var a imageExportArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Output == "" {
		return nil, errOutputRequired
	}
	if a.Scale == 0 {
		a.Scale = 1
	}
	if a.GridColor == "" {
		a.GridColor = "#FF000080"
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	opts := imaging.RenderOptions{
		Scale:           a.Scale,
		GridSpacing:     a.GridSpacing,
		ShowCoordinates: a.ShowCoordinates,
		GridColor:       a.GridColor,
	}
	if err := imaging.Export(img, a.Output, opts); err != nil {
		return nil, err
	}
	s.cache.Evict(a.Output)

	return &OutputResult{
		Output: a.Output,
		Width:  img.Width() * max(a.Scale, 1),
		Height: img.Height() * max(a.Scale, 1),
		Colors: img.NumColors(),
	}, nil
}

type imageImportArgs struct {
	Path      string `json:"path"`
	Output    string `json:"output"`
	Threshold *int   `json:"threshold,omitempty"`
}

func (s *Server) handleImageImport(args json.RawMessage) (interface{}, error) {
	var a imageImportArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	level := 128
	if a.Threshold != nil {
		level = *a.Threshold
	}
	if level < 0 || level > 255 {
		return nil, fmt.Errorf("threshold must be between 0 and 255, got %d", level)
	}

	img, err := imaging.Import(a.Path, uint8(level))
	if err != nil {
		return nil, err
	}
	defer img.Release()
	return s.save(img, a.Output)
}

// StatsResult reports the operation counters.
type StatsResult struct {
	Counters  map[string]uint64 `json:"counters"`
	ElapsedMS int64             `json:"elapsed_ms"`
	Cached    int               `json:"cached_images"`
}

type imageStatsArgs struct {
	Reset bool `json:"reset"`
}

func (s *Server) handleImageStats(args json.RawMessage) (interface{}, error) {
	var a imageStatsArgs
	if len(args) > 0 {
		if err := json.Unmarshal(args, &a); err != nil {
			return nil, err
		}
	}

	res := &StatsResult{
		Counters:  instr.Snapshot(),
		ElapsedMS: instr.Elapsed().Milliseconds(),
		Cached:    s.cache.Len(),
	}
	if a.Reset {
		instr.Reset()
	}
	return res, nil
}
