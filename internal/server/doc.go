// Package server implements the MCP (Model Context Protocol) server for the
// indexed-image engine.
//
// This package provides a JSON-RPC 2.0 server that exposes image creation,
// flood fill, segmentation and the PBM/PPM codecs through the MCP protocol,
// so MCP clients can build, relabel and inspect label images.
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
// The server provides 15 tools organized into categories:
//
// Basic Image Information:
//   - image_load: Load a PBM/PPM image and get metadata
//   - image_create: Create a blank, chess or palette image
//
// Fill and Segmentation:
//   - image_fill: Flood-fill the region around a seed pixel
//   - image_segment: Give every white region its own color
//
// Transforms:
//   - image_rotate: Rotate by 90, 180 or 270 degrees clockwise
//   - image_crop: Extract rectangular region
//   - image_crop_quadrant: Extract named region (top-left, center, etc.)
//   - image_outline: Mark boundaries between labels
//
// Analysis:
//   - image_compare: Label-exact comparison of two images
//   - image_sample_color: Get label and color at pixel
//   - image_palette: LUT entries with usage counts
//   - image_regions: Per-label pixel count, bounds and centroid
//
// Interop:
//   - image_export: Render to PNG, JPEG, GIF, TIFF or BMP with optional grid
//   - image_import: Threshold a raster image into a bitmap
//   - image_stats: Pixel access counters
//
// # Image Caching
//
// Decoded images are cached by path and reused across tool calls. Tools
// never modify a cached image: fills and segmentation work on a copy, and
// every tool that writes a file evicts that path so the next load reads the
// new content.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
