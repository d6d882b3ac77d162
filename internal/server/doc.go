// Package server implements the MCP (Model Context Protocol) server that
// exposes the pedmap pipeline to notebook agents and MCP clients.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Logs go to stderr through the configured logger.
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Segmentation:
//   - segment_map: Run the pipeline over a layer directory
//   - sample_map_color: Report image info, then sample pixels and their matching colour ranges
//   - view_stage: Return a region of a stage raster as base64 PNG
//
// Evaluation:
//   - shapes_to_mask: Rasterise ground-truth shapes into a mask
//   - compare_masks: Confusion matrix and scores for two masks
//   - overlay_shapes: Draw shapes over a satellite image
//
// Fetching:
//   - fetch_map_layers: Download the five WMS layers for a bounding box
//
// # Image Caching
//
// Images read by tools are cached by path for the lifetime of the process.
// Tools that write rasters evict what they overwrite; segment_map and
// fetch_map_layers clear the whole cache.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with code
// -32000 and the Go error string as data. Malformed tools/call params get
// -32602 and unknown methods -32601.
//
// # Usage
//
//	srv := server.New(cfg, log)
//	if err := srv.Run(ctx, os.Stdin, os.Stdout); err != nil {
//	    log.Error("server", err, nil)
//	}
package server
