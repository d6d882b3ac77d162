// Package detection finds and rasterises region boundaries in binary masks.
//
// The segmentation pipeline works on regions bounded by drawn lines:
// property parcels on a cadastral map, blocks between roads on a base map.
// This package turns a binary mask into the closed borders of those regions
// and gives the pipeline the per-region operations it needs: area, filling,
// outline drawing and counting foreground pixels of another mask inside a
// region.
//
// # Border Following
//
// FindContours performs topological border following (Suzuki and Abe,
// 1985). On Linux builds with cgo it calls OpenCV's findContours through
// gocv with the full hierarchy and no chain approximation, and region
// filling and outlines use drawContours. Other builds use the pure Go
// tracer and scanline fill. Contour order differs between the two, so
// callers navigate the hierarchy through Parent rather than by position.
//
// Every foreground component contributes an outer border and every
// background hole inside a component contributes a hole border. Borders are
// traced with 8-connectivity and reported pixel by pixel with no polygon
// simplification, together with their parent in the border hierarchy.
//
// The raster frame counts as background, so a component touching the edge
// of the image still yields a closed border running along the edge.
//
// # Coordinate System
//
// All coordinates use the standard image convention:
//   - Origin (0, 0) at top-left corner
//   - X increases rightward
//   - Y increases downward
//
// # Filled Regions
//
// A filled contour covers the pixels strictly inside the polygon through
// the border pixel centres plus the border pixels themselves. Filling a
// hole border therefore covers the hole together with the ring of
// foreground pixels around it.
//
// # Performance Considerations
//
// The pure tracer visits every pixel once and every border pixel a bounded
// number of times. Region operations are proportional to the region's
// bounding box, not to the image.
package detection
