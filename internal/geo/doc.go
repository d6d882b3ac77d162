// Package geo holds the coordinate handling shared by the fetchers and the
// evaluation tools: WGS84 bounding boxes, projection to ETRS89 / UTM zone
// 32N (EPSG:25832, the CRS of every Danish administrative service) and
// slippy-map tile ranges.
package geo
