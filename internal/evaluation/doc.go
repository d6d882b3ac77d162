// Package evaluation scores segmentation output against ground truth.
//
// Ground truth and predictions are both binary masks where black (0) marks
// pedestrian infrastructure. Shapes produced by other tools (tile2net
// shapefiles, GeoJSON) are rendered into such masks with RenderMask, two
// masks are scored pixel by pixel with Compare and the resulting confusion
// matrix can be charted with PlotConfusionMatrix. RenderOverlay draws shapes
// on top of a satellite image for visual inspection.
package evaluation
