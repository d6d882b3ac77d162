// Package segmentation turns a set of co-registered map layers into a
// walkable/occupied raster for a small urban area.
//
// A run reads five layers from one directory (see LoadLayers) and passes
// them through a fixed chain of filters:
//
//  1. FilterPrivateProperty classifies every parcel on the cadastral
//     boundary layer as public (a marked route runs through it) or private
//     and paints private land red on the base map.
//  2. FilterStructures (optional) paints buildings and other structures red.
//  3. FilterRoutesAndVegetation strips cartographic line work, re-traces the
//     remaining blocks, paints blocks crossed by a route or covered by
//     vegetation red and reduces the result to a cleaned binary raster.
//
// Every intermediate stage is written to <out>/subresults with a fixed,
// numbered file name so a run can be inspected stage by stage. The final
// raster is written to <out>/segmented.jpg.
//
// Colour ranges are fixed constants tuned against Danish administrative
// maps (Dataforsyningen) and aerial photography; the area and coverage
// cut-offs are carried in Params.
package segmentation
