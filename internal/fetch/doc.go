// Package fetch downloads the raw inputs of the segmentation and
// evaluation tools: WMS map layers from Dataforsyningen and the Danish Road
// Directorate, WMTS orthophoto tiles, Google 2D tiles and MapBox satellite
// tiles and static images.
//
// Requests are made one at a time with a fixed delay between tile
// requests. A failed layer or tile is logged and recorded in the returned
// report; the remaining downloads continue. There are no retries.
package fetch
