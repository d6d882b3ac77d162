// Package imaging provides the raster operations the segmentation pipeline is
// built from.
//
// The package works on two concrete raster types:
//   - *image.NRGBA for colour layers (maps, satellite imagery, fills)
//   - *image.Gray for single-channel greyscale and binary masks
//
// Binary masks follow the usual convention: 0 is background, any non-zero
// value (normally 255) is foreground. Every operation returns a new raster and
// leaves its inputs untouched, so callers can keep intermediate stages around
// for diagnostics.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner,
// X increasing rightward and Y increasing downward. Rasters produced by this
// package always have their bounds anchored at (0,0).
//
// # Colour Ranges
//
// Colour masking comes in two flavours:
//   - RGBRange: inclusive per-channel bounds on 8-bit R, G and B
//   - HSVRange: inclusive bounds on 8-bit HSV where hue is stored halved
//     (0-179), saturation and value span 0-255
//
// HSVRange bounds are 8-bit integers. Fractional limits such as 42.5 are
// rounded half to even with RoundBound, so [42.5, 72.5] selects hues 42-72.
//
// # Libraries
//
// Decoding, encoding and greyscale conversion use disintegration/imaging.
// Colour median filtering and alpha blending use anthonynsimon/bild.
// HSV conversion uses lucasb-eyer/go-colorful.
//
// On Linux builds with cgo, thresholding (fixed and Otsu), morphology with
// explicit structuring elements, greyscale median and bilateral filtering
// run through OpenCV via gocv.io/x/gocv, which needs OpenCV 4 visible to
// pkg-config. Other builds (CGO_ENABLED=0 included) use the pure Go
// versions in the *_pure.go files, which follow the same border and
// rounding rules. GrayToMat, MatToGray, NRGBAToMat and MatToNRGBA convert
// between the two worlds on cgo builds.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. All other functions are stateless.
package imaging
