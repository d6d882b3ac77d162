package imaging

import "errors"

// ErrSizeMismatch is returned when two rasters that must be co-registered
// have different dimensions.
var ErrSizeMismatch = errors.New("raster size mismatch")
