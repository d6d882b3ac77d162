//go:build cgo && linux

package imaging

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// GrayToMat copies g into a single-channel 8-bit Mat. The caller closes it.
func GrayToMat(g *image.Gray) (gocv.Mat, error) {
	m, err := gocv.ImageGrayToMatGray(CloneGray(g))
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("failed to convert mask: %w", err)
	}
	return m, nil
}

// MatToGray copies a single-channel 8-bit Mat into a new raster.
func MatToGray(m gocv.Mat) (*image.Gray, error) {
	if m.Type() != gocv.MatTypeCV8UC1 {
		return nil, fmt.Errorf("expected CV_8UC1 mat, got %v", m.Type())
	}
	img, err := m.ToImage()
	if err != nil {
		return nil, fmt.Errorf("failed to convert mat: %w", err)
	}
	return img.(*image.Gray), nil
}

// NRGBAToMat copies img into a three-channel BGR Mat. Alpha is dropped.
// The caller closes it.
func NRGBAToMat(img image.Image) (gocv.Mat, error) {
	m, err := gocv.ImageToMatRGB(ToNRGBA(img))
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("failed to convert image: %w", err)
	}
	return m, nil
}

// MatToNRGBA copies a BGR Mat into an opaque colour raster.
func MatToNRGBA(m gocv.Mat) (*image.NRGBA, error) {
	img, err := m.ToImage()
	if err != nil {
		return nil, fmt.Errorf("failed to convert mat: %w", err)
	}
	return ToNRGBA(img), nil
}

// mustGray runs op from a copy of g into a new Mat and returns the result as
// a raster. OpenCV only fails here on programming errors, so those panic.
func mustGray(g *image.Gray, op func(src gocv.Mat, dst *gocv.Mat) error) *image.Gray {
	src, err := GrayToMat(g)
	if err != nil {
		panic(err)
	}
	defer src.Close()

	dst := gocv.NewMat()
	defer dst.Close()
	if err := op(src, &dst); err != nil {
		panic(fmt.Errorf("opencv: %w", err))
	}

	out, err := MatToGray(dst)
	if err != nil {
		panic(err)
	}
	return out
}
