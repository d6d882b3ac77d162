//go:build cgo && linux

package imaging

import (
	"image"

	"gocv.io/x/gocv"
)

func threshold(g *image.Gray, t uint8) *image.Gray {
	return mustGray(g, func(src gocv.Mat, dst *gocv.Mat) error {
		gocv.Threshold(src, dst, float32(t), 255, gocv.ThresholdBinary)
		return nil
	})
}

func otsu(g *image.Gray) (*image.Gray, uint8) {
	var t float32
	mask := mustGray(g, func(src gocv.Mat, dst *gocv.Mat) error {
		t = gocv.Threshold(src, dst, 0, 255, gocv.ThresholdBinary+gocv.ThresholdOtsu)
		return nil
	})
	return mask, uint8(t)
}
