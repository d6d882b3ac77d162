//go:build cgo && linux

package imaging

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

// kernelMat builds the OpenCV structuring element for k. The caller closes it.
func kernelMat(k Kernel) gocv.Mat {
	m := gocv.Zeros(k.H, k.W, gocv.MatTypeCV8UC1)
	for i := 0; i < k.H; i++ {
		for j := 0; j < k.W; j++ {
			if k.On[i*k.W+j] {
				m.SetUCharAt(i, j, 1)
			}
		}
	}
	return m
}

func dilate(g *image.Gray, k Kernel) *image.Gray {
	kernel := kernelMat(k)
	defer kernel.Close()
	return mustGray(g, func(src gocv.Mat, dst *gocv.Mat) error {
		// A zero border never wins a maximum.
		return gocv.DilateWithParams(src, dst, kernel, k.Anchor, 1, gocv.BorderConstant, color.RGBA{})
	})
}

func erode(g *image.Gray, k Kernel) *image.Gray {
	kernel := kernelMat(k)
	defer kernel.Close()
	return mustGray(g, func(src gocv.Mat, dst *gocv.Mat) error {
		return gocv.ErodeWithParams(src, dst, kernel, k.Anchor, 1, int(gocv.BorderConstant))
	})
}
