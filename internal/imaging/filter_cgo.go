//go:build cgo && linux

package imaging

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

func medianGray(g *image.Gray, ksize int) *image.Gray {
	return mustGray(g, func(src gocv.Mat, dst *gocv.Mat) error {
		return gocv.MedianBlur(src, dst, ksize)
	})
}

func bilateral(img image.Image, d int, sigmaColor, sigmaSpace float64) *image.NRGBA {
	src, err := NRGBAToMat(img)
	if err != nil {
		panic(err)
	}
	defer src.Close()

	dst := gocv.NewMat()
	defer dst.Close()
	if err := gocv.BilateralFilter(src, &dst, d, sigmaColor, sigmaSpace); err != nil {
		panic(fmt.Errorf("opencv: %w", err))
	}

	out, err := MatToNRGBA(dst)
	if err != nil {
		panic(err)
	}
	return out
}
