package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/disintegration/imaging"
)

// EncodedImage is a raster encoded for a tool response.
type EncodedImage struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Encode renders img as base64 PNG.
func Encode(img image.Image) (*EncodedImage, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return &EncodedImage{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// Decode reads an image from r. Format is sniffed from the content.
func Decode(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// Crop extracts rect from img. rect must lie inside the image and be
// non-empty.
func Crop(img image.Image, rect image.Rectangle) (*image.NRGBA, error) {
	bounds := img.Bounds()
	if !rect.In(bounds) {
		return nil, fmt.Errorf("crop region %v outside image bounds %v", rect, bounds)
	}
	if rect.Empty() {
		return nil, fmt.Errorf("invalid crop region %v: empty", rect)
	}
	return imaging.Crop(img, rect), nil
}

// Resize scales img to exactly width×height with bicubic interpolation.
func Resize(img image.Image, width, height int) *image.NRGBA {
	return imaging.Resize(img, width, height, imaging.CatmullRom)
}

// Scale resizes img by factor. Factors of 1 or below zero return a copy.
func Scale(img image.Image, factor float64) *image.NRGBA {
	if factor == 1 || factor <= 0 {
		return ToNRGBA(img)
	}
	w := int(float64(img.Bounds().Dx()) * factor)
	h := int(float64(img.Bounds().Dy()) * factor)
	return imaging.Resize(img, w, h, imaging.Lanczos)
}

// FitWithin scales width×height so that the larger side becomes limit,
// keeping the aspect ratio. Smaller sizes are scaled up.
func FitWithin(width, height, limit int) (int, int) {
	ratio := float64(limit) / float64(width)
	if r := float64(limit) / float64(height); r < ratio {
		ratio = r
	}
	return int(float64(width) * ratio), int(float64(height) * ratio)
}
