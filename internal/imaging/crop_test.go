package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"testing"
)

func TestEncode(t *testing.T) {
	img := solidNRGBA(30, 20, Red)

	result, err := Encode(img)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if result.Width != 30 || result.Height != 20 {
		t.Errorf("dimensions: got %dx%d, want 30x20", result.Width, result.Height)
	}
	if result.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", result.MimeType)
	}

	raw, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	decoded, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("not a png: %v", err)
	}
	if got := rgbAt(ToNRGBA(decoded), 5, 5); got != Red {
		t.Errorf("pixel: got %+v, want red", got)
	}
}

func TestDecode(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, solidNRGBA(4, 3, Green)); err != nil {
		t.Fatal(err)
	}
	img, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 3 {
		t.Errorf("dimensions: got %v", img.Bounds())
	}

	if _, err := Decode(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Error("expected error for garbage input")
	}
}

func TestCrop(t *testing.T) {
	img := solidNRGBA(100, 100, White)
	img.SetNRGBA(60, 70, Red.NRGBA())

	tests := []struct {
		name    string
		rect    image.Rectangle
		wantErr bool
	}{
		{"inside", image.Rect(50, 50, 100, 100), false},
		{"full image", image.Rect(0, 0, 100, 100), false},
		{"outside", image.Rect(50, 50, 101, 100), true},
		{"negative", image.Rect(-1, 0, 10, 10), true},
		{"empty", image.Rect(10, 10, 10, 20), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Crop(img, tt.rect)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got.Bounds().Dx() != tt.rect.Dx() || got.Bounds().Dy() != tt.rect.Dy() {
				t.Errorf("size: got %v, want %v", got.Bounds().Size(), tt.rect.Size())
			}
		})
	}

	// Cropped rasters are re-anchored at the origin.
	got, _ := Crop(img, image.Rect(50, 50, 100, 100))
	if c := rgbAt(got, 10, 20); c != Red {
		t.Errorf("cropped pixel: got %+v, want red", c)
	}
}

func TestResizeAndScale(t *testing.T) {
	img := solidNRGBA(100, 50, Red)

	r := Resize(img, 40, 30)
	if r.Bounds().Dx() != 40 || r.Bounds().Dy() != 30 {
		t.Errorf("Resize: got %v", r.Bounds())
	}

	s := Scale(img, 0.5)
	if s.Bounds().Dx() != 50 || s.Bounds().Dy() != 25 {
		t.Errorf("Scale: got %v", s.Bounds())
	}
	if s := Scale(img, 1); s.Bounds().Dx() != 100 {
		t.Errorf("Scale(1): got %v", s.Bounds())
	}
}

func TestFitWithin(t *testing.T) {
	tests := []struct {
		w, h, limit int
		wantW, wantH int
	}{
		{2400, 1200, 1200, 1200, 600},
		{1000, 3000, 1200, 400, 1200},
		{600, 400, 1200, 1200, 800},
		{1200, 1200, 1200, 1200, 1200},
	}
	for _, tt := range tests {
		gotW, gotH := FitWithin(tt.w, tt.h, tt.limit)
		if gotW != tt.wantW || gotH != tt.wantH {
			t.Errorf("FitWithin(%d, %d, %d) = %d, %d; want %d, %d",
				tt.w, tt.h, tt.limit, gotW, gotH, tt.wantW, tt.wantH)
		}
	}
}
