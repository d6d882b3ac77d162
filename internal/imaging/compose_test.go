package imaging

import (
	"errors"
	"image"
	"testing"
)

func TestPaint(t *testing.T) {
	base := solidNRGBA(3, 2, White)
	mask := grayFrom(t, ".#.", "..#")

	out, err := Paint(base, mask, Red)
	if err != nil {
		t.Fatalf("Paint failed: %v", err)
	}
	if c := rgbAt(out, 1, 0); c != Red {
		t.Errorf("(1,0) = %+v, want red", c)
	}
	if c := rgbAt(out, 0, 0); c != White {
		t.Errorf("(0,0) = %+v, want white", c)
	}
	if c := rgbAt(base, 1, 0); c != White {
		t.Error("Paint modified its input")
	}

	_, err = Paint(base, image.NewGray(image.Rect(0, 0, 2, 2)), Red)
	if !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("expected ErrSizeMismatch, got %v", err)
	}
}

func TestColorMask(t *testing.T) {
	out := ColorMask(grayFrom(t, "#."), Red)
	if c := rgbAt(out, 0, 0); c != Red {
		t.Errorf("(0,0) = %+v, want red", c)
	}
	if c := rgbAt(out, 1, 0); c != Black {
		t.Errorf("(1,0) = %+v, want black", c)
	}
	if out.Pix[7] != 0xff {
		t.Error("expected opaque output")
	}
}

func TestOverlayHalfWeight(t *testing.T) {
	out := Overlay(solidNRGBA(4, 4, Black), solidNRGBA(4, 4, White), 0.5)
	c := rgbAt(out, 2, 2)
	if c.R < 126 || c.R > 128 {
		t.Errorf("R = %d, want about 127", c.R)
	}
}
