package imaging

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseHex parses a colour written as "#RRGGBB" or "RRGGBB".
func ParseHex(hex string) (RGBColor, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) != 6 {
		return RGBColor{}, fmt.Errorf("invalid hex color %q: want 6 digits", hex)
	}
	val, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGBColor{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return RGBColor{R: uint8(val >> 16), G: uint8(val >> 8), B: uint8(val)}, nil
}

// Hex formats c as "#RRGGBB".
func (c RGBColor) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
