package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToUTM32(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		x, y     float64
	}{
		{"origin on central meridian", 0, 9, 500000, 0},
		{"central meridian 56N", 56, 9, 500000, 6206079.587},
		{"Aalborg", 57.0488, 9.9217, 555917.026, 6323195.552},
		{"Copenhagen, outside zone", 55.6761, 12.5683, 724351.929, 6175804.022},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := ToUTM32(tt.lat, tt.lon)
			assert.InDelta(t, tt.x, x, 0.01)
			assert.InDelta(t, tt.y, y, 0.01)
		})
	}
}
