package segmentation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyParcel(t *testing.T) {
	assert.Equal(t, Private, ClassifyParcel(0))
	assert.Equal(t, Public, ClassifyParcel(1))
	assert.Equal(t, Public, ClassifyParcel(500))
}

func TestClassifyBlock(t *testing.T) {
	p := DefaultParams()
	tests := []struct {
		name       string
		route, veg float64
		want       Label
	}{
		{"nothing", 0, 0, Unclassified},
		{"route only", 0.002, 0, Road},
		{"route wins over vegetation", 0.002, 0.9, Road},
		{"route at cut-off", 0.001, 0, Unclassified},
		{"vegetation", 0, 0.11, Vegetation},
		{"vegetation at cut-off", 0, 0.10, Unclassified},
		{"route at cut-off with vegetation", 0.001, 0.5, Vegetation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyBlock(tt.route, tt.veg, p))
		})
	}
}

func TestLabelString(t *testing.T) {
	assert.Equal(t, "public", Public.String())
	assert.Equal(t, "vegetation", Vegetation.String())
	assert.Equal(t, "unclassified", Label(42).String())
}
