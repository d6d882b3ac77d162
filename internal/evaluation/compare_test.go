package evaluation

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/pedmap-tools/internal/imaging"
)

// maskWith returns a white w×h mask with the given columns blacked out.
func maskWith(w, h int, blackCols ...int) *image.Gray {
	m := image.NewGray(image.Rect(0, 0, w, h))
	for i := range m.Pix {
		m.Pix[i] = 255
	}
	for _, x := range blackCols {
		for y := 0; y < h; y++ {
			m.SetGray(x, y, color.Gray{})
		}
	}
	return m
}

func TestCompareIdentical(t *testing.T) {
	mask := maskWith(10, 10, 2, 3, 4)

	res, err := Compare(mask, mask)
	require.NoError(t, err)

	assert.Equal(t, ConfusionMatrix{TP: 30, TN: 70}, res.Matrix)
	assert.Equal(t, Scores{Precision: 1, Recall: 1, Accuracy: 1}, res.Matrix.Scores())
	assert.Equal(t, TruePositiveColor.NRGBA(), res.ResultMap.NRGBAAt(3, 5))
	assert.Equal(t, TrueNegativeColor.NRGBA(), res.ResultMap.NRGBAAt(8, 5))
}

func TestCompareCounts(t *testing.T) {
	// prediction covers columns 0-3, ground truth columns 2-5
	pred := maskWith(10, 10, 0, 1, 2, 3)
	truth := maskWith(10, 10, 2, 3, 4, 5)

	res, err := Compare(pred, truth)
	require.NoError(t, err)

	m := res.Matrix
	assert.Equal(t, ConfusionMatrix{TP: 20, FP: 20, FN: 20, TN: 40}, m)
	assert.InDelta(t, 0.5, m.Precision(), 1e-9)
	assert.InDelta(t, 0.5, m.Recall(), 1e-9)
	assert.InDelta(t, 0.6, m.Accuracy(), 1e-9)
	assert.Equal(t, [2][2]int{{20, 20}, {20, 40}}, m.Rows())

	assert.Equal(t, FalsePositiveColor.NRGBA(), res.ResultMap.NRGBAAt(0, 0))
	assert.Equal(t, TruePositiveColor.NRGBA(), res.ResultMap.NRGBAAt(2, 0))
	assert.Equal(t, FalseNegativeColor.NRGBA(), res.ResultMap.NRGBAAt(5, 0))
	assert.Equal(t, TrueNegativeColor.NRGBA(), res.ResultMap.NRGBAAt(9, 0))
}

func TestCompareOnlyExactBlackIsPositive(t *testing.T) {
	pred := maskWith(4, 4)
	pred.SetGray(0, 0, color.Gray{Y: 1})
	truth := maskWith(4, 4, 0)

	res, err := Compare(pred, truth)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Matrix.FN)
	assert.Zero(t, res.Matrix.TP)
}

func TestMetricsWithoutPositives(t *testing.T) {
	blank := maskWith(5, 5)
	res, err := Compare(blank, blank)
	require.NoError(t, err)

	assert.Zero(t, res.Matrix.Precision())
	assert.Zero(t, res.Matrix.Recall())
	assert.Equal(t, 1.0, res.Matrix.Accuracy())
	assert.Zero(t, ConfusionMatrix{}.Accuracy())
}

func TestScoresRounding(t *testing.T) {
	m := ConfusionMatrix{TP: 1, FP: 2, FN: 0, TN: 0}
	assert.Equal(t, 0.33, m.Scores().Precision)
}

func TestCompareSizeMismatch(t *testing.T) {
	_, err := Compare(maskWith(4, 4), maskWith(5, 4))
	assert.ErrorIs(t, err, imaging.ErrSizeMismatch)
}

func TestCompareFiles(t *testing.T) {
	dir := t.TempDir()
	predPath := filepath.Join(dir, "pred.png")
	truthPath := filepath.Join(dir, "truth.png")
	require.NoError(t, imaging.Save(imaging.ToNRGBA(maskWith(6, 6, 1)), predPath))
	require.NoError(t, imaging.Save(imaging.ToNRGBA(maskWith(6, 6, 1, 2)), truthPath))

	res, err := CompareFiles(predPath, truthPath)
	require.NoError(t, err)
	assert.Equal(t, ConfusionMatrix{TP: 6, FN: 6, TN: 24}, res.Matrix)

	_, err = CompareFiles(filepath.Join(dir, "missing.png"), truthPath)
	assert.Error(t, err)
}
