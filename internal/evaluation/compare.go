package evaluation

import (
	"fmt"
	"image"
	"math"

	"github.com/ironsheep/pedmap-tools/internal/imaging"
)

// Result map colours.
var (
	TruePositiveColor  = imaging.RGBColor{R: 0, G: 255, B: 0}
	FalsePositiveColor = imaging.RGBColor{R: 255, G: 255, B: 0}
	FalseNegativeColor = imaging.RGBColor{R: 255, G: 0, B: 0}
	TrueNegativeColor  = imaging.RGBColor{R: 0, G: 0, B: 0}
)

// ConfusionMatrix holds per-pixel counts. Black pixels are positives.
type ConfusionMatrix struct {
	TP int `json:"tp"`
	FP int `json:"fp"`
	FN int `json:"fn"`
	TN int `json:"tn"`
}

// Precision is TP/(TP+FP), or 0 when nothing was predicted positive.
func (m ConfusionMatrix) Precision() float64 {
	return ratio(m.TP, m.TP+m.FP)
}

// Recall is TP/(TP+FN), or 0 when the ground truth has no positives.
func (m ConfusionMatrix) Recall() float64 {
	return ratio(m.TP, m.TP+m.FN)
}

// Accuracy is (TP+TN)/total, or 0 for an empty comparison.
func (m ConfusionMatrix) Accuracy() float64 {
	return ratio(m.TP+m.TN, m.TP+m.TN+m.FP+m.FN)
}

// Rows returns the matrix laid out with ground truth as rows and the
// prediction as columns: [[TP FN] [FP TN]].
func (m ConfusionMatrix) Rows() [2][2]int {
	return [2][2]int{{m.TP, m.FN}, {m.FP, m.TN}}
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}

// Scores are the matrix metrics rounded to two decimals.
type Scores struct {
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	Accuracy  float64 `json:"accuracy"`
}

// Scores returns the rounded metrics.
func (m ConfusionMatrix) Scores() Scores {
	return Scores{
		Precision: round2(m.Precision()),
		Recall:    round2(m.Recall()),
		Accuracy:  round2(m.Accuracy()),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Comparison is the output of Compare.
type Comparison struct {
	Matrix ConfusionMatrix
	// ResultMap colours every pixel by outcome: green TP, yellow FP, red FN,
	// black TN.
	ResultMap *image.NRGBA
}

// Compare scores a predicted mask against ground truth. A pixel is positive
// when it is exactly 0. Both masks must be the same size.
func Compare(pred, truth image.Image) (*Comparison, error) {
	p, t := imaging.ToGray(pred), imaging.ToGray(truth)
	if p.Bounds().Size() != t.Bounds().Size() {
		return nil, fmt.Errorf("%w: prediction %v, ground truth %v",
			imaging.ErrSizeMismatch, p.Bounds().Size(), t.Bounds().Size())
	}

	w, h := p.Bounds().Dx(), p.Bounds().Dy()
	res := &Comparison{ResultMap: image.NewNRGBA(image.Rect(0, 0, w, h))}
	m := &res.Matrix
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pp := p.Pix[y*p.Stride+x] == 0
			tp := t.Pix[y*t.Stride+x] == 0
			var c imaging.RGBColor
			switch {
			case pp && tp:
				m.TP++
				c = TruePositiveColor
			case pp:
				m.FP++
				c = FalsePositiveColor
			case tp:
				m.FN++
				c = FalseNegativeColor
			default:
				m.TN++
				c = TrueNegativeColor
			}
			res.ResultMap.SetNRGBA(x, y, c.NRGBA())
		}
	}
	return res, nil
}

// CompareFiles loads two mask files and compares them.
func CompareFiles(predPath, truthPath string) (*Comparison, error) {
	pred, err := imaging.Open(predPath)
	if err != nil {
		return nil, err
	}
	truth, err := imaging.Open(truthPath)
	if err != nil {
		return nil, err
	}
	return Compare(pred, truth)
}
