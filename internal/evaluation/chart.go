package evaluation

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

// Axis labels of the confusion matrix chart.
var (
	rowLabels    = [2]string{"GT positive", "GT negative"}
	columnLabels = [2]string{"Pred. positive", "Pred. negative"}
)

// PlotConfusionMatrix draws m as a labelled 2×2 table and saves it to path.
// The format follows the extension (png, svg, pdf, ...).
func PlotConfusionMatrix(m ConfusionMatrix, path string) error {
	p := plot.New()
	s := m.Scores()
	p.Title.Text = fmt.Sprintf("Precision %.2f  Recall %.2f  Accuracy %.2f", s.Precision, s.Recall, s.Accuracy)
	p.X.Min, p.X.Max = 0, 2
	p.Y.Min, p.Y.Max = 0, 2
	p.X.Tick.Marker = plot.ConstantTicks([]plot.Tick{
		{Value: 0.5, Label: columnLabels[0]},
		{Value: 1.5, Label: columnLabels[1]},
	})
	// Row 0 is drawn at the top.
	p.Y.Tick.Marker = plot.ConstantTicks([]plot.Tick{
		{Value: 1.5, Label: rowLabels[0]},
		{Value: 0.5, Label: rowLabels[1]},
	})
	p.X.Tick.Label.Font.Size = vg.Points(12)
	p.Y.Tick.Label.Font.Size = vg.Points(12)

	rows := m.Rows()
	var (
		points plotter.XYs
		labels []string
	)
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			x0, y0 := float64(c), float64(1-r)
			cell, err := plotter.NewPolygon(plotter.XYs{
				{X: x0, Y: y0}, {X: x0 + 1, Y: y0}, {X: x0 + 1, Y: y0 + 1}, {X: x0, Y: y0 + 1},
			})
			if err != nil {
				return fmt.Errorf("failed to build cell: %w", err)
			}
			cell.Color = color.White
			cell.LineStyle.Color = color.Black
			cell.LineStyle.Width = vg.Points(1)
			p.Add(cell)

			points = append(points, plotter.XY{X: x0 + 0.5, Y: y0 + 0.5})
			labels = append(labels, formatCount(rows[r][c]))
		}
	}

	values, err := plotter.NewLabels(plotter.XYLabels{XYs: points, Labels: labels})
	if err != nil {
		return fmt.Errorf("failed to build labels: %w", err)
	}
	for i := range values.TextStyle {
		values.TextStyle[i].XAlign = text.XCenter
		values.TextStyle[i].YAlign = text.YCenter
		values.TextStyle[i].Font.Size = vg.Points(12)
	}
	p.Add(values)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := p.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save chart: %w", err)
	}
	return nil
}

// formatCount writes n with thousands separators.
func formatCount(n int) string {
	if n < 0 {
		return "-" + formatCount(-n)
	}
	s := strconv.Itoa(n)
	out := make([]byte, 0, len(s)+len(s)/3)
	for i := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}
	return string(out)
}
