package diagram

import (
	"image/color"
	"os"
	"path/filepath"

	"github.com/yraslan/gosrf/internal/en15359"
	"github.com/yraslan/gosrf/internal/waste"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// classColors shade quality classes from green (1) to red (5).
var classColors = []color.RGBA{
	{R: 0, G: 153, B: 51, A: 255},
	{R: 153, G: 204, B: 0, A: 255},
	{R: 255, G: 204, B: 0, A: 255},
	{R: 255, G: 128, B: 0, A: 255},
	{R: 204, G: 0, B: 0, A: 255},
}

// ExportComposition renders the waste composition as a bar chart and
// saves it to the given file. The format follows the file extension
// (png, svg, pdf); anything else falls back to png.
func ExportComposition(c waste.Composition, set waste.CategorySet, filename string) error {
	p := plot.New()
	p.Title.Text = "Waste Composition"
	p.Y.Label.Text = "Share of input mass (%)"

	values := make(plotter.Values, len(set.Categories))
	names := make([]string, len(set.Categories))
	for i, cat := range set.Categories {
		values[i] = c[cat.Name]
		names[i] = cat.Name
	}

	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		return err
	}
	bars.Color = color.RGBA{R: 74, G: 139, B: 201, A: 255}
	bars.LineStyle.Color = color.Black
	p.Add(bars)
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = 0.5
	p.X.Tick.Label.XAlign = -0.8

	return save(p, 8*vg.Inch, 5*vg.Inch, filename)
}

// ExportClassification renders the EN 15359 grading as a bar chart with
// one bar per parameter, colored by class.
func ExportClassification(c en15359.Classification, filename string) error {
	p := plot.New()
	p.Title.Text = "SRF Quality Classification (EN 15359)"
	p.Y.Label.Text = "Quality class (1 = best, 5 = worst)"
	p.Y.Min = 0
	p.Y.Max = float64(en15359.ClassCount) + 0.5

	classes := []int{c.NCVClass, c.ChlorineClass, c.MercuryClass}
	names := []string{"NCV", "Chlorine", "Mercury"}

	// One single-value bar chart per parameter so each bar carries its
	// class color.
	for i, class := range classes {
		values := make(plotter.Values, len(classes))
		values[i] = float64(class)
		bars, err := plotter.NewBarChart(values, vg.Points(40))
		if err != nil {
			return err
		}
		bars.Color = classColors[class-1]
		bars.LineStyle.Color = color.Black
		p.Add(bars)
	}
	p.NominalX(names...)

	return save(p, 7*vg.Inch, 5*vg.Inch, filename)
}

func save(p *plot.Plot, width, height vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
