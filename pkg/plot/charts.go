// Package plot renders static survey-report charts of an integrated
// trajectory: vertical section, plan view and dogleg profile.
package plot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/tlindem/wellpath/pkg/analysis"
	"github.com/tlindem/wellpath/pkg/trajectory"
)

var primaryColor = color.RGBA{R: 30, G: 90, B: 200, A: 255}

// SectionView saves a vertical-section chart (VS along the reference
// azimuth vs TVD, depth increasing downward) as a PNG.
func SectionView(path trajectory.Path, vsAzimuth float64, filename string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Vertical Section (azimuth %.1f)", vsAzimuth)
	p.X.Label.Text = "Vertical Section (ft)"
	p.Y.Label.Text = "TVD (ft)"

	pts := make(plotter.XYs, 0, len(path))
	for _, pt := range path {
		pts = append(pts, plotter.XY{
			X: analysis.VerticalSection(pt.NorthSouth, pt.EastWest, vsAzimuth),
			// Negate so deeper plots lower on the page
			Y: -pt.TVD,
		})
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("section line: %w", err)
	}
	line.Color = primaryColor
	line.Width = vg.Points(1.5)
	p.Add(line)
	p.Legend.Add("wellbore", line)
	p.Legend.Top = true

	if err := p.Save(10*vg.Inch, 7*vg.Inch, filename); err != nil {
		return fmt.Errorf("save section view: %w", err)
	}
	return nil
}

// PlanView saves a bird's-eye chart (EW vs NS) of the primary well and any
// offset wells as a PNG.
func PlanView(path trajectory.Path, offsets []trajectory.OffsetWell, filename string) error {
	p := plot.New()
	p.Title.Text = "Plan View"
	p.X.Label.Text = "East/West (ft)"
	p.Y.Label.Text = "North/South (ft)"

	addWell := func(name string, well trajectory.Path, c color.Color) error {
		pts := make(plotter.XYs, 0, len(well))
		for _, pt := range well {
			pts = append(pts, plotter.XY{X: pt.EastWest, Y: pt.NorthSouth})
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("%s line: %w", name, err)
		}
		line.Color = c
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(name, line)
		return nil
	}

	if err := addWell("wellbore", path, primaryColor); err != nil {
		return err
	}
	for _, offset := range offsets {
		if err := addWell(offset.Name, offset.Points, offset.Color); err != nil {
			return err
		}
	}
	p.Legend.Top = true

	if err := p.Save(8*vg.Inch, 8*vg.Inch, filename); err != nil {
		return fmt.Errorf("save plan view: %w", err)
	}
	return nil
}

// DoglegProfile saves a dogleg-severity-vs-depth chart as a PNG
func DoglegProfile(stats *analysis.PathStats, filename string) error {
	p := plot.New()
	p.Title.Text = "Dogleg Severity"
	p.X.Label.Text = "Measured Depth (ft)"
	p.Y.Label.Text = "DLS (deg/100ft)"

	pts := make(plotter.XYs, 0, len(stats.Intervals))
	for _, iv := range stats.Intervals {
		pts = append(pts, plotter.XY{X: iv.ToMD, Y: iv.DoglegSeverity})
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("dls line: %w", err)
	}
	line.Color = color.RGBA{R: 200, G: 60, B: 30, A: 255}
	line.Width = vg.Points(1)
	p.Add(line)

	if err := p.Save(12*vg.Inch, 5*vg.Inch, filename); err != nil {
		return fmt.Errorf("save dogleg profile: %w", err)
	}
	return nil
}
