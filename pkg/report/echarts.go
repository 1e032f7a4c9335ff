// Package report writes a self-contained interactive HTML view of a
// wellpath for sharing outside the rig-site tooling.
package report

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/tlindem/wellpath/pkg/analysis"
	"github.com/tlindem/wellpath/pkg/trajectory"
)

// WriteHTML renders the trajectory and any offset wells as an interactive
// 3D line chart in a standalone HTML file.
func WriteHTML(path trajectory.Path, offsets []trajectory.OffsetWell, stats *analysis.PathStats, filename string) error {
	line3d := charts.NewLine3D()
	line3d.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Wellbore Trajectory",
			Subtitle: fmt.Sprintf("TD %.0f ft MD / %.0f ft TVD, closure %.0f ft at %.1f deg, max DLS %.2f deg/100ft",
				stats.TotalMD, stats.FinalTVD, stats.ClosureDistance, stats.ClosureAzimuth, stats.MaxDLS),
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "1200px",
			Height: "800px",
		}),
		charts.WithXAxis3DOpts(opts.XAxis3D{Name: "E/W (ft)", Show: opts.Bool(true)}),
		charts.WithYAxis3DOpts(opts.YAxis3D{Name: "N/S (ft)", Show: opts.Bool(true)}),
		charts.WithZAxis3DOpts(opts.ZAxis3D{Name: "TVD (ft)", Show: opts.Bool(true)}),
	)

	line3d.AddSeries("wellbore", seriesData(path))
	for _, offset := range offsets {
		line3d.AddSeries(offset.Name, seriesData(offset.Points))
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	if err := line3d.Render(f); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}

// seriesData converts a path to chart points. TVD is negated so the chart
// shows depth going down.
func seriesData(path trajectory.Path) []opts.Chart3DData {
	data := make([]opts.Chart3DData, 0, len(path))
	for _, pt := range path {
		data = append(data, opts.Chart3DData{
			Value: []interface{}{pt.EastWest, pt.NorthSouth, -pt.TVD},
		})
	}
	return data
}
