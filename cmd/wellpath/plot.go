package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tlindem/wellpath/pkg/analysis"
	"github.com/tlindem/wellpath/pkg/plot"
	"github.com/tlindem/wellpath/pkg/survey"
	"github.com/tlindem/wellpath/pkg/trajectory"
)

var (
	plotVSAzimuth float64
	plotOffsets   []string
	plotPrefix    string
)

var plotCmd = &cobra.Command{
	Use:   "plot [file]",
	Short: "Render survey-report charts as PNG files",
	Long:  "Write vertical section, plan view and dogleg severity charts for a survey file.",
	Args:  cobra.ExactArgs(1),
	Run:   runPlot,
}

func init() {
	plotCmd.Flags().Float64Var(&plotVSAzimuth, "vs-azimuth", 0, "reference azimuth for the vertical section (degrees)")
	plotCmd.Flags().StringSliceVar(&plotOffsets, "offset", nil, "offset well survey file (repeatable)")
	plotCmd.Flags().StringVarP(&plotPrefix, "out", "o", "wellpath", "output filename prefix")
	rootCmd.AddCommand(plotCmd)
}

func runPlot(cmd *cobra.Command, args []string) {
	stations, err := survey.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading survey file: %v\n", err)
		os.Exit(1)
	}
	path := trajectory.Integrate(stations)
	stats := analysis.AnalyzePath(path, plotVSAzimuth)

	offsets, err := loadOffsetWells(plotOffsets)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	charts := []struct {
		name   string
		render func(string) error
	}{
		{plotPrefix + "-section.png", func(f string) error { return plot.SectionView(path, plotVSAzimuth, f) }},
		{plotPrefix + "-plan.png", func(f string) error { return plot.PlanView(path, offsets, f) }},
		{plotPrefix + "-dls.png", func(f string) error { return plot.DoglegProfile(stats, f) }},
	}
	for _, c := range charts {
		if err := c.render(c.name); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", c.name)
	}
}

func loadOffsetWells(files []string) ([]trajectory.OffsetWell, error) {
	var offsets []trajectory.OffsetWell
	for i, file := range files {
		offset, err := trajectory.LoadOffsetWell(file, trajectory.DefaultOffsetColor(i))
		if err != nil {
			return nil, err
		}
		offsets = append(offsets, offset)
	}
	return offsets, nil
}
