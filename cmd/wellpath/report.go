package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tlindem/wellpath/pkg/analysis"
	"github.com/tlindem/wellpath/pkg/report"
	"github.com/tlindem/wellpath/pkg/survey"
	"github.com/tlindem/wellpath/pkg/trajectory"
)

var (
	reportVSAzimuth float64
	reportOffsets   []string
	reportOut       string
)

var reportCmd = &cobra.Command{
	Use:   "report [file]",
	Short: "Write an interactive 3D trajectory report as HTML",
	Long:  "Render the trajectory and any offset wells as a self-contained interactive HTML page.",
	Args:  cobra.ExactArgs(1),
	Run:   runReport,
}

func init() {
	reportCmd.Flags().Float64Var(&reportVSAzimuth, "vs-azimuth", 0, "reference azimuth for the vertical section (degrees)")
	reportCmd.Flags().StringSliceVar(&reportOffsets, "offset", nil, "offset well survey file (repeatable)")
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "wellpath-report.html", "output filename")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) {
	stations, err := survey.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading survey file: %v\n", err)
		os.Exit(1)
	}
	path := trajectory.Integrate(stations)
	stats := analysis.AnalyzePath(path, reportVSAzimuth)

	offsets, err := loadOffsetWells(reportOffsets)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := report.WriteHTML(path, offsets, stats, reportOut); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", reportOut)
}
