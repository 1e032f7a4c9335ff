package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tlindem/wellpath/pkg/analysis"
	"github.com/tlindem/wellpath/pkg/survey"
	"github.com/tlindem/wellpath/pkg/trajectory"
)

var infoVSAzimuth float64

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display trajectory information for a survey file",
	Long:  "Integrate the surveys with the minimum curvature method and show position, closure, dogleg and extent statistics.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	infoCmd.Flags().Float64Var(&infoVSAzimuth, "vs-azimuth", 0, "reference azimuth for vertical section (degrees)")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	stations, err := survey.Load(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading survey file: %v\n", err)
		os.Exit(1)
	}

	path := trajectory.Integrate(stations)
	stats := analysis.AnalyzePath(path, infoVSAzimuth)

	fmt.Println("Wellbore Trajectory Information")
	fmt.Println("===============================")
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Survey Statistics:")
	fmt.Printf("  Stations: %d\n", stats.StationCount)
	fmt.Printf("  Total MD: %.1f ft\n", stats.TotalMD)
	fmt.Printf("  Bottom hole: %s\n\n", analysis.FormatPosition(stats.FinalTVD, stats.FinalNS, stats.FinalEW))

	fmt.Println("Closure:")
	fmt.Printf("  Distance: %.1f ft\n", stats.ClosureDistance)
	fmt.Printf("  Azimuth: %.2f deg\n", stats.ClosureAzimuth)
	fmt.Printf("  Vertical Section (az %.1f): %.1f ft\n\n", infoVSAzimuth, stats.VerticalSection)

	fmt.Println("Dogleg Severity:")
	fmt.Printf("  Maximum: %.2f deg/100ft at MD %.1f\n", stats.MaxDLS, stats.MaxDLSMD)
	fmt.Printf("  Average: %.2f deg/100ft\n\n", stats.AvgDLS)

	size := stats.Bounds.Size()
	fmt.Println("Extent:")
	fmt.Printf("  E/W: %.1f ft\n", size.X)
	fmt.Printf("  TVD: %.1f ft\n", size.Y)
	fmt.Printf("  N/S: %.1f ft\n", size.Z)
	fmt.Printf("  Diagonal: %.1f ft\n", stats.Bounds.Diagonal())

	if worst := stats.WorstIntervals(3); len(worst) > 0 {
		fmt.Println("\nWorst Intervals:")
		for _, iv := range worst {
			fmt.Printf("  MD %.1f-%.1f: %.2f deg/100ft (build %+.2f, turn %+.2f)\n",
				iv.FromMD, iv.ToMD, iv.DoglegSeverity, iv.BuildRate, iv.TurnRate)
		}
	}
}
