package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tlindem/wellpath/pkg/survey"
)

var qualityLimits = survey.DefaultLimits()
var qualityAll bool

var qualityCmd = &cobra.Command{
	Use:   "quality [file]",
	Short: "Classify survey readings against quality limits",
	Long:  "Grade each survey station as pass, warning or fail. Classification is advisory: every reading is still usable for trajectory calculation.",
	Args:  cobra.ExactArgs(1),
	Run:   runQuality,
}

func init() {
	qualityCmd.Flags().Float64Var(&qualityLimits.MaxDoglegPer100ft, "max-dls", qualityLimits.MaxDoglegPer100ft, "maximum plausible dogleg severity (deg/100ft)")
	qualityCmd.Flags().Float64Var(&qualityLimits.MaxInclinationJump, "max-inc-jump", qualityLimits.MaxInclinationJump, "maximum inclination change between surveys (deg)")
	qualityCmd.Flags().Float64Var(&qualityLimits.MaxAzimuthJump, "max-az-jump", qualityLimits.MaxAzimuthJump, "maximum azimuth change between surveys (deg)")
	qualityCmd.Flags().Float64Var(&qualityLimits.MaxToolTemp, "max-temp", qualityLimits.MaxToolTemp, "maximum tool temperature (F)")
	qualityCmd.Flags().BoolVarP(&qualityAll, "all", "a", false, "list every station, not just warnings and failures")
	rootCmd.AddCommand(qualityCmd)
}

func runQuality(cmd *cobra.Command, args []string) {
	stations, err := survey.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading survey file: %v\n", err)
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "MD\tINC\tAZ\tSTATUS\tDETAIL")

	counts := map[survey.Status]int{}
	for i, st := range stations {
		var prior *survey.Station
		if i > 0 {
			prior = &stations[i-1]
		}
		a := survey.Classify(st, prior, qualityLimits)
		counts[a.Status]++

		if !qualityAll && a.Status == survey.StatusPass {
			continue
		}
		fmt.Fprintf(w, "%.1f\t%.2f\t%.2f\t%s\t%s\n", st.MeasuredDepth, st.Inclination, st.Azimuth, a.Status, a.Message)
	}
	w.Flush()

	fmt.Printf("\n%d stations: %d pass, %d warning, %d fail\n",
		len(stations), counts[survey.StatusPass], counts[survey.StatusWarning], counts[survey.StatusFail])

	if counts[survey.StatusFail] > 0 {
		os.Exit(2)
	}
}
