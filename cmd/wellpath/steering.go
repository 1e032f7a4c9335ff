package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tlindem/wellpath/pkg/analysis"
	"github.com/tlindem/wellpath/pkg/steering"
	"github.com/tlindem/wellpath/pkg/survey"
	"github.com/tlindem/wellpath/pkg/trajectory"
)

var (
	steeringParams = steering.CurveParameters{
		SlideDistance:      30,
		BendAngle:          2.0,
		BitToBendDistance:  5,
		ProjectionDistance: 90,
	}
	steeringTarget steering.TargetLine
	steeringRPM    float64
)

var steeringCmd = &cobra.Command{
	Use:   "steering [file]",
	Short: "Compute steering guidance from the latest surveys",
	Long:  "Derive motor yield, build/turn rates, slide projections and target-line deviation from the last two survey stations.",
	Args:  cobra.ExactArgs(1),
	Run:   runSteering,
}

func init() {
	f := steeringCmd.Flags()
	f.Float64Var(&steeringParams.SlideDistance, "slide", steeringParams.SlideDistance, "planned slide distance (ft)")
	f.Float64Var(&steeringParams.BendAngle, "bend", steeringParams.BendAngle, "motor bend angle (deg)")
	f.Float64Var(&steeringParams.BitToBendDistance, "bit-to-bend", steeringParams.BitToBendDistance, "bit to bend distance (ft)")
	f.Float64Var(&steeringParams.ProjectionDistance, "project", steeringParams.ProjectionDistance, "projection look-ahead distance (ft)")
	f.Float64Var(&steeringTarget.TVD, "target-tvd", 0, "target line TVD (ft)")
	f.Float64Var(&steeringTarget.VerticalSection, "target-vs", 0, "target line vertical section (ft)")
	f.Float64Var(&steeringTarget.Inclination, "target-inc", 0, "target line inclination (deg)")
	f.Float64Var(&steeringTarget.Azimuth, "target-az", 0, "target line azimuth (deg)")
	f.Float64Var(&steeringRPM, "rpm", 0, "current rotary speed")
	rootCmd.AddCommand(steeringCmd)
}

func runSteering(cmd *cobra.Command, args []string) {
	stations, err := survey.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading survey file: %v\n", err)
		os.Exit(1)
	}
	path := trajectory.Integrate(stations)
	if len(path) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no usable survey stations")
		os.Exit(1)
	}

	curr := path[len(path)-1]
	hasPrev := len(path) > 1
	var prev trajectory.Point
	if hasPrev {
		prev = path[len(path)-2]
	}

	cfg := steering.DefaultConfig()
	rotating := cfg.IsRotating(steeringRPM)

	yield := steering.EffectiveMotorYield(steeringParams,
		prev.Inclination, curr.Inclination, prev.MeasuredDepth, curr.MeasuredDepth, hasPrev)
	buildRate := steering.BuildRate(prev.Inclination, curr.Inclination, prev.MeasuredDepth, curr.MeasuredDepth)
	turnRate := steering.TurnRate(prev.Azimuth, curr.Azimuth, prev.MeasuredDepth, curr.MeasuredDepth)

	fmt.Println("Steering Guidance")
	fmt.Println("=================")
	fmt.Printf("Survey: MD %.1f  Inc %.2f  Az %.2f\n", curr.MeasuredDepth, curr.Inclination, curr.Azimuth)
	fmt.Printf("Position: %s\n", analysis.FormatPosition(curr.TVD, curr.NorthSouth, curr.EastWest))

	state := "sliding"
	if rotating {
		state = "rotating"
	}
	fmt.Printf("String: %s (%.0f rpm, threshold %.0f)\n\n", state, steeringRPM, cfg.RotaryThresholdRPM)

	fmt.Printf("Motor yield: %.2f deg/100ft\n", yield)
	fmt.Printf("Build rate:  %+.2f deg/100ft\n", buildRate)
	fmt.Printf("Turn rate:   %+.2f deg/100ft\n", turnRate)
	fmt.Printf("Slide seen:  %.2f deg\n", steering.SlideSeen(yield, steeringParams.SlideDistance, rotating))
	fmt.Printf("Slide ahead: %.2f deg\n\n", steering.SlideAhead(yield, steeringParams.SlideDistance, steeringParams.BitToBendDistance, rotating))

	fmt.Printf("Projected at %.0f ft ahead:\n", steeringParams.ProjectionDistance)
	fmt.Printf("  Inclination: %.2f deg\n", steering.ProjectedInclination(curr.Inclination, buildRate, steeringParams.ProjectionDistance))
	fmt.Printf("  Azimuth:     %.2f deg\n", steering.ProjectedAzimuth(curr.Azimuth, turnRate, steeringParams.ProjectionDistance))

	if steeringTarget.TVD > 0 {
		dev := steering.EvaluateTargetLine(curr.TVD, curr.NorthSouth, curr.EastWest, curr.Azimuth, steeringTarget)
		fmt.Println("\nTarget Line:")
		fmt.Printf("  Above/below: %+.1f ft\n", dev.AboveBelow)
		fmt.Printf("  Left/right:  %+.1f ft\n", dev.LeftRight)
		fmt.Printf("  Distance:    %.1f ft\n", dev.DistanceToTarget)
		fmt.Printf("  DLS needed:  %.2f deg/100ft over %.0f ft\n",
			steeringTarget.DoglegToTarget(curr.Inclination, curr.Azimuth, steeringParams.ProjectionDistance),
			steeringParams.ProjectionDistance)
	}
}
