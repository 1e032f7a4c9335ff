package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tlindem/wellpath/internal/app"
	"github.com/tlindem/wellpath/pkg/steering"
	"github.com/tlindem/wellpath/pkg/survey"
	"github.com/tlindem/wellpath/version"
)

var opts = app.Options{
	Params: steering.CurveParameters{
		SlideDistance:      30,
		BendAngle:          2.0,
		BitToBendDistance:  5,
		ProjectionDistance: 90,
	},
	Steering: steering.DefaultConfig(),
	Limits:   survey.DefaultLimits(),
}

var rootCmd = &cobra.Command{
	Use:   "wellpath-view <survey-file>",
	Short: "Interactive 3D wellbore trajectory viewer",
	Long: `wellpath-view opens a live 3D/2D view of a wellbore trajectory with
steering guidance. The survey file is watched and the view reloads on
change.`,
	Version: version.Full(),
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts.SurveyFile = args[0]
		applyOverrideFlags(cmd)
		return app.Run(opts)
	},
}

// applyOverrideFlags marks which manual steering overrides the operator
// actually supplied; only changed flags take precedence over computed
// values (a zero can be a deliberate override).
func applyOverrideFlags(cmd *cobra.Command) {
	opts.Overrides.HasMotorYield = cmd.Flags().Changed("override-yield")
	opts.Overrides.HasSlideSeen = cmd.Flags().Changed("override-slide-seen")
	opts.Overrides.HasDogleg = cmd.Flags().Changed("override-dls")
}

func init() {
	f := rootCmd.Flags()
	f.StringSliceVar(&opts.OffsetFiles, "offset", nil, "offset well survey file (repeatable)")
	f.Float64Var(&opts.Params.SlideDistance, "slide", opts.Params.SlideDistance, "planned slide distance (ft)")
	f.Float64Var(&opts.Params.BendAngle, "bend", opts.Params.BendAngle, "motor bend angle (deg)")
	f.Float64Var(&opts.Params.BitToBendDistance, "bit-to-bend", opts.Params.BitToBendDistance, "bit to bend distance (ft)")
	f.Float64Var(&opts.Params.ProjectionDistance, "project", opts.Params.ProjectionDistance, "projection look-ahead distance (ft)")
	f.Float64Var(&opts.Target.TVD, "target-tvd", 0, "target line TVD (ft)")
	f.Float64Var(&opts.Target.VerticalSection, "target-vs", 0, "target line vertical section (ft)")
	f.Float64Var(&opts.Target.Inclination, "target-inc", 0, "target line inclination (deg)")
	f.Float64Var(&opts.Target.Azimuth, "target-az", 0, "target line azimuth (deg)")
	f.Float64Var(&opts.Live.RotaryRPM, "rpm", 0, "current rotary speed")
	f.Float64Var(&opts.VSAzimuth, "vs-azimuth", 0, "reference azimuth for vertical section (degrees)")
	f.Float64Var(&opts.Overrides.MotorYield, "override-yield", 0, "operator-entered motor yield (deg/100ft), replaces the computed value")
	f.Float64Var(&opts.Overrides.SlideSeen, "override-slide-seen", 0, "operator-entered slide seen (deg), replaces the computed value")
	f.Float64Var(&opts.Overrides.Dogleg, "override-dls", 0, "operator-entered dogleg needed (deg/100ft), replaces the computed value")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
