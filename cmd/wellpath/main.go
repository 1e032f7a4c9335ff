package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tlindem/wellpath/version"
)

var rootCmd = &cobra.Command{
	Use:   "wellpath",
	Short: "A CLI tool for wellbore survey analysis and trajectory calculation",
	Long: `wellpath analyzes directional-drilling survey data. It integrates
surveys into a 3D trajectory with the minimum curvature method and provides
quality classification, steering guidance, charts and interactive reports.`,
	Version: version.Full(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
