// Command navsim runs a fusion scenario file through the measurement
// update core and prints its diagnostic trace.
package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/skyfusion/navekf/diag"
	"github.com/skyfusion/navekf/navsim"
)

func main() {
	cobra.CheckErr(newRootCmd().Execute())
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "navsim",
		Short: "navsim runs navekf fusion scenarios and reports their diagnostics",
	}

	runCmd := &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Run a scenario file tick by tick",
		Args:  cobra.ExactArgs(1),
		RunE:  doRun,
	}
	runCmd.Flags().String("plot", "", "`<path>` to write an estimated-height PNG plot")

	rootCmd.AddCommand(runCmd)
	return rootCmd
}

func doRun(cmd *cobra.Command, args []string) error {
	path := args[0]

	scenario, err := navsim.Load(path)
	if err != nil {
		return fmt.Errorf("load scenario: %w", err)
	}

	rec := diag.NewRecorder()
	est, err := navsim.Run(scenario, rec)
	if err != nil {
		return fmt.Errorf("run scenario: %w", err)
	}

	for i, r := range rec.Reports() {
		fmt.Printf("tick %3d  t=%s  source=%-5s  pos_down=%8.3f  baro=%8.3f  range=%8.3f\n",
			i, r.Timestamp.Format("15:04:05.000"), r.ActiveHeightSource,
			r.EstimatedPosDown, r.BaroMeasurement, r.RangefinderMeasurement)
	}

	min, max := rec.Summary()
	fmt.Printf("scenario %q complete: %d ticks, pos_down in [%.3f, %.3f]\n", scenario.Name, len(rec.Reports()), min, max)
	fmt.Printf("final estimate:\n%v\n", est.Val())

	if plotPath, _ := cmd.Flags().GetString("plot"); plotPath != "" {
		p, err := rec.Plot()
		if err != nil {
			log.Fatalf("failed to build plot: %v", err)
		}
		if err := p.Save(6*vg.Inch, 4*vg.Inch, plotPath); err != nil {
			log.Fatalf("failed to save plot: %v", err)
		}
	}

	return nil
}
