package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sergev/wwvbclock/internal/calibration"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the current calibration and configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openCalibrationStore()
		if err != nil {
			return err
		}

		params, err := calibration.Load(store)
		if err != nil {
			fmt.Printf("Calibration: unavailable (%v), using compiled-in nominal\n", err)
		} else {
			fmt.Printf("Calibration: whole=%d frac=%d/%d (scaled=%d)\n",
				params.Whole, params.FracNumerator, params.Denom, params.Scaled())
		}

		fmt.Printf("\nConfiguration file: %s\n", configPath)
		fmt.Printf("Nominal period: whole=%d frac=%d/%d\n", cfg.Clock.NominalWhole, cfg.Clock.NominalFrac, cfg.Clock.Denom)
		fmt.Printf("Score threshold: %d\n", cfg.Acquisition.ScoreThreshold)
		fmt.Printf("Timezone offset: %+d:%02d (DST observed: %v)\n", cfg.Timezone.TZHours, cfg.Timezone.TZMinutes, cfg.Timezone.ObserveDST)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
