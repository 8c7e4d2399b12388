package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sergev/wwvbclock/internal/calibration"
	"github.com/sergev/wwvbclock/internal/clock"
)

var resetToNominal bool

var calibrateCmd = &cobra.Command{
	Use:   "calibrate",
	Short: "Inspect or reset the persisted clock calibration",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openCalibrationStore()
		if err != nil {
			return err
		}

		if resetToNominal {
			params := clock.Params{Whole: cfg.Clock.NominalWhole, FracNumerator: cfg.Clock.NominalFrac, Denom: cfg.Clock.Denom}
			if err := calibration.Save(store, params); err != nil {
				return fmt.Errorf("failed to reset calibration: %w", err)
			}
			fmt.Println("Calibration reset to compiled-in nominal.")
			return nil
		}

		params, err := calibration.Load(store)
		if err != nil {
			return fmt.Errorf("failed to load calibration: %w", err)
		}
		fmt.Printf("whole=%d frac=%d/%d (scaled=%d)\n", params.Whole, params.FracNumerator, params.Denom, params.Scaled())
		return nil
	},
}

func init() {
	calibrateCmd.Flags().BoolVar(&resetToNominal, "reset", false, "reset persisted calibration to the compiled-in nominal")
	rootCmd.AddCommand(calibrateCmd)
}
