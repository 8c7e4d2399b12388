package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sergev/wwvbclock/internal/acquisition"
	"github.com/sergev/wwvbclock/internal/calibration"
	"github.com/sergev/wwvbclock/internal/device"
	"github.com/sergev/wwvbclock/internal/gpio"
	"github.com/sergev/wwvbclock/internal/mainloop"
	"github.com/sergev/wwvbclock/internal/symbol"
	"github.com/sergev/wwvbclock/internal/tickctx"
)

var (
	gpioChip       string
	gpioLineOffset int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the receiver daemon",
	Long:  "Runs the receiver daemon: samples the GPIO input line every tick, disciplines the local clock, and decodes frames in the background.",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openCalibrationStore()
		if err != nil {
			return err
		}

		detector := &symbol.Detector{Threshold: cfg.Acquisition.ScoreThreshold}
		thresholds := acquisition.Thresholds{
			SeekDetected:  cfg.Acquisition.SeekDetectedThreshold,
			SyncMiss:      cfg.Acquisition.SyncMissThreshold,
			DriftTrigger:  cfg.Acquisition.DriftTrigger,
			MinDiscipline: cfg.Acquisition.MinDisciplineTicks,
			PersistAfter:  cfg.Acquisition.PersistAfterTicks,
		}
		dev := device.New(detector, thresholds, cfg.Clock.NominalWhole, cfg.Clock.NominalFrac, cfg.Clock.Denom)

		mainloop.LoadCalibration(dev, store, logger)

		sample, err := gpio.NewSampleSource(gpioChip, gpioLineOffset)
		if err != nil {
			return fmt.Errorf("failed to open GPIO sample line: %w", err)
		}
		defer sample.Close()

		orch := tickctx.NewOrchestrator(dev, sample)
		ticks := gpio.NewTickSource(int64(time.Second / 60))
		ticks.SetPeriod(dev.Discipline.Current.Whole, dev.Discipline.Current.FracNumerator, dev.Discipline.Current.Denom)
		ticks.OnTick(orch.Tick)

		background := mainloop.New(dev, store, logger)
		refresh := time.NewTicker(100 * time.Millisecond)
		defer refresh.Stop()
		for range refresh.C {
			background.Step()
		}
		return nil
	},
}

func openCalibrationStore() (calibration.ByteStore, error) {
	switch cfg.Calibration.Store {
	case "eeprom":
		return calibration.NewEEPROMStore(cfg.Calibration.I2CBus, cfg.Calibration.I2CAddress)
	default:
		return calibration.NewFileStore(cfg.Calibration.Path)
	}
}

func init() {
	runCmd.Flags().StringVar(&gpioChip, "gpio-chip", "/dev/gpiochip0", "GPIO chip device for the demodulated envelope line")
	runCmd.Flags().IntVar(&gpioLineOffset, "gpio-line", 17, "GPIO line offset carrying the demodulated envelope bit")
	rootCmd.AddCommand(runCmd)
}
