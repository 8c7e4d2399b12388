package cmd

import (
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/sergev/wwvbclock/internal/config"
)

var (
	configPath string
	cfg        config.Config
	logger     = charmlog.Default()
)

var rootCmd = &cobra.Command{
	Use:   "wwvbclock",
	Short: "A WWVB 60kHz radio-clock receiver daemon",
	Long:  "wwvbclock decodes the NIST WWVB 60kHz time code and disciplines a local clock to it.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configPath == "" {
			path, err := config.DefaultPath()
			if err != nil {
				return fmt.Errorf("failed to determine config path: %w", err)
			}
			configPath = path
		}

		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config at %s: %w", configPath, err)
		}
		cfg = loaded
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to receiver.toml (default: ~/.wwvbclock.toml)")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
