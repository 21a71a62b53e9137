// skyline is a side-scrolling demo of the ldtk kit: fly through a parallax
// landscape, shoot, and avoid the ground and the ceiling.
//
// Usage:
//
//	skyline                  - Play
//	skyline scores           - Show the longest runs
//	skyline config <path>    - Write the effective config to a file
//
// Global flags:
//
//	--config <path>  - YAML config file
//	--width, --height <px>  - Initial window size
//	--debug          - Debug checks, stats logging and the FPS overlay
//	--assets <dir>   - Asset directory
//	--db <path>      - Scores database ("" disables it)
//	--seed <value>   - RNG seed for the shot spread
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/ldtk/internal/config"
)

var (
	flagConfig string
	flagWidth  int
	flagHeight int
	flagDebug  bool
	flagAssets string
	flagDBPath string
	flagSeed   uint64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyline",
	Short: "Skyline - a side-scrolling ldtk demo",
	Long: `Skyline scrolls a procedurally generated landscape past your ship.

Controls:
  arrows / WASD   move
  space           fire
  drag            move (touch or mouse)
  escape          back to the menu, or quit from the menu`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return runGame(cfg)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().IntVar(&flagWidth, "width", 0, "Initial window width")
	rootCmd.PersistentFlags().IntVar(&flagHeight, "height", 0, "Initial window height")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug checks and stats")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Asset directory")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random)")

	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads --config and applies the flags the user set on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Window.Width = flagWidth
	}
	if flags.Changed("height") {
		cfg.Window.Height = flagHeight
	}
	if flags.Changed("debug") {
		cfg.Logging.Debug = flagDebug
		cfg.Window.ShowFPS = flagDebug
		if flagDebug {
			cfg.Logging.Level = "debug"
		}
	}
	if flags.Changed("assets") {
		cfg.Assets.Dir = flagAssets
	}
	if flags.Changed("db") {
		cfg.Scores.Path = flagDBPath
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the longest runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return printScores(cmd.OutOrStdout(), cfg.Scores.Path, 10)
	},
}

var configCmd = &cobra.Command{
	Use:   "config <path>",
	Short: "Write the effective config to a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if err := cfg.SaveTo(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
		return nil
	},
}
