// snake is a terminal snake game with border walls, bonus items and lives.
//
// Usage:
//
//	snake [fps] [speed]     - Play (fps 1-100, default 30; speed 1-10, default 5)
//	snake config            - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>        - Frames per second
//	--speed <level>     - Movement speed
//	--seed <value>      - RNG seed for reproducible rounds
//	--config <path>     - Custom config YAML
//	--log-file <path>   - Write logs to a file (default: no logs)
//	--debug             - Log at debug level
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var (
	// Global flags
	flagFPS     int
	flagSpeed   int
	flagSeed    int64
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake [fps] [speed]",
	Short: "Snake - steer a growing snake around walls in your terminal",
	Long: `Snake runs on a wrap-around board: leaving one edge enters the opposite
one. Walls grow from the borders. Blue items grow the snake and score a
point; turquoise items give (+) or take (×) a life and vanish after a while.

Controls:
  W/A/S/D, arrows  - Steer
  Enter/Space      - Start
  P                - Pause
  Y                - Resume
  R                - Restart
  Q/Ctrl+C         - Quit

Examples:
  snake
  snake 60 8
  snake --speed 3 --seed 42
  snake --config ./my-snake.yaml --log-file /tmp/snake.log`,
	Args:          cobra.RangeArgs(0, 2),
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frames per second, 1-100 (default from config: 30)")
	rootCmd.PersistentFlags().IntVar(&flagSpeed, "speed", 0, "Movement speed, 1-10 (default from config: 5)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(configCmd)
}

// launchConfig loads the config file and applies flags, then positional
// arguments, on top of it.
func launchConfig(cmd *cobra.Command, args []string) (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Launch.FPS = flagFPS
	}
	if flags.Changed("speed") {
		cfg.Launch.Speed = flagSpeed
	}

	if err := applyLaunchArgs(&cfg, args); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// applyLaunchArgs reads the optional [fps] [speed] positional arguments.
func applyLaunchArgs(cfg *config.SnakeConfig, args []string) error {
	if len(args) > 0 {
		fps, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("%w: fps %q is not a number", config.ErrInvalid, args[0])
		}
		cfg.Launch.FPS = fps
	}
	if len(args) > 1 {
		speed, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("%w: speed %q is not a number", config.ErrInvalid, args[1])
		}
		cfg.Launch.Speed = speed
	}
	return nil
}
