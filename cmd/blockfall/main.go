// blockfall is a falling-block playground for the terminal.
//
// Usage:
//
//	blockfall play           - Play in the terminal UI
//	blockfall watch          - Run the engine headless, reading commands from stdin
//	blockfall sim <script>   - Replay a scripted session and print the frames
//	blockfall pieces         - Show the piece catalog
//	blockfall config print   - Print the effective configuration
//
// Global flags:
//
//	--seed <value>          - Set RNG seed for reproducible piece order
//	--config <path>         - Path to a custom config YAML
//	--speed-preset <name>   - Starting speed: slow, normal, fast
//	--log-level <level>     - debug, info, warn, error
//	--log-file <path>       - Write logs to a file
//
// Defaults for --config, --log-level and --seed may also come from the
// BLOCKFALL_CONFIG, BLOCKFALL_LOG_LEVEL and BLOCKFALL_SEED environment
// variables, optionally set in a .env file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed        int64
	flagConfig      string
	flagSpeedPreset string
	flagLogLevel    string
	flagLogFile     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - move, rotate and drop pieces in your terminal",
	Long: `Blockfall is a falling-block engine with a terminal front end.

Available commands:
  play     - Play in the terminal UI
  watch    - Run headless, reading commands from stdin
  sim      - Replay a scripted session deterministically
  pieces   - Show the seven pieces
  config   - Inspect configuration

Examples:
  blockfall play
  blockfall play --speed-preset fast
  blockfall sim "start tick tick a up tick" --seed 42
  blockfall config print --config ./my-blockfall.yaml`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return applyEnv(cmd)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagSpeedPreset, "speed-preset", "", "Starting speed preset: slow, normal, fast")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(piecesCmd)
	rootCmd.AddCommand(configCmd)
}
