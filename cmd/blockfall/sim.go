package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/loop"
)

var (
	flagScriptFile string
	flagEveryStep  bool
	flagScreen     bool
)

// simSeed is used when --seed is not given so replays are reproducible.
const simSeed = 1

var simCmd = &cobra.Command{
	Use:   "sim [script]",
	Short: "Replay a scripted session",
	Long: `Apply a script of steps to a fresh game and print the resulting frame.
No wall-clock time passes: "tick" fires the fall timer once.

Steps are separated by spaces or commas:
  tick                  - Fire the fall timer
  start, stop, pause,
  resume, toggle-pause,
  speed-up, speed-down,
  refresh               - Controls
  a, d, s, w, up, left,
  right, down, p, n     - Keys

Examples:
  blockfall sim "start tick tick a a up tick"
  blockfall sim --file session.txt --every --seed 42
  blockfall sim "start tick n up" --screen`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagScriptFile, "file", "", "Read the script from a file")
	simCmd.Flags().BoolVar(&flagEveryStep, "every", false, "Print the frame after every step")
	simCmd.Flags().BoolVar(&flagScreen, "screen", false, "Print the boxed field and debug panel instead of the ASCII grid")
}

func runSim(cmd *cobra.Command, args []string) error {
	script, err := readScript(args)
	if err != nil {
		return err
	}
	steps, err := loop.ParseScript(script)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	seed := flagSeed
	if seed == 0 {
		seed = simSeed
	}
	game, _, err := newGame(logger, seed)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var onStep func(int, loop.Step, blockfall.Snapshot)
	if flagEveryStep {
		onStep = func(i int, step loop.Step, snap blockfall.Snapshot) {
			fmt.Fprintf(out, "#%d %s\n", i+1, step.Token)
			writeFrame(out, snap)
			fmt.Fprintln(out)
		}
	}

	final := loop.Replay(game, steps, onStep)
	if !flagEveryStep {
		writeFrame(out, final)
	}
	return nil
}

// writeFrame prints snap in the format selected by --screen.
func writeFrame(out io.Writer, snap blockfall.Snapshot) {
	if flagScreen {
		writeScreen(out, snap)
		return
	}
	fmt.Fprint(out, blockfall.RenderASCII(snap))
}

// writeScreen prints the same field and panel the TUI shows, without
// colors and with trailing blanks trimmed.
func writeScreen(out io.Writer, snap blockfall.Snapshot) {
	w, h := blockfall.ScreenSize(snap.Frame.Rows(), snap.Frame.Cols())
	scr := core.NewScreen(w, h)
	blockfall.Render(snap, scr)
	for y := range scr.Height() {
		fmt.Fprintln(out, strings.TrimRight(scr.Row(y), " "))
	}
}

// readScript returns the script from --file or the positional argument.
func readScript(args []string) (string, error) {
	if flagScriptFile != "" {
		data, err := os.ReadFile(flagScriptFile)
		if err != nil {
			return "", fmt.Errorf("failed to read script %s: %w", flagScriptFile, err)
		}
		return stripComments(string(data)), nil
	}
	if len(args) == 1 {
		return args[0], nil
	}
	return "", fmt.Errorf("no script given, pass it as an argument or with --file")
}

// stripComments drops '#' comments so script files can be annotated.
func stripComments(script string) string {
	lines := strings.Split(script, "\n")
	for i, line := range lines {
		if j := strings.IndexByte(line, '#'); j >= 0 {
			lines[i] = line[:j]
		}
	}
	return strings.Join(lines, "\n")
}
