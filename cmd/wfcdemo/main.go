// Command wfcdemo drives a handful of preset grids through the solver
// from the command line, printing the resolved grid as a table and, with
// -v, a structured trace of every propagate sweep, choice, and backtrack.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/profile"
	"github.com/rs/zerolog"

	"github.com/gridwave/wfc/adjacency"
	"github.com/gridwave/wfc/search"
	"github.com/gridwave/wfc/wave"
	"github.com/gridwave/wfc/wfclog"
)

func main() {
	app := filepath.Base(os.Args[0])
	usage := fmt.Sprintf(`
wfcdemo runs a preset Wave Function Collapse scenario and prints the
resolved grid.

Usage:
  %s [options]

Scenarios:
  checkerboard   two patterns alternate on the four cardinals (default)
  terrain        three patterns with a ground row

Options:
`, app)

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}

	scenario := flag.String("scenario", "checkerboard", "preset scenario: checkerboard, terrain")
	width := flag.Int("w", 8, "grid width")
	height := flag.Int("h", 8, "grid height")
	periodic := flag.Bool("periodic", false, "use toroidal (wrap-around) boundaries")
	backtrack := flag.Bool("backtrack", true, "recover from contradictions by backtracking")
	verbose := flag.Bool("v", false, "log every propagate sweep, choice, and backtrack")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile of the solve to ./cpu.pprof")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	logger := wfclog.Nop()
	if *verbose {
		zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		logger = wfclog.New(zl)
	}

	wv, model, err := buildScenario(*scenario, *width, *height)
	checkError(err)

	opts := []search.Option{
		search.WithPeriodic(*periodic),
		search.WithBacktracking(*backtrack),
		search.WithLogger(logger),
	}

	result, err := search.Run(wv, model, opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, colorizeError(err))
		os.Exit(1)
	}

	render(*scenario, result)
}

// buildScenario constructs the wave and adjacency model for a named
// preset. Unknown scenario names are reported as a usage error, not a
// panic, since this is user input from a flag.
func buildScenario(name string, w, h int) (*wave.Wave, *adjacency.Model, error) {
	switch name {
	case "checkerboard":
		lists := [][]int{{1}, {0}, {2}}
		model, err := adjacency.Build(map[adjacency.Direction][][]int{
			{DX: 1, DY: 0}:  lists,
			{DX: -1, DY: 0}: lists,
			{DX: 0, DY: 1}:  lists,
			{DX: 0, DY: -1}: lists,
		})
		if err != nil {
			return nil, nil, err
		}
		wv, err := wave.Create(3, w, h)
		if err != nil {
			return nil, nil, err
		}

		return wv, model, nil

	case "terrain":
		// 0 = water, 1 = shore, 2 = land; each neighbors itself and the
		// adjacent rung, never skipping a rung (water never touches land
		// directly).
		lists := [][]int{{0, 1}, {0, 1, 2}, {1, 2}}
		model, err := adjacency.Build(map[adjacency.Direction][][]int{
			{DX: 1, DY: 0}:  lists,
			{DX: -1, DY: 0}: lists,
			{DX: 0, DY: 1}:  lists,
			{DX: 0, DY: -1}: lists,
		})
		if err != nil {
			return nil, nil, err
		}
		wv, err := wave.Create(3, w, h, wave.Ground(0))
		if err != nil {
			return nil, nil, err
		}

		return wv, model, nil

	default:
		return nil, nil, fmt.Errorf("wfcdemo: unknown scenario %q (want checkerboard or terrain)", name)
	}
}

// render prints the resolved grid as a table, one column per x and one
// row per y.
func render(scenario string, result *search.Result) {
	fmt.Println(color.New(color.FgGreen, color.Bold).Sprintf("solved: %s (%d x %d)", scenario, result.Width(), result.Height()))

	table := tablewriter.NewTable(os.Stdout)
	headers := make([]string, result.Width())
	for x := range headers {
		headers[x] = fmt.Sprintf("x=%d", x)
	}
	table.Header(headers)
	for _, row := range result.Rows() {
		table.Append(row)
	}
	table.Render()
}

func colorizeError(err error) string {
	return color.New(color.FgRed, color.Bold).Sprint(strings.TrimSpace(err.Error()))
}

func checkError(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, colorizeError(err))
		os.Exit(1)
	}
}
