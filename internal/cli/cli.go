// Package cli parses the heatpath command line.
package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Options holds everything the command needs to run.
type Options struct {
	GridPath   string // digit grid
	ConfigPath string // optional HCL rule-set file
	Strict     bool   // overrides strict_goal from the file when set
	ShowPath   bool
	LogFormat  string
	LogLevel   string
}

// Parse processes command-line arguments. It returns the populated Options,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*Options, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("heatpath", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
heatpath - cheapest route across a digit grid for a walker that must keep
between min_run and max_run cells in a straight line.

Usage:
  heatpath [options] [GRID_PATH]

Arguments:
  GRID_PATH
    Path to the digit grid (one row per line). Same as -grid.

Options:
`)
		flagSet.PrintDefaults()
	}

	gridFlag := flagSet.String("grid", "", "Path to the digit grid file.")
	configFlag := flagSet.String("config", "", "Path to an HCL rule-set file. Defaults to the crucible and ultra presets.")
	strictFlag := flagSet.Bool("strict", false, "Only accept the goal once the current straight run is at least min_run.")
	pathFlag := flagSet.Bool("path", false, "Print the cells of each cheapest route.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := *gridFlag
	if path == "" && flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	if path == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	opts := &Options{
		GridPath:   path,
		ConfigPath: *configFlag,
		Strict:     *strictFlag,
		ShowPath:   *pathFlag,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	}
	slog.Debug("CLI parser finished successfully.", "options", opts)
	return opts, false, nil
}
