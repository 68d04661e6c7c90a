package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/shapestone/kjson/pkg/json"
)

// Color palette, grounded in the same color.New(...).SprintFunc() idiom the
// reference corpus's terminal output packages use throughout.
var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

// cliLogger is the concrete json.Logger the core's execution model expects a
// host to supply; the library itself never imports a logging package.
type cliLogger struct{}

func (cliLogger) Logf(severity, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	switch severity {
	case json.SeverityError:
		fmt.Fprintln(os.Stderr, red(msg))
	case json.SeverityWarn:
		fmt.Fprintln(os.Stderr, yellow(msg))
	default:
		fmt.Fprintln(os.Stderr, msg)
	}
}

func outcomeColor(o json.Outcome) string {
	switch o {
	case json.Success:
		return green(o.String())
	case json.NoChange:
		return yellow(o.String())
	default:
		return red(o.String())
	}
}
