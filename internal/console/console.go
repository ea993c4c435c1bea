// Package console centralizes colored terminal output so every part of
// the tool warns and reports errors with the same look.
package console

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var (
	Info    = color.New(color.FgCyan)
	Success = color.New(color.FgGreen)
	Warning = color.New(color.FgYellow)
	Error   = color.New(color.FgRed)
)

// Init disables colors when stdout is not a terminal, so piped output
// stays free of escape sequences.
func Init() {
	color.NoColor = !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd())
}
