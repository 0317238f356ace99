package ui

import (
	"fmt"
	"os"
)

// ANSI escape codes
const (
	reset   = "\033[0m"
	bold    = "\033[1m"
	dim     = "\033[2m"
	red     = "\033[31m"
	green   = "\033[32m"
	yellow  = "\033[33m"
	blue    = "\033[34m"
	magenta = "\033[35m"
	cyan    = "\033[36m"
	white   = "\033[37m"
)

// Enabled gates all coloring; set false for plain output
var Enabled = true

func colorize(code, s string) string {
	if !Enabled {
		return s
	}
	return code + s + reset
}

// Bold returns s in bold
func Bold(s string) string { return colorize(bold, s) }

// Dim returns s dimmed
func Dim(s string) string { return colorize(dim, s) }

// Red returns s in red
func Red(s string) string { return colorize(red, s) }

// Green returns s in green
func Green(s string) string { return colorize(green, s) }

// Yellow returns s in yellow
func Yellow(s string) string { return colorize(yellow, s) }

// Blue returns s in blue
func Blue(s string) string { return colorize(blue, s) }

// Magenta returns s in magenta
func Magenta(s string) string { return colorize(magenta, s) }

// Cyan returns s in cyan
func Cyan(s string) string { return colorize(cyan, s) }

// White returns s in white
func White(s string) string { return colorize(white, s) }

// PrintError prints an error message to stderr
func PrintError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s %s\n", Red("✗"), fmt.Sprintf(format, args...))
}

// PrintSuccess prints a success message
func PrintSuccess(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", Green("✓"), fmt.Sprintf(format, args...))
}

// PrintInfo prints an informational message
func PrintInfo(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", Cyan("→"), fmt.Sprintf(format, args...))
}
