// Package cli holds small ANSI helpers used by the demonstration entry
// points. Output degrades to plain text when NO_COLOR is set.
package cli

import (
	"fmt"
	"os"
	"strings"
)

const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Cyan   = "\033[36m"
	Dim    = "\033[2m"
)

// disableColor is a cached check for the environment variable
var disableColor = checkNoColor()

func checkNoColor() bool {
	_, exists := os.LookupEnv("NO_COLOR")
	return exists
}

// Style wraps text in a specific color code
func Style(text string, colorCode string) string {
	if disableColor {
		return text
	}
	return fmt.Sprintf("%s%s%s", colorCode, text, Reset)
}

func CheckMark() string {
	return Style("✔", Green)
}

func CrossMark() string {
	return Style("✘", Red)
}

// Header prints a bold section banner the way the demo scripts separate
// their numbered sections.
func Header(title string) {
	line := strings.Repeat("=", 72)
	fmt.Println(Style(line, Dim))
	fmt.Println(Style(title, Bold))
	fmt.Println(Style(line, Dim))
}

// Rule prints a thin separator.
func Rule() {
	fmt.Println(Style(strings.Repeat("-", 72), Dim))
}

// Fail prints a diagnostic to stderr and exits non-zero. Demo entry points
// use it for configuration errors that abort the whole script.
func Fail(err error) {
	fmt.Fprintf(os.Stderr, "%s %v\n", CrossMark(), err)
	os.Exit(1)
}
