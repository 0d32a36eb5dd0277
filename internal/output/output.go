package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	verboseMode bool
)

// SetVerbose enables or disables verbose output. The CLI calls this when the
// --verbose flag is set.
func SetVerbose(v bool) {
	verboseMode = v
}

// Verbose reports whether verbose output is enabled, for callers that guard
// larger verbose-only blocks themselves.
func Verbose() bool {
	return verboseMode
}

// Success prints a green success message.
//
// Example:
//
//	output.Success("All checks passed! 🎉")
func Success(msg string) {
	fmt.Println(successStyle.Render("✓ " + msg))
}

// Error prints a red error message. Use this for failures that need user
// attention, including ERROR-level lint summaries.
func Error(msg string) {
	fmt.Println(errorStyle.Render("✗ " + msg))
}

// Warning prints a yellow warning message, used for WARNING-level lint
// summaries and degraded-but-continuing situations.
func Warning(msg string) {
	fmt.Println(warningStyle.Render("⚠ " + msg))
}

// Info prints a cyan informational message.
func Info(msg string) {
	fmt.Println(infoStyle.Render(msg))
}

// Step prints an indented gray sub-item, used for per-violation lines under
// a file heading.
func Step(msg string) {
	fmt.Println(stepStyle.Render("   " + msg))
}

// Plain prints an unstyled line, used for violation records whose coloring
// the caller decides per severity.
func Plain(msg string) {
	fmt.Println(msg)
}

// Debug prints a gray message only when verbose mode is enabled.
func Debug(msg string) {
	if verboseMode {
		fmt.Println(stepStyle.Render("· " + msg))
	}
}
