package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Confirm asks the user a yes/no question on stdin. It returns true for
// y/Y/yes/YES; an empty answer returns defaultYes.
//
// Example:
//
//	if input.Confirm("Overwrite existing file citation.tsv?", false) {
//	    // user agreed
//	}
func Confirm(message string, defaultYes bool) bool {
	return confirm(os.Stdin, message, defaultYes)
}

func confirm(r io.Reader, message string, defaultYes bool) bool {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}
	fmt.Print(promptStyle.Render(message) + " " + hintStyle.Render(hint) + ": ")

	answer, err := bufio.NewReader(r).ReadString('\n')
	if err != nil {
		return defaultYes
	}

	answer = strings.TrimSpace(strings.ToLower(answer))
	if answer == "" {
		return defaultYes
	}
	return answer == "y" || answer == "yes"
}
