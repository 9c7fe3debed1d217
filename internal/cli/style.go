package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

func success(format string, args ...any) {
	fmt.Fprintln(os.Stderr, successStyle.Render(fmt.Sprintf(format, args...)))
}

func fail(format string, args ...any) {
	fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf(format, args...)))
}

func info(format string, args ...any) {
	fmt.Fprintln(os.Stderr, infoStyle.Render(fmt.Sprintf(format, args...)))
}
