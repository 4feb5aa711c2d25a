// internal/report/report.go

// Package report renders pipeline progress, warnings and taxonomy errors
// for humans. All functions write to the supplied writer; nothing here
// touches process-global state.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"daedalus-core/diag"
)

var (
	stageStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#2ECC71"))
	warnStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F1C40F"))
	failStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
)

// Stage prints one pipeline stage header.
func Stage(w io.Writer, name, detail string) {
	fmt.Fprintln(w, stageStyle.Render("· "+name)+"  "+detail)
}

// OK prints a passed check.
func OK(w io.Writer, label, detail string) {
	line := okStyle.Render("ok  ") + " " + label
	if detail != "" {
		line += "  " + dimStyle.Render(detail)
	}
	fmt.Fprintln(w, line)
}

// Skip prints a skipped check.
func Skip(w io.Writer, label, reason string) {
	fmt.Fprintln(w, dimStyle.Render("skip")+" "+label+"  "+dimStyle.Render(reason))
}

// Warn prints a non-fatal warning.
func Warn(w io.Writer, msg string) {
	fmt.Fprintln(w, warnStyle.Render("warning:")+" "+msg)
}

// Fail prints err under label. Taxonomy errors keep their technical details
// and numbered suggestions; other errors print as-is.
func Fail(w io.Writer, label string, err error) {
	fmt.Fprintln(w, failStyle.Render("fail")+" "+label)
	var de *diag.Error
	if !errors.As(err, &de) {
		fmt.Fprintln(w, "     "+err.Error())
		return
	}
	for _, line := range strings.Split(de.Message, "\n") {
		fmt.Fprintln(w, "     "+line)
	}
	if de.Details != "" {
		for _, line := range strings.Split(de.Details, "\n") {
			fmt.Fprintln(w, dimStyle.Render("     "+line))
		}
	}
	for i, s := range de.Suggestions {
		fmt.Fprintf(w, "     %d. %s\n", i+1, s)
	}
}
