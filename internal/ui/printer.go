package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes styled probe output to a writer. Commands construct one
// per invocation; tests pass a buffer.
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a Printer. A nil writer means os.Stdout.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{out: w, width: GetTerminalWidth()}
}

// SetWidth overrides the detected terminal width.
func (p *Printer) SetWidth(width int) *Printer {
	p.width = width
	return p
}

// Header prints the probe title box: the probe name in caps and the
// target under it.
func (p *Printer) Header(probe, target string) {
	title := HeaderTitleStyle.Render(strings.ToUpper(probe))
	sub := HeaderTargetStyle.Render(target)

	content := lipgloss.JoinVertical(lipgloss.Left, title, sub)
	box := HeaderBoxStyle.Width(p.width - 2).Render(content)
	fmt.Fprintln(p.out, box)
}

// Body prints the probe result text.
func (p *Printer) Body(text string) {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return
	}
	for _, line := range strings.Split(text, "\n") {
		fmt.Fprintln(p.out, BodyStyle.Render(line))
	}
}

// Success prints the closing success line.
func (p *Printer) Success(message string) {
	fmt.Fprintln(p.out, SuccessTitleStyle.Render(SuccessMarker+" "+message))
}

// Failure prints the closing failure line and the error detail.
func (p *Printer) Failure(message string, err error) {
	fmt.Fprintln(p.out, ErrorTitleStyle.Render(FailureMarker+" "+message))
	if err != nil {
		fmt.Fprintln(p.out, ErrorMessageStyle.Render(err.Error()))
	}
}
