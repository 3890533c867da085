// Package ui renders human-readable command output.
package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

var (
	styleBanner  = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true) // cyan
	styleWarn    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))            // yellow
	styleOK      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))            // green
	styleBad     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))             // red
	styleInfo    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))            // blue
	styleHeading = lipgloss.NewStyle().Bold(true)
	styleDim     = lipgloss.NewStyle().Faint(true)
	styleValue   = lipgloss.NewStyle().Foreground(lipgloss.Color("13")) // magenta
)

// Printer writes styled lines. With color off every style renders as plain
// text.
type Printer struct {
	w           io.Writer
	renderer    *lipgloss.Renderer
	interactive bool
}

// NewPrinter returns a printer for w. Color is used only when enabled is true
// and w is a terminal. Decoration such as the banner box is reserved for
// terminals so piped output stays line oriented.
func NewPrinter(w io.Writer, enabled bool) *Printer {
	r := lipgloss.NewRenderer(w)
	interactive := IsTerminal(w)
	if !enabled || !interactive {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{w: w, renderer: r, interactive: interactive}
}

// Interactive reports whether the printer writes to a terminal
func (p *Printer) Interactive() bool {
	return p.interactive
}

// IsTerminal reports whether w is a file attached to a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (p *Printer) style(s lipgloss.Style) lipgloss.Style {
	return s.Renderer(p.renderer)
}
