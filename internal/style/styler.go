// SPDX-License-Identifier: MPL-2.0

package style

import "github.com/charmbracelet/lipgloss"

// Message glyphs, shared by every Styler implementation so scripted
// consumers see the same output shape with or without color.
const (
	glyphOK    = "✔ "
	glyphError = "✖ "
	glyphWarn  = "⚠ "
	glyphInfo  = "ℹ "
)

// Color palette for dark terminal backgrounds.
const (
	// ColorTitle is magenta - used for section titles.
	ColorTitle = lipgloss.Color("#C678DD")

	// ColorOK is green - used for success messages.
	ColorOK = lipgloss.Color("#10B981")

	// ColorError is red - used for rejection and failure messages.
	ColorError = lipgloss.Color("#EF4444")

	// ColorWarn is amber - used for warnings.
	ColorWarn = lipgloss.Color("#F59E0B")

	// ColorInfo is cyan - used for informational messages.
	ColorInfo = lipgloss.Color("#22D3EE")
)

// Styler renders user-facing messages. Implementations must only
// decorate the text; the message content is fixed by the caller.
type Styler interface {
	// Title renders a section title.
	Title(msg string) string
	// OK renders a success message.
	OK(msg string) string
	// Error renders a rejection or failure message.
	Error(msg string) string
	// Warn renders a warning message.
	Warn(msg string) string
	// Info renders an informational message.
	Info(msg string) string
}

// Lipgloss is the colored Styler built on charmbracelet/lipgloss.
type Lipgloss struct {
	title lipgloss.Style
	ok    lipgloss.Style
	err   lipgloss.Style
	warn  lipgloss.Style
	info  lipgloss.Style
}

// NewLipgloss returns a colored styler using the package palette.
func NewLipgloss() *Lipgloss {
	return &Lipgloss{
		title: lipgloss.NewStyle().Bold(true).Foreground(ColorTitle),
		ok:    lipgloss.NewStyle().Bold(true).Foreground(ColorOK),
		err:   lipgloss.NewStyle().Bold(true).Foreground(ColorError),
		warn:  lipgloss.NewStyle().Bold(true).Foreground(ColorWarn),
		info:  lipgloss.NewStyle().Bold(true).Foreground(ColorInfo),
	}
}

// Title implements Styler.
func (s *Lipgloss) Title(msg string) string { return s.title.Render(msg) }

// OK implements Styler.
func (s *Lipgloss) OK(msg string) string { return s.ok.Render(glyphOK + msg) }

// Error implements Styler.
func (s *Lipgloss) Error(msg string) string { return s.err.Render(glyphError + msg) }

// Warn implements Styler.
func (s *Lipgloss) Warn(msg string) string { return s.warn.Render(glyphWarn + msg) }

// Info implements Styler.
func (s *Lipgloss) Info(msg string) string { return s.info.Render(glyphInfo + msg) }

// Plain is the no-op Styler: same glyphs, no decoration.
type Plain struct{}

// Title implements Styler.
func (Plain) Title(msg string) string { return msg }

// OK implements Styler.
func (Plain) OK(msg string) string { return glyphOK + msg }

// Error implements Styler.
func (Plain) Error(msg string) string { return glyphError + msg }

// Warn implements Styler.
func (Plain) Warn(msg string) string { return glyphWarn + msg }

// Info implements Styler.
func (Plain) Info(msg string) string { return glyphInfo + msg }
