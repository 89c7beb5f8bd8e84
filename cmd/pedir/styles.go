// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"

	"pedir-cli/internal/style"

	"github.com/charmbracelet/lipgloss"
)

// Color palette - shared hex colors for consistent theming across all CLI output.
const (
	// ColorPrimary is magenta - used for titles and primary emphasis.
	ColorPrimary = lipgloss.Color("#C678DD")

	// ColorMuted is gray - used for subtitles and secondary text.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorWarning is amber - used for warnings and attention-needed items.
	ColorWarning = lipgloss.Color("#F59E0B")
)

// Base styles - reusable lipgloss styles built from the color palette.
var (
	// TitleStyle is for primary headers and section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for secondary headers and descriptions.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// WarningStyle is for warning messages.
	WarningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWarning)
)

// stylerFor resolves the configured color scheme to a Styler for w:
// "never" forces plain output, "always" forces color, anything else
// auto-detects from the writer.
func stylerFor(colorScheme string, w io.Writer) style.Styler {
	switch colorScheme {
	case "never":
		return style.Plain{}
	case "always":
		return style.NewLipgloss()
	default:
		return style.Detect(w)
	}
}
