// SPDX-License-Identifier: MPL-2.0

package style

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Detect returns the colored styler when w is a terminal and color has
// not been disabled via NO_COLOR, and the plain styler otherwise.
// Buffers and pipes always get the plain styler so captured output
// stays free of escape sequences.
func Detect(w io.Writer) Styler {
	if os.Getenv("NO_COLOR") != "" {
		return Plain{}
	}
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return Plain{}
	}
	return NewLipgloss()
}
