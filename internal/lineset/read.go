// SPDX-License-Identifier: MPL-2.0

package lineset

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"strings"

	"pedir-cli/internal/issue"
)

// ReadLines reads the whole UTF-8 text file at path and returns its
// lines in order. When trim is true each line is stripped of
// surrounding whitespace. The file handle is released before
// returning, on every path.
//
// A missing file is distinguishable from other I/O failures: the
// returned error wraps fs.ErrNotExist, so errors.Is(err,
// fs.ErrNotExist) holds only in that case.
func ReadLines(path string, trim bool) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, issue.NewErrorContext().
				WithOperation("leer archivo").
				WithResource(path).
				WithSuggestion("Verifique que la ruta sea correcta").
				WithSuggestion("Compruebe que el archivo exista y sea legible").
				Wrap(err).
				BuildError()
		}
		return nil, issue.WrapWithContext(err, "leer archivo", path)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if trim {
			line = strings.TrimSpace(line)
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, issue.WrapWithContext(err, "leer archivo", path)
	}

	return lines, nil
}
