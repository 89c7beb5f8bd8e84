// SPDX-License-Identifier: MPL-2.0

package prompt

import "strings"

// Option prompts until the answer matches one of options,
// case-insensitively. The full option list is displayed before every
// attempt and the match is returned in the casing the caller supplied,
// not the casing the user typed.
func (p *Prompter) Option(prompt string, options []string) (string, error) {
	trimmed := make([]string, len(options))
	for i, o := range options {
		trimmed[i] = strings.TrimSpace(o)
	}

	for {
		p.infof("Opciones válidas: %s", strings.Join(trimmed, ", "))
		line, err := p.readLine(prompt)
		if err != nil {
			return "", err
		}
		for _, o := range trimmed {
			if strings.EqualFold(line, o) {
				return o, nil
			}
		}
		p.errorf("Opción inválida. Intente nuevamente o '%s'.", p.cancel)
	}
}
