// SPDX-License-Identifier: MPL-2.0

package prompt

import "strings"

// Confirm prompts until the user answers yes ("s", "si", "sí") or no
// ("n", "no"), case-insensitively. Any other answer produces a warning
// rather than an error and another attempt.
func (p *Prompter) Confirm(prompt string) (bool, error) {
	for {
		line, err := p.readLine(prompt)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "s", "si", "sí":
			return true, nil
		case "n", "no":
			return false, nil
		}
		p.warnf("Responda 's' o 'n' (o '%s').", p.cancel)
	}
}
