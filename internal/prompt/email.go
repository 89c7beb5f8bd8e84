// SPDX-License-Identifier: MPL-2.0

package prompt

import "pedir-cli/internal/validate"

// Email prompts until the answer is a syntactically valid address
// (see validate.Email).
func (p *Prompter) Email(prompt string) (string, error) {
	for {
		line, err := p.readLine(prompt)
		if err != nil {
			return "", err
		}
		if validate.Email(line) {
			return line, nil
		}
		p.errorf("Email inválido. Ej: nombre@dominio.com")
	}
}
