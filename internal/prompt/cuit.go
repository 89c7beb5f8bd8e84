// SPDX-License-Identifier: MPL-2.0

package prompt

import "pedir-cli/internal/validate"

// CUIT prompts until the answer carries eleven digits with a correct
// verification digit (see validate.CUIT). The value is returned as
// typed, separators included.
func (p *Prompter) CUIT(prompt string) (string, error) {
	for {
		line, err := p.readLine(prompt)
		if err != nil {
			return "", err
		}
		if validate.CUIT(line) {
			return line, nil
		}
		p.errorf("CUIT/CUIL inválido. Revise el formato y el dígito verificador.")
	}
}
