// SPDX-License-Identifier: MPL-2.0

package prompt

type (
	// TextOption adjusts a Text prompt.
	TextOption func(*textOptions)

	textOptions struct {
		allowEmpty bool
	}
)

// AllowEmpty accepts an empty line as a valid answer.
func AllowEmpty() TextOption {
	return func(o *textOptions) { o.allowEmpty = true }
}

// Text prompts until a non-empty line is entered (any line with
// AllowEmpty) and returns the trimmed text.
func (p *Prompter) Text(prompt string, opts ...TextOption) (string, error) {
	var o textOptions
	for _, opt := range opts {
		opt(&o)
	}

	for {
		line, err := p.readLine(prompt)
		if err != nil {
			return "", err
		}
		if line == "" && !o.allowEmpty {
			p.errorf("No puede estar vacío. Escriba algo o '%s'.", p.cancel)
			continue
		}
		return line, nil
	}
}
