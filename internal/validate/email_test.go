// SPDX-License-Identifier: MPL-2.0

package validate

import "testing"

func TestEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "simple address", input: "a@b.com", want: true},
		{name: "plus and dots in local part", input: "a.b+c@d.co", want: true},
		{name: "subdomain", input: "nombre@mail.dominio.com.ar", want: true},
		{name: "surrounding whitespace ignored", input: "  a@b.com  ", want: true},
		{name: "missing tld", input: "a@b", want: false},
		{name: "missing local part", input: "@b.com", want: false},
		{name: "missing at sign", input: "ab.com", want: false},
		{name: "one letter tld", input: "a@b.c", want: false},
		{name: "space inside", input: "a b@c.com", want: false},
		{name: "empty", input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Email(tt.input); got != tt.want {
				t.Errorf("Email(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
