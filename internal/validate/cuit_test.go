// SPDX-License-Identifier: MPL-2.0

package validate

import "testing"

func TestNormalizeCUIT(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{name: "dashed format", input: "20-12345678-6", want: "20123456786", wantOK: true},
		{name: "plain digits", input: "20123456786", want: "20123456786", wantOK: true},
		{name: "spaces and dots", input: "20. 12345678. 6", want: "20123456786", wantOK: true},
		{name: "too short", input: "123", wantOK: false},
		{name: "too long", input: "201234567861", wantOK: false},
		{name: "empty", input: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := NormalizeCUIT(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("NormalizeCUIT(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("NormalizeCUIT(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCheckDigit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		base string
		want int
	}{
		// 2*5+0*4+1*3+2*2+3*7+4*6+5*5+6*4+7*3+8*2 = 148; 148%11 = 5; 11-5 = 6.
		{name: "regular digit", base: "2012345678", want: 6},
		// Sum 0 gives 11-0 = 11, which maps to 0.
		{name: "eleven maps to zero", base: "0000000000", want: 0},
		// 2*5+1*2 = 12; 12%11 = 1; 11-1 = 10, which maps to 9.
		{name: "ten maps to nine", base: "2000000001", want: 9},
		{name: "another base", base: "2700000000", want: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := CheckDigit(tt.base); got != tt.want {
				t.Errorf("CheckDigit(%q) = %d, want %d", tt.base, got, tt.want)
			}
		})
	}
}

func TestCUIT(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "valid with dashes", input: "20-12345678-6", want: true},
		{name: "valid without separators", input: "20123456786", want: true},
		{name: "valid mapped check digit", input: "20000000019", want: true},
		{name: "wrong check digit", input: "20-12345678-5", want: false},
		{name: "wrong length", input: "20-1234567-6", want: false},
		{name: "letters only", input: "no-es-un-cuit", want: false},
		{name: "empty", input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := CUIT(tt.input); got != tt.want {
				t.Errorf("CUIT(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
