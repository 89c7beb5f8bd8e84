// SPDX-License-Identifier: MPL-2.0

package prompt

import (
	"strings"
	"testing"
)

func TestTextRejectsEmptyUntilValid(t *testing.T) {
	t.Parallel()

	p, out := newTestPrompter("\n   \nhola\n")

	got, err := p.Text("Nombre: ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hola" {
		t.Errorf("expected %q, got %q", "hola", got)
	}
	if n := strings.Count(out.String(), "No puede estar vacío"); n != 2 {
		t.Errorf("expected 2 rejection messages, got %d in %q", n, out.String())
	}
}

func TestTextTrimsWhitespace(t *testing.T) {
	t.Parallel()

	p, _ := newTestPrompter("   Ana María   \n")

	got, err := p.Text("Nombre: ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Ana María" {
		t.Errorf("expected trimmed text, got %q", got)
	}
}

func TestTextAllowEmpty(t *testing.T) {
	t.Parallel()

	p, _ := newTestPrompter("\n")

	got, err := p.Text("Apodo: ", AllowEmpty())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}
