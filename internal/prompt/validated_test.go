// SPDX-License-Identifier: MPL-2.0

package prompt

import (
	"strings"
	"testing"
)

func TestEmailLoopsUntilValid(t *testing.T) {
	t.Parallel()

	p, out := newTestPrompter("a@b\n@b.com\nana@ejemplo.com\n")

	got, err := p.Email("Email: ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ana@ejemplo.com" {
		t.Errorf("expected %q, got %q", "ana@ejemplo.com", got)
	}
	if n := strings.Count(out.String(), "Email inválido"); n != 2 {
		t.Errorf("expected 2 rejection messages, got %d", n)
	}
}

func TestCUITReturnsValueAsTyped(t *testing.T) {
	t.Parallel()

	p, _ := newTestPrompter("20-12345678-6\n")

	got, err := p.CUIT("CUIT: ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Separators are preserved; only validation normalizes.
	if got != "20-12345678-6" {
		t.Errorf("expected value as typed, got %q", got)
	}
}

func TestCUITRejectsBadCheckDigit(t *testing.T) {
	t.Parallel()

	p, out := newTestPrompter("20-12345678-5\n20-12345678-6\n")

	got, err := p.CUIT("CUIT: ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "20-12345678-6" {
		t.Errorf("expected valid CUIT, got %q", got)
	}
	if !strings.Contains(out.String(), "CUIT/CUIL inválido") {
		t.Error("expected rejection message for bad check digit")
	}
}
