// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"pedir-cli/internal/prompt"
)

func newScriptedPrompter(input string) *prompt.Prompter {
	return prompt.New(prompt.Options{
		Input:  strings.NewReader(input),
		Output: &bytes.Buffer{},
	})
}

func TestAskFormularioComplete(t *testing.T) {
	t.Parallel()

	p := newScriptedPrompter("Ana\n30\n1,75\nmañana\nana@b.com\n20-12345678-6\ns\n")

	a, err := askFormulario(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Nombre != "Ana" {
		t.Errorf("Nombre = %q", a.Nombre)
	}
	if a.Edad != 30 {
		t.Errorf("Edad = %d", a.Edad)
	}
	if a.Altura != 1.75 {
		t.Errorf("Altura = %v", a.Altura)
	}
	if a.Turno != "Mañana" {
		t.Errorf("Turno = %q, want set casing", a.Turno)
	}
	if a.Email != "ana@b.com" {
		t.Errorf("Email = %q", a.Email)
	}
	if a.CUIT != "20-12345678-6" {
		t.Errorf("CUIT = %q", a.CUIT)
	}
	if !a.Confirmado {
		t.Error("expected confirmation")
	}
}

func TestAskFormularioCancelMidway(t *testing.T) {
	t.Parallel()

	// Cancel at the third question; the whole form aborts.
	p := newScriptedPrompter("Ana\n30\ncancelar\n")

	if _, err := askFormulario(p); !errors.Is(err, prompt.ErrCancelled) {
		t.Errorf("expected ErrCancelled, got %v", err)
	}
}
