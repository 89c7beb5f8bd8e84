// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestLookupKnownIds(t *testing.T) {
	for _, id := range Ids() {
		i := Lookup(id)
		if i == nil {
			t.Fatalf("Lookup(%d) returned nil for a known id", id)
		}
		if i.Id() != id {
			t.Errorf("Lookup(%d).Id() = %d", id, i.Id())
		}
		if i.MarkdownMsg() == "" {
			t.Errorf("issue %d has no help text", id)
		}
	}
}

func TestLookupUnknownId(t *testing.T) {
	if Lookup(Id(9999)) != nil {
		t.Error("expected nil for unknown id")
	}
}

func TestIdsAreSorted(t *testing.T) {
	ids := Ids()
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Fatalf("Ids() not strictly ascending: %v", ids)
		}
	}
}

func TestRenderUsesMarkdownMessage(t *testing.T) {
	orig := render
	t.Cleanup(func() { render = orig })

	var gotMd, gotStyle string
	render = func(in, stylePath string) (string, error) {
		gotMd, gotStyle = in, stylePath
		return "rendered", nil
	}

	out, err := Lookup(FileNotFoundId).Render("auto")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "rendered" {
		t.Errorf("expected stubbed render output, got %q", out)
	}
	if gotStyle != "auto" {
		t.Errorf("expected style path to be forwarded, got %q", gotStyle)
	}
	if !strings.Contains(gotMd, "Archivo no encontrado") {
		t.Errorf("expected markdown message to be forwarded, got %q", gotMd)
	}
}
