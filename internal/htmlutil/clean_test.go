package htmlutil

import (
	"strings"
	"testing"
)

func TestToText(t *testing.T) {
	got := ToText("<p>Light &amp; time</p>")
	if strings.Contains(got, "<p>") || !strings.Contains(got, "Light & time") {
		t.Errorf("ToText() = %q", got)
	}
}

func TestLines(t *testing.T) {
	got := Lines("<p>first</p>\n<p>second</p>")
	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Errorf("Lines() = %q, want [first second]", got)
	}
	if got := Lines(""); len(got) != 0 {
		t.Errorf("Lines(\"\") = %q, want empty", got)
	}
}
