package htmlutil

import (
	"strings"

	"github.com/k3a/html2text"
)

// ToText converts HTML to plain text, decoding entities and dropping tags.
func ToText(s string) string {
	return html2text.HTML2Text(s)
}

// Lines converts HTML to text and returns its non-blank lines, trimmed.
func Lines(s string) []string {
	var out []string
	for _, line := range strings.Split(ToText(s), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
