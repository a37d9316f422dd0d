package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUGCSanitizer(t *testing.T) {
	s := NewHTMLSanitizer()

	tests := []struct {
		name        string
		input       string
		contains    string
		notContains string
	}{
		{name: "keeps formatting", input: "<p><strong>Bonjour</strong></p>", contains: "<strong>Bonjour</strong>"},
		{name: "drops script", input: `<p>ok</p><script>alert(1)</script>`, contains: "<p>ok</p>", notContains: "script"},
		{name: "drops event handler", input: `<img src="a.png" onerror="alert(1)">`, notContains: "onerror"},
		{name: "drops javascript url", input: `<a href="javascript:alert(1)">x</a>`, notContains: "javascript"},
		{name: "plain text untouched", input: "Contenu", contains: "Contenu"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Sanitize(tt.input)
			if tt.contains != "" {
				assert.Contains(t, got, tt.contains)
			}
			if tt.notContains != "" {
				assert.NotContains(t, got, tt.notContains)
			}
		})
	}

	assert.Equal(t, "", s.Sanitize(""))
}
