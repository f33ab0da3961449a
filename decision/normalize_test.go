package decision

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDisplay(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", "   \t\n  ", ""},
		{"collapses runs", "Julgo   o  recurso\t improcedente", "Julgo o recurso improcedente"},
		{"non-breaking spaces", "Julgo procedente", "Julgo procedente"},
		{"strips colon prefix", "Decisão: Negar provimento", "Negar provimento"},
		{"strips dash prefix", "Decisão - Negar provimento", "Negar provimento"},
		{"strips en-dash prefix", "Decisão – Negar provimento", "Negar provimento"},
		{"prefix without accent", "Decisao: Procedente", "Procedente"},
		{"strips stacked prefixes", "Decisão: Decisão - Provido", "Provido"},
		{"preserves case", "Julgo Procedente", "Julgo Procedente"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDisplay(tt.in))
		})
	}
}

func TestNormalizeDisplayIdempotent(t *testing.T) {
	inputs := []string{
		"Decisão:  Julgo  o recurso  IMPROCEDENTE ",
		"  PROVIDO  ",
		"Decisão – negar provimento ao recurso",
		"Decisão: Decisão - Provido",
	}
	for _, in := range inputs {
		once := NormalizeDisplay(in)
		assert.Equal(t, once, NormalizeDisplay(once), "normalizing twice must equal normalizing once for %q", in)
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "JULGO PROCEDENTE", Normalize("Decisão:  julgo  procedente "))
	assert.Equal(t, "IMPROCEDENTE", Normalize("improcedente"))
	assert.Equal(t, "PROVIDO", Normalize("Decisão: Decisão - Provido"))
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "NEGADA A REVISÃO", Normalize("negada a revisão"))
}
