package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeOneLineStripsOscAndNewlines(t *testing.T) {
	input := "\x1b]8;;https://evil\x07click\x1b]8;;\x07\nline\tmore"
	out := SanitizeOneLine(input)

	assert.Equal(t, "click line more", out)
}

func TestSanitizeTextStripsCSIKeepsNewlines(t *testing.T) {
	out := SanitizeText("\x1b[31mred\x1b[0m\nnext")
	assert.Equal(t, "red\nnext", out)
}

func TestSanitizeTextRemovesBidiControls(t *testing.T) {
	out := SanitizeText("safe\u202eexe.txt")
	assert.Equal(t, "safeexe.txt", out)
}

func TestSanitizeTextKeepsAccents(t *testing.T) {
	assert.Equal(t, "Café au lait", SanitizeText("Café au lait"))
	assert.Equal(t, "", SanitizeText(""))
}
