package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitSingleChunk(t *testing.T) {
	chunks := Split("acórdão do tribunal", 100)
	assert.Equal(t, []string{"acórdão do tribunal"}, chunks)
}

func TestSplitTinyLimit(t *testing.T) {
	// Every word plus its separator exceeds the limit, so each word
	// becomes its own chunk
	chunks := Split("a b c d e", 3)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, chunks)
}

func TestSplitBoundary(t *testing.T) {
	// "aa bb" costs 3+3=6; "cc" would push past 6, so it starts chunk two
	chunks := Split("aa bb cc", 6)
	assert.Equal(t, []string{"aa bb", "cc"}, chunks)
}

func TestSplitNeverBreaksWords(t *testing.T) {
	text := "improcedente apelação revista confirmada"
	for _, max := range []int{5, 10, 16, 30} {
		for _, chunk := range Split(text, max) {
			for _, word := range strings.Fields(chunk) {
				assert.Contains(t, strings.Fields(text), word, "maxLength=%d", max)
			}
		}
	}
}

func TestSplitReconstruction(t *testing.T) {
	text := "  Acordam   os juízes\t\tda 2ª secção\n cível do Supremo  "
	want := strings.Join(strings.Fields(text), " ")

	for _, max := range []int{4, 8, 15, 64} {
		chunks := Split(text, max)
		assert.Equal(t, want, strings.Join(chunks, " "), "maxLength=%d", max)
	}
}

func TestSplitEmptyInput(t *testing.T) {
	assert.Equal(t, []string{""}, Split("", 10))
	// Whitespace-only input falls back to the raw text, truncated
	assert.Equal(t, []string{"   \n\t "}, Split("   \n\t ", 10))
}

func TestSplitNoTokensLongText(t *testing.T) {
	// Whitespace-only input has no tokens; the fallback truncates raw text
	chunks := Split("          ", 4)
	require.Len(t, chunks, 1)
	assert.Equal(t, "    ", chunks[0])
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abcdef", 3))
	assert.Equal(t, "abc", Truncate("abc", 10))
	assert.Equal(t, "", Truncate("abc", 0))
	assert.Equal(t, "", Truncate("abc", -1))
}

func TestTruncateUTF8Safe(t *testing.T) {
	// Counting runes, not bytes: never cuts inside a multibyte sequence
	s := "acórdão"
	assert.Equal(t, "acó", Truncate(s, 3))
	assert.Equal(t, s, Truncate(s, 7))
}
