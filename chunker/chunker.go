// Package chunker splits long ruling text into bounded-length segments for
// embedding. Segments never break a token; joining them with single spaces
// reconstructs the whitespace-collapsed token stream.
package chunker

import "strings"

// Split packs whitespace-delimited tokens greedily into segments of at most
// maxLength characters, counting one separator per token. A token that would
// push the running segment past maxLength starts a new segment. Input with
// no tokens yields a single segment of the first maxLength characters.
func Split(text string, maxLength int) []string {
	words := strings.Fields(text)

	var chunks []string
	var current []string
	currentLen := 0

	for _, word := range words {
		wordLen := len(word) + 1
		if currentLen+wordLen > maxLength && len(current) > 0 {
			chunks = append(chunks, strings.Join(current, " "))
			current = []string{word}
			currentLen = wordLen
		} else {
			current = append(current, word)
			currentLen += wordLen
		}
	}
	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, " "))
	}

	if len(chunks) == 0 {
		return []string{Truncate(text, maxLength)}
	}
	return chunks
}

// Truncate caps s at n characters without splitting a UTF-8 sequence.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
