package annotations

import (
	"strings"

	"github.com/toyz/acgraph/internal/errors"
)

// scanBalanced returns the text enclosed by the delimiter pair that opens s.
//
// Leading whitespace is skipped. If the first remaining byte is not open, the
// span is empty and ok is true. The scan counts open and close bytes and stops
// as soon as the count returns to zero. When s ends first, depth reports how
// many delimiters were still open and ok is false.
func scanBalanced(s string, open, close byte) (span string, depth int, ok bool) {
	start := 0
	for start < len(s) && isSpace(s[start]) {
		start++
	}
	if start == len(s) || s[start] != open {
		return "", 0, true
	}

	for i := start; i < len(s); i++ {
		switch s[i] {
		case open:
			depth++
		case close:
			depth--
		}
		if depth == 0 {
			return s[start+1 : i], 0, true
		}
	}
	return "", depth, false
}

// splitList turns a list literal body like `"A", "B"` into trimmed names.
// Quotes and comment asterisks are dropped, empty entries are skipped.
func splitList(body string) []string {
	cleaned := strings.NewReplacer(`"`, "", "*", "").Replace(body)
	names := make([]string, 0)
	for _, part := range strings.Split(cleaned, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// locate converts a byte offset in text to a 1-based line and column.
func locate(text string, offset int) errors.SourceLocation {
	if offset > len(text) {
		offset = len(text)
	}
	before := text[:offset]
	line := strings.Count(before, "\n") + 1
	column := offset - strings.LastIndexByte(before, '\n')
	return errors.SourceLocation{Line: line, Column: column}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
