package pathdata

import (
	"iter"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
)

// Chunks splits path data into command chunks: a command letter followed by
// everything up to the next command letter.
// Text before the first letter is skipped. An "e" or "E" right after a digit
// or a decimal point is an exponent, not a command.
// The returned sequence is lazy and may be ranged over any number of times.
func Chunks(data string) iter.Seq[string] {
	return func(yield func(string) bool) {
		start := -1
		for i := 0; i < len(data); i++ {
			if !isCommandLetter(data, i) {
				continue
			}

			if start >= 0 && !yield(data[start:i]) {
				return
			}

			start = i
		}

		if start >= 0 {
			yield(data[start:])
		}
	}
}

func isCommandLetter(data string, i int) bool {
	c := data[i]
	if !isLetter(c) {
		return false
	}

	if (c == 'e' || c == 'E') && i > 0 && (isDigit(data[i-1]) || data[i-1] == '.') {
		return false
	}

	return true
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSeparator(r rune) bool {
	switch r {
	case ',', ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}

	return false
}

// splitArgs splits argument text into number tokens.
// Numbers are separated by commas, whitespace, or nothing at all when the next
// number starts with a sign or a second decimal point ("10-20" -> "10", "-20").
// A token that does not start with a number is returned whole so the caller can
// report it.
func splitArgs(s string) []string {
	var tokens []string
	for _, field := range strings.FieldsFunc(s, isSeparator) {
		for field != "" {
			_, n := strconv.ParseFloat([]byte(field))
			if n <= 0 || n >= len(field) {
				tokens = append(tokens, field)
				break
			}

			tokens = append(tokens, field[:n])
			field = field[n:]
		}
	}

	return tokens
}
