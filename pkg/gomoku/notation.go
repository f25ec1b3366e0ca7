package gomoku

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse a position written as a column letter followed by a 1-based line
// number, e.g. "H8" or "a15". Empty input yields InvalidPosition.
func ParsePosition(s string) (Position, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return InvalidPosition, nil
	}

	r, w := utf8.DecodeRuneInString(s)
	r = unicode.ToUpper(r)
	if r < 'A' || r > 'Z' {
		return InvalidPosition, &UnknownPositionError{Input: s}
	}

	line, err := strconv.Atoi(s[w:])
	if err != nil {
		return InvalidPosition, &UnknownPositionError{Input: s}
	}

	pos := Position{Line: line - 1, Column: int(r - 'A')}
	if !pos.Valid() {
		return InvalidPosition, &OutOfRangeError{Position: pos}
	}
	return pos, nil
}
