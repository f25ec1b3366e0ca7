package gomoku

import "strings"

// Player mark, the zero value is "no mark"
type Marker int8

const (
	NoMarker Marker = 0
	X        Marker = 1
	O        Marker = -1
)

var Markers = [2]Marker{X, O}

func (m Marker) Opponent() Marker {
	return -m
}

// X is the maximizing side of the search
func (m Marker) MaxTurn() bool {
	return m == X
}

// +1 for X, -1 for O, 0 for no mark
func (m Marker) Sign() int {
	return int(m)
}

func (m Marker) Valid() bool {
	return m == X || m == O
}

func (m Marker) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return "-"
	}
}

func ParseMarker(s string) (Marker, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return X, nil
	case "O":
		return O, nil
	}
	return NoMarker, &UnknownMarkerError{Input: s}
}
