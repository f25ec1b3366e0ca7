package gomoku

import "fmt"

// Single board cell, marked at most once
type Slot struct {
	marker Marker
}

func (s Slot) Marked() bool {
	return s.marker != NoMarker
}

func (s Slot) Empty() bool {
	return s.marker == NoMarker
}

// Marker of the slot, NoMarker when empty
func (s Slot) Marker() Marker {
	return s.marker
}

func (s Slot) MarkedBy(marker Marker) bool {
	return s.marker != NoMarker && s.marker == marker
}

// Both slots marked by the same marker
func (s Slot) Matches(other Slot) bool {
	return s.Marked() && s.marker == other.marker
}

// Mark the slot, panics if it is already marked or the marker is invalid
func (s *Slot) Mark(marker Marker) {
	if s.Marked() {
		panic(fmt.Sprintf("gomoku: slot already marked by %v", s.marker))
	}
	if !marker.Valid() {
		panic(fmt.Sprintf("gomoku: invalid marker %d", marker))
	}
	s.marker = marker
}

func (s Slot) String() string {
	if s.Empty() {
		return "."
	}
	return s.marker.String()
}
