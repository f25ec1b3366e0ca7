package gomoku

import (
	"fmt"
	"strings"
)

// 15x15 grid of slots. Board is a value: Play returns a new board and never
// changes the receiver, so a search can branch from any snapshot without undo.
// The zero value is an empty board.
type Board struct {
	slots      [LineCount][ColumnCount]Slot
	lastPlayed Position
	marked     int
	winner     Marker
}

func NewBoard() Board {
	return Board{}
}

// Position of the last play, InvalidPosition on a fresh board
func (b Board) LastPlayed() Position {
	if b.marked == 0 {
		return InvalidPosition
	}
	return b.lastPlayed
}

func (b Board) MarkedCount() int {
	return b.marked
}

func (b Board) EmptyCount() int {
	return SlotCount - b.marked
}

// Mark position with marker, returns the new board.
// Fails with *OutOfRangeError or *IllegalMoveError and leaves the receiver as is.
func (b Board) Play(position Position, marker Marker) (Board, error) {
	if !position.Valid() {
		return b, &OutOfRangeError{Position: position}
	}
	if !marker.Valid() {
		return b, &UnknownMarkerError{Input: marker.String()}
	}
	slot := b.slots[position.Line][position.Column]
	if slot.Marked() {
		return b, &IllegalMoveError{Position: position, Marker: marker, Occupant: slot.Marker()}
	}

	next := b
	next.slots[position.Line][position.Column].Mark(marker)
	next.lastPlayed = position
	next.marked++
	// A new run of WinningCount must pass through the new mark
	if next.winner == NoMarker && next.runThrough(position, marker) {
		next.winner = marker
	}
	return next, nil
}

// Like Play, panics on error. Useful for building fixed positions.
func (b Board) MustPlay(position Position, marker Marker) Board {
	next, err := b.Play(position, marker)
	if err != nil {
		panic(err)
	}
	return next
}

func (b Board) HasWinner() bool {
	return b.winner != NoMarker
}

func (b Board) Winner() (Marker, error) {
	if b.winner == NoMarker {
		return NoMarker, ErrNoWinner
	}
	return b.winner, nil
}

func (b Board) IsGameOver() bool {
	return b.HasWinner() || b.marked == SlotCount
}

func (b Board) IsDraw() bool {
	return b.IsGameOver() && !b.HasWinner()
}

func (b Board) SlotAt(position Position) (Slot, bool) {
	if !position.Valid() {
		return Slot{}, false
	}
	return b.slots[position.Line][position.Column], true
}

func (b Board) MarkedIn(position Position, marker Marker) bool {
	slot, ok := b.SlotAt(position)
	return ok && slot.MarkedBy(marker)
}

func (b Board) EmptyIn(position Position) bool {
	slot, ok := b.SlotAt(position)
	return ok && slot.Empty()
}

// Both valid, distinct, and either both empty or marked by the same marker
func (b Board) PositionsMatch(left, right Position) bool {
	if !left.Valid() || !right.Valid() || left == right {
		return false
	}
	l := b.slots[left.Line][left.Column]
	r := b.slots[right.Line][right.Column]
	return l.Marker() == r.Marker()
}

// Whether position is in area and every other slot in area is empty
func (b Board) IsClearInAreaForPlay(area Area, position Position) bool {
	if !position.In(area) {
		return false
	}
	for line := area.StartLine; line <= area.EndLine; line++ {
		for column := area.StartColumn; column <= area.EndColumn; column++ {
			if line == position.Line && column == position.Column {
				continue
			}
			if b.slots[line][column].Marked() {
				return false
			}
		}
	}
	return true
}

// Empty positions inside any of the areas (the full board if none given),
// in row-major order
func (b Board) EmptyPositions(areas ...Area) []Position {
	if len(areas) == 0 {
		areas = []Area{FullBoard}
	}

	bounds := areas[0]
	for _, a := range areas[1:] {
		bounds.StartLine = min(bounds.StartLine, a.StartLine)
		bounds.StartColumn = min(bounds.StartColumn, a.StartColumn)
		bounds.EndLine = max(bounds.EndLine, a.EndLine)
		bounds.EndColumn = max(bounds.EndColumn, a.EndColumn)
	}

	positions := make([]Position, 0, bounds.SlotCount())
	for line := bounds.StartLine; line <= bounds.EndLine; line++ {
		for column := bounds.StartColumn; column <= bounds.EndColumn; column++ {
			if b.slots[line][column].Marked() {
				continue
			}
			pos := Position{Line: line, Column: column}
			if inAny(pos, areas) {
				positions = append(positions, pos)
			}
		}
	}
	return positions
}

func inAny(p Position, areas []Area) bool {
	for _, a := range areas {
		if p.In(a) {
			return true
		}
	}
	return false
}

// Number of consecutive marker slots starting next to position, walking in direction
func (b Board) countFrom(position Position, direction Direction, marker Marker) int {
	count := 0
	for step := 1; step < WinningCount; step++ {
		if !b.MarkedIn(position.Neighbor(direction, step), marker) {
			break
		}
		count++
	}
	return count
}

// Whether a run of WinningCount marker slots passes through position
func (b Board) runThrough(position Position, marker Marker) bool {
	for _, d := range Directions[:4] {
		if 1+b.countFrom(position, d, marker)+b.countFrom(position, d.Opposite(), marker) >= WinningCount {
			return true
		}
	}
	return false
}

// Global scan over rows, columns and both diagonal families. Each axis is
// walked in one fixed direction and stops at the first WinningCount run.
func (b Board) scanWinner() Marker {
	// East, South, Southeast, Southwest cover every axis once
	for _, d := range [...]Direction{East, South, Southeast, Southwest} {
		dl, dc := d.Delta()
		for line := 0; line < LineCount; line++ {
			for column := 0; column < ColumnCount; column++ {
				first := b.slots[line][column].Marker()
				if first == NoMarker {
					continue
				}
				// only start at the head of a run
				prev := Position{line - dl, column - dc}
				if b.MarkedIn(prev, first) {
					continue
				}
				run := 1
				for p := (Position{line + dl, column + dc}); b.MarkedIn(p, first); p = p.Neighbor(d, 1) {
					run++
					if run == WinningCount {
						return first
					}
				}
			}
		}
	}
	return NoMarker
}

func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString("   ")
	for column := 0; column < ColumnCount; column++ {
		sb.WriteByte(' ')
		sb.WriteByte(byte('A' + column))
	}
	sb.WriteByte('\n')

	for line := 0; line < LineCount; line++ {
		fmt.Fprintf(&sb, "%3d", line+1)
		for column := 0; column < ColumnCount; column++ {
			sb.WriteByte(' ')
			sb.WriteString(b.slots[line][column].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
