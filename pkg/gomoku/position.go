package gomoku

import "fmt"

// Board cell address, see InvalidPosition for the "unset" value
type Position struct {
	Line   int
	Column int
}

func NewPosition(line, column int) Position {
	return Position{Line: line, Column: column}
}

func (p Position) Valid() bool {
	return p.Line >= 0 && p.Line < LineCount && p.Column >= 0 && p.Column < ColumnCount
}

// Whether the position lies inside the area, borders included
func (p Position) In(area Area) bool {
	return p.Line >= area.StartLine && p.Line <= area.EndLine &&
		p.Column >= area.StartColumn && p.Column <= area.EndColumn
}

// Distance to other position: exact along a line or a column,
// integer euclidean distance otherwise
func (p Position) DistanceTo(other Position) int {
	dl := abs(p.Line - other.Line)
	dc := abs(p.Column - other.Column)

	switch {
	case dl == 0:
		return dc
	case dc == 0:
		return dl
	default:
		return ISqrt(dl*dl + dc*dc)
	}
}

// Position 'step' cells away in the given direction, negative step walks backwards.
// The result may be off the board.
func (p Position) Neighbor(direction Direction, step int) Position {
	dl, dc := direction.Delta()
	return Position{Line: p.Line + dl*step, Column: p.Column + dc*step}
}

// Row-major index of the position, -1 if invalid
func (p Position) Index() int {
	if !p.Valid() {
		return -1
	}
	return p.Line*ColumnCount + p.Column
}

// Column letter and 1-based line number, like "H8"
func (p Position) Notation() string {
	if !p.Valid() {
		return "<invalid position>"
	}
	return fmt.Sprintf("%c%d", 'A'+p.Column, p.Line+1)
}

func (p Position) String() string {
	if p.Valid() {
		return fmt.Sprintf("(%d,%d:%s)", p.Line, p.Column, p.Notation())
	}
	return fmt.Sprintf("(%d,%d)", p.Line, p.Column)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
