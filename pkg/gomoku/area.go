package gomoku

import "fmt"

// Rectangular region of the board, inclusive on both ends
type Area struct {
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
}

var (
	FullBoard = NewArea(0, 0, LineCount-1, ColumnCount-1)

	// Initial focus window of the AI
	CentralArea = AreaAround(Center, FocusSide)
)

// Create new area, clamped to the board bounds
func NewArea(startLine, startColumn, endLine, endColumn int) Area {
	return Area{
		StartLine:   clamp(startLine, 0, LineCount-1),
		StartColumn: clamp(startColumn, 0, ColumnCount-1),
		EndLine:     clamp(endLine, 0, LineCount-1),
		EndColumn:   clamp(endColumn, 0, ColumnCount-1),
	}
}

// Square area starting at (start, start) with given side length
func NewSquareArea(start, length int) Area {
	return NewArea(start, start, start+length-1, start+length-1)
}

// Square area of given side, centered on the position and clamped to the board
func AreaAround(center Position, side int) Area {
	startLine := center.Line - side/2
	startColumn := center.Column - side/2
	return NewArea(startLine, startColumn, startLine+side-1, startColumn+side-1)
}

func (a Area) Width() int {
	if a.EndColumn < a.StartColumn {
		return 0
	}
	return a.EndColumn - a.StartColumn + 1
}

func (a Area) Height() int {
	if a.EndLine < a.StartLine {
		return 0
	}
	return a.EndLine - a.StartLine + 1
}

func (a Area) SlotCount() int {
	return a.Width() * a.Height()
}

func (a Area) Contains(p Position) bool {
	return p.In(a)
}

// Whether the position lies on the outermost ring of the area
func (a Area) OnBorder(p Position) bool {
	if !p.In(a) {
		return false
	}
	return p.Line == a.StartLine || p.Line == a.EndLine ||
		p.Column == a.StartColumn || p.Column == a.EndColumn
}

// Positions of the area in row-major order
func (a Area) Positions() []Position {
	positions := make([]Position, 0, a.SlotCount())
	for line := a.StartLine; line <= a.EndLine; line++ {
		for column := a.StartColumn; column <= a.EndColumn; column++ {
			positions = append(positions, Position{Line: line, Column: column})
		}
	}
	return positions
}

func (a Area) String() string {
	return fmt.Sprintf("[%s..%s]",
		Position{a.StartLine, a.StartColumn}.Notation(),
		Position{a.EndLine, a.EndColumn}.Notation())
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
