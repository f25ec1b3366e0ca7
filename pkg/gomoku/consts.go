package gomoku

// Board geometry
const (
	LineCount   = 15
	ColumnCount = 15
	SlotCount   = LineCount * ColumnCount
)

// Number of consecutive marks needed to win the game
const WinningCount = 5

// Side length of the AI focus window
const FocusSide = WinningCount + 1

var (
	// Middle of the board, the reference point for opening play and scoring
	Center = Position{Line: LineCount / 2, Column: ColumnCount / 2}

	// Sentinel for "off-board or unset"
	InvalidPosition = Position{Line: -1, Column: -1}
)
