package gomoku

import "strconv"

// Evaluation of a board, positive values favor X
type Score int64

const (
	Draw Score = 0

	// Base value of a single mark in a line
	SingleMark Score = 10
	// Divisor for lines with gaps in them
	EmptyPosition Score = 2
	// Divisor applied to lines blocked by the opponent
	Blocked Score = 4
	// Bonus per step closer to the center
	CloserToCenter Score = 1
)

var (
	// Upper bound of any heuristic evaluation
	MaxScore = FullScoreOf(X, SingleMark, WinningCount)
	MinScore = -MaxScore

	// Utility of a won game, strictly above every heuristic value
	Win = IPow(SingleMark, WinningCount+1)
)

// sign(marker) * base^count
func ScoreOf(marker Marker, base Score, count int) Score {
	return Score(marker.Sign()) * IPow(base, count)
}

// Sum of ScoreOf for every count from 1 to count
func FullScoreOf(marker Marker, base Score, count int) Score {
	var total Score
	for k := 1; k <= count; k++ {
		total += ScoreOf(marker, base, k)
	}
	return total
}

// Score seen from the marker's side
func (s Score) For(marker Marker) Score {
	if marker == O {
		return -s
	}
	return s
}

func (s Score) String() string {
	switch s {
	case Win:
		return "+win"
	case -Win:
		return "-win"
	}
	return strconv.FormatInt(int64(s), 10)
}
