package search

import "github.com/quenio/gomoku/pkg/gomoku"

// Cells of a line through the evaluated position
type window struct {
	forward  int
	backward int
	// consecutive marker cells through the position
	run int
	// marker cells anywhere in the window
	count int
	// the marker run through the position ends on an opponent mark or the edge
	blocked bool
}

// Walks from position in direction over cells that are empty or marked by
// marker, reversing once when blocked, until WinningCount cells are collected.
// The position itself counts as a marker cell. Returns false if the line is
// too short to ever hold a winning run.
func walkWindow(board gomoku.Board, position gomoku.Position, direction gomoku.Direction, marker gomoku.Marker) (window, bool) {
	w := window{run: 1, count: 1}
	open := func(p gomoku.Position) bool {
		return board.EmptyIn(p) || board.MarkedIn(p, marker)
	}

	size := 1
	for step := 1; size < gomoku.WinningCount && open(position.Neighbor(direction, step)); step++ {
		w.forward++
		size++
	}
	for step := -1; size < gomoku.WinningCount && open(position.Neighbor(direction, step)); step-- {
		w.backward++
		size++
	}
	if size < gomoku.WinningCount {
		return w, false
	}

	forwardRun, backwardRun := true, true
	for step := 1; step <= w.forward; step++ {
		marked := board.MarkedIn(position.Neighbor(direction, step), marker)
		if marked {
			w.count++
		}
		forwardRun = forwardRun && marked
		if forwardRun {
			w.run++
		}
	}
	for step := 1; step <= w.backward; step++ {
		marked := board.MarkedIn(position.Neighbor(direction, -step), marker)
		if marked {
			w.count++
		}
		backwardRun = backwardRun && marked
		if backwardRun {
			w.run++
		}
	}
	w.blocked = closedEnd(board, position, direction, marker, open) ||
		closedEnd(board, position, direction.Opposite(), marker, open)
	return w, true
}

// Whether the marker run leaving position in direction stops at a cell
// marker cannot use
func closedEnd(board gomoku.Board, position gomoku.Position, direction gomoku.Direction, marker gomoku.Marker, open func(gomoku.Position) bool) bool {
	step := 1
	for board.MarkedIn(position.Neighbor(direction, step), marker) {
		step++
	}
	return !open(position.Neighbor(direction, step))
}

// Whether w and the opposite direction's window cover the same cells. The
// pair is scored once, by the canonical direction.
func (w window) mirrors(opposite window) bool {
	return w.forward == opposite.backward && w.backward == opposite.forward
}

// Value of a window for the marker that played position: attack when the
// window is its own, block otherwise
func (w window) value(attack bool) gomoku.Score {
	run, count := w.run, w.count
	if attack {
		// a full own run is a win, scored by the utility instead
		run = min(run, gomoku.WinningCount-1)
		count = min(count, gomoku.WinningCount-1)
	}

	strict := gomoku.IPow(gomoku.SingleMark, run)
	mixed := gomoku.IPow(gomoku.SingleMark, count) / gomoku.EmptyPosition
	value := max(strict, mixed)
	if !attack {
		value /= gomoku.SingleMark
	}
	if w.blocked {
		value /= gomoku.Blocked
	}
	return value
}

// X-positive heuristic value of the play at position. Every direction keeps
// its dominant window, attacking or blocking, plus a small bonus for
// playing close to the center. Runs closed at either end are worth a
// quarter.
func evaluate(board gomoku.Board, position gomoku.Position) gomoku.Score {
	slot, ok := board.SlotAt(position)
	if !ok || slot.Empty() {
		return 0
	}
	mover := slot.Marker()

	var total gomoku.Score
	for _, direction := range gomoku.Directions {
		var dominant gomoku.Score
		for _, marker := range gomoku.Markers {
			w, ok := walkWindow(board, position, direction, marker)
			if !ok {
				continue
			}
			if !direction.Canonical() {
				opposite, ok := walkWindow(board, position, direction.Opposite(), marker)
				if ok && w.mirrors(opposite) {
					continue
				}
			}
			dominant = max(dominant, w.value(marker == mover))
		}
		total += dominant
	}

	closeness := max(0, gomoku.LineCount/2-position.DistanceTo(gomoku.Center))
	total += gomoku.CloserToCenter * gomoku.Score(closeness)
	return total.For(mover)
}
