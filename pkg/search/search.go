package search

import (
	"github.com/quenio/gomoku/pkg/gomoku"
)

// Resets the limiter and the counters, doesn't start the search
func (t *Tree) setupSearch() {
	t.Limiter.Reset()
	t.stats = SearchStats{Best: gomoku.InvalidPosition}
	t.interrupted = false
	clear(t.pvLength)
}

// Best position for marker to play next. Every root child inside the focus
// area is searched with minimax and alpha-beta pruning; X maximizes and O
// minimizes, ties keep the earlier child in move order. Returns
// ErrNoLegalMoves when the game is over or the focus area is full.
func (t *Tree) BestPositionFor(marker gomoku.Marker) (gomoku.Position, error) {
	t.setupSearch()

	var children []Node
	if !t.root.IsGameOver() {
		children = t.root.ChildrenFor(marker, t.focus)
	}

	event := t.logger.Debug()
	if deadline, ok := t.Limiter.Deadline(); ok {
		event = event.Time("deadline", deadline)
	}
	event.
		Stringer("marker", marker).
		Stringer("focus", t.focus).
		Int("children", len(children)).
		Int("depth", t.DeepestLevel()).
		Msg("starting search")

	if len(children) == 0 {
		t.finish(true)
		return gomoku.InvalidPosition, ErrNoLegalMoves
	}

	alpha, beta := -infinity, infinity
	bestScore := -infinity
	completed := true

	for i, child := range children {
		// always evaluate the first child, so there is an answer
		if i > 0 && !t.Limiter.Ok(t.stats.Nodes) {
			completed = false
			break
		}

		nodes := t.stats.Nodes
		score := t.minMax(child, marker, alpha, beta)
		if t.interrupted && i > 0 {
			// partial result of an unfinished subtree
			completed = false
			break
		}

		relative := score.For(marker)
		better := relative > bestScore
		if better {
			bestScore = relative
			t.stats.Best = child.played
			t.stats.Score = relative
			t.updatePv(0, child.played)
		}

		if marker.MaxTurn() {
			alpha = max(alpha, score)
		} else {
			beta = min(beta, score)
		}

		t.logger.Trace().
			Stringer("position", child.played).
			Int64("score", int64(relative)).
			Uint32("nodes", t.stats.Nodes-nodes).
			Msg("root move")

		t.listener.invokeRootMove(RootMoveStats{
			Index:    i,
			Position: child.played,
			Score:    relative,
			Nodes:    t.stats.Nodes - nodes,
			Best:     better,
		})

		if t.interrupted {
			completed = false
			break
		}
	}

	t.finish(completed)
	return t.stats.Best, nil
}

// Minimax value of node, X-positive. 'marker' played the node's position,
// its opponent moves next.
func (t *Tree) minMax(node Node, marker gomoku.Marker, alpha, beta gomoku.Score) gomoku.Score {
	level := node.level
	t.stats.Nodes++
	t.stats.MaxLevel = max(t.stats.MaxLevel, level)
	t.pvLength[level] = level

	if level >= t.DeepestLevel() || node.IsGameOver() {
		t.stats.Leaves++
		return node.Score()
	}
	if !t.Limiter.Ok(t.stats.Nodes) {
		t.interrupted = true
		t.stats.Leaves++
		return node.Score()
	}

	mover := marker.Opponent()
	children := node.ChildrenFor(mover, t.focus)
	if len(children) == 0 {
		t.stats.Leaves++
		return node.Score()
	}

	maxTurn := mover.MaxTurn()
	value := infinity
	if maxTurn {
		value = -infinity
	}

	for _, child := range children {
		score := t.minMax(child, mover, alpha, beta)

		if (maxTurn && score > value) || (!maxTurn && score < value) {
			value = score
			t.updatePv(level, child.played)
		}

		if maxTurn {
			alpha = max(alpha, value)
		} else {
			beta = min(beta, value)
		}

		if t.pruning && alpha >= beta {
			t.stats.Cutoffs++
			break
		}
		if t.interrupted {
			break
		}
	}
	return value
}

// Principal variation at level becomes 'position' followed by the line below it
func (t *Tree) updatePv(level int, position gomoku.Position) {
	t.pvTable[level][level] = position
	next := level + 1
	if next < len(t.pvLength) && t.pvLength[next] > next {
		copy(t.pvTable[level][next:], t.pvTable[next][next:t.pvLength[next]])
		t.pvLength[level] = t.pvLength[next]
	} else {
		t.pvLength[level] = next
	}
}

func (t *Tree) finish(completed bool) {
	t.Limiter.EvaluateStopReason(t.stats.Nodes, completed)

	t.stats.StopReason = t.Limiter.StopReason()
	t.stats.TimeMs = int(t.Limiter.Elapsed())
	t.stats.Nps = uint32(uint64(t.stats.Nodes) * 1000 / uint64(max(t.stats.TimeMs, 1)))
	if t.stats.Best.Valid() {
		t.stats.Pv = append([]gomoku.Position(nil), t.pvTable[0][:t.pvLength[0]]...)
	}

	t.logger.Debug().
		Stringer("best", t.stats.Best).
		Int64("score", int64(t.stats.Score)).
		Uint32("nodes", t.stats.Nodes).
		Uint32("cutoffs", t.stats.Cutoffs).
		Int("ms", t.stats.TimeMs).
		Stringer("stop", t.stats.StopReason).
		Msg("search finished")

	t.listener.invokeStop(t.stats)
}
