package search

import (
	"context"
	"fmt"

	"github.com/quenio/gomoku/pkg/gomoku"
	"github.com/rs/zerolog"
)

// Depth limited minimax search with alpha-beta pruning, restricted to a
// focus area of the board
type Tree struct {
	Limiter  LimiterLike
	root     Node
	focus    gomoku.Area
	listener StatsListener
	logger   zerolog.Logger
	pruning  bool

	stats       SearchStats
	interrupted bool
	// triangular principal variation table, indexed by level
	pvTable  [][]gomoku.Position
	pvLength []int
}

// Create new tree rooted at board. Children are generated only inside focus,
// and no node deeper than deepestLevel is expanded.
func NewTree(board gomoku.Board, focus gomoku.Area, deepestLevel int, opts ...Option) *Tree {
	tree := &Tree{
		Limiter: LimiterLike(NewLimiter()),
		root:    NewRootNode(board),
		focus:   focus,
		logger:  zerolog.Nop(),
		pruning: true,
	}

	for _, opt := range opts {
		opt(tree)
	}

	depth := min(max(deepestLevel, 1), MaxDepth)
	tree.Limiter.Limits().SetDepth(depth)

	tree.pvTable = make([][]gomoku.Position, depth+1)
	for level := range tree.pvTable {
		tree.pvTable[level] = make([]gomoku.Position, depth+1)
	}
	tree.pvLength = make([]int, depth+1)
	return tree
}

func (t *Tree) Root() Node {
	return t.root
}

func (t *Tree) Focus() gomoku.Area {
	return t.focus
}

func (t *Tree) DeepestLevel() int {
	return t.Limiter.Limits().Depth
}

// Adds a context to the limiter, enabling cancellation through it
func (t *Tree) SetContext(ctx context.Context) {
	t.Limiter.SetContext(ctx)
}

// Stop a running search, the best position found so far is returned
func (t *Tree) Stop() {
	t.Limiter.SetStop(true)
}

// Stats of the last search
func (t *Tree) Stats() SearchStats {
	return t.stats
}

// Principal variation of the last search, starting with the best position
func (t *Tree) Pv() []gomoku.Position {
	return t.stats.Pv
}

func (t *Tree) StopReason() StopReason {
	return t.Limiter.StopReason()
}

func (t *Tree) String() string {
	return fmt.Sprintf("Tree{root=%v focus=%v depth=%d pruning=%v}", t.root, t.focus, t.DeepestLevel(), t.pruning)
}
