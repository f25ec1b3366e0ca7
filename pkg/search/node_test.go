package search

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/quenio/gomoku/pkg/gomoku"
)

func pos(line, column int) gomoku.Position {
	return gomoku.NewPosition(line, column)
}

// Board with the given plays, alternating markers starting with 'first'
func boardOf(t testing.TB, first gomoku.Marker, positions ...gomoku.Position) gomoku.Board {
	t.Helper()
	board := gomoku.NewBoard()
	marker := first
	for _, p := range positions {
		next, err := board.Play(p, marker)
		if err != nil {
			t.Fatalf("Play(%v, %v): %v", p, marker, err)
		}
		board = next
		marker = marker.Opponent()
	}
	return board
}

func TestRootNode(t *testing.T) {
	root := NewRootNode(gomoku.NewBoard())
	if root.PlayedPosition() != gomoku.Center || root.Level() != 0 {
		t.Errorf("fresh root played=%v level=%d", root.PlayedPosition(), root.Level())
	}
	if root.HeuristicScore() != 0 {
		t.Errorf("fresh root heuristic=%v, want=0", root.HeuristicScore())
	}

	root = NewRootNode(boardOf(t, gomoku.X, pos(3, 3)))
	if root.PlayedPosition() != pos(3, 3) {
		t.Errorf("root played=%v, want=%v", root.PlayedPosition(), pos(3, 3))
	}
}

func TestChildrenOrdering(t *testing.T) {
	root := NewRootNode(boardOf(t, gomoku.X, pos(7, 7)))
	area := gomoku.AreaAround(pos(7, 7), 5)
	children := root.ChildrenFor(gomoku.O, area)

	if len(children) != area.SlotCount()-1 {
		t.Fatalf("children=%d, want=%d", len(children), area.SlotCount()-1)
	}

	for i, child := range children {
		if child.Level() != 1 {
			t.Errorf("child %d level=%d, want=1", i, child.Level())
		}
		if !child.Board().MarkedIn(child.PlayedPosition(), gomoku.O) {
			t.Errorf("child %d: %v not marked by O", i, child.PlayedPosition())
		}
		if root.Board().MarkedCount() != 1 {
			t.Fatal("expanding changed the parent board")
		}
		if i == 0 {
			continue
		}

		prev := children[i-1].PlayedPosition()
		cur := child.PlayedPosition()
		dPrev, dCur := prev.DistanceTo(root.PlayedPosition()), cur.DistanceTo(root.PlayedPosition())
		if dPrev > dCur || (dPrev == dCur && prev.Index() > cur.Index()) {
			t.Errorf("child %d (%v, d=%d) ordered after %v (d=%d)", i, cur, dCur, prev, dPrev)
		}
	}

	if first := children[0].PlayedPosition(); first != pos(6, 6) {
		t.Errorf("first child=%v, want=%v", first, pos(6, 6))
	}
}

func TestUtilityScore(t *testing.T) {
	live := NewRootNode(boardOf(t, gomoku.X, pos(7, 7), pos(0, 0)))
	if _, err := live.UtilityScore(); !errors.Is(err, ErrNotTerminal) {
		t.Errorf("UtilityScore err=%v, want=%v", err, ErrNotTerminal)
	}

	for _, winner := range gomoku.Markers {
		board := gomoku.NewBoard()
		for column := 0; column < gomoku.WinningCount; column++ {
			board = board.MustPlay(pos(2, column+4), winner)
		}
		node := NewRootNode(board)
		score, err := node.UtilityScore()
		if err != nil {
			t.Fatalf("UtilityScore: %v", err)
		}
		if score != gomoku.Win.For(winner) {
			t.Errorf("%v wins: utility=%v, want=%v", winner, score, gomoku.Win.For(winner))
		}
		if node.ScoreFor(winner) != gomoku.Win || node.ScoreFor(winner.Opponent()) != -gomoku.Win {
			t.Errorf("%v wins: ScoreFor=%v/%v", winner, node.ScoreFor(winner), node.ScoreFor(winner.Opponent()))
		}
	}
}

func TestScoreForSymmetry(t *testing.T) {
	node := NewRootNode(boardOf(t, gomoku.X, pos(7, 7), pos(7, 8), pos(6, 6)))
	if node.ScoreFor(gomoku.X) != node.Score() || node.ScoreFor(gomoku.O) != -node.Score() {
		t.Errorf("ScoreFor(X)=%v ScoreFor(O)=%v Score=%v", node.ScoreFor(gomoku.X), node.ScoreFor(gomoku.O), node.Score())
	}
	if node.Score() <= 0 {
		t.Errorf("X just played, score=%v should favor X", node.Score())
	}
}

func TestHeuristicMirrorsMarkers(t *testing.T) {
	plays := []gomoku.Position{pos(7, 7), pos(8, 8), pos(7, 6), pos(9, 9), pos(7, 5)}
	x := NewRootNode(boardOf(t, gomoku.X, plays...))
	o := NewRootNode(boardOf(t, gomoku.O, plays...))

	if x.HeuristicScore() != -o.HeuristicScore() {
		t.Errorf("heuristic not symmetric: X=%v O=%v", x.HeuristicScore(), o.HeuristicScore())
	}
}

func TestHeuristicPrefersLongerRuns(t *testing.T) {
	lone := NewRootNode(boardOf(t, gomoku.X, pos(7, 7)))
	two := NewRootNode(boardOf(t, gomoku.X, pos(7, 6), pos(0, 0), pos(7, 7)))
	three := NewRootNode(boardOf(t, gomoku.X, pos(7, 5), pos(0, 0), pos(7, 6), pos(0, 14), pos(7, 7)))

	if !(lone.Score() < two.Score() && two.Score() < three.Score()) {
		t.Errorf("scores lone=%v two=%v three=%v should increase", lone.Score(), two.Score(), three.Score())
	}

	// blocking an open three is worth more than a lone move
	block := NewRootNode(boardOf(t, gomoku.X, pos(7, 5), pos(7, 8), pos(7, 6), pos(0, 0), pos(7, 7)).
		MustPlay(pos(7, 4), gomoku.O))
	loneO := NewRootNode(boardOf(t, gomoku.O, pos(7, 4)))
	if block.ScoreFor(gomoku.O) <= loneO.ScoreFor(gomoku.O) {
		t.Errorf("block=%v should beat lone=%v", block.ScoreFor(gomoku.O), loneO.ScoreFor(gomoku.O))
	}
}

func TestHeuristicRunsThroughPosition(t *testing.T) {
	// X just played (7,7) at the east end of its run on line 7
	tests := []struct {
		name  string
		plays []gomoku.Position
	}{
		{"open three", []gomoku.Position{pos(7, 5), pos(0, 0), pos(7, 6), pos(0, 14), pos(7, 7)}},
		{"west blocked three", []gomoku.Position{pos(7, 5), pos(7, 4), pos(7, 6), pos(0, 0), pos(7, 7)}},
		{"gap two", []gomoku.Position{pos(7, 5), pos(0, 0), pos(7, 7)}},
		{"lone", []gomoku.Position{pos(7, 7)}},
		{"closed three", []gomoku.Position{pos(7, 5), pos(7, 4), pos(7, 6), pos(7, 8), pos(7, 7)}},
	}

	scores := make([]gomoku.Score, len(tests))
	for i, tt := range tests {
		node := NewRootNode(boardOf(t, gomoku.X, tt.plays...))
		scores[i] = node.ScoreFor(gomoku.X)
		t.Logf("%s: %v", tt.name, scores[i])
	}
	for i := 1; i < len(scores); i++ {
		if scores[i-1] <= scores[i] {
			t.Errorf("%s=%v should beat %s=%v", tests[i-1].name, scores[i-1], tests[i].name, scores[i])
		}
	}

	// the blocked run is scored through the window straddling (7,7)
	blocked := boardOf(t, gomoku.X, tests[1].plays...)
	if w, ok := walkWindow(blocked, pos(7, 7), gomoku.West, gomoku.X); !ok || w.run != 3 || !w.blocked {
		t.Errorf("west window=%+v ok=%v, want run 3 and blocked", w, ok)
	}
}

func TestHeuristicWindowsNotCountedTwice(t *testing.T) {
	// O at (7,3) and (7,9) leave exactly five open cells around (7,7), so the
	// East and West walks collect the same window
	board := boardOf(t, gomoku.X, pos(0, 0), pos(7, 3), pos(0, 14), pos(7, 9), pos(7, 7))

	east, _ := walkWindow(board, pos(7, 7), gomoku.East, gomoku.X)
	west, _ := walkWindow(board, pos(7, 7), gomoku.West, gomoku.X)
	if !west.mirrors(east) {
		t.Fatalf("east=%+v west=%+v should cover the same cells", east, west)
	}

	// line 7 scores its X window once (10) and O's East-West leftover (1),
	// six open directions score 10 each, plus 7 for the center
	if score := NewRootNode(board).ScoreFor(gomoku.X); score != 78 {
		t.Errorf("score=%v, want=78", score)
	}
}

func TestHeuristicBound(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for game := 0; game < 50; game++ {
		board := gomoku.NewBoard()
		marker := gomoku.X
		for !board.IsGameOver() {
			empty := board.EmptyPositions()
			board = board.MustPlay(empty[r.Intn(len(empty))], marker)
			marker = marker.Opponent()

			node := NewRootNode(board)
			if node.IsGameOver() {
				break
			}
			if h := node.HeuristicScore(); h >= gomoku.MaxScore || h <= gomoku.MinScore {
				t.Fatalf("heuristic %v out of bounds at %v", h, node.PlayedPosition())
			}
		}
	}
}
