package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/quenio/gomoku/pkg/gomoku"
)

func TestRenderPlain(t *testing.T) {
	board := gomoku.NewBoard().
		MustPlay(gomoku.Center, gomoku.X).
		MustPlay(gomoku.NewPosition(0, 14), gomoku.O)

	r := New(&bytes.Buffer{}, WithProfile(termenv.Ascii))
	lines := strings.Split(strings.TrimRight(r.Render(board), "\n"), "\n")

	if len(lines) != gomoku.LineCount+1 {
		t.Fatalf("lines=%d, want=%d", len(lines), gomoku.LineCount+1)
	}
	if want := "    A B C D E F G H I J K L M N O"; lines[0] != want {
		t.Errorf("header=%q, want=%q", lines[0], want)
	}
	if want := "  1 . . . . . . . . . . . . . . O"; lines[1] != want {
		t.Errorf("line 1=%q, want=%q", lines[1], want)
	}
	if want := "  8 . . . . . . . X . . . . . . ."; lines[8] != want {
		t.Errorf("line 8=%q, want=%q", lines[8], want)
	}
	if !strings.HasPrefix(lines[15], " 15 ") {
		t.Errorf("line 15=%q", lines[15])
	}

	// plain rendering matches the board's own text form
	if r.Render(board) != board.String() {
		t.Errorf("Render differs from Board.String:\n%s\n%s", r.Render(board), board.String())
	}
}

func TestRenderGlyphsAndPrint(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, WithProfile(termenv.Ascii), WithGlyphs("+", "x", "o"))
	board := gomoku.NewBoard().MustPlay(gomoku.NewPosition(1, 0), gomoku.X)

	if err := r.Print(board); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(buf.String(), "\n")
	if want := "  2 x + + + + + + + + + + + + + +"; lines[2] != want {
		t.Errorf("line 2=%q, want=%q", lines[2], want)
	}
	if got := r.Play(gomoku.O, gomoku.Center); got != "o played H8" {
		t.Errorf("Play=%q", got)
	}
}

func TestRenderColors(t *testing.T) {
	r := New(&bytes.Buffer{}, WithProfile(termenv.TrueColor))
	board := gomoku.NewBoard().MustPlay(gomoku.Center, gomoku.X)

	out := r.Render(board)
	if !strings.Contains(out, "\x1b[") {
		t.Error("colored output has no escape sequences")
	}

	plain := New(&bytes.Buffer{}, WithProfile(termenv.TrueColor), WithoutHighlight()).Render(board)
	if plain == out {
		t.Error("highlight of the last play had no effect")
	}
}
