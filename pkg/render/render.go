package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/quenio/gomoku/pkg/gomoku"
)

const (
	DefaultXColor = "#E06C75"
	DefaultOColor = "#61AFEF"
)

// Draws boards on a terminal: column letters on top, 1-based line numbers on
// the left, colored markers and the last play highlighted
type Renderer struct {
	out       *termenv.Output
	empty     string
	x         string
	o         string
	xColor    string
	oColor    string
	highlight bool
	profile   *termenv.Profile
}

type Option func(*Renderer)

// Force a color profile, termenv.Ascii gives plain text
func WithProfile(profile termenv.Profile) Option {
	return func(r *Renderer) {
		r.profile = &profile
	}
}

func WithGlyphs(empty, x, o string) Option {
	return func(r *Renderer) {
		r.empty, r.x, r.o = empty, x, o
	}
}

// Hex colors of the X and O markers
func WithColors(x, o string) Option {
	return func(r *Renderer) {
		r.xColor, r.oColor = x, o
	}
}

func WithoutHighlight() Option {
	return func(r *Renderer) {
		r.highlight = false
	}
}

func New(w io.Writer, opts ...Option) *Renderer {
	r := &Renderer{
		empty:     ".",
		x:         "X",
		o:         "O",
		xColor:    DefaultXColor,
		oColor:    DefaultOColor,
		highlight: true,
	}
	for _, opt := range opts {
		opt(r)
	}

	var outOpts []termenv.OutputOption
	if r.profile != nil {
		outOpts = append(outOpts, termenv.WithProfile(*r.profile))
	}
	r.out = termenv.NewOutput(w, outOpts...)
	return r
}

func (r *Renderer) Render(board gomoku.Board) string {
	var sb strings.Builder
	last := board.LastPlayed()

	sb.WriteString("   ")
	for column := 0; column < gomoku.ColumnCount; column++ {
		fmt.Fprintf(&sb, " %c", 'A'+column)
	}
	sb.WriteByte('\n')

	for line := 0; line < gomoku.LineCount; line++ {
		fmt.Fprintf(&sb, "%3d", line+1)
		for column := 0; column < gomoku.ColumnCount; column++ {
			position := gomoku.NewPosition(line, column)
			slot, _ := board.SlotAt(position)
			sb.WriteByte(' ')
			sb.WriteString(r.slot(slot, r.highlight && position == last))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (r *Renderer) slot(slot gomoku.Slot, last bool) string {
	switch slot.Marker() {
	case gomoku.X:
		return r.marker(r.x, r.xColor, last)
	case gomoku.O:
		return r.marker(r.o, r.oColor, last)
	default:
		return r.out.String(r.empty).Faint().String()
	}
}

func (r *Renderer) marker(glyph, color string, last bool) string {
	style := r.out.String(glyph).Foreground(r.out.Color(color)).Bold()
	if last {
		style = style.Reverse()
	}
	return style.String()
}

// Writes the rendered board to the output
func (r *Renderer) Print(board gomoku.Board) error {
	_, err := io.WriteString(r.out, r.Render(board))
	return err
}

// One-line summary of a play, e.g. "X played H8"
func (r *Renderer) Play(marker gomoku.Marker, position gomoku.Position) string {
	glyph, color := r.x, r.xColor
	if marker == gomoku.O {
		glyph, color = r.o, r.oColor
	}
	return fmt.Sprintf("%s played %s", r.marker(glyph, color, false), position.Notation())
}
