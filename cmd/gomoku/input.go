package main

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/quenio/gomoku/pkg/gomoku"
)

// Reads positions like "H8" from a terminal, one per line
type consoleSource struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newConsoleSource(in io.Reader, out io.Writer) *consoleSource {
	return &consoleSource{scanner: bufio.NewScanner(in), out: out}
}

// Blocks on the reader, ctx is only checked before prompting
func (c *consoleSource) NextPosition(ctx context.Context, _ gomoku.Board, marker gomoku.Marker) (gomoku.Position, error) {
	if err := ctx.Err(); err != nil {
		return gomoku.InvalidPosition, err
	}

	fmt.Fprintf(c.out, "%v to play (e.g. H8): ", marker)
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return gomoku.InvalidPosition, err
		}
		return gomoku.InvalidPosition, io.EOF
	}
	return gomoku.ParsePosition(c.scanner.Text())
}
