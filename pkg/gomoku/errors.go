package gomoku

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange  = errors.New("position out of range")
	ErrIllegalMove = errors.New("illegal move")
	ErrNoWinner    = errors.New("game has no winner")
)

type OutOfRangeError struct {
	Position Position
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("position %v is out of range [A1..%s]",
		e.Position, Position{LineCount - 1, ColumnCount - 1}.Notation())
}

func (e *OutOfRangeError) Unwrap() error {
	return ErrOutOfRange
}

type IllegalMoveError struct {
	Position Position
	Marker   Marker
	// Marker already occupying the position
	Occupant Marker
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("%v cannot play %v: already marked by %v", e.Marker, e.Position, e.Occupant)
}

func (e *IllegalMoveError) Unwrap() error {
	return ErrIllegalMove
}

type UnknownPositionError struct {
	Input string
}

func (e *UnknownPositionError) Error() string {
	return fmt.Sprintf("position %q is unknown", e.Input)
}

type UnknownMarkerError struct {
	Input string
}

func (e *UnknownMarkerError) Error() string {
	return fmt.Sprintf("marker %q is unknown", e.Input)
}
