package main

import (
	"errors"
	"fmt"
)

type UnknownPositionError struct {
	s string
}

type PositionOutOfRangeError struct {
	row, col int
}

var (
	ErrPositionOccupied  error = errors.New("position is not empty")
	ErrNotYourTurn       error = errors.New("it's not your turn")
	ErrGameOver          error = errors.New("game is over")
	ErrInvalidPiece      error = errors.New("piece is invalid")
	ErrNilBoard          error = errors.New("board is nil")
	ErrNegativeDepth     error = errors.New("search depth is negative")
	ErrUnknownFirstMover error = errors.New("first mover is unknown")
)

func NewUnknownPositionError(s string) error {
	return &UnknownPositionError{s: s}
}

func (upe *UnknownPositionError) Error() string {
	return fmt.Sprintf("position %q is unknown", upe.s)
}

func NewPositionOutOfRangeError(row, col int) error {
	if row >= 0 && row < BoardSize && col >= 0 && col < BoardSize {
		panic(fmt.Errorf("position(row: %d, col: %d) is NOT out of range(0-%d), "+
			"but treat it as an error", row, col, BoardSize-1))
	}
	return &PositionOutOfRangeError{row: row, col: col}
}

func (pore *PositionOutOfRangeError) Error() string {
	return fmt.Sprintf("position is out of range(0-%d), row: %d, col: %d",
		BoardSize-1, pore.row, pore.col)
}
