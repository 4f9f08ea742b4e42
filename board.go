package main

import "fmt"

// Board is a 3x3 grid. It is a value type, so assigning it takes a snapshot.
type Board [BoardSize][BoardSize]Piece

// The eight three-in-a-row lines: rows, columns, then both diagonals.
var lines = [...][BoardSize]Position{
	{1, 2, 3},
	{4, 5, 6},
	{7, 8, 9},
	{1, 4, 7},
	{2, 5, 8},
	{3, 6, 9},
	{1, 5, 9},
	{3, 5, 7},
}

func (b *Board) IsEmpty(pos Position) (bool, error) {
	if b == nil {
		return false, ErrNilBoard
	}
	if pos.IsOutOfRange() {
		return false, NewPositionOutOfRangeError(pos.Row(), pos.Col())
	}
	return b[pos.Row()][pos.Col()] == 0, nil
}

// Set overwrites the cell at pos. Whose turn it is is not checked here.
func (b *Board) Set(pos Position, piece Piece) error {
	if b == nil {
		return ErrNilBoard
	}
	if pos.IsOutOfRange() {
		return NewPositionOutOfRangeError(pos.Row(), pos.Col())
	}
	if !piece.IsValid() {
		return ErrInvalidPiece
	}
	b[pos.Row()][pos.Col()] = piece
	return nil
}

func (b *Board) Lookup(pos Position) Piece {
	if b == nil || pos.IsOutOfRange() {
		return InvalidPiece
	}
	return b[pos.Row()][pos.Col()]
}

func (b *Board) IsWinner(piece Piece) bool {
	if b == nil || !piece.IsPlayer() {
		return false
	}
	for i := range lines {
		if b.Lookup(lines[i][0]) == piece &&
			b.Lookup(lines[i][1]) == piece &&
			b.Lookup(lines[i][2]) == piece {
			return true
		}
	}
	return false
}

// Winner returns the piece holding a line, or 0 if nobody does.
func (b *Board) Winner() Piece {
	switch {
	case b.IsWinner(Cross):
		return Cross
	case b.IsWinner(Nought):
		return Nought
	default:
		return 0
	}
}

// IsFull reports whether no empty cell is left.
// A full board is a draw unless IsWinner says otherwise.
func (b *Board) IsFull() bool {
	return b.NumEmpty() == 0
}

func (b *Board) IsGameOver() bool {
	return b.Winner() != 0 || b.IsFull()
}

func (b *Board) NumEmpty() int {
	return b.Count(0)
}

func (b *Board) Count(piece Piece) int {
	if b == nil {
		return 0
	}
	var n int
	for row := range b {
		for col := range b[row] {
			if b[row][col] == piece {
				n++
			}
		}
	}
	return n
}

// EmptyPositions lists the empty cells in row-major order.
func (b *Board) EmptyPositions() []Position {
	if b == nil {
		return nil
	}
	ps := make([]Position, 0, NumPosition)
	for p := MinPosition; p <= MaxPosition; p++ {
		if b.Lookup(p) == 0 {
			ps = append(ps, p)
		}
	}
	return ps
}

// Validate checks that every cell holds a valid piece.
func (b *Board) Validate() error {
	if b == nil {
		return ErrNilBoard
	}
	for row := range b {
		for col := range b[row] {
			if !b[row][col].IsValid() {
				return fmt.Errorf("%w at %v", ErrInvalidPiece,
					Position(row*BoardSize+col+1))
			}
		}
	}
	return nil
}

func (b *Board) String() string {
	s, err := PrintBoardToString(b, nil)
	if err != nil {
		return "<invalid board>"
	}
	return s
}
