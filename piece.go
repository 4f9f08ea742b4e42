package main

import "strings"

type Piece int8

const (
	Cross Piece = 1 << iota
	Nought
	InvalidPiece
)

func ParsePiece(s string) Piece {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "none", "empty", "":
		return 0
	case "cross", "x":
		return Cross
	case "nought", "o":
		return Nought
	default:
		return InvalidPiece
	}
}

// IsPlayer reports whether p is Cross or Nought.
func (p Piece) IsPlayer() bool {
	return p == Cross || p == Nought
}

// IsValid reports whether p may be stored in a cell.
func (p Piece) IsValid() bool {
	return p == 0 || p.IsPlayer()
}

func (p Piece) Opponent() Piece {
	switch p {
	case Cross:
		return Nought
	case Nought:
		return Cross
	default:
		return InvalidPiece
	}
}

func (p Piece) String() string {
	switch p {
	case 0:
		return "None"
	case Cross:
		return "Cross"
	case Nought:
		return "Nought"
	default:
		return "Invalid"
	}
}

func (p Piece) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Piece) UnmarshalText(text []byte) error {
	*p = ParsePiece(string(text))
	return nil
}
