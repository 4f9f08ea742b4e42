package main

import "strings"

// FirstMover decides who places the first piece of a game.
type FirstMover int8

const (
	AiFirst FirstMover = iota + 1
	HumanFirst
	AskFirst
)

var firstMoverStrings = [...]string{
	"Unknown",
	"AI",
	"Human",
	"Ask",
}

func ParseFirstMover(s string) FirstMover {
	for i := range firstMoverStrings {
		if strings.EqualFold(s, firstMoverStrings[i]) {
			return FirstMover(i)
		}
	}
	return 0 // Stands for "Unknown".
}

func (fm FirstMover) String() string {
	if fm < AiFirst || fm > AskFirst {
		return firstMoverStrings[0]
	}
	return firstMoverStrings[fm]
}

func (fm FirstMover) MarshalText() ([]byte, error) {
	return []byte(fm.String()), nil
}

func (fm *FirstMover) UnmarshalText(text []byte) error {
	*fm = ParseFirstMover(string(text))
	return nil
}

// FirstPiece returns the piece that moves first, given the AI's piece.
// AskFirst has to be resolved by the caller before.
func (fm FirstMover) FirstPiece(aiPiece Piece) (Piece, error) {
	switch fm {
	case AiFirst:
		return aiPiece, nil
	case HumanFirst:
		return aiPiece.Opponent(), nil
	default:
		return InvalidPiece, ErrUnknownFirstMover
	}
}
