package main

import (
	"errors"
	"testing"
)

func TestNewGameRejectsInvalidPieces(t *testing.T) {
	if _, err := NewGame(nil, InvalidPiece); !errors.Is(err, ErrInvalidPiece) {
		t.Errorf("invalid first piece error = %v", err)
	}
	settings := NewSettings()
	settings.Ai.AiPiece = 0
	if _, err := NewGame(settings, Cross); !errors.Is(err, ErrInvalidPiece) {
		t.Errorf("invalid AI piece error = %v", err)
	}
}

func TestPlaceByUserValidation(t *testing.T) {
	game, err := NewGame(nil, Nought)
	if err != nil {
		t.Fatal(err)
	}
	defer game.TearDown()
	if game.NextTurn() != game.HumanPiece() {
		t.Fatalf("NextTurn = %v, want %v", game.NextTurn(), game.HumanPiece())
	}
	if _, err = game.PlaceByAi(); !errors.Is(err, ErrNotYourTurn) {
		t.Errorf("AI moving on human turn error = %v", err)
	}
	var pore *PositionOutOfRangeError
	if err = game.PlaceByUser(InvalidPosition); !errors.As(err, &pore) {
		t.Errorf("out of range error = %v", err)
	}
	if err = game.PlaceByUser(CenterPosition); err != nil {
		t.Fatal(err)
	}
	if err = game.PlaceByUser(MinPosition); !errors.Is(err, ErrNotYourTurn) {
		t.Errorf("human moving twice error = %v", err)
	}
	result, err := game.PlaceByAi()
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("AI reply %v with value %d", result.Pos, result.Value)
	if err = game.PlaceByUser(result.Pos); !errors.Is(err, ErrPositionOccupied) {
		t.Errorf("occupied error = %v", err)
	}
	if game.Step() != 2 || game.History[0] != CenterPosition ||
		game.History[1] != result.Pos {
		t.Errorf("history = %v", game.History)
	}
	t.Log("\n" + game.Board.String())
}

func TestAiFirstOpensInCorner(t *testing.T) {
	game, err := NewGame(nil, Cross)
	if err != nil {
		t.Fatal(err)
	}
	defer game.TearDown()
	result, err := game.PlaceByAi()
	if err != nil {
		t.Fatal(err)
	}
	if result.Pos != MinPosition || result.Value != DrawEval {
		t.Errorf("opening = %v with value %d, want %v with value %d",
			result.Pos, result.Value, MinPosition, DrawEval)
	}
	if game.Board.Lookup(MinPosition) != game.AiPiece() {
		t.Error("opening was not placed")
	}
}

func TestGameAgainstNaiveHuman(t *testing.T) {
	for _, first := range []Piece{Cross, Nought} {
		game, err := NewGame(nil, first)
		if err != nil {
			t.Fatal(err)
		}
		for !game.IsTerminal() {
			if game.NextTurn() == game.AiPiece() {
				_, err = game.PlaceByAi()
			} else {
				// Always take the first empty cell.
				err = game.PlaceByUser(game.Board.EmptyPositions()[0])
			}
			if err != nil {
				t.Fatal(err)
			}
		}
		if game.Outcome == game.HumanPiece() {
			t.Errorf("first: %v, human won:\n%v", first, &game.Board)
		}
		if game.NextTurn() != InvalidPiece {
			t.Errorf("NextTurn after game over = %v", game.NextTurn())
		}
		if err = game.PlaceByUser(MinPosition); !errors.Is(err, ErrGameOver) {
			t.Errorf("move after game over error = %v", err)
		}
		if _, err = game.PlaceByAi(); !errors.Is(err, ErrGameOver) {
			t.Errorf("AI move after game over error = %v", err)
		}
		t.Logf("first: %v, outcome: %v\n%v", first, game.Outcome, &game.Board)
		game.TearDown()
	}
}

func TestGameWithRootSplit(t *testing.T) {
	settings := NewSettings()
	settings.Search.RootSplit = true
	game, err := NewGame(settings, Cross)
	if err != nil {
		t.Fatal(err)
	}
	defer game.TearDown()
	result, err := game.PlaceByAi()
	if err != nil {
		t.Fatal(err)
	}
	if result.Pos != MinPosition {
		t.Errorf("opening = %v, want %v", result.Pos, MinPosition)
	}
}
