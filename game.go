package main

import (
	"errors"
	"fmt"
)

type Game struct {
	Settings *Settings

	History []Position
	Board   Board
	Outcome Piece // The winner once terminal, 0 for a draw.

	Engine *Engine

	firstPiece Piece
}

// NewGame starts a game where firstPiece moves first.
// Call TearDown when done.
func NewGame(settings *Settings, firstPiece Piece) (*Game, error) {
	if settings == nil {
		settings = NewSettings()
	}
	if settings.Ai == nil || !settings.Ai.AiPiece.IsPlayer() {
		return nil, fmt.Errorf("AI piece: %w", ErrInvalidPiece)
	}
	if !firstPiece.IsPlayer() {
		return nil, fmt.Errorf("first piece: %w", ErrInvalidPiece)
	}
	g := &Game{
		Settings:   settings,
		History:    make([]Position, 0, NumPosition),
		Engine:     NewEngine(settings.Ai.AiPiece, settings.Search),
		firstPiece: firstPiece,
	}
	return g, nil
}

func (g *Game) IsTearDown() bool {
	return g == nil || g.Engine == nil
}

func (g *Game) TearDown() {
	if g.Engine != nil {
		g.Engine.Close()
		g.Engine = nil
	}
}

func (g *Game) AiPiece() Piece {
	return g.Settings.Ai.AiPiece
}

func (g *Game) HumanPiece() Piece {
	return g.Settings.Ai.AiPiece.Opponent()
}

func (g *Game) IsTerminal() bool {
	return g.IsTearDown() || g.Board.IsGameOver()
}

func (g *Game) Step() uint {
	return uint(len(g.History))
}

func (g *Game) NextTurn() Piece {
	if g.IsTerminal() {
		return InvalidPiece
	}
	// Step is for current, return value is for next.
	if g.Step()%2 == 0 {
		return g.firstPiece
	}
	return g.firstPiece.Opponent()
}

func (g *Game) PlaceByUser(pos Position) error {
	if g.IsTearDown() {
		panic(errors.New("game is already tear-down"))
	}
	if g.IsTerminal() {
		return ErrGameOver
	}
	if g.NextTurn() != g.HumanPiece() {
		return ErrNotYourTurn
	}
	isEmpty, err := g.Board.IsEmpty(pos)
	if err != nil {
		return err
	}
	if !isEmpty {
		return ErrPositionOccupied
	}
	return g.place(pos, g.HumanPiece())
}

// PlaceByAi searches the full game tree for the AI's move and plays it.
func (g *Game) PlaceByAi() (SearchResult, error) {
	if g.IsTearDown() {
		panic(errors.New("game is already tear-down"))
	}
	if g.IsTerminal() {
		return SearchResult{}, ErrGameOver
	}
	if g.NextTurn() != g.AiPiece() {
		return SearchResult{}, ErrNotYourTurn
	}
	result, err := g.Engine.BestMove(&g.Board, DefaultSearchDepth, true,
		NegInfinity, Infinity)
	if err != nil {
		return SearchResult{}, err
	}
	if result.Pos == InvalidPosition {
		return SearchResult{}, errors.New(
			"cannot find a position to place piece")
	}
	if err = g.place(result.Pos, g.AiPiece()); err != nil {
		return SearchResult{}, err
	}
	return result, nil
}

func (g *Game) place(pos Position, piece Piece) error {
	if err := g.Board.Set(pos, piece); err != nil {
		return err
	}
	g.History = append(g.History, pos)
	g.Outcome = g.Board.Winner()
	return nil
}
