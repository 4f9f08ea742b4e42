package main

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"
)

type SelfPlayReport struct {
	Games    int
	AiWins   int
	Draws    int
	AiLosses int
}

func (r *SelfPlayReport) String() string {
	return fmt.Sprintf("games: %d, AI wins: %s, draws: %s, AI losses: %s",
		r.Games,
		PerC(uint64(r.AiWins), uint64(r.Games)),
		PerC(uint64(r.Draws), uint64(r.Games)),
		PerC(uint64(r.AiLosses), uint64(r.Games)))
}

// SelfPlay plays n games of the engine against an opponent that picks
// uniformly random empty cells. The side moving first alternates.
func SelfPlay(ctx context.Context, settings *Settings, n int) (
	*SelfPlayReport, error) {
	if n < 0 {
		return nil, errors.New("number of games is negative")
	}
	if settings == nil {
		settings = NewSettings()
	}
	if settings.Ai == nil || !settings.Ai.AiPiece.IsPlayer() {
		return nil, fmt.Errorf("AI piece: %w", ErrInvalidPiece)
	}
	parallel := 1
	if settings.SelfPlay != nil && settings.SelfPlay.Parallel > 0 {
		parallel = settings.SelfPlay.Parallel
	}

	var mu sync.Mutex
	report := &SelfPlayReport{}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i := 0; i < n; i++ {
		aiFirst := i%2 == 0
		g.Go(func() error {
			outcome, aiPiece, err := playRandomOpponent(ctx, settings, aiFirst)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			report.Games++
			switch outcome {
			case 0:
				report.Draws++
			case aiPiece:
				report.AiWins++
			default:
				report.AiLosses++
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	log.Info().
		Int("games", report.Games).
		Int("ai-wins", report.AiWins).
		Int("draws", report.Draws).
		Int("ai-losses", report.AiLosses).
		Msg("self-play-done")
	return report, nil
}

func playRandomOpponent(ctx context.Context, settings *Settings,
	aiFirst bool) (outcome, aiPiece Piece, err error) {
	aiPiece = settings.Ai.AiPiece
	first := aiPiece
	if !aiFirst {
		first = aiPiece.Opponent()
	}
	game, err := NewGame(settings, first)
	if err != nil {
		return InvalidPiece, aiPiece, err
	}
	defer game.TearDown()

	for !game.IsTerminal() {
		if err = ctx.Err(); err != nil {
			return InvalidPiece, aiPiece, err
		}
		if game.NextTurn() == aiPiece {
			_, err = game.PlaceByAi()
		} else {
			empties := game.Board.EmptyPositions()
			err = game.PlaceByUser(empties[frand.Intn(len(empties))])
		}
		if err != nil {
			return InvalidPiece, aiPiece, err
		}
	}
	log.Debug().
		Bool("ai-first", aiFirst).
		Stringer("outcome", game.Outcome).
		Interface("history", game.History).
		Msg("self-play-game")
	return game.Outcome, aiPiece, nil
}
