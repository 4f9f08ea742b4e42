package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/donyori/gorecover"
	"github.com/pkg/profile"
	"github.com/rs/zerolog/log"
)

func main() {
	var failed bool
	err := gorecover.Recover(func() {
		err := body()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			failed = true
		}
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		failed = true
	}
	if failed {
		os.Exit(1)
	}
}

func body() error {
	settingsPath := flag.String("settings", SettingsPath, "settings file")
	selfPlay := flag.Int("selfplay", 0,
		"play this many games against a random opponent and report")
	flag.Parse()
	SettingsPath = *settingsPath

	settings, err := LoadSettings(SettingsPath)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	if settings == nil {
		settings = NewSettings()
		err = StoreSettings(SettingsPath, settings)
		if err != nil {
			// Just warning but not exit.
			fmt.Fprintln(os.Stderr, "Try to store settings to", SettingsPath,
				"but failed. Error:", err)
		}
	}
	if err = SetupLogger(settings.Log); err != nil {
		return err
	}

	if settings.Profile != nil {
		switch settings.Profile.Mode {
		case "":
		case "cpu":
			defer profile.Start(profile.CPUProfile,
				profile.ProfilePath(settings.Profile.Path)).Stop()
		case "mem":
			defer profile.Start(profile.MemProfile,
				profile.ProfilePath(settings.Profile.Path)).Stop()
		default:
			return fmt.Errorf("unknown profile mode %q", settings.Profile.Mode)
		}
	}

	if *selfPlay > 0 {
		report, err := SelfPlay(context.Background(), settings, *selfPlay)
		if err != nil {
			return err
		}
		fmt.Println(report)
		return nil
	}
	return play(settings)
}

func play(settings *Settings) error {
	if settings.Ai == nil {
		return fmt.Errorf("AI piece: %w", ErrInvalidPiece)
	}
	if settings.Io == nil {
		settings.Io = NewSettings().Io
	}
	aiPiece := settings.Ai.AiPiece
	doesClear := settings.Io.DoesClearScreen

	if doesClear {
		ClearScreen(nil)
	}
	PrintWelcome(nil)
	fmt.Println()

	firstMover := settings.Ai.FirstMover
	if firstMover == AskFirst {
		humanFirst, err := AskYesNo(nil, "Do you want to play first?")
		if err != nil {
			return err
		}
		firstMover = AiFirst
		if humanFirst {
			firstMover = HumanFirst
		}
	}
	firstPiece, err := firstMover.FirstPiece(aiPiece)
	if err != nil {
		return err
	}

	game, err := NewGame(settings, firstPiece)
	if err != nil {
		return err
	}
	defer game.TearDown()

	var lastResult *SearchResult
	var lastElapsed time.Duration
	for !game.IsTerminal() {
		if err = printBoard(game, doesClear); err != nil {
			return err
		}
		if lastResult != nil && settings.Io.DoesShowAiSummary {
			PrintAiSummary(nil, *lastResult, lastElapsed)
		}
		if game.NextTurn() == aiPiece {
			startTime := time.Now()
			result, err := game.PlaceByAi()
			if err != nil {
				return err
			}
			lastResult, lastElapsed = &result, time.Since(startTime)
			log.Debug().Stringer("pos", result.Pos).Msg("ai-placed")
			continue
		}
		pos, err := AskForInputPosition(nil, game)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if pos == InvalidPosition {
			// User want to quit the game.
			return nil
		}
		if err = game.PlaceByUser(pos); err != nil {
			return err
		}
		lastResult = nil
	}
	if err = printBoard(game, doesClear); err != nil {
		return err
	}
	if lastResult != nil && settings.Io.DoesShowAiSummary {
		PrintAiSummary(nil, *lastResult, lastElapsed)
	}
	PrintOutcome(nil, game)
	return nil
}

func printBoard(game *Game, doesClear bool) error {
	boardStr, err := PrintBoardToString(&game.Board,
		game.Settings.Io.BoardPrint)
	if err != nil {
		return err
	}
	if doesClear {
		ClearScreen(nil)
	}
	fmt.Println(boardStr)
	fmt.Println()
	return nil
}
