package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogger sends the global logger to stderr, so it does not mix with
// the board on stdout.
func SetupLogger(settings *LogSettings) error {
	level := zerolog.WarnLevel
	if settings != nil && settings.Level != "" {
		lv, err := zerolog.ParseLevel(settings.Level)
		if err != nil {
			return err
		}
		level = lv
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
	})
	return nil
}
