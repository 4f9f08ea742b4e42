package main

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/donyori/goctpf"
)

type AiSettings struct {
	AiPiece    Piece      `json:"ai_piece,omitempty"`
	FirstMover FirstMover `json:"first_mover,omitempty"`
}

type SearchSettings struct {
	DisablePruning bool                   `json:"disable_pruning,omitempty"`
	RootSplit      bool                   `json:"root_split,omitempty"`
	Worker         *goctpf.WorkerSettings `json:"worker,omitempty"`
}

type BoardPrintSettings struct {
	CrossChar  string `json:"cross_char,omitempty"`
	NoughtChar string `json:"nought_char,omitempty"`
	DoesColor  bool   `json:"does_color"`
}

type IoSettings struct {
	BoardPrint        *BoardPrintSettings `json:"board_print,omitempty"`
	DoesClearScreen   bool                `json:"does_clear_screen"`
	DoesShowAiSummary bool                `json:"does_show_ai_summary"`
}

type LogSettings struct {
	Level string `json:"level,omitempty"`
}

type ProfileSettings struct {
	Mode string `json:"mode,omitempty"` // "", "cpu" or "mem"
	Path string `json:"path,omitempty"`
}

type SelfPlaySettings struct {
	Parallel int `json:"parallel,omitempty"`
}

type Settings struct {
	Ai       *AiSettings       `json:"ai,omitempty"`
	Search   *SearchSettings   `json:"search,omitempty"`
	Io       *IoSettings       `json:"io,omitempty"`
	Log      *LogSettings      `json:"log,omitempty"`
	Profile  *ProfileSettings  `json:"profile,omitempty"`
	SelfPlay *SelfPlaySettings `json:"self_play,omitempty"`
}

func NewSettings() *Settings {
	return &Settings{
		Ai: &AiSettings{
			AiPiece:    Cross,
			FirstMover: AskFirst,
		},
		Search: &SearchSettings{
			Worker: goctpf.NewWorkerSettings(),
		},
		Io: &IoSettings{
			BoardPrint: &BoardPrintSettings{
				CrossChar:  "X",
				NoughtChar: "O",
				DoesColor:  true,
			},
			DoesClearScreen:   true,
			DoesShowAiSummary: true,
		},
		Log: &LogSettings{
			Level: "warn",
		},
		Profile:  &ProfileSettings{},
		SelfPlay: &SelfPlaySettings{Parallel: 4},
	}
}

func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	settings := NewSettings()
	err = json.Unmarshal(data, settings)
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func StoreSettings(path string, settings *Settings) error {
	if settings == nil {
		panic(errors.New("settings is nil"))
	}
	data, err := json.MarshalIndent(settings, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0666)
}
