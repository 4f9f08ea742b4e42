package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/logrusorgru/aurora"
)

var stdinScanner *bufio.Scanner = bufio.NewScanner(os.Stdin)

func ReadLine() (string, error) {
	if stdinScanner.Scan() {
		return stdinScanner.Text(), nil
	}
	if err := stdinScanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func AskYesNo(w io.Writer, prompt string) (bool, error) {
	if w == nil {
		w = os.Stdout
	}
	for {
		fmt.Fprint(w, prompt, " (y/n): ")
		input, err := ReadLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(input)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}

// AskForInputPosition returns InvalidPosition if the user wants to quit.
func AskForInputPosition(w io.Writer, game *Game) (Position, error) {
	if w == nil {
		w = os.Stdout
	}
	fmt.Fprint(w, "Turn ", game.Step()/2+1,
		` - Enter the position you want to play, row then column (type "q" or "quit" to exit): `)
	pos := InvalidPosition
	for pos == InvalidPosition {
		input, err := ReadLine()
		if err != nil {
			return InvalidPosition, err
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		inputUpper := strings.ToUpper(input)
		if inputUpper == "Q" || inputUpper == "QUIT" {
			return InvalidPosition, nil
		}
		pos, err = ParsePosition(input)
		if err != nil {
			fmt.Fprintln(w, "Invalid position:", err)
			fmt.Fprint(w, `Please input again(type "q" or "quit" to exit): `)
			pos = InvalidPosition
			continue
		}
		isEmpty, err := game.Board.IsEmpty(pos)
		if err != nil {
			return InvalidPosition, err
		}
		if !isEmpty {
			fmt.Fprintln(w, "Position", pos, "is not empty.")
			fmt.Fprint(w, `Please input again(type "q" or "quit" to exit): `)
			pos = InvalidPosition
		}
	}
	return pos, nil
}

func PrintBoardToString(b *Board, bpSettings *BoardPrintSettings) (
	string, error) {
	var cc, nc string
	var doesColor bool
	if b == nil {
		b = new(Board) // An empty board.
	}
	if bpSettings != nil {
		cc = bpSettings.CrossChar
		nc = bpSettings.NoughtChar
		doesColor = bpSettings.DoesColor
	} else {
		cc = "X"
		nc = "O"
	}
	au := aurora.NewAurora(doesColor)
	sep := strings.Repeat("+---", BoardSize) + "+"

	var builder strings.Builder
	builder.WriteString(sep)
	for row := 0; row < BoardSize; row++ {
		builder.WriteRune('\n')
		for col := 0; col < BoardSize; col++ {
			builder.WriteRune('|')
			switch b[row][col] {
			case 0:
				builder.WriteString("   ")
			case Cross:
				builder.WriteString(" " + au.Red(cc).String() + " ")
			case Nought:
				builder.WriteString(" " + au.Blue(nc).String() + " ")
			default:
				return "", fmt.Errorf("unknown piece on board: %d", b[row][col])
			}
		}
		builder.WriteString("|\n")
		builder.WriteString(sep)
	}
	return builder.String(), nil
}

// ClearScreen moves the cursor home and erases the terminal.
func ClearScreen(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	fmt.Fprint(w, "\033[H\033[2J")
}

func PrintWelcome(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	bar := "------------------------------------------------------------"
	fmt.Fprintln(w, bar)
	fmt.Fprintln(w, "Welcome to Tic-Tac-Toe!")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  You need input coordinates to place your piece.")
	fmt.Fprintln(w, "    Coordinates format: row digit then column digit, 0-2")
	fmt.Fprintln(w, `    e.g. "11" is the center of the board`)
	fmt.Fprintln(w, "  You can change game settings in file:")
	fmt.Fprintln(w, "   ", SettingsPath)
	fmt.Fprintln(w, bar)
}

func PrintAiSummary(w io.Writer, result SearchResult, elapsed time.Duration) {
	if w == nil {
		w = os.Stdout
	}
	fmt.Fprintln(w, "Time taken for evaluation:", elapsed)
	fmt.Fprintf(w, "Best move: %d, %d with value: %d\n",
		result.Row, result.Col, result.Value)
}

func PrintOutcome(w io.Writer, game *Game) {
	if w == nil {
		w = os.Stdout
	}
	switch game.Outcome {
	case game.AiPiece():
		fmt.Fprintln(w, "AI won")
	case game.HumanPiece():
		fmt.Fprintln(w, "Human won")
	default:
		fmt.Fprintln(w, "Draw!! Game Over")
	}
}
