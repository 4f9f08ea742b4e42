package main

import (
	"errors"
	"strings"
	"testing"
)

func TestBoardIsEmptyAndSet(t *testing.T) {
	var b Board
	for p := MinPosition; p <= MaxPosition; p++ {
		isEmpty, err := b.IsEmpty(p)
		if err != nil {
			t.Fatal(err)
		}
		if !isEmpty {
			t.Errorf("%v should be empty", p)
		}
	}
	if err := b.Set(CenterPosition, Nought); err != nil {
		t.Fatal(err)
	}
	if isEmpty, _ := b.IsEmpty(CenterPosition); isEmpty {
		t.Error("center should not be empty")
	}
	if b[1][1] != Nought {
		t.Errorf("b[1][1] = %v, want %v", b[1][1], Nought)
	}
	// Set does not care about what was there before.
	if err := b.Set(CenterPosition, Cross); err != nil {
		t.Fatal(err)
	}
	if err := b.Set(CenterPosition, 0); err != nil {
		t.Fatal(err)
	}
	if b != (Board{}) {
		t.Errorf("board should be empty again:\n%v", &b)
	}
}

func TestBoardRejectsBadInput(t *testing.T) {
	var b Board
	for _, p := range []Position{InvalidPosition, MaxPosition + 1, 255} {
		var pore *PositionOutOfRangeError
		if _, err := b.IsEmpty(p); !errors.As(err, &pore) {
			t.Errorf("IsEmpty(%d) error = %v", p, err)
		}
		if err := b.Set(p, Cross); !errors.As(err, &pore) {
			t.Errorf("Set(%d) error = %v", p, err)
		}
	}
	if err := b.Set(CenterPosition, InvalidPiece); !errors.Is(err, ErrInvalidPiece) {
		t.Errorf("Set with invalid piece error = %v", err)
	}
	var nb *Board
	if _, err := nb.IsEmpty(CenterPosition); !errors.Is(err, ErrNilBoard) {
		t.Errorf("nil board IsEmpty error = %v", err)
	}
}

func TestBoardWinnerAndFull(t *testing.T) {
	testCases := []struct {
		board  string
		winner Piece
		full   bool
	}{
		{".../.../...", 0, false},
		{"XXX/OO./...", Cross, false},
		{"XO./XO./.O.", Nought, false},
		{"O.X/.X./XO.", Cross, false},
		{"XOX/XOO/OXX", 0, true},
		{"XOX/OXO/OXX", Cross, true},
	}
	for _, tc := range testCases {
		b := mustParseBoard(t, tc.board)
		if w := b.Winner(); w != tc.winner {
			t.Errorf("%s: Winner = %v, want %v", tc.board, w, tc.winner)
		}
		if f := b.IsFull(); f != tc.full {
			t.Errorf("%s: IsFull = %t, want %t", tc.board, f, tc.full)
		}
		if over := b.IsGameOver(); over != (tc.full || tc.winner != 0) {
			t.Errorf("%s: IsGameOver = %t", tc.board, over)
		}
	}
}

func TestBoardEmptyPositionsRowMajor(t *testing.T) {
	b := mustParseBoard(t, "X.O/.X./O..")
	got := b.EmptyPositions()
	want := []Position{2, 4, 6, 8, 9}
	if len(got) != len(want) {
		t.Fatalf("EmptyPositions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("EmptyPositions = %v, want %v", got, want)
			break
		}
	}
	if b.NumEmpty() != 5 || b.Count(Cross) != 2 || b.Count(Nought) != 2 {
		t.Errorf("counts: empty %d, cross %d, nought %d",
			b.NumEmpty(), b.Count(Cross), b.Count(Nought))
	}
}

func TestReachableBoardsAlternate(t *testing.T) {
	boards := reachableBoards()
	t.Log("reachable boards:", len(boards))
	for i := range boards {
		d := boards[i].Count(Cross) - boards[i].Count(Nought)
		if d < -1 || d > 1 {
			t.Fatalf("unbalanced board:\n%v", &boards[i])
		}
	}
}

// mustParseBoard reads rows separated by '/', with 'X', 'O' and '.'.
func mustParseBoard(tb testing.TB, s string) Board {
	tb.Helper()
	var b Board
	rows := strings.Split(s, "/")
	if len(rows) != BoardSize {
		tb.Fatalf("board %q should have %d rows", s, BoardSize)
	}
	for row := range rows {
		if len(rows[row]) != BoardSize {
			tb.Fatalf("board %q row %d should have %d cells", s, row, BoardSize)
		}
		for col := 0; col < BoardSize; col++ {
			switch rows[row][col] {
			case 'X':
				b[row][col] = Cross
			case 'O':
				b[row][col] = Nought
			case '.':
			default:
				tb.Fatalf("board %q has unknown cell %q", s, rows[row][col])
			}
		}
	}
	return b
}

// reachableBoards returns every board reachable by alternating play from the
// empty board, with either piece moving first, in a fixed order.
func reachableBoards() []Board {
	type state struct {
		b     Board
		mover Piece
	}
	seen := make(map[state]bool)
	added := make(map[Board]bool)
	var boards []Board
	var walk func(b Board, mover Piece)
	walk = func(b Board, mover Piece) {
		if seen[state{b, mover}] {
			return
		}
		seen[state{b, mover}] = true
		if !added[b] {
			added[b] = true
			boards = append(boards, b)
		}
		if b.IsGameOver() {
			return
		}
		for _, pos := range b.EmptyPositions() {
			child := b
			child[pos.Row()][pos.Col()] = mover
			walk(child, mover.Opponent())
		}
	}
	walk(Board{}, Cross)
	walk(Board{}, Nought)
	return boards
}
