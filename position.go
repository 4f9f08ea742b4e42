package main

import (
	"fmt"
	"strings"
)

// Position ∈ [1, 9]. 0 for invalid.
type Position uint8

func GetPosition(row, col int) (Position, error) {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return InvalidPosition, NewPositionOutOfRangeError(row, col)
	}
	return Position(row*BoardSize + col + 1), nil
}

// ParsePosition accepts a row digit followed by a column digit, both
// 0-indexed. Spaces, commas and parentheses are ignored, so "11", "1 1",
// "1,1" and "(1, 1)" are all the center.
func ParsePosition(s string) (Position, error) {
	if s == "" || strings.EqualFold(s, "<nil>") ||
		strings.EqualFold(s, "<invalid position>") {
		return InvalidPosition, nil
	}
	digits := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', ',', '(', ')':
			return -1
		}
		return r
	}, s)
	if len(digits) != 2 {
		return InvalidPosition, NewUnknownPositionError(s)
	}
	row, col := int(digits[0])-'0', int(digits[1])-'0'
	if row < 0 || row > 9 || col < 0 || col > 9 {
		return InvalidPosition, NewUnknownPositionError(s)
	}
	return GetPosition(row, col)
}

func (p Position) Row() int {
	if p == InvalidPosition {
		return -1
	}
	return int(p-1) / BoardSize
}

func (p Position) Col() int {
	if p == InvalidPosition {
		return -1
	}
	return int(p-1) % BoardSize
}

func (p Position) String() string {
	if p == InvalidPosition {
		return "<invalid position>"
	}
	if p.IsOutOfRange() {
		return fmt.Sprintf("<out of range position>(%d)", uint8(p))
	}
	return fmt.Sprintf("(%d, %d)", p.Row(), p.Col())
}

func (p Position) IsOutOfRange() bool {
	return p < MinPosition || p > MaxPosition
}
