package main

const BoardSize int = 3
const NumPosition int = BoardSize * BoardSize

// Position ∈ [1, 9]. 0 for invalid.
const (
	InvalidPosition Position = 0
	MinPosition     Position = 1
	MaxPosition              = Position(NumPosition)
	CenterPosition           = (MinPosition + MaxPosition) / 2
)

// Full depth: a 3x3 board never has more than 9 plies left.
const DefaultSearchDepth int = NumPosition

// Bounds for alpha-beta. Evaluations are always in [-1, 1].
const (
	Infinity    int = 1 << 30
	NegInfinity int = -Infinity
)

// Static evaluations from the AI's perspective.
const (
	LossEval int = -1
	DrawEval int = 0
	WinEval  int = 1
)
