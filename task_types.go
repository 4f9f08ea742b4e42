package main

type RootMoveTask struct {
	Board      Board
	Pos        Position
	Depth      int
	Maximizing bool
	Alpha      int
	Beta       int
	Output     chan<- *RootMoveOutcome
}

type RootMoveOutcome struct {
	Pos   Position
	Value int
	Stats SearchStats
	Err   error
}
