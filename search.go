package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/donyori/goctpf"
	"github.com/donyori/goctpf/idtpf/dfw"
	"github.com/donyori/goctpf/prefab"
	"github.com/donyori/gorecover"
	"github.com/rs/zerolog/log"
)

// SearchResult is the value of a position from the AI's perspective and the
// move leading to it. Row and Col are 0 and Pos is InvalidPosition when the
// searched position was already a leaf.
type SearchResult struct {
	Value    int
	Row, Col int
	Pos      Position
}

// Engine searches for the AI's best move. The AI always maximizes.
// An Engine runs one search at a time.
type Engine struct {
	AiPiece Piece

	// Plain minimax when set. Slower, same values.
	DisablePruning bool

	// Stats of the last BestMove call.
	Stats SearchStats

	rootMoveInputChan chan<- interface{}
	rootMoveDoneChan  <-chan struct{}
}

// NewEngine returns an engine playing aiPiece. If settings ask for a root
// split, a worker pool is started and Close must be called to stop it.
func NewEngine(aiPiece Piece, settings *SearchSettings) *Engine {
	if settings == nil {
		settings = NewSettings().Search
	}
	e := &Engine{
		AiPiece:        aiPiece,
		DisablePruning: settings.DisablePruning,
	}
	if settings.RootSplit {
		ws := settings.Worker
		if ws == nil {
			ws = goctpf.NewWorkerSettings()
		}
		rmic := make(chan interface{}, NumPosition)
		e.rootMoveInputChan = rmic
		e.rootMoveDoneChan = dfw.StartEx(prefab.QueueTaskManagerMaker,
			e.rootMoveHandler, nil, nil, *ws, rmic, nil)
	}
	return e
}

func (e *Engine) Close() {
	if e.rootMoveInputChan != nil {
		close(e.rootMoveInputChan)
		e.rootMoveInputChan = nil
	}
	if e.rootMoveDoneChan != nil {
		<-e.rootMoveDoneChan
		e.rootMoveDoneChan = nil
	}
}

// Evaluate returns WinEval if the AI holds a line, LossEval if its opponent
// does and DrawEval otherwise, including for unfinished positions.
func (e *Engine) Evaluate(board *Board) int {
	switch {
	case board.IsWinner(e.AiPiece):
		return WinEval
	case board.IsWinner(e.AiPiece.Opponent()):
		return LossEval
	default:
		return DrawEval
	}
}

func (e *Engine) IsTerminal(board *Board) bool {
	return board.IsWinner(e.AiPiece) ||
		board.IsWinner(e.AiPiece.Opponent()) ||
		board.IsFull()
}

// BestMove searches depth plies below board. maximizing is true when the AI
// is to move. alpha and beta are the initial window, normally NegInfinity and
// Infinity.
//
// The board is mutated during the search and restored before BestMove
// returns, on every path.
func (e *Engine) BestMove(board *Board, depth int, maximizing bool,
	alpha, beta int) (result SearchResult, err error) {
	if board == nil {
		return SearchResult{}, ErrNilBoard
	}
	if depth < 0 {
		return SearchResult{}, ErrNegativeDepth
	}
	if !e.AiPiece.IsPlayer() {
		return SearchResult{}, fmt.Errorf("AI piece %v: %w", e.AiPiece,
			ErrInvalidPiece)
	}
	if err = board.Validate(); err != nil {
		return SearchResult{}, err
	}

	e.Stats = SearchStats{}
	startTime := time.Now()
	var splitErr error
	err = gorecover.Recover(func() {
		if e.rootMoveInputChan != nil && depth > 0 && !e.IsTerminal(board) &&
			alpha < LossEval && beta > WinEval {
			result, splitErr = e.splitRoot(board, depth, maximizing, alpha, beta)
			return
		}
		result = e.search(board, depth, 0, maximizing, alpha, beta, &e.Stats)
	})
	if err == nil {
		err = splitErr
	}
	if err != nil {
		return SearchResult{}, fmt.Errorf("search aborted: %w", err)
	}

	log.Debug().
		Int("depth", depth).
		Bool("maximizing", maximizing).
		Int("value", result.Value).
		Stringer("move", result.Pos).
		Dur("elapsed", time.Since(startTime)).
		Object("stats", &e.Stats).
		Msg("best-move")
	return result, nil
}

// search is alpha-beta over the cells in row-major order. Ties keep the
// first move found. With pruning disabled it degrades to plain minimax.
func (e *Engine) search(board *Board, depthToGo, depthFromRoot int,
	maximizing bool, alpha, beta int, stats *SearchStats) SearchResult {
	stats.Nodes++
	if depthToGo == 0 || e.IsTerminal(board) {
		stats.Leafs++
		return SearchResult{Value: e.Evaluate(board)}
	}
	stats.NonLeafs++
	if depthFromRoot < len(stats.NonLeafsAt) {
		stats.NonLeafsAt[depthFromRoot]++
	}

	mover := e.AiPiece
	best := SearchResult{Value: NegInfinity}
	if !maximizing {
		mover = e.AiPiece.Opponent()
		best.Value = Infinity
	}

	var numChildren int
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if board[row][col] != 0 {
				continue
			}
			numChildren++
			value := e.searchChild(board, row, col, mover, depthToGo-1,
				depthFromRoot+1, !maximizing, alpha, beta, stats)

			if maximizing {
				// Strictly > so the first move scanned wins ties.
				if value > best.Value {
					best = newSearchResult(value, row, col)
				}
				if e.DisablePruning {
					continue
				}
				if best.Value > alpha {
					alpha = best.Value
				}
			} else {
				// Strictly <, likewise.
				if value < best.Value {
					best = newSearchResult(value, row, col)
				}
				if e.DisablePruning {
					continue
				}
				if best.Value < beta {
					beta = best.Value
				}
			}

			if alpha >= beta {
				stats.CutNodes++
				if numChildren == 1 {
					stats.FirstChildCuts++
				}
				return best
			}
		}
	}
	return best
}

// searchChild places mover at (row, col), searches the child position and
// empties the cell again, even if the search panics.
func (e *Engine) searchChild(board *Board, row, col int, mover Piece,
	depthToGo, depthFromRoot int, maximizing bool, alpha, beta int,
	stats *SearchStats) int {
	board[row][col] = mover
	defer func() {
		board[row][col] = 0
	}()
	return e.search(board, depthToGo, depthFromRoot, maximizing, alpha, beta,
		stats).Value
}

// splitRoot searches every root move as an independent task on the worker
// pool. Each task gets its own board copy and the caller's window, which
// holds every possible evaluation, so the child values are exact and the
// reduction picks the same move as the sequential search.
func (e *Engine) splitRoot(board *Board, depth int, maximizing bool,
	alpha, beta int) (SearchResult, error) {
	empties := board.EmptyPositions()
	outputChan := make(chan *RootMoveOutcome, len(empties))
	tg := goctpf.NewTaskGroup(nil, nil)
	for _, pos := range empties {
		e.rootMoveInputChan <- tg.WrapTask(&RootMoveTask{
			Board:      *board,
			Pos:        pos,
			Depth:      depth,
			Maximizing: maximizing,
			Alpha:      alpha,
			Beta:       beta,
			Output:     outputChan,
		})
	}
	tg.Wait()
	close(outputChan)

	outcomes := make(map[Position]*RootMoveOutcome, len(empties))
	for output := range outputChan {
		outcomes[output.Pos] = output
	}

	e.Stats.Nodes++
	e.Stats.NonLeafs++
	e.Stats.NonLeafsAt[0]++
	best := SearchResult{Value: NegInfinity}
	if !maximizing {
		best.Value = Infinity
	}
	for _, pos := range empties {
		output := outcomes[pos]
		if output == nil {
			return SearchResult{}, fmt.Errorf("no outcome for root move %v", pos)
		}
		if output.Err != nil {
			return SearchResult{}, output.Err
		}
		e.Stats.Add(&output.Stats)
		if maximizing && output.Value > best.Value ||
			!maximizing && output.Value < best.Value {
			best = newSearchResult(output.Value, pos.Row(), pos.Col())
		}
	}
	return best, nil
}

func (e *Engine) rootMoveHandler(workerNo int, task interface{},
	errBuf *[]error) (newTasks []interface{}, doesExit bool) {
	// Always return nil, false. So just use "return".
	t := task.(*goctpf.TaskGroupMember).Task.(*RootMoveTask)
	output := &RootMoveOutcome{Pos: t.Pos}
	output.Err = gorecover.Recover(func() {
		if t.Pos.IsOutOfRange() {
			panic(errors.New("root move is out of range"))
		}
		mover := e.AiPiece
		if !t.Maximizing {
			mover = e.AiPiece.Opponent()
		}
		output.Value = e.searchChild(&t.Board, t.Pos.Row(), t.Pos.Col(), mover,
			t.Depth-1, 1, !t.Maximizing, t.Alpha, t.Beta, &output.Stats)
	})
	t.Output <- output
	return
}

func newSearchResult(value, row, col int) SearchResult {
	pos, err := GetPosition(row, col)
	if err != nil {
		panic(err)
	}
	return SearchResult{Value: value, Row: row, Col: col, Pos: pos}
}
