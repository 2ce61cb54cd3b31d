package tictactoe

import (
	"fmt"
	"sync"

	"github.com/rocketscienceinc/tictactoe-duel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-duel/internal/entity"
)

// MoveListener observes every successful move. It runs while the board lock is
// held, so calls arrive in move order and must not call back into the board.
type MoveListener func(move entity.Move, snapshot entity.Snapshot)

type Option func(*Board)

// WithFirstMark sets the mark that moves first. Marks other than X and O are ignored.
func WithFirstMark(mark entity.Mark) Option {
	return func(that *Board) {
		if mark.IsPlayer() {
			that.turn = mark
		}
	}
}

func WithMoveListener(listener MoveListener) Option {
	return func(that *Board) {
		that.onMove = listener
	}
}

// Board is a 3x3 grid shared by two players. Every field below mu is read and
// written only while mu is held; cond is broadcast on each state change.
type Board struct {
	mu   sync.Mutex
	cond *sync.Cond

	cells    [entity.CellCount]entity.Mark
	turn     entity.Mark
	finished bool
	outcome  entity.Outcome
	moves    []entity.Move

	onMove MoveListener
}

func NewBoard(opts ...Option) *Board {
	board := &Board{
		turn:  entity.PlayerX,
		moves: make([]entity.Move, 0, entity.CellCount),
	}
	board.cond = sync.NewCond(&board.mu)

	for _, opt := range opts {
		opt(board)
	}

	return board
}

// AttemptMove blocks until it is mark's turn or the game is over, then tries
// to claim the cell. It reports whether the move was accepted.
//
// Out-of-grid cells and unknown marks are always rejected without waiting.
func (that *Board) AttemptMove(mark entity.Mark, row, col int) bool {
	return that.Play(mark, entity.Cell{Row: row, Col: col}) == nil
}

// Play is AttemptMove with the rejection reason: apperror.ErrInvalidMark,
// apperror.ErrInvalidCell, apperror.ErrGameFinished or apperror.ErrCellOccupied.
func (that *Board) Play(mark entity.Mark, cell entity.Cell) error {
	if !mark.IsPlayer() {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark)
	}

	if !cell.IsValid() {
		return fmt.Errorf("%w: cell %s", apperror.ErrInvalidCell, cell)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	for that.turn != mark && !that.finished {
		that.cond.Wait()
	}

	if that.finished {
		return apperror.ErrGameFinished
	}

	index := cell.Index()
	if that.cells[index] != entity.EmptyCell {
		// state is unchanged, but other waiters re-check their predicate anyway
		that.cond.Broadcast()
		return fmt.Errorf("%w: cell %s", apperror.ErrCellOccupied, cell)
	}

	that.cells[index] = mark
	move := entity.Move{
		Seq:  len(that.moves) + 1,
		Mark: mark,
		Cell: cell,
	}
	that.moves = append(that.moves, move)

	that.updateGameStatus(mark)

	if that.onMove != nil {
		that.onMove(move, that.snapshot())
	}

	that.cond.Broadcast()

	return nil
}

// IsFinished reports whether a win or a draw has been reached.
func (that *Board) IsFinished() bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.finished
}

// Result returns the outcome; it is OutcomeUndetermined until IsFinished reports true.
func (that *Board) Result() entity.Outcome {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.outcome
}

func (that *Board) Turn() entity.Mark {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.turn
}

// Moves returns the accepted moves in the order they were made.
func (that *Board) Moves() []entity.Move {
	that.mu.Lock()
	defer that.mu.Unlock()

	moves := make([]entity.Move, len(that.moves))
	copy(moves, that.moves)

	return moves
}

func (that *Board) Snapshot() entity.Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.snapshot()
}

func (that *Board) snapshot() entity.Snapshot {
	moves := make([]entity.Move, len(that.moves))
	copy(moves, that.moves)

	return entity.Snapshot{
		Cells:    that.cells,
		Turn:     that.turn,
		Finished: that.finished,
		Outcome:  that.outcome,
		Moves:    moves,
	}
}

// updateGameStatus - ends the game or passes the turn after mark has moved.
func (that *Board) updateGameStatus(mark entity.Mark) {
	switch {
	case hasWon(that.cells, mark):
		that.finished = true
		that.outcome = entity.WinnerOutcome(mark)
	case isFull(that.cells):
		that.finished = true
		that.outcome = entity.OutcomeDraw
	default:
		that.turn = mark.Opponent()
	}
}

func hasWon(cells [entity.CellCount]entity.Mark, mark entity.Mark) bool {
	for _, combo := range entity.WinCombos {
		if cells[combo[0]] == mark && cells[combo[1]] == mark && cells[combo[2]] == mark {
			return true
		}
	}

	return false
}

func isFull(cells [entity.CellCount]entity.Mark) bool {
	for _, cell := range cells {
		if cell == entity.EmptyCell {
			return false
		}
	}

	return true
}
