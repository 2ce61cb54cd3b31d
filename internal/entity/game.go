package entity

import (
	"fmt"
	"time"
)

type Mark string

const (
	EmptyCell Mark = ""
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
)

type Outcome string

const (
	OutcomeUndetermined Outcome = ""
	OutcomeWinnerX      Outcome = "X"
	OutcomeWinnerO      Outcome = "O"
	OutcomeDraw         Outcome = "-"
)

const (
	BoardSize = 3
	CellCount = BoardSize * BoardSize
)

// WinCombos lists every row, column and diagonal as row-major cell indexes.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Cell is a grid coordinate. It may lie outside the grid; the board rejects such cells.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// CellAt converts a row-major index into a Cell.
func CellAt(index int) Cell {
	return Cell{Row: index / BoardSize, Col: index % BoardSize}
}

func (that Cell) Index() int {
	return that.Row*BoardSize + that.Col
}

func (that Cell) IsValid() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

func (that Cell) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Opponent returns the other player's mark.
func (that Mark) Opponent() Mark {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// WinnerOutcome maps a player mark to the outcome in which that player wins.
func WinnerOutcome(mark Mark) Outcome {
	if mark == PlayerX {
		return OutcomeWinnerX
	}
	return OutcomeWinnerO
}

func (that Outcome) IsDraw() bool {
	return that == OutcomeDraw
}

// Winner returns the winning mark, or EmptyCell for a draw or an undetermined outcome.
func (that Outcome) Winner() Mark {
	switch that {
	case OutcomeWinnerX:
		return PlayerX
	case OutcomeWinnerO:
		return PlayerO
	default:
		return EmptyCell
	}
}

// Move is one successful move, numbered from 1 in the order the board accepted it.
type Move struct {
	Seq  int  `json:"seq"`
	Mark Mark `json:"mark"`
	Cell Cell `json:"cell"`
}

// Snapshot is a point-in-time copy of the board state.
type Snapshot struct {
	Cells    [CellCount]Mark `json:"cells"`
	Turn     Mark            `json:"turn"`
	Finished bool            `json:"finished"`
	Outcome  Outcome         `json:"outcome"`
	Moves    []Move          `json:"moves"`
}

func (that Snapshot) At(cell Cell) Mark {
	return that.Cells[cell.Index()]
}

// Match is the persisted record of a finished game.
type Match struct {
	ID         string    `json:"id"`
	Round      int       `json:"round"`
	FirstMark  Mark      `json:"first_mark"`
	Policies   [2]string `json:"policies"`
	Board      [9]Mark   `json:"board"`
	Outcome    Outcome   `json:"outcome"`
	Moves      []Move    `json:"moves"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

func NewMatch(id string, round int, firstMark Mark, policyX, policyO string) *Match {
	return &Match{
		ID:        id,
		Round:     round,
		FirstMark: firstMark,
		Policies:  [2]string{policyX, policyO},
		StartedAt: time.Now(),
	}
}

// Finish copies the terminal board state into the record.
func (that *Match) Finish(snapshot Snapshot) {
	that.Board = snapshot.Cells
	that.Outcome = snapshot.Outcome
	that.Moves = snapshot.Moves
	that.FinishedAt = time.Now()
}

func (that *Match) IsFinished() bool {
	return that.Outcome != OutcomeUndetermined
}

// Tally counts finished matches per outcome.
type Tally map[Outcome]int

func (that Tally) Total() int {
	total := 0
	for _, count := range that {
		total += count
	}
	return total
}
