package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-duel/internal/entity"
)

// Console prints the grid after each move and a summary per match.
type Console struct {
	out io.Writer
}

func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

func (that *Console) RenderMove(move entity.Move, snapshot entity.Snapshot) {
	fmt.Fprintf(that.out, "\nMove %d: %s plays %s\n", move.Seq, move.Mark, move.Cell)
	fmt.Fprint(that.out, FormatBoard(snapshot.Cells))
}

func (that *Console) RenderSummary(match *entity.Match) {
	fmt.Fprintf(that.out, "\nGame over after %d moves! %s\n", len(match.Moves), DescribeOutcome(match.Outcome))
}

func (that *Console) RenderTally(tally entity.Tally) {
	fmt.Fprintf(that.out, "\nX wins: %d, O wins: %d, draws: %d\n",
		tally[entity.OutcomeWinnerX], tally[entity.OutcomeWinnerO], tally[entity.OutcomeDraw])
}

// FormatBoard draws the grid as three text rows separated by rules.
func FormatBoard(cells [entity.CellCount]entity.Mark) string {
	var sb strings.Builder

	for row := range entity.BoardSize {
		sb.WriteString(" ")
		for col := range entity.BoardSize {
			mark := cells[entity.Cell{Row: row, Col: col}.Index()]
			if mark == entity.EmptyCell {
				sb.WriteString(" ")
			} else {
				sb.WriteString(string(mark))
			}

			if col < entity.BoardSize-1 {
				sb.WriteString(" | ")
			}
		}
		sb.WriteString("\n")

		if row < entity.BoardSize-1 {
			sb.WriteString("---+---+---\n")
		}
	}

	return sb.String()
}

func DescribeOutcome(outcome entity.Outcome) string {
	switch outcome {
	case entity.OutcomeDraw:
		return "The game ended in a draw."
	case entity.OutcomeWinnerX, entity.OutcomeWinnerO:
		return fmt.Sprintf("Player %s wins!", outcome.Winner())
	default:
		return "The game is still in progress."
	}
}
