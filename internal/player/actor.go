package player

import (
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-duel/internal/entity"
)

type board interface {
	AttemptMove(mark entity.Mark, row, col int) bool
	IsFinished() bool
}

type Stats struct {
	Attempts int
	Moves    int
}

func (that Stats) Rejected() int {
	return that.Attempts - that.Moves
}

type Option func(*Actor)

// WithPause makes the actor sleep after every accepted move. Rejected attempts retry at once.
func WithPause(pause time.Duration) Option {
	return func(that *Actor) {
		that.pause = pause
	}
}

// Actor drives one player's attempts against a shared board.
type Actor struct {
	logger *slog.Logger
	mark   entity.Mark
	policy Policy
	board  board
	pause  time.Duration

	stats Stats
}

func NewActor(logger *slog.Logger, mark entity.Mark, policy Policy, board board, opts ...Option) *Actor {
	actor := &Actor{
		logger: logger.With("component", "actor", "mark", string(mark)),
		mark:   mark,
		policy: policy,
		board:  board,
	}

	for _, opt := range opts {
		opt(actor)
	}

	return actor
}

func (that *Actor) Mark() entity.Mark {
	return that.mark
}

// Run proposes cells until the board reports the game is over. A rejected
// attempt is not an error; the actor just tries again.
func (that *Actor) Run() {
	for !that.board.IsFinished() {
		cell := that.policy.Next()
		that.stats.Attempts++

		if that.board.AttemptMove(that.mark, cell.Row, cell.Col) {
			that.stats.Moves++
			that.logger.Debug("move accepted", "cell", cell.String())

			if that.pause > 0 {
				time.Sleep(that.pause)
			}
		} else {
			that.logger.Debug("move rejected", "cell", cell.String())
		}
	}

	that.logger.Debug("actor finished", "attempts", that.stats.Attempts, "moves", that.stats.Moves)
}

// Stats must only be read after Run has returned.
func (that *Actor) Stats() Stats {
	return that.stats
}
