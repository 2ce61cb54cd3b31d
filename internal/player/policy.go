package player

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-duel/internal/entity"
)

const (
	PolicySequential = "sequential"
	PolicyRandom     = "random"
)

var ErrUnknownPolicy = errors.New("unknown move policy")

// Policy proposes the next cell to try. It never reads the board, so the
// proposed cell may be occupied; the board decides.
type Policy interface {
	Next() entity.Cell
}

type PolicyFunc func() entity.Cell

func (f PolicyFunc) Next() entity.Cell {
	return f()
}

// NewPolicy builds a policy by its configured name.
func NewPolicy(name string, seed uint64) (Policy, error) {
	switch name {
	case PolicySequential:
		return NewSequentialScan(), nil
	case PolicyRandom:
		return NewRandomSample(seed), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}

type sequentialScan struct {
	next int
}

// NewSequentialScan walks the grid in row-major order and wraps around.
func NewSequentialScan() Policy {
	return &sequentialScan{}
}

func (that *sequentialScan) Next() entity.Cell {
	cell := entity.CellAt(that.next)
	that.next = (that.next + 1) % entity.CellCount

	return cell
}

type randomSample struct {
	rng *rand.Rand
}

// NewRandomSample picks uniformly random cells. The same seed yields the same sequence.
func NewRandomSample(seed uint64) Policy {
	return &randomSample{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), //nolint: gosec // it's ok
	}
}

func (that *randomSample) Next() entity.Cell {
	return entity.CellAt(that.rng.IntN(entity.CellCount))
}

type script struct {
	cells    []entity.Cell
	pos      int
	fallback Policy
}

// NewScript replays cells in order and then continues with a sequential scan.
func NewScript(cells ...entity.Cell) Policy {
	return &script{
		cells:    cells,
		fallback: NewSequentialScan(),
	}
}

func (that *script) Next() entity.Cell {
	if that.pos < len(that.cells) {
		cell := that.cells[that.pos]
		that.pos++
		return cell
	}

	return that.fallback.Next()
}
