package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-duel/internal/entity"
)

func TestSequentialScan(t *testing.T) {
	// Given: a sequential scan policy
	policy := NewSequentialScan()

	// When: it proposes eleven cells
	var proposed []entity.Cell
	for range 11 {
		proposed = append(proposed, policy.Next())
	}

	// Then: it walks the grid row by row and wraps around
	expected := []entity.Cell{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
		{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2},
		{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2},
		{Row: 0, Col: 0}, {Row: 0, Col: 1},
	}
	assert.Equal(t, expected, proposed)
}

func TestRandomSample(t *testing.T) {
	t.Run("Same seed gives the same sequence", func(t *testing.T) {
		// Given: two policies with the same seed
		first := NewRandomSample(42)
		second := NewRandomSample(42)

		// Then: they propose identical cells, all inside the grid
		for range 100 {
			cell := first.Next()
			require.True(t, cell.IsValid())
			require.Equal(t, cell, second.Next())
		}
	})

	t.Run("Covers the whole grid", func(t *testing.T) {
		// Given: a random policy
		policy := NewRandomSample(7)

		// When: it proposes many cells
		seen := map[entity.Cell]bool{}
		for range 1000 {
			seen[policy.Next()] = true
		}

		// Then: every cell was proposed at least once
		assert.Len(t, seen, entity.CellCount)
	})
}

func TestScript(t *testing.T) {
	// Given: a script with two cells, one outside the grid
	policy := NewScript(entity.Cell{Row: 2, Col: 2}, entity.Cell{Row: 5, Col: 5})

	// Then: the script is replayed as given, then the grid is scanned from the start
	assert.Equal(t, entity.Cell{Row: 2, Col: 2}, policy.Next())
	assert.Equal(t, entity.Cell{Row: 5, Col: 5}, policy.Next())
	assert.Equal(t, entity.Cell{Row: 0, Col: 0}, policy.Next())
	assert.Equal(t, entity.Cell{Row: 0, Col: 1}, policy.Next())
}

func TestPolicyFunc(t *testing.T) {
	// Given: a function policy that always picks the center
	policy := PolicyFunc(func() entity.Cell { return entity.Cell{Row: 1, Col: 1} })

	// Then: it proposes the center
	assert.Equal(t, entity.Cell{Row: 1, Col: 1}, policy.Next())
}

func TestNewPolicy(t *testing.T) {
	t.Run("Known names", func(t *testing.T) {
		sequential, err := NewPolicy(PolicySequential, 0)
		require.NoError(t, err)
		assert.IsType(t, &sequentialScan{}, sequential)

		random, err := NewPolicy(PolicyRandom, 1)
		require.NoError(t, err)
		assert.IsType(t, &randomSample{}, random)
	})

	t.Run("Unknown name", func(t *testing.T) {
		// When: an unsupported policy is requested
		policy, err := NewPolicy("minimax", 0)

		// Then: ErrUnknownPolicy is returned
		require.ErrorIs(t, err, ErrUnknownPolicy)
		assert.Nil(t, policy)
	})
}
