package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEliminationsForRoundBrackets(t *testing.T) {
	// Larger tables shed players earlier and faster
	assert.Equal(t, 2, EliminationsForRound(16, 2))
	assert.Equal(t, 2, EliminationsForRound(15, 5))
	assert.Equal(t, 1, EliminationsForRound(13, 2))
	assert.Equal(t, 2, EliminationsForRound(13, 3))
	assert.Equal(t, 1, EliminationsForRound(11, 3))
	assert.Equal(t, 2, EliminationsForRound(11, 4))
	assert.Equal(t, 1, EliminationsForRound(9, 4))
	assert.Equal(t, 2, EliminationsForRound(9, 5))
	assert.Equal(t, 1, EliminationsForRound(7, 2))
	assert.Equal(t, 0, EliminationsForRound(5, 2))
	assert.Equal(t, 1, EliminationsForRound(5, 3))
	assert.Equal(t, 0, EliminationsForRound(4, 3))
	assert.Equal(t, 1, EliminationsForRound(4, 4))
}

func TestEliminationsForRoundBoundaries(t *testing.T) {
	// Round 1 and anything past round 5 never suggest eliminations
	assert.Equal(t, 0, EliminationsForRound(16, 1))
	assert.Equal(t, 0, EliminationsForRound(16, 6))

	// Tables too small for any bracket suggest nothing
	assert.Equal(t, 0, EliminationsForRound(3, 3))
}
