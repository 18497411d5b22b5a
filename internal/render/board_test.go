package render

import (
	"bytes"
	"testing"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Board(t *testing.T) {
	t.Run("Plain output draws indexes and markers", func(t *testing.T) {
		// Given: a plain renderer and a small game
		var buf bytes.Buffer
		renderer := New(&buf, false)
		game := &entity.Game{
			Board:    []string{"X..", ".O.", "..."},
			LastMove: &gomoku.Move{Row: 1, Col: 1},
		}

		// When: rendering the board
		require.NoError(t, renderer.Board(game))

		// Then: the output has no escape codes
		expected := "" +
			"     0  1  2\n" +
			"  0  X  .  .\n" +
			"  1  .  O  .\n" +
			"  2  .  .  .\n"
		assert.Equal(t, expected, buf.String())
	})

	t.Run("Colored output uses escape codes", func(t *testing.T) {
		// Given: a colored renderer
		var buf bytes.Buffer
		renderer := New(&buf, true)

		// When: rendering a board with a black piece
		require.NoError(t, renderer.Board(&entity.Game{Board: []string{"X."}}))

		// Then: the output contains ANSI sequences
		assert.Contains(t, buf.String(), "\x1b[")
		assert.Contains(t, buf.String(), "X")
	})
}

func TestRenderer_Status(t *testing.T) {
	tests := []struct {
		name     string
		game     *entity.Game
		expected string
	}{
		{
			name: "Turn",
			game: &entity.Game{
				Status: entity.StatusOngoing,
				Turn:   &gomoku.Player{Name: "alice", Piece: gomoku.Black},
			},
			expected: "alice (X) to move, enter row and column:\n",
		},
		{
			name:     "Winner",
			game:     &entity.Game{Status: entity.StatusFinished, Winner: "bob", MoveCount: 10},
			expected: "bob wins after 10 moves!\n",
		},
		{
			name:     "Draw",
			game:     &entity.Game{Status: entity.StatusFinished, Winner: entity.PlayerTie, MoveCount: 225},
			expected: "Draw after 225 moves.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			require.NoError(t, New(&buf, false).Status(tt.game))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}
