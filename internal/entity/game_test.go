package entity

import (
	"testing"
	"time"

	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var startedAt = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func TestGameStatusMethods(t *testing.T) {
	t.Run("IsPlaying returns true for a new game", func(t *testing.T) {
		// Given: a new game
		game := NewGame("123", startedAt)

		// Then: it should be playing and not finished
		assert.True(t, game.IsPlaying())
		assert.False(t, game.IsFinished())
	})

	t.Run("IsFinished returns true for won and draw games", func(t *testing.T) {
		// Given: a won game and a drawn game
		won := &Game{Status: StatusWon}
		draw := &Game{Status: StatusDraw}

		// Then: both should be finished
		assert.True(t, won.IsFinished())
		assert.True(t, draw.IsFinished())
	})
}

func TestGame_ConfirmOngoingState(t *testing.T) {
	t.Run("Returns nil when game is playing", func(t *testing.T) {
		// Given: a game with StatusPlaying
		game := &Game{Status: StatusPlaying}

		// When: checking if the game is active
		err := game.ConfirmOngoingState()

		// Then: it should return nil error
		assert.NoError(t, err)
	})

	t.Run("Returns ErrGameFinished when game is won", func(t *testing.T) {
		// Given: a game with StatusWon
		game := &Game{Status: StatusWon}

		// When: checking if the game is active
		err := game.ConfirmOngoingState()

		// Then: it should return ErrGameFinished
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Returns error for unknown game status", func(t *testing.T) {
		// Given: a game with unknown status
		game := &Game{Status: "unknown"}

		// When: checking if the game is active
		err := game.ConfirmOngoingState()

		// Then: it should return an error
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown game status")
	})
}

func TestGame_ValidateMove(t *testing.T) {
	t.Run("Accepts a free cell", func(t *testing.T) {
		// Given: a new game
		game := NewGame("123", startedAt)

		// When: validating a move on a free cell
		err := game.ValidateMove(3, 3)

		// Then: no error should be returned
		assert.NoError(t, err)
	})

	t.Run("Rejects out of range coordinates", func(t *testing.T) {
		// Given: a new game
		game := NewGame("123", startedAt)

		// Then: every out of range pair should be invalid input
		for _, cell := range []Cell{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {20, 20}} {
			err := game.ValidateMove(cell.Row, cell.Col)
			assert.ErrorIs(t, err, apperror.ErrInvalidInput, "cell %v", cell)
		}
	})

	t.Run("Rejects an occupied cell", func(t *testing.T) {
		// Given: a game where (1,2) is taken by the AI
		game := NewGame("123", startedAt)
		game.PlaceMark(PlayerAI, 1, 2)

		// When: validating a move to the same cell
		err := game.ValidateMove(1, 2)

		// Then: ErrCellOccupied should be returned
		assert.ErrorIs(t, err, apperror.ErrCellOccupied)
	})
}

func TestGame_PlaceMark(t *testing.T) {
	// Given: a new game
	game := NewGame("123", startedAt)

	// When: the human and the AI place marks
	first := game.PlaceMark(PlayerHuman, 0, 0)
	second := game.PlaceMark(PlayerAI, 1, 1)

	// Then: the board, history and move count reflect both moves
	assert.Equal(t, PlayerHuman, game.Board[0][0])
	assert.Equal(t, PlayerAI, game.Board[1][1])
	assert.Equal(t, []Move{first, second}, game.MoveHistory)
	assert.Equal(t, 0, first.Seq)
	assert.Equal(t, 1, second.Seq)
	assert.Equal(t, 2, game.MoveCount)
}

func TestGame_ApplyMemoryDecay(t *testing.T) {
	t.Run("No decay up to four moves", func(t *testing.T) {
		// Given: a game where the human has made four moves
		game := NewGame("123", startedAt)
		for col := 0; col < 4; col++ {
			game.PlaceMark(PlayerHuman, 0, col)
		}

		// When: applying decay for the human
		_, decayed := game.ApplyMemoryDecay(PlayerHuman)

		// Then: nothing should be cleared
		assert.False(t, decayed)
		assert.Equal(t, 4, game.Board.Count(PlayerHuman))
	})

	t.Run("Fifth move clears the first", func(t *testing.T) {
		// Given: a game where the human has made five moves interleaved with AI moves
		game := NewGame("123", startedAt)
		humanMoves := []Cell{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {2, 0}}
		aiMoves := []Cell{{3, 3}, {3, 2}, {3, 1}, {3, 0}}
		for i, cell := range humanMoves {
			game.PlaceMark(PlayerHuman, cell.Row, cell.Col)
			if i < len(aiMoves) {
				game.PlaceMark(PlayerAI, aiMoves[i].Row, aiMoves[i].Col)
			}
		}

		// When: applying decay for the human
		cell, decayed := game.ApplyMemoryDecay(PlayerHuman)

		// Then: the human's first move should be gone and the AI's marks untouched
		require.True(t, decayed)
		assert.Equal(t, DecayedCell{Row: 0, Col: 0, Player: PlayerHuman}, cell)
		assert.Equal(t, EmptyCell, game.Board[0][0])
		assert.Equal(t, 4, game.Board.Count(PlayerHuman))
		assert.Equal(t, 4, game.Board.Count(PlayerAI))
	})

	t.Run("Sliding window keeps at most four marks per player", func(t *testing.T) {
		// Given: a game where the human keeps playing free cells
		game := NewGame("123", startedAt)
		cells := []Cell{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}, {2, 0}, {0, 0}, {2, 2}}

		for n, cell := range cells {
			require.NoError(t, game.ValidateMove(cell.Row, cell.Col))
			game.PlaceMark(PlayerHuman, cell.Row, cell.Col)

			// When: decay is applied after every move
			decayedCell, decayed := game.ApplyMemoryDecay(PlayerHuman)

			// Then: from the fifth move on the (N-4)th move is the one cleared
			if n+1 > MemorySize {
				expected := cells[n-MemorySize]
				require.True(t, decayed, "move %d", n+1)
				assert.Equal(t, expected.Row, decayedCell.Row)
				assert.Equal(t, expected.Col, decayedCell.Col)
			} else {
				assert.False(t, decayed)
			}
			assert.LessOrEqual(t, game.Board.Count(PlayerHuman), MemorySize)
		}
	})
}

func TestGame_Finish(t *testing.T) {
	t.Run("Winner sets won status", func(t *testing.T) {
		// Given: a playing game
		game := NewGame("123", startedAt)
		endedAt := startedAt.Add(30 * time.Second)

		// When: finishing with the AI as winner
		game.Finish(PlayerAI, endedAt)

		// Then: the game is won by the AI and has an end time
		assert.Equal(t, StatusWon, game.Status)
		assert.Equal(t, PlayerAI, game.Winner)
		require.NotNil(t, game.GameEndTime)
		assert.Equal(t, 30*time.Second, game.Elapsed(startedAt.Add(time.Hour)))
	})

	t.Run("No winner sets draw status", func(t *testing.T) {
		// Given: a playing game
		game := NewGame("123", startedAt)

		// When: finishing without a winner
		game.Finish(EmptyCell, startedAt)

		// Then: the game is a draw
		assert.Equal(t, StatusDraw, game.Status)
		assert.Equal(t, EmptyCell, game.Winner)
	})
}

func TestGame_Clone(t *testing.T) {
	// Given: a game with history and a turn log
	game := NewGame("123", startedAt)
	game.PlaceMark(PlayerHuman, 0, 0)
	game.TurnLog = append(game.TurnLog, TurnLogEntry{
		HumanChoice:   Cell{Row: 0, Col: 0},
		AIMove:        &Cell{Row: 1, Col: 1},
		DeletingCells: []DecayedCell{},
	})

	// When: the clone is mutated
	clone := game.Clone()
	clone.PlaceMark(PlayerAI, 2, 2)
	clone.TurnLog[0].AIMove.Row = 3

	// Then: the original is untouched
	assert.Equal(t, EmptyCell, game.Board[2][2])
	assert.Len(t, game.MoveHistory, 1)
	assert.Equal(t, 1, game.MoveCount)
	assert.Equal(t, 1, game.TurnLog[0].AIMove.Row)
}

func TestGame_LastMove(t *testing.T) {
	// Given: a game with interleaved moves
	game := NewGame("123", startedAt)
	game.PlaceMark(PlayerHuman, 0, 0)
	game.PlaceMark(PlayerAI, 1, 1)
	game.PlaceMark(PlayerHuman, 2, 2)

	// When: looking up the last human move
	move, ok := game.LastMove(PlayerHuman)

	// Then: it is the most recent one
	require.True(t, ok)
	assert.Equal(t, Cell{Row: 2, Col: 2}, move.Cell())
}
