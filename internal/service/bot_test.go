package service

import (
	"math/rand"
	"testing"

	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
	"github.com/rocketscienceinc/arcade-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = entity.PlayerHuman
	o = entity.PlayerAI
	e = entity.EmptyCell
)

// fixedSource always returns the same value, so tie-breaks either always or never replace.
type fixedSource float64

func (that fixedSource) Float64() float64 { return float64(that) }

func historyOf(moves ...entity.Move) []entity.Move {
	for i := range moves {
		moves[i].Seq = i
	}
	return moves
}

func human(row, col int) entity.Move { return entity.Move{Row: row, Col: col, Player: x} }
func ai(row, col int) entity.Move    { return entity.Move{Row: row, Col: col, Player: o} }

func TestBotService_SelectMove(t *testing.T) {
	t.Run("No empty cells returns no move", func(t *testing.T) {
		// Given: a full board
		bot := NewBotService(fixedSource(0.5))
		board := entity.Board{
			{x, o, x, o},
			{o, x, o, x},
			{o, x, o, x},
			{x, o, x, o},
		}

		// When: the bot selects a move
		_, ok, err := bot.SelectMove(board, entity.Cell{Row: 3, Col: 3}, historyOf(human(3, 3)))

		// Then: there is no move and no error
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Opening book plays the center when nothing has been played", func(t *testing.T) {
		bot := NewBotService(fixedSource(0.5))

		cell, ok, err := bot.SelectMove(entity.Board{}, entity.Cell{}, nil)

		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, entity.Cell{Row: 1, Col: 1}, cell)
	})

	t.Run("Opening book plays the corner when the human took the center first", func(t *testing.T) {
		// Given: the human opened on (1,1)
		// This rule is kept literally; confirm it against product intent before changing it.
		bot := NewBotService(fixedSource(0.5))
		board := entity.Board{}
		board[1][1] = x

		// When: the bot replies
		cell, ok, err := bot.SelectMove(board, entity.Cell{Row: 1, Col: 1}, historyOf(human(1, 1)))

		// Then: it takes the top-left corner
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, entity.Cell{Row: 0, Col: 0}, cell)
	})

	t.Run("Reply to a corner opening is one of the best scored cells", func(t *testing.T) {
		// Given: the human opened on (0,0)
		board := entity.Board{}
		board[0][0] = x
		history := historyOf(human(0, 0))
		optimal := []entity.Cell{{Row: 0, Col: 3}, {Row: 3, Col: 0}, {Row: 3, Col: 3}}

		// When: many bots with different seeds reply
		for seed := int64(0); seed < 50; seed++ {
			bot := NewBotService(rand.New(rand.NewSource(seed)))
			cell, ok, err := bot.SelectMove(board, entity.Cell{Row: 0, Col: 0}, history)

			// Then: the choice is always in the optimal set
			require.NoError(t, err)
			require.True(t, ok)
			assert.Contains(t, optimal, cell)
		}
	})

	t.Run("Tie-break never replacing keeps the first best cell", func(t *testing.T) {
		board := entity.Board{}
		board[0][0] = x

		bot := NewBotService(fixedSource(0.99))
		cell, _, err := bot.SelectMove(board, entity.Cell{}, historyOf(human(0, 0)))

		require.NoError(t, err)
		assert.Equal(t, entity.Cell{Row: 0, Col: 3}, cell)
	})

	t.Run("Tie-break always replacing keeps the last best cell", func(t *testing.T) {
		board := entity.Board{}
		board[0][0] = x

		bot := NewBotService(fixedSource(0))
		cell, _, err := bot.SelectMove(board, entity.Cell{}, historyOf(human(0, 0)))

		require.NoError(t, err)
		assert.Equal(t, entity.Cell{Row: 3, Col: 3}, cell)
	})

	t.Run("Completes its own line", func(t *testing.T) {
		// Given: the AI has three in the bottom row and the human has three in the top row
		board := entity.Board{
			{x, x, x, e},
			{e, e, e, e},
			{e, e, e, e},
			{o, o, o, e},
		}
		history := historyOf(human(0, 0), ai(3, 0), human(0, 1), ai(3, 1), human(0, 2), ai(3, 2))
		bot := NewBotService(fixedSource(0.5))

		// When: the bot selects a move
		cell, ok, err := bot.SelectMove(board, entity.Cell{Row: 0, Col: 2}, history)

		// Then: winning beats blocking
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, entity.Cell{Row: 3, Col: 3}, cell)
	})

	t.Run("Blocks the human", func(t *testing.T) {
		// Given: the human has three in the first column
		board := entity.Board{
			{x, e, e, e},
			{x, o, e, e},
			{x, e, e, e},
			{e, e, e, o},
		}
		history := historyOf(human(0, 0), ai(1, 1), human(1, 0), ai(3, 3), human(2, 0))
		bot := NewBotService(fixedSource(0.5))

		// When: the bot selects a move
		cell, ok, err := bot.SelectMove(board, entity.Cell{Row: 2, Col: 0}, history)

		// Then: it blocks the column
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, entity.Cell{Row: 3, Col: 0}, cell)
	})

	t.Run("Unknown mark is an invalid board state", func(t *testing.T) {
		board := entity.Board{}
		board[2][2] = "Z"

		_, _, err := NewBotService(nil).SelectMove(board, entity.Cell{}, nil)

		assert.ErrorIs(t, err, apperror.ErrInvalidBoardState)
	})

	t.Run("History outside the board is an invalid board state", func(t *testing.T) {
		_, _, err := NewBotService(nil).SelectMove(entity.Board{}, entity.Cell{}, historyOf(human(4, 0)))

		assert.ErrorIs(t, err, apperror.ErrInvalidBoardState)
	})
}

func TestEvaluateLine(t *testing.T) {
	tests := []struct {
		name  string
		line  [entity.BoardSize]entity.Mark
		score int
		kind  lineType
	}{
		{"mixed", [4]entity.Mark{o, x, e, e}, 0, lineMixed},
		{"ai win", [4]entity.Mark{o, o, e, o}, 1000, lineAIWin},
		{"block human", [4]entity.Mark{x, e, x, x}, 900, lineBlockHuman},
		{"ai build", [4]entity.Mark{o, e, o, e}, 50, lineAIBuild},
		{"ai start", [4]entity.Mark{e, e, o, e}, 10, lineAIStart},
		{"human threat", [4]entity.Mark{x, x, e, e}, 30, lineHumanThreat},
		{"human start", [4]entity.Mark{e, e, e, x}, 5, lineHumanStart},
		{"empty", [4]entity.Mark{e, e, e, e}, 1, lineNeutral},
		{"full ai", [4]entity.Mark{o, o, o, o}, 1, lineNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, kind := evaluateLine(tt.line)

			assert.Equal(t, tt.score, score)
			assert.Equal(t, tt.kind, kind)
		})
	}
}

func TestEvaluatePosition(t *testing.T) {
	t.Run("Positional bonuses on an empty board", func(t *testing.T) {
		board := entity.Board{}

		// Then: each cell sums its lines plus the center and corner terms
		assert.InDelta(t, 3+0+5, evaluatePosition(&board, nil, entity.Cell{Row: 0, Col: 0}), 1e-9)
		assert.InDelta(t, 3+4, evaluatePosition(&board, nil, entity.Cell{Row: 1, Col: 1}), 1e-9)
		assert.InDelta(t, 2+2, evaluatePosition(&board, nil, entity.Cell{Row: 0, Col: 1}), 1e-9)
	})

	t.Run("Must block adds the bonus on top of the line sum", func(t *testing.T) {
		board := entity.Board{
			{x, x, x, e},
			{e, e, e, e},
			{e, e, e, e},
			{e, e, e, e},
		}

		// Then: row 900 + 5000, column 1, anti diagonal 1, corner 5
		assert.InDelta(t, 900+5000+1+1+5, evaluatePosition(&board, nil, entity.Cell{Row: 0, Col: 3}), 1e-9)
	})

	t.Run("Immediate win short-circuits", func(t *testing.T) {
		board := entity.Board{
			{e, e, e, e},
			{e, e, e, e},
			{e, e, e, e},
			{o, o, o, e},
		}

		assert.InDelta(t, 10000, evaluatePosition(&board, nil, entity.Cell{Row: 3, Col: 3}), 1e-9)
	})

	t.Run("Cell about to decay is penalised", func(t *testing.T) {
		// Given: the AI's oldest live move was on (2,1) and that cell is free again
		board := entity.Board{}
		history := historyOf(ai(2, 1), ai(0, 0), ai(0, 1), ai(0, 2))
		cell := entity.Cell{Row: 2, Col: 1}

		// When: evaluating with and without that history
		withDecay := evaluatePosition(&board, history, cell)
		withoutDecay := evaluatePosition(&board, nil, cell)

		// Then: the difference is the decay penalty
		assert.InDelta(t, decayPenalty, withoutDecay-withDecay, 1e-9)
	})
}

func TestWillDisappear(t *testing.T) {
	t.Run("Fewer than four moves never disappear", func(t *testing.T) {
		history := historyOf(human(0, 0), human(0, 1), human(0, 2))

		assert.False(t, willDisappear(history, entity.Cell{Row: 0, Col: 0}))
	})

	t.Run("Fourth most recent move of either player", func(t *testing.T) {
		history := historyOf(
			human(0, 0), ai(3, 3),
			human(0, 1), ai(3, 2),
			human(0, 2), ai(3, 1),
			human(1, 0), ai(3, 0),
			human(1, 1),
		)

		assert.True(t, willDisappear(history, entity.Cell{Row: 0, Col: 1}))
		assert.True(t, willDisappear(history, entity.Cell{Row: 3, Col: 3}))
		assert.False(t, willDisappear(history, entity.Cell{Row: 0, Col: 0}))
		assert.False(t, willDisappear(history, entity.Cell{Row: 3, Col: 2}))
	})
}
