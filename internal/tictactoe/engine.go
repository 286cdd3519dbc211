package tictactoe

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/arcade-backend/internal/entity"
)

const (
	MessageHumanWon  = "You won!"
	MessageAIWon     = "AI won!"
	MessageNoMoves   = "No valid moves available"
	MessageContinues = "Game continues"
)

type bot interface {
	SelectMove(board entity.Board, lastHumanMove entity.Cell, history []entity.Move) (entity.Cell, bool, error)
}

// TurnResult describes what happened during one processed turn.
type TurnResult struct {
	AIMove       *entity.Cell
	DecayedCells []entity.DecayedCell
	Message      string
	Score        *Score
}

// Engine applies a human move and the AI reply to a game.
type Engine struct {
	bot bot
	now func() time.Time
}

func NewEngine(bot bot, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}

	return &Engine{
		bot: bot,
		now: now,
	}
}

// PlayTurn - validates and applies the human move, then lets the AI answer unless the game
// ended. On error the game may be partially mutated; callers work on a copy.
func (that *Engine) PlayTurn(game *entity.Game, row, col int) (*TurnResult, error) {
	if err := game.ConfirmOngoingState(); err != nil {
		return nil, err
	}

	if err := game.ValidateMove(row, col); err != nil {
		return nil, fmt.Errorf("invalid turn: %w", err)
	}

	humanChoice := entity.Cell{Row: row, Col: col}
	entry := entity.TurnLogEntry{
		HumanChoice:   humanChoice,
		DeletingCells: []entity.DecayedCell{},
	}

	that.placeAndDecay(game, &entry, entity.PlayerHuman, humanChoice)

	if winner := game.Board.DetermineWinner(); winner != entity.EmptyCell {
		return that.finish(game, entry, winner, MessageHumanWon), nil
	}

	aiCell, ok, err := that.bot.SelectMove(game.Board, humanChoice, game.MoveHistory)
	if err != nil {
		return nil, fmt.Errorf("bot failed to make turn: %w", err)
	}

	if !ok {
		return that.finish(game, entry, entity.EmptyCell, MessageNoMoves), nil
	}

	if err = game.ValidateMove(aiCell.Row, aiCell.Col); err != nil {
		return nil, fmt.Errorf("bot chose an unplayable cell: %w", err)
	}

	entry.AIMove = &aiCell
	that.placeAndDecay(game, &entry, entity.PlayerAI, aiCell)

	if winner := game.Board.DetermineWinner(); winner != entity.EmptyCell {
		return that.finish(game, entry, winner, MessageAIWon), nil
	}

	game.TurnLog = append(game.TurnLog, entry)

	return &TurnResult{
		AIMove:       entry.AIMove,
		DecayedCells: entry.DeletingCells,
		Message:      MessageContinues,
	}, nil
}

func (that *Engine) placeAndDecay(game *entity.Game, entry *entity.TurnLogEntry, player entity.Mark, cell entity.Cell) {
	game.PlaceMark(player, cell.Row, cell.Col)

	if decayed, ok := game.ApplyMemoryDecay(player); ok {
		entry.DeletingCells = append(entry.DeletingCells, decayed)
	}
}

func (that *Engine) finish(game *entity.Game, entry entity.TurnLogEntry, winner entity.Mark, message string) *TurnResult {
	game.TurnLog = append(game.TurnLog, entry)
	game.Finish(winner, that.now())

	score := CalculateScore(OutcomeFor(winner), game.MoveCount, game.Elapsed(that.now()))

	return &TurnResult{
		AIMove:       entry.AIMove,
		DecayedCells: entry.DeletingCells,
		Message:      message,
		Score:        &score,
	}
}

// OutcomeFor maps the winning mark to the human player's outcome.
func OutcomeFor(winner entity.Mark) Outcome {
	switch winner {
	case entity.PlayerHuman:
		return OutcomeWon
	case entity.PlayerAI:
		return OutcomeLost
	default:
		return OutcomeDraw
	}
}
