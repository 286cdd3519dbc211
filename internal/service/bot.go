package service

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
	"github.com/rocketscienceinc/arcade-backend/internal/entity"
)

const (
	aiWinScore    = 1000
	blockScore    = 900
	aiBuildScore  = 50
	aiStartScore  = 10
	threatScore   = 30
	humanStart    = 5
	neutralScore  = 1
	deadLineScore = 0

	immediateWinScore = 10000
	mustBlockBonus    = 5000
	decayPenalty      = 100
	centerWeight      = 2
	cornerBonus       = 5

	// tieBreakChance is the probability that an equally scored later cell replaces the current best.
	tieBreakChance = 0.3
)

type lineType int

const (
	lineNeutral lineType = iota
	lineMixed
	lineAIWin
	lineBlockHuman
	lineAIBuild
	lineAIStart
	lineHumanThreat
	lineHumanStart
)

type BotService interface {
	SelectMove(board entity.Board, lastHumanMove entity.Cell, history []entity.Move) (entity.Cell, bool, error)
}

// RandomSource is the subset of *rand.Rand the bot needs.
type RandomSource interface {
	Float64() float64
}

type botService struct {
	mu  sync.Mutex
	rnd RandomSource
}

func NewBotService(rnd RandomSource) BotService {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // it's ok
	}

	return &botService{
		rnd: rnd,
	}
}

// SelectMove - picks the AI reply. ok is false when the board has no free cell.
func (that *botService) SelectMove(board entity.Board, _ entity.Cell, history []entity.Move) (entity.Cell, bool, error) {
	if err := validateInput(&board, history); err != nil {
		return entity.Cell{}, false, err
	}

	emptyCells := board.EmptyCells()
	if len(emptyCells) == 0 {
		return entity.Cell{}, false, nil
	}

	// opening book
	if len(history) == 0 {
		return entity.Cell{Row: 1, Col: 1}, true, nil
	}

	if len(history) == 1 && board[1][1] != entity.EmptyCell {
		return entity.Cell{Row: 0, Col: 0}, true, nil
	}

	bestMove := emptyCells[0]
	bestScore := math.Inf(-1)

	for _, cell := range emptyCells {
		score := evaluatePosition(&board, history, cell)

		switch {
		case score > bestScore:
			bestScore = score
			bestMove = cell
		case score == bestScore && that.tieBreak():
			bestMove = cell
		}
	}

	return bestMove, true, nil
}

func (that *botService) tieBreak() bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.rnd.Float64() < tieBreakChance
}

// evaluatePosition - heuristic value of the AI playing the given empty cell.
func evaluatePosition(board *entity.Board, history []entity.Move, cell entity.Cell) float64 {
	total := 0.0

	for _, line := range entity.WinLines {
		if !lineContains(line, cell) {
			continue
		}

		score, kind := evaluateLine(board.Line(line))
		total += float64(score)

		switch kind {
		case lineAIWin:
			return immediateWinScore
		case lineBlockHuman:
			total += mustBlockBonus
		}
	}

	if willDisappear(history, cell) {
		total -= decayPenalty
	}

	centerDistance := math.Abs(float64(cell.Row)-1.5) + math.Abs(float64(cell.Col)-1.5)
	total += (3 - centerDistance) * centerWeight

	if isCorner(cell) {
		total += cornerBonus
	}

	return total
}

// evaluateLine scores a line from the AI's point of view.
func evaluateLine(line [entity.BoardSize]entity.Mark) (int, lineType) {
	var aiCount, humanCount, emptyCount int
	for _, mark := range line {
		switch mark {
		case entity.PlayerAI:
			aiCount++
		case entity.PlayerHuman:
			humanCount++
		default:
			emptyCount++
		}
	}

	switch {
	case aiCount > 0 && humanCount > 0:
		return deadLineScore, lineMixed
	case aiCount == 3 && emptyCount == 1:
		return aiWinScore, lineAIWin
	case humanCount == 3 && emptyCount == 1:
		return blockScore, lineBlockHuman
	case aiCount == 2 && emptyCount == 2:
		return aiBuildScore, lineAIBuild
	case aiCount == 1 && emptyCount == 3:
		return aiStartScore, lineAIStart
	case humanCount == 2 && emptyCount == 2:
		return threatScore, lineHumanThreat
	case humanCount == 1 && emptyCount == 3:
		return humanStart, lineHumanStart
	default:
		return neutralScore, lineNeutral
	}
}

// willDisappear reports whether the cell is the one the next decay step would clear for either player.
func willDisappear(history []entity.Move, cell entity.Cell) bool {
	for _, player := range []entity.Mark{entity.PlayerAI, entity.PlayerHuman} {
		moves := entity.PlayerMoves(history, player)
		if len(moves) < entity.MemorySize {
			continue
		}

		if moves[len(moves)-entity.MemorySize].Cell() == cell {
			return true
		}
	}

	return false
}

func validateInput(board *entity.Board, history []entity.Move) error {
	if err := board.Validate(); err != nil {
		return err
	}

	for _, move := range history {
		if !entity.InBounds(move.Row, move.Col) {
			return fmt.Errorf("%w: history move %d out of range", apperror.ErrInvalidBoardState, move.Seq)
		}
	}

	return nil
}

func lineContains(line [entity.BoardSize]entity.Cell, cell entity.Cell) bool {
	for _, c := range line {
		if c == cell {
			return true
		}
	}

	return false
}

func isCorner(cell entity.Cell) bool {
	last := entity.BoardSize - 1
	return (cell.Row == 0 || cell.Row == last) && (cell.Col == 0 || cell.Col == last)
}
