package entity

import (
	"fmt"

	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
)

// Mark is the content of a board cell.
type Mark string

const (
	EmptyCell   Mark = ""
	PlayerHuman Mark = "X"
	PlayerAI    Mark = "O"
)

type Board [BoardSize][BoardSize]Mark

type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type Move struct {
	Row    int  `json:"row"`
	Col    int  `json:"col"`
	Player Mark `json:"player"`
	Seq    int  `json:"seq"`
}

func (that Move) Cell() Cell {
	return Cell{Row: that.Row, Col: that.Col}
}

// DecayedCell is a cell cleared by memory decay, tagged with the mark that owned it.
type DecayedCell struct {
	Row    int  `json:"row"`
	Col    int  `json:"col"`
	Player Mark `json:"player"`
}

// TurnLogEntry records one human move, the AI reply if any, and what decayed in between.
type TurnLogEntry struct {
	HumanChoice   Cell          `json:"human_choice"`
	AIMove        *Cell         `json:"ai_move"`
	DeletingCells []DecayedCell `json:"deleting_cells"`
}

func (that TurnLogEntry) Clone() TurnLogEntry {
	clone := that
	if that.AIMove != nil {
		aiMove := *that.AIMove
		clone.AIMove = &aiMove
	}
	clone.DeletingCells = append([]DecayedCell{}, that.DeletingCells...)

	return clone
}

// DetermineWinner returns the mark owning a full line, scanning rows, columns and diagonals in
// that order, or EmptyCell when no line is complete.
func (that *Board) DetermineWinner() Mark {
	for _, line := range WinLines {
		first := that[line[0].Row][line[0].Col]
		if first == EmptyCell {
			continue
		}

		won := true
		for _, cell := range line[1:] {
			if that[cell.Row][cell.Col] != first {
				won = false
				break
			}
		}

		if won {
			return first
		}
	}

	return EmptyCell
}

// EmptyCells lists free cells in row-major order.
func (that *Board) EmptyCells() []Cell {
	cells := make([]Cell, 0, BoardSize*BoardSize)
	for row := range that {
		for col := range that[row] {
			if that[row][col] == EmptyCell {
				cells = append(cells, Cell{Row: row, Col: col})
			}
		}
	}

	return cells
}

func (that *Board) IsFull() bool {
	return len(that.EmptyCells()) == 0
}

// Line returns the marks along a line.
func (that *Board) Line(line [BoardSize]Cell) [BoardSize]Mark {
	var marks [BoardSize]Mark
	for i, cell := range line {
		marks[i] = that[cell.Row][cell.Col]
	}

	return marks
}

// Count returns how many cells hold the given mark.
func (that *Board) Count(mark Mark) int {
	count := 0
	for row := range that {
		for col := range that[row] {
			if that[row][col] == mark {
				count++
			}
		}
	}

	return count
}

// Validate - checks that every cell holds a known mark.
func (that *Board) Validate() error {
	for row := range that {
		for col := range that[row] {
			switch that[row][col] {
			case EmptyCell, PlayerHuman, PlayerAI:
			default:
				return fmt.Errorf("%w: unknown mark %q at row %d, col %d",
					apperror.ErrInvalidBoardState, that[row][col], row, col)
			}
		}
	}

	return nil
}

// Opponent returns the other player's mark.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerHuman:
		return PlayerAI
	case PlayerAI:
		return PlayerHuman
	default:
		return EmptyCell
	}
}
