package tictactoe

import "time"

// Outcome is the result of a finished game seen from the human player's side.
type Outcome string

const (
	OutcomeWon  Outcome = "won"
	OutcomeLost Outcome = "lost"
	OutcomeDraw Outcome = "draw"
)

const (
	wonBasePoints  = 100
	lostBasePoints = -50

	fastMoveBonus   = 20
	slowMovePenalty = -10
	fastMoveLimit   = 5.0
	slowMoveLimit   = 15.0

	perfectGameMoves = 15
	perfectGameBonus = 30
	goodGameMoves    = 20
	goodGameBonus    = 15

	quickVictoryLimit = 60 * time.Second
	quickVictoryBonus = 25
)

type ScoreBreakdown struct {
	Base       int `json:"base"`
	Speed      int `json:"speed"`
	Efficiency int `json:"efficiency"`
	Time       int `json:"time"`
}

type Score struct {
	TotalPoints int            `json:"totalPoints"`
	Breakdown   ScoreBreakdown `json:"breakdown"`
}

// CalculateScore - scores a finished game. The breakdown keeps the signed components; only the
// total is floored at zero.
func CalculateScore(outcome Outcome, moveCount int, elapsed time.Duration) Score {
	breakdown := ScoreBreakdown{
		Base:       basePoints(outcome),
		Speed:      speedPoints(moveCount, elapsed),
		Efficiency: efficiencyPoints(outcome, moveCount),
		Time:       timePoints(outcome, elapsed),
	}

	total := breakdown.Base + breakdown.Speed + breakdown.Efficiency + breakdown.Time

	return Score{
		TotalPoints: max(total, 0),
		Breakdown:   breakdown,
	}
}

func basePoints(outcome Outcome) int {
	switch outcome {
	case OutcomeWon:
		return wonBasePoints
	case OutcomeLost:
		return lostBasePoints
	default:
		return 0
	}
}

func speedPoints(moveCount int, elapsed time.Duration) int {
	if moveCount <= 0 {
		return 0
	}

	averagePerMove := elapsed.Seconds() / float64(moveCount)

	switch {
	case averagePerMove < fastMoveLimit:
		return fastMoveBonus
	case averagePerMove > slowMoveLimit:
		return slowMovePenalty
	default:
		return 0
	}
}

func efficiencyPoints(outcome Outcome, moveCount int) int {
	if outcome != OutcomeWon {
		return 0
	}

	switch {
	case moveCount <= perfectGameMoves:
		return perfectGameBonus
	case moveCount <= goodGameMoves:
		return goodGameBonus
	default:
		return 0
	}
}

func timePoints(outcome Outcome, elapsed time.Duration) int {
	if outcome == OutcomeWon && elapsed < quickVictoryLimit {
		return quickVictoryBonus
	}

	return 0
}
