package game

import (
	"math"

	"teeko/utils"
)

const (
	MaterialWeight   = 0.1
	ClusteringWeight = 0.1
	// MaxSpread stands in for the average distance of a side with fewer than
	// two pieces.
	MaxSpread = 5.0
	// MaxHeuristic keeps non-terminal scores strictly inside the win values.
	MaxHeuristic = 0.99
)

// EvaluateHeuristic blends material and clustering into a score in
// [-0.99, 0.99]; decided boards score exactly 1 or -1.
func EvaluateHeuristic(p Perspective, b Board) float64 {
	if v := p.Value(b); v != NoWinner {
		return float64(v)
	}

	score := materialScore(p, b)
	score += ClusteringWeight * (averageDistance(b.Positions(p.Opp)) - averageDistance(b.Positions(p.Me)))

	return utils.Clamp(score, -MaxHeuristic, MaxHeuristic)
}

// EvaluateMaterial only tallies pieces. It is a weaker baseline for experiments.
func EvaluateMaterial(p Perspective, b Board) float64 {
	if v := p.Value(b); v != NoWinner {
		return float64(v)
	}
	return utils.Clamp(materialScore(p, b), -MaxHeuristic, MaxHeuristic)
}

// Heuristic is EvaluateHeuristic from this perspective.
func (p Perspective) Heuristic(b Board) float64 {
	return EvaluateHeuristic(p, b)
}

func materialScore(p Perspective, b Board) float64 {
	return MaterialWeight * float64(b.Count(p.Me)-b.Count(p.Opp))
}

// averageDistance is the mean pairwise Euclidean distance between positions
func averageDistance(positions []Position) float64 {
	if len(positions) < 2 {
		return MaxSpread
	}

	total := 0.0
	pairs := 0
	for i := range positions {
		for j := i + 1; j < len(positions); j++ {
			dr := float64(positions[i].Row - positions[j].Row)
			dc := float64(positions[i].Col - positions[j].Col)
			total += math.Sqrt(dr*dr + dc*dc)
			pairs++
		}
	}
	return total / float64(pairs)
}
