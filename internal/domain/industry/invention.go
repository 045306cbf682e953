package industry

import "fmt"

// InventionStrategy is the objective the decryptor search optimizes for
type InventionStrategy string

const (
	// StrategyMinCostPerUnit minimizes expected invention cost per
	// successfully invented run.
	StrategyMinCostPerUnit InventionStrategy = "min-cost"

	// StrategyMaxProfit maximizes expected profit per invention attempt
	StrategyMaxProfit InventionStrategy = "max-profit"

	// StrategyCustomVolume normalizes expected cost by a caller-supplied
	// production volume.
	StrategyCustomVolume InventionStrategy = "custom-volume"
)

// ParseInventionStrategy converts a user-supplied string into a strategy
func ParseInventionStrategy(s string) (InventionStrategy, error) {
	switch s {
	case string(StrategyMinCostPerUnit), "cost":
		return StrategyMinCostPerUnit, nil
	case string(StrategyMaxProfit), "profit":
		return StrategyMaxProfit, nil
	case string(StrategyCustomVolume), "volume":
		return StrategyCustomVolume, nil
	default:
		return "", fmt.Errorf("unknown invention strategy: %q", s)
	}
}

// InventionSkills are the character skill levels entering the invention
// probability formula. The encryption skill and the two science skills
// carry different weights.
type InventionSkills struct {
	EncryptionLevel int
	ScienceLevel1   int
	ScienceLevel2   int
}

// Modifier returns the relative probability bonus granted by the skills
func (s InventionSkills) Modifier() float64 {
	return float64(s.EncryptionLevel)/40.0 +
		float64(s.ScienceLevel1+s.ScienceLevel2)/30.0
}

// DecryptorCandidate is one evaluated choice in the decryptor search.
// A nil Decryptor is the "no decryptor" baseline.
type DecryptorCandidate struct {
	Decryptor   *Decryptor
	Probability float64 // effective success probability, clamped to [0,1]
	Runs        int64   // runs on the invented copy
	ME          int
	TE          int

	MaterialCost float64 // invention materials plus the decryptor itself
	Score        float64 // objective value under the chosen strategy
}

// InventionResult is the outcome of an invention optimization: every
// candidate evaluated plus the selected best under the strategy.
type InventionResult struct {
	ItemID          int64
	BaseProbability float64
	Strategy        InventionStrategy
	Candidates      []DecryptorCandidate
	Best            DecryptorCandidate
}
