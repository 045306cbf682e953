package services

import (
	"context"

	"github.com/andrescamacho/industry-go/internal/domain/industry"
)

// OptimizeRequest carries the parameters of one invention optimization
type OptimizeRequest struct {
	ItemID       int64
	Skills       industry.InventionSkills
	RegionID     int64
	Strategy     industry.InventionStrategy
	CustomVolume float64 // required when Strategy is StrategyCustomVolume
}

// InventionOptimizer computes invention success probabilities and
// searches the decryptor catalog for the choice that best serves the
// requested objective.
type InventionOptimizer struct {
	catalog industry.CatalogLookup
	prices  industry.PriceLookup
}

// NewInventionOptimizer creates a new invention optimizer
func NewInventionOptimizer(catalog industry.CatalogLookup, prices industry.PriceLookup) *InventionOptimizer {
	return &InventionOptimizer{catalog: catalog, prices: prices}
}

// Optimize evaluates the "no decryptor" baseline plus every decryptor in
// the catalog and selects the candidate with the best objective score.
// Ties are broken by lowest total material cost.
func (o *InventionOptimizer) Optimize(ctx context.Context, req OptimizeRequest) (*industry.InventionResult, error) {
	if req.Strategy == industry.StrategyCustomVolume && req.CustomVolume <= 0 {
		return nil, &industry.ErrInvalidInput{
			Field:   "customVolume",
			Value:   req.CustomVolume,
			Message: "custom-volume strategy requires a positive volume",
		}
	}

	entry, err := o.catalog.GetInventionData(ctx, req.ItemID)
	if err != nil {
		return nil, &industry.ErrCollaborator{Operation: "GetInventionData", Err: err}
	}
	if entry == nil {
		return nil, &industry.ErrNoInventionData{ItemID: req.ItemID}
	}

	decryptors, err := o.catalog.ListDecryptors(ctx)
	if err != nil {
		return nil, &industry.ErrCollaborator{Operation: "ListDecryptors", Err: err}
	}

	baseMaterialCost, err := o.materialCost(ctx, entry.Materials, req.RegionID)
	if err != nil {
		return nil, err
	}

	productPrice := 0.0
	if price, err := o.prices.GetUnitPrice(ctx, entry.ItemID, req.RegionID, industry.PriceSell); err != nil {
		return nil, &industry.ErrCollaborator{Operation: "GetUnitPrice", Err: err}
	} else if price != nil {
		productPrice = *price
	}

	candidates := make([]industry.DecryptorCandidate, 0, len(decryptors)+1)
	candidates = append(candidates, o.evaluate(entry, nil, req, baseMaterialCost, 0, productPrice))
	for i := range decryptors {
		dec := decryptors[i]
		decryptorPrice := 0.0
		if price, err := o.prices.GetUnitPrice(ctx, dec.ItemID, req.RegionID, industry.PriceSell); err != nil {
			return nil, &industry.ErrCollaborator{Operation: "GetUnitPrice", Err: err}
		} else if price != nil {
			decryptorPrice = *price
		}
		candidates = append(candidates, o.evaluate(entry, &dec, req, baseMaterialCost, decryptorPrice, productPrice))
	}

	best := candidates[0]
	for _, candidate := range candidates[1:] {
		if o.better(req.Strategy, candidate, best) {
			best = candidate
		}
	}

	return &industry.InventionResult{
		ItemID:          req.ItemID,
		BaseProbability: entry.BaseProbability,
		Strategy:        req.Strategy,
		Candidates:      candidates,
		Best:            best,
	}, nil
}

// evaluate builds one candidate: effective probability, adjusted run
// count and ME/TE range, total attempt cost and objective score.
func (o *InventionOptimizer) evaluate(
	entry *industry.InventionCatalogEntry,
	dec *industry.Decryptor,
	req OptimizeRequest,
	baseMaterialCost float64,
	decryptorPrice float64,
	productPrice float64,
) industry.DecryptorCandidate {
	probMultiplier := 1.0
	runsModifier := int64(0)
	meModifier, teModifier := 0, 0
	if dec != nil {
		probMultiplier = dec.ProbabilityMultiplier
		runsModifier = dec.RunsModifier
		meModifier = dec.MEModifier
		teModifier = dec.TEModifier
	}

	probability := entry.BaseProbability * (1.0 + req.Skills.Modifier()) * probMultiplier
	probability = clamp01(probability)

	runs := entry.BaseRuns + runsModifier
	if runs < 1 {
		runs = 1
	}

	candidate := industry.DecryptorCandidate{
		Decryptor:    dec,
		Probability:  probability,
		Runs:         runs,
		ME:           clampLevel(entry.BaseME+meModifier, industry.MaxMELevel),
		TE:           clampLevel(entry.BaseTE+teModifier, industry.MaxTELevel),
		MaterialCost: baseMaterialCost + decryptorPrice,
	}
	candidate.Score = o.score(req, candidate, productPrice)
	return candidate
}

// score computes the objective value. For cost-normalizing strategies a
// lower score is better; for profit a higher one is.
func (o *InventionOptimizer) score(req OptimizeRequest, c industry.DecryptorCandidate, productPrice float64) float64 {
	expectedRuns := c.Probability * float64(c.Runs)
	switch req.Strategy {
	case industry.StrategyMaxProfit:
		return expectedRuns*productPrice - c.MaterialCost
	case industry.StrategyCustomVolume:
		if c.Probability == 0 {
			return maxScore
		}
		return c.MaterialCost / (c.Probability * req.CustomVolume)
	default: // StrategyMinCostPerUnit
		if expectedRuns == 0 {
			return maxScore
		}
		return c.MaterialCost / expectedRuns
	}
}

// better reports whether a beats b under the strategy's objective
// direction, breaking exact ties by lowest material cost.
func (o *InventionOptimizer) better(strategy industry.InventionStrategy, a, b industry.DecryptorCandidate) bool {
	if a.Score == b.Score {
		return a.MaterialCost < b.MaterialCost
	}
	if strategy == industry.StrategyMaxProfit {
		return a.Score > b.Score
	}
	return a.Score < b.Score
}

// materialCost sums the market cost of the invention attempt materials.
// Unpriced datacores contribute nothing, consistent with how missing
// prices degrade the cost breakdown.
func (o *InventionOptimizer) materialCost(ctx context.Context, materials []industry.MaterialRequirement, regionID int64) (float64, error) {
	total := 0.0
	for _, mat := range materials {
		price, err := o.prices.GetUnitPrice(ctx, mat.ItemID, regionID, industry.PriceSell)
		if err != nil {
			return 0, &industry.ErrCollaborator{Operation: "GetUnitPrice", Err: err}
		}
		if price != nil {
			total += float64(mat.Quantity) * *price
		}
	}
	return total, nil
}

// maxScore stands in for "infinitely bad" on minimizing objectives
const maxScore = 1e308

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampLevel(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
