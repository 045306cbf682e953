package queries

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/andrescamacho/industry-go/internal/application/common"
	"github.com/andrescamacho/industry-go/internal/application/planning/services"
	"github.com/andrescamacho/industry-go/internal/application/planning/types"
	"github.com/andrescamacho/industry-go/internal/domain/industry"
)

// ResolveProductionPlanQuery requests a full BOM resolution for an item
type ResolveProductionPlanQuery struct {
	ItemID      int64
	Runs        int64
	MELevel     int
	TELevel     int
	FacilityID  string // empty means no facility bonuses
	Activity    industry.Activity
	RegionID    int64
	CharacterID int64 // zero disables owned-blueprint overrides and skill lookups
	MaxDepth    int   // zero means unlimited
	BuyItemIDs  []int64

	// WithPricing attaches a cost breakdown to the response
	WithPricing bool
}

// ResolveProductionPlanResponse contains the resolved plan
type ResolveProductionPlanResponse struct {
	Plan *types.ProductionPlanDTO
}

// ResolveProductionPlanHandler is the single entry point turning
// (item, runs, efficiency, facility) into a costed production plan.
type ResolveProductionPlanHandler struct {
	expander     *services.BOMExpander
	bonuses      *services.BonusResolver
	calculator   *services.CostCalculator
	facilityRepo industry.FacilityRepository
}

// NewResolveProductionPlanHandler creates a new handler
func NewResolveProductionPlanHandler(
	expander *services.BOMExpander,
	bonuses *services.BonusResolver,
	calculator *services.CostCalculator,
	facilityRepo industry.FacilityRepository,
) *ResolveProductionPlanHandler {
	return &ResolveProductionPlanHandler{
		expander:     expander,
		bonuses:      bonuses,
		calculator:   calculator,
		facilityRepo: facilityRepo,
	}
}

// Handle executes the query
func (h *ResolveProductionPlanHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*ResolveProductionPlanQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	eff, err := industry.NewEfficiencyState(query.MELevel, query.TELevel)
	if err != nil {
		return nil, err
	}

	var facility *industry.Facility
	if query.FacilityID != "" {
		facility, err = h.facilityRepo.FindByID(ctx, query.FacilityID)
		if err != nil {
			return nil, fmt.Errorf("failed to load facility %s: %w", query.FacilityID, err)
		}
	}

	expandReq := services.ExpandRequest{
		ItemID:      query.ItemID,
		Runs:        query.Runs,
		Efficiency:  eff,
		Facility:    facility,
		Activity:    query.Activity,
		CharacterID: query.CharacterID,
		MaxDepth:    query.MaxDepth,
	}
	if len(query.BuyItemIDs) > 0 {
		expandReq.Policy = services.BuyListPolicy(query.BuyItemIDs...)
	}

	result, err := h.expander.Expand(ctx, expandReq)
	if err != nil {
		return nil, err
	}

	plan := &types.ProductionPlanDTO{
		PlanID:       uuid.NewString(),
		ItemID:       query.ItemID,
		Runs:         query.Runs,
		Activity:     string(query.Activity),
		Tree:         types.NodeToDTO(result.Root),
		TotalSeconds: result.TotalSeconds,
	}

	if query.WithPricing {
		breakdown, err := h.price(ctx, query, eff, facility, result)
		if err != nil {
			return nil, err
		}
		plan.Pricing = types.BreakdownToDTO(breakdown)
		plan.Materials = materialLinesFromBreakdown(breakdown)
	} else {
		plan.Materials = materialLinesFromFlat(result.FlatMaterials)
	}

	return &ResolveProductionPlanResponse{Plan: plan}, nil
}

// price runs the cost calculator with the root blueprint's structure
// cost multiplier.
func (h *ResolveProductionPlanHandler) price(
	ctx context.Context,
	query *ResolveProductionPlanQuery,
	eff industry.EfficiencyState,
	facility *industry.Facility,
	result *services.ExpansionResult,
) (*industry.CostBreakdown, error) {
	costMultiplier := 1.0
	if facility != nil {
		bonuses, err := h.bonuses.Resolve(ctx, result.RootDefinition, eff, facility)
		if err != nil {
			return nil, err
		}
		costMultiplier = bonuses.CostMultiplier()
	}

	return h.calculator.Price(ctx, services.PricingRequest{
		Result:         result,
		Runs:           query.Runs,
		Activity:       query.Activity,
		Facility:       facility,
		CostMultiplier: costMultiplier,
		RegionID:       query.RegionID,
		CharacterID:    query.CharacterID,
	})
}

func materialLinesFromFlat(flat industry.FlatMaterialMap) []types.MaterialLineDTO {
	lines := make([]types.MaterialLineDTO, 0, len(flat))
	for _, itemID := range flat.SortedItemIDs() {
		lines = append(lines, types.MaterialLineDTO{ItemID: itemID, Quantity: flat[itemID]})
	}
	return lines
}

func materialLinesFromBreakdown(b *industry.CostBreakdown) []types.MaterialLineDTO {
	lines := make([]types.MaterialLineDTO, 0, len(b.MaterialLines))
	for _, line := range b.MaterialLines {
		lines = append(lines, types.MaterialLineDTO{
			ItemID:     line.ItemID,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice,
			TotalPrice: line.TotalPrice,
			HasPrice:   line.HasPrice,
		})
	}
	return lines
}
