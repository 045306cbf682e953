package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/industry-go/internal/application/common"
	"github.com/andrescamacho/industry-go/internal/application/planning/services"
	"github.com/andrescamacho/industry-go/internal/application/planning/types"
	"github.com/andrescamacho/industry-go/internal/domain/industry"
)

// OptimizeInventionQuery requests a decryptor optimization for an item
type OptimizeInventionQuery struct {
	ItemID       int64
	CharacterID  int64 // zero means unskilled
	RegionID     int64
	Strategy     industry.InventionStrategy
	CustomVolume float64
}

// OptimizeInventionResponse contains the optimization result
type OptimizeInventionResponse struct {
	Result *types.InventionResultDTO
}

// OptimizeInventionHandler handles invention optimization queries
type OptimizeInventionHandler struct {
	optimizer  *services.InventionOptimizer
	catalog    industry.CatalogLookup
	taxProfile industry.TaxProfile
}

// NewOptimizeInventionHandler creates a new handler
func NewOptimizeInventionHandler(
	optimizer *services.InventionOptimizer,
	catalog industry.CatalogLookup,
	taxProfile industry.TaxProfile,
) *OptimizeInventionHandler {
	return &OptimizeInventionHandler{
		optimizer:  optimizer,
		catalog:    catalog,
		taxProfile: taxProfile,
	}
}

// Handle executes the query
func (h *OptimizeInventionHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*OptimizeInventionQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	skills, err := h.resolveSkills(ctx, query)
	if err != nil {
		return nil, err
	}

	result, err := h.optimizer.Optimize(ctx, services.OptimizeRequest{
		ItemID:       query.ItemID,
		Skills:       skills,
		RegionID:     query.RegionID,
		Strategy:     query.Strategy,
		CustomVolume: query.CustomVolume,
	})
	if err != nil {
		return nil, err
	}

	dto := &types.InventionResultDTO{
		ItemID:          result.ItemID,
		BaseProbability: result.BaseProbability,
		Strategy:        string(result.Strategy),
		Best:            types.CandidateToDTO(result.Best),
	}
	for _, candidate := range result.Candidates {
		dto.Candidates = append(dto.Candidates, types.CandidateToDTO(candidate))
	}

	return &OptimizeInventionResponse{Result: dto}, nil
}

// resolveSkills reads the invention skill levels from the tax profile,
// using the item's catalog entry to resolve the concrete skill names.
func (h *OptimizeInventionHandler) resolveSkills(ctx context.Context, query *OptimizeInventionQuery) (industry.InventionSkills, error) {
	skills := industry.InventionSkills{}
	if query.CharacterID == 0 {
		return skills, nil
	}

	entry, err := h.catalog.GetInventionData(ctx, query.ItemID)
	if err != nil {
		return skills, &industry.ErrCollaborator{Operation: "GetInventionData", Err: err}
	}
	if entry == nil {
		return skills, &industry.ErrNoInventionData{ItemID: query.ItemID}
	}

	scienceSeen := 0
	for _, requirement := range entry.Skills {
		level, err := h.taxProfile.GetSkillLevel(ctx, query.CharacterID, requirement.SkillName)
		if err != nil {
			return skills, &industry.ErrCollaborator{Operation: "GetSkillLevel", Err: err}
		}
		switch requirement.Role {
		case "encryption":
			skills.EncryptionLevel = level
		case "science":
			if scienceSeen == 0 {
				skills.ScienceLevel1 = level
			} else {
				skills.ScienceLevel2 = level
			}
			scienceSeen++
		}
	}
	return skills, nil
}
