package services

import (
	"context"

	"github.com/andrescamacho/industry-go/internal/domain/industry"
)

const (
	// minMaterialMultiplier floors the stacked material bonus so no
	// input requirement ever reaches zero or goes negative.
	minMaterialMultiplier = 0.01

	// minTimeMultiplier floors the stacked time bonus
	minTimeMultiplier = 0.01

	// meReductionPerLevel is the per-level material saving of blueprint
	// research. Levels stack additively, not multiplicatively.
	meReductionPerLevel = 0.01

	// teReductionPerLevel is the per-level time saving of blueprint
	// research. Same additive stacking as ME.
	teReductionPerLevel = 0.01
)

// BonusSet is the resolved bonus stack for one (blueprint, efficiency,
// facility) combination. Material multipliers vary by material category
// because rigs only affect the categories they are fitted for; time and
// cost multipliers are uniform across the job.
type BonusSet struct {
	meReduction   float64
	structureMat  float64
	structureTime float64
	rigMaterial   map[int64]float64 // category -> security-scaled rig bonus
	rigTime       float64           // security-scaled, uniform across the job
	teReduction   float64
	costBonus     float64
}

// MaterialMultiplier returns the net multiplier applied to per-run input
// quantities of the given material category. Stacking order: ME level,
// then structure bonus, then rig bonus scaled by the security multiplier,
// each as independent subtractive terms, floored at minMaterialMultiplier.
func (b *BonusSet) MaterialMultiplier(categoryID int64) float64 {
	m := 1.0 - b.meReduction - b.structureMat - b.rigMaterial[categoryID]
	if m < minMaterialMultiplier {
		m = minMaterialMultiplier
	}
	return m
}

// TimeMultiplier returns the net multiplier applied to base production
// time, floored at minTimeMultiplier.
func (b *BonusSet) TimeMultiplier() float64 {
	m := 1.0 - b.teReduction - b.structureTime - b.rigTime
	if m < minTimeMultiplier {
		m = minTimeMultiplier
	}
	return m
}

// CostMultiplier returns the multiplier applied to the job's gross
// installation cost. Only structure-tier bonuses enter it; ME/TE and
// rigs do not discount installation fees.
func (b *BonusSet) CostMultiplier() float64 {
	m := 1.0 - b.costBonus
	if m < 0 {
		m = 0
	}
	return m
}

// BonusResolver computes the net material, time and cost multipliers for
// a (blueprint, efficiency, facility) combination by combining blueprint
// research with catalog-defined structure and rig bonuses.
type BonusResolver struct {
	catalog industry.CatalogLookup
}

// NewBonusResolver creates a new bonus resolver
func NewBonusResolver(catalog industry.CatalogLookup) *BonusResolver {
	return &BonusResolver{catalog: catalog}
}

// Resolve computes the bonus set for one blueprint. A nil facility means
// no structure or rig terms apply; only blueprint research counts.
func (r *BonusResolver) Resolve(
	ctx context.Context,
	blueprint *industry.BlueprintDefinition,
	eff industry.EfficiencyState,
	facility *industry.Facility,
) (*BonusSet, error) {
	set := &BonusSet{
		meReduction: float64(eff.MELevel) * meReductionPerLevel,
		teReduction: float64(eff.TELevel) * teReductionPerLevel,
		rigMaterial: make(map[int64]float64),
	}

	if facility == nil {
		return set, nil
	}

	structure, err := r.catalog.GetStructureBonus(ctx, facility.StructureTypeID)
	if err != nil {
		return nil, &industry.ErrCollaborator{Operation: "GetStructureBonus", Err: err}
	}
	if structure != nil {
		set.structureMat = structure.MaterialBonusPct / 100.0
		set.structureTime = structure.TimeBonusPct / 100.0
		set.costBonus = structure.CostBonusPct / 100.0
	}

	// Rig bonuses stack additively per category and scale with the
	// security-zone multiplier. The structure bonus never scales.
	secMult := facility.SecurityZone.RigMultiplier()
	for _, rigTypeID := range facility.RigTypeIDs {
		rig, err := r.catalog.GetRigBonus(ctx, rigTypeID)
		if err != nil {
			return nil, &industry.ErrCollaborator{Operation: "GetRigBonus", Err: err}
		}
		if rig == nil {
			continue
		}
		set.rigMaterial[rig.AffectedCategoryID] += rig.MaterialBonusPct / 100.0 * secMult
		set.rigTime += rig.TimeBonusPct / 100.0 * secMult
	}

	return set, nil
}
