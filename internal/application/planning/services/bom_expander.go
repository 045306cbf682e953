package services

import (
	"context"
	"math"

	"github.com/andrescamacho/industry-go/internal/application/common"
	"github.com/andrescamacho/industry-go/internal/domain/industry"
)

// BuildPolicy decides whether an input that has its own blueprint should
// be manufactured as an intermediate or bought as a raw material. The
// decision is injected so it can be tested in isolation and overridden
// per call.
type BuildPolicy func(itemID int64) bool

// BuildEverything is the default policy: any input with a blueprint is
// built as an intermediate.
func BuildEverything(int64) bool { return true }

// BuyListPolicy builds everything except the listed items
func BuyListPolicy(buyItemIDs ...int64) BuildPolicy {
	buy := make(map[int64]bool, len(buyItemIDs))
	for _, id := range buyItemIDs {
		buy[id] = true
	}
	return func(itemID int64) bool { return !buy[itemID] }
}

// ExpandRequest carries the parameters of one expansion
type ExpandRequest struct {
	ItemID     int64
	Runs       int64
	Efficiency industry.EfficiencyState
	Facility   *industry.Facility // nil means no facility bonuses
	Activity   industry.Activity

	// CharacterID enables owner-specific blueprint overrides when the
	// expander was built with an OwnedBlueprintLookup. Zero disables.
	CharacterID int64

	// MaxDepth forces leaves below the given tree depth. Zero means
	// unlimited.
	MaxDepth int

	// Policy overrides the expander's default build-vs-buy policy for
	// this call when non-nil.
	Policy BuildPolicy
}

// ExpansionResult is the outcome of one expansion: the requirement tree,
// its flattened raw materials, and the critical-path production time.
type ExpansionResult struct {
	Root           *industry.RequirementNode
	RootDefinition *industry.BlueprintDefinition
	FlatMaterials  industry.FlatMaterialMap
	TotalSeconds   int64
}

// BOMExpander recursively expands an item's requirements into a tree of
// raw materials and manufactured intermediates, applying the bonus
// resolver at every level and memoizing identical sub-problems within a
// single call. It holds no mutable state of its own; every Expand call
// owns its own tree and memo cache, so concurrent calls are independent.
type BOMExpander struct {
	catalog industry.CatalogLookup
	bonuses *BonusResolver
	owned   industry.OwnedBlueprintLookup // optional, may be nil
	policy  BuildPolicy
}

// NewBOMExpander creates an expander with the default build-everything
// policy. The owned lookup may be nil when owner overrides are not used.
func NewBOMExpander(
	catalog industry.CatalogLookup,
	bonuses *BonusResolver,
	owned industry.OwnedBlueprintLookup,
) *BOMExpander {
	return &BOMExpander{
		catalog: catalog,
		bonuses: bonuses,
		owned:   owned,
		policy:  BuildEverything,
	}
}

// SetDefaultPolicy replaces the expander's default build-vs-buy policy
func (e *BOMExpander) SetDefaultPolicy(policy BuildPolicy) {
	e.policy = policy
}

// memoKey identifies one sub-problem within a single expansion. Two
// sub-trees with the same key are guaranteed identical.
type memoKey struct {
	itemID     int64
	runs       int64
	meLevel    int
	teLevel    int
	facilityID string
}

// expansion is the per-call state: memo cache and the DFS path used for
// cycle detection. Scoped to a single Expand invocation so that mutable
// facility and catalog state between calls can never leak into a cache.
type expansion struct {
	req    ExpandRequest
	policy BuildPolicy
	memo   map[memoKey]*industry.RequirementNode
	onPath map[int64]bool
	chain  []int64
}

// Expand resolves the full requirement tree for the requested item.
//
// Failure policy: unknown root item fails with ErrNotFound; runs below 1
// or research levels out of range fail with ErrInvalidInput; a blueprint
// chain referencing itself fails with ErrCyclicDependency; collaborator
// failures abort the whole call. No partial tree is ever returned.
func (e *BOMExpander) Expand(ctx context.Context, req ExpandRequest) (*ExpansionResult, error) {
	if req.Runs < 1 {
		return nil, &industry.ErrInvalidInput{Field: "runs", Value: req.Runs, Message: "runs must be at least 1"}
	}
	if _, err := industry.NewEfficiencyState(req.Efficiency.MELevel, req.Efficiency.TELevel); err != nil {
		return nil, err
	}
	if !req.Activity.IsValid() {
		return nil, &industry.ErrInvalidInput{Field: "activity", Value: string(req.Activity), Message: "unknown production activity"}
	}

	rootDef, err := e.catalog.GetDefinition(ctx, req.ItemID, req.Activity)
	if err != nil {
		return nil, &industry.ErrCollaborator{Operation: "GetDefinition", Err: err}
	}
	if rootDef == nil {
		return nil, &industry.ErrNotFound{ItemID: req.ItemID, Activity: req.Activity}
	}

	ec := &expansion{
		req:    req,
		policy: req.Policy,
		memo:   make(map[memoKey]*industry.RequirementNode),
		onPath: make(map[int64]bool),
	}
	if ec.policy == nil {
		ec.policy = e.policy
	}

	required := rootDef.OutputQuantity * req.Runs
	root, err := e.expandBlueprint(ctx, ec, rootDef, req.Runs, required, 1)
	if err != nil {
		return nil, err
	}

	result := &ExpansionResult{
		Root:           root,
		RootDefinition: rootDef,
		FlatMaterials:  root.Flatten(),
		TotalSeconds:   root.TotalTimeSeconds(),
	}

	common.LoggerFromContext(ctx).Log("debug", "requirement tree expanded", map[string]interface{}{
		"itemID":       req.ItemID,
		"runs":         req.Runs,
		"nodes":        root.CountNodes(),
		"depth":        root.TotalDepth(),
		"rawMaterials": len(result.FlatMaterials),
	})

	return result, nil
}

// expandBlueprint builds the subtree for `runs` runs of one blueprint.
// `required` is the quantity the parent actually needs, which may be
// less than runs * output quantity.
func (e *BOMExpander) expandBlueprint(
	ctx context.Context,
	ec *expansion,
	def *industry.BlueprintDefinition,
	runs int64,
	required int64,
	depth int,
) (*industry.RequirementNode, error) {
	itemID := def.OutputItemID

	if ec.onPath[itemID] {
		return nil, &industry.ErrCyclicDependency{
			ItemID: itemID,
			Chain:  append(append([]int64{}, ec.chain...), itemID),
		}
	}

	eff, err := e.effectiveEfficiency(ctx, ec, def.BlueprintID)
	if err != nil {
		return nil, err
	}

	key := memoKey{
		itemID:  itemID,
		runs:    runs,
		meLevel: eff.MELevel,
		teLevel: eff.TELevel,
	}
	if ec.req.Facility != nil {
		key.facilityID = ec.req.Facility.FacilityID
	}
	if cached, ok := ec.memo[key]; ok {
		// Identical sub-problem: same subtree, but the parent on this
		// branch may need a different share of the produced output.
		node := *cached
		node.Quantity = required
		return &node, nil
	}

	ec.onPath[itemID] = true
	ec.chain = append(ec.chain, itemID)
	defer func() {
		delete(ec.onPath, itemID)
		ec.chain = ec.chain[:len(ec.chain)-1]
	}()

	bonuses, err := e.bonuses.Resolve(ctx, def, eff, ec.req.Facility)
	if err != nil {
		return nil, err
	}

	node := industry.NewIntermediate(itemID, required, def.BlueprintID, runs, eff.MELevel, eff.TELevel)
	node.TimeSeconds = ceilTime(def.BaseTimeSec, bonuses.TimeMultiplier()) * runs

	for _, mat := range def.Materials {
		// Only the per-run figure rounds up; scaling by runs never
		// re-rounds, matching in-game behavior.
		perRun := ceilQuantity(mat.Quantity, bonuses.MaterialMultiplier(mat.CategoryID))
		total := perRun * runs

		child, err := e.expandInput(ctx, ec, mat.ItemID, total, depth+1)
		if err != nil {
			return nil, err
		}
		node.AddChild(child)
	}

	ec.memo[key] = node
	return node, nil
}

// expandInput resolves one input line: either a raw leaf or a recursive
// intermediate subtree, depending on catalog data, the build policy and
// the depth limit.
func (e *BOMExpander) expandInput(
	ctx context.Context,
	ec *expansion,
	itemID int64,
	total int64,
	depth int,
) (*industry.RequirementNode, error) {
	if ec.req.MaxDepth > 0 && depth > ec.req.MaxDepth {
		return industry.NewRawLeaf(itemID, total), nil
	}
	if !ec.policy(itemID) {
		return industry.NewRawLeaf(itemID, total), nil
	}

	childDef, err := e.catalog.GetDefinition(ctx, itemID, ec.req.Activity)
	if err != nil {
		return nil, &industry.ErrCollaborator{Operation: "GetDefinition", Err: err}
	}
	if childDef == nil {
		// Absence of a recipe means "must be bought", not a failure
		return industry.NewRawLeaf(itemID, total), nil
	}

	childRuns := ceilDiv(total, childDef.OutputQuantity)
	return e.expandBlueprint(ctx, ec, childDef, childRuns, total, depth)
}

// effectiveEfficiency applies an owner-specific blueprint copy on top of
// the caller-supplied research levels when one exists.
func (e *BOMExpander) effectiveEfficiency(
	ctx context.Context,
	ec *expansion,
	blueprintID int64,
) (industry.EfficiencyState, error) {
	eff := ec.req.Efficiency
	if e.owned == nil || ec.req.CharacterID == 0 {
		return eff, nil
	}
	owned, err := e.owned.GetOwnedLevels(ctx, ec.req.CharacterID, blueprintID)
	if err != nil {
		return eff, &industry.ErrCollaborator{Operation: "GetOwnedLevels", Err: err}
	}
	return eff.Override(owned), nil
}

// ceilQuantity rounds a bonus-adjusted per-run quantity up to a whole
// unit. Fractional per-unit material quantities always round up.
func ceilQuantity(base int64, multiplier float64) int64 {
	return int64(math.Ceil(float64(base) * multiplier))
}

// ceilTime rounds a bonus-adjusted per-run time up to a whole second
func ceilTime(baseSec int64, multiplier float64) int64 {
	return int64(math.Ceil(float64(baseSec) * multiplier))
}

// ceilDiv returns ceil(a / b) for positive integers
func ceilDiv(a, b int64) int64 {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}
