package industry

// MaterialRequirement is one input line of a blueprint: the item consumed
// and the quantity needed per run, before any efficiency is applied.
type MaterialRequirement struct {
	ItemID     int64
	CategoryID int64 // used for rig-bonus matching
	Quantity   int64 // base quantity per run
}

// BlueprintDefinition is the immutable catalog record for one blueprint
// or reaction formula. It is returned by CatalogLookup and never mutated
// by the engine.
type BlueprintDefinition struct {
	BlueprintID    int64
	Activity       Activity
	OutputItemID   int64
	OutputQuantity int64 // units produced per run
	Materials      []MaterialRequirement
	BaseTimeSec    int64 // production time per run, unresearched

	// Research ceilings: material efficiency 0-10, time efficiency 0-20
	// in steps of 2.
	MaxMELevel int
	MaxTELevel int
}

// MaterialFor returns the requirement line for the given item, if present
func (b *BlueprintDefinition) MaterialFor(itemID int64) (MaterialRequirement, bool) {
	for _, m := range b.Materials {
		if m.ItemID == itemID {
			return m, true
		}
	}
	return MaterialRequirement{}, false
}

// InventionSkillRequirement names a skill consulted for the invention
// probability formula, together with its role.
type InventionSkillRequirement struct {
	SkillName string
	// Role is either "encryption" or "science"; the two roles carry
	// different weights in the probability formula.
	Role string
}

// InventionCatalogEntry holds the catalog data needed to invent an item:
// the base success probability, the materials consumed per attempt, the
// run count of the resulting blueprint copy, and the skills involved.
type InventionCatalogEntry struct {
	ItemID          int64
	BlueprintID     int64 // resulting tech-II blueprint
	BaseProbability float64
	BaseRuns        int64 // runs on the invented copy, before decryptors
	BaseME          int
	BaseTE          int
	Materials       []MaterialRequirement
	Skills          []InventionSkillRequirement
}

// Decryptor is an optional item consumed during invention. It scales the
// success probability and shifts the run count and ME/TE of the invented
// blueprint copy.
type Decryptor struct {
	ItemID                int64
	Name                  string
	ProbabilityMultiplier float64
	RunsModifier          int64
	MEModifier            int
	TEModifier            int
}

// StructureBonus is the fixed bonus set of a structure tier, expressed in
// percent (1 means 1%). Material and cost bonuses are independent terms.
type StructureBonus struct {
	MaterialBonusPct float64
	TimeBonusPct     float64
	CostBonusPct     float64
}

// RigBonus is the bonus contributed by one installed rig. A rig only
// affects materials of its declared category; everything else gets no
// rig term at all.
type RigBonus struct {
	AffectedCategoryID int64
	MaterialBonusPct   float64
	TimeBonusPct       float64
}
