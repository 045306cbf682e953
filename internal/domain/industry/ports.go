package industry

import "context"

// CatalogLookup is the reference-data collaborator. Pure query interface,
// side-effect free, assumed cached by the implementation. A nil result
// with a nil error means "no such record", which the engine treats as
// "must be bought" everywhere except the root item.
type CatalogLookup interface {
	// GetDefinition returns the blueprint or reaction definition that
	// produces itemID under the given activity, or nil when none exists.
	GetDefinition(ctx context.Context, itemID int64, activity Activity) (*BlueprintDefinition, error)

	// GetInventionData returns the invention catalog entry for an item,
	// or nil when the item is not inventable.
	GetInventionData(ctx context.Context, itemID int64) (*InventionCatalogEntry, error)

	// GetStructureBonus returns the fixed bonus set of a structure tier
	GetStructureBonus(ctx context.Context, structureTypeID int64) (*StructureBonus, error)

	// GetRigBonus returns the bonus definition of an installed rig
	GetRigBonus(ctx context.Context, rigTypeID int64) (*RigBonus, error)

	// ListDecryptors returns every decryptor the invention search may use
	ListDecryptors(ctx context.Context) ([]Decryptor, error)
}

// PriceType selects which side of the order book a unit price comes from
type PriceType string

const (
	PriceSell PriceType = "SELL"
	PriceBuy  PriceType = "BUY"
)

// PriceLookup supplies market prices. A nil price with a nil error means
// the item has no quote; missing prices are tolerated and surfaced as a
// count, never treated as zero.
type PriceLookup interface {
	// GetUnitPrice returns the market unit price for an item in a region
	GetUnitPrice(ctx context.Context, itemID, regionID int64, priceType PriceType) (*float64, error)

	// GetAdjustedPrice returns the pricing-engine valuation used for
	// estimated item value, distinct from the market price.
	GetAdjustedPrice(ctx context.Context, itemID int64) (*float64, error)
}

// CostIndexLookup supplies the per-solar-system, per-activity cost index
// entering job installation fees. Indexes are small fractions (0..~0.05).
type CostIndexLookup interface {
	Get(ctx context.Context, systemID int64, activity Activity) (float64, error)
}

// TaxProfile supplies character skill levels (0..5) by name
type TaxProfile interface {
	GetSkillLevel(ctx context.Context, characterID int64, skillName string) (int, error)
}

// OwnedBlueprintLookup resolves owner-specific blueprint research levels.
// A nil result means the character owns no copy of the blueprint and the
// caller-supplied levels stand.
type OwnedBlueprintLookup interface {
	GetOwnedLevels(ctx context.Context, characterID, blueprintID int64) (*OwnedBlueprintLevels, error)
}

// FacilityRepository resolves facility definitions by id
type FacilityRepository interface {
	FindByID(ctx context.Context, facilityID string) (*Facility, error)
}
