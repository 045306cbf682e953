package persistence

// BlueprintModel represents the blueprints table
type BlueprintModel struct {
	BlueprintID    int64  `gorm:"column:blueprint_id;primaryKey"`
	Activity       string `gorm:"column:activity;not null;index:idx_blueprints_output,priority:2"`
	OutputItemID   int64  `gorm:"column:output_item_id;not null;index:idx_blueprints_output,priority:1"`
	OutputQuantity int64  `gorm:"column:output_quantity;not null;default:1"`
	BaseTimeSec    int64  `gorm:"column:base_time_sec;not null"`
	MaxMELevel     int    `gorm:"column:max_me_level;not null;default:10"`
	MaxTELevel     int    `gorm:"column:max_te_level;not null;default:20"`
}

func (BlueprintModel) TableName() string {
	return "blueprints"
}

// BlueprintMaterialModel represents the blueprint_materials table
type BlueprintMaterialModel struct {
	ID          int64 `gorm:"column:id;primaryKey;autoIncrement"`
	BlueprintID int64 `gorm:"column:blueprint_id;not null;index"`
	ItemID      int64 `gorm:"column:item_id;not null"`
	CategoryID  int64 `gorm:"column:category_id;not null;default:0"`
	Quantity    int64 `gorm:"column:quantity;not null"`
}

func (BlueprintMaterialModel) TableName() string {
	return "blueprint_materials"
}

// InventionModel represents the invention_data table
type InventionModel struct {
	ItemID          int64   `gorm:"column:item_id;primaryKey"`
	BlueprintID     int64   `gorm:"column:blueprint_id;not null"`
	BaseProbability float64 `gorm:"column:base_probability;not null"`
	BaseRuns        int64   `gorm:"column:base_runs;not null;default:1"`
	BaseMELevel     int     `gorm:"column:base_me_level;not null;default:2"`
	BaseTELevel     int     `gorm:"column:base_te_level;not null;default:4"`
}

func (InventionModel) TableName() string {
	return "invention_data"
}

// InventionMaterialModel represents the invention_materials table
type InventionMaterialModel struct {
	ID             int64 `gorm:"column:id;primaryKey;autoIncrement"`
	ItemID         int64 `gorm:"column:item_id;not null;index"`
	MaterialItemID int64 `gorm:"column:material_item_id;not null"`
	CategoryID     int64 `gorm:"column:category_id;not null;default:0"`
	Quantity       int64 `gorm:"column:quantity;not null"`
}

func (InventionMaterialModel) TableName() string {
	return "invention_materials"
}

// InventionSkillModel represents the invention_skills table
type InventionSkillModel struct {
	ID        int64  `gorm:"column:id;primaryKey;autoIncrement"`
	ItemID    int64  `gorm:"column:item_id;not null;index"`
	SkillName string `gorm:"column:skill_name;not null"`
	Role      string `gorm:"column:role;not null"` // "encryption" or "science"
}

func (InventionSkillModel) TableName() string {
	return "invention_skills"
}

// DecryptorModel represents the decryptors table
type DecryptorModel struct {
	ItemID                int64   `gorm:"column:item_id;primaryKey"`
	Name                  string  `gorm:"column:name;not null"`
	ProbabilityMultiplier float64 `gorm:"column:probability_multiplier;not null;default:1"`
	RunsModifier          int64   `gorm:"column:runs_modifier;not null;default:0"`
	MEModifier            int     `gorm:"column:me_modifier;not null;default:0"`
	TEModifier            int     `gorm:"column:te_modifier;not null;default:0"`
}

func (DecryptorModel) TableName() string {
	return "decryptors"
}

// StructureModel represents the structures table
type StructureModel struct {
	StructureTypeID  int64   `gorm:"column:structure_type_id;primaryKey"`
	Name             string  `gorm:"column:name"`
	MaterialBonusPct float64 `gorm:"column:material_bonus_pct;not null;default:0"`
	TimeBonusPct     float64 `gorm:"column:time_bonus_pct;not null;default:0"`
	CostBonusPct     float64 `gorm:"column:cost_bonus_pct;not null;default:0"`
}

func (StructureModel) TableName() string {
	return "structures"
}

// RigModel represents the rigs table
type RigModel struct {
	RigTypeID          int64   `gorm:"column:rig_type_id;primaryKey"`
	Name               string  `gorm:"column:name"`
	AffectedCategoryID int64   `gorm:"column:affected_category_id;not null"`
	MaterialBonusPct   float64 `gorm:"column:material_bonus_pct;not null;default:0"`
	TimeBonusPct       float64 `gorm:"column:time_bonus_pct;not null;default:0"`
}

func (RigModel) TableName() string {
	return "rigs"
}

// FacilityModel represents the facilities table
type FacilityModel struct {
	FacilityID      string  `gorm:"column:facility_id;primaryKey"`
	Name            string  `gorm:"column:name"`
	StructureTypeID int64   `gorm:"column:structure_type_id;not null"`
	SolarSystemID   int64   `gorm:"column:solar_system_id;not null"`
	SecurityZone    string  `gorm:"column:security_zone;not null"`
	TaxRate         float64 `gorm:"column:tax_rate;not null;default:0"`
	Rigs            string  `gorm:"column:rigs;type:text"` // JSON array as text
}

func (FacilityModel) TableName() string {
	return "facilities"
}

// MarketPriceModel represents the market_prices table
type MarketPriceModel struct {
	ItemID    int64   `gorm:"column:item_id;primaryKey"`
	RegionID  int64   `gorm:"column:region_id;primaryKey"`
	PriceType string  `gorm:"column:price_type;primaryKey"`
	Price     float64 `gorm:"column:price;not null"`
	SyncedAt  string  `gorm:"column:synced_at"` // ISO timestamp string
}

func (MarketPriceModel) TableName() string {
	return "market_prices"
}

// AdjustedPriceModel represents the adjusted_prices table used for
// estimated item value.
type AdjustedPriceModel struct {
	ItemID int64   `gorm:"column:item_id;primaryKey"`
	Price  float64 `gorm:"column:price;not null"`
}

func (AdjustedPriceModel) TableName() string {
	return "adjusted_prices"
}

// CostIndexModel represents the cost_indexes table
type CostIndexModel struct {
	SystemID  int64   `gorm:"column:system_id;primaryKey"`
	Activity  string  `gorm:"column:activity;primaryKey"`
	CostIndex float64 `gorm:"column:cost_index;not null"`
}

func (CostIndexModel) TableName() string {
	return "cost_indexes"
}

// CharacterSkillModel represents the character_skills table
type CharacterSkillModel struct {
	CharacterID int64  `gorm:"column:character_id;primaryKey"`
	SkillName   string `gorm:"column:skill_name;primaryKey"`
	Level       int    `gorm:"column:level;not null;default:0"`
}

func (CharacterSkillModel) TableName() string {
	return "character_skills"
}

// OwnedBlueprintModel represents the owned_blueprints table
type OwnedBlueprintModel struct {
	CharacterID int64 `gorm:"column:character_id;primaryKey"`
	BlueprintID int64 `gorm:"column:blueprint_id;primaryKey"`
	MELevel     int   `gorm:"column:me_level;not null;default:0"`
	TELevel     int   `gorm:"column:te_level;not null;default:0"`
}

func (OwnedBlueprintModel) TableName() string {
	return "owned_blueprints"
}
