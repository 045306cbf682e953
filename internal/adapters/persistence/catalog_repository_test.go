package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/industry-go/internal/adapters/persistence"
	"github.com/andrescamacho/industry-go/internal/domain/industry"
	"github.com/andrescamacho/industry-go/test/helpers"
)

func TestCatalogRepository_GetDefinition(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormCatalogRepository(db)

	require.NoError(t, db.Create(&persistence.BlueprintModel{
		BlueprintID:    689,
		Activity:       "MANUFACTURING",
		OutputItemID:   603,
		OutputQuantity: 1,
		BaseTimeSec:    6000,
		MaxMELevel:     10,
		MaxTELevel:     20,
	}).Error)
	require.NoError(t, db.Create(&persistence.BlueprintMaterialModel{
		BlueprintID: 689, ItemID: 35, CategoryID: 4, Quantity: 5,
	}).Error)
	require.NoError(t, db.Create(&persistence.BlueprintMaterialModel{
		BlueprintID: 689, ItemID: 34, CategoryID: 4, Quantity: 10,
	}).Error)

	// Act
	def, err := repo.GetDefinition(context.Background(), 603, industry.ActivityManufacturing)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, def)
	assert.Equal(t, int64(689), def.BlueprintID)
	assert.Equal(t, int64(6000), def.BaseTimeSec)
	// Materials come back in item-id order regardless of insert order
	require.Len(t, def.Materials, 2)
	assert.Equal(t, int64(34), def.Materials[0].ItemID)
	assert.Equal(t, int64(35), def.Materials[1].ItemID)
}

func TestCatalogRepository_GetDefinition_NotFoundIsNil(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormCatalogRepository(db)

	// Act
	def, err := repo.GetDefinition(context.Background(), 999, industry.ActivityManufacturing)

	// Assert - absence is not an error; it means "must be bought"
	require.NoError(t, err)
	assert.Nil(t, def)
}

func TestCatalogRepository_GetDefinition_ActivityDiscriminates(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormCatalogRepository(db)

	require.NoError(t, db.Create(&persistence.BlueprintModel{
		BlueprintID:  4097,
		Activity:     "REACTION",
		OutputItemID: 16670,
	}).Error)

	// Act
	reaction, err := repo.GetDefinition(context.Background(), 16670, industry.ActivityReaction)
	require.NoError(t, err)
	manufacturing, err := repo.GetDefinition(context.Background(), 16670, industry.ActivityManufacturing)
	require.NoError(t, err)

	// Assert
	assert.NotNil(t, reaction)
	assert.Nil(t, manufacturing)
}

func TestCatalogRepository_GetInventionData(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormCatalogRepository(db)

	require.NoError(t, db.Create(&persistence.InventionModel{
		ItemID:          12042,
		BlueprintID:     12043,
		BaseProbability: 0.34,
		BaseRuns:        10,
		BaseMELevel:     2,
		BaseTELevel:     4,
	}).Error)
	require.NoError(t, db.Create(&persistence.InventionMaterialModel{
		ItemID: 12042, MaterialItemID: 20424, Quantity: 2,
	}).Error)
	require.NoError(t, db.Create(&persistence.InventionSkillModel{
		ItemID: 12042, SkillName: "Amarr Encryption Methods", Role: "encryption",
	}).Error)
	require.NoError(t, db.Create(&persistence.InventionSkillModel{
		ItemID: 12042, SkillName: "Laser Physics", Role: "science",
	}).Error)

	// Act
	entry, err := repo.GetInventionData(context.Background(), 12042)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, 0.34, entry.BaseProbability)
	assert.Equal(t, int64(10), entry.BaseRuns)
	require.Len(t, entry.Materials, 1)
	assert.Equal(t, int64(20424), entry.Materials[0].ItemID)
	require.Len(t, entry.Skills, 2)
	assert.Equal(t, "encryption", entry.Skills[0].Role)
}

func TestCatalogRepository_GetInventionData_NotInventable(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormCatalogRepository(db)

	// Act
	entry, err := repo.GetInventionData(context.Background(), 603)

	// Assert
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestCatalogRepository_StructureAndRigBonuses(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormCatalogRepository(db)

	require.NoError(t, db.Create(&persistence.StructureModel{
		StructureTypeID: 35825, Name: "Raitaru",
		MaterialBonusPct: 1, TimeBonusPct: 15, CostBonusPct: 3,
	}).Error)
	require.NoError(t, db.Create(&persistence.RigModel{
		RigTypeID: 43920, Name: "Standup M-Set Ship Manufacturing Efficiency I",
		AffectedCategoryID: 4, MaterialBonusPct: 2, TimeBonusPct: 20,
	}).Error)

	// Act
	structure, err := repo.GetStructureBonus(context.Background(), 35825)
	require.NoError(t, err)
	rig, err := repo.GetRigBonus(context.Background(), 43920)
	require.NoError(t, err)
	unknownStructure, err := repo.GetStructureBonus(context.Background(), 1)
	require.NoError(t, err)
	unknownRig, err := repo.GetRigBonus(context.Background(), 1)
	require.NoError(t, err)

	// Assert
	assert.Equal(t, 1.0, structure.MaterialBonusPct)
	assert.Equal(t, 3.0, structure.CostBonusPct)
	assert.Equal(t, int64(4), rig.AffectedCategoryID)
	assert.Equal(t, 2.0, rig.MaterialBonusPct)
	// Unseeded references degrade to "no bonus", never an error
	assert.Nil(t, unknownStructure)
	assert.Nil(t, unknownRig)
}

func TestCatalogRepository_ListDecryptors(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormCatalogRepository(db)

	require.NoError(t, db.Create(&persistence.DecryptorModel{
		ItemID: 34202, Name: "Attainment Decryptor",
		ProbabilityMultiplier: 1.8, RunsModifier: 4, MEModifier: -1, TEModifier: 2,
	}).Error)
	require.NoError(t, db.Create(&persistence.DecryptorModel{
		ItemID: 34201, Name: "Accelerant Decryptor",
		ProbabilityMultiplier: 1.2, RunsModifier: 1, MEModifier: 2, TEModifier: 10,
	}).Error)

	// Act
	decryptors, err := repo.ListDecryptors(context.Background())

	// Assert
	require.NoError(t, err)
	require.Len(t, decryptors, 2)
	assert.Equal(t, int64(34201), decryptors[0].ItemID)
	assert.Equal(t, int64(34202), decryptors[1].ItemID)
	assert.Equal(t, -1, decryptors[1].MEModifier)
}
