package stor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/rollinitiative/rollinit/pkg/ridb/rimodel"
	"github.com/rollinitiative/rollinit/pkg/ridb/stor"
	"github.com/rollinitiative/rollinit/pkg/rierr"
	"github.com/rollinitiative/rollinit/pkg/tutil"
)

func idByName[M any](t *testing.T, db *gorm.DB, name string) string {
	t.Helper()

	var row struct{ ID string }
	err := db.Model(new(M)).Select("id").Where("name = ?", name).Take(&row).Error
	require.NoError(t, err)

	return row.ID
}

func newFighter(t *testing.T, db *gorm.DB) *rimodel.Character {
	return &rimodel.Character{
		AbilityScoreHealth: rimodel.AbilityScoreHealth{
			MaxHP: 12, CurrentHP: 12, ArmorClass: 16,
			Strength: 16, Dexterity: 12, Constitution: 14,
			Intelligence: 10, Wisdom: 11, Charisma: 8,
		},
		FirstName:        "Bruenor",
		LastName:         "Battlehammer",
		Age:              150,
		Level:            1,
		RaceID:           idByName[rimodel.CharacterRace](t, db, "Dwarf"),
		CharacterClassID: idByName[rimodel.CharacterClass](t, db, "Fighter"),
	}
}

func TestCreateCharacterLoadsRelations(t *testing.T) {
	db := tutil.NewTestDB(t)
	characterStor := stor.NewGormCharacterStor(db)

	c, err := characterStor.CreateCharacter(newFighter(t, db))
	require.NoError(t, err)
	require.True(t, rimodel.IsUUID(c.ID))
	require.NotNil(t, c.Race)
	require.NotNil(t, c.CharacterClass)
	assert.Equal(t, "Dwarf", c.Race.Name)
	assert.Equal(t, "Fighter", c.CharacterClass.Name)
	assert.Equal(t, "Bruenor Battlehammer", c.String())
}

func TestCreateCharacterWithUnknownRaceFails(t *testing.T) {
	db := tutil.NewTestDB(t)
	characterStor := stor.NewGormCharacterStor(db)

	c := newFighter(t, db)
	c.RaceID = "00000000-0000-0000-0000-000000000000"

	_, err := characterStor.CreateCharacter(c)
	require.Error(t, err)
	assert.Equal(t, rierr.CodeInvalidArgument, rierr.CodeOf(err))

	var count int64
	require.NoError(t, db.Model(&rimodel.Character{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestModifyCharacterRejectsHealthAboveMax(t *testing.T) {
	db := tutil.NewTestDB(t)
	characterStor := stor.NewGormCharacterStor(db)

	c, err := characterStor.CreateCharacter(newFighter(t, db))
	require.NoError(t, err)

	_, err = characterStor.ModifyCharacter(c.ID, func(c *rimodel.Character) error {
		c.CurrentHP = c.MaxHP + 1
		return nil
	})
	require.Error(t, err)

	var rerr *rierr.Error
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, []string{"Health cannot exceed max health."}, rerr.Fields["current_hp"])

	stored, err := characterStor.GetCharacterByID(c.ID)
	require.NoError(t, err)
	assert.Equal(t, 12, stored.CurrentHP)
}

func TestModifyCharacterLevelUp(t *testing.T) {
	db := tutil.NewTestDB(t)
	characterStor := stor.NewGormCharacterStor(db)

	c, err := characterStor.CreateCharacter(newFighter(t, db))
	require.NoError(t, err)

	c, err = characterStor.ModifyCharacter(c.ID, func(c *rimodel.Character) error {
		c.TakeDamage(6)
		c.LevelUp(8)
		return nil
	})
	require.NoError(t, err)

	// 12 + 8 + 2 (constitution 14), current rescaled from 6/12.
	assert.Equal(t, 2, c.Level)
	assert.Equal(t, 22, c.MaxHP)
	assert.Equal(t, 11, c.CurrentHP)
	require.NotNil(t, c.CharacterClass)
}

func TestModifyMissingCharacter(t *testing.T) {
	db := tutil.NewTestDB(t)
	characterStor := stor.NewGormCharacterStor(db)

	_, err := characterStor.ModifyCharacter("00000000-0000-0000-0000-000000000000", func(*rimodel.Character) error {
		return nil
	})
	assert.True(t, rierr.IsNotFound(err))
}

func TestDeleteCharacterCascadesAssignments(t *testing.T) {
	db := tutil.NewTestDB(t)
	characterStor := stor.NewGormCharacterStor(db)

	c, err := characterStor.CreateCharacter(newFighter(t, db))
	require.NoError(t, err)

	quantity := 2
	require.NoError(t, characterStor.AddAssignment(&rimodel.CharacterWeapon{
		CharacterID: c.ID,
		WeaponID:    idByName[rimodel.Weapon](t, db, "Longsword"),
	}))
	require.NoError(t, characterStor.AddAssignment(&rimodel.CharacterAdventuringGear{
		CharacterID:       c.ID,
		AdventuringGearID: idByName[rimodel.AdventuringGear](t, db, "Torch"),
		Quantity:          &quantity,
	}))
	require.NoError(t, characterStor.AddAssignment(&rimodel.CharacterFeat{
		CharacterID: c.ID,
		FeatID:      idByName[rimodel.Feat](t, db, "Alert"),
	}))

	withEquipment, err := characterStor.GetCharacterWithEquipment(c.ID)
	require.NoError(t, err)
	require.Len(t, withEquipment.Weapons, 1)
	require.Len(t, withEquipment.AdventuringGear, 1)
	assert.Equal(t, "Longsword", withEquipment.Weapons[0].Weapon.Name)

	require.NoError(t, characterStor.DeleteCharacter(c.ID))

	for _, model := range []any{&rimodel.CharacterWeapon{}, &rimodel.CharacterAdventuringGear{}, &rimodel.CharacterFeat{}} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.Zero(t, count)
	}

	// The catalog rows stay.
	var weapons int64
	require.NoError(t, db.Model(&rimodel.Weapon{}).Count(&weapons).Error)
	assert.NotZero(t, weapons)

	err = characterStor.DeleteCharacter(c.ID)
	assert.True(t, rierr.IsNotFound(err))
}

func TestModifyAssignmentScopedToCharacter(t *testing.T) {
	db := tutil.NewTestDB(t)
	characterStor := stor.NewGormCharacterStor(db)

	c, err := characterStor.CreateCharacter(newFighter(t, db))
	require.NoError(t, err)

	other := newFighter(t, db)
	other.FirstName = "Wulfgar"
	other, err = characterStor.CreateCharacter(other)
	require.NoError(t, err)

	armor := &rimodel.CharacterArmor{CharacterID: c.ID, ArmorID: idByName[rimodel.Armor](t, db, "Chain Mail")}
	require.NoError(t, characterStor.AddAssignment(armor))

	err = characterStor.ModifyAssignment(other.ID, armor.ID, &rimodel.CharacterArmor{}, func() error { return nil })
	assert.True(t, rierr.IsNotFound(err))

	var loaded rimodel.CharacterArmor
	err = characterStor.ModifyAssignment(c.ID, armor.ID, &loaded, func() error {
		loaded.Equipped = true
		return nil
	})
	require.NoError(t, err)

	withEquipment, err := characterStor.GetCharacterWithEquipment(c.ID)
	require.NoError(t, err)
	require.Len(t, withEquipment.Armor, 1)
	assert.True(t, withEquipment.Armor[0].Equipped)

	err = characterStor.RemoveAssignment(other.ID, armor.ID, &rimodel.CharacterArmor{})
	assert.True(t, rierr.IsNotFound(err))
	require.NoError(t, characterStor.RemoveAssignment(c.ID, armor.ID, &rimodel.CharacterArmor{}))
}

func TestCampaignSlugCollision(t *testing.T) {
	db := tutil.NewTestDB(t)
	campaignStor := stor.NewGormCampaignStor(db)

	first, err := campaignStor.CreateCampaign(&rimodel.Campaign{Name: "Lost Mine of Phandelver"})
	require.NoError(t, err)
	assert.Equal(t, "lost-mine-of-phandelver", first.Slug)

	second, err := campaignStor.CreateCampaign(&rimodel.Campaign{Name: "Lost Mine of Phandelver!"})
	require.NoError(t, err)
	assert.Equal(t, "lost-mine-of-phandelver-1", second.Slug)
	assert.NotEqual(t, first.ID, second.ID)

	renamed, err := campaignStor.ModifyCampaign(first.ID, func(c *rimodel.Campaign) error {
		c.Name = "Dragon of Icespire Peak"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "lost-mine-of-phandelver", renamed.Slug)

	_, err = campaignStor.CreateCampaign(&rimodel.Campaign{})
	assert.True(t, rierr.IsInvalidArgument(err))
}

func TestDeleteCampaignCascadesMembers(t *testing.T) {
	db := tutil.NewTestDB(t)
	campaignStor := stor.NewGormCampaignStor(db)
	characterStor := stor.NewGormCharacterStor(db)

	campaign, err := campaignStor.CreateCampaign(&rimodel.Campaign{Name: "Curse of Strahd"})
	require.NoError(t, err)

	c := newFighter(t, db)
	c.CampaignID = &campaign.ID
	c, err = characterStor.CreateCharacter(c)
	require.NoError(t, err)
	require.NotNil(t, c.Campaign)

	require.NoError(t, campaignStor.DeleteCampaign(campaign.ID))

	_, err = characterStor.GetCharacterByID(c.ID)
	assert.True(t, rierr.IsNotFound(err))
}

func TestCatalogGetByIDPreloadsDetail(t *testing.T) {
	db := tutil.NewTestDB(t)
	s := stor.NewGormStors(db)

	rogue, err := s.ClassStor.GetByID(idByName[rimodel.CharacterClass](t, db, "Rogue"))
	require.NoError(t, err)
	assert.Len(t, rogue.ArmorProficiencies, 2)
	assert.Len(t, rogue.Features, 2)

	_, err = s.FeatStor.GetByID("00000000-0000-0000-0000-000000000000")
	require.Error(t, err)
	assert.Equal(t, "feat not found", err.(*rierr.Error).Message)
}
