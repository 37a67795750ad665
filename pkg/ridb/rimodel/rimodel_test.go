package rimodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rollinitiative/rollinit/pkg/rierr"
)

func intPtr(v int) *int { return &v }

func validHealth() AbilityScoreHealth {
	return AbilityScoreHealth{
		MaxHP: 10, CurrentHP: 10, ArmorClass: 12,
		Strength: 10, Dexterity: 10, Constitution: 14, Intelligence: 10, Wisdom: 10, Charisma: 10,
	}
}

func TestIncreaseMaxHP(t *testing.T) {
	tests := []struct {
		name            string
		max, current    int
		constitution    int
		increase        int
		addConstitution bool
		expectedMax     int
		expectedCurrent int
	}{
		{"full health with constitution", 10, 10, 14, 8, true, 20, 20},
		{"half health without constitution", 20, 10, 10, 10, false, 30, 15},
		{"rounds current up", 20, 15, 14, 13, true, 35, 27},
		{"zero max becomes full", 0, 0, 10, 6, false, 6, 6},
		{"negative increase floors at zero", 5, 5, 10, -8, false, 0, 0},
		{"low constitution lowers gain", 10, 10, 6, 4, true, 12, 12},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			h := validHealth()
			h.MaxHP, h.CurrentHP, h.Constitution = test.max, test.current, test.constitution
			h.IncreaseMaxHP(test.increase, test.addConstitution)
			assert.Equal(t, test.expectedMax, h.MaxHP)
			assert.Equal(t, test.expectedCurrent, h.CurrentHP)
			assert.NoError(t, h.Validate())
		})
	}
}

func TestHealAndDamageStayInRange(t *testing.T) {
	h := validHealth()

	h.TakeDamage(4)
	assert.Equal(t, 6, h.CurrentHP)

	h.TakeDamage(100)
	assert.Equal(t, 0, h.CurrentHP)

	h.Heal(3)
	assert.Equal(t, 3, h.CurrentHP)

	h.Heal(100)
	assert.Equal(t, 10, h.CurrentHP)

	h.Heal(-25)
	assert.Equal(t, 0, h.CurrentHP)

	h.AdjustTemporaryHP(5)
	h.AdjustTemporaryHP(-9)
	assert.Equal(t, 0, h.TemporaryHP)
}

func TestHealthValidation(t *testing.T) {
	h := validHealth()
	require.NoError(t, h.Validate())

	h.CurrentHP = 11
	err := h.Validate()
	require.Error(t, err)
	assert.True(t, rierr.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "Health cannot exceed max health.")

	h = validHealth()
	h.Strength = 21
	assert.Error(t, h.Validate())
}

func TestAbilityModifierByName(t *testing.T) {
	h := validHealth()
	mod, err := h.AbilityModifier(AbilityConstitution)
	require.NoError(t, err)
	assert.Equal(t, 2, mod)

	_, err = h.AbilityModifier("LUCK")
	assert.Error(t, err)
}

func TestCharacterString(t *testing.T) {
	c := Character{Title: "Sir", FirstName: "Galahad"}
	assert.Equal(t, "Sir Galahad", c.String())

	c = Character{FirstName: "Arwen", LastName: "Undomiel"}
	assert.Equal(t, "Arwen Undomiel", c.String())
}

func TestCharacterGrowOlderAndLevelUp(t *testing.T) {
	c := Character{AbilityScoreHealth: validHealth(), FirstName: "Bob", Age: 20, Level: 1, RaceID: "r", CharacterClassID: "c"}
	c.GrowOlder(3)
	assert.Equal(t, 23, c.Age)

	c.LevelUp(8)
	assert.Equal(t, 2, c.Level)
	assert.Equal(t, 20, c.MaxHP)
	assert.Equal(t, 20, c.CurrentHP)
	assert.NoError(t, c.Validate())
}

func TestCharacterValidation(t *testing.T) {
	c := Character{AbilityScoreHealth: validHealth(), Level: 0, Age: -1}
	err := c.Validate()
	require.Error(t, err)

	var rerr *rierr.Error
	require.ErrorAs(t, err, &rerr)
	for _, field := range []string{"first_name", "level", "age", "race_id", "character_class_id"} {
		assert.Contains(t, rerr.Fields, field)
	}
}

func TestAdventuringGearWeight(t *testing.T) {
	rope := &AdventuringGear{Name: "Rope", Weight: 10, Length: intPtr(50), Quantity: 1}
	carried := CharacterAdventuringGear{AdventuringGear: rope, Length: intPtr(20)}
	assert.InDelta(t, 4.0, carried.Weight(), 0.0001)

	torches := &AdventuringGear{Name: "Torch", Weight: 1, Quantity: 1}
	carried = CharacterAdventuringGear{AdventuringGear: torches, Quantity: intPtr(5)}
	assert.InDelta(t, 5.0, carried.Weight(), 0.0001)

	paper := &AdventuringGear{Name: "Paper", Weight: 0, Quantity: 1}
	carried = CharacterAdventuringGear{AdventuringGear: paper, Quantity: intPtr(5)}
	assert.Equal(t, 0.0, carried.Weight())
}

func TestChoices(t *testing.T) {
	assert.Equal(t, "Light Armor", ArmorTypeChoices.Display(ArmorLight))
	assert.Equal(t, "Slashing", DamageTypeChoices.Display(DamageSlashing))
	assert.Equal(t, "Constitution", AbilityChoices.Display(AbilityConstitution))

	tool := Tool{Name: "Dice"}
	assert.Equal(t, "Other", tool.CategoryDisplay())

	w := Weapon{Damage: Damage{DamageDie: 6, DamageDieCount: 2}}
	assert.Equal(t, "2d6", w.DamageNotation())
}

func TestIsUUID(t *testing.T) {
	assert.True(t, IsUUID("1b4e28ba-2fa1-11d2-883f-0016d3cca427"))
	assert.False(t, IsUUID("42"))
}

func TestSetDefaults(t *testing.T) {
	gear := AdventuringGear{Name: "Torch", Weight: 1}
	require.Error(t, gear.Validate())
	gear.SetDefaults()
	assert.Equal(t, 1, gear.Quantity)
	require.NoError(t, gear.Validate())

	weapon := Weapon{Name: "Club", WeaponType: WeaponSimpleMelee}
	weapon.SetDefaults()
	assert.Equal(t, "1d4", weapon.DamageNotation())
	assert.Equal(t, DamageSlashing, weapon.DamageType)

	monsterType := MonsterType{Name: "Kobold", Strength: 7}
	monsterType.SetDefaults()
	assert.Equal(t, 7, monsterType.Strength)
	assert.Equal(t, 1, monsterType.Charisma)
	assert.Equal(t, 10, monsterType.ArmorClass)
	require.NoError(t, monsterType.Validate())
}
