package rimodel

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Choice is one allowed value of an enumerated column and its display name. An empty
// Value stands for NULL.
type Choice struct {
	Value   string
	Display string
}

type Choices []Choice

func (c Choices) Display(value string) string {
	for _, choice := range c {
		if choice.Value == value {
			return choice.Display
		}
	}

	return value
}

func (c Choices) Contains(value string) bool {
	for _, choice := range c {
		if choice.Value == value {
			return true
		}
	}

	return false
}

const (
	AbilityStrength     = "STRENGTH"
	AbilityDexterity    = "DEXTERITY"
	AbilityConstitution = "CONSTITUTION"
	AbilityIntelligence = "INTELLIGENCE"
	AbilityWisdom       = "WISDOM"
	AbilityCharisma     = "CHARISMA"
)

var AbilityChoices = titled(AbilityStrength, AbilityDexterity, AbilityConstitution,
	AbilityIntelligence, AbilityWisdom, AbilityCharisma)

const (
	ArmorLight  = "LIGHT"
	ArmorMedium = "MEDIUM"
	ArmorHeavy  = "HEAVY"
	ArmorShield = "SHIELD"
)

var ArmorTypeChoices = Choices{
	{ArmorLight, "Light Armor"},
	{ArmorMedium, "Medium Armor"},
	{ArmorHeavy, "Heavy Armor"},
	{ArmorShield, "Shield"},
}

const (
	WeaponSimpleMelee   = "SIMPLE_MELEE"
	WeaponSimpleRanged  = "SIMPLE_RANGED"
	WeaponMartialMelee  = "MARTIAL_MELEE"
	WeaponMartialRanged = "MARTIAL_RANGED"
)

var WeaponTypeChoices = Choices{
	{WeaponSimpleMelee, "Simple Melee Weapon"},
	{WeaponSimpleRanged, "Simple Ranged Weapon"},
	{WeaponMartialMelee, "Martial Melee Weapon"},
	{WeaponMartialRanged, "Martial Ranged Weapon"},
}

const (
	ToolArtisansTools     = "ARTISANS_TOOLS"
	ToolGamingSet         = "GAMING_SET"
	ToolMusicalInstrument = "MUSICAL_INSTRUMENT"
)

var ToolCategoryChoices = Choices{
	{ToolArtisansTools, "Artisan's Tools"},
	{ToolGamingSet, "Gaming Set"},
	{ToolMusicalInstrument, "Musical Instrument"},
	{"", "Other"},
}

const DamageSlashing = "SLASHING"

var DamageTypeChoices = titled(DamageSlashing, "PIERCING", "BLUDGEONING", "POISON", "ACID",
	"FIRE", "COLD", "RADIANT", "NECROTIC", "LIGHTNING", "THUNDER", "FORCE", "PSYCHIC")

func titled(values ...string) Choices {
	caser := cases.Title(language.English)
	choices := make(Choices, 0, len(values))
	for _, v := range values {
		choices = append(choices, Choice{Value: v, Display: caser.String(strings.ToLower(v))})
	}

	return choices
}
