package rimodel

import (
	"gorm.io/datatypes"

	"github.com/rollinitiative/rollinit/pkg/rierr"
)

type CharacterRace struct {
	Identity
	Name                 string                      `json:"name" gorm:"size:20;not null;uniqueIndex"`
	Description          string                      `json:"description" gorm:"type:text"`
	Speed                int                         `json:"speed"`
	StrengthIncrease     int                         `json:"strength_increase" gorm:"not null;default:0"`
	DexterityIncrease    int                         `json:"dexterity_increase" gorm:"not null;default:0"`
	ConstitutionIncrease int                         `json:"constitution_increase" gorm:"not null;default:0"`
	IntelligenceIncrease int                         `json:"intelligence_increase" gorm:"not null;default:0"`
	WisdomIncrease       int                         `json:"wisdom_increase" gorm:"not null;default:0"`
	CharismaIncrease     int                         `json:"charisma_increase" gorm:"not null;default:0"`
	Languages            datatypes.JSONSlice[string] `json:"languages"`
}

func (CharacterRace) TableName() string {
	return "character_races"
}

func (r *CharacterRace) Validate() error {
	var vb rierr.ValidationBuilder
	vb.Required("name", r.Name).MaxLength("name", r.Name, 20).Range("speed", r.Speed, 0, 50)
	increases := []namedScore{
		{"strength_increase", r.StrengthIncrease},
		{"dexterity_increase", r.DexterityIncrease},
		{"constitution_increase", r.ConstitutionIncrease},
		{"intelligence_increase", r.IntelligenceIncrease},
		{"wisdom_increase", r.WisdomIncrease},
		{"charisma_increase", r.CharismaIncrease},
	}
	for _, inc := range increases {
		vb.Range(inc.name, inc.value, -10, 10)
	}
	validateLanguages(&vb, r.Languages)

	return vb.Build()
}

type CharacterClass struct {
	Identity
	Name                     string                      `json:"name" gorm:"size:20;not null;uniqueIndex"`
	Description              string                      `json:"description" gorm:"type:text"`
	HitDie                   int                         `json:"hit_die" gorm:"not null"`
	PrimaryAbilities         datatypes.JSONSlice[string] `json:"primary_abilities"`
	SavingThrowProficiencies datatypes.JSONSlice[string] `json:"saving_throw_proficiencies"`
	ArmorProficiencies       []Armor                     `json:"armor_proficiencies,omitempty" gorm:"many2many:character_class_armor_proficiencies"`
	WeaponProficiencies      []Weapon                    `json:"weapon_proficiencies,omitempty" gorm:"many2many:character_class_weapon_proficiencies"`
	ToolProficiencies        []Tool                      `json:"tool_proficiencies,omitempty" gorm:"many2many:character_class_tool_proficiencies"`
	Features                 []CharacterClassFeature     `json:"features,omitempty" gorm:"foreignKey:CharacterClassID;constraint:OnDelete:CASCADE"`
}

func (CharacterClass) TableName() string {
	return "character_classes"
}

func (c *CharacterClass) Validate() error {
	var vb rierr.ValidationBuilder
	vb.Required("name", c.Name).MaxLength("name", c.Name, 20).Range("hit_die", c.HitDie, 1, 20)
	for _, a := range c.PrimaryAbilities {
		if !AbilityChoices.Contains(a) {
			vb.Fieldf("primary_abilities", "%q is not a valid choice.", a)
		}
	}
	for _, a := range c.SavingThrowProficiencies {
		if !AbilityChoices.Contains(a) {
			vb.Fieldf("saving_throw_proficiencies", "%q is not a valid choice.", a)
		}
	}

	return vb.Build()
}

// CharacterClassFeature grants a feat to members of a class on reaching a level.
type CharacterClassFeature struct {
	Identity
	CharacterClassID string `json:"-" gorm:"size:36;not null;index"`
	FeatID           string `json:"feat_id" gorm:"size:36;not null"`
	Feat             *Feat  `json:"feat,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
	Level            int    `json:"level" gorm:"not null"`
}

func (CharacterClassFeature) TableName() string {
	return "character_class_features"
}

func (f *CharacterClassFeature) Validate() error {
	var vb rierr.ValidationBuilder
	vb.Range("level", f.Level, 1, 20)
	return vb.Build()
}

type Feat struct {
	Identity
	Name         string `json:"name" gorm:"size:30;not null;index"`
	Prerequisite string `json:"prerequisite" gorm:"size:50"`
	Description  string `json:"description" gorm:"type:text"`
}

func (Feat) TableName() string {
	return "feats"
}

func (f *Feat) Validate() error {
	var vb rierr.ValidationBuilder
	vb.Required("name", f.Name).MaxLength("name", f.Name, 30).MaxLength("prerequisite", f.Prerequisite, 50)
	return vb.Build()
}

const MaxMonsterAbilityScore = 30

type MonsterType struct {
	Identity
	Name         string `json:"name" gorm:"size:30;not null;index"`
	ArmorClass   int    `json:"armor_class" gorm:"not null;default:10"`
	HitDie       int    `json:"hit_die" gorm:"not null;default:4"`
	HitDieCount  int    `json:"hit_die_count" gorm:"not null;default:1"`
	Strength     int    `json:"strength" gorm:"not null;default:1"`
	Dexterity    int    `json:"dexterity" gorm:"not null;default:1"`
	Constitution int    `json:"constitution" gorm:"not null;default:1"`
	Intelligence int    `json:"intelligence" gorm:"not null;default:1"`
	Wisdom       int    `json:"wisdom" gorm:"not null;default:1"`
	Charisma     int    `json:"charisma" gorm:"not null;default:1"`
}

func (MonsterType) TableName() string {
	return "monster_types"
}

func (m *MonsterType) SetDefaults() {
	defaults := []struct {
		v   *int
		def int
	}{
		{&m.ArmorClass, 10},
		{&m.HitDie, 4},
		{&m.HitDieCount, 1},
		{&m.Strength, 1},
		{&m.Dexterity, 1},
		{&m.Constitution, 1},
		{&m.Intelligence, 1},
		{&m.Wisdom, 1},
		{&m.Charisma, 1},
	}

	for _, d := range defaults {
		if *d.v == 0 {
			*d.v = d.def
		}
	}
}

func (m *MonsterType) Validate() error {
	var vb rierr.ValidationBuilder
	vb.Required("name", m.Name).
		MaxLength("name", m.Name, 30).
		Range("armor_class", m.ArmorClass, 0, 20).
		Range("hit_die", m.HitDie, 1, 20).
		Min("hit_die_count", m.HitDieCount, 1)

	scores := []namedScore{
		{"strength", m.Strength},
		{"dexterity", m.Dexterity},
		{"constitution", m.Constitution},
		{"intelligence", m.Intelligence},
		{"wisdom", m.Wisdom},
		{"charisma", m.Charisma},
	}
	for _, score := range scores {
		vb.Range(score.name, score.value, 1, MaxMonsterAbilityScore)
	}

	return vb.Build()
}

func validateLanguages(vb *rierr.ValidationBuilder, languages []string) {
	for _, l := range languages {
		if l == "" || len([]rune(l)) > 20 {
			vb.Field("languages", "Each language must be between 1 and 20 characters.")
			return
		}
	}
}
