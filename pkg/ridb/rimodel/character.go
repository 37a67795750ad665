package rimodel

import (
	"strings"
	"time"

	"gorm.io/datatypes"

	"github.com/rollinitiative/rollinit/pkg/rierr"
)

const MaxCharacterLevel = 100

type Character struct {
	Identity
	AbilityScoreHealth
	Money
	Title            string                      `json:"title" gorm:"size:30"`
	FirstName        string                      `json:"first_name" gorm:"size:30;not null"`
	LastName         string                      `json:"last_name" gorm:"size:30"`
	Age              int                         `json:"age" gorm:"not null"`
	RaceID           string                      `json:"race_id" gorm:"size:36;not null;index"`
	Race             *CharacterRace              `json:"race,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
	CharacterClassID string                      `json:"character_class_id" gorm:"size:36;not null;index"`
	CharacterClass   *CharacterClass             `json:"character_class,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
	Level            int                         `json:"level" gorm:"not null;default:1"`
	ExperiencePoints int                         `json:"experience_points" gorm:"not null;default:0"`
	Languages        datatypes.JSONSlice[string] `json:"languages"`
	Backstory        string                      `json:"backstory" gorm:"type:text"`
	CampaignID       *string                     `json:"campaign_id" gorm:"size:36;index"`
	Campaign         *Campaign                   `json:"campaign,omitempty" gorm:"constraint:OnDelete:CASCADE"`

	Armor           []CharacterArmor           `json:"-" gorm:"foreignKey:CharacterID;constraint:OnDelete:CASCADE"`
	Weapons         []CharacterWeapon          `json:"-" gorm:"foreignKey:CharacterID;constraint:OnDelete:CASCADE"`
	AdventuringGear []CharacterAdventuringGear `json:"-" gorm:"foreignKey:CharacterID;constraint:OnDelete:CASCADE"`
	Tools           []CharacterTool            `json:"-" gorm:"foreignKey:CharacterID;constraint:OnDelete:CASCADE"`
	Feats           []CharacterFeat            `json:"-" gorm:"foreignKey:CharacterID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Character) TableName() string {
	return "characters"
}

// String joins title, first and last name, skipping the blank ones.
func (c *Character) String() string {
	var names []string
	for _, n := range []string{c.Title, c.FirstName, c.LastName} {
		if n != "" {
			names = append(names, n)
		}
	}

	return strings.Join(names, " ")
}

func (c *Character) GrowOlder(years int) {
	c.Age += years
}

// LevelUp raises the level by one and grows max hit points by maxHPIncrease plus the
// constitution modifier.
func (c *Character) LevelUp(maxHPIncrease int) {
	c.Level++
	c.IncreaseMaxHP(maxHPIncrease, true)
}

func (c *Character) Validate() error {
	var vb rierr.ValidationBuilder
	c.AbilityScoreHealth.validate(&vb)
	c.Money.validate(&vb)
	vb.Required("first_name", c.FirstName).
		MaxLength("first_name", c.FirstName, 30).
		MaxLength("last_name", c.LastName, 30).
		MaxLength("title", c.Title, 30).
		Min("age", c.Age, 0).
		Range("level", c.Level, 1, MaxCharacterLevel).
		Min("experience_points", c.ExperiencePoints, 0).
		Required("race_id", c.RaceID).
		Required("character_class_id", c.CharacterClassID)
	validateLanguages(&vb, c.Languages)

	return vb.Build()
}

// Assignment is a row linking a character to a catalog item it owns.
type Assignment interface {
	Validator
	OwnerID() string
}

type CharacterArmor struct {
	Identity
	CharacterID string `json:"-" gorm:"size:36;not null;index"`
	ArmorID     string `json:"armor_id" gorm:"size:36;not null"`
	Armor       *Armor `json:"armor,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
	Equipped    bool   `json:"equipped" gorm:"not null;default:false"`
}

func (CharacterArmor) TableName() string {
	return "character_armor"
}

func (a *CharacterArmor) OwnerID() string { return a.CharacterID }

func (a *CharacterArmor) Validate() error {
	var vb rierr.ValidationBuilder
	vb.Required("armor_id", a.ArmorID)
	return vb.Build()
}

type CharacterWeapon struct {
	Identity
	CharacterID string  `json:"-" gorm:"size:36;not null;index"`
	WeaponID    string  `json:"weapon_id" gorm:"size:36;not null"`
	Weapon      *Weapon `json:"weapon,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
	Equipped    bool    `json:"equipped" gorm:"not null;default:false"`
}

func (CharacterWeapon) TableName() string {
	return "character_weapons"
}

func (w *CharacterWeapon) OwnerID() string { return w.CharacterID }

func (w *CharacterWeapon) Validate() error {
	var vb rierr.ValidationBuilder
	vb.Required("weapon_id", w.WeaponID)
	return vb.Build()
}

// CharacterAdventuringGear tracks the length or quantity of one kind of gear a character
// carries.
type CharacterAdventuringGear struct {
	Identity
	CharacterID       string           `json:"-" gorm:"size:36;not null;index"`
	AdventuringGearID string           `json:"adventuring_gear_id" gorm:"size:36;not null"`
	AdventuringGear   *AdventuringGear `json:"adventuring_gear,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
	Length            *int             `json:"length"`
	Quantity          *int             `json:"quantity"`
}

func (CharacterAdventuringGear) TableName() string {
	return "character_adventuring_gear"
}

func (g *CharacterAdventuringGear) OwnerID() string { return g.CharacterID }

func (g *CharacterAdventuringGear) Validate() error {
	var vb rierr.ValidationBuilder
	vb.Required("adventuring_gear_id", g.AdventuringGearID)
	if g.Length != nil {
		vb.Min("length", *g.Length, 0)
	}
	if g.Quantity != nil {
		vb.Min("quantity", *g.Quantity, 0)
	}

	return vb.Build()
}

// Weight scales the catalog weight by the carried length when the catalog item is sold by
// length, otherwise by the carried quantity. AdventuringGear must be loaded.
func (g *CharacterAdventuringGear) Weight() float64 {
	gear := g.AdventuringGear
	if gear == nil || gear.Weight == 0 {
		return 0
	}

	var ratio float64
	switch {
	case gear.Length != nil && *gear.Length > 0:
		ratio = float64(deref(g.Length)) / float64(*gear.Length)
	case gear.Quantity > 0:
		ratio = float64(deref(g.Quantity)) / float64(gear.Quantity)
	}

	return gear.Weight * ratio
}

type CharacterTool struct {
	Identity
	CharacterID string `json:"-" gorm:"size:36;not null;index"`
	ToolID      string `json:"tool_id" gorm:"size:36;not null"`
	Tool        *Tool  `json:"tool,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
}

func (CharacterTool) TableName() string {
	return "character_tools"
}

func (t *CharacterTool) OwnerID() string { return t.CharacterID }

func (t *CharacterTool) Validate() error {
	var vb rierr.ValidationBuilder
	vb.Required("tool_id", t.ToolID)
	return vb.Build()
}

type CharacterFeat struct {
	Identity
	CharacterID string `json:"-" gorm:"size:36;not null;index"`
	FeatID      string `json:"feat_id" gorm:"size:36;not null"`
	Feat        *Feat  `json:"feat,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
}

func (CharacterFeat) TableName() string {
	return "character_feats"
}

func (f *CharacterFeat) OwnerID() string { return f.CharacterID }

func (f *CharacterFeat) Validate() error {
	var vb rierr.ValidationBuilder
	vb.Required("feat_id", f.FeatID)
	return vb.Build()
}

func deref(v *int) int {
	if v == nil {
		return 0
	}

	return *v
}
