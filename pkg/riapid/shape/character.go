package shape

import (
	"time"

	"github.com/rollinitiative/rollinit/pkg/ridb/rimodel"
)

type CharacterListEntry struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	FirstName      string   `json:"first_name"`
	LastName       string   `json:"last_name"`
	Age            int      `json:"age"`
	Level          int      `json:"level"`
	Race           *NameRef `json:"race"`
	CharacterClass *NameRef `json:"character_class"`
}

func NewCharacterListEntry(c *rimodel.Character) CharacterListEntry {
	return CharacterListEntry{
		ID:             c.ID,
		Title:          c.Title,
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		Age:            c.Age,
		Level:          c.Level,
		Race:           raceRef(c.Race),
		CharacterClass: classRef(c.CharacterClass),
	}
}

// AssignedFeat is a feat owned by a character. AssignmentID identifies the ownership row.
type AssignedFeat struct {
	AssignmentID string `json:"assignment_id"`
	ID           string `json:"id"`
	Name         string `json:"name"`
}

type CharacterDetail struct {
	ID string `json:"id"`
	rimodel.AbilityScoreHealth
	rimodel.Money
	Name             string         `json:"name"`
	Title            string         `json:"title"`
	FirstName        string         `json:"first_name"`
	LastName         string         `json:"last_name"`
	Age              int            `json:"age"`
	Level            int            `json:"level"`
	ExperiencePoints int            `json:"experience_points"`
	Languages        []string       `json:"languages"`
	Backstory        string         `json:"backstory"`
	Race             *NameRef       `json:"race"`
	CharacterClass   *NameRef       `json:"character_class"`
	Campaign         *NameRef       `json:"campaign"`
	AbilityModifiers map[string]int `json:"ability_modifiers"`
	Feats            []AssignedFeat `json:"feats"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

func NewCharacterDetail(c *rimodel.Character) CharacterDetail {
	d := CharacterDetail{
		ID:                 c.ID,
		AbilityScoreHealth: c.AbilityScoreHealth,
		Money:              c.Money,
		Name:               c.String(),
		Title:              c.Title,
		FirstName:          c.FirstName,
		LastName:           c.LastName,
		Age:                c.Age,
		Level:              c.Level,
		ExperiencePoints:   c.ExperiencePoints,
		Languages:          c.Languages,
		Backstory:          c.Backstory,
		Race:               raceRef(c.Race),
		CharacterClass:     classRef(c.CharacterClass),
		Campaign:           campaignRef(c.Campaign),
		AbilityModifiers:   abilityModifiers(&c.AbilityScoreHealth),
		Feats:              make([]AssignedFeat, 0, len(c.Feats)),
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}

	if d.Languages == nil {
		d.Languages = []string{}
	}

	for _, f := range c.Feats {
		feat := AssignedFeat{AssignmentID: f.ID, ID: f.FeatID}
		if f.Feat != nil {
			feat.Name = f.Feat.Name
		}
		d.Feats = append(d.Feats, feat)
	}

	return d
}

func abilityModifiers(h *rimodel.AbilityScoreHealth) map[string]int {
	mods := make(map[string]int, len(rimodel.AbilityChoices))
	for _, a := range rimodel.AbilityChoices {
		mod, _ := h.AbilityModifier(a.Value)
		mods[a.Value] = mod
	}

	return mods
}

type ClassListEntry struct {
	ID                       string   `json:"id"`
	Name                     string   `json:"name"`
	Description              string   `json:"description"`
	HitDie                   int      `json:"hit_die"`
	PrimaryAbilities         []string `json:"primary_abilities"`
	SavingThrowProficiencies []string `json:"saving_throw_proficiencies"`
}

func NewClassListEntry(c *rimodel.CharacterClass) ClassListEntry {
	return ClassListEntry{
		ID:                       c.ID,
		Name:                     c.Name,
		Description:              c.Description,
		HitDie:                   c.HitDie,
		PrimaryAbilities:         nonNil(c.PrimaryAbilities),
		SavingThrowProficiencies: nonNil(c.SavingThrowProficiencies),
	}
}

// ClassFeature names the feat a class grants and the level it is granted at.
type ClassFeature struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level int    `json:"level"`
}

type ClassDetail struct {
	ClassListEntry
	ArmorProficiencies  []NameRef      `json:"armor_proficiencies"`
	ToolProficiencies   []NameRef      `json:"tool_proficiencies"`
	WeaponProficiencies []NameRef      `json:"weapon_proficiencies"`
	Features            []ClassFeature `json:"features"`
}

func NewClassDetail(c *rimodel.CharacterClass) ClassDetail {
	d := ClassDetail{
		ClassListEntry:      NewClassListEntry(c),
		ArmorProficiencies:  make([]NameRef, 0, len(c.ArmorProficiencies)),
		ToolProficiencies:   make([]NameRef, 0, len(c.ToolProficiencies)),
		WeaponProficiencies: make([]NameRef, 0, len(c.WeaponProficiencies)),
		Features:            make([]ClassFeature, 0, len(c.Features)),
	}

	for _, a := range c.ArmorProficiencies {
		d.ArmorProficiencies = append(d.ArmorProficiencies, NameRef{ID: a.ID, Name: a.Name})
	}

	for _, t := range c.ToolProficiencies {
		d.ToolProficiencies = append(d.ToolProficiencies, NameRef{ID: t.ID, Name: t.Name})
	}

	for _, w := range c.WeaponProficiencies {
		d.WeaponProficiencies = append(d.WeaponProficiencies, NameRef{ID: w.ID, Name: w.Name})
	}

	for _, f := range c.Features {
		feature := ClassFeature{ID: f.FeatID, Level: f.Level}
		if f.Feat != nil {
			feature.Name = f.Feat.Name
		}
		d.Features = append(d.Features, feature)
	}

	return d
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}
