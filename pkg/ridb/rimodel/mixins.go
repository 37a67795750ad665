package rimodel

import (
	"fmt"

	"github.com/rollinitiative/rollinit/pkg/rierr"
	"github.com/rollinitiative/rollinit/pkg/rules"
)

const (
	MaxAbilityScore = 20
	MaxArmorClass   = 30
)

type AbilityScoreHealth struct {
	MaxHP        int `json:"max_hp" gorm:"not null"`
	CurrentHP    int `json:"current_hp" gorm:"not null"`
	TemporaryHP  int `json:"temporary_hp" gorm:"not null;default:0"`
	ArmorClass   int `json:"armor_class" gorm:"not null"`
	Strength     int `json:"strength" gorm:"not null"`
	Dexterity    int `json:"dexterity" gorm:"not null"`
	Constitution int `json:"constitution" gorm:"not null"`
	Intelligence int `json:"intelligence" gorm:"not null"`
	Wisdom       int `json:"wisdom" gorm:"not null"`
	Charisma     int `json:"charisma" gorm:"not null"`
}

func (h *AbilityScoreHealth) validate(vb *rierr.ValidationBuilder) {
	vb.Min("max_hp", h.MaxHP, 0).
		Min("current_hp", h.CurrentHP, 0).
		Min("temporary_hp", h.TemporaryHP, 0).
		Range("armor_class", h.ArmorClass, 0, MaxArmorClass)

	if h.CurrentHP > h.MaxHP {
		vb.Field("current_hp", "Health cannot exceed max health.")
	}

	for _, score := range h.scores() {
		vb.Range(score.name, score.value, 1, MaxAbilityScore)
	}
}

// Validate checks the hit point invariant and score ranges on their own.
func (h *AbilityScoreHealth) Validate() error {
	var vb rierr.ValidationBuilder
	h.validate(&vb)
	return vb.Build()
}

type namedScore struct {
	name  string
	value int
}

func (h *AbilityScoreHealth) scores() []namedScore {
	return []namedScore{
		{"strength", h.Strength},
		{"dexterity", h.Dexterity},
		{"constitution", h.Constitution},
		{"intelligence", h.Intelligence},
		{"wisdom", h.Wisdom},
		{"charisma", h.Charisma},
	}
}

func (h *AbilityScoreHealth) AbilityModifier(ability string) (int, error) {
	switch ability {
	case AbilityStrength:
		return rules.AbilityModifier(h.Strength), nil
	case AbilityDexterity:
		return rules.AbilityModifier(h.Dexterity), nil
	case AbilityConstitution:
		return rules.AbilityModifier(h.Constitution), nil
	case AbilityIntelligence:
		return rules.AbilityModifier(h.Intelligence), nil
	case AbilityWisdom:
		return rules.AbilityModifier(h.Wisdom), nil
	case AbilityCharisma:
		return rules.AbilityModifier(h.Charisma), nil
	default:
		return 0, fmt.Errorf("unknown ability %q", ability)
	}
}

// TakeDamage lowers current hit points, never below zero.
func (h *AbilityScoreHealth) TakeDamage(hp int) {
	h.CurrentHP = max(h.CurrentHP-hp, 0)
}

// Heal adds hp (which may be negative) to current hit points, clamped to [0, MaxHP].
func (h *AbilityScoreHealth) Heal(hp int) {
	h.CurrentHP = rules.Clamp(h.CurrentHP+hp, 0, h.MaxHP)
}

// IncreaseMaxHP changes maximum hit points by hp, plus the constitution modifier when
// addConstitution is set, and rescales current hit points proportionally.
func (h *AbilityScoreHealth) IncreaseMaxHP(hp int, addConstitution bool) {
	if addConstitution {
		hp += rules.AbilityModifier(h.Constitution)
	}

	oldMax := h.MaxHP
	h.MaxHP = max(oldMax+hp, 0)
	h.CurrentHP = rules.RescaleHP(h.CurrentHP, oldMax, h.MaxHP)
}

func (h *AbilityScoreHealth) AdjustTemporaryHP(hp int) {
	h.TemporaryHP = max(h.TemporaryHP+hp, 0)
}

type Money struct {
	Copper   *int `json:"copper"`
	Silver   *int `json:"silver"`
	Electrum *int `json:"electrum"`
	Gold     *int `json:"gold"`
	Platinum *int `json:"platinum"`
}

func (m *Money) validate(vb *rierr.ValidationBuilder) {
	coins := []struct {
		name  string
		value *int
	}{
		{"copper", m.Copper},
		{"silver", m.Silver},
		{"electrum", m.Electrum},
		{"gold", m.Gold},
		{"platinum", m.Platinum},
	}

	for _, coin := range coins {
		if coin.value != nil {
			vb.Min(coin.name, *coin.value, 0)
		}
	}
}

type Damage struct {
	DamageDie      int    `json:"damage_die" gorm:"not null;default:4"`
	DamageDieCount int    `json:"damage_die_count" gorm:"not null;default:1"`
	DamageType     string `json:"damage_type" gorm:"size:12;not null;default:SLASHING"`
}

func (d Damage) DamageNotation() string {
	return fmt.Sprintf("%dd%d", d.DamageDieCount, d.DamageDie)
}

func (d *Damage) SetDefaults() {
	if d.DamageDie == 0 {
		d.DamageDie = 4
	}
	if d.DamageDieCount == 0 {
		d.DamageDieCount = 1
	}
	if d.DamageType == "" {
		d.DamageType = DamageSlashing
	}
}

// Zero values are left to the column defaults.
func (d *Damage) validate(vb *rierr.ValidationBuilder) {
	if d.DamageDie != 0 {
		vb.Range("damage_die", d.DamageDie, 1, 20)
	}
	if d.DamageDieCount != 0 {
		vb.Min("damage_die_count", d.DamageDieCount, 1)
	}
	if d.DamageType != "" && !DamageTypeChoices.Contains(d.DamageType) {
		vb.Fieldf("damage_type", "%q is not a valid choice.", d.DamageType)
	}
}
