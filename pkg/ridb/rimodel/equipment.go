package rimodel

import (
	"github.com/rollinitiative/rollinit/pkg/rierr"
)

// Armor is priced in gold only. ArmorClass is the base AC while worn, ArmorClassIncrease
// is added on top (shields).
type Armor struct {
	Identity
	Name                string  `json:"name" gorm:"size:20;not null;uniqueIndex"`
	ArmorType           string  `json:"armor_type" gorm:"size:10;not null"`
	Gold                int     `json:"gold" gorm:"not null"`
	ArmorClass          *int    `json:"armor_class"`
	ArmorClassIncrease  int     `json:"armor_class_increase" gorm:"not null;default:0"`
	DexModifierMax      int     `json:"dex_modifier_max" gorm:"not null;default:0"`
	StrengthRequirement int     `json:"strength_requirement" gorm:"not null;default:0"`
	StealthDisadvantage bool    `json:"stealth_disadvantage" gorm:"not null;default:false"`
	Weight              float64 `json:"weight" gorm:"type:decimal(5,2);not null"`
}

func (Armor) TableName() string {
	return "armor"
}

func (a *Armor) Validate() error {
	var vb rierr.ValidationBuilder
	vb.Required("name", a.Name).
		MaxLength("name", a.Name, 20).
		Min("gold", a.Gold, 0).
		Min("armor_class_increase", a.ArmorClassIncrease, 0).
		Range("dex_modifier_max", a.DexModifierMax, 0, 10).
		Range("strength_requirement", a.StrengthRequirement, 0, 20)
	if !ArmorTypeChoices.Contains(a.ArmorType) {
		vb.Fieldf("armor_type", "%q is not a valid choice.", a.ArmorType)
	}
	if a.ArmorClass != nil {
		vb.Range("armor_class", *a.ArmorClass, 0, 20)
	}
	validateWeight(&vb, a.Weight)

	return vb.Build()
}

type Weapon struct {
	Identity
	Money
	Damage
	Name         string  `json:"name" gorm:"size:30;not null;uniqueIndex"`
	WeaponType   string  `json:"weapon_type" gorm:"size:15;not null"`
	Weight       float64 `json:"weight" gorm:"type:decimal(5,2);not null;default:0"`
	NormalRange  *int    `json:"normal_range"`
	MaximumRange *int    `json:"maximum_range"`
	Ammunition   bool    `json:"ammunition" gorm:"not null;default:false"`
	Finesse      bool    `json:"finesse" gorm:"not null;default:false"`
	Heavy        bool    `json:"heavy" gorm:"not null;default:false"`
	Light        bool    `json:"light" gorm:"not null;default:false"`
	Loading      bool    `json:"loading" gorm:"not null;default:false"`
	Reach        bool    `json:"reach" gorm:"not null;default:false"`
	Special      bool    `json:"special" gorm:"not null;default:false"`
	Thrown       bool    `json:"thrown" gorm:"not null;default:false"`
	TwoHanded    bool    `json:"two_handed" gorm:"not null;default:false"`
	Versatile    bool    `json:"versatile" gorm:"not null;default:false"`
}

func (Weapon) TableName() string {
	return "weapons"
}

func (w *Weapon) Validate() error {
	var vb rierr.ValidationBuilder
	vb.Required("name", w.Name).MaxLength("name", w.Name, 30)
	if !WeaponTypeChoices.Contains(w.WeaponType) {
		vb.Fieldf("weapon_type", "%q is not a valid choice.", w.WeaponType)
	}
	if w.NormalRange != nil {
		vb.Range("normal_range", *w.NormalRange, 0, 200)
	}
	if w.MaximumRange != nil {
		vb.Range("maximum_range", *w.MaximumRange, 0, 1000)
	}
	w.Money.validate(&vb)
	w.Damage.validate(&vb)
	validateWeight(&vb, w.Weight)

	return vb.Build()
}

// AdventuringGear is sold either by length (rope) or by quantity (a bundle of torches).
type AdventuringGear struct {
	Identity
	Money
	Name        string  `json:"name" gorm:"size:30;not null;index"`
	Weight      float64 `json:"weight" gorm:"type:decimal(5,2);not null"`
	Description string  `json:"description" gorm:"type:text"`
	Length      *int    `json:"length"`
	Quantity    int     `json:"quantity" gorm:"not null;default:1"`
}

func (AdventuringGear) TableName() string {
	return "adventuring_gear"
}

func (g *AdventuringGear) SetDefaults() {
	if g.Quantity == 0 {
		g.Quantity = 1
	}
}

func (g *AdventuringGear) Validate() error {
	var vb rierr.ValidationBuilder
	vb.Required("name", g.Name).MaxLength("name", g.Name, 30).Min("quantity", g.Quantity, 1)
	if g.Length != nil {
		vb.Min("length", *g.Length, 1)
	}
	g.Money.validate(&vb)
	validateWeight(&vb, g.Weight)

	return vb.Build()
}

type EquipmentPack struct {
	Identity
	Name        string              `json:"name" gorm:"size:20;not null;index"`
	Description string              `json:"description" gorm:"type:text"`
	Gold        int                 `json:"gold" gorm:"not null"`
	Gear        []EquipmentPackGear `json:"gear,omitempty" gorm:"foreignKey:EquipmentPackID;constraint:OnDelete:CASCADE"`
}

func (EquipmentPack) TableName() string {
	return "equipment_packs"
}

func (p *EquipmentPack) Validate() error {
	var vb rierr.ValidationBuilder
	vb.Required("name", p.Name).MaxLength("name", p.Name, 20).Min("gold", p.Gold, 0)
	return vb.Build()
}

// EquipmentPackGear is the amount of one kind of gear contained in a pack.
type EquipmentPackGear struct {
	Identity
	EquipmentPackID   string           `json:"-" gorm:"size:36;not null;index"`
	AdventuringGearID string           `json:"adventuring_gear_id" gorm:"size:36;not null"`
	AdventuringGear   *AdventuringGear `json:"adventuring_gear,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
	Quantity          int              `json:"quantity" gorm:"not null;default:1"`
}

func (EquipmentPackGear) TableName() string {
	return "equipment_pack_gear"
}

type Tool struct {
	Identity
	Money
	Category    *string `json:"category" gorm:"size:20"`
	Name        string  `json:"name" gorm:"size:30;not null;index"`
	Weight      float64 `json:"weight" gorm:"type:decimal(5,2);not null"`
	Description string  `json:"description" gorm:"type:text"`
}

func (Tool) TableName() string {
	return "tools"
}

func (t *Tool) CategoryDisplay() string {
	if t.Category == nil {
		return ToolCategoryChoices.Display("")
	}

	return ToolCategoryChoices.Display(*t.Category)
}

func (t *Tool) Validate() error {
	var vb rierr.ValidationBuilder
	vb.Required("name", t.Name).MaxLength("name", t.Name, 30)
	if t.Category != nil && (*t.Category == "" || !ToolCategoryChoices.Contains(*t.Category)) {
		vb.Fieldf("category", "%q is not a valid choice.", *t.Category)
	}
	t.Money.validate(&vb)
	validateWeight(&vb, t.Weight)

	return vb.Build()
}

// Weights are stored with two decimals and at most four digits.
func validateWeight(vb *rierr.ValidationBuilder, weight float64) {
	if weight < 0 || weight >= 100 {
		vb.Field("weight", "Ensure the weight is between 0 and 99.99.")
	}
}
