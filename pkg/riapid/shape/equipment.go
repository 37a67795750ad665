package shape

import (
	"github.com/rollinitiative/rollinit/pkg/ridb/rimodel"
)

type Armor struct {
	*rimodel.Armor
	ArmorTypeDisplay string `json:"armor_type_display"`
}

func NewArmor(a *rimodel.Armor) Armor {
	return Armor{Armor: a, ArmorTypeDisplay: rimodel.ArmorTypeChoices.Display(a.ArmorType)}
}

type Weapon struct {
	*rimodel.Weapon
	WeaponTypeDisplay string `json:"weapon_type_display"`
	DamageNotation    string `json:"damage"`
	DamageTypeDisplay string `json:"damage_type_display"`
}

func NewWeapon(w *rimodel.Weapon) Weapon {
	return Weapon{
		Weapon:            w,
		WeaponTypeDisplay: rimodel.WeaponTypeChoices.Display(w.WeaponType),
		DamageNotation:    w.DamageNotation(),
		DamageTypeDisplay: rimodel.DamageTypeChoices.Display(w.DamageType),
	}
}

type Tool struct {
	*rimodel.Tool
	CategoryDisplay string `json:"category_display"`
}

func NewTool(t *rimodel.Tool) Tool {
	return Tool{Tool: t, CategoryDisplay: t.CategoryDisplay()}
}

type EquipmentPackListEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Gold        int    `json:"gold"`
}

func NewEquipmentPackListEntry(p *rimodel.EquipmentPack) EquipmentPackListEntry {
	return EquipmentPackListEntry{ID: p.ID, Name: p.Name, Description: p.Description, Gold: p.Gold}
}

// PackGear is the gear in a pack; ID is the adventuring gear's id.
type PackGear struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type EquipmentPackDetail struct {
	EquipmentPackListEntry
	Gear []PackGear `json:"gear"`
}

func NewEquipmentPackDetail(p *rimodel.EquipmentPack) EquipmentPackDetail {
	d := EquipmentPackDetail{
		EquipmentPackListEntry: NewEquipmentPackListEntry(p),
		Gear:                   make([]PackGear, 0, len(p.Gear)),
	}

	for _, g := range p.Gear {
		gear := PackGear{ID: g.AdventuringGearID, Quantity: g.Quantity}
		if g.AdventuringGear != nil {
			gear.Name = g.AdventuringGear.Name
		}
		d.Gear = append(d.Gear, gear)
	}

	return d
}

// The assignment views below describe what a character carries. ID is the catalog
// item's id, AssignmentID the ownership row used to modify or remove it.

type ArmorAssignment struct {
	AssignmentID       string `json:"assignment_id"`
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Weight             string `json:"weight"`
	Equipped           bool   `json:"equipped"`
	ArmorClass         *int   `json:"armor_class"`
	ArmorClassIncrease int    `json:"armor_class_increase"`
	ArmorType          string `json:"armor_type"`
}

type WeaponAssignment struct {
	AssignmentID string `json:"assignment_id"`
	ID           string `json:"id"`
	Name         string `json:"name"`
	Weight       string `json:"weight"`
	Equipped     bool   `json:"equipped"`
	WeaponType   string `json:"weapon_type"`
	Damage       string `json:"damage"`
	DamageType   string `json:"damage_type"`
}

type GearAssignment struct {
	AssignmentID string `json:"assignment_id"`
	ID           string `json:"id"`
	Name         string `json:"name"`
	Length       *int   `json:"length"`
	Quantity     *int   `json:"quantity"`
	Weight       string `json:"weight"`
}

type ToolAssignment struct {
	AssignmentID string `json:"assignment_id"`
	ID           string `json:"id"`
	Name         string `json:"name"`
	Weight       string `json:"weight"`
	Category     string `json:"category"`
}

// Equipment is everything a character carries with the summed weight.
type Equipment struct {
	AdventuringGear []GearAssignment   `json:"adventuring_gear"`
	Armor           []ArmorAssignment  `json:"armor"`
	Tools           []ToolAssignment   `json:"tools"`
	Weapons         []WeaponAssignment `json:"weapons"`
	TotalWeight     string             `json:"total_weight"`
}

// NewEquipment expects the character's assignments to be loaded with their catalog rows.
func NewEquipment(c *rimodel.Character) Equipment {
	e := Equipment{
		AdventuringGear: make([]GearAssignment, 0, len(c.AdventuringGear)),
		Armor:           make([]ArmorAssignment, 0, len(c.Armor)),
		Tools:           make([]ToolAssignment, 0, len(c.Tools)),
		Weapons:         make([]WeaponAssignment, 0, len(c.Weapons)),
	}

	var total hundredths

	for i := range c.AdventuringGear {
		g := &c.AdventuringGear[i]
		w := toHundredths(g.Weight())
		total += w
		entry := GearAssignment{AssignmentID: g.ID, ID: g.AdventuringGearID, Length: g.Length, Quantity: g.Quantity, Weight: w.String()}
		if g.AdventuringGear != nil {
			entry.Name = g.AdventuringGear.Name
		}
		e.AdventuringGear = append(e.AdventuringGear, entry)
	}

	for _, a := range c.Armor {
		entry := ArmorAssignment{AssignmentID: a.ID, ID: a.ArmorID, Equipped: a.Equipped, Weight: hundredths(0).String()}
		if a.Armor != nil {
			w := toHundredths(a.Armor.Weight)
			total += w
			entry.Name = a.Armor.Name
			entry.Weight = w.String()
			entry.ArmorClass = a.Armor.ArmorClass
			entry.ArmorClassIncrease = a.Armor.ArmorClassIncrease
			entry.ArmorType = rimodel.ArmorTypeChoices.Display(a.Armor.ArmorType)
		}
		e.Armor = append(e.Armor, entry)
	}

	for _, t := range c.Tools {
		entry := ToolAssignment{AssignmentID: t.ID, ID: t.ToolID, Weight: hundredths(0).String()}
		if t.Tool != nil {
			w := toHundredths(t.Tool.Weight)
			total += w
			entry.Name = t.Tool.Name
			entry.Weight = w.String()
			entry.Category = t.Tool.CategoryDisplay()
		}
		e.Tools = append(e.Tools, entry)
	}

	for _, w := range c.Weapons {
		entry := WeaponAssignment{AssignmentID: w.ID, ID: w.WeaponID, Equipped: w.Equipped, Weight: hundredths(0).String()}
		if w.Weapon != nil {
			weaponWeight := toHundredths(w.Weapon.Weight)
			total += weaponWeight
			entry.Name = w.Weapon.Name
			entry.Weight = weaponWeight.String()
			entry.WeaponType = rimodel.WeaponTypeChoices.Display(w.Weapon.WeaponType)
			entry.Damage = w.Weapon.DamageNotation()
			entry.DamageType = rimodel.DamageTypeChoices.Display(w.Weapon.DamageType)
		}
		e.Weapons = append(e.Weapons, entry)
	}

	e.TotalWeight = total.String()

	return e
}
