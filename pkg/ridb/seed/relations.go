package seed

import (
	"fmt"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/rollinitiative/rollinit/pkg/ridb/rimodel"
)

type classRefs struct {
	armor   map[string]*rimodel.Armor
	weapons map[string]*rimodel.Weapon
	tools   map[string]*rimodel.Tool
	feats   map[string]*rimodel.Feat
}

var classRelationKeys = []string{"armor_proficiencies", "weapon_proficiencies", "tool_proficiencies", "features"}

func loadClasses(tx *gorm.DB, entries []map[string]any, refs classRefs) (map[string]*rimodel.CharacterClass, error) {
	classes, err := upsertByName[rimodel.CharacterClass](tx, entries, "class", classRelationKeys...)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		name := entry["name"].(string)
		class := classes[name]

		armor, err := resolve(entry["armor_proficiencies"], refs.armor, "armor")
		if err != nil {
			return nil, errors.Wrapf(err, "class %q", name)
		}
		if err := replaceAssociation(tx, class, "ArmorProficiencies", armor); err != nil {
			return nil, errors.Wrapf(err, "class %q", name)
		}

		weapons, err := resolve(entry["weapon_proficiencies"], refs.weapons, "weapon")
		if err != nil {
			return nil, errors.Wrapf(err, "class %q", name)
		}
		if err := replaceAssociation(tx, class, "WeaponProficiencies", weapons); err != nil {
			return nil, errors.Wrapf(err, "class %q", name)
		}

		tools, err := resolve(entry["tool_proficiencies"], refs.tools, "tool")
		if err != nil {
			return nil, errors.Wrapf(err, "class %q", name)
		}
		if err := replaceAssociation(tx, class, "ToolProficiencies", tools); err != nil {
			return nil, errors.Wrapf(err, "class %q", name)
		}

		if err := loadFeatures(tx, class, entry["features"], refs.feats); err != nil {
			return nil, errors.Wrapf(err, "class %q", name)
		}
	}

	return classes, nil
}

func replaceAssociation[M any](tx *gorm.DB, class *rimodel.CharacterClass, association string, rows []*M) error {
	a := tx.Model(class).Association(association)
	if len(rows) == 0 {
		return a.Clear()
	}

	return a.Replace(rows)
}

// loadFeatures replaces the class's features. Each entry is {feat: <name>, level: <n>}.
func loadFeatures(tx *gorm.DB, class *rimodel.CharacterClass, v any, feats map[string]*rimodel.Feat) error {
	if err := tx.Where("character_class_id = ?", class.ID).Delete(&rimodel.CharacterClassFeature{}).Error; err != nil {
		return err
	}

	items, err := asList(v, "features")
	if err != nil {
		return err
	}

	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return fmt.Errorf("features: expected a mapping, got %T", item)
		}

		featName, _ := m["feat"].(string)
		feat, ok := feats[featName]
		if !ok {
			return fmt.Errorf("unknown feat %q", featName)
		}

		level, _ := m["level"].(int)
		feature := &rimodel.CharacterClassFeature{CharacterClassID: class.ID, FeatID: feat.ID, Level: level}
		if err := feature.Validate(); err != nil {
			return errors.Wrapf(err, "feature %q", featName)
		}

		if err := tx.Omit("Feat").Create(feature).Error; err != nil {
			return err
		}
	}

	return nil
}

// loadPacks upserts the packs and replaces their contents. Gear entries are
// {name: <gear name>, quantity: <n>}.
func loadPacks(tx *gorm.DB, entries []map[string]any, gear map[string]*rimodel.AdventuringGear) (map[string]*rimodel.EquipmentPack, error) {
	packs, err := upsertByName[rimodel.EquipmentPack](tx, entries, "equipment pack", "gear")
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		name := entry["name"].(string)
		pack := packs[name]

		if err := tx.Where("equipment_pack_id = ?", pack.ID).Delete(&rimodel.EquipmentPackGear{}).Error; err != nil {
			return nil, err
		}

		items, err := asList(entry["gear"], "gear")
		if err != nil {
			return nil, errors.Wrapf(err, "equipment pack %q", name)
		}

		for _, item := range items {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("equipment pack %q: expected a mapping, got %T", name, item)
			}

			gearName, _ := m["name"].(string)
			g, ok := gear[gearName]
			if !ok {
				return nil, fmt.Errorf("equipment pack %q: unknown adventuring gear %q", name, gearName)
			}

			quantity := 1
			if q, ok := m["quantity"].(int); ok {
				quantity = q
			}

			if quantity < 1 {
				return nil, fmt.Errorf("equipment pack %q: quantity of %q must be at least 1", name, gearName)
			}

			row := &rimodel.EquipmentPackGear{EquipmentPackID: pack.ID, AdventuringGearID: g.ID, Quantity: quantity}
			if err := tx.Omit("AdventuringGear").Create(row).Error; err != nil {
				return nil, err
			}
		}
	}

	return packs, nil
}

func resolve[M any](v any, byName map[string]*M, what string) ([]*M, error) {
	items, err := asList(v, what)
	if err != nil {
		return nil, err
	}

	rows := make([]*M, 0, len(items))
	for _, item := range items {
		name, _ := item.(string)
		row, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown %s %q", what, item)
		}

		rows = append(rows, row)
	}

	return rows, nil
}

func asList(v any, what string) ([]any, error) {
	if v == nil {
		return nil, nil
	}

	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%s: expected a list, got %T", what, v)
	}

	return items, nil
}
