// Package seed loads the reference catalogs (races, classes, equipment, feats and monster
// types) from YAML. Rows are matched by name, so loading the same catalog twice updates
// rather than duplicates.
package seed

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"

	"github.com/apex/log"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rollinitiative/rollinit/pkg/decoder"
	"github.com/rollinitiative/rollinit/pkg/ridb/rimodel"
	"github.com/rollinitiative/rollinit/pkg/ridb/stor"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type catalog struct {
	Feats           []map[string]any `yaml:"feats"`
	Armor           []map[string]any `yaml:"armor"`
	Weapons         []map[string]any `yaml:"weapons"`
	AdventuringGear []map[string]any `yaml:"adventuring_gear"`
	Tools           []map[string]any `yaml:"tools"`
	EquipmentPacks  []map[string]any `yaml:"equipment_packs"`
	Races           []map[string]any `yaml:"races"`
	Classes         []map[string]any `yaml:"classes"`
	MonsterTypes    []map[string]any `yaml:"monster_types"`
}

// Summary counts the rows loaded per catalog.
type Summary struct {
	Feats           int
	Armor           int
	Weapons         int
	AdventuringGear int
	Tools           int
	EquipmentPacks  int
	Races           int
	Classes         int
	MonsterTypes    int
}

func LoadDefault(db *gorm.DB) (*Summary, error) {
	return Load(db, bytes.NewReader(defaultCatalog))
}

// Load reads a YAML catalog from r and upserts it in one transaction. Classes name their
// proficiencies and features, and packs their gear, by name; a name that isn't in the
// catalog fails the whole load.
func Load(db *gorm.DB, r io.Reader) (*Summary, error) {
	var c catalog
	if err := yaml.NewDecoder(r).Decode(&c); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "reading catalog")
	}

	summary := &Summary{}
	err := stor.WithTx(db, func(tx *gorm.DB) error {
		feats, err := upsertByName[rimodel.Feat](tx, c.Feats, "feat")
		if err != nil {
			return err
		}

		armor, err := upsertByName[rimodel.Armor](tx, c.Armor, "armor")
		if err != nil {
			return err
		}

		weapons, err := upsertByName[rimodel.Weapon](tx, c.Weapons, "weapon")
		if err != nil {
			return err
		}

		gear, err := upsertByName[rimodel.AdventuringGear](tx, c.AdventuringGear, "adventuring gear")
		if err != nil {
			return err
		}

		tools, err := upsertByName[rimodel.Tool](tx, c.Tools, "tool")
		if err != nil {
			return err
		}

		packs, err := loadPacks(tx, c.EquipmentPacks, gear)
		if err != nil {
			return err
		}

		races, err := upsertByName[rimodel.CharacterRace](tx, c.Races, "race")
		if err != nil {
			return err
		}

		classes, err := loadClasses(tx, c.Classes, classRefs{armor: armor, weapons: weapons, tools: tools, feats: feats})
		if err != nil {
			return err
		}

		monsterTypes, err := upsertByName[rimodel.MonsterType](tx, c.MonsterTypes, "monster type")
		if err != nil {
			return err
		}

		*summary = Summary{
			Feats:           len(feats),
			Armor:           len(armor),
			Weapons:         len(weapons),
			AdventuringGear: len(gear),
			Tools:           len(tools),
			EquipmentPacks:  len(packs),
			Races:           len(races),
			Classes:         len(classes),
			MonsterTypes:    len(monsterTypes),
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"races":    summary.Races,
		"classes":  summary.Classes,
		"armor":    summary.Armor,
		"weapons":  summary.Weapons,
		"gear":     summary.AdventuringGear,
		"packs":    summary.EquipmentPacks,
		"tools":    summary.Tools,
		"feats":    summary.Feats,
		"monsters": summary.MonsterTypes,
	}).Info("Catalog loaded")

	return summary, nil
}

type catalogRow interface {
	rimodel.Validator
	GetID() string
	SetID(id string)
}

// upsertByName decodes each entry into M, validates it and either updates the row with
// the same name or creates a new one. Keys listed in skip are handled by the caller.
func upsertByName[M any, P interface {
	*M
	catalogRow
}](tx *gorm.DB, entries []map[string]any, what string, skip ...string) (map[string]P, error) {
	byName := make(map[string]P, len(entries))

	for i, entry := range entries {
		name, _ := entry["name"].(string)
		if name == "" {
			return nil, fmt.Errorf("%s #%d has no name", what, i+1)
		}

		if _, dup := byName[name]; dup {
			return nil, fmt.Errorf("%s %q is listed twice", what, name)
		}

		m, err := decoder.DecodeMapStrict[M](without(entry, skip...))
		if err != nil {
			return nil, errors.Wrapf(err, "%s %q", what, name)
		}

		row := P(&m)
		if d, ok := any(row).(rimodel.Defaulter); ok {
			d.SetDefaults()
		}

		if err := row.Validate(); err != nil {
			return nil, errors.Wrapf(err, "%s %q", what, name)
		}

		var existing []M
		if err := tx.Where("name = ?", name).Limit(1).Find(&existing).Error; err != nil {
			return nil, errors.Wrapf(err, "looking up %s %q", what, name)
		}

		if len(existing) == 0 {
			err = tx.Omit(clause.Associations).Create(row).Error
		} else {
			row.SetID(P(&existing[0]).GetID())
			err = tx.Omit(clause.Associations).Save(row).Error
		}

		if err != nil {
			return nil, errors.Wrapf(err, "saving %s %q", what, name)
		}

		byName[name] = row
	}

	return byName, nil
}

func without(entry map[string]any, keys ...string) map[string]any {
	if len(keys) == 0 {
		return entry
	}

	out := make(map[string]any, len(entry))
	for k, v := range entry {
		out[k] = v
	}

	for _, k := range keys {
		delete(out, k)
	}

	return out
}
