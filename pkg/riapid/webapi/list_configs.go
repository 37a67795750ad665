package webapi

import (
	"github.com/rollinitiative/rollinit/pkg/listq"
	"github.com/rollinitiative/rollinit/pkg/ridb/rimodel"
)

// List endpoint declarations. Each ordering ends in a unique column; listq appends "id"
// otherwise.

func campaignListConfig() *listq.Config {
	return &listq.Config{
		Table:        "campaigns",
		SearchFields: []string{"name", "description"},
		SortFields:   []string{"name", "created_at"},
		Ordering:     []string{"name", "id"},
	}
}

func characterListConfig() *listq.Config {
	return &listq.Config{
		Table:        "characters",
		SearchFields: []string{"first_name", "last_name", "title", "race.name", "character_class.name"},
		SortFields:   []string{"first_name", "last_name", "title", "age", "level", "race", "character_class"},
		FieldMap: map[string]string{
			"race":            "race.name",
			"character_class": "character_class.name",
		},
		FilterFields: map[string]listq.FilterField{
			"race":            {Column: "race_id"},
			"character_class": {Column: "character_class_id"},
			"campaign":        {Column: "campaign_id"},
		},
		Relations: map[string]listq.Relation{
			"race":            {Table: "character_races", ForeignKey: "race_id"},
			"character_class": {Table: "character_classes", ForeignKey: "character_class_id"},
		},
		Ordering: []string{"first_name", "last_name", "id"},
		Preload:  []string{"Race", "CharacterClass"},
	}
}

func ClassListConfig() *listq.Config {
	return &listq.Config{
		Table:        "character_classes",
		SearchFields: []string{"name"},
		SortFields:   []string{"name", "hit_die"},
		Ordering:     []string{"name", "id"},
	}
}

func RaceListConfig() *listq.Config {
	return &listq.Config{
		Table:        "character_races",
		SearchFields: []string{"name"},
		SortFields: []string{
			"name",
			"speed",
			"strength_increase",
			"dexterity_increase",
			"constitution_increase",
			"intelligence_increase",
			"wisdom_increase",
			"charisma_increase",
		},
		Ordering: []string{"name", "id"},
	}
}

func ArmorListConfig() *listq.Config {
	return &listq.Config{
		Table:        "armor",
		SearchFields: []string{"name", "armor_type"},
		SortFields: []string{
			"name",
			"armor_type",
			"weight",
			"gold",
			"armor_class",
			"armor_class_increase",
			"strength_requirement",
		},
		FilterFields: map[string]listq.FilterField{
			"armor_type": {Column: "armor_type", Options: choiceOptions(rimodel.ArmorTypeChoices)},
		},
		Ordering: []string{"armor_type", "name", "id"},
	}
}

func WeaponListConfig() *listq.Config {
	return &listq.Config{
		Table:        "weapons",
		SearchFields: []string{"name", "weapon_type"},
		SortFields: []string{
			"name",
			"weapon_type",
			"weight",
			"copper",
			"silver",
			"electrum",
			"gold",
			"platinum",
			"normal_range",
			"maximum_range",
		},
		FilterFields: map[string]listq.FilterField{
			"weapon_type": {Column: "weapon_type", Options: choiceOptions(rimodel.WeaponTypeChoices)},
		},
		Ordering: []string{"weapon_type", "name", "id"},
	}
}

func AdventuringGearListConfig() *listq.Config {
	return &listq.Config{
		Table:        "adventuring_gear",
		SearchFields: []string{"name"},
		SortFields:   []string{"name", "weight", "quantity", "length"},
		Ordering:     []string{"name", "id"},
	}
}

func EquipmentPackListConfig() *listq.Config {
	return &listq.Config{
		Table:        "equipment_packs",
		SearchFields: []string{"name"},
		SortFields:   []string{"name", "gold"},
		Ordering:     []string{"name", "id"},
	}
}

func ToolListConfig() *listq.Config {
	return &listq.Config{
		Table:        "tools",
		SearchFields: []string{"name", "description"},
		SortFields:   []string{"name", "weight", "copper", "silver", "electrum", "gold", "platinum"},
		FilterFields: map[string]listq.FilterField{
			"category": {Column: "category", Options: choiceOptions(rimodel.ToolCategoryChoices)},
		},
		Ordering: []string{"name", "id"},
	}
}

func FeatListConfig() *listq.Config {
	return &listq.Config{
		Table:        "feats",
		SearchFields: []string{"name", "prerequisite", "description"},
		SortFields:   []string{"name"},
		Ordering:     []string{"name", "id"},
	}
}

func MonsterTypeListConfig() *listq.Config {
	return &listq.Config{
		Table:        "monster_types",
		SearchFields: []string{"name"},
		SortFields:   []string{"name", "armor_class"},
		Ordering:     []string{"name", "id"},
	}
}

func monsterListConfig() *listq.Config {
	return &listq.Config{
		Table:        "monsters",
		SearchFields: []string{"first_name", "last_name", "monster_type.name"},
		SortFields:   []string{"first_name", "last_name", "armor_class", "max_hp", "monster_type"},
		FieldMap:     map[string]string{"monster_type": "monster_type.name"},
		FilterFields: map[string]listq.FilterField{
			"monster_type": {Column: "monster_type_id"},
			"campaign":     {Column: "campaign_id"},
		},
		Relations: map[string]listq.Relation{
			"monster_type": {Table: "monster_types", ForeignKey: "monster_type_id"},
		},
		Ordering: []string{"first_name", "last_name", "id"},
		Preload:  []string{"MonsterType"},
	}
}

// choiceOptions turns a choice table into filter options. The empty value stands for
// NULL and becomes a nil id.
func choiceOptions(choices rimodel.Choices) []listq.Option {
	options := make([]listq.Option, 0, len(choices))
	for _, c := range choices {
		var id any = c.Value
		if c.Value == "" {
			id = nil
		}
		options = append(options, listq.Option{ID: id, Name: c.Display})
	}

	return options
}

// WithMaxPageSize caps page_size on cfg when maxPageSize is positive.
func WithMaxPageSize(cfg *listq.Config, maxPageSize int) *listq.Config {
	if maxPageSize > 0 {
		return cfg.WithMaxPageSize(maxPageSize)
	}

	return cfg
}
