package ridb

import (
	"gorm.io/gorm"

	"github.com/rollinitiative/rollinit/pkg/ridb/rimodel"
)

// Models lists every table in dependency order. Character must be migrated in the same
// call as its association rows so the cascade constraints are created with them.
func Models() []any {
	return []any{
		&rimodel.Campaign{},
		&rimodel.Feat{},
		&rimodel.Armor{},
		&rimodel.Weapon{},
		&rimodel.AdventuringGear{},
		&rimodel.Tool{},
		&rimodel.EquipmentPack{},
		&rimodel.EquipmentPackGear{},
		&rimodel.CharacterRace{},
		&rimodel.CharacterClass{},
		&rimodel.CharacterClassFeature{},
		&rimodel.MonsterType{},
		&rimodel.Character{},
		&rimodel.CharacterArmor{},
		&rimodel.CharacterWeapon{},
		&rimodel.CharacterAdventuringGear{},
		&rimodel.CharacterTool{},
		&rimodel.CharacterFeat{},
		&rimodel.Monster{},
	}
}

func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
