package stor

import (
	"gorm.io/gorm"

	"github.com/rollinitiative/rollinit/pkg/listq"
	"github.com/rollinitiative/rollinit/pkg/ridb/rimodel"
)

// CatalogStor gives read access to one reference table.
type CatalogStor[M any] interface {
	List(cfg *listq.Config, req listq.Request, pp listq.PageParams) (*listq.Result[M], error)
	GetByID(id string) (*M, error)
}

type CampaignStor interface {
	ListCampaigns(cfg *listq.Config, req listq.Request, pp listq.PageParams) (*listq.Result[rimodel.Campaign], error)
	GetCampaignByID(id string) (*rimodel.Campaign, error)
	CreateCampaign(campaign *rimodel.Campaign) (*rimodel.Campaign, error)
	ModifyCampaign(id string, fn func(campaign *rimodel.Campaign) error) (*rimodel.Campaign, error)
	DeleteCampaign(id string) error
}

type CharacterStor interface {
	ListCharacters(cfg *listq.Config, req listq.Request, pp listq.PageParams) (*listq.Result[rimodel.Character], error)
	GetCharacterByID(id string) (*rimodel.Character, error)
	GetCharacterWithEquipment(id string) (*rimodel.Character, error)
	CreateCharacter(character *rimodel.Character) (*rimodel.Character, error)
	ModifyCharacter(id string, fn func(character *rimodel.Character) error) (*rimodel.Character, error)
	DeleteCharacter(id string) error
	AddAssignment(a rimodel.Assignment) error
	ModifyAssignment(characterID, id string, a rimodel.Assignment, fn func() error) error
	RemoveAssignment(characterID, id string, a rimodel.Assignment) error
}

type MonsterStor interface {
	ListMonsters(cfg *listq.Config, req listq.Request, pp listq.PageParams) (*listq.Result[rimodel.Monster], error)
	GetMonsterByID(id string) (*rimodel.Monster, error)
	CreateMonster(monster *rimodel.Monster) (*rimodel.Monster, error)
	ModifyMonster(id string, fn func(monster *rimodel.Monster) error) (*rimodel.Monster, error)
	DeleteMonster(id string) error
}

type Stors struct {
	CampaignStor  CampaignStor
	CharacterStor CharacterStor
	MonsterStor   MonsterStor

	RaceStor            CatalogStor[rimodel.CharacterRace]
	ClassStor           CatalogStor[rimodel.CharacterClass]
	ArmorStor           CatalogStor[rimodel.Armor]
	WeaponStor          CatalogStor[rimodel.Weapon]
	AdventuringGearStor CatalogStor[rimodel.AdventuringGear]
	EquipmentPackStor   CatalogStor[rimodel.EquipmentPack]
	ToolStor            CatalogStor[rimodel.Tool]
	FeatStor            CatalogStor[rimodel.Feat]
	MonsterTypeStor     CatalogStor[rimodel.MonsterType]
}

func NewGormStors(db *gorm.DB) *Stors {
	return &Stors{
		CampaignStor:  NewGormCampaignStor(db),
		CharacterStor: NewGormCharacterStor(db),
		MonsterStor:   NewGormMonsterStor(db),

		RaceStor:            NewGormCatalogStor[rimodel.CharacterRace](db, "race"),
		ClassStor:           NewGormCatalogStor[rimodel.CharacterClass](db, "character class", preloadClassDetail),
		ArmorStor:           NewGormCatalogStor[rimodel.Armor](db, "armor"),
		WeaponStor:          NewGormCatalogStor[rimodel.Weapon](db, "weapon"),
		AdventuringGearStor: NewGormCatalogStor[rimodel.AdventuringGear](db, "adventuring gear"),
		EquipmentPackStor:   NewGormCatalogStor[rimodel.EquipmentPack](db, "equipment pack", preloadPackGear),
		ToolStor:            NewGormCatalogStor[rimodel.Tool](db, "tool"),
		FeatStor:            NewGormCatalogStor[rimodel.Feat](db, "feat"),
		MonsterTypeStor:     NewGormCatalogStor[rimodel.MonsterType](db, "monster type"),
	}
}
