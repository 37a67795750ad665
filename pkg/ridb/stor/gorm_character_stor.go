package stor

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rollinitiative/rollinit/pkg/listq"
	"github.com/rollinitiative/rollinit/pkg/ridb/rimodel"
)

type GormCharacterStor struct {
	db *gorm.DB
}

func NewGormCharacterStor(db *gorm.DB) *GormCharacterStor {
	return &GormCharacterStor{db: db}
}

func (s *GormCharacterStor) ListCharacters(cfg *listq.Config, req listq.Request, pp listq.PageParams) (*listq.Result[rimodel.Character], error) {
	return listq.Run[rimodel.Character](s.db, cfg, req, pp)
}

func (s *GormCharacterStor) GetCharacterByID(id string) (*rimodel.Character, error) {
	var character rimodel.Character
	err := s.db.Preload("Race").
		Preload("CharacterClass").
		Preload("Campaign").
		Preload("Feats").
		Preload("Feats.Feat").
		Where("id = ?", id).
		First(&character).Error
	if err != nil {
		return nil, translateError(err, "character")
	}

	return &character, nil
}

func (s *GormCharacterStor) GetCharacterWithEquipment(id string) (*rimodel.Character, error) {
	var character rimodel.Character
	err := s.db.Preload("Armor").
		Preload("Armor.Armor").
		Preload("Weapons").
		Preload("Weapons.Weapon").
		Preload("AdventuringGear").
		Preload("AdventuringGear.AdventuringGear").
		Preload("Tools").
		Preload("Tools.Tool").
		Where("id = ?", id).
		First(&character).Error
	if err != nil {
		return nil, translateError(err, "character")
	}

	return &character, nil
}

func (s *GormCharacterStor) CreateCharacter(character *rimodel.Character) (*rimodel.Character, error) {
	if err := character.Validate(); err != nil {
		return nil, err
	}

	if err := s.db.Omit(clause.Associations).Create(character).Error; err != nil {
		return nil, translateError(err, "character")
	}

	return s.GetCharacterByID(character.ID)
}

// ModifyCharacter loads the character with its class, applies fn and saves the result when
// it still validates. Nothing is written when fn or validation fails.
func (s *GormCharacterStor) ModifyCharacter(id string, fn func(character *rimodel.Character) error) (*rimodel.Character, error) {
	err := WithTx(s.db, func(tx *gorm.DB) error {
		var character rimodel.Character
		if err := tx.Preload("CharacterClass").Where("id = ?", id).First(&character).Error; err != nil {
			return err
		}

		if err := fn(&character); err != nil {
			return err
		}

		character.ID = id
		if err := character.Validate(); err != nil {
			return err
		}

		character.Race, character.CharacterClass, character.Campaign = nil, nil, nil
		return tx.Omit(clause.Associations).Save(&character).Error
	})

	if err != nil {
		return nil, translateError(err, "character")
	}

	return s.GetCharacterByID(id)
}

// DeleteCharacter removes the character and, through the cascade constraints, everything
// assigned to it.
func (s *GormCharacterStor) DeleteCharacter(id string) error {
	result := s.db.Where("id = ?", id).Delete(&rimodel.Character{})
	if result.Error != nil {
		return translateDeleteError(result.Error, "character")
	}

	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound, "character")
	}

	return nil
}

func (s *GormCharacterStor) AddAssignment(a rimodel.Assignment) error {
	if err := a.Validate(); err != nil {
		return err
	}

	return translateError(s.db.Omit(clause.Associations).Create(a).Error, "assignment")
}

// ModifyAssignment loads the assignment into a, which must be a pointer to an assignment
// model, applies fn and saves it.
func (s *GormCharacterStor) ModifyAssignment(characterID, id string, a rimodel.Assignment, fn func() error) error {
	err := WithTx(s.db, func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND character_id = ?", id, characterID).First(a).Error; err != nil {
			return err
		}

		if err := fn(); err != nil {
			return err
		}

		if err := a.Validate(); err != nil {
			return err
		}

		return tx.Omit(clause.Associations).Save(a).Error
	})

	return translateError(err, "assignment")
}

func (s *GormCharacterStor) RemoveAssignment(characterID, id string, a rimodel.Assignment) error {
	result := s.db.Where("id = ? AND character_id = ?", id, characterID).Delete(a)
	if result.Error != nil {
		return translateDeleteError(result.Error, "assignment")
	}

	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound, "assignment")
	}

	return nil
}
