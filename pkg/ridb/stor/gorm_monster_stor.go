package stor

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rollinitiative/rollinit/pkg/listq"
	"github.com/rollinitiative/rollinit/pkg/ridb/rimodel"
)

type GormMonsterStor struct {
	db *gorm.DB
}

func NewGormMonsterStor(db *gorm.DB) *GormMonsterStor {
	return &GormMonsterStor{db: db}
}

func (s *GormMonsterStor) ListMonsters(cfg *listq.Config, req listq.Request, pp listq.PageParams) (*listq.Result[rimodel.Monster], error) {
	return listq.Run[rimodel.Monster](s.db, cfg, req, pp)
}

func (s *GormMonsterStor) GetMonsterByID(id string) (*rimodel.Monster, error) {
	var monster rimodel.Monster
	err := s.db.Preload("MonsterType").Preload("Campaign").Where("id = ?", id).First(&monster).Error
	if err != nil {
		return nil, translateError(err, "monster")
	}

	return &monster, nil
}

func (s *GormMonsterStor) CreateMonster(monster *rimodel.Monster) (*rimodel.Monster, error) {
	if err := monster.Validate(); err != nil {
		return nil, err
	}

	if err := s.db.Omit(clause.Associations).Create(monster).Error; err != nil {
		return nil, translateError(err, "monster")
	}

	return s.GetMonsterByID(monster.ID)
}

func (s *GormMonsterStor) ModifyMonster(id string, fn func(monster *rimodel.Monster) error) (*rimodel.Monster, error) {
	err := WithTx(s.db, func(tx *gorm.DB) error {
		var monster rimodel.Monster
		if err := tx.Where("id = ?", id).First(&monster).Error; err != nil {
			return err
		}

		if err := fn(&monster); err != nil {
			return err
		}

		monster.ID = id
		if err := monster.Validate(); err != nil {
			return err
		}

		monster.MonsterType, monster.Campaign = nil, nil
		return tx.Omit(clause.Associations).Save(&monster).Error
	})

	if err != nil {
		return nil, translateError(err, "monster")
	}

	return s.GetMonsterByID(id)
}

func (s *GormMonsterStor) DeleteMonster(id string) error {
	result := s.db.Where("id = ?", id).Delete(&rimodel.Monster{})
	if result.Error != nil {
		return translateDeleteError(result.Error, "monster")
	}

	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound, "monster")
	}

	return nil
}
