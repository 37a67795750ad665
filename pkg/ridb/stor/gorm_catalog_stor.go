package stor

import (
	"gorm.io/gorm"

	"github.com/rollinitiative/rollinit/pkg/listq"
)

// GormCatalogStor reads one reference table. The detail scopes add the preloads a detail
// view needs on top of the plain row.
type GormCatalogStor[M any] struct {
	db           *gorm.DB
	what         string
	detailScopes []func(*gorm.DB) *gorm.DB
}

func NewGormCatalogStor[M any](db *gorm.DB, what string, detailScopes ...func(*gorm.DB) *gorm.DB) *GormCatalogStor[M] {
	return &GormCatalogStor[M]{db: db, what: what, detailScopes: detailScopes}
}

func (s *GormCatalogStor[M]) List(cfg *listq.Config, req listq.Request, pp listq.PageParams) (*listq.Result[M], error) {
	return listq.Run[M](s.db, cfg, req, pp)
}

func (s *GormCatalogStor[M]) GetByID(id string) (*M, error) {
	var m M
	err := s.db.Scopes(s.detailScopes...).Where("id = ?", id).First(&m).Error
	if err != nil {
		return nil, translateError(err, s.what)
	}

	return &m, nil
}

func preloadClassDetail(db *gorm.DB) *gorm.DB {
	return db.Preload("ArmorProficiencies", orderByName).
		Preload("WeaponProficiencies", orderByName).
		Preload("ToolProficiencies", orderByName).
		Preload("Features", func(db *gorm.DB) *gorm.DB { return db.Order("level, id") }).
		Preload("Features.Feat")
}

func preloadPackGear(db *gorm.DB) *gorm.DB {
	return db.Preload("Gear").Preload("Gear.AdventuringGear")
}

func orderByName(db *gorm.DB) *gorm.DB {
	return db.Order("name, id")
}
