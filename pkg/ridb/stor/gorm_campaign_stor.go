package stor

import (
	"fmt"

	"github.com/gosimple/slug"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/rollinitiative/rollinit/pkg/listq"
	"github.com/rollinitiative/rollinit/pkg/ridb/rimodel"
)

const maxSlugAttempts = 100

type GormCampaignStor struct {
	db *gorm.DB
}

func NewGormCampaignStor(db *gorm.DB) *GormCampaignStor {
	return &GormCampaignStor{db: db}
}

func (s *GormCampaignStor) ListCampaigns(cfg *listq.Config, req listq.Request, pp listq.PageParams) (*listq.Result[rimodel.Campaign], error) {
	return listq.Run[rimodel.Campaign](s.db, cfg, req, pp)
}

func (s *GormCampaignStor) GetCampaignByID(id string) (*rimodel.Campaign, error) {
	var campaign rimodel.Campaign
	if err := s.db.Where("id = ?", id).First(&campaign).Error; err != nil {
		return nil, translateError(err, "campaign")
	}

	return &campaign, nil
}

// CreateCampaign slugs the name and, when the slug is taken, tries name-1, name-2, ...
// Each attempt is its own statement so a failed insert doesn't poison a transaction.
func (s *GormCampaignStor) CreateCampaign(campaign *rimodel.Campaign) (*rimodel.Campaign, error) {
	if err := campaign.Validate(); err != nil {
		return nil, err
	}

	slugOfName := slug.Make(campaign.Name)
	if slugOfName == "" {
		slugOfName = "campaign"
	}
	campaign.Slug = slugOfName

	for slugNext := 1; slugNext <= maxSlugAttempts; slugNext++ {
		err := s.db.Create(campaign).Error
		switch {
		case err == nil:
			return campaign, nil
		case isDuplicate(err):
			campaign.Slug = fmt.Sprintf("%s-%d", slugOfName, slugNext)
		default:
			return nil, translateError(err, "campaign")
		}
	}

	return nil, errors.Errorf("unable to find a free slug for campaign %q", campaign.Name)
}

// ModifyCampaign applies fn to the stored campaign and saves it when it still validates.
// The slug is kept when the name changes so links stay stable.
func (s *GormCampaignStor) ModifyCampaign(id string, fn func(campaign *rimodel.Campaign) error) (*rimodel.Campaign, error) {
	var campaign rimodel.Campaign
	err := WithTx(s.db, func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&campaign).Error; err != nil {
			return err
		}

		slugBefore := campaign.Slug
		if err := fn(&campaign); err != nil {
			return err
		}
		campaign.ID, campaign.Slug = id, slugBefore

		if err := campaign.Validate(); err != nil {
			return err
		}

		return tx.Save(&campaign).Error
	})

	if err != nil {
		return nil, translateError(err, "campaign")
	}

	return &campaign, nil
}

// DeleteCampaign removes the campaign. Characters and monsters in it go with it.
func (s *GormCampaignStor) DeleteCampaign(id string) error {
	result := s.db.Where("id = ?", id).Delete(&rimodel.Campaign{})
	if result.Error != nil {
		return translateDeleteError(result.Error, "campaign")
	}

	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound, "campaign")
	}

	return nil
}
