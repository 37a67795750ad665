package rimodel

import (
	"time"

	"github.com/rollinitiative/rollinit/pkg/rierr"
)

type Campaign struct {
	Identity
	Name        string    `json:"name" gorm:"size:50;not null"`
	Slug        string    `json:"slug" gorm:"size:80;not null;uniqueIndex"`
	Description string    `json:"description" gorm:"type:text"`
	Story       string    `json:"story" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Campaign) TableName() string {
	return "campaigns"
}

func (c *Campaign) Validate() error {
	var vb rierr.ValidationBuilder
	vb.Required("name", c.Name).MaxLength("name", c.Name, 50)
	return vb.Build()
}
