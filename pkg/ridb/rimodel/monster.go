package rimodel

import (
	"strings"
	"time"

	"github.com/rollinitiative/rollinit/pkg/rierr"
)

type Monster struct {
	Identity
	AbilityScoreHealth
	Money
	MonsterTypeID string       `json:"monster_type_id" gorm:"size:36;not null;index"`
	MonsterType   *MonsterType `json:"monster_type,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
	FirstName     string       `json:"first_name" gorm:"size:30;not null"`
	LastName      string       `json:"last_name" gorm:"size:30"`
	Backstory     string       `json:"backstory" gorm:"type:text"`
	CampaignID    *string      `json:"campaign_id" gorm:"size:36;index"`
	Campaign      *Campaign    `json:"campaign,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

func (Monster) TableName() string {
	return "monsters"
}

func (m *Monster) String() string {
	return strings.TrimSpace(m.FirstName + " " + m.LastName)
}

func (m *Monster) Validate() error {
	var vb rierr.ValidationBuilder
	m.AbilityScoreHealth.validate(&vb)
	m.Money.validate(&vb)
	vb.Required("first_name", m.FirstName).
		MaxLength("first_name", m.FirstName, 30).
		MaxLength("last_name", m.LastName, 30).
		Required("monster_type_id", m.MonsterTypeID)

	return vb.Build()
}
