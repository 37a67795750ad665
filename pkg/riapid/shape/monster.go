package shape

import (
	"time"

	"github.com/rollinitiative/rollinit/pkg/ridb/rimodel"
)

type MonsterListEntry struct {
	ID          string   `json:"id"`
	MonsterType *NameRef `json:"monster_type"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	ArmorClass  int      `json:"armor_class"`
	MaxHP       int      `json:"max_hp"`
}

func NewMonsterListEntry(m *rimodel.Monster) MonsterListEntry {
	return MonsterListEntry{
		ID:          m.ID,
		MonsterType: monsterTypeRef(m.MonsterType),
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		ArmorClass:  m.ArmorClass,
		MaxHP:       m.MaxHP,
	}
}

type MonsterDetail struct {
	ID string `json:"id"`
	rimodel.AbilityScoreHealth
	rimodel.Money
	Name        string    `json:"name"`
	MonsterType *NameRef  `json:"monster_type"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Backstory   string    `json:"backstory"`
	Campaign    *NameRef  `json:"campaign"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewMonsterDetail(m *rimodel.Monster) MonsterDetail {
	return MonsterDetail{
		ID:                 m.ID,
		AbilityScoreHealth: m.AbilityScoreHealth,
		Money:              m.Money,
		Name:               m.String(),
		MonsterType:        monsterTypeRef(m.MonsterType),
		FirstName:          m.FirstName,
		LastName:           m.LastName,
		Backstory:          m.Backstory,
		Campaign:           campaignRef(m.Campaign),
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}
