// Package shape holds the response bodies of the API. List entries refer to related rows
// by NameRef only; detail views expand more.
package shape

import (
	"fmt"
	"math"

	"github.com/rollinitiative/rollinit/pkg/ridb/rimodel"
)

type NameRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Health is the hit point sub-resource of characters and monsters.
type Health struct {
	MaxHP       int `json:"max_hp"`
	CurrentHP   int `json:"current_hp"`
	TemporaryHP int `json:"temporary_hp"`
}

func NewHealth(h *rimodel.AbilityScoreHealth) Health {
	return Health{MaxHP: h.MaxHP, CurrentHP: h.CurrentHP, TemporaryHP: h.TemporaryHP}
}

// Identity is used for catalogs that are returned as stored.
func Identity[M any](m *M) *M {
	return m
}

func raceRef(r *rimodel.CharacterRace) *NameRef {
	if r == nil {
		return nil
	}

	return &NameRef{ID: r.ID, Name: r.Name}
}

func classRef(c *rimodel.CharacterClass) *NameRef {
	if c == nil {
		return nil
	}

	return &NameRef{ID: c.ID, Name: c.Name}
}

func campaignRef(c *rimodel.Campaign) *NameRef {
	if c == nil {
		return nil
	}

	return &NameRef{ID: c.ID, Name: c.Name}
}

func monsterTypeRef(t *rimodel.MonsterType) *NameRef {
	if t == nil {
		return nil
	}

	return &NameRef{ID: t.ID, Name: t.Name}
}

// hundredths is a weight rounded to two decimals. Totals add these, not the raw weights,
// so a total always equals the sum of the weights shown next to it.
type hundredths int64

func toHundredths(w float64) hundredths {
	return hundredths(math.Round(w * 100))
}

func (h hundredths) String() string {
	return fmt.Sprintf("%d.%02d", h/100, h%100)
}
