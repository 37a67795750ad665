package webapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rollinitiative/rollinit/pkg/riapid/shape"
	"github.com/rollinitiative/rollinit/pkg/ridb/rimodel"
	"github.com/rollinitiative/rollinit/pkg/ridb/stor"
	"github.com/rollinitiative/rollinit/pkg/rierr"
)

// HealthController serves the hit point sub-resource of characters and monsters. GET
// returns the hit points, PUT replaces them, PATCH sets the given fields and POST adjusts
// them by the given amounts.
type HealthController struct {
	what   string
	get    func(id string) (*rimodel.AbilityScoreHealth, error)
	modify func(id string, fn func(h *rimodel.AbilityScoreHealth) error) (*rimodel.AbilityScoreHealth, error)
}

func NewCharacterHealthController(characterStor stor.CharacterStor) *HealthController {
	return &HealthController{
		what: "character",
		get: func(id string) (*rimodel.AbilityScoreHealth, error) {
			character, err := characterStor.GetCharacterByID(id)
			if err != nil {
				return nil, err
			}
			return &character.AbilityScoreHealth, nil
		},
		modify: func(id string, fn func(h *rimodel.AbilityScoreHealth) error) (*rimodel.AbilityScoreHealth, error) {
			character, err := characterStor.ModifyCharacter(id, func(character *rimodel.Character) error {
				return fn(&character.AbilityScoreHealth)
			})
			if err != nil {
				return nil, err
			}
			return &character.AbilityScoreHealth, nil
		},
	}
}

func NewMonsterHealthController(monsterStor stor.MonsterStor) *HealthController {
	return &HealthController{
		what: "monster",
		get: func(id string) (*rimodel.AbilityScoreHealth, error) {
			monster, err := monsterStor.GetMonsterByID(id)
			if err != nil {
				return nil, err
			}
			return &monster.AbilityScoreHealth, nil
		},
		modify: func(id string, fn func(h *rimodel.AbilityScoreHealth) error) (*rimodel.AbilityScoreHealth, error) {
			monster, err := monsterStor.ModifyMonster(id, func(monster *rimodel.Monster) error {
				return fn(&monster.AbilityScoreHealth)
			})
			if err != nil {
				return nil, err
			}
			return &monster.AbilityScoreHealth, nil
		},
	}
}

type healthFields struct {
	MaxHP       *int `json:"max_hp"`
	CurrentHP   *int `json:"current_hp"`
	TemporaryHP *int `json:"temporary_hp"`
}

// healthAdjustment holds deltas. current_hp heals (or with a negative value damages),
// max_hp grows maximum hit points and rescales current ones.
type healthAdjustment struct {
	CurrentHP              int  `json:"current_hp"`
	MaxHP                  int  `json:"max_hp"`
	AddConstitutionToMaxHP bool `json:"add_constitution_to_max_hp"`
	TemporaryHP            int  `json:"temporary_hp"`
}

func (c *HealthController) GetHealth(ctx echo.Context) error {
	id, err := idParam(ctx, "id", c.what)
	if err != nil {
		return err
	}

	h, err := c.get(id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, shape.NewHealth(h))
}

func (c *HealthController) ReplaceHealth(ctx echo.Context) error {
	id, err := idParam(ctx, "id", c.what)
	if err != nil {
		return err
	}

	req, err := decodeBody[healthFields](ctx)
	if err != nil {
		return err
	}

	var vb rierr.ValidationBuilder
	if req.MaxHP == nil {
		vb.Field("max_hp", "This field is required.")
	}
	if req.CurrentHP == nil {
		vb.Field("current_hp", "This field is required.")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	h, err := c.modify(id, func(h *rimodel.AbilityScoreHealth) error {
		h.MaxHP, h.CurrentHP, h.TemporaryHP = *req.MaxHP, *req.CurrentHP, 0
		if req.TemporaryHP != nil {
			h.TemporaryHP = *req.TemporaryHP
		}
		return nil
	})
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, shape.NewHealth(h))
}

func (c *HealthController) UpdateHealth(ctx echo.Context) error {
	id, err := idParam(ctx, "id", c.what)
	if err != nil {
		return err
	}

	m, err := readBody(ctx)
	if err != nil {
		return err
	}

	h, err := c.modify(id, func(h *rimodel.AbilityScoreHealth) error {
		return patchBody[healthFields](m, h)
	})
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, shape.NewHealth(h))
}

func (c *HealthController) AdjustHealth(ctx echo.Context) error {
	id, err := idParam(ctx, "id", c.what)
	if err != nil {
		return err
	}

	req, err := decodeBody[healthAdjustment](ctx)
	if err != nil {
		return err
	}

	h, err := c.modify(id, func(h *rimodel.AbilityScoreHealth) error {
		if req.CurrentHP != 0 {
			h.Heal(req.CurrentHP)
		}

		if req.MaxHP != 0 || req.AddConstitutionToMaxHP {
			h.IncreaseMaxHP(req.MaxHP, req.AddConstitutionToMaxHP)
		}

		if req.TemporaryHP != 0 {
			h.AdjustTemporaryHP(req.TemporaryHP)
		}

		return nil
	})
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, shape.NewHealth(h))
}
