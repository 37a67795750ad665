package webapi

import (
	"errors"
	"net/http"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/labstack/echo/v4"

	"github.com/rollinitiative/rollinit/pkg/listq"
	"github.com/rollinitiative/rollinit/pkg/riapid/shape"
	"github.com/rollinitiative/rollinit/pkg/ridb/rimodel"
	"github.com/rollinitiative/rollinit/pkg/ridb/stor"
	"github.com/rollinitiative/rollinit/pkg/rierr"
	"github.com/rollinitiative/rollinit/pkg/rules"
)

type CharacterController struct {
	characterStor stor.CharacterStor
	roller        dice.Roller
	cfg           *listq.Config
}

// characterFields are the fields a client may set on create and update.
type characterFields struct {
	Title            *string   `json:"title"`
	FirstName        *string   `json:"first_name"`
	LastName         *string   `json:"last_name"`
	Age              *int      `json:"age"`
	RaceID           *string   `json:"race_id"`
	CharacterClassID *string   `json:"character_class_id"`
	Level            *int      `json:"level"`
	ExperiencePoints *int      `json:"experience_points"`
	Languages        *[]string `json:"languages"`
	Backstory        *string   `json:"backstory"`
	CampaignID       *string   `json:"campaign_id"`
	MaxHP            *int      `json:"max_hp"`
	CurrentHP        *int      `json:"current_hp"`
	TemporaryHP      *int      `json:"temporary_hp"`
	ArmorClass       *int      `json:"armor_class"`
	Strength         *int      `json:"strength"`
	Dexterity        *int      `json:"dexterity"`
	Constitution     *int      `json:"constitution"`
	Intelligence     *int      `json:"intelligence"`
	Wisdom           *int      `json:"wisdom"`
	Charisma         *int      `json:"charisma"`
	Copper           *int      `json:"copper"`
	Silver           *int      `json:"silver"`
	Electrum         *int      `json:"electrum"`
	Gold             *int      `json:"gold"`
	Platinum         *int      `json:"platinum"`
}

func NewCharacterController(characterStor stor.CharacterStor, roller dice.Roller, maxPageSize int) *CharacterController {
	return &CharacterController{
		characterStor: characterStor,
		roller:        roller,
		cfg:           WithMaxPageSize(characterListConfig(), maxPageSize),
	}
}

func (c *CharacterController) ListCharacters(ctx echo.Context) error {
	return listResponse(ctx, c.cfg, c.characterStor.ListCharacters, shape.NewCharacterListEntry)
}

// characterRequiredKeys must be present in a create body.
var characterRequiredKeys = []string{"age", "armor_class", "max_hp"}

// CreateCharacter creates a character at level 1. Current hit points default to the
// maximum.
func (c *CharacterController) CreateCharacter(ctx echo.Context) error {
	m, err := readBody(ctx)
	if err != nil {
		return err
	}

	character := rimodel.Character{Level: 1}
	if err := patchBody[characterFields](m, &character); err != nil {
		return err
	}

	if _, ok := m["current_hp"]; !ok {
		character.CurrentHP = character.MaxHP
	}

	if err := requireCreateFields(m, &character); err != nil {
		return err
	}

	created, err := c.characterStor.CreateCharacter(&character)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, shape.NewCharacterDetail(created))
}

func (c *CharacterController) GetCharacter(ctx echo.Context) error {
	id, err := idParam(ctx, "id", "character")
	if err != nil {
		return err
	}

	character, err := c.characterStor.GetCharacterByID(id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, shape.NewCharacterDetail(character))
}

func (c *CharacterController) UpdateCharacter(ctx echo.Context) error {
	id, err := idParam(ctx, "id", "character")
	if err != nil {
		return err
	}

	m, err := readBody(ctx)
	if err != nil {
		return err
	}

	character, err := c.characterStor.ModifyCharacter(id, func(character *rimodel.Character) error {
		return patchBody[characterFields](m, character)
	})
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, shape.NewCharacterDetail(character))
}

func (c *CharacterController) DeleteCharacter(ctx echo.Context) error {
	id, err := idParam(ctx, "id", "character")
	if err != nil {
		return err
	}

	if err := c.characterStor.DeleteCharacter(id); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// LevelUp raises the character one level. Maximum hit points grow by max_hp_increase, or
// by a roll of the class hit die when it isn't given, plus the constitution modifier.
func (c *CharacterController) LevelUp(ctx echo.Context) error {
	id, err := idParam(ctx, "id", "character")
	if err != nil {
		return err
	}

	req, err := decodeBody[struct {
		MaxHPIncrease *int `json:"max_hp_increase"`
	}](ctx)
	if err != nil {
		return err
	}

	character, err := c.characterStor.ModifyCharacter(id, func(character *rimodel.Character) error {
		increase := 0
		switch {
		case req.MaxHPIncrease != nil:
			increase = *req.MaxHPIncrease
		case character.CharacterClass != nil:
			roll, err := rules.Roll(c.roller, rules.RollRequest{Faces: character.CharacterClass.HitDie, DiceCount: 1})
			if err != nil {
				return err
			}
			increase = roll.Total
		}

		character.LevelUp(increase)
		return nil
	})
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, shape.NewCharacterDetail(character))
}

// requireCreateFields reports the required keys missing from m together with whatever else
// is wrong with the character, so a single response names every bad field.
func requireCreateFields(m map[string]any, character *rimodel.Character) error {
	var vb rierr.ValidationBuilder
	for _, key := range characterRequiredKeys {
		if v, ok := m[key]; !ok || v == nil {
			vb.Field(key, "This field is required.")
		}
	}

	if !vb.HasErrors() {
		return nil
	}

	var rerr *rierr.Error
	if errors.As(character.Validate(), &rerr) {
		for field, msgs := range rerr.Fields {
			for _, msg := range msgs {
				vb.Field(field, msg)
			}
		}
	}

	return vb.Build()
}
