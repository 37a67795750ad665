package webapi

import (
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

type MonsterController struct {
	monsterStor     stor.MonsterStor
	monsterTypeStor stor.CatalogStor[rimodel.MonsterType]
	roller          dice.Roller
	cfg             *listq.Config
}

type monsterFields struct {
	MonsterTypeID *string `json:"monster_type_id"`
	FirstName     *string `json:"first_name"`
	LastName      *string `json:"last_name"`
	Backstory     *string `json:"backstory"`
	CampaignID    *string `json:"campaign_id"`
	MaxHP         *int    `json:"max_hp"`
	CurrentHP     *int    `json:"current_hp"`
	TemporaryHP   *int    `json:"temporary_hp"`
	ArmorClass    *int    `json:"armor_class"`
	Strength      *int    `json:"strength"`
	Dexterity     *int    `json:"dexterity"`
	Constitution  *int    `json:"constitution"`
	Intelligence  *int    `json:"intelligence"`
	Wisdom        *int    `json:"wisdom"`
	Charisma      *int    `json:"charisma"`
	Copper        *int    `json:"copper"`
	Silver        *int    `json:"silver"`
	Electrum      *int    `json:"electrum"`
	Gold          *int    `json:"gold"`
	Platinum      *int    `json:"platinum"`
}

func NewMonsterController(monsterStor stor.MonsterStor, monsterTypeStor stor.CatalogStor[rimodel.MonsterType], roller dice.Roller, maxPageSize int) *MonsterController {
	return &MonsterController{
		monsterStor:     monsterStor,
		monsterTypeStor: monsterTypeStor,
		roller:          roller,
		cfg:             WithMaxPageSize(monsterListConfig(), maxPageSize),
	}
}

func (c *MonsterController) ListMonsters(ctx echo.Context) error {
	return listResponse(ctx, c.cfg, c.monsterStor.ListMonsters, shape.NewMonsterListEntry)
}

// CreateMonster creates a monster of a monster type. Scores and armor class that aren't
// given come from the type, max_hp is rolled from the type's hit dice and current_hp
// defaults to max_hp.
func (c *MonsterController) CreateMonster(ctx echo.Context) error {
	m, err := readBody(ctx)
	if err != nil {
		return err
	}

	var monster rimodel.Monster
	if err := patchBody[monsterFields](m, &monster); err != nil {
		return err
	}

	if monster.MonsterTypeID == "" {
		return rierr.FieldError("monster_type_id", "This field is required.")
	}

	monsterType, err := c.monsterTypeStor.GetByID(monster.MonsterTypeID)
	switch {
	case rierr.IsNotFound(err):
		return rierr.FieldError("monster_type_id", "Unknown monster type.")
	case err != nil:
		return err
	}

	if err := c.applyTypeDefaults(&monster, monsterType, m); err != nil {
		return err
	}

	created, err := c.monsterStor.CreateMonster(&monster)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, shape.NewMonsterDetail(created))
}

func (c *MonsterController) applyTypeDefaults(monster *rimodel.Monster, t *rimodel.MonsterType, given map[string]any) error {
	setDefault := func(key string, dst *int, v int) {
		if _, ok := given[key]; !ok {
			*dst = v
		}
	}

	score := func(v int) int { return rules.Clamp(v, 1, rimodel.MaxAbilityScore) }
	setDefault("strength", &monster.Strength, score(t.Strength))
	setDefault("dexterity", &monster.Dexterity, score(t.Dexterity))
	setDefault("constitution", &monster.Constitution, score(t.Constitution))
	setDefault("intelligence", &monster.Intelligence, score(t.Intelligence))
	setDefault("wisdom", &monster.Wisdom, score(t.Wisdom))
	setDefault("charisma", &monster.Charisma, score(t.Charisma))
	setDefault("armor_class", &monster.ArmorClass, t.ArmorClass)

	if _, ok := given["max_hp"]; !ok {
		roll, err := rules.Roll(c.roller, rules.RollRequest{
			Faces:     t.HitDie,
			DiceCount: t.HitDieCount,
			Modifier:  t.HitDieCount * rules.AbilityModifier(monster.Constitution),
		})
		if err != nil {
			return err
		}
		monster.MaxHP = max(roll.Total, 1)
	}

	setDefault("current_hp", &monster.CurrentHP, monster.MaxHP)

	return nil
}

func (c *MonsterController) GetMonster(ctx echo.Context) error {
	id, err := idParam(ctx, "id", "monster")
	if err != nil {
		return err
	}

	monster, err := c.monsterStor.GetMonsterByID(id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, shape.NewMonsterDetail(monster))
}

func (c *MonsterController) UpdateMonster(ctx echo.Context) error {
	id, err := idParam(ctx, "id", "monster")
	if err != nil {
		return err
	}

	m, err := readBody(ctx)
	if err != nil {
		return err
	}

	monster, err := c.monsterStor.ModifyMonster(id, func(monster *rimodel.Monster) error {
		return patchBody[monsterFields](m, monster)
	})
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, shape.NewMonsterDetail(monster))
}

func (c *MonsterController) DeleteMonster(ctx echo.Context) error {
	id, err := idParam(ctx, "id", "monster")
	if err != nil {
		return err
	}

	if err := c.monsterStor.DeleteMonster(id); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}
