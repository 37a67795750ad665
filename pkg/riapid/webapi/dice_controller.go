package webapi

import (
	"net/http"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/labstack/echo/v4"

	"github.com/rollinitiative/rollinit/pkg/rules"
)

type DiceController struct {
	roller dice.Roller
}

func NewDiceController(roller dice.Roller) *DiceController {
	return &DiceController{roller: roller}
}

func (c *DiceController) Roll(ctx echo.Context) error {
	req, err := decodeBody[rules.RollRequest](ctx)
	if err != nil {
		return err
	}

	// A single die unless told otherwise.
	if req.DiceCount == 0 {
		req.DiceCount = 1
	}

	result, err := rules.Roll(c.roller, req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, result)
}

// RollMultiple rolls several kinds of dice at once: {"dice": {"6": 2, "20": 1}, "modifier": 3}.
func (c *DiceController) RollMultiple(ctx echo.Context) error {
	req, err := decodeBody[struct {
		Dice     map[string]int `json:"dice"`
		Modifier int            `json:"modifier"`
	}](ctx)
	if err != nil {
		return err
	}

	result, err := rules.RollMultiple(c.roller, req.Dice, req.Modifier)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, result)
}
