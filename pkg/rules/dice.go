package rules

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/pkg/errors"

	"github.com/rollinitiative/rollinit/pkg/rierr"
)

const (
	MaxDiceCount = 100
	MaxDieFaces  = 1000
)

// DefaultRoller is the roller used when the caller doesn't supply one.
var DefaultRoller dice.Roller = dice.DefaultRoller

type RollResult struct {
	Rolled   []int `json:"rolled"`
	Results  []int `json:"results"`
	Modifier int   `json:"modifier"`
	Total    int   `json:"total"`
}

type RollRequest struct {
	Faces       int `json:"faces"`
	DiceCount   int `json:"dice_count"`
	Modifier    int `json:"modifier"`
	DropHighest int `json:"drop_highest"`
	DropLowest  int `json:"drop_lowest"`
}

// Roll rolls DiceCount dice with Faces sides. When any dice are dropped the kept results
// are the sorted rolls with DropLowest removed from the bottom and DropHighest from the top.
func Roll(r dice.Roller, req RollRequest) (*RollResult, error) {
	if req.Faces < 1 || req.Faces > MaxDieFaces {
		return nil, rierr.FieldError("faces", fmt.Sprintf("Ensure this value is between 1 and %d.", MaxDieFaces))
	}

	if req.DiceCount < 1 || req.DiceCount > MaxDiceCount {
		return nil, rierr.FieldError("dice_count", fmt.Sprintf("Ensure this value is between 1 and %d.", MaxDiceCount))
	}

	if req.DropHighest < 0 || req.DropLowest < 0 || req.DropHighest+req.DropLowest > req.DiceCount {
		return nil, rierr.FieldError("non_field_errors", "Cannot drop more dice than are rolled.")
	}

	rolled, err := r.RollN(req.DiceCount, req.Faces)
	if err != nil {
		return nil, errors.Wrapf(err, "rolling %dd%d", req.DiceCount, req.Faces)
	}

	results := rolled
	if req.DropHighest > 0 || req.DropLowest > 0 {
		sorted := append([]int(nil), rolled...)
		sort.Ints(sorted)
		results = sorted[req.DropLowest : len(sorted)-req.DropHighest]
	}

	return &RollResult{
		Rolled:   rolled,
		Results:  results,
		Modifier: req.Modifier,
		Total:    sum(results) + req.Modifier,
	}, nil
}

type MultiRollResult struct {
	Results  map[string][]int `json:"results"`
	Modifier int              `json:"modifier"`
	Total    int              `json:"total"`
}

// RollMultiple rolls a set of dice given as faces -> count, for example {"6": 2, "20": 1}.
// Dice are rolled in ascending order of faces so results are reproducible with a scripted
// roller.
func RollMultiple(r dice.Roller, diceByFaces map[string]int, modifier int) (*MultiRollResult, error) {
	type group struct {
		faces int
		count int
		key   string
	}

	var groups []group
	for key, count := range diceByFaces {
		faces, err := strconv.Atoi(key)
		if err != nil || faces < 1 || faces > MaxDieFaces {
			return nil, rierr.FieldError("dice", fmt.Sprintf("%q is not a valid die.", key))
		}

		if count < 1 || count > MaxDiceCount {
			return nil, rierr.FieldError("dice", fmt.Sprintf("Dice count for d%d must be between 1 and %d.", faces, MaxDiceCount))
		}

		groups = append(groups, group{faces: faces, count: count, key: key})
	}

	sort.Slice(groups, func(i, j int) bool { return groups[i].faces < groups[j].faces })

	result := &MultiRollResult{Results: make(map[string][]int, len(groups)), Modifier: modifier, Total: modifier}
	for _, g := range groups {
		rolls, err := r.RollN(g.count, g.faces)
		if err != nil {
			return nil, errors.Wrapf(err, "rolling %dd%d", g.count, g.faces)
		}

		result.Results[g.key] = rolls
		result.Total += sum(rolls)
	}

	return result, nil
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}

	return total
}
