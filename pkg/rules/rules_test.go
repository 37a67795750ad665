package rules

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRoller returns the queued values in order and fails once they run out.
type scriptedRoller struct {
	values []int
}

func (r *scriptedRoller) Roll(_ int) (int, error) {
	if len(r.values) == 0 {
		return 0, fmt.Errorf("no scripted rolls left")
	}

	v := r.values[0]
	r.values = r.values[1:]
	return v, nil
}

func (r *scriptedRoller) RollN(count, size int) ([]int, error) {
	rolls := make([]int, 0, count)
	for i := 0; i < count; i++ {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		rolls = append(rolls, v)
	}

	return rolls, nil
}

func TestAbilityModifier(t *testing.T) {
	tests := []struct {
		score    int
		modifier int
	}{
		{1, -5}, {2, -4}, {3, -4}, {4, -3}, {10, 0}, {11, 0},
		{15, 2}, {16, 3}, {17, 3}, {18, 4}, {20, 5}, {30, 10},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("score %d", test.score), func(t *testing.T) {
			assert.Equal(t, test.modifier, AbilityModifier(test.score))
		})
	}
}

func TestRescaleHP(t *testing.T) {
	tests := []struct {
		name                    string
		current, oldMax, newMax int
		expected                int
	}{
		{"full health grows", 10, 10, 20, 20},
		{"half health grows", 10, 20, 30, 15},
		{"rounds up", 15, 20, 35, 27},
		{"shrink rounds up", 7, 10, 5, 4},
		{"zero old max gives new max", 0, 0, 12, 12},
		{"negative new max clamps to zero", 5, 10, -3, 0},
		{"dead stays dead", 0, 10, 20, 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, RescaleHP(test.current, test.oldMax, test.newMax))
		})
	}
}

func TestRollDropLowest(t *testing.T) {
	r := &scriptedRoller{values: []int{4, 2, 3, 1}}
	result, err := Roll(r, RollRequest{Faces: 6, DiceCount: 4, DropLowest: 2, Modifier: 2})
	require.NoError(t, err)
	assert.Equal(t, []int{4, 2, 3, 1}, result.Rolled)
	assert.Equal(t, []int{3, 4}, result.Results)
	assert.Equal(t, 2, result.Modifier)
	assert.Equal(t, 9, result.Total)
}

func TestRollDropHighestAndLowest(t *testing.T) {
	r := &scriptedRoller{values: []int{4, 5, 2, 1, 1}}
	result, err := Roll(r, RollRequest{Faces: 6, DiceCount: 5, DropLowest: 1, DropHighest: 2, Modifier: 3})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, result.Results)
	assert.Equal(t, 6, result.Total)
}

func TestRollWithoutDropsKeepsRollOrder(t *testing.T) {
	r := &scriptedRoller{values: []int{5, 1, 3}}
	result, err := Roll(r, RollRequest{Faces: 6, DiceCount: 3})
	require.NoError(t, err)
	assert.Equal(t, []int{5, 1, 3}, result.Results)
	assert.Equal(t, 9, result.Total)
}

func TestRollRejectsBadRequests(t *testing.T) {
	tests := []struct {
		name string
		req  RollRequest
	}{
		{"no faces", RollRequest{Faces: 0, DiceCount: 1}},
		{"no dice", RollRequest{Faces: 6, DiceCount: 0}},
		{"too many dice", RollRequest{Faces: 6, DiceCount: MaxDiceCount + 1}},
		{"drop too many", RollRequest{Faces: 6, DiceCount: 2, DropHighest: 1, DropLowest: 2}},
		{"negative drop", RollRequest{Faces: 6, DiceCount: 2, DropLowest: -1}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Roll(&scriptedRoller{}, test.req)
			assert.Error(t, err)
		})
	}
}

func TestRollMultiple(t *testing.T) {
	r := &scriptedRoller{values: []int{3, 4, 7, 16}}
	result, err := RollMultiple(r, map[string]int{"6": 2, "12": 1, "20": 1}, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, result.Results["6"])
	assert.Equal(t, []int{7}, result.Results["12"])
	assert.Equal(t, []int{16}, result.Results["20"])
	assert.Equal(t, 32, result.Total)
}

func TestRollMultipleRejectsBadDie(t *testing.T) {
	_, err := RollMultiple(&scriptedRoller{}, map[string]int{"d6": 1}, 0)
	assert.Error(t, err)

	_, err = RollMultiple(&scriptedRoller{}, map[string]int{"6": 0}, 0)
	assert.Error(t, err)
}
