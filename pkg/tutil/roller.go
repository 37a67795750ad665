package tutil

import (
	"fmt"
	"sync"
)

// ScriptedRoller returns queued values in order and fails once they run out. It
// satisfies dice.Roller.
type ScriptedRoller struct {
	mu     sync.Mutex
	values []int
}

func NewScriptedRoller(values ...int) *ScriptedRoller {
	return &ScriptedRoller{values: values}
}

// Queue appends values to be returned by later rolls.
func (r *ScriptedRoller) Queue(values ...int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, values...)
}

func (r *ScriptedRoller) Roll(size int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.values) == 0 {
		return 0, fmt.Errorf("no scripted rolls left for d%d", size)
	}

	v := r.values[0]
	r.values = r.values[1:]
	return v, nil
}

func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
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
