// Package rules holds the derived numeric helpers: ability modifiers, dice rolls and
// proportional hit point rescaling.
package rules

// AbilityModifier returns floor(score/2) - 5.
func AbilityModifier(score int) int {
	q := score / 2
	if score < 0 && score%2 != 0 {
		q--
	}

	return q - 5
}

// RescaleHP scales current hit points proportionally to a change of maximum hit points,
// rounding up, and clamps the result to [0, newMax]. When the old maximum is not positive
// the character is considered at full health and newMax is returned.
func RescaleHP(current, oldMax, newMax int) int {
	if newMax < 0 {
		newMax = 0
	}

	if oldMax <= 0 {
		return newMax
	}

	if current < 0 {
		current = 0
	}

	rescaled := (current*newMax + oldMax - 1) / oldMax

	return Clamp(rescaled, 0, newMax)
}

func Clamp(v, lo, hi int) int {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}
