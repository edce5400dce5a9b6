package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// Roller provides an interface for rolling dice
// This allows us to inject seeded or scripted implementations for replay and tests
type Roller interface {
	// Roll rolls a number of dice with the given sides and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)
}

// Chance rolls a percentage check; percent is clamped to [0,100].
// 0 never rolls and always fails, 100 never rolls and always succeeds.
func Chance(r Roller, percent float64) (bool, error) {
	if percent <= 0 {
		return false, nil
	}
	if percent >= 100 {
		return true, nil
	}

	result, err := r.Roll(1, PercentSides, 0)
	if err != nil {
		return false, err
	}
	return float64(result.Total) <= percent*PercentSides/100, nil
}

// Pick returns an index in [0, n)
func Pick(r Roller, n int) (int, error) {
	if n <= 1 {
		return 0, nil
	}

	result, err := r.Roll(1, n, 0)
	if err != nil {
		return 0, err
	}
	return result.Total - 1, nil
}
