package dice

import (
	"errors"
	"fmt"
	"strings"
)

// PercentSides is the die used for percentage checks: 1-10000 gives two decimal places
const PercentSides = 10000

var (
	ErrInvalidCount = errors.New("invalid dice count")
	ErrInvalidSides = errors.New("invalid dice size")
)

// RollResult contains the detailed result of a roll
type RollResult struct {
	Total    int
	Rolls    []int
	Bonus    int
	Count    int
	Sides    int
	RawTotal int
}

func (r *RollResult) String() string {
	compact := strings.ReplaceAll(fmt.Sprintf("%v", r.Rolls), " ", "")
	return fmt.Sprintf("%dd%d+%d = %d %s", r.Count, r.Sides, r.Bonus, r.Total, compact)
}

func validate(count, sides int) error {
	if count < 1 {
		return ErrInvalidCount
	}
	if sides < 1 {
		return ErrInvalidSides
	}
	return nil
}
