package stats

import (
	"fmt"
	"math"
)

// Type identifies a single stat on a StatBlock
type Type string

const (
	HP         Type = "hp"
	Attack     Type = "attack"
	Defense    Type = "defense"
	Speed      Type = "speed"
	Energy     Type = "energy"
	CritRate   Type = "crit_rate"
	CritDamage Type = "crit_damage"
	Accuracy   Type = "accuracy"
	Resistance Type = "resistance"
)

// All lists every stat type in display order
var All = []Type{HP, Attack, Defense, Speed, Energy, CritRate, CritDamage, Accuracy, Resistance}

// IsValid reports whether t is a known stat type
func (t Type) IsValid() bool {
	for _, known := range All {
		if t == known {
			return true
		}
	}
	return false
}

// LevelScaled reports whether the stat grows with combatant level.
// Only HP/ATK/DEF/SPD scale; the rest come from base and equipment.
func (t Type) LevelScaled() bool {
	switch t {
	case HP, Attack, Defense, Speed:
		return true
	default:
		return false
	}
}

// Block is a plain numeric stat record.
// Crit rate, crit damage, accuracy and resistance are percentage points.
type Block struct {
	HP         int `json:"hp" yaml:"hp"`
	Attack     int `json:"attack" yaml:"attack"`
	Defense    int `json:"defense" yaml:"defense"`
	Speed      int `json:"speed" yaml:"speed"`
	Energy     int `json:"energy" yaml:"energy"`
	CritRate   int `json:"crit_rate" yaml:"crit_rate"`
	CritDamage int `json:"crit_damage" yaml:"crit_damage"`
	Accuracy   int `json:"accuracy" yaml:"accuracy"`
	Resistance int `json:"resistance" yaml:"resistance"`
}

// Get returns the value of a single stat
func (b Block) Get(t Type) int {
	switch t {
	case HP:
		return b.HP
	case Attack:
		return b.Attack
	case Defense:
		return b.Defense
	case Speed:
		return b.Speed
	case Energy:
		return b.Energy
	case CritRate:
		return b.CritRate
	case CritDamage:
		return b.CritDamage
	case Accuracy:
		return b.Accuracy
	case Resistance:
		return b.Resistance
	}
	return 0
}

// Set assigns a single stat and returns the updated block
func (b Block) Set(t Type, value int) Block {
	switch t {
	case HP:
		b.HP = value
	case Attack:
		b.Attack = value
	case Defense:
		b.Defense = value
	case Speed:
		b.Speed = value
	case Energy:
		b.Energy = value
	case CritRate:
		b.CritRate = value
	case CritDamage:
		b.CritDamage = value
	case Accuracy:
		b.Accuracy = value
	case Resistance:
		b.Resistance = value
	}
	return b
}

// With adds delta to a single stat
func (b Block) With(t Type, delta int) Block {
	return b.Set(t, b.Get(t)+delta)
}

// Add returns the field-wise sum of two blocks
func (b Block) Add(other Block) Block {
	for _, t := range All {
		b = b.With(t, other.Get(t))
	}
	return b
}

// Sub returns the field-wise difference b - other
func (b Block) Sub(other Block) Block {
	for _, t := range All {
		b = b.With(t, -other.Get(t))
	}
	return b
}

// IsZero reports whether every stat is zero
func (b Block) IsZero() bool {
	return b == Block{}
}

func (b Block) String() string {
	return fmt.Sprintf("HP:%d ATK:%d DEF:%d SPD:%d EN:%d CR:%d CD:%d ACC:%d RES:%d",
		b.HP, b.Attack, b.Defense, b.Speed, b.Energy, b.CritRate, b.CritDamage, b.Accuracy, b.Resistance)
}

// Value is a stat bonus that is either flat or a percentage of a base stat
type Value struct {
	Type       Type    `json:"type" yaml:"type"`
	Amount     float64 `json:"amount" yaml:"amount"`
	Percentage bool    `json:"percentage" yaml:"percentage"`
}

// Contribution resolves the bonus against a base block.
// Percentages are taken from the base value of the same stat.
func (v Value) Contribution(base Block) int {
	if v.Percentage {
		return Round(float64(base.Get(v.Type)) * v.Amount / 100)
	}
	return Round(v.Amount)
}

// Scaled returns a copy with the amount multiplied by factor
func (v Value) Scaled(factor float64) Value {
	v.Amount *= factor
	return v
}

// Round rounds half away from zero
func Round(f float64) int {
	return int(math.Round(f))
}
