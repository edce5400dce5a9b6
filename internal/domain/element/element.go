package element

// Element is the elemental affinity of a combatant
type Element string

const (
	Neutral Element = "neutral"
	Fire    Element = "fire"
	Water   Element = "water"
	Earth   Element = "earth"
	Light   Element = "light"
	Dark    Element = "dark"
)

const (
	AdvantageMultiplier    = 1.2
	DisadvantageMultiplier = 0.8
	NeutralMultiplier      = 1.0
)

// counters maps an attacker element to the element it beats.
// Fire -> Earth -> Water -> Fire, with Light and Dark countering each other.
var counters = map[Element]Element{
	Fire:  Earth,
	Earth: Water,
	Water: Fire,
	Light: Dark,
	Dark:  Light,
}

// IsValid reports whether e is a known element
func (e Element) IsValid() bool {
	switch e {
	case Neutral, Fire, Water, Earth, Light, Dark:
		return true
	}
	return false
}

// Counters reports whether attacker has the upper hand over defender
func Counters(attacker, defender Element) bool {
	beaten, ok := counters[attacker]
	return ok && beaten == defender
}

// Advantage returns the damage multiplier for attacker hitting defender
func Advantage(attacker, defender Element) float64 {
	if Counters(attacker, defender) {
		return AdvantageMultiplier
	}
	if Counters(defender, attacker) {
		return DisadvantageMultiplier
	}
	return NeutralMultiplier
}
