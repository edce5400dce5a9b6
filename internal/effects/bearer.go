package effects

import (
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/domain/element"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/domain/stats"
)

//go:generate mockgen -destination=mock/mock_bearer.go -package=mockeffects -source=bearer.go

// Bearer is the combatant state a ledger mutates
type Bearer interface {
	ID() string
	Element() element.Element
	// BaseStats is the unscaled definition base that percentage modifiers resolve against
	BaseStats() stats.Block
	MaxHP() int
	IsAlive() bool

	// ApplyStandingDelta adds a reversible delta to current non-HP stats
	ApplyStandingDelta(delta stats.Block)
	// Heal restores HP clamped to max and returns the amount restored
	Heal(amount int) int
	// Drain removes HP without triggering on-damage cleanses and returns the amount removed.
	// Reaching zero HP kills the bearer.
	Drain(amount int) int
	// AdjustEnergy adds delta to current energy, clamped to [0, max]
	AdjustEnergy(delta int)
}
