package events

import (
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/domain/stats"
)

// StatsChangedEvent fires after any effective-stat recompute or standing modifier change
type StatsChangedEvent struct {
	BaseEvent
	CombatantID string
	Current     stats.Block
	HP          int
	MaxHP       int
	Energy      int
	MaxEnergy   int
}

// EffectAddedEvent fires after a successful ledger add
type EffectAddedEvent struct {
	BaseEvent
	CombatantID string
	EffectKey   string
	InstanceID  string
	Stacks      int
	Remaining   int
	Refreshed   bool
}

// EffectRemovedEvent fires when instances leave the ledger
type EffectRemovedEvent struct {
	BaseEvent
	CombatantID string
	EffectKey   string
	Count       int
	Expired     bool
}

// EffectResistedEvent fires when a combatant's element is immune to an effect
type EffectResistedEvent struct {
	BaseEvent
	CombatantID string
	EffectKey   string
	Element     string
}

// HitResolvedEvent carries one damage or heal number
type HitResolvedEvent struct {
	BaseEvent
	SourceID   string
	TargetID   string
	AbilityKey string
	HitIndex   int
	Amount     int
	Heal       bool
	Critical   bool
	Elemental  float64
	// Periodic is set for DOT/HOT ticks
	Periodic bool
}

// DeathEvent fires when HP reaches zero
type DeathEvent struct {
	BaseEvent
	CombatantID string
}

// TurnStartedEvent fires after turn-start bookkeeping
type TurnStartedEvent struct {
	BaseEvent
	CombatantID string
	Energy      int
	Alive       bool
}

// ActionResolvedEvent summarizes a committed ability use
type ActionResolvedEvent struct {
	BaseEvent
	SourceID     string
	AbilityKey   string
	TargetIDs    []string
	TotalDamage  int
	TotalHealing int
	Rejected     string
}

func NewStatsChanged(id string, current stats.Block, hp, maxHP, energy, maxEnergy int) *StatsChangedEvent {
	return &StatsChangedEvent{
		BaseEvent:   BaseEvent{Type: EventTypeStatsChanged},
		CombatantID: id,
		Current:     current,
		HP:          hp,
		MaxHP:       maxHP,
		Energy:      energy,
		MaxEnergy:   maxEnergy,
	}
}

func NewDeath(id string) *DeathEvent {
	return &DeathEvent{BaseEvent: BaseEvent{Type: EventTypeDeath}, CombatantID: id}
}
