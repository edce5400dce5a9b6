package battle

import (
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/domain/combatant"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/events"
)

// DefaultEnergyRegen is the energy gained at each turn start
const DefaultEnergyRegen = 25

// TurnConfig holds turn lifecycle settings
type TurnConfig struct {
	// EnergyRegen is nil for DefaultEnergyRegen; zero turns regeneration off
	EnergyRegen *int
	Emitter     events.Emitter
}

// TurnController does per-combatant turn-boundary bookkeeping
type TurnController struct {
	regen   int
	emitter events.Emitter
}

// NewTurnController creates a controller; negative regen is treated as zero
func NewTurnController(cfg *TurnConfig) *TurnController {
	t := &TurnController{regen: DefaultEnergyRegen}
	if cfg != nil {
		if cfg.EnergyRegen != nil {
			t.regen = max(*cfg.EnergyRegen, 0)
		}
		t.emitter = cfg.Emitter
	}
	return t
}

// EnergyRegen returns the configured regeneration
func (t *TurnController) EnergyRegen() int {
	return t.regen
}

// OnTurnStart resets has-acted, regenerates energy, ticks cooldowns, then
// ticks effects. Effects tick last so periodic damage can kill before the
// combatant acts. Dead combatants are skipped.
func (t *TurnController) OnTurnStart(c *combatant.Combatant) {
	if c == nil || !c.IsAlive() {
		return
	}

	c.ResetTurn()
	c.AdjustEnergy(t.regen)
	c.TickCooldowns()
	c.Ledger().Tick()

	events.Publish(t.emitter, &events.TurnStartedEvent{
		BaseEvent:   events.BaseEvent{Type: events.EventTypeTurnStarted},
		CombatantID: c.ID(),
		Energy:      c.Energy(),
		Alive:       c.IsAlive(),
	})
}

// OnBattleEnd clears effects and cooldowns without reversing modifiers
func (t *TurnController) OnBattleEnd(c *combatant.Combatant) {
	if c == nil {
		return
	}
	c.EndBattle()
}
