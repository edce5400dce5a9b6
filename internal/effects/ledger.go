package effects

import (
	"log"

	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/domain/stats"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/events"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/uuid"
)

// LedgerConfig holds optional ledger collaborators
type LedgerConfig struct {
	Emitter events.Emitter
	IDs     uuid.Generator
}

// Ledger is the ordered set of effect instances on one combatant.
// It is not safe for concurrent use; callers serialize per battle.
type Ledger struct {
	bearer    Bearer
	emitter   events.Emitter
	ids       uuid.Generator
	instances []*Instance
}

// NewLedger creates a ledger for bearer
func NewLedger(bearer Bearer, cfg *LedgerConfig) *Ledger {
	if bearer == nil {
		panic("bearer is required")
	}

	l := &Ledger{bearer: bearer}
	if cfg != nil {
		l.emitter = cfg.Emitter
		l.ids = cfg.IDs
	}
	if l.ids == nil {
		l.ids = uuid.NewGoogleUUIDGenerator()
	}
	return l
}

// Add applies one instance of def
func (l *Ledger) Add(def *Definition) AddOutcome {
	id := l.bearer.ID()
	if def == nil {
		log.Printf("[LEDGER] %s: missing effect definition, skipping", id)
		return OutcomeSkipped
	}
	if !l.bearer.IsAlive() {
		log.Printf("[LEDGER] %s: not alive, skipping %s", id, def.Key)
		return OutcomeSkipped
	}

	if el := l.bearer.Element(); def.ResistedBy(el) {
		log.Printf("[LEDGER] %s: %s element resists %s", id, el, def.Key)
		events.Publish(l.emitter, &events.EffectResistedEvent{
			BaseEvent:   events.BaseEvent{Type: events.EventTypeEffectResisted},
			CombatantID: id,
			EffectKey:   def.Key,
			Element:     string(el),
		})
		return OutcomeResisted
	}

	outcome := OutcomeApplied
	if active := l.Stacks(def.Key); active > 0 {
		if !def.Stackable {
			l.remove(func(i *Instance) bool { return i.Definition.Key == def.Key }, false)
			outcome = OutcomeRefreshed
		} else if active >= def.StackLimit() {
			log.Printf("[LEDGER] %s: %s already at %d stacks", id, def.Key, active)
			return OutcomeMaxStacks
		}
	}

	inst := &Instance{
		ID:         l.ids.New(),
		Definition: def,
		Remaining:  def.InitialTurns(),
	}
	l.instances = append(l.instances, inst)

	events.Publish(l.emitter, &events.EffectAddedEvent{
		BaseEvent:   events.BaseEvent{Type: events.EventTypeEffectAdded},
		CombatantID: id,
		EffectKey:   def.Key,
		InstanceID:  inst.ID,
		Stacks:      l.Stacks(def.Key),
		Remaining:   inst.Remaining,
		Refreshed:   outcome == OutcomeRefreshed,
	})

	l.apply(inst)
	return outcome
}

// apply adds standing deltas first, then one-shot HP/Energy changes, since HP may kill
func (l *Ledger) apply(inst *Instance) {
	base := l.bearer.BaseStats()

	var standing stats.Block
	var hp, energy int
	for _, m := range inst.Definition.Modifiers {
		amount := m.Contribution(base)
		switch m.Type {
		case stats.HP:
			hp += amount
		case stats.Energy:
			energy += amount
		default:
			standing = standing.With(m.Type, amount)
		}
	}

	inst.Applied = standing
	if !standing.IsZero() {
		l.bearer.ApplyStandingDelta(standing)
	}
	if energy != 0 {
		l.bearer.AdjustEnergy(energy)
	}
	switch {
	case hp > 0:
		l.bearer.Heal(hp)
	case hp < 0:
		l.bearer.Drain(-hp)
	}
}

// Remove drops every instance of key, reversing standing modifiers.
// Returns the number removed; unknown keys are a no-op.
func (l *Ledger) Remove(key string) int {
	return l.remove(func(i *Instance) bool { return i.Definition.Key == key }, false)
}

// Cleanse removes every instance of the given classification
func (l *Ledger) Cleanse(c Classification) int {
	return l.remove(func(i *Instance) bool { return i.Definition.Classification == c }, false)
}

// OnDamageTaken removes effects that break on hit
func (l *Ledger) OnDamageTaken() int {
	return l.remove(func(i *Instance) bool { return i.Definition.ClearsOnDamage }, false)
}

// OnOwnAction removes effects that end when the bearer acts
func (l *Ledger) OnOwnAction() int {
	return l.remove(func(i *Instance) bool { return i.Definition.ClearsOnAction }, false)
}

func (l *Ledger) remove(match func(*Instance) bool, expired bool) int {
	var kept []*Instance
	var order []string
	counts := make(map[string]int)

	for _, inst := range l.instances {
		if !match(inst) {
			kept = append(kept, inst)
			continue
		}
		key := inst.Definition.Key
		if counts[key] == 0 {
			order = append(order, key)
		}
		counts[key]++
	}
	if len(order) == 0 {
		return 0
	}

	var reversal stats.Block
	for _, inst := range l.instances {
		if match(inst) {
			reversal = reversal.Sub(inst.Applied)
		}
	}
	l.instances = kept
	if !reversal.IsZero() {
		l.bearer.ApplyStandingDelta(reversal)
	}

	removed := 0
	for _, key := range order {
		removed += counts[key]
		events.Publish(l.emitter, &events.EffectRemovedEvent{
			BaseEvent:   events.BaseEvent{Type: events.EventTypeEffectRemoved},
			CombatantID: l.bearer.ID(),
			EffectKey:   key,
			Count:       counts[key],
			Expired:     expired,
		})
	}
	return removed
}

// Tick runs once at the bearer's turn start: periodic damage and healing
// against max HP, then duration countdown. An instance running out removes
// every instance of its effect, as Remove does. A periodic kill ends the tick,
// since death clears the ledger.
func (l *Ledger) Tick() {
	if !l.bearer.IsAlive() {
		return
	}

	id := l.bearer.ID()
	snapshot := make([]*Instance, len(l.instances))
	copy(snapshot, l.instances)
	expired := make(map[string]bool)

	for _, inst := range snapshot {
		def := inst.Definition

		if dmg := def.DamagePerTurn.Amount(l.bearer.MaxHP()); dmg > 0 {
			dealt := l.bearer.Drain(dmg)
			l.publishPeriodic(def.Key, dealt, false)
			if !l.bearer.IsAlive() {
				log.Printf("[LEDGER] %s: killed by %s", id, def.Key)
				return
			}
		}
		if heal := def.HealPerTurn.Amount(l.bearer.MaxHP()); heal > 0 {
			healed := l.bearer.Heal(heal)
			l.publishPeriodic(def.Key, healed, true)
		}

		if inst.IsPermanent() {
			continue
		}
		if inst.Remaining > 0 {
			inst.Remaining--
		}
		if inst.Remaining <= 0 {
			expired[def.Key] = true
		}
	}

	if len(expired) > 0 {
		l.remove(func(i *Instance) bool { return expired[i.Definition.Key] }, true)
	}
}

func (l *Ledger) publishPeriodic(key string, amount int, heal bool) {
	events.Publish(l.emitter, &events.HitResolvedEvent{
		BaseEvent:  events.BaseEvent{Type: events.EventTypeHitResolved},
		TargetID:   l.bearer.ID(),
		AbilityKey: key,
		Amount:     amount,
		Heal:       heal,
		Elemental:  1,
		Periodic:   true,
	})
}

// IsActionPrevented reports whether any active instance locks actions
func (l *Ledger) IsActionPrevented() bool {
	for _, inst := range l.instances {
		if inst.Definition.PreventsAction {
			return true
		}
	}
	return false
}

// Clear drops every instance without reversing modifiers
func (l *Ledger) Clear() {
	if len(l.instances) == 0 {
		return
	}
	dropped := l.instances
	l.instances = nil

	seen := make(map[string]bool)
	for _, inst := range dropped {
		key := inst.Definition.Key
		if seen[key] {
			continue
		}
		seen[key] = true
		events.Publish(l.emitter, &events.EffectRemovedEvent{
			BaseEvent:   events.BaseEvent{Type: events.EventTypeEffectRemoved},
			CombatantID: l.bearer.ID(),
			EffectKey:   key,
			Count:       countKey(dropped, key),
		})
	}
}

func countKey(instances []*Instance, key string) int {
	n := 0
	for _, inst := range instances {
		if inst.Definition.Key == key {
			n++
		}
	}
	return n
}

// Stacks returns the number of active instances of key
func (l *Ledger) Stacks(key string) int {
	return countKey(l.instances, key)
}

// Has reports whether key is active
func (l *Ledger) Has(key string) bool {
	return l.Stacks(key) > 0
}

// Len returns the number of active instances
func (l *Ledger) Len() int {
	return len(l.instances)
}

// Instances returns copies of the active instances in application order
func (l *Ledger) Instances() []Instance {
	out := make([]Instance, len(l.instances))
	for i, inst := range l.instances {
		out[i] = *inst
	}
	return out
}

// StandingDelta is the sum of every active instance's standing modifiers.
// Stat recomputation layers it on top of the freshly computed block.
func (l *Ledger) StandingDelta() stats.Block {
	var total stats.Block
	for _, inst := range l.instances {
		total = total.Add(inst.Applied)
	}
	return total
}
