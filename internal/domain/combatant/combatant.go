package combatant

import (
	"log"
	"sort"

	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/domain/ability"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/domain/element"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/domain/equipment"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/domain/stats"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/effects"
	scerr "github.com/TheBluePapaSmurf/Soulcast-sub001/internal/errors"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/events"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/uuid"
)

const (
	MinStars = 1
	MaxStars = 6
)

// Species is the immutable definition a combatant is created from
type Species struct {
	Key         string          `yaml:"key"`
	Name        string          `yaml:"name"`
	Element     element.Element `yaml:"element"`
	Base        stats.Block     `yaml:"base"`
	AbilityKeys []string        `yaml:"abilities"`

	// Abilities is resolved from AbilityKeys by the rulebook
	Abilities []*ability.Definition `yaml:"-"`
}

// Config holds everything needed to bring a combatant into a battle
type Config struct {
	ID      string
	Name    string
	Team    string
	Species *Species
	Level   int
	Stars   int
	Runes   []*equipment.Rune
	// StartEnergy is clamped to max energy
	StartEnergy int

	Emitter events.Emitter
	IDs     uuid.Generator
}

var _ effects.Bearer = (*Combatant)(nil)

// Combatant is one monster's mutable battle state.
// Not safe for concurrent use; a battle session serializes access.
type Combatant struct {
	id      string
	name    string
	team    string
	species *Species
	level   int
	stars   int
	runes   []*equipment.Rune

	// computed is the pipeline output; current layers standing effect deltas on top.
	// current.HP and current.Energy are the maxima of the hp and energy pools.
	computed stats.Block
	current  stats.Block
	hp       int
	energy   int

	alive     bool
	hasActed  bool
	cooldowns map[string]int

	ledger  *effects.Ledger
	emitter events.Emitter
}

// New creates a combatant at full HP
func New(cfg *Config) (*Combatant, error) {
	if cfg == nil {
		return nil, scerr.InvalidArgument("config cannot be nil")
	}
	if cfg.Species == nil {
		return nil, scerr.InvalidArgument("species is required")
	}

	ids := cfg.IDs
	if ids == nil {
		ids = uuid.NewGoogleUUIDGenerator()
	}

	c := &Combatant{
		id:        cfg.ID,
		name:      cfg.Name,
		team:      cfg.Team,
		species:   cfg.Species,
		stars:     clampStars(cfg.Stars),
		runes:     append([]*equipment.Rune(nil), cfg.Runes...),
		alive:     true,
		cooldowns: make(map[string]int),
		emitter:   cfg.Emitter,
	}
	if c.id == "" {
		c.id = ids.New()
	}
	if c.name == "" {
		c.name = cfg.Species.Name
	}
	c.level = c.clampLevel(cfg.Level)

	c.ledger = effects.NewLedger(c, &effects.LedgerConfig{Emitter: cfg.Emitter, IDs: ids})

	c.computed = Compute(c.species.Base, c.level, c.runes)
	c.current = c.computed
	c.hp = c.current.HP
	c.energy = clamp(cfg.StartEnergy, 0, c.current.Energy)
	if c.hp <= 0 {
		return nil, scerr.Validationf("combatant %s has no HP", c.id).WithMeta("species", cfg.Species.Key)
	}

	return c, nil
}

func clampStars(stars int) int {
	return clamp(stars, MinStars, MaxStars)
}

func (c *Combatant) clampLevel(level int) int {
	return clamp(level, 1, c.MaxLevel())
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (c *Combatant) ID() string               { return c.id }
func (c *Combatant) Name() string             { return c.name }
func (c *Combatant) Team() string             { return c.team }
func (c *Combatant) Species() *Species        { return c.species }
func (c *Combatant) Element() element.Element { return c.species.Element }
func (c *Combatant) Level() int               { return c.level }
func (c *Combatant) Stars() int               { return c.stars }
func (c *Combatant) MaxLevel() int            { return c.stars * 10 }
func (c *Combatant) Ledger() *effects.Ledger  { return c.ledger }

// BaseStats is the unscaled species base
func (c *Combatant) BaseStats() stats.Block { return c.species.Base }

// Computed is the pipeline output without effect modifiers
func (c *Combatant) Computed() stats.Block { return c.computed }

// Stats is the current effective block including standing effect modifiers
func (c *Combatant) Stats() stats.Block { return c.current }

func (c *Combatant) HP() int        { return c.hp }
func (c *Combatant) MaxHP() int     { return c.current.HP }
func (c *Combatant) Energy() int    { return c.energy }
func (c *Combatant) MaxEnergy() int { return c.current.Energy }
func (c *Combatant) IsAlive() bool  { return c.alive }
func (c *Combatant) HasActed() bool { return c.hasActed }

// Runes returns the equipped runes
func (c *Combatant) Runes() []*equipment.Rune {
	return append([]*equipment.Rune(nil), c.runes...)
}

// Abilities returns the species ability set
func (c *Combatant) Abilities() []*ability.Definition {
	return c.species.Abilities
}

// HasAbility reports whether the ability belongs to this combatant's set
func (c *Combatant) HasAbility(key string) bool {
	return c.Ability(key) != nil
}

// Ability finds an ability in the set by key
func (c *Combatant) Ability(key string) *ability.Definition {
	for _, a := range c.species.Abilities {
		if a != nil && a.Key == key {
			return a
		}
	}
	return nil
}

// Recompute re-runs the stat pipeline and re-layers standing effect deltas.
// Damage taken is kept: the HP pool shifts by the change in max HP.
func (c *Combatant) Recompute() {
	oldMax := c.current.HP

	c.computed = Compute(c.species.Base, c.level, c.runes)
	c.current = c.computed.Add(c.ledger.StandingDelta())

	if c.alive {
		c.hp = clamp(c.hp+c.current.HP-oldMax, 1, c.current.HP)
	}
	c.energy = clamp(c.energy, 0, c.current.Energy)
	c.emitStats()
}

// LevelUp raises level by n, capped by stars. Returns levels gained.
func (c *Combatant) LevelUp(n int) int {
	if n <= 0 {
		return 0
	}
	before := c.level
	c.level = c.clampLevel(c.level + n)
	if c.level != before {
		c.Recompute()
	}
	return c.level - before
}

// Equip places a rune in its slot, returning any rune it displaced
func (c *Combatant) Equip(r *equipment.Rune) (*equipment.Rune, error) {
	if err := r.Validate(); err != nil {
		return nil, scerr.Wrapf(err, "cannot equip rune on %s", c.id)
	}

	var displaced *equipment.Rune
	kept := c.runes[:0:0]
	for _, existing := range c.runes {
		if existing != nil && existing.Slot == r.Slot {
			displaced = existing
			continue
		}
		kept = append(kept, existing)
	}
	c.runes = append(kept, r)
	sort.Slice(c.runes, func(i, j int) bool { return c.runes[i].Slot < c.runes[j].Slot })

	c.Recompute()
	return displaced, nil
}

// Unequip empties a slot. Returns nil when the slot was empty.
func (c *Combatant) Unequip(slot int) *equipment.Rune {
	for i, r := range c.runes {
		if r != nil && r.Slot == slot {
			c.runes = append(c.runes[:i:i], c.runes[i+1:]...)
			c.Recompute()
			return r
		}
	}
	return nil
}

// ApplyStandingDelta adds a reversible delta to current stats.
// HP and Energy maxima are owned by the pipeline and ignored here.
func (c *Combatant) ApplyStandingDelta(delta stats.Block) {
	delta.HP = 0
	delta.Energy = 0
	if delta.IsZero() {
		return
	}
	c.current = c.current.Add(delta)
	c.emitStats()
}

// Heal restores HP up to max and returns the amount restored
func (c *Combatant) Heal(amount int) int {
	if !c.alive || amount <= 0 {
		return 0
	}
	before := c.hp
	c.hp = clamp(c.hp+amount, 0, c.MaxHP())
	return c.hp - before
}

// Drain removes HP without on-damage cleanses; zero HP kills
func (c *Combatant) Drain(amount int) int {
	if !c.alive || amount <= 0 {
		return 0
	}
	dealt := amount
	if dealt > c.hp {
		dealt = c.hp
	}
	c.hp -= dealt
	if c.hp == 0 {
		c.die()
	}
	return dealt
}

// TakeDamage is the hit path: drains HP and, if still alive, runs on-damage cleanses
func (c *Combatant) TakeDamage(amount int) int {
	dealt := c.Drain(amount)
	if c.alive && dealt > 0 {
		c.ledger.OnDamageTaken()
	}
	return dealt
}

func (c *Combatant) die() {
	c.alive = false
	c.hp = 0
	c.ledger.Clear()
	log.Printf("[COMBATANT] %s (%s) died", c.name, c.id)
	events.Publish(c.emitter, events.NewDeath(c.id))
}

// AdjustEnergy adds delta to the energy pool, clamped to [0, max]
func (c *Combatant) AdjustEnergy(delta int) {
	c.energy = clamp(c.energy+delta, 0, c.MaxEnergy())
}

// SpendEnergy deducts cost if affordable
func (c *Combatant) SpendEnergy(cost int) bool {
	if cost > c.energy {
		return false
	}
	c.energy -= cost
	return true
}

// Cooldown returns remaining cooldown turns for an ability
func (c *Combatant) Cooldown(key string) int {
	return c.cooldowns[key]
}

// SetCooldown starts a cooldown
func (c *Combatant) SetCooldown(key string, turns int) {
	if turns <= 0 {
		delete(c.cooldowns, key)
		return
	}
	c.cooldowns[key] = turns
}

// TickCooldowns decrements every positive cooldown by one
func (c *Combatant) TickCooldowns() {
	for key, turns := range c.cooldowns {
		if turns <= 1 {
			delete(c.cooldowns, key)
			continue
		}
		c.cooldowns[key] = turns - 1
	}
}

// MarkActed records that the combatant used its action this turn
func (c *Combatant) MarkActed() { c.hasActed = true }

// ResetTurn clears the has-acted flag
func (c *Combatant) ResetTurn() { c.hasActed = false }

// EndBattle clears battle-only state without reversing effects
func (c *Combatant) EndBattle() {
	c.ledger.Clear()
	c.cooldowns = make(map[string]int)
	c.hasActed = false
}

func (c *Combatant) emitStats() {
	events.Publish(c.emitter, events.NewStatsChanged(c.id, c.current, c.hp, c.MaxHP(), c.energy, c.MaxEnergy()))
}
