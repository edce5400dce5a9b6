package effects

import (
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/domain/element"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/domain/stats"
)

// Builder helps create effect definitions
type Builder struct {
	def *Definition
}

// NewBuilder creates a new definition builder
func NewBuilder(key string) *Builder {
	return &Builder{
		def: &Definition{
			Key:            key,
			Name:           key,
			Classification: ClassificationNeutral,
			Category:       CategoryStatModifier,
			Duration:       1,
		},
	}
}

// Named sets the display name
func (b *Builder) Named(name string) *Builder {
	b.def.Name = name
	return b
}

// WithDescription adds a description
func (b *Builder) WithDescription(desc string) *Builder {
	b.def.Description = desc
	return b
}

// Buff marks the effect as a buff
func (b *Builder) Buff() *Builder {
	b.def.Classification = ClassificationBuff
	return b
}

// Debuff marks the effect as a debuff
func (b *Builder) Debuff() *Builder {
	b.def.Classification = ClassificationDebuff
	return b
}

// WithCategory sets the category
func (b *Builder) WithCategory(c Category) *Builder {
	b.def.Category = c
	return b
}

// WithDuration sets the duration in turns
func (b *Builder) WithDuration(turns int) *Builder {
	b.def.Duration = turns
	b.def.Permanent = false
	return b
}

// Permanent makes the effect never expire
func (b *Builder) Permanent() *Builder {
	b.def.Permanent = true
	return b
}

// Stackable allows up to max simultaneous instances
func (b *Builder) Stackable(max int) *Builder {
	b.def.Stackable = true
	b.def.MaxStacks = max
	return b
}

// AddModifier adds a flat stat modifier
func (b *Builder) AddModifier(t stats.Type, amount float64) *Builder {
	b.def.Modifiers = append(b.def.Modifiers, stats.Value{Type: t, Amount: amount})
	return b
}

// AddPercentModifier adds a modifier as a percentage of the base stat
func (b *Builder) AddPercentModifier(t stats.Type, percent float64) *Builder {
	b.def.Modifiers = append(b.def.Modifiers, stats.Value{Type: t, Amount: percent, Percentage: true})
	return b
}

// WithDamagePerTurn sets periodic damage
func (b *Builder) WithDamagePerTurn(p Periodic) *Builder {
	b.def.DamagePerTurn = p
	return b
}

// WithHealPerTurn sets periodic healing
func (b *Builder) WithHealPerTurn(p Periodic) *Builder {
	b.def.HealPerTurn = p
	return b
}

// PreventsAction locks the bearer out of acting
func (b *Builder) PreventsAction() *Builder {
	b.def.PreventsAction = true
	return b
}

// ClearsOnDamage ends the effect when the bearer is hit
func (b *Builder) ClearsOnDamage() *Builder {
	b.def.ClearsOnDamage = true
	return b
}

// ClearsOnAction ends the effect when the bearer acts
func (b *Builder) ClearsOnAction() *Builder {
	b.def.ClearsOnAction = true
	return b
}

// ResistedBy makes combatants of these elements immune
func (b *Builder) ResistedBy(elements ...element.Element) *Builder {
	b.def.ResistantElements = append(b.def.ResistantElements, elements...)
	return b
}

// Build returns the constructed definition
func (b *Builder) Build() *Definition {
	return b.def
}

// Common effect builders

// BuildStun creates a one-turn action lock
func BuildStun() *Definition {
	return NewBuilder("stun").
		Named("Stun").
		WithDescription("Cannot act.").
		Debuff().
		WithCategory(CategoryControl).
		WithDuration(1).
		PreventsAction().
		Build()
}

// BuildSleep creates an action lock that breaks when the bearer is hit
func BuildSleep(turns int) *Definition {
	return NewBuilder("sleep").
		Named("Sleep").
		WithDescription("Cannot act. Wakes up when damaged.").
		Debuff().
		WithCategory(CategoryControl).
		WithDuration(turns).
		PreventsAction().
		ClearsOnDamage().
		Build()
}

// BuildAttackUp creates a non-stacking attack buff
func BuildAttackUp(percent float64, turns int) *Definition {
	return NewBuilder("attack_up").
		Named("Attack Up").
		Buff().
		WithDuration(turns).
		AddPercentModifier(stats.Attack, percent).
		Build()
}

// BuildDefenseBreak creates a non-stacking defense debuff
func BuildDefenseBreak(percent float64, turns int) *Definition {
	return NewBuilder("defense_break").
		Named("Defense Break").
		Debuff().
		WithDuration(turns).
		AddPercentModifier(stats.Defense, -percent).
		Build()
}

// BuildPoison creates a stacking percent-of-max-HP damage over time
func BuildPoison(percent float64, turns, maxStacks int) *Definition {
	return NewBuilder("poison").
		Named("Poison").
		Debuff().
		WithCategory(CategoryStatusCondition).
		WithDuration(turns).
		Stackable(maxStacks).
		WithDamagePerTurn(Periodic{Percent: percent}).
		Build()
}

// BuildRegeneration creates a percent-of-max-HP heal over time
func BuildRegeneration(percent float64, turns int) *Definition {
	return NewBuilder("regeneration").
		Named("Regeneration").
		Buff().
		WithCategory(CategoryHeal).
		WithDuration(turns).
		WithHealPerTurn(Periodic{Percent: percent}).
		Build()
}
