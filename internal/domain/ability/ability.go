package ability

import (
	"time"

	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/effects"
	scerr "github.com/TheBluePapaSmurf/Soulcast-sub001/internal/errors"
)

// Category is the ability tier
type Category string

const (
	CategoryNormal   Category = "normal"
	CategorySpecial  Category = "special"
	CategoryUltimate Category = "ultimate"
)

// ActionType decides which resolution path an ability takes
type ActionType string

const (
	ActionAttack ActionType = "attack"
	ActionBuff   ActionType = "buff"
	ActionDebuff ActionType = "debuff"
	ActionHeal   ActionType = "heal"
)

// TargetType decides which of the supplied targets an ability reaches
type TargetType string

const (
	TargetSingle     TargetType = "single"
	TargetAllEnemies TargetType = "all_enemies"
	TargetAllAllies  TargetType = "all_allies"
	TargetSelf       TargetType = "self"
	TargetRandom     TargetType = "random"
)

// Definition is an immutable ability, shared by reference between combatants
type Definition struct {
	Key         string     `yaml:"key"`
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Category    Category   `yaml:"category"`
	ActionType  ActionType `yaml:"action_type"`
	TargetType  TargetType `yaml:"target_type"`

	EnergyCost    int `yaml:"energy_cost"`
	CooldownTurns int `yaml:"cooldown"`

	BasePower      int  `yaml:"base_power"`
	UsesAttackStat bool `yaml:"uses_attack_stat"`
	IgnoresDefense bool `yaml:"ignores_defense"`

	HitCount           int           `yaml:"hit_count"`
	TimeBetweenHits    time.Duration `yaml:"time_between_hits"`
	DivideDamagePerHit bool          `yaml:"divide_damage_per_hit"`

	// CriticalChance is in percent, CriticalMultiplier is a factor (1.5 = +50%)
	CriticalChance     float64 `yaml:"critical_chance"`
	CriticalMultiplier float64 `yaml:"critical_multiplier"`

	HealsUser  bool `yaml:"heals_user"`
	HealAmount int  `yaml:"heal_amount"`

	EffectKeys       []string `yaml:"effects,omitempty"`
	ApplySelfEffects bool     `yaml:"apply_self_effects"`

	// Effects is resolved from EffectKeys by the rulebook. A nil entry is a
	// missing catalog reference and is skipped at resolution.
	Effects []*effects.Definition `yaml:"-"`
}

// Hits returns the number of hits, at least one
func (d *Definition) Hits() int {
	if d.HitCount < 1 {
		return 1
	}
	return d.HitCount
}

// Power is the pre-split base amount for a source with the given attack
func (d *Definition) Power(attack int) int {
	if d.UsesAttackStat {
		return d.BasePower + attack
	}
	return d.BasePower
}

// PerHitPower splits Power across hits when configured, flooring each hit at 1
func (d *Definition) PerHitPower(attack int) int {
	power := d.Power(attack)
	if !d.DivideDamagePerHit {
		return power
	}
	perHit := power / d.Hits()
	if perHit < 1 {
		return 1
	}
	return perHit
}

// IsAttack reports whether the ability deals damage
func (d *Definition) IsAttack() bool {
	return d.ActionType == ActionAttack
}

// Validate checks the definition shape
func (d *Definition) Validate() error {
	if d == nil {
		return scerr.InvalidArgument("ability definition cannot be nil")
	}
	if d.Key == "" {
		return scerr.Validation("ability definition must have a key")
	}

	switch d.Category {
	case CategoryNormal, CategorySpecial, CategoryUltimate:
	default:
		return scerr.Validationf("ability %s has unknown category %q", d.Key, d.Category).WithMeta("ability", d.Key)
	}
	switch d.ActionType {
	case ActionAttack, ActionBuff, ActionDebuff, ActionHeal:
	default:
		return scerr.Validationf("ability %s has unknown action type %q", d.Key, d.ActionType).WithMeta("ability", d.Key)
	}
	switch d.TargetType {
	case TargetSingle, TargetAllEnemies, TargetAllAllies, TargetSelf, TargetRandom:
	default:
		return scerr.Validationf("ability %s has unknown target type %q", d.Key, d.TargetType).WithMeta("ability", d.Key)
	}

	if d.EnergyCost < 0 || d.CooldownTurns < 0 {
		return scerr.Validationf("ability %s has negative cost or cooldown", d.Key).WithMeta("ability", d.Key)
	}
	if d.CriticalChance < 0 || d.CriticalChance > 100 {
		return scerr.Validationf("ability %s critical chance %.2f out of range", d.Key, d.CriticalChance).WithMeta("ability", d.Key)
	}
	if d.TimeBetweenHits < 0 {
		return scerr.Validationf("ability %s has negative hit delay", d.Key).WithMeta("ability", d.Key)
	}
	return nil
}
