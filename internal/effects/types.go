package effects

import (
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/domain/element"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/domain/stats"
	scerr "github.com/TheBluePapaSmurf/Soulcast-sub001/internal/errors"
)

// PermanentTurns is the remaining-turns value of an effect that never expires
const PermanentTurns = -1

// Classification is the buff/debuff polarity of an effect
type Classification string

const (
	ClassificationBuff    Classification = "buff"
	ClassificationDebuff  Classification = "debuff"
	ClassificationNeutral Classification = "neutral"
)

// Category groups effects for presentation and cleanse rules
type Category string

const (
	CategoryStatModifier    Category = "stat_modifier"
	CategoryStatusCondition Category = "status_condition"
	CategoryHeal            Category = "heal"
	CategoryProtection      Category = "protection"
	CategoryControl         Category = "control"
)

// Periodic is a per-turn damage or heal amount. A non-zero Percent of max HP
// takes precedence over Flat.
type Periodic struct {
	Percent float64 `json:"percent,omitempty" yaml:"percent,omitempty"`
	Flat    int     `json:"flat,omitempty" yaml:"flat,omitempty"`
}

// Amount resolves the periodic value against maximum HP
func (p Periodic) Amount(maxHP int) int {
	if p.Percent > 0 {
		return stats.Round(float64(maxHP) * p.Percent / 100)
	}
	if p.Flat > 0 {
		return p.Flat
	}
	return 0
}

// IsZero reports whether the periodic does nothing
func (p Periodic) IsZero() bool {
	return p.Percent <= 0 && p.Flat <= 0
}

// Definition is an immutable status effect catalog entry, shared by every
// combatant it is applied to
type Definition struct {
	Key            string         `json:"key" yaml:"key"`
	Name           string         `json:"name" yaml:"name"`
	Description    string         `json:"description,omitempty" yaml:"description,omitempty"`
	Classification Classification `json:"classification" yaml:"classification"`
	Category       Category       `json:"category" yaml:"category"`

	// Duration in turns; ignored when Permanent
	Duration  int  `json:"duration" yaml:"duration"`
	Permanent bool `json:"permanent,omitempty" yaml:"permanent,omitempty"`

	Stackable bool `json:"stackable,omitempty" yaml:"stackable,omitempty"`
	MaxStacks int  `json:"max_stacks,omitempty" yaml:"max_stacks,omitempty"`

	Modifiers     []stats.Value `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
	DamagePerTurn Periodic      `json:"damage_per_turn,omitempty" yaml:"damage_per_turn,omitempty"`
	HealPerTurn   Periodic      `json:"heal_per_turn,omitempty" yaml:"heal_per_turn,omitempty"`

	PreventsAction bool `json:"prevents_action,omitempty" yaml:"prevents_action,omitempty"`
	ClearsOnDamage bool `json:"clears_on_damage,omitempty" yaml:"clears_on_damage,omitempty"`
	ClearsOnAction bool `json:"clears_on_action,omitempty" yaml:"clears_on_action,omitempty"`

	ResistantElements []element.Element `json:"resistant_elements,omitempty" yaml:"resistant_elements,omitempty"`
}

// InitialTurns is the remaining-turns counter a new instance starts with
func (d *Definition) InitialTurns() int {
	if d.Permanent {
		return PermanentTurns
	}
	return d.Duration
}

// StackLimit is the number of simultaneous instances allowed
func (d *Definition) StackLimit() int {
	if !d.Stackable || d.MaxStacks < 1 {
		return 1
	}
	return d.MaxStacks
}

// ResistedBy reports whether a combatant of element e is immune
func (d *Definition) ResistedBy(e element.Element) bool {
	for _, r := range d.ResistantElements {
		if r == e {
			return true
		}
	}
	return false
}

// Validate checks a catalog entry for shape errors
func (d *Definition) Validate() error {
	if d == nil {
		return scerr.InvalidArgument("effect definition cannot be nil")
	}
	if d.Key == "" {
		return scerr.Validation("effect definition must have a key")
	}
	switch d.Classification {
	case ClassificationBuff, ClassificationDebuff, ClassificationNeutral:
	default:
		return scerr.Validationf("effect %s has unknown classification %q", d.Key, d.Classification).
			WithMeta("effect", d.Key)
	}
	if d.Stackable && d.MaxStacks < 1 {
		return scerr.Validationf("stackable effect %s needs max_stacks >= 1", d.Key).
			WithMeta("effect", d.Key)
	}
	for _, m := range d.Modifiers {
		if !m.Type.IsValid() {
			return scerr.Validationf("effect %s modifies unknown stat %q", d.Key, m.Type).
				WithMeta("effect", d.Key)
		}
	}
	for _, e := range d.ResistantElements {
		if !e.IsValid() {
			return scerr.Validationf("effect %s lists unknown element %q", d.Key, e).
				WithMeta("effect", d.Key)
		}
	}
	return nil
}

// Instance is one application of a definition on one combatant
type Instance struct {
	ID         string
	Definition *Definition
	// Remaining turns; PermanentTurns never counts down
	Remaining int
	// Applied holds the standing stat deltas this instance added, so removal
	// subtracts exactly what was added
	Applied stats.Block
}

// IsPermanent reports whether the instance never expires
func (i *Instance) IsPermanent() bool {
	return i.Remaining == PermanentTurns
}

// AddOutcome is the structured result of Ledger.Add
type AddOutcome string

const (
	OutcomeApplied   AddOutcome = "applied"
	OutcomeRefreshed AddOutcome = "refreshed"
	OutcomeResisted  AddOutcome = "resisted"
	OutcomeMaxStacks AddOutcome = "max_stacks"
	OutcomeSkipped   AddOutcome = "skipped"
)

// Succeeded reports whether the add changed the ledger
func (o AddOutcome) Succeeded() bool {
	return o == OutcomeApplied || o == OutcomeRefreshed
}
