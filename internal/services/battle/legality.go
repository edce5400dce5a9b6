package battle

import (
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/domain/ability"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/domain/combatant"
)

// Reason explains why an action was refused
type Reason string

const (
	ReasonNone               Reason = ""
	ReasonMissingIdentity    Reason = "missing_identity"
	ReasonDead               Reason = "dead"
	ReasonAlreadyActed       Reason = "already_acted"
	ReasonActionPrevented    Reason = "action_prevented"
	ReasonNotInAbilitySet    Reason = "not_in_ability_set"
	ReasonInsufficientEnergy Reason = "insufficient_energy"
	ReasonOnCooldown         Reason = "on_cooldown"
	ReasonNoTarget           Reason = "no_target"
)

// Verdict is the result of a legality check
type Verdict struct {
	Allowed bool
	Reason  Reason
}

func allow() Verdict        { return Verdict{Allowed: true} }
func deny(r Reason) Verdict { return Verdict{Reason: r} }

// Check decides whether c may use a right now. It never mutates state.
func Check(c *combatant.Combatant, a *ability.Definition) Verdict {
	switch {
	case c == nil || a == nil:
		return deny(ReasonMissingIdentity)
	case !c.IsAlive():
		return deny(ReasonDead)
	case c.HasActed():
		return deny(ReasonAlreadyActed)
	case c.Ledger().IsActionPrevented():
		return deny(ReasonActionPrevented)
	case !c.HasAbility(a.Key):
		return deny(ReasonNotInAbilitySet)
	case c.Energy() < a.EnergyCost:
		return deny(ReasonInsufficientEnergy)
	case c.Cooldown(a.Key) > 0:
		return deny(ReasonOnCooldown)
	}
	return allow()
}

// CanUse is Check reduced to a bool
func CanUse(c *combatant.Combatant, a *ability.Definition) bool {
	return Check(c, a).Allowed
}

// Availability pairs an ability with its current verdict
type Availability struct {
	Ability *ability.Definition
	Verdict Verdict
}

// Available lists every ability in c's set with its verdict
func Available(c *combatant.Combatant) []Availability {
	if c == nil {
		return nil
	}
	out := make([]Availability, 0, len(c.Abilities()))
	for _, a := range c.Abilities() {
		if a == nil {
			continue
		}
		out = append(out, Availability{Ability: a, Verdict: Check(c, a)})
	}
	return out
}
