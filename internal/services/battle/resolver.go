package battle

import (
	"log"

	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/dice"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/domain/ability"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/domain/combatant"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/domain/element"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/domain/stats"
	scerr "github.com/TheBluePapaSmurf/Soulcast-sub001/internal/errors"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/events"
)

// ResolverConfig holds resolver dependencies
type ResolverConfig struct {
	Roller  dice.Roller
	Emitter events.Emitter
}

// Resolver executes legal ability uses
type Resolver struct {
	roller  dice.Roller
	emitter events.Emitter
}

// NewResolver creates a resolver; a nil roller falls back to a clock-seeded one
func NewResolver(cfg *ResolverConfig) *Resolver {
	r := &Resolver{}
	if cfg != nil {
		r.roller = cfg.Roller
		r.emitter = cfg.Emitter
	}
	if r.roller == nil {
		r.roller = dice.NewRandomRoller()
	}
	return r
}

// Resolve uses a from source against targets. An illegal use comes back as a
// result with Rejected set and no state change; only missing identities are errors.
func (r *Resolver) Resolve(a *ability.Definition, source *combatant.Combatant, targets ...*combatant.Combatant) (*ActionResult, error) {
	if a == nil {
		return nil, scerr.InvalidArgument("ability cannot be nil")
	}
	if source == nil {
		return nil, scerr.InvalidArgument("source cannot be nil")
	}

	result := &ActionResult{AbilityKey: a.Key, SourceID: source.ID()}

	if v := Check(source, a); !v.Allowed {
		return r.reject(result, v.Reason), nil
	}

	resolved, err := r.resolveTargets(a, source, targets)
	if err != nil {
		return nil, err
	}
	if len(resolved) == 0 && needsTarget(a) {
		return r.reject(result, ReasonNoTarget), nil
	}
	for _, t := range resolved {
		result.TargetIDs = append(result.TargetIDs, t.ID())
	}

	// Commit
	source.SpendEnergy(a.EnergyCost)
	if a.CooldownTurns > 0 {
		source.SetCooldown(a.Key, a.CooldownTurns)
	}
	source.MarkActed()
	source.Ledger().OnOwnAction()
	result.Steps = append(result.Steps, Step{Kind: StepWindUp})

	switch a.ActionType {
	case ability.ActionAttack:
		for _, t := range resolved {
			if err := r.attack(result, a, source, t); err != nil {
				return result, err
			}
		}
		r.applyEffects(result, a, source, resolved)
	case ability.ActionHeal:
		r.heal(result, a, source, resolved)
		r.applyEffects(result, a, source, resolved)
	case ability.ActionBuff, ability.ActionDebuff:
		r.applyEffects(result, a, source, resolved)
	}

	if a.HealsUser && a.HealAmount > 0 {
		healed := source.Heal(a.HealAmount)
		result.TotalHealing += healed
		result.Heals = append(result.Heals, HealResult{TargetID: source.ID(), Amount: healed})
		result.Steps = append(result.Steps, Step{Kind: StepSelfHeal, TargetID: source.ID(), Amount: healed})
		r.publishHit(a, source.ID(), source.ID(), 0, healed, true, false, 1)
	}

	log.Printf("[BATTLE] %s used %s: %d damage, %d healing, %d targets",
		source.ID(), a.Key, result.TotalDamage, result.TotalHealing, len(result.TargetIDs))

	events.Publish(r.emitter, &events.ActionResolvedEvent{
		BaseEvent:    events.BaseEvent{Type: events.EventTypeActionResolved},
		SourceID:     source.ID(),
		AbilityKey:   a.Key,
		TargetIDs:    result.TargetIDs,
		TotalDamage:  result.TotalDamage,
		TotalHealing: result.TotalHealing,
	})

	return result, nil
}

func (r *Resolver) reject(result *ActionResult, reason Reason) *ActionResult {
	result.Rejected = reason
	log.Printf("[BATTLE] %s cannot use %s: %s", result.SourceID, result.AbilityKey, reason)
	events.Publish(r.emitter, &events.ActionResolvedEvent{
		BaseEvent:  events.BaseEvent{Type: events.EventTypeActionResolved},
		SourceID:   result.SourceID,
		AbilityKey: result.AbilityKey,
		Rejected:   string(reason),
	})
	return result
}

// needsTarget reports whether an empty target list makes the use illegal
func needsTarget(a *ability.Definition) bool {
	switch a.ActionType {
	case ability.ActionAttack:
		return true
	case ability.ActionBuff, ability.ActionDebuff:
		return !a.ApplySelfEffects
	}
	return false
}

func (r *Resolver) resolveTargets(a *ability.Definition, source *combatant.Combatant, supplied []*combatant.Combatant) ([]*combatant.Combatant, error) {
	if a.TargetType == ability.TargetSelf {
		return []*combatant.Combatant{source}, nil
	}

	var alive []*combatant.Combatant
	for _, t := range supplied {
		if t != nil && t.IsAlive() {
			alive = append(alive, t)
		}
	}

	// Heals with nothing to aim at land on the user
	if len(alive) == 0 {
		if a.ActionType == ability.ActionHeal {
			return []*combatant.Combatant{source}, nil
		}
		return nil, nil
	}

	switch a.TargetType {
	case ability.TargetAllEnemies, ability.TargetAllAllies:
		return alive, nil
	case ability.TargetRandom:
		idx, err := dice.Pick(r.roller, len(alive))
		if err != nil {
			return nil, scerr.WrapWithCode(err, scerr.CodeInternal, "failed to pick random target")
		}
		return alive[idx : idx+1], nil
	default:
		return alive[:1], nil
	}
}

func (r *Resolver) attack(result *ActionResult, a *ability.Definition, source, target *combatant.Combatant) error {
	hits := a.Hits()
	for i := 0; i < hits; i++ {
		if !target.IsAlive() {
			break
		}

		hit, err := r.rollHit(a, source, target, i)
		if err != nil {
			return err
		}

		hit.Amount = target.TakeDamage(hit.Rolled)
		result.Hits = append(result.Hits, hit)
		result.TotalDamage += hit.Amount

		step := Step{Kind: StepHit, TargetID: target.ID(), HitIndex: i, Amount: hit.Amount, Critical: hit.Critical}
		if i < hits-1 {
			step.Delay = a.TimeBetweenHits
		}
		result.Steps = append(result.Steps, step)

		r.publishHit(a, source.ID(), target.ID(), i, hit.Amount, false, hit.Critical, hit.Elemental)

		if !target.IsAlive() {
			result.Killed = append(result.Killed, target.ID())
		}
	}
	return nil
}

// rollHit computes one hit: per-hit base, elemental factor, critical roll, defense, floor 1
func (r *Resolver) rollHit(a *ability.Definition, source, target *combatant.Combatant, index int) (HitResult, error) {
	src := source.Stats()
	base := a.PerHitPower(src.Attack)
	adv := element.Advantage(source.Element(), target.Element())

	crit, err := dice.Chance(r.roller, a.CriticalChance)
	if err != nil {
		return HitResult{}, scerr.WrapWithCode(err, scerr.CodeInternal, "failed to roll critical")
	}

	raw := float64(base) * adv
	if crit {
		raw *= critMultiplier(a)
	}

	dmg := stats.Round(raw)
	if !a.IgnoresDefense {
		if def := target.Stats().Defense; def > 0 {
			dmg -= def
		}
	}
	if dmg < 1 {
		dmg = 1
	}

	return HitResult{
		TargetID:  target.ID(),
		HitIndex:  index,
		Base:      base,
		Elemental: adv,
		Critical:  crit,
		Rolled:    dmg,
	}, nil
}

// critMultiplier is the ability's multiplier; unset means no bonus
func critMultiplier(a *ability.Definition) float64 {
	if a.CriticalMultiplier <= 0 {
		return 1
	}
	return a.CriticalMultiplier
}

func (r *Resolver) heal(result *ActionResult, a *ability.Definition, source *combatant.Combatant, targets []*combatant.Combatant) {
	amount := a.Power(source.Stats().Attack)
	for _, t := range targets {
		healed := t.Heal(amount)
		result.TotalHealing += healed
		result.Heals = append(result.Heals, HealResult{TargetID: t.ID(), Amount: healed})
		result.Steps = append(result.Steps, Step{Kind: StepHeal, TargetID: t.ID(), Amount: healed})
		r.publishHit(a, source.ID(), t.ID(), 0, healed, true, false, 1)
	}
}

func (r *Resolver) applyEffects(result *ActionResult, a *ability.Definition, source *combatant.Combatant, targets []*combatant.Combatant) {
	recipients := targets
	if a.ApplySelfEffects {
		recipients = []*combatant.Combatant{source}
	}

	for i, def := range a.Effects {
		if def == nil {
			key := ""
			if i < len(a.EffectKeys) {
				key = a.EffectKeys[i]
			}
			log.Printf("[BATTLE] %s references missing effect %q, skipping", a.Key, key)
			continue
		}
		for _, t := range recipients {
			if !t.IsAlive() {
				continue
			}
			outcome := t.Ledger().Add(def)
			result.Effects = append(result.Effects, EffectApplication{TargetID: t.ID(), EffectKey: def.Key, Outcome: outcome})
			result.Steps = append(result.Steps, Step{Kind: StepEffect, TargetID: t.ID(), EffectKey: def.Key, Outcome: outcome})
		}
	}
}

func (r *Resolver) publishHit(a *ability.Definition, sourceID, targetID string, index, amount int, heal, crit bool, adv float64) {
	events.Publish(r.emitter, &events.HitResolvedEvent{
		BaseEvent:  events.BaseEvent{Type: events.EventTypeHitResolved},
		SourceID:   sourceID,
		TargetID:   targetID,
		AbilityKey: a.Key,
		HitIndex:   index,
		Amount:     amount,
		Heal:       heal,
		Critical:   crit,
		Elemental:  adv,
	})
}
