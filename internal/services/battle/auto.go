package battle

import (
	"context"
	"log"
	"sort"

	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/domain/ability"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/domain/combatant"
)

// DefaultMaxRounds bounds an unattended battle
const DefaultMaxRounds = 50

// AutoConfig tunes an unattended battle
type AutoConfig struct {
	MaxRounds int
	// Wait paces playback between hits; nil runs headless
	Wait WaitFunc
	// OnStep sees every presentation step in order
	OnStep func(sourceID string, step Step) error
}

// Outcome summarizes an unattended battle
type Outcome struct {
	Winner  string
	Decided bool
	Rounds  int
	Actions int
}

// Auto drives s until one team is left or the round limit runs out. Each round
// every living combatant acts once, fastest first, using the costliest ability
// it may use. The session is ended before returning.
func Auto(ctx context.Context, s *Session, cfg *AutoConfig) (*Outcome, error) {
	if cfg == nil {
		cfg = &AutoConfig{}
	}
	maxRounds := cfg.MaxRounds
	if maxRounds <= 0 {
		maxRounds = DefaultMaxRounds
	}
	defer s.End()

	out := &Outcome{}
	for round := 1; round <= maxRounds; round++ {
		out.Rounds = round

		for _, c := range turnOrder(s.Combatants()) {
			if err := ctx.Err(); err != nil {
				return out, err
			}
			if !c.IsAlive() {
				continue
			}

			if err := s.StartTurn(c.ID()); err != nil {
				return out, err
			}
			if winner, over := s.Winner(); over {
				out.Winner, out.Decided = winner, true
				return out, nil
			}
			if !c.IsAlive() {
				continue
			}

			acted, err := takeTurn(ctx, s, c, cfg)
			if err != nil {
				return out, err
			}
			if acted {
				out.Actions++
			}

			if winner, over := s.Winner(); over {
				out.Winner, out.Decided = winner, true
				return out, nil
			}
		}
	}

	log.Printf("[BATTLE] %s undecided after %d rounds", s.ID(), maxRounds)
	return out, nil
}

// turnOrder sorts by current speed; ties keep join order
func turnOrder(cs []*combatant.Combatant) []*combatant.Combatant {
	order := make([]*combatant.Combatant, len(cs))
	copy(order, cs)
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].Stats().Speed > order[j].Stats().Speed
	})
	return order
}

func takeTurn(ctx context.Context, s *Session, c *combatant.Combatant, cfg *AutoConfig) (bool, error) {
	a, targets, err := choose(s, c)
	if err != nil {
		return false, err
	}
	if a == nil {
		log.Printf("[BATTLE] %s has nothing to use, passing", c.ID())
		return false, nil
	}

	result, err := s.Use(c.ID(), a.Key, targets...)
	if err != nil {
		return false, err
	}
	if !result.Committed() {
		log.Printf("[BATTLE] %s could not use %s: %s", c.ID(), a.Key, result.Rejected)
		return false, nil
	}

	err = Play(ctx, result.Steps, cfg.Wait, func(step Step) error {
		if cfg.OnStep == nil {
			return nil
		}
		return cfg.OnStep(c.ID(), step)
	})
	return true, err
}

// choose picks the costliest allowed ability that has somewhere useful to go
func choose(s *Session, c *combatant.Combatant) (*ability.Definition, []string, error) {
	available, err := s.Available(c.ID())
	if err != nil {
		return nil, nil, err
	}

	var (
		best    *ability.Definition
		targets []string
	)
	for _, av := range available {
		if !av.Verdict.Allowed {
			continue
		}
		if best != nil && av.Ability.EnergyCost <= best.EnergyCost {
			continue
		}

		ids, ok, err := targetsFor(s, c, av.Ability)
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			continue
		}
		best, targets = av.Ability, ids
	}
	return best, targets, nil
}

func targetsFor(s *Session, c *combatant.Combatant, a *ability.Definition) ([]string, bool, error) {
	if a.TargetType == ability.TargetSelf {
		return nil, true, nil
	}

	switch a.ActionType {
	case ability.ActionHeal, ability.ActionBuff:
		allies, err := s.Allies(c.ID())
		if err != nil {
			return nil, false, err
		}
		if a.ActionType == ability.ActionHeal {
			if !anyHurt(allies) {
				return nil, false, nil
			}
			// single-target heals land on the most hurt
			sort.SliceStable(allies, func(i, j int) bool {
				return allies[i].MaxHP()-allies[i].HP() > allies[j].MaxHP()-allies[j].HP()
			})
		}
		return ids(allies), true, nil

	default:
		opponents, err := s.Opponents(c.ID())
		if err != nil {
			return nil, false, err
		}
		// single-target picks land on the weakest
		sort.SliceStable(opponents, func(i, j int) bool {
			return opponents[i].HP() < opponents[j].HP()
		})
		return ids(opponents), len(opponents) > 0, nil
	}
}

func anyHurt(cs []*combatant.Combatant) bool {
	for _, c := range cs {
		if c.HP() < c.MaxHP() {
			return true
		}
	}
	return false
}

func ids(cs []*combatant.Combatant) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.ID())
	}
	return out
}
