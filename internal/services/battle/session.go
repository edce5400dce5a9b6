package battle

import (
	"log"
	"sync"

	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/domain/combatant"
	scerr "github.com/TheBluePapaSmurf/Soulcast-sub001/internal/errors"
)

// SessionConfig holds the collaborators of one battle
type SessionConfig struct {
	ID       string
	Resolver *Resolver
	Turns    *TurnController
}

// Session is the host-side serialization point for one battle: every call
// takes the battle mutex, so a multi-threaded host can drive it safely.
// Turn ordering stays with the caller.
type Session struct {
	mu sync.Mutex

	id       string
	resolver *Resolver
	turns    *TurnController

	combatants map[string]*combatant.Combatant
	order      []string
	ended      bool
}

// NewSession creates a battle session
func NewSession(cfg *SessionConfig) *Session {
	if cfg == nil {
		cfg = &SessionConfig{}
	}

	s := &Session{
		id:         cfg.ID,
		resolver:   cfg.Resolver,
		turns:      cfg.Turns,
		combatants: make(map[string]*combatant.Combatant),
	}
	if s.resolver == nil {
		s.resolver = NewResolver(nil)
	}
	if s.turns == nil {
		s.turns = NewTurnController(nil)
	}
	return s
}

// ID returns the battle ID
func (s *Session) ID() string {
	return s.id
}

// Join adds combatants to the battle
func (s *Session) Join(cs ...*combatant.Combatant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ended {
		return scerr.InvalidArgumentf("battle %s has ended", s.id)
	}
	for _, c := range cs {
		if c == nil {
			return scerr.InvalidArgument("combatant cannot be nil")
		}
		if _, exists := s.combatants[c.ID()]; exists {
			return scerr.AlreadyExistsf("combatant %s already in battle %s", c.ID(), s.id)
		}
		s.combatants[c.ID()] = c
		s.order = append(s.order, c.ID())
	}
	return nil
}

func (s *Session) get(id string) (*combatant.Combatant, error) {
	c, ok := s.combatants[id]
	if !ok {
		return nil, scerr.NotFoundf("combatant %s not in battle %s", id, s.id).WithMeta("combatant_id", id)
	}
	return c, nil
}

// Combatant returns one combatant by ID
func (s *Session) Combatant(id string) (*combatant.Combatant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(id)
}

// Combatants returns every combatant in join order
func (s *Session) Combatants() []*combatant.Combatant {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*combatant.Combatant, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.combatants[id])
	}
	return out
}

// Opponents returns living combatants on other teams
func (s *Session) Opponents(id string) ([]*combatant.Combatant, error) {
	return s.filter(id, func(self, other *combatant.Combatant) bool {
		return other.Team() != self.Team()
	})
}

// Allies returns living combatants on the same team, including self
func (s *Session) Allies(id string) ([]*combatant.Combatant, error) {
	return s.filter(id, func(self, other *combatant.Combatant) bool {
		return other.Team() == self.Team()
	})
}

func (s *Session) filter(id string, keep func(self, other *combatant.Combatant) bool) ([]*combatant.Combatant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	self, err := s.get(id)
	if err != nil {
		return nil, err
	}

	var out []*combatant.Combatant
	for _, oid := range s.order {
		other := s.combatants[oid]
		if other.IsAlive() && keep(self, other) {
			out = append(out, other)
		}
	}
	return out, nil
}

// StartTurn runs turn-start bookkeeping for one combatant
func (s *Session) StartTurn(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.get(id)
	if err != nil {
		return err
	}
	s.turns.OnTurnStart(c)
	return nil
}

// Available lists a combatant's abilities with verdicts
func (s *Session) Available(id string) ([]Availability, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.get(id)
	if err != nil {
		return nil, err
	}
	return Available(c), nil
}

// Use resolves an ability by key. Unknown ability keys are a refusal, unknown
// combatant IDs are errors.
func (s *Session) Use(sourceID, abilityKey string, targetIDs ...string) (*ActionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ended {
		return nil, scerr.InvalidArgumentf("battle %s has ended", s.id)
	}

	source, err := s.get(sourceID)
	if err != nil {
		return nil, err
	}

	targets := make([]*combatant.Combatant, 0, len(targetIDs))
	for _, tid := range targetIDs {
		t, err := s.get(tid)
		if err != nil {
			return nil, err
		}
		targets = append(targets, t)
	}

	a := source.Ability(abilityKey)
	if a == nil {
		log.Printf("[BATTLE] %s has no ability %q", sourceID, abilityKey)
		return &ActionResult{AbilityKey: abilityKey, SourceID: sourceID, Rejected: ReasonNotInAbilitySet}, nil
	}

	return s.resolver.Resolve(a, source, targets...)
}

// Winner returns the last team standing. over is false while two or more teams live.
func (s *Session) Winner() (team string, over bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	alive := make(map[string]bool)
	for _, c := range s.combatants {
		if c.IsAlive() {
			alive[c.Team()] = true
		}
	}

	switch len(alive) {
	case 0:
		return "", true
	case 1:
		for t := range alive {
			return t, true
		}
	}
	return "", false
}

// End clears battle-only state on every combatant
func (s *Session) End() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ended {
		return
	}
	for _, id := range s.order {
		s.turns.OnBattleEnd(s.combatants[id])
	}
	s.ended = true
	log.Printf("[BATTLE] Battle %s ended", s.id)
}
