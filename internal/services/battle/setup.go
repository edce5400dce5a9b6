package battle

import (
	"context"
	"fmt"

	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/domain/combatant"
	scerr "github.com/TheBluePapaSmurf/Soulcast-sub001/internal/errors"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/events"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/repositories/roster"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/uuid"
)

// SpeciesCatalog resolves species keys to linked definitions
type SpeciesCatalog interface {
	Species(key string) (*combatant.Species, error)
}

// SetupConfig holds what Setup needs to turn stored entries into combatants
type SetupConfig struct {
	Roster  roster.Repository
	Catalog SpeciesCatalog
	Emitter events.Emitter
	IDs     uuid.Generator
}

// Setup builds battle-ready combatants from collection entries.
// It is the only place the combat core meets persistence.
type Setup struct {
	roster  roster.Repository
	catalog SpeciesCatalog
	emitter events.Emitter
	ids     uuid.Generator
}

// NewSetup validates dependencies and creates a Setup
func NewSetup(cfg *SetupConfig) (*Setup, error) {
	if cfg == nil {
		return nil, scerr.InvalidArgument("setup config cannot be nil")
	}
	if cfg.Roster == nil {
		return nil, scerr.InvalidArgument("roster repository is required")
	}
	if cfg.Catalog == nil {
		return nil, scerr.InvalidArgument("species catalog is required")
	}

	ids := cfg.IDs
	if ids == nil {
		ids = uuid.NewGoogleUUIDGenerator()
	}

	return &Setup{
		roster:  cfg.Roster,
		catalog: cfg.Catalog,
		emitter: cfg.Emitter,
		ids:     ids,
	}, nil
}

// Team names a side and the entries fielded on it
type Team struct {
	Name     string
	EntryIDs []string
}

// FromEntry converts one entry into a combatant on team. The combatant ID is
// team-scoped so the same entry can appear on both sides of a mirror match.
func (s *Setup) FromEntry(entry *roster.Entry, team string) (*combatant.Combatant, error) {
	if entry == nil {
		return nil, scerr.InvalidArgument("entry cannot be nil")
	}

	species, err := s.catalog.Species(entry.SpeciesKey)
	if err != nil {
		return nil, scerr.Wrapf(err, "entry %s", entry.ID)
	}

	c, err := combatant.New(&combatant.Config{
		ID:          fmt.Sprintf("%s:%s", team, entry.ID),
		Name:        entry.Nickname,
		Team:        team,
		Species:     species,
		Level:       entry.Level,
		Stars:       entry.Stars,
		Runes:       entry.Runes,
		StartEnergy: entry.StartEnergy,
		Emitter:     s.emitter,
		IDs:         s.ids,
	})
	if err != nil {
		return nil, scerr.Wrapf(err, "building combatant from entry %s", entry.ID)
	}
	return c, nil
}

// BuildTeam loads entries and converts them in the given order
func (s *Setup) BuildTeam(ctx context.Context, team Team) ([]*combatant.Combatant, error) {
	if team.Name == "" {
		return nil, scerr.InvalidArgument("team name is required")
	}
	if len(team.EntryIDs) == 0 {
		return nil, scerr.InvalidArgumentf("team %s has no entries", team.Name)
	}

	entries, err := s.roster.GetMany(ctx, team.EntryIDs)
	if err != nil {
		return nil, scerr.Wrapf(err, "loading team %s", team.Name)
	}

	out := make([]*combatant.Combatant, 0, len(entries))
	for _, entry := range entries {
		c, err := s.FromEntry(entry, team.Name)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// NewBattle builds every team and joins them into a fresh session
func (s *Setup) NewBattle(ctx context.Context, cfg *SessionConfig, teams ...Team) (*Session, error) {
	if len(teams) < 2 {
		return nil, scerr.InvalidArgument("a battle needs at least two teams")
	}

	if cfg == nil {
		cfg = &SessionConfig{}
	}
	if cfg.ID == "" {
		cfg.ID = s.ids.New()
	}
	session := NewSession(cfg)

	for _, team := range teams {
		members, err := s.BuildTeam(ctx, team)
		if err != nil {
			return nil, err
		}
		if err := session.Join(members...); err != nil {
			return nil, err
		}
	}
	return session, nil
}
