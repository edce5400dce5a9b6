package battle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/domain/ability"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/domain/combatant"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/domain/element"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/domain/stats"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/events"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/uuid"
)

type fighterDef struct {
	id        string
	team      string
	element   element.Element
	base      stats.Block
	energy    int
	abilities []*ability.Definition
}

func defaultBase() stats.Block {
	return stats.Block{HP: 100, Attack: 20, Speed: 10, Energy: 100}
}

func newFighter(t *testing.T, bus events.Emitter, def fighterDef) *combatant.Combatant {
	t.Helper()
	if def.element == "" {
		def.element = element.Neutral
	}
	if def.base.HP == 0 {
		def.base = defaultBase()
	}

	c, err := combatant.New(&combatant.Config{
		ID:   def.id,
		Team: def.team,
		Species: &combatant.Species{
			Key:       def.id + "-species",
			Name:      def.id,
			Element:   def.element,
			Base:      def.base,
			Abilities: def.abilities,
		},
		Level:       1,
		Stars:       1,
		StartEnergy: def.energy,
		Emitter:     bus,
		IDs:         uuid.NewSequenceGenerator("fx"),
	})
	require.NoError(t, err)
	return c
}

func strike(key string, power int) *ability.Definition {
	return &ability.Definition{
		Key:        key,
		Name:       key,
		Category:   ability.CategoryNormal,
		ActionType: ability.ActionAttack,
		TargetType: ability.TargetSingle,
		BasePower:  power,
	}
}

func recorded(t *testing.T) (*events.Bus, *events.Recorder) {
	t.Helper()
	bus := events.NewBus()
	rec := events.NewRecorder("test")
	bus.SubscribeAll(rec)
	return bus, rec
}
