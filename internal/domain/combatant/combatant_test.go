package combatant_test

import (
	"testing"

	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/domain/combatant"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/domain/element"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/domain/equipment"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/domain/stats"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/effects"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSpecies() *combatant.Species {
	return &combatant.Species{
		Key:     "emberfox",
		Name:    "Emberfox",
		Element: element.Fire,
		Base: stats.Block{
			HP: 100, Attack: 20, Defense: 10, Speed: 15,
			Energy: 100, CritRate: 15, CritDamage: 50, Accuracy: 0, Resistance: 15,
		},
	}
}

func newCombatant(t *testing.T, level int, runes ...*equipment.Rune) (*combatant.Combatant, *events.Recorder) {
	t.Helper()
	bus := events.NewBus()
	rec := events.NewRecorder("test")
	bus.SubscribeAll(rec)

	c, err := combatant.New(&combatant.Config{
		ID:      "c-1",
		Species: testSpecies(),
		Level:   level,
		Stars:   6,
		Runes:   runes,
		Emitter: bus,
	})
	require.NoError(t, err)
	return c, rec
}

func TestCompute(t *testing.T) {
	base := testSpecies().Base

	t.Run("level one is base", func(t *testing.T) {
		assert.Equal(t, base, combatant.Compute(base, 1, nil))
	})

	t.Run("level scales HP ATK DEF SPD only", func(t *testing.T) {
		got := combatant.Compute(base, 11, nil)
		assert.Equal(t, 200, got.HP)
		assert.Equal(t, 40, got.Attack)
		assert.Equal(t, 20, got.Defense)
		assert.Equal(t, 30, got.Speed)
		assert.Equal(t, base.Energy, got.Energy)
		assert.Equal(t, base.CritRate, got.CritRate)
		assert.Equal(t, base.Resistance, got.Resistance)
	})

	t.Run("rounding", func(t *testing.T) {
		got := combatant.Compute(stats.Block{Attack: 15}, 2, nil)
		// 15 * 1.1 = 16.5
		assert.Equal(t, 17, got.Attack)
	})

	t.Run("runes resolve percentages against unscaled base", func(t *testing.T) {
		runes := []*equipment.Rune{
			{ID: "r", Slot: 0, Main: stats.Value{Type: stats.Attack, Amount: 50, Percentage: true}},
		}
		got := combatant.Compute(base, 11, runes)
		assert.Equal(t, 50, got.Attack)
	})

	t.Run("levels below one count as one", func(t *testing.T) {
		assert.Equal(t, 1.0, combatant.LevelMultiplier(0))
	})
}

func TestCombatant_New(t *testing.T) {
	c, _ := newCombatant(t, 1)

	assert.Equal(t, "Emberfox", c.Name())
	assert.Equal(t, 100, c.HP())
	assert.Equal(t, 0, c.Energy())
	assert.True(t, c.IsAlive())
	assert.Equal(t, 60, c.MaxLevel())

	_, err := combatant.New(&combatant.Config{})
	assert.Error(t, err)
	_, err = combatant.New(nil)
	assert.Error(t, err)
}

func TestCombatant_StarsCapLevel(t *testing.T) {
	c, err := combatant.New(&combatant.Config{Species: testSpecies(), Level: 40, Stars: 2})
	require.NoError(t, err)

	assert.Equal(t, 20, c.Level())
	assert.Equal(t, 0, c.LevelUp(5))
	assert.NotEmpty(t, c.ID())
}

func TestCombatant_ScenarioA(t *testing.T) {
	c, _ := newCombatant(t, 1)
	require.Equal(t, 20, c.Stats().Attack)

	assert.Equal(t, effects.OutcomeApplied, c.Ledger().Add(effects.BuildAttackUp(50, 2)))
	assert.Equal(t, 30, c.Stats().Attack)

	c.Ledger().Remove("attack_up")
	assert.Equal(t, 20, c.Stats().Attack)
}

func TestCombatant_RecomputeKeepsEffectsAndDamage(t *testing.T) {
	c, rec := newCombatant(t, 1)
	c.Ledger().Add(effects.BuildAttackUp(50, 2))
	c.TakeDamage(30)
	rec.Reset()

	gained := c.LevelUp(10)
	assert.Equal(t, 10, gained)

	// 20*2 + 10 from the buff
	assert.Equal(t, 50, c.Stats().Attack)
	assert.Equal(t, 200, c.MaxHP())
	assert.Equal(t, 170, c.HP())
	assert.NotEmpty(t, rec.OfType(events.EventTypeStatsChanged))

	c.Ledger().Remove("attack_up")
	assert.Equal(t, 40, c.Stats().Attack)
}

func TestCombatant_EquipUnequip(t *testing.T) {
	c, _ := newCombatant(t, 1)
	hpRune := &equipment.Rune{ID: "hp", Slot: 2, Main: stats.Value{Type: stats.HP, Amount: 20}}

	displaced, err := c.Equip(hpRune)
	require.NoError(t, err)
	assert.Nil(t, displaced)
	assert.Equal(t, 120, c.MaxHP())
	assert.Equal(t, 120, c.HP())

	better := &equipment.Rune{ID: "hp2", Slot: 2, Main: stats.Value{Type: stats.HP, Amount: 50}}
	displaced, err = c.Equip(better)
	require.NoError(t, err)
	assert.Equal(t, hpRune, displaced)
	assert.Equal(t, 150, c.MaxHP())
	assert.Len(t, c.Runes(), 1)

	c.TakeDamage(140)
	assert.Equal(t, better, c.Unequip(2))
	assert.Equal(t, 100, c.MaxHP())
	assert.Equal(t, 1, c.HP(), "losing max HP never kills")
	assert.Nil(t, c.Unequip(2))

	_, err = c.Equip(&equipment.Rune{ID: "bad", Slot: 0, Main: stats.Value{Type: stats.HP, Amount: 1}})
	assert.Error(t, err)
}

func TestCombatant_DamageAndDeath(t *testing.T) {
	c, rec := newCombatant(t, 1)
	c.Ledger().Add(effects.BuildSleep(3))
	c.Ledger().Add(effects.BuildAttackUp(50, 3))

	assert.Equal(t, 10, c.TakeDamage(10))
	assert.False(t, c.Ledger().Has("sleep"), "sleep breaks on hit")
	assert.True(t, c.Ledger().Has("attack_up"))

	assert.Equal(t, 90, c.TakeDamage(500))
	assert.False(t, c.IsAlive())
	assert.Equal(t, 0, c.HP())
	assert.Equal(t, 0, c.Ledger().Len())
	assert.Len(t, rec.OfType(events.EventTypeDeath), 1)

	assert.Equal(t, 0, c.TakeDamage(5))
	assert.Equal(t, 0, c.Heal(5))
}

func TestCombatant_DrainSkipsCleanse(t *testing.T) {
	c, _ := newCombatant(t, 1)
	c.Ledger().Add(effects.BuildSleep(3))

	c.Drain(10)
	assert.True(t, c.Ledger().Has("sleep"))
}

func TestCombatant_EnergyAndCooldowns(t *testing.T) {
	c, _ := newCombatant(t, 1)

	c.AdjustEnergy(250)
	assert.Equal(t, 100, c.Energy())
	assert.True(t, c.SpendEnergy(60))
	assert.False(t, c.SpendEnergy(60))
	c.AdjustEnergy(-500)
	assert.Equal(t, 0, c.Energy())

	c.SetCooldown("blaze", 2)
	c.TickCooldowns()
	assert.Equal(t, 1, c.Cooldown("blaze"))
	c.TickCooldowns()
	c.TickCooldowns()
	assert.Equal(t, 0, c.Cooldown("blaze"))

	c.MarkActed()
	c.SetCooldown("blaze", 3)
	c.Ledger().Add(effects.BuildStun())
	c.EndBattle()
	assert.False(t, c.HasActed())
	assert.Equal(t, 0, c.Cooldown("blaze"))
	assert.Equal(t, 0, c.Ledger().Len())
}

func TestCombatant_HealClamps(t *testing.T) {
	c, _ := newCombatant(t, 1)
	c.TakeDamage(30)

	assert.Equal(t, 30, c.Heal(100))
	assert.Equal(t, 100, c.HP())
}
