package effects

import (
	"testing"

	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/domain/element"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/domain/stats"
	mockeffects "github.com/TheBluePapaSmurf/Soulcast-sub001/internal/effects/mock"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/events"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// testBearer is a minimal combatant that kills and clears on zero HP
type testBearer struct {
	id      string
	el      element.Element
	base    stats.Block
	current stats.Block
	hp      int
	energy  int
	alive   bool
	ledger  *Ledger
}

func newTestBearer(base stats.Block) (*testBearer, *events.Recorder) {
	b := &testBearer{id: "mon-1", el: element.Water, base: base, current: base, hp: base.HP, alive: true}
	bus := events.NewBus()
	rec := events.NewRecorder("test")
	bus.SubscribeAll(rec)
	b.ledger = NewLedger(b, &LedgerConfig{Emitter: bus, IDs: uuid.NewSequenceGenerator("fx")})
	return b, rec
}

func (b *testBearer) ID() string               { return b.id }
func (b *testBearer) Element() element.Element { return b.el }
func (b *testBearer) BaseStats() stats.Block   { return b.base }
func (b *testBearer) MaxHP() int               { return b.current.HP }
func (b *testBearer) IsAlive() bool            { return b.alive }

func (b *testBearer) ApplyStandingDelta(delta stats.Block) {
	b.current = b.current.Add(delta)
}

func (b *testBearer) Heal(amount int) int {
	before := b.hp
	b.hp = min(b.hp+amount, b.MaxHP())
	return b.hp - before
}

func (b *testBearer) Drain(amount int) int {
	dealt := min(amount, b.hp)
	b.hp -= dealt
	if b.hp == 0 {
		b.alive = false
		b.ledger.Clear()
	}
	return dealt
}

func (b *testBearer) AdjustEnergy(delta int) {
	b.energy = max(0, min(b.energy+delta, b.current.Energy))
}

func TestLedger_AttackBuffIsReversible(t *testing.T) {
	b, rec := newTestBearer(stats.Block{HP: 100, Attack: 20})

	outcome := b.ledger.Add(BuildAttackUp(50, 2))
	assert.Equal(t, OutcomeApplied, outcome)
	assert.Equal(t, 30, b.current.Attack)

	assert.Equal(t, 1, b.ledger.Remove("attack_up"))
	assert.Equal(t, 20, b.current.Attack)

	assert.Len(t, rec.OfType(events.EventTypeEffectAdded), 1)
	assert.Len(t, rec.OfType(events.EventTypeEffectRemoved), 1)
}

func TestLedger_ReversibilityAcrossBases(t *testing.T) {
	defs := []*Definition{
		BuildAttackUp(33, 2),
		BuildDefenseBreak(27, 2),
		NewBuilder("haste").Buff().AddPercentModifier(stats.Speed, 15).AddModifier(stats.Speed, 3).Build(),
		NewBuilder("mixed").Buff().
			AddPercentModifier(stats.Attack, 12.5).
			AddModifier(stats.Defense, -4).
			AddPercentModifier(stats.Speed, -7).
			Build(),
	}

	for _, def := range defs {
		for base := 0; base <= 150; base += 7 {
			block := stats.Block{HP: 100, Attack: base, Defense: base + 3, Speed: base / 2}
			b, _ := newTestBearer(block)
			b.current.Attack += 5 // current need not equal base

			before := b.current
			b.ledger.Add(def)
			b.ledger.Remove(def.Key)

			assert.Equal(t, before, b.current, "%s at base %d", def.Key, base)
		}
	}
}

func TestLedger_StackBound(t *testing.T) {
	b, _ := newTestBearer(stats.Block{HP: 1000})
	def := BuildPoison(5, 3, 3)

	for i := 0; i < 3; i++ {
		assert.Equal(t, OutcomeApplied, b.ledger.Add(def))
	}
	assert.Equal(t, OutcomeMaxStacks, b.ledger.Add(def))
	assert.Equal(t, OutcomeMaxStacks, b.ledger.Add(def))
	assert.Equal(t, 3, b.ledger.Stacks("poison"))
}

func TestLedger_NonStackableRefreshes(t *testing.T) {
	b, rec := newTestBearer(stats.Block{HP: 100, Attack: 20})
	def := BuildAttackUp(50, 3)

	b.ledger.Add(def)
	b.ledger.Tick()
	require.Equal(t, 2, b.ledger.Instances()[0].Remaining)

	assert.Equal(t, OutcomeRefreshed, b.ledger.Add(def))
	assert.Equal(t, 1, b.ledger.Stacks("attack_up"))
	assert.Equal(t, 3, b.ledger.Instances()[0].Remaining)
	assert.Equal(t, 30, b.current.Attack)

	added := rec.OfType(events.EventTypeEffectAdded)
	require.Len(t, added, 2)
	assert.True(t, added[1].(*events.EffectAddedEvent).Refreshed)
}

func TestLedger_DamageOverTimeUsesMaxHP(t *testing.T) {
	b, rec := newTestBearer(stats.Block{HP: 1000})
	b.hp = 400

	b.ledger.Add(BuildPoison(5, 3, 3))
	b.ledger.Tick()

	assert.Equal(t, 350, b.hp)

	hits := rec.OfType(events.EventTypeHitResolved)
	require.Len(t, hits, 1)
	hit := hits[0].(*events.HitResolvedEvent)
	assert.True(t, hit.Periodic)
	assert.Equal(t, 50, hit.Amount)
}

func TestLedger_FlatDamageAndHeal(t *testing.T) {
	b, _ := newTestBearer(stats.Block{HP: 200})
	b.hp = 100

	b.ledger.Add(NewBuilder("burn").Debuff().WithDuration(2).WithDamagePerTurn(Periodic{Flat: 15}).Build())
	b.ledger.Add(BuildRegeneration(10, 2))
	b.ledger.Tick()

	// -15 then +20
	assert.Equal(t, 105, b.hp)
}

func TestLedger_DamageOverTimeKillStopsTick(t *testing.T) {
	b, rec := newTestBearer(stats.Block{HP: 1000})
	b.hp = 30

	b.ledger.Add(BuildPoison(5, 3, 3))
	b.ledger.Add(BuildRegeneration(10, 3))
	b.ledger.Tick()

	assert.False(t, b.alive)
	assert.Equal(t, 0, b.hp)
	assert.Equal(t, 0, b.ledger.Len())
	assert.Len(t, rec.OfType(events.EventTypeHitResolved), 1, "heal must not run after death")
}

func TestLedger_ActionPreventionExpires(t *testing.T) {
	b, rec := newTestBearer(stats.Block{HP: 100})

	b.ledger.Add(BuildStun())
	assert.True(t, b.ledger.IsActionPrevented())

	b.ledger.Tick()
	assert.False(t, b.ledger.IsActionPrevented())

	removed := rec.OfType(events.EventTypeEffectRemoved)
	require.Len(t, removed, 1)
	assert.True(t, removed[0].(*events.EffectRemovedEvent).Expired)
}

func TestLedger_ExpiryRemovesWholeEffect(t *testing.T) {
	b, rec := newTestBearer(stats.Block{HP: 1000, Attack: 100})
	poison := BuildPoison(1, 2, 3)
	rally := NewBuilder("rally").Buff().WithDuration(3).Stackable(3).AddModifier(stats.Attack, 10).Build()

	b.ledger.Add(poison)
	b.ledger.Add(rally)
	b.ledger.Tick()
	b.ledger.Add(poison)
	b.ledger.Add(rally)
	require.Equal(t, 2, b.ledger.Stacks("poison"))
	require.Equal(t, 120, b.current.Attack)

	// the older poison stack runs out and takes the fresher one with it
	b.ledger.Tick()
	assert.Zero(t, b.ledger.Stacks("poison"))
	assert.Equal(t, 2, b.ledger.Stacks("rally"))

	// both rally stacks are reversed when the first one expires
	b.ledger.Tick()
	assert.Zero(t, b.ledger.Len())
	assert.Equal(t, 100, b.current.Attack)

	removed := rec.OfType(events.EventTypeEffectRemoved)
	require.Len(t, removed, 2)
	assert.Equal(t, 2, removed[0].(*events.EffectRemovedEvent).Count)
	assert.True(t, removed[0].(*events.EffectRemovedEvent).Expired)
}

func TestLedger_PermanentAndZeroDuration(t *testing.T) {
	b, _ := newTestBearer(stats.Block{HP: 100, Attack: 10})

	b.ledger.Add(NewBuilder("aura").Buff().Permanent().AddModifier(stats.Attack, 5).Build())
	b.ledger.Add(NewBuilder("flash").Buff().WithDuration(0).Build())

	b.ledger.Tick()
	assert.False(t, b.ledger.Has("flash"))

	for i := 0; i < 10; i++ {
		b.ledger.Tick()
	}
	assert.True(t, b.ledger.Has("aura"))
	assert.Equal(t, PermanentTurns, b.ledger.Instances()[0].Remaining)
	assert.Equal(t, 15, b.current.Attack)
}

func TestLedger_Resisted(t *testing.T) {
	b, rec := newTestBearer(stats.Block{HP: 100, Attack: 10})
	def := NewBuilder("drown").Debuff().ResistedBy(element.Water).AddModifier(stats.Attack, -5).Build()

	assert.Equal(t, OutcomeResisted, b.ledger.Add(def))
	assert.Equal(t, 0, b.ledger.Len())
	assert.Equal(t, 10, b.current.Attack)
	require.Len(t, rec.OfType(events.EventTypeEffectResisted), 1)
}

func TestLedger_NoOps(t *testing.T) {
	b, rec := newTestBearer(stats.Block{HP: 100})

	assert.Equal(t, 0, b.ledger.Remove("missing"))
	assert.Equal(t, OutcomeSkipped, b.ledger.Add(nil))
	assert.Empty(t, rec.Events())

	b.alive = false
	assert.Equal(t, OutcomeSkipped, b.ledger.Add(BuildStun()))
}

func TestLedger_OneShotHPAndEnergy(t *testing.T) {
	b, _ := newTestBearer(stats.Block{HP: 100, Energy: 100})
	b.hp = 50
	def := NewBuilder("surge").Buff().
		AddPercentModifier(stats.HP, 10).
		AddModifier(stats.Energy, 30).
		Build()

	b.ledger.Add(def)
	assert.Equal(t, 60, b.hp)
	assert.Equal(t, 30, b.energy)
	assert.True(t, b.ledger.StandingDelta().IsZero())

	b.ledger.Remove("surge")
	assert.Equal(t, 60, b.hp)
	assert.Equal(t, 30, b.energy)
}

func TestLedger_CleanseTriggers(t *testing.T) {
	b, _ := newTestBearer(stats.Block{HP: 100, Attack: 20})

	b.ledger.Add(BuildSleep(3))
	b.ledger.Add(BuildAttackUp(50, 3))
	b.ledger.Add(NewBuilder("focus").Buff().WithDuration(3).ClearsOnAction().Build())

	assert.Equal(t, 1, b.ledger.OnDamageTaken())
	assert.False(t, b.ledger.IsActionPrevented())

	assert.Equal(t, 1, b.ledger.OnOwnAction())
	assert.False(t, b.ledger.Has("focus"))

	b.ledger.Add(BuildDefenseBreak(10, 2))
	assert.Equal(t, 1, b.ledger.Cleanse(ClassificationDebuff))
	assert.Equal(t, 1, b.ledger.Cleanse(ClassificationBuff))
	assert.Equal(t, 20, b.current.Attack)
}

func TestLedger_ClearDoesNotReverse(t *testing.T) {
	b, rec := newTestBearer(stats.Block{HP: 100, Attack: 20})

	b.ledger.Add(BuildAttackUp(50, 3))
	b.ledger.Clear()

	assert.Equal(t, 0, b.ledger.Len())
	assert.Equal(t, 30, b.current.Attack)
	assert.True(t, b.ledger.StandingDelta().IsZero())
	assert.Len(t, rec.OfType(events.EventTypeEffectRemoved), 1)
}

func TestLedger_MockBearerDeltas(t *testing.T) {
	ctrl := gomock.NewController(t)
	bearer := mockeffects.NewMockBearer(ctrl)

	base := stats.Block{HP: 100, Attack: 40, Defense: 10}
	bearer.EXPECT().ID().Return("mon-9").AnyTimes()
	bearer.EXPECT().IsAlive().Return(true).AnyTimes()
	bearer.EXPECT().Element().Return(element.Fire).AnyTimes()
	bearer.EXPECT().BaseStats().Return(base).AnyTimes()

	gomock.InOrder(
		bearer.EXPECT().ApplyStandingDelta(stats.Block{Attack: 10, Defense: -2}),
		bearer.EXPECT().ApplyStandingDelta(stats.Block{Attack: -10, Defense: 2}),
	)

	ledger := NewLedger(bearer, nil)
	def := NewBuilder("frenzy").Buff().
		AddPercentModifier(stats.Attack, 25).
		AddPercentModifier(stats.Defense, -20).
		Build()

	assert.Equal(t, OutcomeApplied, ledger.Add(def))
	assert.Equal(t, stats.Block{Attack: 10, Defense: -2}, ledger.StandingDelta())
	assert.Equal(t, 1, ledger.Remove("frenzy"))
}
