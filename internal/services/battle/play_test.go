package battle_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/services/battle"
)

func TestPlay(t *testing.T) {
	steps := []battle.Step{
		{Kind: battle.StepWindUp},
		{Kind: battle.StepHit, HitIndex: 0, Delay: 100 * time.Millisecond},
		{Kind: battle.StepHit, HitIndex: 1, Delay: 100 * time.Millisecond},
		{Kind: battle.StepHit, HitIndex: 2, Delay: 100 * time.Millisecond},
	}

	t.Run("waits between steps but not after the last", func(t *testing.T) {
		var waited []time.Duration
		wait := func(_ context.Context, d time.Duration) error {
			waited = append(waited, d)
			return nil
		}

		var played []battle.StepKind
		err := battle.Play(context.Background(), steps, wait, func(s battle.Step) error {
			played = append(played, s.Kind)
			return nil
		})
		require.NoError(t, err)
		assert.Len(t, played, 4)
		assert.Equal(t, []time.Duration{100 * time.Millisecond, 100 * time.Millisecond}, waited)
	})

	t.Run("nil wait collapses delays", func(t *testing.T) {
		count := 0
		err := battle.Play(context.Background(), steps, nil, func(battle.Step) error {
			count++
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 4, count)
	})

	t.Run("callback error stops playback", func(t *testing.T) {
		boom := errors.New("boom")
		count := 0
		err := battle.Play(context.Background(), steps, nil, func(battle.Step) error {
			count++
			if count == 2 {
				return boom
			}
			return nil
		})
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 2, count)
	})

	t.Run("cancelled context stops sleeping", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		count := 0
		err := battle.Play(ctx, steps, battle.SleepWait, func(battle.Step) error {
			count++
			if count == 2 {
				cancel()
			}
			return nil
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 2, count)
	})
}
