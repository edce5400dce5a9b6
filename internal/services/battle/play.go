package battle

import (
	"context"
	"time"
)

// WaitFunc blocks for d or until ctx is done
type WaitFunc func(ctx context.Context, d time.Duration) error

// SleepWait waits against the wall clock
func SleepWait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Play hands each step to fn and waits out its delay before the next one.
// A nil wait collapses every delay, which is what headless callers want.
// Combat state is already final; cancelling only stops the playback.
func Play(ctx context.Context, steps []Step, wait WaitFunc, fn func(Step) error) error {
	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(step); err != nil {
			return err
		}
		if wait == nil || step.Delay <= 0 || i == len(steps)-1 {
			continue
		}
		if err := wait(ctx, step.Delay); err != nil {
			return err
		}
	}
	return nil
}
