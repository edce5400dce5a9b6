package battle

import (
	"time"

	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/effects"
)

// StepKind labels a presentation step
type StepKind string

const (
	StepWindUp   StepKind = "wind_up"
	StepHit      StepKind = "hit"
	StepHeal     StepKind = "heal"
	StepEffect   StepKind = "effect"
	StepSelfHeal StepKind = "self_heal"
)

// Step is one presentation hint. Delay is how long to wait after the step
// before playing the next one; state is already final when Resolve returns.
type Step struct {
	Kind      StepKind
	TargetID  string
	HitIndex  int
	Amount    int
	Critical  bool
	EffectKey string
	Outcome   effects.AddOutcome
	Delay     time.Duration
}

// HitResult is one resolved hit
type HitResult struct {
	TargetID  string
	HitIndex  int
	Base      int
	Elemental float64
	Critical  bool
	// Amount is the HP actually removed
	Amount int
	// Rolled is the mitigated damage before HP clamping
	Rolled int
}

// HealResult is one resolved heal
type HealResult struct {
	TargetID string
	Amount   int
}

// EffectApplication records one ledger add
type EffectApplication struct {
	TargetID  string
	EffectKey string
	Outcome   effects.AddOutcome
}

// ActionResult reports everything an ability use did
type ActionResult struct {
	AbilityKey string
	SourceID   string
	// Rejected is set when the use was refused; nothing changed
	Rejected Reason

	TargetIDs    []string
	Hits         []HitResult
	Heals        []HealResult
	Effects      []EffectApplication
	TotalDamage  int
	TotalHealing int
	Killed       []string

	Steps []Step
}

// Committed reports whether the ability actually resolved
func (r *ActionResult) Committed() bool {
	return r.Rejected == ReasonNone
}
