package equipment

import (
	"log"

	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/domain/stats"
)

// Aggregate reduces an equipped rune set into a single additive delta.
// Percentage bonuses resolve against base; runes that fail validation or that
// collide with an already-filled slot are skipped.
func Aggregate(base stats.Block, runes []*Rune) stats.Block {
	var delta stats.Block
	var filled [SlotCount]bool

	for _, r := range runes {
		if r == nil {
			continue
		}
		if err := r.Validate(); err != nil {
			log.Printf("[RUNES] Skipping rune: %v", err)
			continue
		}
		if filled[r.Slot] {
			log.Printf("[RUNES] Skipping rune %s: slot %d already filled", r.ID, r.Slot)
			continue
		}
		filled[r.Slot] = true

		main := r.ScaledMain()
		delta = delta.With(main.Type, main.Contribution(base))

		subs := r.Subs
		if len(subs) > MaxSubStats {
			log.Printf("[RUNES] Rune %s has %d sub stats, reading first %d", r.ID, len(subs), MaxSubStats)
			subs = subs[:MaxSubStats]
		}
		for _, sub := range subs {
			delta = delta.With(sub.Type, sub.Contribution(base))
		}
	}

	return delta
}
