package combatant

import (
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/domain/equipment"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/domain/stats"
)

// LevelGrowth is the per-level multiplier step for level-scaled stats
const LevelGrowth = 0.1

// LevelMultiplier returns 1 + (level-1) * 10%, uncapped. Levels below 1 count as 1.
func LevelMultiplier(level int) float64 {
	if level < 1 {
		level = 1
	}
	return 1 + float64(level-1)*LevelGrowth
}

// Compute is the effective-stat pipeline: level-scaled base plus the rune delta.
// Only HP/ATK/DEF/SPD scale with level. Percentage rune bonuses resolve
// against the unscaled base. Pure; callers re-run it after any input changes.
func Compute(base stats.Block, level int, runes []*equipment.Rune) stats.Block {
	mult := LevelMultiplier(level)

	var scaled stats.Block
	for _, t := range stats.All {
		v := base.Get(t)
		if t.LevelScaled() {
			v = stats.Round(float64(v) * mult)
		}
		scaled = scaled.Set(t, v)
	}

	return scaled.Add(equipment.Aggregate(base, runes))
}
