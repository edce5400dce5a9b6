package equipment

import (
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/domain/stats"
	scerr "github.com/TheBluePapaSmurf/Soulcast-sub001/internal/errors"
)

const (
	SlotCount       = 6
	MaxSubStats     = 4
	MaxUpgradeLevel = 15
)

// Rarity controls how fast a rune's main stat grows per upgrade level
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

var growthByRarity = map[Rarity]float64{
	RarityCommon:    0.05,
	RarityRare:      0.07,
	RarityEpic:      0.09,
	RarityLegendary: 0.12,
}

// Growth returns the per-level main stat growth; unknown rarities grow as common
func (r Rarity) Growth() float64 {
	if g, ok := growthByRarity[r]; ok {
		return g
	}
	return growthByRarity[RarityCommon]
}

// slotMainStats fixes the only main stat each slot accepts
var slotMainStats = [SlotCount]stats.Type{
	stats.Attack,
	stats.Defense,
	stats.HP,
	stats.Speed,
	stats.CritRate,
	stats.CritDamage,
}

// SlotMainStat returns the main stat accepted by a slot
func SlotMainStat(slot int) (stats.Type, bool) {
	if slot < 0 || slot >= SlotCount {
		return "", false
	}
	return slotMainStats[slot], true
}

// Rune is a slot-bound equipment modifier.
// Exclusivity across combatants is owned by the collection, not by the combat core.
type Rune struct {
	ID           string        `json:"id" yaml:"id"`
	Slot         int           `json:"slot" yaml:"slot"`
	Main         stats.Value   `json:"main" yaml:"main"`
	Subs         []stats.Value `json:"subs" yaml:"subs"`
	UpgradeLevel int           `json:"upgrade_level" yaml:"upgrade_level"`
	Rarity       Rarity        `json:"rarity" yaml:"rarity"`
}

// LevelMultiplier scales the main stat by upgrade level and rarity growth
func (r *Rune) LevelMultiplier() float64 {
	level := r.UpgradeLevel
	if level < 0 {
		level = 0
	}
	if level > MaxUpgradeLevel {
		level = MaxUpgradeLevel
	}
	return 1 + float64(level)*r.Rarity.Growth()
}

// ScaledMain returns the main stat after upgrade scaling
func (r *Rune) ScaledMain() stats.Value {
	return r.Main.Scaled(r.LevelMultiplier())
}

// Validate checks slot/main stat pairing and stat shapes
func (r *Rune) Validate() error {
	if r == nil {
		return scerr.InvalidArgument("rune cannot be nil")
	}

	want, ok := SlotMainStat(r.Slot)
	if !ok {
		return scerr.Validationf("rune %s has invalid slot %d", r.ID, r.Slot).
			WithMeta("rune_id", r.ID)
	}
	if r.Main.Type != want {
		return scerr.Validationf("rune %s in slot %d must have main stat %s, got %s", r.ID, r.Slot, want, r.Main.Type).
			WithMeta("rune_id", r.ID)
	}
	if r.UpgradeLevel < 0 || r.UpgradeLevel > MaxUpgradeLevel {
		return scerr.Validationf("rune %s upgrade level %d out of range", r.ID, r.UpgradeLevel).
			WithMeta("rune_id", r.ID)
	}
	for _, sub := range r.Subs {
		if !sub.Type.IsValid() {
			return scerr.Validationf("rune %s has unknown sub stat %q", r.ID, sub.Type).
				WithMeta("rune_id", r.ID)
		}
	}
	return nil
}
