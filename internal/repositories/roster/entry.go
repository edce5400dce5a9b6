package roster

import (
	"time"

	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/domain/combatant"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/domain/equipment"
	scerr "github.com/TheBluePapaSmurf/Soulcast-sub001/internal/errors"
)

// Entry is one owned monster in a player's collection
type Entry struct {
	ID          string            `json:"id"`
	OwnerID     string            `json:"owner_id"`
	SpeciesKey  string            `json:"species_key"`
	Nickname    string            `json:"nickname,omitempty"`
	Level       int               `json:"level"`
	Stars       int               `json:"stars"`
	StartEnergy int               `json:"start_energy,omitempty"`
	Runes       []*equipment.Rune `json:"runes,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// Validate checks the entry before it is stored
func (e *Entry) Validate() error {
	if e == nil {
		return scerr.InvalidArgument("entry cannot be nil")
	}
	if e.ID == "" {
		return scerr.InvalidArgument("entry must have an ID")
	}
	if e.OwnerID == "" || e.SpeciesKey == "" {
		return scerr.Validationf("entry %s needs owner and species", e.ID).WithMeta("entry_id", e.ID)
	}
	if e.Stars < combatant.MinStars || e.Stars > combatant.MaxStars {
		return scerr.Validationf("entry %s has %d stars", e.ID, e.Stars).WithMeta("entry_id", e.ID)
	}
	if e.Level < 1 || e.Level > e.Stars*10 {
		return scerr.Validationf("entry %s level %d exceeds %d-star cap", e.ID, e.Level, e.Stars).WithMeta("entry_id", e.ID)
	}

	slots := make(map[int]bool, len(e.Runes))
	for _, r := range e.Runes {
		if err := r.Validate(); err != nil {
			return scerr.Wrapf(err, "entry %s", e.ID)
		}
		if slots[r.Slot] {
			return scerr.Validationf("entry %s has two runes in slot %d", e.ID, r.Slot).WithMeta("entry_id", e.ID)
		}
		slots[r.Slot] = true
	}
	return nil
}
