package testutils

import (
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/domain/equipment"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/domain/stats"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/repositories/roster"
)

// CreateTestRune creates a valid rune whose main stat matches its slot
func CreateTestRune(id string, slot int, amount float64) *equipment.Rune {
	main, _ := equipment.SlotMainStat(slot)
	return &equipment.Rune{
		ID:     id,
		Slot:   slot,
		Main:   stats.Value{Type: main, Amount: amount},
		Rarity: equipment.RarityCommon,
	}
}

// CreateTestEntry creates a level 10 two-star entry with an attack rune
func CreateTestEntry(id, ownerID, speciesKey string) *roster.Entry {
	return &roster.Entry{
		ID:         id,
		OwnerID:    ownerID,
		SpeciesKey: speciesKey,
		Nickname:   id,
		Level:      10,
		Stars:      2,
		Runes: []*equipment.Rune{
			CreateTestRune(id+"-atk", 0, 12),
		},
	}
}
