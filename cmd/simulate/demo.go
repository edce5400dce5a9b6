package main

import (
	"context"
	"log"

	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/domain/equipment"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/domain/stats"
	scerr "github.com/TheBluePapaSmurf/Soulcast-sub001/internal/errors"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/repositories/roster"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/services/battle"
)

const demoOwner = "demo"

var demoTeams = []battle.Team{
	{Name: "red", EntryIDs: []string{"demo-emberfox", "demo-mossback", "demo-lumenmoth"}},
	{Name: "blue", EntryIDs: []string{"demo-tidecrab", "demo-shadecat"}},
}

func demoRune(id string, slot int, main stats.Value, subs ...stats.Value) *equipment.Rune {
	return &equipment.Rune{ID: id, Slot: slot, Main: main, Subs: subs, UpgradeLevel: 6, Rarity: equipment.RarityRare}
}

func flat(t stats.Type, v float64) stats.Value { return stats.Value{Type: t, Amount: v} }
func pct(t stats.Type, v float64) stats.Value  { return stats.Value{Type: t, Amount: v, Percentage: true} }

func demoEntries() []*roster.Entry {
	return []*roster.Entry{
		{
			ID: "demo-emberfox", OwnerID: demoOwner, SpeciesKey: "emberfox", Nickname: "Cinder",
			Level: 20, Stars: 3, StartEnergy: 50,
			Runes: []*equipment.Rune{
				demoRune("cinder-atk", 0, flat(stats.Attack, 25), pct(stats.Speed, 5)),
				demoRune("cinder-cr", 4, flat(stats.CritRate, 12), flat(stats.CritDamage, 10)),
			},
		},
		{
			ID: "demo-mossback", OwnerID: demoOwner, SpeciesKey: "mossback", Nickname: "Bramble",
			Level: 18, Stars: 2,
			Runes: []*equipment.Rune{
				demoRune("bramble-def", 1, flat(stats.Defense, 20)),
				demoRune("bramble-hp", 2, pct(stats.HP, 15), flat(stats.Defense, 5)),
			},
		},
		{
			ID: "demo-lumenmoth", OwnerID: demoOwner, SpeciesKey: "lumenmoth", Nickname: "Glimmer",
			Level: 16, Stars: 2, StartEnergy: 100,
			Runes: []*equipment.Rune{
				demoRune("glimmer-spd", 3, flat(stats.Speed, 8)),
			},
		},
		{
			ID: "demo-tidecrab", OwnerID: demoOwner, SpeciesKey: "tidecrab", Nickname: "Pincer",
			Level: 22, Stars: 3,
			Runes: []*equipment.Rune{
				demoRune("pincer-hp", 2, pct(stats.HP, 20)),
				demoRune("pincer-def", 1, flat(stats.Defense, 30), pct(stats.HP, 5)),
			},
		},
		{
			ID: "demo-shadecat", OwnerID: demoOwner, SpeciesKey: "shadecat", Nickname: "Umbra",
			Level: 24, Stars: 3, StartEnergy: 25,
			Runes: []*equipment.Rune{
				demoRune("umbra-atk", 0, flat(stats.Attack, 30)),
				demoRune("umbra-cd", 5, flat(stats.CritDamage, 20), flat(stats.CritRate, 6)),
			},
		},
	}
}

// seedDemo stores the demo entries; entries already present are left alone
func seedDemo(ctx context.Context, repo roster.Repository) error {
	created := 0
	for _, entry := range demoEntries() {
		err := repo.Create(ctx, entry)
		switch {
		case scerr.IsAlreadyExists(err):
			continue
		case err != nil:
			return err
		}
		created++
	}
	log.Printf("Seeded %d demo roster entries", created)
	return nil
}
