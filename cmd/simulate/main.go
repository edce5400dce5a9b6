package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/config"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/db"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/dice"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/events"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/handlers/discord"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/repositories/battlelog"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/repositories/roster"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/rulebook"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/services/battle"
	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/uuid"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	rb, err := rulebook.Load(cfg.Rulebook.Path)
	if err != nil {
		log.Fatalf("Failed to load rulebook: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStores(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer st.close()

	if err := seedDemo(ctx, st.roster); err != nil {
		log.Fatalf("Failed to seed demo roster: %v", err)
	}

	if err := run(ctx, cfg, rb, st); err != nil {
		log.Fatalf("Battle failed: %v", err)
	}
}

func run(ctx context.Context, cfg *config.Config, rb *rulebook.Rulebook, st *stores) error {
	bus := events.NewBus()
	battleID := uuid.NewGoogleUUIDGenerator().New()

	collector := battlelog.NewCollector(battleID)
	bus.SubscribeAll(collector)

	var session *battle.Session
	names := func(id string) string {
		if session == nil {
			return id
		}
		c, err := session.Combatant(id)
		if err != nil {
			return id
		}
		return c.Name()
	}

	var sender discord.Sender
	if cfg.Discord.Enabled() {
		dg, err := discordgo.New("Bot " + cfg.Discord.Token)
		if err != nil {
			return fmt.Errorf("creating Discord session: %w", err)
		}
		sender = dg
		log.Printf("Posting battle log to channel %s", cfg.Discord.ChannelID)
	}
	battleLog := discord.NewBattleLog(sender, cfg.Discord.ChannelID, names)
	bus.SubscribeAll(battleLog)

	roller := dice.NewRandomRoller()
	if cfg.Battle.Seed != 0 {
		roller = dice.NewSeededRoller(cfg.Battle.Seed)
		log.Printf("Using seeded roller: %d", cfg.Battle.Seed)
	}

	setup, err := battle.NewSetup(&battle.SetupConfig{
		Roster:  st.roster,
		Catalog: rb,
		Emitter: bus,
	})
	if err != nil {
		return err
	}

	regen := cfg.Battle.EnergyRegen
	session, err = setup.NewBattle(ctx, &battle.SessionConfig{
		ID:       battleID,
		Resolver: battle.NewResolver(&battle.ResolverConfig{Roller: roller, Emitter: bus}),
		Turns:    battle.NewTurnController(&battle.TurnConfig{EnergyRegen: &regen, Emitter: bus}),
	}, demoTeams...)
	if err != nil {
		return err
	}

	var wait battle.WaitFunc
	if limit := cfg.Battle.HitDelay; limit > 0 {
		wait = func(ctx context.Context, d time.Duration) error {
			return battle.SleepWait(ctx, min(d, limit))
		}
	}

	outcome, err := battle.Auto(ctx, session, &battle.AutoConfig{
		MaxRounds: cfg.Battle.MaxRounds,
		Wait:      wait,
	})
	if err != nil {
		return err
	}

	for _, line := range battleLog.Lines() {
		fmt.Println(line)
	}
	if outcome.Decided {
		fmt.Printf("\nTeam %s wins after %d rounds (%d actions)\n", outcome.Winner, outcome.Rounds, outcome.Actions)
	} else {
		fmt.Printf("\nNo winner after %d rounds\n", outcome.Rounds)
	}

	// Presentation failures never fail the battle
	if err := battleLog.Flush(); err != nil {
		log.Printf("Failed to flush battle log: %v", err)
	}
	if err := battleLog.PostResult(battleID, outcome.Winner, outcome.Rounds); err != nil {
		log.Printf("Failed to post battle result: %v", err)
	}

	if err := collector.Flush(ctx, st.logs); err != nil {
		return fmt.Errorf("saving battle log: %w", err)
	}
	records, err := st.logs.ListByBattle(ctx, battleID)
	if err != nil {
		return fmt.Errorf("reading battle log: %w", err)
	}
	log.Printf("Saved %d battle log records for %s", len(records), battleID)
	return nil
}

type stores struct {
	roster roster.Repository
	logs   battlelog.Repository
	close  func()
}

func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	switch cfg.Storage {
	case config.StorageRedis:
		var opts *redis.Options
		if cfg.Redis.URL != "" {
			parsed, err := redis.ParseURL(cfg.Redis.URL)
			if err != nil {
				return nil, fmt.Errorf("parsing Redis URL: %w", err)
			}
			opts = parsed
		} else {
			opts = &redis.Options{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			}
		}
		client := redis.NewClient(opts)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("connecting to Redis: %w", err)
		}
		log.Println("Using Redis for the roster, battle logs stay in memory")

		return &stores{
			roster: roster.NewRedis(client, nil),
			logs:   battlelog.NewInMemory(),
			close: func() {
				if err := client.Close(); err != nil {
					log.Printf("Error closing Redis connection: %v", err)
				}
			},
		}, nil

	case config.StoragePostgres:
		pool, err := db.Connect(ctx, cfg.Database.URL)
		if err != nil {
			return nil, err
		}
		if err := db.RunMigrationsOnPool(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		log.Println("Using PostgreSQL for the roster and battle logs")

		return &stores{
			roster: roster.NewPostgres(pool, nil),
			logs:   battlelog.NewPostgres(pool),
			close:  pool.Close,
		}, nil
	}

	log.Println("Using in-memory storage")
	return &stores{
		roster: roster.NewInMemory(nil),
		logs:   battlelog.NewInMemory(),
		close:  func() {},
	}, nil
}
