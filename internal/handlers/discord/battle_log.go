package discord

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/events"
)

// maxMessageLength is Discord's content limit per message, in characters
const maxMessageLength = 2000

// Sender is the part of *discordgo.Session the battle log posts through
type Sender interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

var _ Sender = (*discordgo.Session)(nil)

// NameFunc resolves a combatant ID to a display name
type NameFunc func(id string) string

// BattleLog is an event listener that turns battle events into readable lines
// and posts them to a channel in batches
type BattleLog struct {
	sender    Sender
	channelID string
	names     NameFunc
	title     cases.Caser

	mu    sync.Mutex
	lines []string
}

// NewBattleLog creates a battle log for one channel. A nil sender keeps lines
// in memory only.
func NewBattleLog(sender Sender, channelID string, names NameFunc) *BattleLog {
	if names == nil {
		names = func(id string) string { return id }
	}
	return &BattleLog{
		sender:    sender,
		channelID: channelID,
		names:     names,
		title:     cases.Title(language.English),
	}
}

func (b *BattleLog) ID() string    { return "discord-battle-log" }
func (b *BattleLog) Priority() int { return events.PriorityPresentation }

func (b *BattleLog) HandleEvent(event events.Event) error {
	line, ok := b.Format(event)
	if !ok {
		return nil
	}

	b.mu.Lock()
	b.lines = append(b.lines, line)
	b.mu.Unlock()
	return nil
}

// abilityName turns flame_burst into Flame Burst
func (b *BattleLog) abilityName(key string) string {
	return b.title.String(strings.ReplaceAll(key, "_", " "))
}

// Format renders one event; stat refreshes and unknown events are not shown
func (b *BattleLog) Format(event events.Event) (string, bool) {
	switch e := event.(type) {
	case *events.TurnStartedEvent:
		if !e.Alive {
			return "", false
		}
		return fmt.Sprintf("**%s**'s turn (energy %d)", b.names(e.CombatantID), e.Energy), true

	case *events.ActionResolvedEvent:
		if e.Rejected != "" {
			return fmt.Sprintf("%s could not use %s (%s)",
				b.names(e.SourceID), b.abilityName(e.AbilityKey), strings.ReplaceAll(e.Rejected, "_", " ")), true
		}
		return fmt.Sprintf("%s used **%s**", b.names(e.SourceID), b.abilityName(e.AbilityKey)), true

	case *events.HitResolvedEvent:
		return b.formatHit(e), true

	case *events.EffectAddedEvent:
		verb := "gains"
		if e.Refreshed {
			verb = "refreshes"
		}
		if e.Stacks > 1 {
			return fmt.Sprintf("%s %s %s x%d", b.names(e.CombatantID), verb, b.abilityName(e.EffectKey), e.Stacks), true
		}
		return fmt.Sprintf("%s %s %s", b.names(e.CombatantID), verb, b.abilityName(e.EffectKey)), true

	case *events.EffectRemovedEvent:
		if !e.Expired {
			return "", false
		}
		return fmt.Sprintf("%s's %s wore off", b.names(e.CombatantID), b.abilityName(e.EffectKey)), true

	case *events.EffectResistedEvent:
		return fmt.Sprintf("%s resisted %s", b.names(e.CombatantID), b.abilityName(e.EffectKey)), true

	case *events.DeathEvent:
		return fmt.Sprintf("💀 %s was defeated", b.names(e.CombatantID)), true
	}
	return "", false
}

func (b *BattleLog) formatHit(e *events.HitResolvedEvent) string {
	target := b.names(e.TargetID)

	if e.Periodic {
		if e.Heal {
			return fmt.Sprintf("%s recovers %d from %s", target, e.Amount, b.abilityName(e.AbilityKey))
		}
		return fmt.Sprintf("%s takes %d from %s", target, e.Amount, b.abilityName(e.AbilityKey))
	}
	if e.Heal {
		return fmt.Sprintf("%s heals %s for %d", b.names(e.SourceID), target, e.Amount)
	}

	var tags []string
	if e.Critical {
		tags = append(tags, "critical")
	}
	switch {
	case e.Elemental > 1:
		tags = append(tags, "super effective")
	case e.Elemental < 1:
		tags = append(tags, "resisted")
	}

	line := fmt.Sprintf("%s hits %s for %d", b.names(e.SourceID), target, e.Amount)
	if len(tags) > 0 {
		line += " (" + strings.Join(tags, ", ") + ")"
	}
	return line
}

// Lines returns a copy of the unposted lines
func (b *BattleLog) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// truncate cuts s to at most n characters without splitting a rune
func truncate(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

// chunk packs lines into messages under the Discord length limit
func chunk(lines []string) []string {
	var (
		out     []string
		current strings.Builder
		size    int
	)
	for _, line := range lines {
		line = truncate(line, maxMessageLength)
		n := utf8.RuneCountInString(line)

		if size > 0 && size+1+n > maxMessageLength {
			out = append(out, current.String())
			current.Reset()
			size = 0
		}
		if size > 0 {
			current.WriteByte('\n')
			size++
		}
		current.WriteString(line)
		size += n
	}
	if current.Len() > 0 {
		out = append(out, current.String())
	}
	return out
}

// Flush posts every buffered line. Lines are dropped once handed to the
// sender; a failed post is logged and returned.
func (b *BattleLog) Flush() error {
	b.mu.Lock()
	lines := b.lines
	b.lines = nil
	b.mu.Unlock()

	if b.sender == nil || len(lines) == 0 {
		return nil
	}

	for _, msg := range chunk(lines) {
		if _, err := b.sender.ChannelMessageSend(b.channelID, msg); err != nil {
			log.Printf("Failed to post battle log to channel %s: %v", b.channelID, err)
			return fmt.Errorf("posting battle log: %w", err)
		}
	}
	return nil
}

// PostResult sends a closing summary embed
func (b *BattleLog) PostResult(battleID, winner string, rounds int) error {
	if b.sender == nil {
		return nil
	}

	description := fmt.Sprintf("Team **%s** wins after %d rounds", winner, rounds)
	if winner == "" {
		description = fmt.Sprintf("No team left standing after %d rounds", rounds)
	}

	embed := &discordgo.MessageEmbed{
		Title:       "⚔️ Battle Over",
		Description: description,
		Color:       0x2ecc71,
		Footer:      &discordgo.MessageEmbedFooter{Text: "Battle " + battleID},
	}
	if _, err := b.sender.ChannelMessageSendEmbed(b.channelID, embed); err != nil {
		return fmt.Errorf("posting battle result: %w", err)
	}
	return nil
}
