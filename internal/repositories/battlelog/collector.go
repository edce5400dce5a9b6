package battlelog

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/TheBluePapaSmurf/Soulcast-sub001/internal/events"
)

// Collector is an event listener that buffers a battle's events as records
// until Flush writes them out
type Collector struct {
	battleID string
	now      func() time.Time

	mu      sync.Mutex
	seq     int
	pending []*Record
}

// NewCollector creates a Collector for one battle
func NewCollector(battleID string) *Collector {
	return &Collector{
		battleID: battleID,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (c *Collector) ID() string    { return "battlelog-" + c.battleID }
func (c *Collector) Priority() int { return events.PriorityLogging }

func (c *Collector) HandleEvent(event events.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("[BATTLELOG] Dropping %s event: %v", event.GetType(), err)
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	c.pending = append(c.pending, &Record{
		BattleID:  c.battleID,
		Seq:       c.seq,
		EventType: string(event.GetType()),
		Payload:   payload,
		CreatedAt: c.now(),
	})
	return nil
}

// Pending returns how many records are waiting for Flush
func (c *Collector) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

// Flush appends buffered records to repo. On failure the buffer is kept.
func (c *Collector) Flush(ctx context.Context, repo Repository) error {
	c.mu.Lock()
	batch := c.pending
	c.pending = nil
	c.mu.Unlock()

	if err := repo.Append(ctx, batch); err != nil {
		c.mu.Lock()
		c.pending = append(batch, c.pending...)
		c.mu.Unlock()
		return err
	}
	return nil
}
