package battlelog

import (
	"encoding/json"
	"time"
)

// Record is one persisted battle event
type Record struct {
	BattleID  string          `json:"battle_id"`
	Seq       int             `json:"seq"`
	EventType string          `json:"event_type"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}
