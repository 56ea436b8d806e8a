package entities

import "time"

// Topic groups change events by the collection that changed.
type Topic string

const (
	TopicLots        Topic = "lots"
	TopicHistory     Topic = "history"
	TopicLedger      Topic = "ledger"
	TopicObligations Topic = "obligations"
	TopicSettlement  Topic = "settlement"
)

// ChangeEvent is pushed to realtime subscribers after a successful write.
type ChangeEvent struct {
	Topic    Topic     `json:"topic"`
	Action   string    `json:"action"`
	EntityID string    `json:"entity_id"`
	At       time.Time `json:"at"`
	Payload  any       `json:"payload,omitempty"`
}
