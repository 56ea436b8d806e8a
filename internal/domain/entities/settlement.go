package entities

import "time"

// SettlementOpportunity is raised when a lot's payment is toggled to ok.
// The caller must drive the settlement prompt for it.
type SettlementOpportunity struct {
	LotID  string    `json:"lot_id"`
	Client string    `json:"client"`
	At     time.Time `json:"at"`
}

// PromptState is the state of a settlement prompt.
type PromptState string

const (
	PromptIdle      PromptState = "idle"
	PromptOffered   PromptState = "offered"
	PromptConfirmed PromptState = "confirmed"
	PromptCancelled PromptState = "cancelled"
	PromptDismissed PromptState = "dismissed"
)

// SettlementPrompt is the observable view of a prompt.
type SettlementPrompt struct {
	LotID     string      `json:"lot_id"`
	State     PromptState `json:"state"`
	OfferedAt time.Time   `json:"offered_at"`
	ExpiresAt time.Time   `json:"expires_at"`
}
