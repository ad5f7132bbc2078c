package websockets

// MessageType defines the type of a WebSocket message.
type MessageType string

const (
	// MessageTypeBalanceUpdate is sent whenever a point balance changes.
	MessageTypeBalanceUpdate MessageType = "balanceUpdate"
)

// Message represents a generic WebSocket message.
type Message struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}

// BalanceUpdatePayload is the payload for a balanceUpdate message.
// ReferenceID is the reservation id for a debit and the task id for a reward.
type BalanceUpdatePayload struct {
	UserID      string `json:"user_id"`
	ReferenceID string `json:"reference_id"`
	Change      int64  `json:"change"`
	NewBalance  int64  `json:"new_balance"`
}
