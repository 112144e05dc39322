package domain

// Lex dialog states the service cares about.
const (
	DialogStateElicitSlot          = "ElicitSlot"
	DialogStateConfirmIntent       = "ConfirmIntent"
	DialogStateReadyForFulfillment = "ReadyForFulfillment"
)

type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
	UserID    string `json:"userId"`
	Locale    string `json:"locale"`
}

// ChatResult is the bot's interpretation of one utterance.
type ChatResult struct {
	Message     string            `json:"message"`
	SessionID   string            `json:"sessionId"`
	Intent      string            `json:"intent,omitempty"`
	Slots       map[string]string `json:"slots,omitempty"`
	DialogState string            `json:"dialogState,omitempty"`

	IsElicitingSlot       bool `json:"isElicitingSlot"`
	IsConfirmingIntent    bool `json:"isConfirmingIntent"`
	IsReadyForFulfillment bool `json:"isReadyForFulfillment"`
}
