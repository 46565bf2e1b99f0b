package dto

// ChatPromptRequest mirrors what the answer service expects.
type ChatPromptRequest struct {
	Query string `json:"query" validate:"required"`
}

type ChatPromptResponse struct {
	Status string `json:"status"`
	Answer string `json:"answer"`
}

// Inbound frame on the chat websocket.
type ChatCommand struct {
	Type   string `json:"type"` // "send" | "cancel"
	Prompt string `json:"prompt,omitempty"`
}

// Outbound frame on the chat websocket.
type ChatStateFrame struct {
	Type string      `json:"type"` // always "state"
	Data interface{} `json:"data"`
}
