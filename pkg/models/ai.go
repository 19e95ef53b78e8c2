package models

// Insights is the structured book analysis returned by the AI adapter.
type Insights struct {
	Summary        string   `json:"summary"`
	KeyTakeaways   []string `json:"keyTakeaways"`
	FamousQuote    string   `json:"famousQuote"`
	TargetAudience string   `json:"targetAudience"`
}

// ChatMessage is one turn of a concierge conversation. Role is "user" or
// "model".
type ChatMessage struct {
	Role string `json:"role" binding:"required,oneof=user model"`
	Text string `json:"text" binding:"required"`
}

type ChatRequest struct {
	History []ChatMessage `json:"history" binding:"dive"`
	Message string        `json:"message" binding:"required"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}
