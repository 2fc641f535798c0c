// File: internal/chat/model.go
package chat

// Message roles understood by the inference endpoint.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// SystemPrompt is sent ahead of every user message.
const SystemPrompt = "You are a friendly coffee expert. Keep answers short."

// FallbackResponse is returned whenever the inference endpoint cannot answer.
const FallbackResponse = "Sorry, couldn't connect. Try again!"

// Turn is one prior exchange in a conversation.
type Turn struct {
	Role    string `json:"role" binding:"required"`
	Content string `json:"content"`
}

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Message string `json:"message" binding:"required,min=1"`
	History []Turn `json:"history" binding:"omitempty,dive"`
}

// ChatResponse is the body returned by POST /chat.
type ChatResponse struct {
	Response string `json:"response"`
}

// Message is a role-tagged entry of a completion prompt.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
