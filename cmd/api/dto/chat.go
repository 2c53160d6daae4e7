package dto

// ChatMessageRequestDTO is the body of POST /chat/message. SessionID
// is optional; the server mints one when it is absent and echoes the
// effective id back so the client can adopt it.
type ChatMessageRequestDTO struct {
	FarmID    string `json:"farm_id" binding:"required" example:"0b8f8d3e-9a4e-4f0e-b0a3-6f9d7f8c2a11"`
	Message   string `json:"message" binding:"required" example:"Will the rain this week hurt my grapes?"`
	Lang      string `json:"lang" example:"en"`
	SessionID string `json:"session_id" example:"c3a1d7e2-5b6f-4f8a-9c0d-1e2f3a4b5c6d"`
}

// ChatMessageReplyDTO is the response of POST /chat/message.
type ChatMessageReplyDTO struct {
	Reply     string `json:"reply"`
	SessionID string `json:"session_id"`
}

// ChatMessageResponseDTO is one history entry. CreatedAt is ISO 8601.
type ChatMessageResponseDTO struct {
	ID        string `json:"id"`
	FarmID    string `json:"farm_id"`
	SessionID string `json:"session_id"`
	Role      string `json:"role" example:"assistant"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at" example:"2024-01-01T00:00:00Z"`
}

// ClearHistoryResponseDTO is the response of DELETE /chat/history.
type ClearHistoryResponseDTO struct {
	OK      bool  `json:"ok"`
	Deleted int64 `json:"deleted"`
}
