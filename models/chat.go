package models

import "time"

// ChatSession is one logical conversation thread for a farm.
// Collection: chat_sessions
type ChatSession struct {
	ID        string    `bson:"_id" json:"id"`
	FarmID    string    `bson:"farm_id" json:"farm_id"`
	Title     string    `bson:"title,omitempty" json:"title,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// ChatMessage is a single persisted message in a chat session.
// Collection: chat_messages
//
// Role is stored lowercase ("user" or "assistant"). Older records
// were written mixed-case, so readers still normalize.
type ChatMessage struct {
	ID        string    `bson:"_id" json:"id"`
	FarmID    string    `bson:"farm_id" json:"farm_id"`
	SessionID string    `bson:"session_id" json:"session_id"`
	Role      string    `bson:"role" json:"role"`
	Content   string    `bson:"content" json:"content"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
