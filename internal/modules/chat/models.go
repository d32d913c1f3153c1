package chat

import "time"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one persisted transcript line. SessionID groups a visitor's
// conversation.
type ChatMessage struct {
	ID        string `gorm:"type:char(36);primaryKey"`
	SessionID string `gorm:"type:char(36);not null;index:ix_chat_messages_session_id"`
	Role      string `gorm:"type:varchar(16);not null"`
	Content   string `gorm:"type:text;not null"`

	CreatedAt time.Time `gorm:"type:datetime(3);not null"`
}

func (ChatMessage) TableName() string { return "chat_messages" }

// Message is the in-memory conversation shape handed to the Completer.
type Message struct {
	Role    string
	Content string
}
