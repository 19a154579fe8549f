package session

import "time"

// Visitor is the identity captured at gate time. Immutable once created.
type Visitor struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:120;not null" json:"name"`
	Role      string    `gorm:"size:64" json:"role"`
	Purpose   string    `gorm:"type:text" json:"purpose"`
	Email     string    `gorm:"size:200" json:"email,omitempty"`
	Company   string    `gorm:"size:200" json:"company,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Session binds one visitor to a conversation.
type Session struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	VisitorID string    `gorm:"size:36;not null;index" json:"visitorId"`
	Status    string    `gorm:"size:16;default:active" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Message is one persisted conversation turn.
type Message struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	SessionID string    `gorm:"size:36;not null;index" json:"sessionId"`
	Role      string    `gorm:"size:16;not null" json:"role"` // "user" or "assistant"
	Content   string    `gorm:"type:text;not null" json:"content"`
	Model     string    `gorm:"size:64" json:"model,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"

	StatusActive = "active"
)
