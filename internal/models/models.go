package models

import "time"

// Ticket statuses. The admin panel may move a ticket to any status in this
// set; there is no transition graph beyond "pick one of these".
const (
	StatusPending   = "Pending"
	StatusAccepted  = "Accepted"
	StatusRunning   = "Running"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// ValidStatuses lists every accepted ticket status, in lifecycle order.
var ValidStatuses = []string{
	StatusPending,
	StatusAccepted,
	StatusRunning,
	StatusCompleted,
	StatusCancelled,
}

// Message senders.
const (
	SenderUser  = "user"
	SenderAdmin = "admin"
)

// Ticket is a quote/contact request tracked by a human-readable code.
type Ticket struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Code        string `gorm:"uniqueIndex;not null" json:"ticket_id"` // e.g., OPT-7K2Q
	Name        string `gorm:"not null" json:"name"`
	Email       string `gorm:"not null" json:"email"`
	ProjectType string `gorm:"not null" json:"project_type"`
	Message     string `gorm:"type:text;not null" json:"message"`
	Status      string `gorm:"index;not null" json:"status"`

	Messages []Message `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// Message is one entry in a ticket's conversation. Rows are immutable once
// written; the thread is always read oldest-first.
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	TicketID uint   `gorm:"index;not null" json:"ticket_id"`
	Sender   string `gorm:"not null" json:"sender"` // user | admin
	Body     string `gorm:"type:text;not null" json:"message"`
}

// Subscriber is a newsletter email. CreatedAt doubles as the subscription
// time on the wire. Emails are lowercased before they reach the database.
type Subscriber struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"subscribed_at"`
	UpdatedAt time.Time `json:"-"`

	Email          string     `gorm:"uniqueIndex;not null" json:"email"`
	IsActive       bool       `gorm:"not null" json:"is_active"`
	UnsubscribedAt *time.Time `json:"-"` // nil while active
}

// Lead is a captured trial/contact-interest record. No relationships.
type Lead struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`

	Name    string  `gorm:"not null" json:"name"`
	Phone   string  `gorm:"not null" json:"phone"`
	School  *string `json:"school"`  // NULL when blank
	Address *string `json:"address"` // NULL when blank
}
