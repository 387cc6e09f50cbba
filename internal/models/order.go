package models

import "time"

// Order keeps sender/receiver names as a snapshot taken at creation,
// they are not updated when the user later renames themselves.
type Order struct {
	ID           int       `json:"id"`
	SenderID     int       `json:"sender"`
	ReceiverID   int       `json:"receiver"`
	SenderName   string    `json:"senderName"`
	ReceiverName string    `json:"receiverName,omitempty"`
	Origin       string    `json:"origin"`
	Destination  string    `json:"destination"`
	IsComplete   bool      `json:"isComplete"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
