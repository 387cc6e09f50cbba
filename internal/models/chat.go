package models

import "time"

// Chat is a private conversation between exactly two users.
// Members always holds the pair in ascending order.
type Chat struct {
	ID        int       `json:"id"`
	Members   []int     `json:"members"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Message struct {
	ID        int       `json:"id"`
	ChatID    int       `json:"chat"`
	SenderID  int       `json:"sender"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
