package model

import "time"

type Comment struct {
	ID     string    `json:"id"`
	UserID string    `json:"userId"`
	Text   string    `json:"text"`
	At     time.Time `json:"at"`
}
