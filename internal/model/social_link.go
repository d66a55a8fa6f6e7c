package model

import "time"

type SocialLink struct {
	Platform string    `json:"platform"`
	Href     string    `json:"href"`
	At       time.Time `json:"at"`
}
