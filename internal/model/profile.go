package model

// Profile is everything stored for one identity.
type Profile struct {
	UserID    string       `json:"userId"`
	Links     []SocialLink `json:"links"`
	GlowColor *string      `json:"glowColor"`
	Comments  []Comment    `json:"comments"`
}
