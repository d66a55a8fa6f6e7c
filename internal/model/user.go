package model

// User is a Discord identity decorated for the profile page.
type User struct {
	ID         string  `json:"id"`
	Username   string  `json:"username"`
	Tag        string  `json:"tag"`
	AvatarHash *string `json:"avatarHash"`
	AvatarURL  string  `json:"avatarUrl"`
	Badges     []Badge `json:"badges"`
}

type Badge struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}
