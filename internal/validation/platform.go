package validation

import "strings"

// Platform is a social network a profile can link to.
type Platform struct {
	Key  string
	Name string
}

type platformDefinition struct {
	Platform
	aliases []string
}

var (
	platformDefinitions = []platformDefinition{
		{Platform{Key: "instagram", Name: "Instagram"}, []string{"insta"}},
		{Platform{Key: "tiktok", Name: "TikTok"}, nil},
		{Platform{Key: "roblox", Name: "Roblox"}, nil},
		{Platform{Key: "discord", Name: "Discord"}, nil},
		{Platform{Key: "steam", Name: "Steam"}, nil},
		{Platform{Key: "telegram", Name: "Telegram"}, nil},
	}
	platformLookup = func() map[string]Platform {
		lookup := make(map[string]Platform, len(platformDefinitions)*2)
		for _, def := range platformDefinitions {
			lookup[def.Key] = def.Platform
			for _, alias := range def.aliases {
				lookup[alias] = def.Platform
			}
		}
		return lookup
	}()
)

// ResolvePlatform maps a command verb or platform name to its platform.
func ResolvePlatform(alias string) (Platform, bool) {
	p, ok := platformLookup[strings.ToLower(strings.TrimSpace(alias))]
	return p, ok
}

// Platforms lists the known platforms in display order.
func Platforms() []Platform {
	out := make([]Platform, 0, len(platformDefinitions))
	for _, def := range platformDefinitions {
		out = append(out, def.Platform)
	}
	return out
}
