package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/itssocoldhere/glowbio/internal/model"
)

var ErrDirectoryUnavailable = errors.New("DISCORD_BOT_TOKEN not configured")

const badgeIconBase = "https://cdn.jsdelivr.net/gh/Tjstretchalot/discord-badges@master/badges/"

// DiscordUsers fetches raw user objects from the Discord REST API.
type DiscordUsers interface {
	User(ctx context.Context, userID string) (*discordgo.User, error)
}

type sessionUsers struct {
	session *discordgo.Session
}

// NewDiscordUsers wraps a bot session for REST user lookups.
func NewDiscordUsers(session *discordgo.Session) DiscordUsers {
	return &sessionUsers{session: session}
}

// NewDiscordSession creates a bot session whose REST calls time out after timeout.
func NewDiscordSession(token string, timeout time.Duration) (*discordgo.Session, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	session.Client = &http.Client{Timeout: timeout}
	return session, nil
}

func (u *sessionUsers) User(ctx context.Context, userID string) (*discordgo.User, error) {
	return u.session.User(userID, discordgo.WithContext(ctx))
}

type badgeFlag struct {
	bit   int
	badge model.Badge
}

// Public flag bits in the order the profile page displays them.
var badgeFlags = []badgeFlag{
	{1 << 0, badge("employee", "Discord Staff", "Discord_Employee.svg")},
	{1 << 1, badge("partner", "Partnered Server Owner", "Partnered_Server_Owner.svg")},
	{1 << 2, badge("hypesquad_events", "HypeSquad Events", "HypeSquad_Events.svg")},
	{1 << 3, badge("bughunter1", "Bug Hunter", "Bug_Hunter.svg")},
	{1 << 6, badge("bravery", "HypeSquad Bravery", "HypeSquad_Bravery.svg")},
	{1 << 7, badge("brilliance", "HypeSquad Brilliance", "HypeSquad_Brilliance.svg")},
	{1 << 8, badge("balance", "HypeSquad Balance", "HypeSquad_Balance.svg")},
	{1 << 9, badge("early_supporter", "Early Supporter", "Early_Supporter.svg")},
	{1 << 14, badge("bughunter2", "Bug Hunter Level 2", "Bug_Hunter_Level_2.svg")},
	{1 << 17, badge("early_dev", "Early Verified Bot Developer", "Early_Verified_Bot_Developer.svg")},
	{1 << 18, badge("cert_mod", "Discord Certified Moderator", "Discord_Certified_Moderator.svg")},
	{1 << 22, badge("active_dev", "Active Developer", "Active_Developer.svg")},
}

var (
	nitroBadge      = badge("nitro", "Nitro", "Nitro.svg")
	nitroBasicBadge = badge("nitro_basic", "Nitro Basic", "Nitro_Basic.svg")
)

func badge(key, name, file string) model.Badge {
	return model.Badge{Key: key, Name: name, Icon: badgeIconBase + file}
}

// DirectoryService decorates identities with Discord profile data.
type DirectoryService struct {
	users DiscordUsers
}

// NewDirectoryService accepts a nil users client; lookups then fail with
// ErrDirectoryUnavailable.
func NewDirectoryService(users DiscordUsers) *DirectoryService {
	return &DirectoryService{users: users}
}

func (s *DirectoryService) Available() bool {
	return s.users != nil
}

func (s *DirectoryService) Lookup(ctx context.Context, userID string) (*model.User, error) {
	if s.users == nil {
		return nil, ErrDirectoryUnavailable
	}

	u, err := s.users.User(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := &model.User{
		ID:        u.ID,
		Username:  displayName(u),
		Tag:       "@" + u.Username,
		AvatarURL: avatarURL(u),
		Badges:    badges(u),
	}
	if u.Avatar != "" {
		hash := u.Avatar
		out.AvatarHash = &hash
	}
	return out, nil
}

// DisplayName returns the global name, falling back to the username.
func (s *DirectoryService) DisplayName(ctx context.Context, userID string) (string, error) {
	if s.users == nil {
		return "", ErrDirectoryUnavailable
	}
	u, err := s.users.User(ctx, userID)
	if err != nil {
		return "", err
	}
	name := displayName(u)
	if name == "" {
		return userID, nil
	}
	return name, nil
}

func displayName(u *discordgo.User) string {
	if u.GlobalName != "" {
		return u.GlobalName
	}
	return u.Username
}

func avatarURL(u *discordgo.User) string {
	if u.Avatar == "" {
		return "https://cdn.discordapp.com/embed/avatars/0.png?size=128"
	}
	ext := "png"
	if strings.HasPrefix(u.Avatar, "a_") {
		ext = "gif"
	}
	return fmt.Sprintf("https://cdn.discordapp.com/avatars/%s/%s.%s?size=128", u.ID, u.Avatar, ext)
}

func badges(u *discordgo.User) []model.Badge {
	flags := int(u.PublicFlags)
	out := make([]model.Badge, 0, len(badgeFlags)+1)
	for _, f := range badgeFlags {
		if flags&f.bit != 0 {
			out = append(out, f.badge)
		}
	}

	// premium_type: 1 Nitro Classic, 2 Nitro, 3 Nitro Basic
	switch u.PremiumType {
	case 1, 2:
		out = append(out, nitroBadge)
	case 3:
		out = append(out, nitroBasicBadge)
	}
	return out
}
