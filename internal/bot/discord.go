package bot

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"
)

const messageTimeout = 15 * time.Second

// Bot connects the dispatcher to the Discord gateway.
type Bot struct {
	session    *discordgo.Session
	dispatcher *Dispatcher
	prefix     string
}

func NewBot(session *discordgo.Session, dispatcher *Dispatcher, prefix string) *Bot {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Bot{session: session, dispatcher: dispatcher, prefix: prefix}
}

// Start registers the gateway handlers and opens the websocket.
func (b *Bot) Start() error {
	b.session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent

	b.session.AddHandler(b.onReady)
	b.session.AddHandler(b.onMessageCreate)

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open discord gateway: %w", err)
	}
	return nil
}

func (b *Bot) Close() error {
	return b.session.Close()
}

func (b *Bot) onReady(_ *discordgo.Session, r *discordgo.Ready) {
	if r.User == nil {
		return
	}
	slog.Info("discord bot connected", "user", r.User.Username, "guilds", len(r.Guilds))
}

func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Message == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), messageTimeout)
	defer cancel()

	reply := b.handle(ctx, m.Message)
	if reply == "" {
		return
	}

	if _, err := s.ChannelMessageSendReply(m.ChannelID, reply, m.Reference(), discordgo.WithContext(ctx)); err != nil {
		slog.Error("failed to send reply", "channel_id", m.ChannelID, "error", err)
	}
}

// handle returns the reply for a gateway message, or "" when nothing should
// be sent.
func (b *Bot) handle(ctx context.Context, m *discordgo.Message) string {
	sender, ok := senderFromMessage(m)
	if !ok {
		return ""
	}

	reply, err := b.dispatcher.HandleMessage(ctx, sender, b.prefix, m.Content)
	if err != nil {
		slog.Error("command failed", "user_id", sender.ID, "content", m.Content, "error", err)
		return ""
	}
	return reply
}

func senderFromMessage(m *discordgo.Message) (Sender, bool) {
	if m.Author == nil || m.Author.Bot {
		return Sender{}, false
	}
	name := m.Author.GlobalName
	if name == "" {
		name = m.Author.Username
	}
	return Sender{ID: m.Author.ID, FallbackName: name}, true
}
