package app

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/itssocoldhere/glowbio/internal/bot"
	"github.com/itssocoldhere/glowbio/internal/config"
	"github.com/itssocoldhere/glowbio/internal/repository"
	"github.com/itssocoldhere/glowbio/internal/service"
	"github.com/itssocoldhere/glowbio/internal/storage"
)

var ErrBotUnavailable = errors.New("discord bot not configured")

type App struct {
	Cfg              *config.Config
	Storage          storage.Backend
	Session          *discordgo.Session
	ProfileService   *service.ProfileService
	DirectoryService *service.DirectoryService
	Dispatcher       *bot.Dispatcher
	Bot              *bot.Bot

	botStarted bool
}

func New(cfg *config.Config) (*App, error) {
	// Storage
	backend, err := storage.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Repositories
	socialLinkRepository := repository.NewSocialLinkRepository(backend)
	glowColorRepository := repository.NewGlowColorRepository(backend)
	commentRepository := repository.NewCommentRepository(backend)

	// Discord
	var session *discordgo.Session
	var users service.DiscordUsers
	if cfg.HasBotToken() {
		session, err = service.NewDiscordSession(cfg.DiscordBotToken, cfg.DiscordAPITimeout)
		if err != nil {
			_ = backend.Close()
			return nil, fmt.Errorf("failed to initialize discord session: %w", err)
		}
		users = service.NewDiscordUsers(session)
	} else {
		slog.Warn("DISCORD_BOT_TOKEN not set, user lookups and the bot are disabled")
	}

	// Services
	profileService := service.NewProfileService(socialLinkRepository, glowColorRepository, commentRepository)
	directoryService := service.NewDirectoryService(users)

	// Commands
	dispatcher := bot.NewDispatcher(profileService, directoryService, cfg.ProfileIDs)

	var discordBot *bot.Bot
	if session != nil {
		discordBot = bot.NewBot(session, dispatcher, cfg.CommandPrefix)
	}

	return &App{
		Cfg:              cfg,
		Storage:          backend,
		Session:          session,
		ProfileService:   profileService,
		DirectoryService: directoryService,
		Dispatcher:       dispatcher,
		Bot:              discordBot,
	}, nil
}

// StartBot connects the chat bot to the gateway.
func (a *App) StartBot() error {
	if a.Bot == nil {
		return ErrBotUnavailable
	}
	if err := a.Bot.Start(); err != nil {
		return err
	}
	a.botStarted = true
	slog.Info("discord bot started", "prefix", a.Cfg.CommandPrefix, "profiles", len(a.Cfg.ProfileIDs))
	return nil
}

func (a *App) Close() error {
	var errs []error
	if a.botStarted {
		if err := a.Bot.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close discord bot: %w", err))
		}
		a.botStarted = false
	}
	if a.Storage != nil {
		if err := a.Storage.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close storage: %w", err))
		}
	}
	return errors.Join(errs...)
}
