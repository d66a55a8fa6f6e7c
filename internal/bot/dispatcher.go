package bot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/itssocoldhere/glowbio/internal/validation"
)

// ProfileStore is the part of the profile service commands mutate.
type ProfileStore interface {
	UpsertLink(ctx context.Context, userID, platform, href string) (bool, error)
	SetGlowColor(ctx context.Context, userID, color string) error
}

// NameResolver looks up the display name used in replies.
type NameResolver interface {
	DisplayName(ctx context.Context, userID string) (string, error)
}

// Sender identifies who sent a command. FallbackName is the name the chat
// gateway already knows, used when the name lookup fails.
type Sender struct {
	ID           string
	FallbackName string
}

// Dispatcher turns parsed commands from allow-listed identities into profile
// mutations. Everything else is ignored without a reply.
type Dispatcher struct {
	store   ProfileStore
	names   NameResolver
	allowed map[string]struct{}
}

func NewDispatcher(store ProfileStore, names NameResolver, allowList []string) *Dispatcher {
	allowed := make(map[string]struct{}, len(allowList))
	for _, id := range allowList {
		allowed[id] = struct{}{}
	}
	return &Dispatcher{store: store, names: names, allowed: allowed}
}

func (d *Dispatcher) Allowed(userID string) bool {
	_, ok := d.allowed[userID]
	return ok
}

// HandleMessage parses raw and dispatches it. Lines that are not commands
// yield an empty reply.
func (d *Dispatcher) HandleMessage(ctx context.Context, sender Sender, prefix, raw string) (string, error) {
	cmd, ok := ParseCommand(prefix, raw)
	if !ok {
		return "", nil
	}
	return d.Dispatch(ctx, sender, cmd)
}

// Dispatch runs one command. An empty reply means nothing should be sent
// back: unknown senders, unknown verbs, too dark colors and removals of
// links that did not exist are all silent.
func (d *Dispatcher) Dispatch(ctx context.Context, sender Sender, cmd Command) (string, error) {
	if !d.Allowed(sender.ID) {
		return "", nil
	}

	if color, ok := validation.ResolveColor(cmd.Verb); ok {
		return d.setColor(ctx, sender, color)
	}

	platform, ok := validation.ResolvePlatform(cmd.Verb)
	if !ok {
		return "", nil
	}

	if validation.IsLinkURL(cmd.Argument) {
		if _, err := d.store.UpsertLink(ctx, sender.ID, platform.Key, cmd.Argument); err != nil {
			return "", err
		}
		return fmt.Sprintf("%s link added to %s's profile", platform.Name, d.displayName(ctx, sender)), nil
	}

	hadPrevious, err := d.store.UpsertLink(ctx, sender.ID, platform.Key, "")
	if err != nil {
		return "", err
	}
	if !hadPrevious {
		return "", nil
	}
	return fmt.Sprintf("%s removed from %s's profile", platform.Name, d.displayName(ctx, sender)), nil
}

func (d *Dispatcher) setColor(ctx context.Context, sender Sender, color string) (string, error) {
	if validation.IsTooDark(color) {
		slog.Debug("glow color too dark, ignoring", "user_id", sender.ID, "color", color)
		return "", nil
	}
	if err := d.store.SetGlowColor(ctx, sender.ID, color); err != nil {
		return "", err
	}
	return fmt.Sprintf("color changed to %s on %s's profile", color, d.displayName(ctx, sender)), nil
}

func (d *Dispatcher) displayName(ctx context.Context, sender Sender) string {
	if d.names != nil {
		name, err := d.names.DisplayName(ctx, sender.ID)
		if err == nil && name != "" {
			return name
		}
		if err != nil {
			slog.Warn("display name lookup failed, using fallback", "user_id", sender.ID, "error", err)
		}
	}
	if sender.FallbackName != "" {
		return sender.FallbackName
	}
	return sender.ID
}
