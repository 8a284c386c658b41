package notice

import (
	"context"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/morningbutler/butler/internal/rabbitmq/queue"
)

// Dispatcher is one delivery channel for notices.
type Dispatcher interface {
	Send(to, title, body string) error
}

// Target binds a dispatcher to its configured recipient.
type Target struct {
	Dispatcher Dispatcher
	To         string
}

// Handler fans each consumed notice out to every configured channel.
// Dispatch is fire-and-forget: a channel failure is logged, never surfaced.
type Handler struct {
	channels map[string]Target
}

func NewHandler(channels map[string]Target) *Handler {
	return &Handler{channels: channels}
}

func (h *Handler) HandleMessage(ctx context.Context, msg queue.NoticeMessage, strategy retry.Strategy) {
	zlog.Logger.Info().Msgf("Handle Message: Got notice %s (%s)", msg.ID, msg.Tag)

	for name, target := range h.channels {
		err := retry.Do(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return target.Dispatcher.Send(target.To, msg.Title, msg.Body)
			}
		}, strategy)

		if err != nil {
			zlog.Logger.Error().Err(err).
				Str("channel", name).
				Str("tag", msg.Tag).
				Msgf("Handle Message: Notice %s failed", msg.ID)
			continue
		}

		zlog.Logger.Info().Msgf("Handle Message: Notice %s sent via %s", msg.ID, name)
	}
}
