// Package discord posts cast decisions to a Discord channel.
package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/KirkDiggler/lol-cast-engine/internal"
	"github.com/KirkDiggler/lol-cast-engine/internal/events"
)

const defaultQueueSize = 64

// MessageSender is the part of *discordgo.Session the notifier needs
type MessageSender interface {
	ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Notifier turns decision events into channel messages. HandleEvent only
// queues; Run does the sending so the bus never waits on Discord.
type Notifier struct {
	sender    MessageSender
	channelID string
	queue     chan string
	logger    *zap.Logger
}

type NotifierConfig struct {
	Sender    MessageSender
	ChannelID string
	QueueSize int
	Logger    *zap.Logger
}

func NewNotifier(cfg *NotifierConfig) (*Notifier, error) {
	if cfg == nil {
		return nil, internal.NewMissingParamError("cfg")
	}
	if cfg.Sender == nil {
		return nil, internal.NewMissingParamError("Sender")
	}
	if cfg.ChannelID == "" {
		return nil, internal.NewMissingParamError("ChannelID")
	}
	size := cfg.QueueSize
	if size <= 0 {
		size = defaultQueueSize
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Notifier{
		sender:    cfg.Sender,
		channelID: cfg.ChannelID,
		queue:     make(chan string, size),
		logger:    logger,
	}, nil
}

// Types are the events worth a message
func (n *Notifier) Types() []events.EventType {
	return []events.EventType{
		events.EventTypeAbilityCast,
		events.EventTypeAbilityRecast,
		events.EventTypeOutOfMana,
	}
}

func (n *Notifier) ID() string    { return "discord-notifier" }
func (n *Notifier) Priority() int { return events.PriorityNotification }

func (n *Notifier) HandleEvent(e events.Event) error {
	content := format(e)
	if content == "" {
		return nil
	}

	select {
	case n.queue <- content:
	default:
		n.logger.Warn("notification queue full, dropping message",
			zap.String("event", string(e.GetType())),
			zap.String("id", e.GetID()))
	}
	return nil
}

// Run sends queued messages until ctx is done
func (n *Notifier) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case content := <-n.queue:
			if _, err := n.sender.ChannelMessageSend(n.channelID, content, discordgo.WithContext(ctx)); err != nil {
				n.logger.Warn("failed to send notification",
					zap.String("channel", n.channelID),
					zap.Error(err))
			}
		}
	}
}

func format(e events.Event) string {
	switch ev := e.(type) {
	case *events.AbilityCastEvent:
		return fmt.Sprintf("**%s** cast %s", ev.Champion, ev.Key)
	case *events.AbilityRecastEvent:
		if ev.RecastsRemaining == 0 {
			return fmt.Sprintf("**%s** recast %s (last)", ev.Champion, ev.Key)
		}
		return fmt.Sprintf("**%s** recast %s (%d left)", ev.Champion, ev.Key, ev.RecastsRemaining)
	case *events.OutOfManaEvent:
		return fmt.Sprintf("**%s** is out of mana for %s", ev.Champion, ev.Key)
	}
	return ""
}
