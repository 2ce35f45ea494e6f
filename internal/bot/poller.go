package bot

import (
	"context"
	"log"
	"time"

	"parrotshop/pkg/telegram"
)

// UpdateSource fetches batches of pending updates.
type UpdateSource interface {
	GetUpdates(offset int64, timeoutSec int) ([]telegram.Update, error)
}

const pollTimeout = 30 // seconds, server-side long-poll window

// Poller drives the bot from the Bot API's getUpdates long poll. The
// update cursor lives on the loop's stack and advances only past
// updates that were handled successfully, so a failed update is
// re-fetched on the next poll.
type Poller struct {
	source   UpdateSource
	bot      *Bot
	interval time.Duration
}

// NewPoller creates a new Poller. interval is the pause between polls.
func NewPoller(source UpdateSource, bot *Bot, interval time.Duration) *Poller {
	return &Poller{
		source:   source,
		bot:      bot,
		interval: interval,
	}
}

// Run polls until ctx is cancelled.
func (p *Poller) Run(ctx context.Context) {
	log.Println("Telegram bot polling started")
	var offset int64
	for {
		offset = p.pollOnce(offset)
		select {
		case <-ctx.Done():
			log.Println("Telegram bot polling stopped")
			return
		case <-time.After(p.interval):
		}
	}
}

// pollOnce fetches one batch and returns the next offset. On a handler
// error the batch is abandoned: the failed update and everything after
// it come back on the next poll (processing is at-least-once; every
// update acts on a durable token, so replays are harmless).
func (p *Poller) pollOnce(offset int64) int64 {
	updates, err := p.source.GetUpdates(offset, pollTimeout)
	if err != nil {
		log.Printf("Polling error: %v", err)
		return offset
	}

	for _, update := range updates {
		if err := p.bot.HandleUpdate(update); err != nil {
			log.Printf("Error handling update %d: %v", update.UpdateID, err)
			return offset
		}
		offset = update.UpdateID + 1
	}
	return offset
}
