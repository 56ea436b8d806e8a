package realtime

import (
	"context"
	"encoding/json"
	"time"

	"paintshop_lots/internal/domain/entities"
	"paintshop_lots/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

// publisher is the cross-replica leg of the feed.
type publisher interface {
	Publish(ctx context.Context, msg []byte) error
}

// Feed publishes change events. With a bridge the event goes through Redis and
// comes back to the local hub via the subscription; without one it is
// broadcast locally.
type Feed struct {
	hub    *Hub
	bridge publisher
}

var _ interfaces.IChangeFeed = (*Feed)(nil)

// NewFeed builds the feed. bridge may be nil.
func NewFeed(hub *Hub, bridge *RedisBridge) *Feed {
	f := &Feed{hub: hub}
	if bridge != nil {
		f.bridge = bridge
	}
	return f
}

// Publish never fails the caller; errors are logged.
func (f *Feed) Publish(ctx context.Context, ev entities.ChangeEvent) {
	msg, err := json.Marshal(ev)
	if err != nil {
		log.Error().Str("topic", string(ev.Topic)).Err(err).Msg("[realtime][feed] event marshal failed")
		return
	}
	if f.bridge != nil {
		err := f.bridge.Publish(ctx, msg)
		if err == nil {
			return
		}
		log.Warn().Str("topic", string(ev.Topic)).Err(err).Msg("[realtime][feed] redis publish failed, broadcasting locally")
	}
	if f.hub != nil {
		f.hub.Broadcast(msg)
	}
}

// FinanceEntryNotifier asks the finance screen to open the payment entry form
// for a lot. The request is a change event the front end reacts to.
type FinanceEntryNotifier struct {
	feed interfaces.IChangeFeed
	now  func() time.Time
}

var _ interfaces.IFinanceEntryFlow = (*FinanceEntryNotifier)(nil)

func NewFinanceEntryNotifier(feed interfaces.IChangeFeed) *FinanceEntryNotifier {
	return &FinanceEntryNotifier{feed: feed, now: time.Now}
}

func (n *FinanceEntryNotifier) RequestEntry(ctx context.Context, lot entities.Lot) error {
	n.feed.Publish(ctx, entities.ChangeEvent{
		Topic:    entities.TopicSettlement,
		Action:   "finance_entry_requested",
		EntityID: lot.ID,
		At:       n.now().UTC(),
		Payload: map[string]any{
			"lot_id": lot.ID,
			"client": lot.Client,
		},
	})
	log.Info().Str("lot_id", lot.ID).Msg("[realtime][feed] finance entry requested")
	return nil
}
