package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/shandysiswandi/gomailbox/internal/notification/entity"
	"github.com/shandysiswandi/gomailbox/internal/pkg/valueobject"
)

const streamBuffer = 16

// StreamEvent is one notification pushed to an open stream.
type StreamEvent struct {
	ID         int64               `json:"id"`
	UserID     int64               `json:"user_id"`
	TriggerKey entity.TriggerKey   `json:"trigger_key"`
	Data       valueobject.JSONMap `json:"data"`
	Metadata   valueobject.JSONMap `json:"metadata"`
	CreatedAt  time.Time           `json:"created_at"`
}

func newStreamEvent(n entity.CreateNotification) StreamEvent {
	return StreamEvent{
		ID:         n.ID,
		UserID:     n.UserID,
		TriggerKey: n.TriggerKey,
		Data:       n.Data,
		Metadata:   n.Metadata,
		CreatedAt:  n.CreatedAt,
	}
}

// streamHub fans events out to the open streams of each user. Delivery is
// best effort: a full stream buffer drops the event for that stream only.
type streamHub struct {
	mu   sync.RWMutex
	subs map[int64]map[chan StreamEvent]struct{}
}

func newStreamHub() *streamHub {
	return &streamHub{subs: make(map[int64]map[chan StreamEvent]struct{})}
}

func (h *streamHub) subscribe(userID int64) chan StreamEvent {
	ch := make(chan StreamEvent, streamBuffer)

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subs[userID] == nil {
		h.subs[userID] = make(map[chan StreamEvent]struct{})
	}
	h.subs[userID][ch] = struct{}{}
	return ch
}

func (h *streamHub) unsubscribe(userID int64, ch chan StreamEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set := h.subs[userID]
	if _, ok := set[ch]; !ok {
		return
	}
	delete(set, ch)
	if len(set) == 0 {
		delete(h.subs, userID)
	}
	close(ch)
}

// publish returns how many streams missed the event. The read lock is held
// while sending so unsubscribe cannot close a channel mid send.
func (h *streamHub) publish(evt StreamEvent) (dropped int) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subs[evt.UserID] {
		select {
		case ch <- evt:
		default:
			dropped++
		}
	}
	return dropped
}

func (h *streamHub) users() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// StreamNotifications opens a live feed for userID. The channel closes once
// ctx is done.
func (s *Usecase) StreamNotifications(ctx context.Context, userID int64) <-chan StreamEvent {
	ch := s.hub.subscribe(userID)
	context.AfterFunc(ctx, func() { s.hub.unsubscribe(userID, ch) })
	return ch
}

func (s *Usecase) broadcast(ctx context.Context, evt StreamEvent) {
	if dropped := s.hub.publish(evt); dropped > 0 {
		slog.WarnContext(ctx, "stream buffer full, event dropped", "user_id", evt.UserID, "notification_id", evt.ID, "streams", dropped)
	}
}
