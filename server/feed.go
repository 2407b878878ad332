package server

import (
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// subscriber is one websocket connection watching a shoe. Its send channel
// is never closed; removal is signalled through done so a concurrent
// Broadcast can never hit a closed channel.
type subscriber struct {
	conn *websocket.Conn
	send chan []byte
	done chan struct{}
}

// Feed fans dealt cards out to websocket subscribers, keyed by shoe.
type Feed struct {
	log zerolog.Logger

	mu          sync.RWMutex
	subscribers map[string][]*subscriber
}

// NewFeed creates an empty feed.
func NewFeed(log zerolog.Logger) *Feed {
	return &Feed{
		log:         log,
		subscribers: make(map[string][]*subscriber),
	}
}

// Subscribe registers the connection for the shoe's dealt cards and starts
// its write pump. The connection is owned by the feed from here on.
func (f *Feed) Subscribe(shoeID string, conn *websocket.Conn) {
	sub := &subscriber{
		conn: conn,
		send: make(chan []byte, 16),
		done: make(chan struct{}),
	}

	f.mu.Lock()
	f.subscribers[shoeID] = append(f.subscribers[shoeID], sub)
	f.mu.Unlock()

	go f.writePump(shoeID, sub)
}

// Broadcast sends the payload to every subscriber of the shoe. Slow
// subscribers whose buffers are full are dropped; subscribers removed
// mid-broadcast are skipped.
func (f *Feed) Broadcast(shoeID string, payload []byte) {
	f.mu.RLock()
	subs := f.subscribers[shoeID]
	f.mu.RUnlock()

	for _, sub := range subs {
		select {
		case sub.send <- payload:
		case <-sub.done:
		default:
			f.remove(shoeID, sub)
		}
	}
}

func (f *Feed) writePump(shoeID string, sub *subscriber) {
	defer sub.conn.Close()

	for {
		select {
		case payload := <-sub.send:
			if err := sub.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				f.log.Debug().Err(err).Str("shoe", shoeID).Msg("feed write failed")
				f.remove(shoeID, sub)
				return
			}
		case <-sub.done:
			return
		}
	}
}

// remove drops the subscriber from the shoe's list and signals its write
// pump to stop. Only the first call for a subscriber finds it in the list,
// so done is closed exactly once.
func (f *Feed) remove(shoeID string, sub *subscriber) {
	f.mu.Lock()
	defer f.mu.Unlock()

	subs := f.subscribers[shoeID]
	for i, candidate := range subs {
		if candidate == sub {
			f.subscribers[shoeID] = append(subs[:i], subs[i+1:]...)
			close(sub.done)
			return
		}
	}
}
