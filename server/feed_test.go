package server

import (
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSubscriber() *subscriber {
	return &subscriber{
		send: make(chan []byte, 1),
		done: make(chan struct{}),
	}
}

func seedSubscribers(f *Feed, shoeID string, subs []*subscriber) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subscribers[shoeID] = append(f.subscribers[shoeID], subs...)
}

func TestFeedBroadcastDelivers(t *testing.T) {
	feed := NewFeed(zerolog.Nop())
	sub := newTestSubscriber()
	seedSubscribers(feed, "shoe-1", []*subscriber{sub})

	feed.Broadcast("shoe-1", []byte(`{"rank":14}`))

	select {
	case payload := <-sub.send:
		assert.Equal(t, `{"rank":14}`, string(payload))
	default:
		t.Fatal("payload was not delivered")
	}
}

func TestFeedBroadcastDropsSlowSubscriber(t *testing.T) {
	feed := NewFeed(zerolog.Nop())
	sub := newTestSubscriber()
	seedSubscribers(feed, "shoe-1", []*subscriber{sub})

	// First payload fills the buffer, second one finds it full.
	feed.Broadcast("shoe-1", []byte("a"))
	feed.Broadcast("shoe-1", []byte("b"))

	select {
	case <-sub.done:
	default:
		t.Fatal("slow subscriber was not signalled")
	}

	feed.mu.RLock()
	defer feed.mu.RUnlock()
	assert.Empty(t, feed.subscribers["shoe-1"])
}

func TestFeedRemoveIsIdempotent(t *testing.T) {
	feed := NewFeed(zerolog.Nop())
	sub := newTestSubscriber()
	seedSubscribers(feed, "shoe-1", []*subscriber{sub})

	feed.remove("shoe-1", sub)
	require.NotPanics(t, func() { feed.remove("shoe-1", sub) })
}

func TestFeedBroadcastSurvivesConcurrentRemoval(t *testing.T) {
	feed := NewFeed(zerolog.Nop())

	const count = 2000
	subs := make([]*subscriber, count)
	for i := range subs {
		subs[i] = newTestSubscriber()
	}
	seedSubscribers(feed, "shoe-1", subs)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for _, sub := range subs {
			feed.remove("shoe-1", sub)
		}
	}()

	require.NotPanics(t, func() {
		for i := 0; i < 50; i++ {
			feed.Broadcast("shoe-1", []byte("card"))
		}
	})
	wg.Wait()

	feed.mu.RLock()
	defer feed.mu.RUnlock()
	assert.Empty(t, feed.subscribers["shoe-1"])
}
