package realtime

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"cinerate/internal/domain"
)

func newTestHub() *Hub {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewHub(logger)
}

// newTestClient registers a bare client without pumps so tests can read
// from its send channel directly.
func newTestClient(h *Hub) *Client {
	c := NewClient(h, nil)
	h.Register(c)
	return c
}

func receive(t *testing.T, c *Client) Message {
	t.Helper()
	select {
	case msg := <-c.send:
		return msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
		return Message{}
	}
}

func TestHubDeliversToMovieGroup(t *testing.T) {
	hub := newTestHub()
	watcher := newTestClient(hub)
	bystander := newTestClient(hub)

	hub.Subscribe(watcher, "m1")
	hub.Subscribe(bystander, "m2")

	review := domain.Review{ID: "r1", UserID: "u1", MovieID: "m1", Rating: 8}
	author := domain.User{ID: "u1", Username: "alice"}
	hub.ReviewCreated("m1", review, author)

	msg := receive(t, watcher)
	if msg.Type != MessageTypeReviewAdded {
		t.Fatalf("message type = %q, want %q", msg.Type, MessageTypeReviewAdded)
	}
	payload, ok := msg.Data.(reviewAddedPayload)
	if !ok {
		t.Fatalf("message data has type %T", msg.Data)
	}
	if payload.Review.ID != "r1" || payload.Author.Username != "alice" {
		t.Fatalf("wrong payload: %+v", payload)
	}

	select {
	case msg := <-bystander.send:
		t.Fatalf("bystander in another group received %+v", msg)
	default:
	}
}

func TestHubClientInMultipleGroups(t *testing.T) {
	hub := newTestHub()
	client := newTestClient(hub)

	hub.Subscribe(client, "m1")
	hub.Subscribe(client, "m2")

	hub.ReviewCreated("m1", domain.Review{ID: "r1", MovieID: "m1"}, domain.User{})
	hub.ReviewCreated("m2", domain.Review{ID: "r2", MovieID: "m2"}, domain.User{})

	first := receive(t, client)
	second := receive(t, client)
	if first.Data.(reviewAddedPayload).Review.ID != "r1" {
		t.Fatalf("first message: %+v", first)
	}
	if second.Data.(reviewAddedPayload).Review.ID != "r2" {
		t.Fatalf("second message: %+v", second)
	}
}

func TestHubDuplicateSubscribeDeliversOnce(t *testing.T) {
	hub := newTestHub()
	client := newTestClient(hub)

	hub.Subscribe(client, "m1")
	hub.Subscribe(client, "m1")

	hub.ReviewCreated("m1", domain.Review{ID: "r1", MovieID: "m1"}, domain.User{})
	receive(t, client)

	select {
	case msg := <-client.send:
		t.Fatalf("duplicate delivery: %+v", msg)
	default:
	}
}

func TestHubUnsubscribeAll(t *testing.T) {
	hub := newTestHub()
	client := newTestClient(hub)
	hub.Subscribe(client, "m1")

	hub.UnsubscribeAll(client)

	// The send channel is closed so the write pump can exit.
	if _, ok := <-client.send; ok {
		t.Fatal("send channel still open after unsubscribe")
	}

	// Publishing afterwards must not panic on the closed channel.
	hub.ReviewCreated("m1", domain.Review{ID: "r1", MovieID: "m1"}, domain.User{})

	// Repeated unsubscribe and late subscribe are no-ops.
	hub.UnsubscribeAll(client)
	hub.Subscribe(client, "m1")
	hub.ReviewCreated("m1", domain.Review{ID: "r2", MovieID: "m1"}, domain.User{})
}

func TestHubDropsEventsForSlowClient(t *testing.T) {
	hub := newTestHub()
	slow := newTestClient(hub)
	fast := newTestClient(hub)
	hub.Subscribe(slow, "m1")
	hub.Subscribe(fast, "m1")

	// Fill the slow client's buffer, then publish one more event.
	for i := 0; i < sendBuffer; i++ {
		hub.ReviewCreated("m1", domain.Review{ID: "fill", MovieID: "m1"}, domain.User{})
	}
	for i := 0; i < sendBuffer; i++ {
		receive(t, fast)
	}

	hub.ReviewCreated("m1", domain.Review{ID: "overflow", MovieID: "m1"}, domain.User{})

	// The fast client still gets the event the slow one dropped.
	msg := receive(t, fast)
	if msg.Data.(reviewAddedPayload).Review.ID != "overflow" {
		t.Fatalf("fast client got %+v", msg)
	}
	select {
	case msg := <-slow.send:
		if msg.Data.(reviewAddedPayload).Review.ID == "overflow" {
			t.Fatal("slow client received the overflow event with a full buffer")
		}
	default:
		t.Fatal("slow client buffer unexpectedly empty")
	}
}
