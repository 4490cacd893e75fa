// Package realtime pushes newly created reviews to every connection
// currently watching the affected movie page. Delivery is best-effort:
// a subscriber with a full send buffer misses the event and catches up on
// its next page load, since the review itself is in the store.
package realtime

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"cinerate/internal/domain"
)

// Message types exchanged over the websocket.
const (
	MessageTypeJoinMovie   = "join-movie"
	MessageTypeReviewAdded = "review-added"
	MessageTypePing        = "ping"
	MessageTypePong        = "pong"
)

// Message is the wire envelope for outbound events.
type Message struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

type reviewPayload struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	MovieID    string    `json:"movieId"`
	Rating     int       `json:"rating"`
	ReviewText string    `json:"reviewText,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type authorPayload struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

type reviewAddedPayload struct {
	Review reviewPayload `json:"review"`
	Author authorPayload `json:"author"`
}

// Hub tracks which connections are watching which movies and fans events
// out to them. A connection may be in any number of movie groups at once.
type Hub struct {
	logger *logrus.Logger

	mu      sync.RWMutex
	rooms   map[string]map[*Client]bool // movie id -> members
	clients map[*Client]map[string]bool // member -> joined movie ids
}

func NewHub(logger *logrus.Logger) *Hub {
	return &Hub{
		logger:  logger,
		rooms:   make(map[string]map[*Client]bool),
		clients: make(map[*Client]map[string]bool),
	}
}

// Register makes the hub aware of a new connection. The connection is in
// no movie group until it joins one.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = make(map[string]bool)
	total := len(h.clients)
	h.mu.Unlock()

	h.logger.WithField("clients", total).Debug("websocket client connected")
}

// Subscribe adds the connection to the movie's fan-out group.
func (h *Hub) Subscribe(c *Client, movieID string) {
	if movieID == "" {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	joined, ok := h.clients[c]
	if !ok {
		return // already unregistered
	}
	joined[movieID] = true
	if h.rooms[movieID] == nil {
		h.rooms[movieID] = make(map[*Client]bool)
	}
	h.rooms[movieID][c] = true
}

// UnsubscribeAll removes the connection from every movie group and
// forgets it. Safe to call more than once.
func (h *Hub) UnsubscribeAll(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	joined, ok := h.clients[c]
	if !ok {
		return
	}
	for movieID := range joined {
		delete(h.rooms[movieID], c)
		if len(h.rooms[movieID]) == 0 {
			delete(h.rooms, movieID)
		}
	}
	delete(h.clients, c)
	close(c.send)
}

// ReviewCreated delivers the new review to every member of the movie's
// group. Implements service.ReviewPublisher. A slow member drops the
// event rather than stalling the others.
func (h *Hub) ReviewCreated(movieID string, review domain.Review, author domain.User) {
	msg := Message{
		Type: MessageTypeReviewAdded,
		Data: reviewAddedPayload{
			Review: reviewPayload{
				ID:         review.ID,
				UserID:     review.UserID,
				MovieID:    review.MovieID,
				Rating:     review.Rating,
				ReviewText: review.ReviewText,
				CreatedAt:  review.CreatedAt,
				UpdatedAt:  review.UpdatedAt,
			},
			Author: authorPayload{
				ID:             author.ID,
				Username:       author.Username,
				ProfilePicture: author.ProfilePicture,
			},
		},
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.rooms[movieID] {
		select {
		case c.send <- msg:
		default:
			h.logger.WithField("movie_id", movieID).Warn("dropping review event for slow websocket client")
		}
	}
}
