package realtime

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/chrisospina/contact-manager/internal/pkg/logger"
)

type Event string

// EventContactsChanged carries no payload; subscribers re-fetch full state.
const EventContactsChanged Event = "ContactsChanged"

type Message struct {
	Event Event `json:"event"`
}

const outboundBuffer = 10

type Client struct {
	ID       uuid.UUID
	Outbound chan Message
	done     chan struct{}
}

// Hub is the subscriber registry for the contacts-changed signal. Clients
// connect and disconnect at any time; both are safe to interleave with an
// in-flight Broadcast.
type Hub struct {
	mu      sync.RWMutex
	log     *logger.Logger
	clients map[*Client]bool
}

func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		log:     log.With("component", "hub"),
		clients: make(map[*Client]bool),
	}
}

func (h *Hub) Register() *Client {
	client := &Client{
		ID:       uuid.New(),
		Outbound: make(chan Message, outboundBuffer),
		done:     make(chan struct{}),
	}

	h.mu.Lock()
	h.clients[client] = true
	h.mu.Unlock()

	h.log.Debug("client subscribed", "clientID", client.ID)
	return client
}

// Broadcast delivers msg to every connected client. Delivery is best-effort
// per subscriber: a client whose outbound buffer is full has the message
// dropped so one stalled connection cannot block the rest.
func (h *Hub) Broadcast(msg Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		select {
		case client.Outbound <- msg:
		default:
			h.log.Warn("dropping message; outbound buffer full", "clientID", client.ID)
		}
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// ServeHTTP streams hub messages to one client as server-sent events until
// the request context ends or the client is closed.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request, client *Client) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	ctx := r.Context()

	heartbeat := time.NewTicker(15 * time.Second)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			h.log.Debug("client context done", "clientID", client.ID, "err", ctx.Err())
			return
		case <-client.done:
			return
		case <-heartbeat.C:
			fmt.Fprint(w, ": ping\n\n")
			flusher.Flush()
		case msg := <-client.Outbound:
			raw, err := json.Marshal(msg)
			if err != nil {
				h.log.Warn("failed to marshal message", "error", err)
				continue
			}
			fmt.Fprintf(w, "event: message\ndata: %s\n\n", raw)
			flusher.Flush()
		}
	}
}

func (h *Hub) CloseClient(client *Client) {
	h.mu.Lock()
	if _, ok := h.clients[client]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.clients, client)
	h.mu.Unlock()

	close(client.done)
	close(client.Outbound)
	h.log.Debug("client unsubscribed", "clientID", client.ID)
}
