// Package ws streams live delivery locations to subscribed clients over
// WebSocket. Each order has its own room; broadcasts reach only the clients
// watching that order.
package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/domain/model/kernel"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// LocationPublisher handles inbound location publishes from delivery clients.
type LocationPublisher interface {
	Handle(ctx context.Context, cmd commands.PublishLocationCommand) error
}

// locationMessage is the wire format of a live-location event.
type locationMessage struct {
	Event string  `json:"event"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
}

// publishMessage is the wire format of an inbound location publish.
type publishMessage struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Hub tracks WebSocket subscribers per order and fans broadcasts out to them.
// Implements ports.LocationBroadcaster.
type Hub struct {
	mu        sync.RWMutex
	rooms     map[string]map[*websocket.Conn]bool
	upgrader  websocket.Upgrader
	publisher LocationPublisher
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// SetPublisher wires the handler that inbound location publishes dispatch to.
// Called once during composition; the hub drops inbound coordinates until then.
func (h *Hub) SetPublisher(publisher LocationPublisher) {
	h.publisher = publisher
}

// HandleOrderLocation handles GET /ws/orders/:orderId/location. It upgrades
// the connection and keeps the client subscribed to the order's room until
// the client disconnects. Inbound {lat, lng} frames are treated as location
// publishes for the order; a rejected publish is reported back to the sender
// only.
func (h *Hub) HandleOrderLocation(c echo.Context) error {
	orderCode := c.Param("orderId")
	ctx := c.Request().Context()

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	h.join(orderCode, conn)
	defer h.leave(orderCode, conn)

	for {
		_, frame, err := conn.ReadMessage()
		if err != nil {
			return nil
		}

		var inbound publishMessage
		if err := json.Unmarshal(frame, &inbound); err != nil {
			// Malformed frame; keep the subscription alive.
			continue
		}

		if h.publisher == nil {
			continue
		}

		if err := h.publish(ctx, orderCode, inbound); err != nil {
			writeErr := conn.WriteJSON(map[string]string{"error": err.Error()})
			if writeErr != nil {
				return nil
			}
		}
	}
}

func (h *Hub) publish(ctx context.Context, orderCode string, inbound publishMessage) error {
	cmd, err := commands.NewPublishLocationCommand(orderCode, inbound.Lat, inbound.Lng)
	if err != nil {
		return err
	}
	return h.publisher.Handle(ctx, cmd)
}

// BroadcastLocation sends a delivery coordinate to every client watching the
// order. Clients whose connection fails are dropped from the room.
func (h *Hub) BroadcastLocation(orderCode string, point kernel.GeoPoint) {
	message := locationMessage{
		Event: "deliveryLocation:" + orderCode,
		Lat:   point.Lat(),
		Lng:   point.Lng(),
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.rooms[orderCode] {
		if err := conn.WriteJSON(message); err != nil {
			log.Warnf("dropping live-location subscriber for %s: %v", orderCode, err)
			conn.Close()
			delete(h.rooms[orderCode], conn)
		}
	}
}

// SubscriberCount reports how many clients are watching the order.
func (h *Hub) SubscriberCount(orderCode string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[orderCode])
}

func (h *Hub) join(orderCode string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.rooms[orderCode] == nil {
		h.rooms[orderCode] = make(map[*websocket.Conn]bool)
	}
	h.rooms[orderCode][conn] = true
}

func (h *Hub) leave(orderCode string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.rooms[orderCode], conn)
	if len(h.rooms[orderCode]) == 0 {
		delete(h.rooms, orderCode)
	}
}
