package ws_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"printshop/internal/adapters/in/ws"
	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/domain/model/kernel"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type receivedMessage struct {
	Event string  `json:"event"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
}

func startHubServer(t *testing.T) (*ws.Hub, *httptest.Server) {
	t.Helper()
	hub := ws.NewHub()
	e := echo.New()
	e.GET("/ws/orders/:orderId/location", hub.HandleOrderLocation)

	server := httptest.NewServer(e)
	t.Cleanup(server.Close)
	return hub, server
}

func dial(t *testing.T, server *httptest.Server, orderCode string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/orders/" + orderCode + "/location"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForSubscribers(t *testing.T, hub *ws.Hub, orderCode string, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.SubscriberCount(orderCode) != want {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d subscribers for %s, have %d", want, orderCode, hub.SubscriberCount(orderCode))
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHub_BroadcastReachesRoomSubscribers(t *testing.T) {
	hub, server := startHubServer(t)
	conn := dial(t, server, "O1234")
	waitForSubscribers(t, hub, "O1234", 1)

	point, err := kernel.NewGeoPoint(16.44, 80.62)
	require.NoError(t, err)
	hub.BroadcastLocation("O1234", point)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg receivedMessage
	require.NoError(t, conn.ReadJSON(&msg))

	assert.Equal(t, "deliveryLocation:O1234", msg.Event)
	assert.InDelta(t, 16.44, msg.Lat, 0.001)
	assert.InDelta(t, 80.62, msg.Lng, 0.001)
}

func TestHub_BroadcastIsScopedToOrder(t *testing.T) {
	hub, server := startHubServer(t)
	watcher := dial(t, server, "O1234")
	bystander := dial(t, server, "O5678")
	waitForSubscribers(t, hub, "O1234", 1)
	waitForSubscribers(t, hub, "O5678", 1)

	point, err := kernel.NewGeoPoint(10, 20)
	require.NoError(t, err)
	hub.BroadcastLocation("O1234", point)

	require.NoError(t, watcher.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg receivedMessage
	require.NoError(t, watcher.ReadJSON(&msg))
	assert.Equal(t, "deliveryLocation:O1234", msg.Event)

	require.NoError(t, bystander.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	_, _, readErr := bystander.ReadMessage()
	require.Error(t, readErr)
	assert.True(t, strings.Contains(readErr.Error(), "timeout") ||
		websocket.IsUnexpectedCloseError(readErr))
}

func TestHub_BroadcastToEmptyRoomIsNoOp(t *testing.T) {
	hub := ws.NewHub()

	point, err := kernel.NewGeoPoint(10, 20)
	require.NoError(t, err)
	hub.BroadcastLocation("O9999", point)

	assert.Zero(t, hub.SubscriberCount("O9999"))
}

type stubPublisher struct {
	mu       sync.Mutex
	commands []commands.PublishLocationCommand
	err      error
}

func (p *stubPublisher) Handle(_ context.Context, cmd commands.PublishLocationCommand) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.commands = append(p.commands, cmd)
	return p.err
}

func (p *stubPublisher) received() []commands.PublishLocationCommand {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]commands.PublishLocationCommand(nil), p.commands...)
}

func TestHub_InboundFrameDispatchesPublish(t *testing.T) {
	hub, server := startHubServer(t)
	publisher := &stubPublisher{}
	hub.SetPublisher(publisher)

	conn := dial(t, server, "O1234")
	waitForSubscribers(t, hub, "O1234", 1)

	require.NoError(t, conn.WriteJSON(map[string]float64{"lat": 16.44, "lng": 80.62}))

	deadline := time.Now().Add(2 * time.Second)
	for len(publisher.received()) == 0 {
		if time.Now().After(deadline) {
			t.Fatal("publish never reached the handler")
		}
		time.Sleep(5 * time.Millisecond)
	}

	cmd := publisher.received()[0]
	assert.Equal(t, "O1234", cmd.OrderCode())
	assert.InDelta(t, 16.44, cmd.Point().Lat(), 0.001)
}

func TestHub_InvalidCoordinateReportedToSenderOnly(t *testing.T) {
	hub, server := startHubServer(t)
	publisher := &stubPublisher{}
	hub.SetPublisher(publisher)

	conn := dial(t, server, "O1234")
	waitForSubscribers(t, hub, "O1234", 1)

	require.NoError(t, conn.WriteJSON(map[string]float64{"lat": 91, "lng": 20}))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var reply map[string]string
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Contains(t, reply["error"], "lat")
	assert.Empty(t, publisher.received())
}

func TestHub_LeaveOnDisconnect(t *testing.T) {
	hub, server := startHubServer(t)
	conn := dial(t, server, "O1234")
	waitForSubscribers(t, hub, "O1234", 1)

	conn.Close()
	waitForSubscribers(t, hub, "O1234", 0)
}

