package ordercontroller

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kursatemre/qr-menu-api/models"
)

func dialOrderSocket(t *testing.T) (*websocket.Conn, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/orders/ws", OrderWebSocketHandler)
	srv := httptest.NewServer(r)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/orders/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)

	// The handler registers the connection after the upgrade completes.
	require.Eventually(t, func() bool {
		wsMu.Lock()
		defer wsMu.Unlock()
		return len(wsClients) > 0
	}, time.Second, 10*time.Millisecond)

	return conn, func() {
		conn.Close()
		srv.Close()
	}
}

func TestBroadcastReachesConnectedListener(t *testing.T) {
	conn, teardown := dialOrderSocket(t)
	defer teardown()

	notes := "kapıda ödeme"
	broadcastNewOrder(models.Order{
		ID:        "o1",
		ProductID: "p1",
		FirstName: "Ali",
		LastName:  "Veli",
		Phone:     "0555",
		Quantity:  2,
		Status:    models.OrderStatusPending,
		Notes:     &notes,
		CreatedBy: models.OrderCreatedByCustomer,
	})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	var got models.Order
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, "o1", got.ID)
	assert.Equal(t, models.OrderStatusPending, got.Status)
	assert.Equal(t, 2, got.Quantity)
}

func TestBroadcastPrunesDepartedListener(t *testing.T) {
	conn, teardown := dialOrderSocket(t)
	defer teardown()

	conn.Close()

	// Either the read pump or a failed broadcast write removes the client.
	broadcastNewOrder(models.Order{ID: "o2", ProductID: "p1"})
	require.Eventually(t, func() bool {
		wsMu.Lock()
		defer wsMu.Unlock()
		return len(wsClients) == 0
	}, time.Second, 10*time.Millisecond)
}
