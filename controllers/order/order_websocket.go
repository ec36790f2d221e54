package ordercontroller

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/kursatemre/qr-menu-api/models"
)

// A connection that cannot take a frame within this window is dropped.
const wsWriteWait = 5 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// wsMu guards the registry only; each connection carries its own write
// lock so one stalled listener never blocks the order-creation path.
var (
	wsMu      sync.Mutex
	wsClients = make(map[*websocket.Conn]*sync.Mutex)
)

// OrderWebSocketHandler keeps an admin connection open and pushes every
// newly created order to it.
func OrderWebSocketHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	wsMu.Lock()
	wsClients[conn] = &sync.Mutex{}
	wsMu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			wsMu.Lock()
			delete(wsClients, conn)
			wsMu.Unlock()
			break
		}
	}
}

func broadcastNewOrder(order models.Order) {
	data, err := json.Marshal(order)
	if err != nil {
		return
	}

	wsMu.Lock()
	clients := make(map[*websocket.Conn]*sync.Mutex, len(wsClients))
	for conn, writeMu := range wsClients {
		clients[conn] = writeMu
	}
	wsMu.Unlock()

	for conn, writeMu := range clients {
		writeMu.Lock()
		conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
		err := conn.WriteMessage(websocket.TextMessage, data)
		writeMu.Unlock()

		if err != nil {
			conn.Close()
			wsMu.Lock()
			delete(wsClients, conn)
			wsMu.Unlock()
		}
	}
}
