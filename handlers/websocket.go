package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	cmap "github.com/orcaman/concurrent-map/v2"
)

// ActivityEvent is pushed to connected admin dashboards
type ActivityEvent struct {
	Type      string `json:"type"` // upload, delete, comment, like
	ArtworkID uint64 `json:"artwork_id"`
	Title     string `json:"title,omitempty"`
	Created   int64  `json:"created"`
}

// SendSocketFunc returns true if data was successfully sent
type SendSocketFunc func([]byte) bool

type ConnectedClient struct {
	fun SendSocketFunc
}

var (
	connectedDashboards = cmap.New[*ConnectedClient]()
	upgrader            = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
)

// Broadcast fans an event out to every connected dashboard
func Broadcast(event ActivityEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	for _, client := range connectedDashboards.Items() {
		client.fun(data)
	}
}

// DashboardSocket streams gallery activity to the admin dashboard
func DashboardSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Print("upgrade:", err)
		return
	}
	defer conn.Close()

	// Setup client
	isConnected := true
	id := uuid.NewString()
	client := ConnectedClient{}
	client.fun = func(data []byte) bool {
		if !isConnected {
			return false
		}
		err := conn.WriteMessage(websocket.TextMessage, data)
		if err != nil {
			log.Println("write err:", err)
			isConnected = false
			return false
		}
		return true
	}
	connectedDashboards.Set(id, &client)
	defer connectedDashboards.Remove(id)
	// Main read cycle
	for {
		mt, message, err := conn.ReadMessage()
		if err != nil {
			isConnected = false
			break
		}
		if string(message) == "ping" {
			conn.WriteMessage(mt, []byte("pong"))
		}
	}
}
