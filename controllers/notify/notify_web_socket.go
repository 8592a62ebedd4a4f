// notify_web_socket.go
package notifyControllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/G9140/E-commerce-website/notify"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// StreamNotifications pushes the full active notification list to the
// client whenever it changes, including the list current at connect
// time. The connection closes when the client goes away.
func StreamNotifications(hub *notify.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		// Writes come from hub callbacks on arbitrary goroutines.
		var mu sync.Mutex
		cancel := hub.Subscribe(func(list []notify.Notification) {
			data, err := json.Marshal(list)
			if err != nil {
				return
			}
			mu.Lock()
			conn.WriteMessage(websocket.TextMessage, data)
			mu.Unlock()
		})
		defer cancel()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	}
}
