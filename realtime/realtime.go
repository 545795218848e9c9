package realtime

import (
	"log"
	"sync"

	"coderfest/models"

	"github.com/gorilla/websocket"
)

var (
	dashboardClients = make(map[*websocket.Conn]bool) // Connected admin dashboard clients
	broadcast        = make(chan RegistrationUpdate)  // Broadcast channel for accepted registrations
	mutex            sync.Mutex                       // Protects dashboardClients
)

// RegistrationUpdate is pushed to every connected dashboard when a new
// registration is accepted
type RegistrationUpdate struct {
	Registration models.Registration `json:"registration"`
	UpdateType   string              `json:"update_type"` // always "new", records are immutable
}

// RegisterClient adds a dashboard WebSocket client to the feed
func RegisterClient(conn *websocket.Conn) {
	mutex.Lock()
	dashboardClients[conn] = true
	mutex.Unlock()
}

// UnregisterClient removes a dashboard WebSocket client from the feed
func UnregisterClient(conn *websocket.Conn) {
	mutex.Lock()
	delete(dashboardClients, conn)
	mutex.Unlock()
}

// ClientCount reports how many dashboard clients are connected to the feed
func ClientCount() int {
	mutex.Lock()
	defer mutex.Unlock()
	return len(dashboardClients)
}

// BroadcastRegistration publishes a newly accepted registration to the feed
func BroadcastRegistration(reg models.Registration) {
	broadcast <- RegistrationUpdate{Registration: reg, UpdateType: "new"}
}

func handleBroadcast() {
	for {
		update := <-broadcast
		mutex.Lock()
		for client := range dashboardClients {
			if err := client.WriteJSON(update); err != nil {
				log.Printf("WebSocket write error: %v", err)
				client.Close()
				delete(dashboardClients, client)
			}
		}
		mutex.Unlock()
	}
}

func init() {
	go handleBroadcast()
}
