// Package events menyiarkan kejadian order ke panel admin lewat websocket,
// supaya daftar pesanan di dashboard ikut bergerak tanpa refresh.
package events

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/tehimas/warung-seblak/models"
)

const (
	EventOrderCreated = "order_created"
	EventOrderStatus  = "order_status"
	EventStockLow     = "stock_low"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub menampung koneksi websocket panel admin.
type Hub struct {
	clients map[*websocket.Conn]struct{}
	mutex   sync.Mutex
}

var hub = Hub{
	clients: make(map[*websocket.Conn]struct{}),
}

// RegisterClient menambahkan koneksi admin ke hub.
func RegisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = struct{}{}
}

// UnregisterClient melepas koneksi dan menutupnya.
func UnregisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

// BroadcastOrderCreated -> order baru masuk dari checkout
func BroadcastOrderCreated(order models.Order) {
	broadcast(Message{
		Event: EventOrderCreated,
		Data:  order,
	})
}

// BroadcastOrderStatus -> status order berubah
func BroadcastOrderStatus(order models.Order) {
	broadcast(Message{
		Event: EventOrderStatus,
		Data:  order,
	})
}

// BroadcastStockLow -> stok variasi/topping menyentuh batas minimum
func BroadcastStockLow(name string, current, minimum int) {
	broadcast(Message{
		Event: EventStockLow,
		Data: map[string]interface{}{
			"name":          name,
			"current_stock": current,
			"minimum_stock": minimum,
		},
	})
}

func broadcast(msg Message) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling message: %v", err)
		return
	}

	for conn := range hub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("Error sending message to client: %v", err)
			conn.Close()
			delete(hub.clients, conn)
		}
	}
}
