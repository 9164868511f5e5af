package live

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/yeremiapane/rotibox/models"
)

// Event types
const (
	EventMenuUpdate    = "menu_update"
	EventMenuDelete    = "menu_delete"
	EventOrderUpdate   = "order_update"
	EventCartUpdate    = "cart_update"
	EventContactUpdate = "contact_update"
	EventAdminNotif    = "admin_notification"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub menampung semua client websocket (admin dan pelanggan) dan
// menyiarkan snapshot baru setiap ada perubahan tabel. Client yang
// subscribe ulang akan menerima stream snapshot dari awal lagi.
type Hub struct {
	clients map[*websocket.Conn]string // conn -> role
	mutex   sync.Mutex
}

var hub = Hub{
	clients: make(map[*websocket.Conn]string),
}

// RegisterClient -> menambahkan connection ke set dengan role
func RegisterClient(conn *websocket.Conn, role string) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = role
}

// UnregisterClient -> melepaskan connection
func UnregisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

// BroadcastMenuUpdate -> katalog berubah (create/update/setActive)
func BroadcastMenuUpdate(menu models.Menu) {
	broadcast(Message{Event: EventMenuUpdate, Data: menu})
}

// BroadcastMenuDelete -> menu dihapus dari katalog
func BroadcastMenuDelete(menuID uint) {
	broadcast(Message{Event: EventMenuDelete, Data: map[string]uint{"menu_id": menuID}})
}

// BroadcastOrderUpdate -> order baru atau status berubah
func BroadcastOrderUpdate(order models.Order) {
	broadcast(Message{Event: EventOrderUpdate, Data: order})
}

// BroadcastCartUpdate -> keranjang user berubah
func BroadcastCartUpdate(userID uint) {
	broadcast(Message{Event: EventCartUpdate, Data: map[string]uint{"user_id": userID}})
}

// BroadcastContactUpdate -> info kontak toko berubah
func BroadcastContactUpdate(info models.InfoContact) {
	broadcast(Message{Event: EventContactUpdate, Data: info})
}

// BroadcastAdminNotification -> notifikasi untuk admin
func BroadcastAdminNotification(message string) {
	broadcast(Message{Event: EventAdminNotif, Data: message})
}

// BroadcastMessage -> broadcast pesan umum
func BroadcastMessage(msg Message) {
	broadcast(msg)
}

func broadcast(msg Message) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	for conn := range hub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			continue
		}
	}
}
