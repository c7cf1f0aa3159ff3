package chat

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Hub tracks one live websocket per chat session so assistant replies can
// be pushed without polling.
type Hub struct {
	connections map[string]*websocket.Conn
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[string]*websocket.Conn),
	}
}

func (h *Hub) Register(sessionKey string, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if oldConn, exists := h.connections[sessionKey]; exists && oldConn != nil {
		_ = oldConn.Close()
	}

	h.connections[sessionKey] = conn
}

func (h *Hub) Unregister(sessionKey string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conn, exists := h.connections[sessionKey]; exists && conn != nil {
		_ = conn.Close()
		delete(h.connections, sessionKey)
	}
}

func (h *Hub) SendToSession(sessionKey string, message interface{}) bool {
	h.mutex.RLock()
	conn, exists := h.connections[sessionKey]
	h.mutex.RUnlock()

	if !exists || conn == nil {
		return false
	}

	if err := conn.WriteJSON(message); err != nil {
		h.Unregister(sessionKey)
		return false
	}

	return true
}

func (h *Hub) IsConnected(sessionKey string) bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	_, exists := h.connections[sessionKey]
	return exists
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for key, conn := range h.connections {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.connections, key)
	}
}
