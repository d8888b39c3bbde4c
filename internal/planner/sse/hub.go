// Package sse pushes roadmap change notifications to connected browsers so
// every open view refreshes after a committed mutation.
package sse

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

// Event is one server-sent event.
type Event struct {
	EventType string `json:"event"`
	Data      string `json:"data"`
}

// Client is one connected browser tab.
type Client struct {
	ID     string
	UserID string
	Events chan Event
}

// Hub fans events out to every connected client.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
	logger  *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients: make(map[string]*Client),
		logger:  logger,
	}
}

// Register adds a client to the hub.
func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client.ID] = client
	h.logger.Debug("sse client registered",
		zap.String("client_id", client.ID),
		zap.String("user_id", client.UserID),
		zap.Int("total", len(h.clients)))
}

// Unregister removes a client and closes its channel.
func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if client, ok := h.clients[clientID]; ok {
		close(client.Events)
		delete(h.clients, clientID)
		h.logger.Debug("sse client unregistered",
			zap.String("client_id", clientID),
			zap.Int("total", len(h.clients)))
	}
}

// Broadcast sends an event to every connected client. Slow clients are
// skipped rather than blocked on.
func (h *Hub) Broadcast(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients {
		select {
		case client.Events <- event:
		default:
			h.logger.Warn("sse client buffer full, dropping event",
				zap.String("client_id", client.ID))
		}
	}
}

// PublishProjectChange announces a committed mutation on one project.
// Action names the store operation (move_feature, add_idea, ...).
func (h *Hub) PublishProjectChange(projectID, action string) {
	payload, _ := json.Marshal(map[string]string{
		"project_id": projectID,
		"action":     action,
	})
	h.Broadcast(Event{EventType: "project_change", Data: string(payload)})
}

// PublishPortfolioChange announces a created or deleted project.
func (h *Hub) PublishPortfolioChange(projectID, action string) {
	payload, _ := json.Marshal(map[string]string{
		"project_id": projectID,
		"action":     action,
	})
	h.Broadcast(Event{EventType: "portfolio_change", Data: string(payload)})
}
