package ws

import (
	"sync"

	"campusconnect_backend/internal/logger"
	"campusconnect_backend/internal/store"
)

// Manager fans store change events out to connected clients. Presentation
// layers use the events to decide when and what to refresh, instead of the
// core triggering re-renders itself.
type Manager struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	events     chan store.Event
	done       chan struct{}
	stopOnce   sync.Once
	mu         sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		events:     make(chan store.Event, 64),
		done:       make(chan struct{}),
	}
}

// Run processes registrations and event fan-out until Stop is called.
// Call it in its own goroutine.
func (m *Manager) Run() {
	for {
		select {
		case <-m.done:
			return

		case client := <-m.register:
			m.mu.Lock()
			m.clients[client] = true
			m.mu.Unlock()
			logger.Debug("ws client registered", "total", m.clientCount())

		case client := <-m.unregister:
			m.mu.Lock()
			if _, ok := m.clients[client]; ok {
				close(client.send)
				delete(m.clients, client)
			}
			m.mu.Unlock()
			logger.Debug("ws client unregistered", "total", m.clientCount())

		case event := <-m.events:
			m.broadcast(event)
		}
	}
}

// Stop ends the Run loop. Safe to call more than once.
func (m *Manager) Stop() {
	m.stopOnce.Do(func() { close(m.done) })
}

// Notify enqueues a store event for broadcast. It is the store.Listener
// wired in at startup; it never blocks the mutating caller.
func (m *Manager) Notify(e store.Event) {
	select {
	case m.events <- e:
	default:
		logger.Warn("ws event queue full, dropping event", "entity", e.Entity, "id", e.ID)
	}
}

func (m *Manager) broadcast(e store.Event) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for client := range m.clients {
		select {
		case client.send <- e:
		default:
			// Slow consumer; drop it rather than stall the rest.
			go func(c *Client) { m.unregister <- c }(client)
		}
	}
}

func (m *Manager) clientCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients)
}
