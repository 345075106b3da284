package main

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/net/websocket"

	"github.com/azriv/go-pong/pong"
)

// WsMessage is a control message from a websocket client. Actor is
// accepted for wire compatibility but ignored: both paddles follow the
// same shared input.
type WsMessage struct {
	Type   string `json:"type"`
	Actor  string `json:"actor"`
	Target string `json:"target"`
}

// WsGameState is the per-frame snapshot sent to every client.
type WsGameState struct {
	Player1 pong.Paddle `json:"player1"`
	Player2 pong.Paddle `json:"player2"`
	Ball    pong.Ball   `json:"ball"`
	Paused  bool        `json:"paused"`
}

// RemoteKeys is the folded key state of all connected clients.
type RemoteKeys struct {
	Up          bool
	Down        bool
	PauseTapped bool
}

// Hub tracks websocket clients, broadcasts the game state to them once
// per frame and folds their key messages into one shared input state.
type Hub struct {
	mu      sync.Mutex
	clients map[uuid.UUID]*websocket.Conn
	keys    RemoteKeys
}

func NewHub() *Hub {
	return &Hub{clients: make(map[uuid.UUID]*websocket.Conn)}
}

// Serve handles one websocket client until it disconnects.
func (h *Hub) Serve(ws *websocket.Conn) {
	id := uuid.New()

	h.mu.Lock()
	h.clients[id] = ws
	h.mu.Unlock()
	fmt.Println("client connected:", id)

	defer func() {
		h.mu.Lock()
		delete(h.clients, id)
		h.mu.Unlock()
		fmt.Println("client disconnected:", id)
	}()

	for {
		var msg WsMessage
		if err := websocket.JSON.Receive(ws, &msg); err != nil {
			return
		}
		h.apply(msg)
	}
}

// apply folds one client message into the shared key state.
func (h *Hub) apply(msg WsMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch msg.Type {
	case "keydown", "keyup":
		down := msg.Type == "keydown"
		switch msg.Target {
		case "up":
			h.keys.Up = down
		case "down":
			h.keys.Down = down
		}

	case "pause":
		h.keys.PauseTapped = true
	}
}

// Keys returns the remote key state for this frame. The pause tap is
// consumed here so it fires on exactly one frame per "pause" message.
func (h *Hub) Keys() RemoteKeys {
	h.mu.Lock()
	defer h.mu.Unlock()

	k := h.keys
	h.keys.PauseTapped = false
	return k
}

// Broadcast sends the current state snapshot to every client. Send
// errors are not handled here; a dead connection is reaped by its own
// Serve loop on the next Receive.
func (h *Hub) Broadcast(g *pong.Game) {
	state := WsGameState{
		Player1: *g.Player1,
		Player2: *g.Player2,
		Ball:    *g.Ball,
		Paused:  g.Paused,
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ws := range h.clients {
		websocket.JSON.Send(ws, state)
	}
}
