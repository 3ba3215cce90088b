// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/SoftbearStudios/quadsat/world/tree"
	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 5 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 8) / 10

	// Requests a client may have answered but not yet written.
	socketBufferSize = 64

	// Maximum message size allowed from peer.
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	HandshakeTimeout: time.Second,
	ReadBufferSize:   maxMessageSize,
	WriteBufferSize:  4096,
}

// Server shares one index between websocket clients.
type Server struct {
	index *tree.SyncIndex
}

func New(index *tree.SyncIndex) *Server {
	return &Server{index: index}
}

// ServeSocket upgrades r and serves requests until the client disconnects.
func (server *Server) ServeSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade error:", err)
		return
	}

	client := &socketClient{
		conn:  conn,
		index: server.index,
		send:  make(chan []byte, socketBufferSize),
	}
	go client.writePump()
	go client.readPump()
}

// socketClient answers requests from one connection in order.
type socketClient struct {
	conn  *websocket.Conn
	index *tree.SyncIndex
	send  chan []byte
	once  sync.Once
}

func (client *socketClient) destroy() {
	client.once.Do(func() {
		_ = client.conn.Close()
	})
}

func (client *socketClient) readPump() {
	defer func() {
		close(client.send)
		client.destroy()
	}()
	client.conn.SetReadLimit(maxMessageSize)
	_ = client.conn.SetReadDeadline(time.Now().Add(pongWait))
	client.conn.SetPongHandler(func(string) error {
		_ = client.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Println("close error:", err)
			}
			break
		}

		var out outbound
		if in, err := decodeInbound(data); err != nil {
			out = outbound{ID: in.ID, Error: err.Error()}
		} else {
			out = handle(client.index, in)
		}

		buf, err := out.encode()
		if err != nil {
			log.Println("marshal error:", err)
			break
		}

		select {
		case client.send <- buf:
		default:
			log.Println("socket client is not responsive")
			return
		}
	}
}

func (client *socketClient) writePump() {
	pingTicker := time.NewTicker(pingPeriod)
	defer func() {
		pingTicker.Stop()
		client.destroy()
	}()

	for {
		select {
		case buf, ok := <-client.send:
			_ = client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = client.conn.WriteMessage(websocket.CloseMessage, nil)
				return
			}
			if err := client.conn.WriteMessage(websocket.TextMessage, buf); err != nil {
				return
			}
		case <-pingTicker.C:
			_ = client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
