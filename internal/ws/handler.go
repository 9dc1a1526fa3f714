package ws

import (
	"log"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gorilla/websocket"
)

type Handler struct {
	hub    *Hub
	logger *log.Logger
}

func NewHandler(hub *Hub, logger *log.Logger) *Handler {
	return &Handler{hub: hub, logger: logger}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleEventsWS upgrades the connection and attaches it to the hub as a
// session-event listener. The stream is broadcast-only: listeners receive
// decision and exhaustion events, anything they send is discarded.
func (h *Handler) HandleEventsWS(c fiber.Ctx) error {
	if h == nil || h.hub == nil {
		return fiber.ErrServiceUnavailable
	}

	fiberHandler := adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			if h.logger != nil {
				h.logger.Printf("WS upgrade error | remote=%s error=%v", r.RemoteAddr, err)
			}
			return
		}

		client := NewClient(h.hub, conn)
		h.hub.Register(client)
		if h.logger != nil {
			h.logger.Printf("WS event listener attached | remote=%s", conn.RemoteAddr())
		}
		go client.WritePump()
		go client.ReadPump()
	})

	return fiberHandler(c)
}
