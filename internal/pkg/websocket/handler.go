package websocket

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Upgrader accepts connections from the configured origins only
type Upgrader struct {
	hub      *Hub
	upgrader websocket.Upgrader
}

// NewUpgrader creates an upgrader bound to hub. An empty allowedOrigins list accepts same-host requests only.
func NewUpgrader(hub *Hub, allowedOrigins []string) *Upgrader {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[strings.TrimRight(o, "/")] = true
	}

	return &Upgrader{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" || allowed["*"] || allowed[origin] {
					return true
				}
				u, err := url.Parse(origin)
				return err == nil && strings.EqualFold(u.Host, r.Host)
			},
		},
	}
}

// Serve upgrades the request and attaches the connection to userID's notification stream.
// It returns once the pumps are started.
func (u *Upgrader) Serve(w http.ResponseWriter, r *http.Request, userID uuid.UUID) error {
	conn, err := u.upgrader.Upgrade(w, r, nil)
	if err != nil {
		u.hub.logger.Error().Err(err).Str("userID", userID.String()).Msg("Failed to upgrade connection to WebSocket")
		return err
	}

	client := &Client{
		hub:    u.hub,
		conn:   conn,
		send:   make(chan []byte, 32),
		userID: userID,
		logger: u.hub.logger,
	}
	if err := u.hub.join(client); err != nil {
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
		conn.Close()
		return err
	}

	go client.writePump()
	go client.readPump()

	u.hub.logger.Info().
		Str("userID", userID.String()).
		Str("remoteAddr", conn.RemoteAddr().String()).
		Msg("Notification stream connected")
	return nil
}
