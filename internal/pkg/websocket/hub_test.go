package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	gorilla "github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/facultyhub/internal/app/models"
)

func startHub(t *testing.T) (*Hub, *httptest.Server, uuid.UUID) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	hub := NewHub(zerolog.Nop())
	go hub.Run(ctx)

	userID := uuid.New()
	up := NewUpgrader(hub, []string{"http://localhost:5173"})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = up.Serve(w, r, userID)
	}))
	t.Cleanup(srv.Close)

	return hub, srv, userID
}

func dial(t *testing.T, srv *httptest.Server, origin string) (*gorilla.Conn, *http.Response, error) {
	t.Helper()
	header := http.Header{}
	if origin != "" {
		header.Set("Origin", origin)
	}
	return gorilla.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), header)
}

func TestHubDeliversNotificationToUser(t *testing.T) {
	hub, srv, userID := startHub(t)

	conn, _, err := dial(t, srv, "http://localhost:5173")
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.ClientCount(userID) == 1 }, time.Second, 10*time.Millisecond)

	hub.Notify(userID, models.Success("Certificate uploaded", "ISO 9001"))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg Message
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, "notification", msg.Type)
	assert.Equal(t, userID, msg.UserID)
	assert.Equal(t, "Certificate uploaded", msg.Notification.Title)
	assert.Equal(t, models.VariantDefault, msg.Notification.Variant)
}

func TestHubIgnoresOtherUsers(t *testing.T) {
	hub, srv, userID := startHub(t)

	conn, _, err := dial(t, srv, "")
	require.NoError(t, err)
	defer conn.Close()
	require.Eventually(t, func() bool { return hub.ClientCount(userID) == 1 }, time.Second, 10*time.Millisecond)

	hub.Notify(uuid.New(), models.Failure("Error", "not for you"))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	_, _, err = conn.ReadMessage()
	assert.Error(t, err)
}

func TestHubUnregistersOnClose(t *testing.T) {
	hub, srv, userID := startHub(t)

	conn, _, err := dial(t, srv, "")
	require.NoError(t, err)
	require.Eventually(t, func() bool { return hub.ClientCount(userID) == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return hub.ClientCount(userID) == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestUpgraderRejectsForeignOrigin(t *testing.T) {
	_, srv, _ := startHub(t)

	_, resp, err := dial(t, srv, "http://evil.example.com")
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestHubShutdownDoesNotBlockClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(zerolog.Nop())
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()

	userID := uuid.New()
	served := make(chan error, 1)
	up := NewUpgrader(hub, nil)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		served <- up.Serve(w, r, userID)
	}))
	defer srv.Close()

	conn, _, err := dial(t, srv, "")
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, <-served)
	require.Eventually(t, func() bool { return hub.ClientCount(userID) == 1 }, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("hub did not stop")
	}
	assert.Equal(t, 0, hub.ClientCount(userID))

	// A disconnecting client after shutdown returns immediately
	left := make(chan struct{})
	go func() {
		hub.leave(&Client{hub: hub, userID: userID})
		close(left)
	}()
	select {
	case <-left:
	case <-time.After(time.Second):
		t.Fatal("leave blocked after shutdown")
	}

	// A late connection is refused instead of hanging
	late, _, err := dial(t, srv, "")
	require.NoError(t, err)
	defer late.Close()
	select {
	case err := <-served:
		assert.ErrorIs(t, err, ErrHubClosed)
	case <-time.After(time.Second):
		t.Fatal("Serve blocked after shutdown")
	}
	require.NoError(t, late.SetReadDeadline(time.Now().Add(time.Second)))
	_, _, err = late.ReadMessage()
	assert.Error(t, err)
}
