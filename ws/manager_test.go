package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUpgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// dial opens a real websocket pair against a throwaway server and registers
// the server side under userID.
func dial(t *testing.T, mgr *Manager, userID string) *websocket.Conn {
	t.Helper()
	registered := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		mgr.Register(userID, conn)
		close(registered)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	select {
	case <-registered:
	case <-time.After(2 * time.Second):
		t.Fatal("server side never registered")
	}
	return client
}

func TestSendToUserDelivers(t *testing.T) {
	mgr := NewManager()
	client := dial(t, mgr, "user-1")

	require.True(t, mgr.IsConnected("user-1"))
	require.NoError(t, mgr.SendToUser("user-1", []byte("hello")))

	client.SetReadDeadline(time.Now().Add(2 * time.Second))
	kind, payload, err := client.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, websocket.TextMessage, kind)
	assert.Equal(t, "hello", string(payload))
}

func TestSendToUnknownUser(t *testing.T) {
	mgr := NewManager()
	err := mgr.SendToUser("nobody", []byte("hello"))
	assert.Error(t, err)
	assert.False(t, mgr.IsConnected("nobody"))
}

func TestUnregisterClosesConnection(t *testing.T) {
	mgr := NewManager()
	client := dial(t, mgr, "user-1")

	mgr.Unregister("user-1")
	assert.False(t, mgr.IsConnected("user-1"))
	assert.Error(t, mgr.SendToUser("user-1", []byte("hello")))

	// The peer sees the closed socket.
	client.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := client.ReadMessage()
	assert.Error(t, err)
}

func TestRegisterReplacesExistingConnection(t *testing.T) {
	mgr := NewManager()
	old := dial(t, mgr, "user-1")
	_ = dial(t, mgr, "user-1")

	require.True(t, mgr.IsConnected("user-1"))
	assert.Equal(t, []string{"user-1"}, mgr.List())

	// The replaced socket is closed; the new one still receives.
	old.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := old.ReadMessage()
	assert.Error(t, err)

	require.NoError(t, mgr.SendToUser("user-1", []byte("still here")))
}
