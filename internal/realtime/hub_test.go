package realtime

import (
	"sync"
	"testing"
	"time"

	"virtual-classroom-be/internal/entity"
	"virtual-classroom-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

var _ logger.ILogger = nopLogger{}

func newTestHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub(nopLogger{})
	go hub.Run()
	return hub
}

func newTestClient(hub *Hub, username, className string, role entity.UserRole) *Client {
	return &Client{
		Hub: hub,
		Identity: &entity.Identity{
			UserId:    uuid.New(),
			Username:  username,
			Role:      role,
			ClassName: className,
		},
		Send: make(chan []byte, 256),
	}
}

func register(t *testing.T, hub *Hub, clients ...*Client) {
	t.Helper()
	before := hub.ClientCount()
	for _, client := range clients {
		hub.register <- client
	}
	require.Eventually(t, func() bool {
		return hub.ClientCount() == before+len(clients)
	}, time.Second, 5*time.Millisecond)
}

func recvFrame(t *testing.T, c *Client) []byte {
	t.Helper()
	select {
	case frame := <-c.Send:
		return frame
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for frame")
		return nil
	}
}

func assertNoFrame(t *testing.T, c *Client) {
	t.Helper()
	select {
	case frame := <-c.Send:
		t.Fatalf("unexpected frame: %s", frame)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubRoomBroadcast(t *testing.T) {
	hub := newTestHub(t)
	a := newTestClient(hub, "a", "SS1A", entity.UserRoleStudent)
	b := newTestClient(hub, "b", "SS1A", entity.UserRoleStudent)
	c := newTestClient(hub, "c", "SS1A", entity.UserRoleStudent)
	register(t, hub, a, b, c)

	hub.JoinRoom(a, "room1")
	hub.JoinRoom(b, "room1")
	hub.JoinRoom(c, "room2")

	hub.BroadcastRoom("room1", []byte("hello"), nil)

	assert.Equal(t, []byte("hello"), recvFrame(t, a))
	assert.Equal(t, []byte("hello"), recvFrame(t, b))
	assertNoFrame(t, c)
}

func TestHubBroadcastExcludesSender(t *testing.T) {
	hub := newTestHub(t)
	a := newTestClient(hub, "a", "SS1A", entity.UserRoleStudent)
	b := newTestClient(hub, "b", "SS1A", entity.UserRoleStudent)
	register(t, hub, a, b)

	hub.JoinRoom(a, "room1")
	hub.JoinRoom(b, "room1")

	hub.BroadcastRoom("room1", []byte("offer"), a)

	assert.Equal(t, []byte("offer"), recvFrame(t, b))
	assertNoFrame(t, a)
}

func TestHubJoinIsIdempotent(t *testing.T) {
	hub := newTestHub(t)
	a := newTestClient(hub, "a", "SS1A", entity.UserRoleStudent)
	register(t, hub, a)

	hub.JoinRoom(a, "room1")
	hub.JoinRoom(a, "room1")
	assert.Equal(t, 1, hub.RoomSize("room1"))

	hub.BroadcastRoom("room1", []byte("once"), nil)
	assert.Equal(t, []byte("once"), recvFrame(t, a))
	assertNoFrame(t, a)
}

func TestHubJoinRequiresRegistration(t *testing.T) {
	hub := newTestHub(t)
	ghost := newTestClient(hub, "ghost", "SS1A", entity.UserRoleStudent)

	hub.JoinRoom(ghost, "room1")
	assert.Equal(t, 0, hub.RoomSize("room1"))
}

func TestHubTeardownCleansEveryRoom(t *testing.T) {
	hub := newTestHub(t)
	a := newTestClient(hub, "a", "SS1A", entity.UserRoleStudent)
	b := newTestClient(hub, "b", "SS1A", entity.UserRoleStudent)
	register(t, hub, a, b)

	hub.JoinRoom(a, "room1")
	hub.JoinRoom(a, "room2")
	hub.JoinRoom(b, "room1")

	var left []string
	done := make(chan struct{})
	hub.SetRoomLeaveHandler(func(roomId string, identity *entity.Identity) {
		left = append(left, roomId)
		if len(left) == 2 {
			close(done)
		}
	})

	hub.unregister <- a

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for leave callbacks")
	}
	assert.ElementsMatch(t, []string{"room1", "room2"}, left)
	assert.Equal(t, 1, hub.ClientCount())
	assert.Equal(t, 1, hub.RoomSize("room1"))
	assert.Equal(t, 0, hub.RoomSize("room2"))

	// Send channel is closed exactly once.
	_, open := <-a.Send
	assert.False(t, open)
}

func TestHubDoubleUnregisterIsNoop(t *testing.T) {
	hub := newTestHub(t)
	a := newTestClient(hub, "a", "SS1A", entity.UserRoleStudent)
	register(t, hub, a)

	hub.unregister <- a
	hub.unregister <- a

	require.Eventually(t, func() bool {
		return hub.ClientCount() == 0
	}, time.Second, 5*time.Millisecond)
}

func TestHubPushNotificationReachesAllConnections(t *testing.T) {
	hub := newTestHub(t)
	userId := uuid.New()

	first := newTestClient(hub, "a", "SS1A", entity.UserRoleStudent)
	second := newTestClient(hub, "a", "SS1A", entity.UserRoleStudent)
	first.Identity.UserId = userId
	second.Identity.UserId = userId
	other := newTestClient(hub, "b", "SS1A", entity.UserRoleStudent)
	register(t, hub, first, second, other)

	hub.PushNotification(userId, notificationFixture())

	assert.NotEmpty(t, recvFrame(t, first))
	assert.NotEmpty(t, recvFrame(t, second))
	assertNoFrame(t, other)
}

// Pushes race register/unregister churn for one user. Tiny send buffers
// keep the slow-client path hot; a push reaching a torn-down channel
// would panic the process.
func TestHubPushNotificationDuringChurn(t *testing.T) {
	hub := newTestHub(t)
	userId := uuid.New()

	stop := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
					hub.PushNotification(userId, notificationFixture())
				}
			}
		}()
	}

	for i := 0; i < 300; i++ {
		client := newTestClient(hub, "a", "SS1A", entity.UserRoleStudent)
		client.Identity.UserId = userId
		client.Send = make(chan []byte, 1)
		hub.register <- client
		hub.unregister <- client
	}

	close(stop)
	wg.Wait()

	require.Eventually(t, func() bool {
		return hub.ClientCount() == 0
	}, time.Second, 5*time.Millisecond)
}
