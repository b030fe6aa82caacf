package pushclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	votetrackdomain "github.com/vfg2006/satisfaction-monitor-api/infrastructure/integrator/votetrack/domain"
	"github.com/vfg2006/satisfaction-monitor-api/internal/domain"
	"github.com/vfg2006/satisfaction-monitor-api/internal/livefeed"
)

type fakeBackend struct {
	server   *httptest.Server
	frames   chan votetrackdomain.PushFrame
	conns    chan *websocket.Conn
	authSeen chan string
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	backend := &fakeBackend{
		frames:   make(chan votetrackdomain.PushFrame, 16),
		conns:    make(chan *websocket.Conn, 4),
		authSeen: make(chan string, 4),
	}
	upgrader := websocket.Upgrader{}

	backend.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		backend.authSeen <- r.Header.Get("Authorization")
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		backend.conns <- conn
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var frame votetrackdomain.PushFrame
			if json.Unmarshal(data, &frame) == nil {
				backend.frames <- frame
			}
		}
	}))
	t.Cleanup(backend.server.Close)
	return backend
}

func (b *fakeBackend) url() string {
	return "ws" + strings.TrimPrefix(b.server.URL, "http")
}

func (b *fakeBackend) nextFrame(t *testing.T) votetrackdomain.PushFrame {
	t.Helper()
	select {
	case frame := <-b.frames:
		return frame
	case <-time.After(2 * time.Second):
		t.Fatal("nenhum evento recebido pelo backend")
	}
	return votetrackdomain.PushFrame{}
}

func (b *fakeBackend) nextConn(t *testing.T) *websocket.Conn {
	t.Helper()
	select {
	case conn := <-b.conns:
		return conn
	case <-time.After(2 * time.Second):
		t.Fatal("cliente não conectou")
	}
	return nil
}

func nextMessage(t *testing.T, sub livefeed.Subscription) livefeed.Message {
	t.Helper()
	select {
	case msg := <-sub.C():
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("nenhuma mensagem publicada")
	}
	return livefeed.Message{}
}

func startClient(t *testing.T, backend *fakeBackend) (*Client, *livefeed.Broker) {
	t.Helper()
	client := New(Config{URL: backend.url(), Token: "abc", MinBackoff: 10 * time.Millisecond, MaxBackoff: 50 * time.Millisecond})
	broker := livefeed.NewBroker(livefeed.WithRoomHooks(client.Join, client.Leave))
	client.Attach(broker)
	return client, broker
}

func TestClient_RejoinsRoomsAndPublishesVotes(t *testing.T) {
	backend := newFakeBackend(t)
	client, broker := startClient(t, backend)

	sub, err := broker.Subscribe("12")
	require.NoError(t, err)
	all, err := broker.Subscribe(livefeed.AllCompanies)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = client.Run(ctx) }()

	conn := backend.nextConn(t)
	assert.Equal(t, "Bearer abc", <-backend.authSeen)

	joined := map[string]string{}
	for i := 0; i < 2; i++ {
		frame := backend.nextFrame(t)
		joined[frame.CompanyID.String()] = frame.Event
	}
	assert.Equal(t, map[string]string{
		"12":  votetrackdomain.EventJoinCompany,
		"all": votetrackdomain.EventJoinCompany,
	}, joined)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{
		"event": "newVote",
		"companyId": 12,
		"data": {"id": 99, "companyId": 12, "serviceTypeId": 3, "rating": "Ótimo", "createdAt": "2024-05-07T12:00:00Z", "serviceType": {"name": "Almoço"}}
	}`)))

	msg := nextMessage(t, sub)
	assert.Equal(t, livefeed.KindVote, msg.Kind)
	assert.Equal(t, "12", msg.CompanyID)
	require.NotNil(t, msg.Vote)
	assert.Equal(t, "99", msg.Vote.ID)
	assert.Equal(t, domain.RatingOtimo, msg.Vote.Rating)
	assert.Equal(t, "Almoço", msg.Vote.ServiceTypeName)

	allMsg := nextMessage(t, all)
	assert.Equal(t, "99", allMsg.Vote.ID)
}

func TestClient_PublishesSnapshots(t *testing.T) {
	backend := newFakeBackend(t)
	client, broker := startClient(t, backend)

	sub, err := broker.Subscribe("5")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = client.Run(ctx) }()

	conn := backend.nextConn(t)
	backend.nextFrame(t)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"event": "ping"}`)))
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`não é json`)))
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{
		"event": "voteUpdate",
		"companyId": "5",
		"data": {"companyId": "5", "totalVotes": 3, "votesByRating": {"Bom": 2, "Ruim": 1}, "averageRating": 2.33}
	}`)))

	msg := nextMessage(t, sub)
	assert.Equal(t, livefeed.KindSnapshot, msg.Kind)
	require.NotNil(t, msg.Snapshot)
	assert.Equal(t, 3, msg.Snapshot.TotalVotes)
	assert.Equal(t, 2, msg.Snapshot.CountsByRating[domain.RatingBom])
	assert.Equal(t, 1, msg.Snapshot.CountsByRating[domain.RatingRuim])
}

func TestClient_FollowsBrokerRooms(t *testing.T) {
	backend := newFakeBackend(t)
	client, broker := startClient(t, backend)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = client.Run(ctx) }()

	backend.nextConn(t)
	require.Eventually(t, client.Connected, 2*time.Second, 10*time.Millisecond)

	first, err := broker.Subscribe("7")
	require.NoError(t, err)
	second, err := broker.Subscribe("7")
	require.NoError(t, err)

	first.Close()
	second.Close()

	// o reenvio das salas logo após conectar pode repetir o join, o que é inofensivo
	var events []string
	for {
		frame := backend.nextFrame(t)
		assert.Equal(t, "7", frame.CompanyID.String())
		events = append(events, frame.Event)
		if frame.Event == votetrackdomain.EventLeaveCompany {
			break
		}
	}
	assert.Equal(t, votetrackdomain.EventJoinCompany, events[0])
	assert.NotContains(t, events[:len(events)-1], votetrackdomain.EventLeaveCompany)

	select {
	case extra := <-backend.frames:
		t.Fatalf("evento inesperado: %+v", extra)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestClient_ReconnectsAfterDrop(t *testing.T) {
	backend := newFakeBackend(t)
	client, broker := startClient(t, backend)

	_, err := broker.Subscribe("3")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = client.Run(ctx) }()

	conn := backend.nextConn(t)
	backend.nextFrame(t)
	_ = conn.Close()

	backend.nextConn(t)
	frame := backend.nextFrame(t)
	assert.Equal(t, votetrackdomain.EventJoinCompany, frame.Event)
	assert.Equal(t, "3", frame.CompanyID.String())
}
