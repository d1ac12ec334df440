package client

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

	"github.com/chenhsong/OpenProtocol/internal/protocol"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	c, err := New(Config{
		URL:      "ws://127.0.0.1:5788",
		Password: "chenhsong",
		Filter:   protocol.FilterAll | protocol.FilterJobCards | protocol.FilterOperators,
	})
	require.NoError(t, err)
	return c
}

func TestNewRejectsBadConfig(t *testing.T) {
	_, err := New(Config{URL: "http://example.com", Password: "x"})
	assert.Error(t, err, "non-websocket URL accepted")

	_, err = New(Config{URL: "ws://example.com", Password: "  "})
	assert.Error(t, err, "blank password accepted")
}

func TestHandleAlive(t *testing.T) {
	c := newTestClient(t)

	reply := c.handle(protocol.NewAlive())
	require.NotNil(t, reply)
	assert.IsType(t, &protocol.Alive{}, reply)
}

func TestHandleJoinResponse(t *testing.T) {
	c := newTestClient(t)

	reply := c.handle(&protocol.JoinResponse{Result: 100})
	require.NotNil(t, reply)
	assert.IsType(t, &protocol.RequestControllersList{}, reply)

	reply = c.handle(&protocol.JoinResponse{Result: 99, Reason: "bad password"})
	assert.Nil(t, reply, "failed join must not trigger a request")
}

func TestHandleLoginOperator(t *testing.T) {
	c := newTestClient(t)

	reply := c.handle(&protocol.LoginOperator{
		ControllerID:   protocol.MustID(123),
		Password:       "666666",
		MessageOptions: protocol.NewMessageOptions(),
	})
	require.NotNil(t, reply)

	info, ok := reply.(*protocol.OperatorInfo)
	require.True(t, ok, "reply is %T, want *OperatorInfo", reply)
	assert.Equal(t, protocol.MustID(123), info.ControllerID)
	assert.Equal(t, uint8(6), info.Level)
	assert.Equal(t, "MISUser6", info.Name)
	assert.Equal(t, protocol.MustID(7), info.OperatorID)
	assert.NoError(t, info.Validate())
}

func TestHandleLoginOperatorUnknown(t *testing.T) {
	c := newTestClient(t)

	reply := c.handle(&protocol.LoginOperator{
		ControllerID:   protocol.MustID(123),
		Password:       "wrong",
		MessageOptions: protocol.NewMessageOptions(),
	})
	require.NotNil(t, reply)

	info := reply.(*protocol.OperatorInfo)
	assert.Equal(t, uint8(0), info.Level)
	assert.Equal(t, "Not Allowed", info.Name)
	assert.Equal(t, protocol.ID(0), info.OperatorID)
	assert.NoError(t, info.Validate())
}

func TestHandleRequestJobCardsList(t *testing.T) {
	c := newTestClient(t)

	reply := c.handle(&protocol.RequestJobCardsList{
		ControllerID:   protocol.MustID(42),
		MessageOptions: protocol.NewMessageOptions(),
	})
	require.NotNil(t, reply)

	list, ok := reply.(*protocol.JobCardsList)
	require.True(t, ok, "reply is %T, want *JobCardsList", reply)
	assert.Equal(t, protocol.MustID(42), list.ControllerID)
	assert.Len(t, list.Data, 4)
	assert.Equal(t, uint32(2000), list.Data["JOB_CARD_2"].Progress)
	assert.NoError(t, list.Validate())
}

func TestHandleIgnoresOthers(t *testing.T) {
	c := newTestClient(t)

	assert.Nil(t, c.handle(&protocol.ControllerStatus{}))
	assert.Nil(t, c.handle(&protocol.CycleData{}))
}

func TestBuiltinData(t *testing.T) {
	users := BuiltinUsers()
	assert.Len(t, users, 11)
	assert.Equal(t, OperatorAccount{Name: "MISUser10", Level: 10}, users["123456"])

	for _, jc := range BuiltinJobs() {
		assert.NoError(t, jc.Validate())
	}
}

// TestConnectSendsJoin runs a real WebSocket exchange against an in-process
// server: the client must send a valid Join on connect and answer the
// server's Alive with an Alive of its own.
func TestConnectSendsJoin(t *testing.T) {
	upgrader := websocket.Upgrader{}
	received := make(chan protocol.Message, 2)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()

		// Expect the Join.
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)
		m, err := protocol.ParseMessage(data)
		require.NoError(t, err)
		received <- m

		// Send an Alive, expect one back.
		out, err := protocol.MarshalMessage(protocol.NewAlive())
		require.NoError(t, err)
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, out))

		_, data, err = conn.ReadMessage()
		require.NoError(t, err)
		m, err = protocol.ParseMessage(data)
		require.NoError(t, err)
		received <- m
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	c, err := New(Config{
		URL:      url,
		Password: "chenhsong",
		Filter:   protocol.FilterAll,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, c.Connect(ctx))
	go func() { _ = c.Run(ctx) }()

	join, ok := (<-received).(*protocol.Join)
	require.True(t, ok, "first message is not a Join")
	assert.Equal(t, protocol.ProtocolVersion, join.Version)
	assert.Equal(t, "chenhsong", join.Password)
	assert.True(t, join.Filter.Has(protocol.FilterCycle))

	_, ok = (<-received).(*protocol.Alive)
	assert.True(t, ok, "reply to Alive is not an Alive")

	cancel()
}
