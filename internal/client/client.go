// Package client implements a demo Open Protocol client.
//
// The client connects to an iChen server over WebSocket, joins with a
// password and a message filter, and then answers the server's requests:
// it echoes keep-alives, asks for the controllers list once joined, and
// acts as a mock MIS/MES provider serving a built-in set of operator
// accounts and job cards.
package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/chenhsong/OpenProtocol/internal/logging"
	"github.com/chenhsong/OpenProtocol/internal/protocol"
)

// OperatorAccount is one entry in the mock user database.
type OperatorAccount struct {
	Name  string
	Level uint8
}

// Config carries the connection settings for a Client.
type Config struct {
	// URL is the WebSocket URL of the server's Open Protocol interface,
	// usually ws://host:5788.
	URL string
	// Password is the login password.
	Password string
	// OrgID is the organization to join; empty means the default org.
	OrgID string
	// Filter selects the message categories to receive.
	Filter protocol.Filters
	// OnMessage, if set, is called with every message received and sent.
	// The direction is "received" or "sent".
	OnMessage func(direction string, m protocol.Message)

	// Users maps login passwords to mock operator accounts. When nil,
	// BuiltinUsers() is used.
	Users map[string]OperatorAccount
	// Jobs is the mock job card list. When nil, BuiltinJobs() is used.
	Jobs []protocol.JobCard
}

// Client is a single Open Protocol connection to an iChen server.
type Client struct {
	cfg  Config
	conn *websocket.Conn
}

// BuiltinUsers returns the mock user database: passwords "000000" through
// "999999" plus "123456", with access levels 0 to 10.
func BuiltinUsers() map[string]OperatorAccount {
	passwords := []string{
		"000000", "111111", "222222", "333333", "444444", "555555",
		"666666", "777777", "888888", "999999", "123456",
	}
	users := make(map[string]OperatorAccount, len(passwords))
	for i, pw := range passwords {
		users[pw] = OperatorAccount{Name: fmt.Sprintf("MISUser%d", i), Level: uint8(i)}
	}
	return users
}

// BuiltinJobs returns the mock job card list.
func BuiltinJobs() []protocol.JobCard {
	jobs := make([]protocol.JobCard, 0, 4)
	for _, spec := range []struct {
		id, mold        string
		progress, total uint32
	}{
		{"JOB_CARD_1", "ABC-123", 0, 8000},
		{"JOB_CARD_2", "M002", 2000, 10000},
		{"JOB_CARD_3", "MOULD_003", 888, 3333},
		{"JOB_CARD_4", "MOULD_004", 123, 45678},
	} {
		jc, err := protocol.NewJobCard(spec.id, spec.mold, spec.progress, spec.total)
		if err != nil {
			// The built-in list is static and known-good.
			panic(err)
		}
		jobs = append(jobs, jc)
	}
	return jobs
}

// New creates a Client from a Config, filling in the built-in mock data
// where the config leaves it nil.
func New(cfg Config) (*Client, error) {
	if !strings.HasPrefix(cfg.URL, "ws://") && !strings.HasPrefix(cfg.URL, "wss://") {
		return nil, fmt.Errorf("invalid WebSocket URL %q: must start with ws:// or wss://", cfg.URL)
	}
	if strings.TrimSpace(cfg.Password) == "" {
		return nil, fmt.Errorf("password cannot be empty")
	}
	if cfg.Users == nil {
		cfg.Users = BuiltinUsers()
	}
	if cfg.Jobs == nil {
		cfg.Jobs = BuiltinJobs()
	}
	return &Client{cfg: cfg}, nil
}

// Connect dials the server and sends the initial Join message.
func (c *Client) Connect(ctx context.Context) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.cfg.URL, nil)
	if err != nil {
		return fmt.Errorf("cannot connect to %s: %w", c.cfg.URL, err)
	}
	c.conn = conn
	logging.LogConnection(c.cfg.URL, "connected")

	var join *protocol.Join
	if c.cfg.OrgID != "" {
		orgID, err := protocol.NewTextID(c.cfg.OrgID)
		if err != nil {
			conn.Close()
			return err
		}
		join = protocol.NewJoinWithOrg(c.cfg.Password, c.cfg.Filter, orgID)
	} else {
		join = protocol.NewJoin(c.cfg.Password, c.cfg.Filter)
	}

	if err := c.send(join); err != nil {
		conn.Close()
		return fmt.Errorf("cannot send Join: %w", err)
	}
	return nil
}

// Run reads and processes messages until the connection closes, the
// context is cancelled, or a fatal error occurs.
func (c *Client) Run(ctx context.Context) error {
	if c.conn == nil {
		return fmt.Errorf("not connected")
	}
	defer c.Close()

	// Unblock the read loop when the context is cancelled.
	stop := context.AfterFunc(ctx, func() { _ = c.conn.Close() })
	defer stop()

	for {
		msgType, data, err := c.conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logging.LogConnection(c.cfg.URL, "closed_by_server")
				return nil
			}
			return fmt.Errorf("read: %w", err)
		}
		if msgType != websocket.TextMessage {
			logging.Debug("Ignoring non-text message",
				zap.String("remote_addr", c.cfg.URL),
				zap.Int("message_type", msgType),
				zap.Int("length", len(data)),
			)
			continue
		}

		logging.LogMessage(c.cfg.URL, "received", "", data)

		m, err := protocol.ParseMessage(data)
		if err != nil {
			logging.Warn("Cannot parse incoming message",
				zap.String("remote_addr", c.cfg.URL),
				zap.Error(err),
			)
			continue
		}
		c.notify("received", m)

		reply := c.handle(m)
		if reply == nil {
			continue
		}
		if err := c.send(reply); err != nil {
			return err
		}
	}
}

// handle acts on one incoming message and returns the reply to send, or
// nil when no reply is called for.
func (c *Client) handle(m protocol.Message) protocol.Message {
	switch msg := m.(type) {
	case *protocol.Alive:
		// Echo the server's keep-alive.
		return protocol.NewAlive()

	case *protocol.JoinResponse:
		if !msg.Succeeded() {
			logging.Error("Join rejected",
				zap.Uint32("result", msg.Result),
				zap.String("message", msg.Reason),
			)
			return nil
		}
		logging.Info("Join accepted", zap.Uint32("result", msg.Result))
		return &protocol.RequestControllersList{MessageOptions: protocol.NewMessageOptions()}

	case *protocol.LoginOperator:
		return c.authenticate(msg)

	case *protocol.RequestJobCardsList:
		data := make(map[string]protocol.JobCard, len(c.cfg.Jobs))
		for _, jc := range c.cfg.Jobs {
			data[string(jc.JobCardID)] = jc
		}
		return &protocol.JobCardsList{
			ControllerID:   msg.ControllerID,
			Data:           data,
			MessageOptions: protocol.NewMessageOptions(),
		}

	default:
		return nil
	}
}

// authenticate answers a LoginOperator request from the mock user database.
// An unknown password yields a level-0 "Not Allowed" response.
func (c *Client) authenticate(msg *protocol.LoginOperator) protocol.Message {
	account, ok := c.cfg.Users[msg.Password]
	if !ok {
		logging.Info("Operator login rejected", zap.Uint32("controller_id", uint32(msg.ControllerID)))
		return &protocol.OperatorInfo{
			ControllerID:   msg.ControllerID,
			Name:           "Not Allowed",
			Password:       msg.Password,
			Level:          0,
			MessageOptions: protocol.NewMessageOptions(),
		}
	}

	logging.Info("Operator login accepted",
		zap.Uint32("controller_id", uint32(msg.ControllerID)),
		zap.String("name", account.Name),
		zap.Uint8("level", account.Level),
	)
	return &protocol.OperatorInfo{
		ControllerID: msg.ControllerID,
		// Use the access level as the operator's ID; level 0 maps to ID 1.
		OperatorID:     protocol.MustID(uint32(account.Level) + 1),
		Name:           account.Name,
		Password:       msg.Password,
		Level:          account.Level,
		MessageOptions: protocol.NewMessageOptions(),
	}
}

// send validates, serializes and writes one message.
func (c *Client) send(m protocol.Message) error {
	data, err := protocol.MarshalMessage(m)
	if err != nil {
		return fmt.Errorf("cannot serialize %s: %w", m.Type(), err)
	}
	if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	logging.LogMessage(c.cfg.URL, "sent", m.Type(), data)
	c.notify("sent", m)
	return nil
}

func (c *Client) notify(direction string, m protocol.Message) {
	if c.cfg.OnMessage != nil {
		c.cfg.OnMessage(direction, m)
	}
}

// Close closes the underlying connection.
func (c *Client) Close() {
	if c.conn != nil {
		_ = c.conn.Close()
		logging.LogConnection(c.cfg.URL, "closed")
	}
}
