package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const (
	// ProtocolVersion is the Open Protocol version spoken by this library
	ProtocolVersion = "4.0"
	// DefaultLanguage is the language a Join message declares by default
	DefaultLanguage = LanguageEN
	// MaxOperatorLevel is the maximum operator access level
	MaxOperatorLevel = 10
	// JoinResultSuccess is the lowest JoinResponse result code that
	// indicates a successful join
	JoinResultSuccess = 100
)

// Message is a single Open Protocol message.
//
// A Message is a value, not a long-lived object: it is constructed,
// optionally validated, serialized or parsed, and discarded. Validate
// checks the per-message business rules and, for ControllerStatus, the
// cross-structure consistency rules; it short-circuits on the first failing
// rule in field declaration order.
type Message interface {
	// Type returns the wire discriminator, e.g. "ControllerStatus"
	Type() string
	// Options returns the common message options
	Options() *MessageOptions
	// Validate checks the message's business rules
	Validate() error
}

// Alive is the periodic keep-alive message; it carries only the common
// options.
type Alive struct {
	MessageOptions
}

// NewAlive creates an Alive message with fresh options
func NewAlive() *Alive {
	return &Alive{MessageOptions: NewMessageOptions()}
}

func (m *Alive) Type() string { return "Alive" }

// ControllerAction reports an action taken on a controller, identified by a
// code from the controller's fixed action vocabulary.
type ControllerAction struct {
	ControllerID ID        `json:"controllerId"`
	ActionID     ActionID  `json:"actionId"`
	Timestamp    time.Time `json:"timestamp"`
	MessageOptions
}

func (m *ControllerAction) Type() string { return "ControllerAction" }

// RequestControllersList asks the server for the record of one controller,
// or of every known controller when ControllerID is zero.
type RequestControllersList struct {
	ControllerID ID `json:"controllerId,omitzero"`
	MessageOptions
}

func (m *RequestControllersList) Type() string { return "RequestControllersList" }

// ControllersList carries the full records of the known controllers, keyed
// by controller ID. Wire keys are the decimal form of the ID; a malformed or
// zero key is a decode error.
type ControllersList struct {
	Data map[ID]*Controller `json:"data"`
	MessageOptions
}

func (m *ControllersList) Type() string { return "ControllersList" }

// ControllerStatus reports a change in a controller's status.
//
// The flat convenience fields must agree with the embedded State snapshot
// and, when the full Controller record is present, with that record as
// well. The per-event delta fields (IsDisconnected, Alarm, Audit, Variable)
// must be absent whenever the full record is present.
type ControllerStatus struct {
	ControllerID ID `json:"controllerId"`
	// DisplayName is the new machine name, if changed. Zero value means
	// not present.
	DisplayName TextName `json:"displayName,omitempty"`
	// IsDisconnected reports a connection state change.
	IsDisconnected *bool   `json:"isDisconnected,omitempty"`
	OpMode         OpMode  `json:"opMode,omitzero"`
	JobMode        JobMode `json:"jobMode,omitzero"`
	// Alarm reports a single alarm being set or cleared.
	Alarm *KeyValuePair[bool] `json:"alarm,omitempty"`
	// Audit reports a single setting change.
	Audit *KeyValuePair[float64] `json:"audit,omitempty"`
	// Variable reports a single variable change.
	Variable *KeyValuePair[float64] `json:"variable,omitempty"`
	// OperatorID, OperatorName, JobCardID and MoldID are tri-state: absent,
	// explicitly cleared, or set to a value.
	OperatorID   TriStateID   `json:"operatorId,omitzero"`
	OperatorName TriStateText `json:"operatorName,omitzero"`
	JobCardID    TriStateText `json:"jobCardId,omitzero"`
	MoldID       TriStateText `json:"moldId,omitzero"`
	// State is the snapshot of the controller's state after this update.
	State StateValues `json:"state"`
	// Controller is the full record, present on connection events.
	Controller *Controller `json:"controller,omitempty"`
	MessageOptions
}

func (m *ControllerStatus) Type() string { return "ControllerStatus" }

// CycleData carries one set of cycle data values recorded at the end of a
// machine cycle, together with the controller state at that moment.
type CycleData struct {
	ControllerID ID                 `json:"controllerId"`
	Data         map[string]float64 `json:"data"`
	Timestamp    time.Time          `json:"timestamp"`
	StateValues
	MessageOptions
}

func (m *CycleData) Type() string { return "CycleData" }

// RequestJobCardsList asks the client for the job cards available on a
// controller.
type RequestJobCardsList struct {
	ControllerID ID `json:"controllerId"`
	MessageOptions
}

func (m *RequestJobCardsList) Type() string { return "RequestJobCardsList" }

// JobCardsList carries the job cards available on a controller, keyed by
// job card ID. The collection cannot be empty.
type JobCardsList struct {
	ControllerID ID                 `json:"controllerId"`
	Data         map[string]JobCard `json:"data"`
	MessageOptions
}

func (m *JobCardsList) Type() string { return "JobCardsList" }

// Join logs the client onto the server, declaring the protocol version, the
// UI language and the message categories it wants to receive.
type Join struct {
	// OrgID is the organization to join; zero value means the default
	// organization.
	OrgID    TextID   `json:"orgId,omitempty"`
	Version  string   `json:"version"`
	Password string   `json:"password"`
	Language Language `json:"language"`
	// Filter travels the wire as a single canonical comma-joined string.
	Filter Filters `json:"filter"`
	MessageOptions
}

func (m *Join) Type() string { return "Join" }

// NewJoin creates a Join message for the default organization, declaring
// the current protocol version and the default language
func NewJoin(password string, filter Filters) *Join {
	return NewJoinWithOrg(password, filter, "")
}

// NewJoinWithOrg creates a Join message for a non-default organization
func NewJoinWithOrg(password string, filter Filters, orgID TextID) *Join {
	return &Join{
		OrgID:          orgID,
		Version:        ProtocolVersion,
		Password:       password,
		Language:       DefaultLanguage,
		Filter:         filter.Normalize(),
		MessageOptions: NewMessageOptions(),
	}
}

// JoinResponse is the server's answer to a Join. A Result of 100 or above
// indicates success.
type JoinResponse struct {
	Result uint32 `json:"result"`
	// Level is the granted access level, if reported.
	Level *uint32 `json:"level,omitempty"`
	// Reason carries a human-readable message, if any.
	Reason string `json:"message,omitempty"`
	MessageOptions
}

func (m *JoinResponse) Type() string { return "JoinResponse" }

// Succeeded reports whether the join was accepted
func (m *JoinResponse) Succeeded() bool { return m.Result >= JoinResultSuccess }

// RequestMoldData asks for the set of mold settings currently loaded on a
// controller.
type RequestMoldData struct {
	ControllerID ID `json:"controllerId"`
	MessageOptions
}

func (m *RequestMoldData) Type() string { return "RequestMoldData" }

// MoldData carries the set of mold settings currently loaded on a
// controller. The collection cannot be empty.
type MoldData struct {
	ControllerID ID                 `json:"controllerId"`
	Data         map[string]float64 `json:"data"`
	Timestamp    time.Time          `json:"timestamp"`
	StateValues
	MessageOptions
}

func (m *MoldData) Type() string { return "MoldData" }

// ReadMoldData asks for the current value of one mold setting, or of every
// setting when Field is empty.
type ReadMoldData struct {
	ControllerID ID     `json:"controllerId"`
	Field        string `json:"field,omitempty"`
	MessageOptions
}

func (m *ReadMoldData) Type() string { return "ReadMoldData" }

// MoldDataValue carries the current value of a single mold setting.
type MoldDataValue struct {
	ControllerID ID      `json:"controllerId"`
	Field        string  `json:"field"`
	Value        float64 `json:"value"`
	MessageOptions
}

func (m *MoldDataValue) Type() string { return "MoldDataValue" }

// LoginOperator asks the MIS/MES provider to authenticate an operator
// password entered on a controller.
type LoginOperator struct {
	ControllerID ID     `json:"controllerId"`
	Password     string `json:"password"`
	MessageOptions
}

func (m *LoginOperator) Type() string { return "LoginOperator" }

// OperatorInfo answers a LoginOperator with the authenticated operator's
// identity and access level (0 to MaxOperatorLevel).
type OperatorInfo struct {
	ControllerID ID `json:"controllerId"`
	// OperatorID is the operator's unique ID, if known. Zero value means
	// not known.
	OperatorID ID     `json:"operatorId,omitzero"`
	Name       string `json:"name"`
	Password   string `json:"password"`
	Level      uint8  `json:"level"`
	MessageOptions
}

func (m *OperatorInfo) Type() string { return "OperatorInfo" }

// messageFactories maps the wire discriminator to a factory for the
// matching message shape
var messageFactories = map[string]func() Message{
	"Alive":                  func() Message { return new(Alive) },
	"ControllerAction":       func() Message { return new(ControllerAction) },
	"RequestControllersList": func() Message { return new(RequestControllersList) },
	"ControllersList":        func() Message { return new(ControllersList) },
	"ControllerStatus":       func() Message { return new(ControllerStatus) },
	"CycleData":              func() Message { return new(CycleData) },
	"RequestJobCardsList":    func() Message { return new(RequestJobCardsList) },
	"JobCardsList":           func() Message { return new(JobCardsList) },
	"Join":                   func() Message { return new(Join) },
	"JoinResponse":           func() Message { return new(JoinResponse) },
	"RequestMoldData":        func() Message { return new(RequestMoldData) },
	"MoldData":               func() Message { return new(MoldData) },
	"ReadMoldData":           func() Message { return new(ReadMoldData) },
	"MoldDataValue":          func() Message { return new(MoldDataValue) },
	"LoginOperator":          func() Message { return new(LoginOperator) },
	"OperatorInfo":           func() Message { return new(OperatorInfo) },
}

// ParseMessage parses and validates one JSON-encoded protocol message.
//
// A value that parses but fails validation is reported as a validation
// error, never returned. Unparseable input is reported as a decode error
// wrapping the JSON diagnostic.
func ParseMessage(data []byte) (Message, error) {
	var probe struct {
		Type string `json:"$type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, NewDecodeError(err)
	}

	factory, ok := messageFactories[probe.Type]
	if !ok {
		return nil, NewDecodeError(fmt.Errorf("unknown message type %q", probe.Type))
	}

	m := factory()
	if err := json.Unmarshal(data, m); err != nil {
		// Constrained types surface their own protocol errors from inside
		// the JSON decoder; pass those through untouched.
		var perr *ProtocolError
		if errors.As(err, &perr) {
			return nil, perr
		}
		return nil, NewDecodeError(err)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// MarshalMessage validates a message and serializes it with its "$type"
// discriminator. It refuses to emit wire bytes for an invalid message.
func MarshalMessage(m Message) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	body, err := json.Marshal(m)
	if err != nil {
		return nil, NewDecodeError(err)
	}

	out := make([]byte, 0, len(body)+len(m.Type())+12)
	out = append(out, `{"$type":"`...)
	out = append(out, m.Type()...)
	out = append(out, '"')
	if len(body) > 2 {
		out = append(out, ',')
		out = append(out, body[1:]...)
	} else {
		out = append(out, '}')
	}
	return out, nil
}
