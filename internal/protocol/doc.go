// Package protocol implements the iChen Open Protocol message codec.
//
// This package handles parsing, validation, and construction of the JSON
// messages exchanged between an iChen server and its clients over
// WebSocket. Each message is a single JSON object whose concrete kind is
// named by a "$type" discriminator property.
//
// # Message Types
//
// The protocol defines sixteen message kinds:
//   - Session: Join, JoinResponse, Alive
//   - Controller telemetry: ControllerStatus, CycleData, ControllerAction
//   - Controller records: RequestControllersList, ControllersList
//   - Job cards: RequestJobCardsList, JobCardsList
//   - Mold data: RequestMoldData, MoldData, ReadMoldData, MoldDataValue
//   - Operators: LoginOperator, OperatorInfo
//
// # Usage Example - Parsing
//
//	msg, err := protocol.ParseMessage(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	switch m := msg.(type) {
//	case *protocol.CycleData:
//	    fmt.Printf("cycle data from controller %v\n", m.ControllerID)
//	}
//
// # Usage Example - Construction
//
//	m := protocol.NewJoin(password, protocol.FilterStatus|protocol.FilterCycle)
//	data, err := protocol.MarshalMessage(m)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = conn.WriteMessage(websocket.TextMessage, data)
//
// # Validation
//
// ParseMessage and MarshalMessage both validate: a message that decodes
// but breaks a business rule is rejected, and an invalid message is never
// serialized. Every failure is a *ProtocolError carrying the error class
// and the offending field, so callers can switch on the class with the
// IsEmptyFieldError, IsInvalidFieldError, IsInconsistentFieldError,
// IsInconsistentStateError, IsConstraintError and IsDecodeError
// predicates.
//
// # Optional Fields
//
// Optional values follow two conventions. Plain optional fields use the
// zero value to mean "absent": an ID of 0, a TextName of "". Fields that
// must distinguish "not relevant", "explicitly cleared" and "set to a
// value" use the TriStateText and TriStateID types, which keep the three
// states distinct across a serialization round trip.
//
// # Thread Safety
//
// Messages are plain values with no shared state. Sequence number
// assignment in NewMessageOptions uses a process-wide atomic counter and
// is safe for concurrent use.
package protocol
