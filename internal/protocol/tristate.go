package protocol

import (
	"bytes"
	"encoding/json"
)

// Several ControllerStatus fields are tri-state: the wire must distinguish
// a key that is omitted entirely ("not relevant to this update"), a key that
// is explicitly cleared, and a key carrying a value. Text fields encode the
// cleared state as JSON null; the numeric operator ID encodes it as the
// reserved zero value, which a valid ID can never take.

type triState uint8

const (
	triAbsent triState = iota
	triNull
	triSet
)

var jsonNull = []byte("null")

// TriStateText is a tri-state optional text field.
// The zero value is the absent state.
type TriStateText struct {
	state triState
	value TextName
}

// AbsentText returns the absent state (key omitted from the wire)
func AbsentText() TriStateText { return TriStateText{} }

// NullText returns the explicitly-cleared state (JSON null on the wire)
func NullText() TriStateText { return TriStateText{state: triNull} }

// SomeText returns the set state carrying value
func SomeText(value TextName) TriStateText { return TriStateText{state: triSet, value: value} }

// IsAbsent reports whether the field was omitted
func (t TriStateText) IsAbsent() bool { return t.state == triAbsent }

// IsNull reports whether the field was explicitly cleared
func (t TriStateText) IsNull() bool { return t.state == triNull }

// Value returns the carried text; the second result is false unless the
// field is in the set state
func (t TriStateText) Value() (TextName, bool) {
	if t.state != triSet {
		return "", false
	}
	return t.value, true
}

// IsZero reports the absent state so that omitzero drops the key entirely
func (t TriStateText) IsZero() bool { return t.state == triAbsent }

// String renders the three states for logging
func (t TriStateText) String() string {
	switch t.state {
	case triNull:
		return "<cleared>"
	case triSet:
		return string(t.value)
	default:
		return "<absent>"
	}
}

// MarshalJSON emits null for the cleared state and the text otherwise
func (t TriStateText) MarshalJSON() ([]byte, error) {
	if t.state == triNull {
		return jsonNull, nil
	}
	return json.Marshal(string(t.value))
}

// UnmarshalJSON decodes null as the cleared state and any string through
// NewTextName as the set state
func (t *TriStateText) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, jsonNull) {
		*t = NullText()
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	name, err := NewTextName(s)
	if err != nil {
		return err
	}
	*t = SomeText(name)
	return nil
}

// TriStateID is a tri-state optional numeric ID field.
// The zero value is the absent state.
//
// The cleared state travels the wire as the sentinel value 0 (the one value
// an ID can never hold), not as JSON null.
type TriStateID struct {
	state triState
	value ID
}

// AbsentID returns the absent state (key omitted from the wire)
func AbsentID() TriStateID { return TriStateID{} }

// NullID returns the explicitly-cleared state (zero sentinel on the wire)
func NullID() TriStateID { return TriStateID{state: triNull} }

// SomeID returns the set state carrying value
func SomeID(value ID) TriStateID { return TriStateID{state: triSet, value: value} }

// IsAbsent reports whether the field was omitted
func (t TriStateID) IsAbsent() bool { return t.state == triAbsent }

// IsNull reports whether the field was explicitly cleared
func (t TriStateID) IsNull() bool { return t.state == triNull }

// Value returns the carried ID; the second result is false unless the field
// is in the set state
func (t TriStateID) Value() (ID, bool) {
	if t.state != triSet {
		return 0, false
	}
	return t.value, true
}

// IsZero reports the absent state so that omitzero drops the key entirely
func (t TriStateID) IsZero() bool { return t.state == triAbsent }

// String renders the three states for logging
func (t TriStateID) String() string {
	switch t.state {
	case triNull:
		return "<cleared>"
	case triSet:
		return t.value.String()
	default:
		return "<absent>"
	}
}

// MarshalJSON emits the zero sentinel for the cleared state and the ID
// otherwise
func (t TriStateID) MarshalJSON() ([]byte, error) {
	if t.state == triNull {
		return []byte("0"), nil
	}
	return t.value.MarshalJSON()
}

// UnmarshalJSON decodes the zero sentinel as the cleared state; any other
// numeric value must parse into a valid ID or fail
func (t *TriStateID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("0")) {
		*t = NullID()
		return nil
	}
	var id ID
	if err := id.UnmarshalJSON(data); err != nil {
		return err
	}
	*t = SomeID(id)
	return nil
}
