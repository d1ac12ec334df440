package protocol

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ID is a 32-bit numeric identifier that cannot be zero.
//
// NewID is the only valid way to obtain an ID; a zero ID never travels the
// wire, so optional identifier fields use the zero value to mean "no ID".
type ID uint32

// NewID creates an ID from an integer value.
// Returns an error if value is zero.
func NewID(value uint32) (ID, error) {
	if value == 0 {
		return 0, NewInvalidFieldError("id", "0", "ID value cannot be zero")
	}
	return ID(value), nil
}

// MustID creates an ID from an integer value, panicking if it is zero.
// Reserved for literals known to be valid.
func MustID(value uint32) ID {
	id, err := NewID(value)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the decimal representation of the ID
func (id ID) String() string { return strconv.FormatUint(uint64(id), 10) }

// MarshalJSON emits the ID as a JSON number
func (id ID) MarshalJSON() ([]byte, error) {
	if id == 0 {
		return nil, NewInvalidFieldError("id", "0", "ID value cannot be zero")
	}
	return []byte(id.String()), nil
}

// UnmarshalJSON parses a JSON number into an ID, rejecting zero
func (id *ID) UnmarshalJSON(data []byte) error {
	n, err := strconv.ParseUint(string(data), 10, 32)
	if err != nil {
		return NewInvalidFieldError("id", string(data), "ID must be a positive 32-bit integer")
	}
	parsed, err := NewID(uint32(n))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalText emits the decimal ID; used for JSON object keys
func (id ID) MarshalText() ([]byte, error) {
	if id == 0 {
		return nil, NewInvalidFieldError("id", "0", "ID value cannot be zero")
	}
	return []byte(id.String()), nil
}

// UnmarshalText parses a decimal ID; a malformed or zero key is a decode
// error, not a silently dropped entry
func (id *ID) UnmarshalText(text []byte) error {
	n, err := strconv.ParseUint(string(text), 10, 32)
	if err != nil {
		return NewInvalidFieldError("id", string(text), "ID must be a positive 32-bit integer")
	}
	parsed, err := NewID(uint32(n))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// ActionID is a signed 32-bit action code from the controller's fixed action
// vocabulary. Any representable value is allowed.
type ActionID int32

// TextID is a text identifier that cannot be empty or all whitespace and must
// contain only ASCII characters.
//
// The zero value "" stands for "no identifier" in optional fields; any
// non-empty TextID is guaranteed well-formed by construction.
type TextID string

// NewTextID creates a TextID, rejecting empty, all-whitespace or non-ASCII text
func NewTextID(text string) (TextID, error) {
	if strings.TrimSpace(text) == "" {
		return "", NewEmptyFieldError("id")
	}
	for _, r := range text {
		if r > unicode.MaxASCII {
			return "", NewInvalidFieldError("id", text, "must contain only ASCII characters")
		}
	}
	return TextID(text), nil
}

// MarshalText implements encoding.TextMarshaler
func (t TextID) MarshalText() ([]byte, error) { return []byte(t), nil }

// UnmarshalText validates the incoming text through NewTextID
func (t *TextID) UnmarshalText(text []byte) error {
	parsed, err := NewTextID(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// TextName is a text value that cannot be empty or all whitespace.
// Any Unicode text is allowed.
//
// The zero value "" stands for "no value" in optional fields.
type TextName string

// NewTextName creates a TextName, rejecting empty or all-whitespace text
func NewTextName(text string) (TextName, error) {
	if strings.TrimSpace(text) == "" {
		return "", NewEmptyFieldError("name")
	}
	return TextName(text), nil
}

// MustTextName creates a TextName, panicking on empty or all-whitespace text.
// Reserved for literals known to be valid.
func MustTextName(text string) TextName {
	name, err := NewTextName(text)
	if err != nil {
		panic(err)
	}
	return name
}

// MarshalText implements encoding.TextMarshaler
func (t TextName) MarshalText() ([]byte, error) { return []byte(t), nil }

// UnmarshalText validates the incoming text through NewTextName
func (t *TextName) UnmarshalText(text []byte) error {
	parsed, err := NewTextName(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// minNormalFloat64 is the smallest positive normal float64 (2^-1022)
const minNormalFloat64 = 2.2250738585072014e-308

// checkFloat rejects NaN, infinite and sub-normal values for a numeric field
func checkFloat(field string, value float64) error {
	switch {
	case math.IsNaN(value):
		return NewInvalidFieldError(field, "NaN", "NaN is not a supported value")
	case math.IsInf(value, 0):
		return NewInvalidFieldError(field, fmt.Sprintf("%g", value), "Infinity is not a supported value")
	case value != 0 && math.Abs(value) < minNormalFloat64:
		return NewInvalidFieldError(field, fmt.Sprintf("%g", value), "sub-normal number is not a supported value")
	default:
		return nil
	}
}

// checkTextNotEmpty rejects required text that is empty or all whitespace
func checkTextNotEmpty(field, text string) error {
	if strings.TrimSpace(text) == "" {
		return NewEmptyFieldError(field)
	}
	return nil
}

// checkOptionalTextNotEmpty rejects optional text that is present but all
// whitespace; the empty string stands for "absent" and passes
func checkOptionalTextNotEmpty(field, text string) error {
	if text != "" && strings.TrimSpace(text) == "" {
		return NewEmptyFieldError(field)
	}
	return nil
}
