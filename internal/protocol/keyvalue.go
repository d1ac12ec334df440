package protocol

import "fmt"

// KeyValuePair holds a single named value, used for per-event deltas such as
// an alarm state, an audit entry or a variable change.
type KeyValuePair[V bool | float64] struct {
	Key   string `json:"key"`
	Value V      `json:"value"`
}

// NewKeyValuePair creates a key/value pair
func NewKeyValuePair[V bool | float64](key string, value V) KeyValuePair[V] {
	return KeyValuePair[V]{Key: key, Value: value}
}

// String renders the pair for logging
func (kv KeyValuePair[V]) String() string {
	return fmt.Sprintf("%s=%v", kv.Key, kv.Value)
}

// Validate checks that the key is non-empty and, for float values, that the
// value is a finite, normal number. The field argument names the pair in any
// resulting error, e.g. "alarm".
func (kv KeyValuePair[V]) Validate(field string) error {
	if err := checkTextNotEmpty(field+".key", kv.Key); err != nil {
		return err
	}
	if value, ok := any(kv.Value).(float64); ok {
		if err := checkFloat(field+".value", value); err != nil {
			return err
		}
	}
	return nil
}
