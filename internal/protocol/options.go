package protocol

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// sequence is the process-wide message sequence counter. Every
// MessageOptions created in this process draws the next value from it;
// the first message is numbered 1. The counter is never reset and never
// persisted.
var sequence atomic.Uint64

// nextSequence returns a fresh, strictly increasing sequence number.
// Safe for concurrent use; two messages never share a sequence number.
func nextSequence() uint64 {
	return sequence.Add(1)
}

// MessageOptions are the common fields carried by every protocol message.
// On the wire they are flattened into the message object itself.
type MessageOptions struct {
	// ID is an optional unique tracking key that the server may use to
	// retrieve the message from storage later. Zero value means untracked.
	ID string `json:"id,omitempty"`
	// Sequence is the ever-increasing message sequence number, starting
	// from 1. It is informational only and carries no delivery guarantee.
	Sequence uint64 `json:"sequence"`
	// Priority of the message; a smaller number is a higher priority.
	// The default 0 is omitted from the wire.
	Priority int32 `json:"priority,omitzero"`
}

// NewMessageOptions creates options carrying the next process-wide
// sequence number
func NewMessageOptions() MessageOptions {
	return MessageOptions{Sequence: nextSequence()}
}

// NewTrackedMessageOptions creates options with a fresh UUID tracking key
func NewTrackedMessageOptions() MessageOptions {
	return MessageOptions{ID: uuid.NewString(), Sequence: nextSequence()}
}

// WithPriority returns a copy of the options with the given priority
func (o MessageOptions) WithPriority(priority int32) MessageOptions {
	o.Priority = priority
	return o
}

// Options exposes the common options; it makes every message type that
// embeds MessageOptions satisfy the Message interface
func (o *MessageOptions) Options() *MessageOptions { return o }

// Validate checks that the tracking key, if present, is not all whitespace
func (o *MessageOptions) Validate() error {
	return checkOptionalTextNotEmpty("id", o.ID)
}
