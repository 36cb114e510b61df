package ros

import "bytes"

// MessageType describes a ROS message schema. Implementations are normally
// produced by an external message code generator from a .msg definition;
// DynamicMessageType-style runtime schemas and compile-time generated
// schemas both satisfy this interface identically.
type MessageType interface {
	// Text returns the canonical message definition text.
	Text() string
	// MD5Sum returns the hex digest identifying this schema.
	MD5Sum() string
	// Name returns the fully qualified ROS type name, e.g. "std_msgs/String".
	Name() string
	// NewMessage allocates a zero-value Message of this type.
	NewMessage() Message
}

// Message is a single instance of a typed ROS message. TypedPublisher and
// TypedSubscriber (see typed.go) are the only core consumers of this
// interface; the transport layer itself only ever moves opaque bytes.
type Message interface {
	Type() MessageType
	Serialize(buf *bytes.Buffer) error
	Deserialize(buf *bytes.Reader) error
}

// Time is the ROS builtin time primitive: seconds and nanoseconds since the
// epoch, both stored as unsigned 32-bit integers on the wire.
type Time struct {
	Sec  uint32
	NSec uint32
}

// Duration is the ROS builtin duration primitive, same wire shape as Time.
type Duration struct {
	Sec  uint32
	NSec uint32
}
