package ros

import "github.com/pkg/errors"

// Sentinel errors for the TCPROS transport core. Callers compare with
// errors.Cause rather than string matching; the sentinels are wrapped with
// github.com/pkg/errors, whose wrappers errors.Is does not see through.
var (
	// ErrClosed is returned by SubmitHandle.Submit and BroadcastConsumer.Next
	// once the owning Publication/Subscription has been destroyed.
	ErrClosed = errors.New("ros: channel closed")

	// ErrLagged is returned by BroadcastConsumer.Next when the consumer fell
	// behind and the broadcast queue dropped payloads on its behalf.
	ErrLagged = errors.New("ros: broadcast consumer lagged, messages were dropped")

	// ErrMalformedHeader is returned by DecodeConnectionHeader on truncation,
	// a bad length prefix, or a missing required key.
	ErrMalformedHeader = errors.New("ros: malformed connection header")

	// ErrSerialization is returned by EncodeConnectionHeader when a field is
	// not valid UTF-8.
	ErrSerialization = errors.New("ros: connection header is not valid UTF-8")

	// ErrHandshake is returned when a TCPROS handshake completes but the
	// two sides disagree on md5sum, or the peer's response is truncated.
	ErrHandshake = errors.New("ros: TCPROS handshake failed")

	// ErrUnsupportedProtocol ends a Subscription's reader task (and is
	// logged there) when a requestTopic response names any protocol other
	// than TCPROS; AddPublisherSource itself does not return it.
	ErrUnsupportedProtocol = errors.New("ros: publisher does not support TCPROS")

	// ErrBind is returned by Publication creation when the listener cannot
	// be bound.
	ErrBind = errors.New("ros: failed to bind TCPROS listener")

	// errNewMessageTypeMismatch is wrapped into DecodingError by
	// TypedSubscriber.Next when a MessageType's NewMessage() produces a
	// value that does not implement the subscriber's type parameter.
	errNewMessageTypeMismatch = errors.New("ros: MessageType.NewMessage() did not return the expected type")
)

// RPCError wraps a failure talking to a publisher's or master's XML-RPC
// endpoint: a non-2xx HTTP status, a malformed XML-RPC envelope, or a
// transport-level error.
type RPCError struct {
	URI string
	Err error
}

func (e *RPCError) Error() string {
	return errors.Wrapf(e.Err, "ros: XML-RPC call to %s failed", e.URI).Error()
}

func (e *RPCError) Unwrap() error { return e.Err }

// EncodingError is returned by TypedPublisher.Publish when the message's
// codec fails to serialize the value.
type EncodingError struct {
	Err error
}

func (e *EncodingError) Error() string { return errors.Wrap(e.Err, "ros: encoding failed").Error() }
func (e *EncodingError) Unwrap() error { return e.Err }

// DecodingError is returned by TypedSubscriber.Next when the message's
// codec fails to deserialize a received payload.
type DecodingError struct {
	Err error
}

func (e *DecodingError) Error() string { return errors.Wrap(e.Err, "ros: decoding failed").Error() }
func (e *DecodingError) Unwrap() error { return e.Err }
