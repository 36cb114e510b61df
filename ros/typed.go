package ros

import "bytes"

// TypedPublisher wraps a SubmitHandle with a concrete Message type,
// serializing each value before submitting it. Publish uses a compile-time
// type parameter rather than an interface{}/reflect.Call dispatch, so the
// runtime path stays reflection-free.
type TypedPublisher[T Message] struct {
	handle SubmitHandle
}

// NewTypedPublisher wraps handle for publishing values of type T.
func NewTypedPublisher[T Message](handle SubmitHandle) TypedPublisher[T] {
	return TypedPublisher[T]{handle: handle}
}

// Publish serializes msg and submits it to the underlying Publication.
// It returns EncodingError if serialization fails, or the handle's own
// error (ErrClosed) if the Publication has been destroyed.
func (p TypedPublisher[T]) Publish(msg T) error {
	var buf bytes.Buffer
	if err := msg.Serialize(&buf); err != nil {
		return &EncodingError{Err: err}
	}
	return p.handle.Submit(buf.Bytes())
}

// TypedSubscriber wraps a BroadcastConsumer with a MessageType, allocating
// and deserializing a fresh T for each payload.
type TypedSubscriber[T Message] struct {
	consumer *BroadcastConsumer
	msgType  MessageType
}

// NewTypedSubscriber wraps consumer for receiving values of type T,
// allocated via msgType.NewMessage().
func NewTypedSubscriber[T Message](consumer *BroadcastConsumer, msgType MessageType) TypedSubscriber[T] {
	return TypedSubscriber[T]{consumer: consumer, msgType: msgType}
}

// Next blocks for the next payload, deserializes it into a fresh T, and
// returns it. It returns ErrLagged if this consumer fell behind, ErrClosed
// once the Subscription has been destroyed and the backlog drained, or
// DecodingError if the payload fails to deserialize as T.
func (s TypedSubscriber[T]) Next() (T, error) {
	var zero T

	payload, err := s.consumer.Next()
	if err != nil {
		return zero, err
	}

	msg := s.msgType.NewMessage()
	if err := msg.Deserialize(bytes.NewReader(payload)); err != nil {
		return zero, &DecodingError{Err: err}
	}

	typed, ok := msg.(T)
	if !ok {
		return zero, &DecodingError{Err: errNewMessageTypeMismatch}
	}
	return typed, nil
}

// Close releases the underlying BroadcastConsumer's slot.
func (s TypedSubscriber[T]) Close() {
	s.consumer.Close()
}
