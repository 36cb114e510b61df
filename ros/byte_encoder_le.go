package ros

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
)

// LEByteEncoder is a little-endian byte encoder, implements the ByteEncoder interface.
type LEByteEncoder struct{}

var _ ByteEncoder = LEByteEncoder{}

// Array encoders.

// EncodeBoolArray encodes an array of boolean values.
func (e LEByteEncoder) EncodeBoolArray(buf *bytes.Buffer, values []bool) error {
	for _, v := range values {
		if err := e.EncodeBool(buf, v); err != nil {
			return err
		}
	}
	return nil
}

// EncodeInt8Array encodes an array of int8 values.
func (e LEByteEncoder) EncodeInt8Array(buf *bytes.Buffer, values []int8) error {
	for _, v := range values {
		if err := e.EncodeInt8(buf, v); err != nil {
			return err
		}
	}
	return nil
}

// EncodeUint8Array encodes an array of uint8 values.
func (e LEByteEncoder) EncodeUint8Array(buf *bytes.Buffer, values []uint8) error {
	if n, err := buf.Write(values); n != len(values) || err != nil {
		return errors.New("could not write entire uint8 buffer")
	}
	return nil
}

// EncodeInt16Array encodes an array of int16 values.
func (e LEByteEncoder) EncodeInt16Array(buf *bytes.Buffer, values []int16) error {
	for _, v := range values {
		if err := e.EncodeInt16(buf, v); err != nil {
			return err
		}
	}
	return nil
}

// EncodeUint16Array encodes an array of uint16 values.
func (e LEByteEncoder) EncodeUint16Array(buf *bytes.Buffer, values []uint16) error {
	for _, v := range values {
		if err := e.EncodeUint16(buf, v); err != nil {
			return err
		}
	}
	return nil
}

// EncodeInt32Array encodes an array of int32 values.
func (e LEByteEncoder) EncodeInt32Array(buf *bytes.Buffer, values []int32) error {
	for _, v := range values {
		if err := e.EncodeInt32(buf, v); err != nil {
			return err
		}
	}
	return nil
}

// EncodeUint32Array encodes an array of uint32 values.
func (e LEByteEncoder) EncodeUint32Array(buf *bytes.Buffer, values []uint32) error {
	for _, v := range values {
		if err := e.EncodeUint32(buf, v); err != nil {
			return err
		}
	}
	return nil
}

// EncodeFloat32Array encodes an array of float32 values.
func (e LEByteEncoder) EncodeFloat32Array(buf *bytes.Buffer, values []JsonFloat32) error {
	for _, v := range values {
		if err := e.EncodeFloat32(buf, v); err != nil {
			return err
		}
	}
	return nil
}

// EncodeInt64Array encodes an array of int64 values.
func (e LEByteEncoder) EncodeInt64Array(buf *bytes.Buffer, values []int64) error {
	for _, v := range values {
		if err := e.EncodeInt64(buf, v); err != nil {
			return err
		}
	}
	return nil
}

// EncodeUint64Array encodes an array of uint64 values.
func (e LEByteEncoder) EncodeUint64Array(buf *bytes.Buffer, values []uint64) error {
	for _, v := range values {
		if err := e.EncodeUint64(buf, v); err != nil {
			return err
		}
	}
	return nil
}

// EncodeFloat64Array encodes an array of float64 values.
func (e LEByteEncoder) EncodeFloat64Array(buf *bytes.Buffer, values []JsonFloat64) error {
	for _, v := range values {
		if err := e.EncodeFloat64(buf, v); err != nil {
			return err
		}
	}
	return nil
}

// EncodeStringArray encodes an array of strings.
func (e LEByteEncoder) EncodeStringArray(buf *bytes.Buffer, values []string) error {
	for _, v := range values {
		if err := e.EncodeString(buf, v); err != nil {
			return err
		}
	}
	return nil
}

// EncodeTimeArray encodes an array of Time structs.
func (e LEByteEncoder) EncodeTimeArray(buf *bytes.Buffer, values []Time) error {
	for _, v := range values {
		if err := e.EncodeTime(buf, v); err != nil {
			return err
		}
	}
	return nil
}

// EncodeDurationArray encodes an array of Duration structs.
func (e LEByteEncoder) EncodeDurationArray(buf *bytes.Buffer, values []Duration) error {
	for _, v := range values {
		if err := e.EncodeDuration(buf, v); err != nil {
			return err
		}
	}
	return nil
}

// EncodeMessageArray encodes an array of nested messages.
func (e LEByteEncoder) EncodeMessageArray(buf *bytes.Buffer, values []Message) error {
	for _, v := range values {
		if err := v.Serialize(buf); err != nil {
			return err
		}
	}
	return nil
}

// Singular encodes.

// EncodeBool encodes a boolean.
func (e LEByteEncoder) EncodeBool(buf *bytes.Buffer, value bool) error {
	if value {
		return e.EncodeUint8(buf, 1)
	}
	return e.EncodeUint8(buf, 0)
}

// EncodeInt8 encodes a int8.
func (e LEByteEncoder) EncodeInt8(buf *bytes.Buffer, value int8) error {
	return e.EncodeUint8(buf, uint8(value))
}

// EncodeUint8 encodes a uint8.
func (e LEByteEncoder) EncodeUint8(buf *bytes.Buffer, value uint8) error {
	return buf.WriteByte(value)
}

// EncodeInt16 encodes a int16.
func (e LEByteEncoder) EncodeInt16(buf *bytes.Buffer, value int16) error {
	return e.EncodeUint16(buf, uint16(value))
}

// EncodeUint16 encodes a uint16.
func (e LEByteEncoder) EncodeUint16(buf *bytes.Buffer, value uint16) error {
	var arr [2]byte
	binary.LittleEndian.PutUint16(arr[:], value)
	_, err := buf.Write(arr[:])
	return err
}

// EncodeInt32 encodes a int32.
func (e LEByteEncoder) EncodeInt32(buf *bytes.Buffer, value int32) error {
	return e.EncodeUint32(buf, uint32(value))
}

// EncodeUint32 encodes a uint32.
func (e LEByteEncoder) EncodeUint32(buf *bytes.Buffer, value uint32) error {
	var arr [4]byte
	binary.LittleEndian.PutUint32(arr[:], value)
	_, err := buf.Write(arr[:])
	return err
}

// EncodeFloat32 encodes a JsonFloat32.
func (e LEByteEncoder) EncodeFloat32(buf *bytes.Buffer, value JsonFloat32) error {
	return e.EncodeUint32(buf, math.Float32bits(value.F))
}

// EncodeInt64 encodes a int64.
func (e LEByteEncoder) EncodeInt64(buf *bytes.Buffer, value int64) error {
	return e.EncodeUint64(buf, uint64(value))
}

// EncodeUint64 encodes a uint64.
func (e LEByteEncoder) EncodeUint64(buf *bytes.Buffer, value uint64) error {
	var arr [8]byte
	binary.LittleEndian.PutUint64(arr[:], value)
	_, err := buf.Write(arr[:])
	return err
}

// EncodeFloat64 encodes a JsonFloat64.
func (e LEByteEncoder) EncodeFloat64(buf *bytes.Buffer, value JsonFloat64) error {
	return e.EncodeUint64(buf, math.Float64bits(value.F))
}

// EncodeString encodes a string. String format is: [size|string] where size is a u32.
func (e LEByteEncoder) EncodeString(buf *bytes.Buffer, value string) error {
	if err := e.EncodeUint32(buf, uint32(len(value))); err != nil {
		return err
	}
	return e.EncodeUint8Array(buf, []byte(value))
}

// EncodeTime encodes a Time struct. Time format is: [sec|nanosec] where sec and nanosec are unsigned integers.
func (e LEByteEncoder) EncodeTime(buf *bytes.Buffer, value Time) error {
	if err := e.EncodeUint32(buf, value.Sec); err != nil {
		return err
	}
	return e.EncodeUint32(buf, value.NSec)
}

// EncodeDuration encodes a Duration struct. Duration format is: [sec|nanosec] where sec and nanosec are unsigned integers.
func (e LEByteEncoder) EncodeDuration(buf *bytes.Buffer, value Duration) error {
	if err := e.EncodeUint32(buf, value.Sec); err != nil {
		return err
	}
	return e.EncodeUint32(buf, value.NSec)
}
