package ros

import "bytes"

// ByteDecoder is the primitive wire codec a generated Message implementation
// uses to decode ROS field values out of a payload buffer: scalar and array
// forms of every ROS builtin type, little-endian on TCPROS.
type ByteDecoder interface {
	DecodeBoolArray(buf *bytes.Reader, size int) ([]bool, error)
	DecodeInt8Array(buf *bytes.Reader, size int) ([]int8, error)
	DecodeInt16Array(buf *bytes.Reader, size int) ([]int16, error)
	DecodeInt32Array(buf *bytes.Reader, size int) ([]int32, error)
	DecodeInt64Array(buf *bytes.Reader, size int) ([]int64, error)
	DecodeUint8Array(buf *bytes.Reader, size int) ([]uint8, error)
	DecodeUint16Array(buf *bytes.Reader, size int) ([]uint16, error)
	DecodeUint32Array(buf *bytes.Reader, size int) ([]uint32, error)
	DecodeUint64Array(buf *bytes.Reader, size int) ([]uint64, error)
	DecodeFloat32Array(buf *bytes.Reader, size int) ([]JsonFloat32, error)
	DecodeFloat64Array(buf *bytes.Reader, size int) ([]JsonFloat64, error)
	DecodeStringArray(buf *bytes.Reader, size int) ([]string, error)
	DecodeTimeArray(buf *bytes.Reader, size int) ([]Time, error)
	DecodeDurationArray(buf *bytes.Reader, size int) ([]Duration, error)
	DecodeMessageArray(buf *bytes.Reader, size int, msgType MessageType) ([]Message, error)

	DecodeBool(buf *bytes.Reader) (bool, error)
	DecodeInt8(buf *bytes.Reader) (int8, error)
	DecodeInt16(buf *bytes.Reader) (int16, error)
	DecodeInt32(buf *bytes.Reader) (int32, error)
	DecodeInt64(buf *bytes.Reader) (int64, error)
	DecodeUint8(buf *bytes.Reader) (uint8, error)
	DecodeUint16(buf *bytes.Reader) (uint16, error)
	DecodeUint32(buf *bytes.Reader) (uint32, error)
	DecodeUint64(buf *bytes.Reader) (uint64, error)
	DecodeFloat32(buf *bytes.Reader) (JsonFloat32, error)
	DecodeFloat64(buf *bytes.Reader) (JsonFloat64, error)
	DecodeString(buf *bytes.Reader) (string, error)
	DecodeTime(buf *bytes.Reader) (Time, error)
	DecodeDuration(buf *bytes.Reader) (Duration, error)
	DecodeMessage(buf *bytes.Reader, msgType MessageType) (Message, error)
}

// ByteEncoder is the inverse of ByteDecoder: the primitive wire codec a
// generated Message implementation uses to encode ROS field values into a
// payload buffer.
type ByteEncoder interface {
	EncodeBoolArray(buf *bytes.Buffer, values []bool) error
	EncodeInt8Array(buf *bytes.Buffer, values []int8) error
	EncodeInt16Array(buf *bytes.Buffer, values []int16) error
	EncodeInt32Array(buf *bytes.Buffer, values []int32) error
	EncodeInt64Array(buf *bytes.Buffer, values []int64) error
	EncodeUint8Array(buf *bytes.Buffer, values []uint8) error
	EncodeUint16Array(buf *bytes.Buffer, values []uint16) error
	EncodeUint32Array(buf *bytes.Buffer, values []uint32) error
	EncodeUint64Array(buf *bytes.Buffer, values []uint64) error
	EncodeFloat32Array(buf *bytes.Buffer, values []JsonFloat32) error
	EncodeFloat64Array(buf *bytes.Buffer, values []JsonFloat64) error
	EncodeStringArray(buf *bytes.Buffer, values []string) error
	EncodeTimeArray(buf *bytes.Buffer, values []Time) error
	EncodeDurationArray(buf *bytes.Buffer, values []Duration) error
	EncodeMessageArray(buf *bytes.Buffer, values []Message) error

	EncodeBool(buf *bytes.Buffer, value bool) error
	EncodeInt8(buf *bytes.Buffer, value int8) error
	EncodeInt16(buf *bytes.Buffer, value int16) error
	EncodeInt32(buf *bytes.Buffer, value int32) error
	EncodeInt64(buf *bytes.Buffer, value int64) error
	EncodeUint8(buf *bytes.Buffer, value uint8) error
	EncodeUint16(buf *bytes.Buffer, value uint16) error
	EncodeUint32(buf *bytes.Buffer, value uint32) error
	EncodeUint64(buf *bytes.Buffer, value uint64) error
	EncodeFloat32(buf *bytes.Buffer, value JsonFloat32) error
	EncodeFloat64(buf *bytes.Buffer, value JsonFloat64) error
	EncodeString(buf *bytes.Buffer, value string) error
	EncodeTime(buf *bytes.Buffer, value Time) error
	EncodeDuration(buf *bytes.Buffer, value Duration) error
}
