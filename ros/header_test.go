package ros

import (
	"bytes"
	"testing"
)

func TestEncodeDecodeConnectionHeader_RoundTrip(t *testing.T) {
	h := ConnectionHeader{
		CallerID:      "/talker",
		Topic:         "/chatter",
		TopicType:     "std_msgs/String",
		MD5Sum:        "992ce8a1687cec8c8bd883ec73ca41d1",
		MsgDefinition: "string data\n",
		Latching:      true,
	}

	encoded, err := EncodeConnectionHeader(h, true)
	if err != nil {
		t.Fatalf("EncodeConnectionHeader failed: %s", err)
	}

	decoded, err := DecodeConnectionHeader(encoded)
	if err != nil {
		t.Fatalf("DecodeConnectionHeader failed: %s", err)
	}

	if decoded != h {
		t.Fatalf("round trip mismatch: got %+v, want %+v", decoded, h)
	}
}

func TestEncodeConnectionHeader_OmitsDefinitionAndLatching(t *testing.T) {
	h := ConnectionHeader{
		CallerID:      "/listener",
		Topic:         "/chatter",
		TopicType:     "std_msgs/String",
		MD5Sum:        "992ce8a1687cec8c8bd883ec73ca41d1",
		MsgDefinition: "string data\n",
		Latching:      true,
	}

	encoded, err := EncodeConnectionHeader(h, false)
	if err != nil {
		t.Fatalf("EncodeConnectionHeader failed: %s", err)
	}

	entries, err := readConnectionHeader(bytes.NewReader(encoded))
	if err != nil {
		t.Fatalf("readConnectionHeader failed: %s", err)
	}

	for _, e := range entries {
		if e.key == "message_definition" || e.key == "latching" {
			t.Fatalf("expected key %q to be omitted from subscriber header", e.key)
		}
	}
}

func TestDecodeConnectionHeader_MissingRequiredKey(t *testing.T) {
	var buf bytes.Buffer
	entries := []header{
		{"topic", "/chatter"},
		{"type", "std_msgs/String"},
		{"callerid", "/talker"},
		// md5sum intentionally omitted.
	}
	if err := writeConnectionHeader(entries, &buf); err != nil {
		t.Fatalf("writeConnectionHeader failed: %s", err)
	}

	if _, err := DecodeConnectionHeader(buf.Bytes()); err == nil {
		t.Fatal("expected DecodeConnectionHeader to fail on a missing required key")
	}
}

func TestReadConnectionHeader_TruncatedEntry(t *testing.T) {
	// A length prefix claiming 20 bytes of body, but only 4 are provided.
	data := []byte{0x14, 0x00, 0x00, 0x00, 't', 'o', 'p', 'i'}
	if _, err := readConnectionHeader(bytes.NewReader(data)); err == nil {
		t.Fatal("expected readConnectionHeader to fail on a truncated body")
	}
}

func TestReadConnectionHeader_OversizedLengthPrefix(t *testing.T) {
	data := []byte{0xff, 0xff, 0xff, 0x7f}
	if _, err := readConnectionHeader(bytes.NewReader(data)); err == nil {
		t.Fatal("expected readConnectionHeader to reject a length prefix over maxHeaderBytes")
	}
}

func TestBoolToHeaderValue(t *testing.T) {
	testCases := []struct {
		in   bool
		want string
	}{
		{true, "1"},
		{false, "0"},
	}
	for _, tc := range testCases {
		if got := boolToHeaderValue(tc.in); got != tc.want {
			t.Fatalf("boolToHeaderValue(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestHeaderValueToBool(t *testing.T) {
	testCases := []struct {
		in   string
		want bool
	}{
		{"1", true},
		{"true", true},
		{"True", true},
		{"0", false},
		{"", false},
		{"garbage", false},
	}
	for _, tc := range testCases {
		if got := headerValueToBool(tc.in); got != tc.want {
			t.Fatalf("headerValueToBool(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
