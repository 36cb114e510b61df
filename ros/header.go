package ros

import (
	"bytes"
	"encoding/binary"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// maxHeaderBytes bounds how much of a TCPROS connection header block the
// acceptor and subscriber reader will read before giving up.
const maxHeaderBytes = 16 * 1024

// header is a single raw key=value entry of a TCPROS connection header
// block, the wire-level representation both writeConnectionHeader and
// readConnectionHeader work with directly.
type header struct {
	key   string
	value string
}

// ConnectionHeader is the decoded TCPROS handshake record exchanged once in
// each direction at the start of a connection.
type ConnectionHeader struct {
	CallerID      string
	Topic         string
	TopicType     string
	MD5Sum        string
	MsgDefinition string
	Latching      bool
	TCPNoDelay    bool
}

// EncodeConnectionHeader produces the TCPROS length-prefixed header block
// for h. When includeDefinitionAndLatching is false (the subscriber side of
// the handshake) the msg_definition and latching fields are omitted; the
// publisher's response sets it true.
func EncodeConnectionHeader(h ConnectionHeader, includeDefinitionAndLatching bool) ([]byte, error) {
	entries := []header{
		{"topic", h.Topic},
		{"type", h.TopicType},
		{"md5sum", h.MD5Sum},
		{"callerid", h.CallerID},
	}
	if includeDefinitionAndLatching {
		entries = append(entries,
			header{"message_definition", h.MsgDefinition},
			header{"latching", boolToHeaderValue(h.Latching)},
		)
	}
	if h.TCPNoDelay {
		entries = append(entries, header{"tcp_nodelay", boolToHeaderValue(h.TCPNoDelay)})
	}

	for _, e := range entries {
		if !utf8.ValidString(e.key) || !utf8.ValidString(e.value) {
			return nil, errors.Wrapf(ErrSerialization, "field %q", e.key)
		}
	}

	var buf bytes.Buffer
	if err := writeConnectionHeader(entries, &buf); err != nil {
		return nil, errors.Wrap(err, "ros: failed to serialize connection header")
	}
	return buf.Bytes(), nil
}

// DecodeConnectionHeader parses a length-prefixed TCPROS header block.
// Unknown keys are tolerated and ignored; the minimum required keys are
// topic, topic_type (wire name "type"), md5sum, and caller_id.
func DecodeConnectionHeader(data []byte) (ConnectionHeader, error) {
	entries, err := readConnectionHeader(bytes.NewReader(data))
	if err != nil {
		return ConnectionHeader{}, errors.Wrap(ErrMalformedHeader, err.Error())
	}

	raw := make(map[string]string, len(entries))
	for _, e := range entries {
		raw[e.key] = e.value
	}

	h := ConnectionHeader{
		CallerID:      raw["callerid"],
		Topic:         raw["topic"],
		TopicType:     raw["type"],
		MD5Sum:        raw["md5sum"],
		MsgDefinition: raw["message_definition"],
	}
	if v, ok := raw["latching"]; ok {
		h.Latching = headerValueToBool(v)
	}
	if v, ok := raw["tcp_nodelay"]; ok {
		h.TCPNoDelay = headerValueToBool(v)
	}

	for _, required := range []string{"topic", "type", "md5sum", "callerid"} {
		if _, ok := raw[required]; !ok {
			return ConnectionHeader{}, errors.Wrapf(ErrMalformedHeader, "missing required key %q", required)
		}
	}

	return h, nil
}

func boolToHeaderValue(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func headerValueToBool(v string) bool {
	return v == "1" || v == "true" || v == "True"
}

// writeConnectionHeader writes a TCPROS connection header block to w: a
// u32 little-endian total length, followed by each entry as a u32
// little-endian length followed by "key=value" ASCII bytes.
func writeConnectionHeader(headers []header, w io.Writer) error {
	var body []byte
	for _, h := range headers {
		entry := h.key + "=" + h.value
		entryLen := make([]byte, 4)
		binary.LittleEndian.PutUint32(entryLen, uint32(len(entry)))
		body = append(body, entryLen...)
		body = append(body, entry...)
	}

	totalLen := make([]byte, 4)
	binary.LittleEndian.PutUint32(totalLen, uint32(len(body)))
	if _, err := w.Write(totalLen); err != nil {
		return err
	}
	_, err := w.Write(body)
	return err
}

// readConnectionHeader reads a single TCPROS connection header block from r,
// tolerating unknown keys. It never reads more than maxHeaderBytes total.
func readConnectionHeader(r io.Reader) ([]header, error) {
	lr := &io.LimitedReader{R: r, N: maxHeaderBytes}

	var totalLen uint32
	if err := binary.Read(lr, binary.LittleEndian, &totalLen); err != nil {
		return nil, errors.Wrap(err, "failed to read header length prefix")
	}
	if totalLen > maxHeaderBytes {
		return nil, errors.Errorf("header length %d exceeds budget of %d bytes", totalLen, maxHeaderBytes)
	}

	body := make([]byte, totalLen)
	if _, err := io.ReadFull(lr, body); err != nil {
		return nil, errors.Wrap(err, "failed to read header body")
	}

	var entries []header
	for offset := 0; offset < len(body); {
		if offset+4 > len(body) {
			return nil, errors.New("truncated header entry length")
		}
		entryLen := int(binary.LittleEndian.Uint32(body[offset : offset+4]))
		offset += 4
		if entryLen < 0 || offset+entryLen > len(body) {
			return nil, errors.New("truncated header entry body")
		}
		entry := string(body[offset : offset+entryLen])
		offset += entryLen

		kv := strings.SplitN(entry, "=", 2)
		if len(kv) != 2 {
			return nil, errors.Errorf("malformed header entry %q", entry)
		}
		entries = append(entries, header{key: kv[0], value: kv[1]})
	}

	return entries, nil
}
