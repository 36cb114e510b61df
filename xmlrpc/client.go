// Package xmlrpc implements the small slice of XML-RPC required to talk to
// a ROS master and to a publisher's slave API: a request is a single
// methodCall with a flat parameter list, and a response is a single
// methodResponse carrying one value. Built directly on encoding/xml and
// net/http.
package xmlrpc

import (
	"bytes"
	"encoding/xml"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Value is a decoded XML-RPC value: exactly one of the fields is populated,
// mirroring the <value> element's <string>/<int>/<boolean>/<double>/
// <array> children. Structs are not needed by any call this package makes
// and are left unsupported.
type Value struct {
	Str    *string
	Int    *int
	Bool   *bool
	Double *float64
	Array  []Value
}

// String returns the value as a string, or "" if it holds another type.
func (v Value) String() string {
	if v.Str != nil {
		return *v.Str
	}
	return ""
}

// AsInt returns the value as an int, or 0 if it holds another type.
func (v Value) AsInt() int {
	if v.Int != nil {
		return *v.Int
	}
	return 0
}

// Client is a minimal XML-RPC client bound to a single server URI, used to
// talk to a ROS master or a publisher's slave API.
type Client struct {
	URI        string
	HTTPClient *http.Client
}

// NewClient returns a Client for uri with a bounded request timeout.
func NewClient(uri string) *Client {
	return &Client{
		URI:        uri,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Call issues a single XML-RPC methodCall named method with params, and
// returns the decoded response value. params may be strings, ints, bools,
// float64s, or []interface{} (encoded as nested arrays); any other type is
// an error.
func (c *Client) Call(method string, params ...interface{}) (Value, error) {
	body, err := marshalCall(method, params)
	if err != nil {
		return Value{}, errors.Wrap(err, "xmlrpc: failed to marshal request")
	}

	req, err := http.NewRequest("POST", c.URI, bytes.NewReader(body))
	if err != nil {
		return Value{}, errors.Wrap(err, "xmlrpc: failed to build request")
	}
	req.Header.Set("Content-Type", "text/xml")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return Value{}, errors.Wrap(err, "xmlrpc: request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Value{}, errors.Errorf("xmlrpc: server returned status %d", resp.StatusCode)
	}

	return unmarshalResponse(resp.Body)
}

// --- wire encoding -------------------------------------------------------

type methodCallXML struct {
	XMLName    xml.Name  `xml:"methodCall"`
	MethodName string    `xml:"methodName"`
	Params     paramsXML `xml:"params"`
}

type paramsXML struct {
	Param []paramXML `xml:"param"`
}

type paramXML struct {
	Value valueXML `xml:"value"`
}

type valueXML struct {
	String *string   `xml:"string,omitempty"`
	Int    *string   `xml:"int,omitempty"`
	Bool   *string   `xml:"boolean,omitempty"`
	Double *string   `xml:"double,omitempty"`
	Array  *arrayXML `xml:"array,omitempty"`
}

type arrayXML struct {
	Data dataXML `xml:"data"`
}

type dataXML struct {
	Value []valueXML `xml:"value"`
}

func marshalCall(method string, params []interface{}) ([]byte, error) {
	call := methodCallXML{MethodName: method}
	for _, p := range params {
		v, err := marshalValue(p)
		if err != nil {
			return nil, err
		}
		call.Params.Param = append(call.Params.Param, paramXML{Value: v})
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	if err := enc.Encode(call); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func marshalValue(p interface{}) (valueXML, error) {
	switch t := p.(type) {
	case string:
		return valueXML{String: &t}, nil
	case int:
		s := strconv.Itoa(t)
		return valueXML{Int: &s}, nil
	case bool:
		s := "0"
		if t {
			s = "1"
		}
		return valueXML{Bool: &s}, nil
	case float64:
		s := strconv.FormatFloat(t, 'g', -1, 64)
		return valueXML{Double: &s}, nil
	case []interface{}:
		arr := arrayXML{}
		for _, item := range t {
			v, err := marshalValue(item)
			if err != nil {
				return valueXML{}, err
			}
			arr.Data.Value = append(arr.Data.Value, v)
		}
		return valueXML{Array: &arr}, nil
	default:
		return valueXML{}, errors.Errorf("xmlrpc: unsupported parameter type %T", p)
	}
}

// --- wire decoding -------------------------------------------------------

type methodResponseXML struct {
	XMLName xml.Name  `xml:"methodResponse"`
	Params  paramsXML `xml:"params"`
	Fault   *faultXML `xml:"fault"`
}

type faultXML struct {
	Value valueXML `xml:"value"`
}

func unmarshalResponse(r io.Reader) (Value, error) {
	dec := xml.NewDecoder(r)
	var resp methodResponseXML
	if err := dec.Decode(&resp); err != nil {
		return Value{}, errors.Wrap(err, "xmlrpc: failed to decode response")
	}
	if resp.Fault != nil {
		return Value{}, errors.Errorf("xmlrpc: server fault: %+v", unmarshalValue(resp.Fault.Value))
	}
	if len(resp.Params.Param) == 0 {
		return Value{}, errors.New("xmlrpc: response has no return value")
	}
	return unmarshalValue(resp.Params.Param[0].Value), nil
}

func unmarshalValue(v valueXML) Value {
	switch {
	case v.String != nil:
		s := *v.String
		return Value{Str: &s}
	case v.Int != nil:
		n, _ := strconv.Atoi(*v.Int)
		return Value{Int: &n}
	case v.Bool != nil:
		b := *v.Bool == "1" || *v.Bool == "true"
		return Value{Bool: &b}
	case v.Double != nil:
		f, _ := strconv.ParseFloat(*v.Double, 64)
		return Value{Double: &f}
	case v.Array != nil:
		out := make([]Value, 0, len(v.Array.Data.Value))
		for _, item := range v.Array.Data.Value {
			out = append(out, unmarshalValue(item))
		}
		return Value{Array: out}
	default:
		return Value{}
	}
}
