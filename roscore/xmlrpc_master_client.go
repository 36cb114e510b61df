package roscore

import (
	"github.com/pkg/errors"

	"github.com/edwinhayes/rosgo/xmlrpc"
)

// tcprosProtocolName is the only protocol name requestTopic negotiates;
// anything else a publisher offers is rejected.
const tcprosProtocolName = "TCPROS"

// XMLRPCMasterClient is the production MasterClient: every call is an
// XML-RPC methodCall against either a roscore master URI (registration
// calls) or a publisher's own slave API URI (RequestTopic).
type XMLRPCMasterClient struct {
	MasterURI string
}

// NewXMLRPCMasterClient returns a MasterClient bound to masterURI.
func NewXMLRPCMasterClient(masterURI string) *XMLRPCMasterClient {
	return &XMLRPCMasterClient{MasterURI: masterURI}
}

func (m *XMLRPCMasterClient) call(uri, method string, params ...interface{}) (xmlrpc.Value, error) {
	client := xmlrpc.NewClient(uri)
	result, err := client.Call(method, params...)
	if err != nil {
		return xmlrpc.Value{}, &rpcError{uri: uri, err: err}
	}
	return result, nil
}

// RegisterPublisher registers callerAPI as a publisher of topic with the
// master and returns the master's current subscriber API list.
func (m *XMLRPCMasterClient) RegisterPublisher(callerID, topic, topicType, callerAPI string) ([]string, error) {
	result, err := m.call(m.MasterURI, "registerPublisher", callerID, topic, topicType, callerAPI)
	if err != nil {
		return nil, err
	}
	return stringArray(result), nil
}

// RegisterSubscriber registers callerAPI as a subscriber of topic with the
// master and returns the master's current publisher API list.
func (m *XMLRPCMasterClient) RegisterSubscriber(callerID, topic, topicType, callerAPI string) ([]string, error) {
	result, err := m.call(m.MasterURI, "registerSubscriber", callerID, topic, topicType, callerAPI)
	if err != nil {
		return nil, err
	}
	return stringArray(result), nil
}

// UnregisterPublisher removes callerAPI from topic's publisher list.
func (m *XMLRPCMasterClient) UnregisterPublisher(callerID, topic, callerAPI string) error {
	_, err := m.call(m.MasterURI, "unregisterPublisher", callerID, topic, callerAPI)
	return err
}

// UnregisterSubscriber removes callerAPI from topic's subscriber list.
func (m *XMLRPCMasterClient) UnregisterSubscriber(callerID, topic, callerAPI string) error {
	_, err := m.call(m.MasterURI, "unregisterSubscriber", callerID, topic, callerAPI)
	return err
}

// RequestTopic calls requestTopic directly against publisherURI (the
// publishing node's own slave API, not the master) and extracts the
// negotiated TCPROS endpoint.
func (m *XMLRPCMasterClient) RequestTopic(callerID, topic, publisherURI string) (TopicProtocol, error) {
	protocols := []interface{}{[]interface{}{tcprosProtocolName}}
	result, err := m.call(publisherURI, "requestTopic", callerID, topic, protocols)
	if err != nil {
		return TopicProtocol{}, err
	}

	if len(result.Array) < 3 {
		return TopicProtocol{}, &rpcError{uri: publisherURI, err: errors.New("requestTopic: malformed response")}
	}
	if code := result.Array[0].AsInt(); code != 1 {
		return TopicProtocol{}, &rpcError{uri: publisherURI, err: errors.Errorf("requestTopic: master API returned code %d: %s", code, result.Array[1].String())}
	}
	chosen := result.Array[2]
	if len(chosen.Array) < 3 {
		return TopicProtocol{}, &rpcError{uri: publisherURI, err: errors.New("requestTopic: publisher offered no protocol")}
	}

	name := chosen.Array[0].String()
	if name != tcprosProtocolName {
		return TopicProtocol{}, &UnsupportedProtocolError{URI: publisherURI, Protocol: name}
	}

	return TopicProtocol{
		Name: tcprosProtocolName,
		Host: chosen.Array[1].String(),
		Port: chosen.Array[2].AsInt(),
	}, nil
}

func stringArray(v xmlrpc.Value) []string {
	out := make([]string, 0, len(v.Array))
	for _, item := range v.Array {
		out = append(out, item.String())
	}
	return out
}

// rpcError wraps an XML-RPC failure with the URI it was talking to, the
// same shape ros.RPCError gives transport-core RPC failures.
type rpcError struct {
	uri string
	err error
}

func (e *rpcError) Error() string {
	return errors.Wrapf(e.err, "roscore: call to %s failed", e.uri).Error()
}
func (e *rpcError) Unwrap() error { return e.err }
