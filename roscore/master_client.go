// Package roscore defines the MasterClient collaborator a Subscription uses
// to resolve a publisher's TCPROS endpoint, and the registration calls a
// node-level owner makes against a ROS master. The master/registration
// client itself is a swappable external collaborator; this package only
// gives its boundary a concrete shape, modeled on the
// registerPublisher/registerSubscriber/requestTopic call and result shapes
// of the ROS master XML-RPC API.
package roscore

// TopicProtocol describes one TCPROS endpoint a publisher offered in
// response to requestTopic: the host and port a Subscription should dial.
type TopicProtocol struct {
	Name string // "TCPROS" in a successful RequestTopic result; RequestTopic rejects other protocols.
	Host string
	Port int
}

// UnsupportedProtocolError is returned by RequestTopic when a publisher's
// slave API negotiates a protocol other than TCPROS. Callers distinguish
// this from a plain RPC failure by type-asserting the returned error.
type UnsupportedProtocolError struct {
	URI      string
	Protocol string
}

func (e *UnsupportedProtocolError) Error() string {
	return "roscore: publisher at " + e.URI + " offered unsupported protocol \"" + e.Protocol + "\""
}

// MasterClient is the set of ROS master / publisher slave-API calls a node
// and its Subscriptions depend on. RequestTopic is the only method the
// transport core (Subscription.AddPublisherSource) calls directly; the
// registration methods exist for node-level owners built on top of this
// package.
type MasterClient interface {
	RegisterPublisher(callerID, topic, topicType, callerAPI string) ([]string, error)
	RegisterSubscriber(callerID, topic, topicType, callerAPI string) ([]string, error)
	UnregisterPublisher(callerID, topic, callerAPI string) error
	UnregisterSubscriber(callerID, topic, callerAPI string) error

	// RequestTopic asks publisherURI (a node's slave API URI, not the
	// master) which protocol it will serve topic over. It returns the
	// chosen TCPROS endpoint, or a *UnsupportedProtocolError if the
	// publisher offered no TCPROS protocol.
	RequestTopic(callerID, topic, publisherURI string) (TopicProtocol, error)
}
