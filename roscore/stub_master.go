package roscore

import (
	"sync"

	"github.com/pkg/errors"
)

// errUnknownPublisher is returned by StubMaster.RequestTopic when the test
// never populated Topics for the given publisher URI.
var errUnknownPublisher = errors.New("roscore: stub master has no topic entry for this publisher URI")

// StubMaster is an in-memory MasterClient for tests: registrations are
// recorded but never broadcast, and RequestTopic answers from a table the
// caller populates directly rather than by contacting a real publisher
// slave API.
type StubMaster struct {
	mu sync.Mutex

	publishers  map[string][]string // topic -> callerAPIs
	subscribers map[string][]string // topic -> callerAPIs

	// Topics maps a publisher URI (as passed to RequestTopic) to the
	// endpoint it should answer with. A missing entry makes RequestTopic
	// fail with errUnknownPublisher; an entry whose Name isn't "TCPROS"
	// makes it fail with UnsupportedProtocolError.
	Topics map[string]TopicProtocol
}

// NewStubMaster returns an empty StubMaster.
func NewStubMaster() *StubMaster {
	return &StubMaster{
		publishers:  make(map[string][]string),
		subscribers: make(map[string][]string),
		Topics:      make(map[string]TopicProtocol),
	}
}

// RegisterPublisher records callerAPI as a publisher of topic.
func (s *StubMaster) RegisterPublisher(callerID, topic, topicType, callerAPI string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.publishers[topic] = appendUnique(s.publishers[topic], callerAPI)
	return append([]string(nil), s.subscribers[topic]...), nil
}

// RegisterSubscriber records callerAPI as a subscriber of topic and returns
// the currently known publisher list for topic.
func (s *StubMaster) RegisterSubscriber(callerID, topic, topicType, callerAPI string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers[topic] = appendUnique(s.subscribers[topic], callerAPI)
	return append([]string(nil), s.publishers[topic]...), nil
}

// UnregisterPublisher removes callerAPI from topic's publisher list.
func (s *StubMaster) UnregisterPublisher(callerID, topic, callerAPI string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.publishers[topic] = removeString(s.publishers[topic], callerAPI)
	return nil
}

// UnregisterSubscriber removes callerAPI from topic's subscriber list.
func (s *StubMaster) UnregisterSubscriber(callerID, topic, callerAPI string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers[topic] = removeString(s.subscribers[topic], callerAPI)
	return nil
}

// RequestTopic answers from Topics, keyed by publisherURI, ignoring
// callerID/topic, the way a real publisher would have already scoped its
// answer to the single topic that URI was registered for in the test. A
// configured protocol other than TCPROS is rejected the same way
// XMLRPCMasterClient.RequestTopic rejects one, so tests can exercise the
// unsupported-protocol path without a real publisher slave API.
func (s *StubMaster) RequestTopic(callerID, topic, publisherURI string) (TopicProtocol, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	proto, ok := s.Topics[publisherURI]
	if !ok {
		return TopicProtocol{}, &rpcError{uri: publisherURI, err: errUnknownPublisher}
	}
	if proto.Name != tcprosProtocolName {
		return TopicProtocol{}, &UnsupportedProtocolError{URI: publisherURI, Protocol: proto.Name}
	}
	return proto, nil
}

func appendUnique(list []string, v string) []string {
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}

func removeString(list []string, v string) []string {
	out := list[:0]
	for _, existing := range list {
		if existing != v {
			out = append(out, existing)
		}
	}
	return out
}
