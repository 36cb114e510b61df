package ros

import (
	"context"
	"io"
	"net"
	"strconv"
	"sync"

	modular "github.com/edwinhayes/logrus-modular"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/edwinhayes/rosgo/roscore"
)

// readChunkSize is how much a Subscription's reader task asks the kernel
// for on each Read call; whatever arrives becomes one broadcast payload.
// Framing above raw TCP bytes is out of scope for this layer.
const readChunkSize = 4096

// Subscription is the client side of a TCPROS topic: it owns a broadcast
// queue for one topic, and for each publisher URI it learns about, resolves
// the publisher's TCPROS endpoint via the master/slave API, dials it,
// completes the handshake, and streams inbound bytes into the queue.
type Subscription struct {
	nodeName      string
	topic         string
	topicType     string
	md5sum        string
	msgDefinition string

	master roscore.MasterClient
	queue  *broadcastQueue

	knownMu sync.RWMutex
	known   map[string]struct{}

	connsMu sync.Mutex
	conns   map[net.Conn]struct{}

	ctx    context.Context
	cancel context.CancelFunc

	log *modular.ModuleLogger
}

// NewSubscription creates a Subscription with no publisher sources yet; no
// sockets are opened until AddPublisherSource is called.
func NewSubscription(
	nodeName, topic, topicType, md5sum, definition string,
	queueSize int,
	master roscore.MasterClient,
	log *modular.ModuleLogger,
) *Subscription {
	if queueSize <= 0 {
		queueSize = 1
	}
	if log == nil {
		log = NewLogger()
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Subscription{
		nodeName:      nodeName,
		topic:         topic,
		topicType:     topicType,
		md5sum:        md5sum,
		msgDefinition: definition,
		master:        master,
		queue:         newBroadcastQueue(queueSize),
		known:         make(map[string]struct{}),
		conns:         make(map[net.Conn]struct{}),
		ctx:           ctx,
		cancel:        cancel,
		log:           log,
	}
}

// TopicType returns the fully qualified ROS message type name for this topic.
func (s *Subscription) TopicType() string {
	return s.topicType
}

// Consumer returns a fresh consumer observing every payload published on
// this Subscription's broadcast queue from this point on.
func (s *Subscription) Consumer() *BroadcastConsumer {
	return s.queue.subscribe()
}

// AddPublisherSource starts a reader task for publisherURI if it is not
// already known. It is idempotent with respect to a given URI string and
// never blocks: the XML-RPC negotiation, dial, and handshake all happen on
// the spawned reader task. Failures are logged; they terminate only that
// reader.
func (s *Subscription) AddPublisherSource(publisherURI string) error {
	s.knownMu.RLock()
	_, known := s.known[publisherURI]
	s.knownMu.RUnlock()
	if known {
		return nil
	}

	go s.runReader(publisherURI)
	return nil
}

// Destroy aborts every reader task for this Subscription by closing their
// connections, then closes the broadcast queue; existing consumers observe
// end-of-stream once their backlog drains.
func (s *Subscription) Destroy() {
	s.cancel()

	s.connsMu.Lock()
	for conn := range s.conns {
		conn.Close()
	}
	s.conns = nil
	s.connsMu.Unlock()

	s.queue.close()
}

func (s *Subscription) runReader(publisherURI string) {
	logger := *s.log
	fields := logrus.Fields{"topic": s.topic, "publisher": publisherURI}

	select {
	case <-s.ctx.Done():
		return
	default:
	}

	conn, err := s.connect(publisherURI)
	if err != nil {
		logger.WithFields(fields).WithField("error", err).Info("failed to establish publisher connection")
		return
	}
	defer conn.Close()
	defer s.forgetConn(conn)

	if !s.rememberConn(conn) {
		// Destroy ran concurrently with connect(); tear down immediately.
		return
	}

	s.knownMu.Lock()
	s.known[publisherURI] = struct{}{}
	s.knownMu.Unlock()

	logger.WithFields(fields).Debug("subscription connected to publisher")
	s.readLoop(conn, fields)
}

// rememberConn registers conn so Destroy can abort it. It returns false if
// the Subscription has already been destroyed, in which case the caller
// should close conn itself and give up.
func (s *Subscription) rememberConn(conn net.Conn) bool {
	s.connsMu.Lock()
	defer s.connsMu.Unlock()
	if s.conns == nil {
		return false
	}
	s.conns[conn] = struct{}{}
	return true
}

func (s *Subscription) forgetConn(conn net.Conn) {
	s.connsMu.Lock()
	defer s.connsMu.Unlock()
	if s.conns != nil {
		delete(s.conns, conn)
	}
}

// connect runs the XMLRPC negotiation, TCP dial, and TCPROS handshake for
// one publisher URI.
func (s *Subscription) connect(publisherURI string) (net.Conn, error) {
	proto, err := s.master.RequestTopic(s.nodeName, s.topic, publisherURI)
	if err != nil {
		if _, ok := err.(*roscore.UnsupportedProtocolError); ok {
			return nil, errors.Wrap(ErrUnsupportedProtocol, err.Error())
		}
		return nil, &RPCError{URI: publisherURI, Err: err}
	}

	addr := net.JoinHostPort(proto.Host, strconv.Itoa(proto.Port))
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "ros: failed to dial publisher at %s", addr)
	}

	requestHeader := ConnectionHeader{
		CallerID:  s.nodeName,
		Topic:     s.topic,
		TopicType: s.topicType,
		MD5Sum:    s.md5sum,
	}
	headerBytes, err := EncodeConnectionHeader(requestHeader, false)
	if err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "ros: failed to encode subscriber connection header")
	}
	if _, err := conn.Write(headerBytes); err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "ros: failed to write subscriber connection header")
	}

	entries, err := readConnectionHeader(conn)
	if err != nil {
		conn.Close()
		return nil, errors.Wrap(ErrHandshake, err.Error())
	}
	var responseMD5 string
	for _, e := range entries {
		if e.key == "md5sum" {
			responseMD5 = e.value
		}
	}
	if responseMD5 != s.md5sum {
		conn.Close()
		return nil, errors.Wrapf(ErrHandshake, "md5sum mismatch: want %q, got %q", s.md5sum, responseMD5)
	}

	return conn, nil
}

// readLoop forwards raw stream bytes into the broadcast queue one read at a
// time, terminating on a zero-byte read or any read error.
func (s *Subscription) readLoop(conn net.Conn, fields logrus.Fields) {
	logger := *s.log
	buf := make([]byte, readChunkSize)

	for {
		n, err := conn.Read(buf)
		if n > 0 {
			payload := make([]byte, n)
			copy(payload, buf[:n])
			s.queue.publish(payload)
		}
		if err != nil {
			if err != io.EOF {
				logger.WithFields(fields).WithField("error", err).Debug("publisher read failed, closing connection")
			} else {
				logger.WithFields(fields).Debug("publisher closed connection")
			}
			return
		}
	}
}
