package ros

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"sync"

	modular "github.com/edwinhayes/logrus-modular"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Publication is the server side of a TCPROS topic: it owns a listening
// socket on an ephemeral port, accepts subscriber connections, validates
// their handshake, and fans out submitted payloads to every peer whose
// handshake matched.
type Publication struct {
	topic          string
	topicType      string
	responseHeader ConnectionHeader

	listener net.Listener
	port     uint16

	queue chan []byte

	peersMu sync.RWMutex
	peers   []net.Conn

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	log *modular.ModuleLogger
}

// NewPublication binds a TCP listener on hostAddr:0, records the ephemeral
// port, and starts the acceptor and fan-out tasks. It returns ErrBind if the
// listener cannot be created.
func NewPublication(
	nodeName, topic, topicType, md5sum, definition string,
	latching bool,
	hostAddr string,
	queueSize int,
	log *modular.ModuleLogger,
) (*Publication, error) {
	listener, err := net.Listen("tcp", fmt.Sprintf("%s:0", hostAddr))
	if err != nil {
		return nil, errors.Wrap(ErrBind, err.Error())
	}

	_, portStr, err := net.SplitHostPort(listener.Addr().String())
	if err != nil {
		listener.Close()
		return nil, errors.Wrap(ErrBind, err.Error())
	}
	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		listener.Close()
		return nil, errors.Wrap(ErrBind, err.Error())
	}

	if queueSize <= 0 {
		queueSize = 1
	}
	if log == nil {
		log = NewLogger()
	}

	ctx, cancel := context.WithCancel(context.Background())

	p := &Publication{
		topic:     topic,
		topicType: topicType,
		responseHeader: ConnectionHeader{
			CallerID:      nodeName,
			Topic:         topic,
			TopicType:     topicType,
			MD5Sum:        md5sum,
			MsgDefinition: definition,
			Latching:      latching,
		},
		listener: listener,
		port:     uint16(port),
		queue:    make(chan []byte, queueSize),
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
		log:      log,
	}

	go p.acceptLoop()
	go p.fanOutLoop()

	return p, nil
}

// Port returns the ephemeral TCP port this Publication is listening on. It
// is assigned once at creation and never changes.
func (p *Publication) Port() uint16 {
	return p.port
}

// TopicType returns the fully qualified ROS message type name for this topic.
func (p *Publication) TopicType() string {
	return p.topicType
}

// SubmitHandle returns a cloneable handle that submits payloads into this
// Publication's bounded outbound queue.
func (p *Publication) SubmitHandle() SubmitHandle {
	return SubmitHandle{p: p}
}

// Destroy aborts the acceptor and fan-out tasks, closes the listener, and
// closes every currently connected peer stream. Any payloads still queued
// are discarded without being sent.
func (p *Publication) Destroy() {
	p.cancel()
	p.listener.Close()

	p.peersMu.Lock()
	for _, conn := range p.peers {
		conn.Close()
	}
	p.peers = nil
	p.peersMu.Unlock()
}

// SubmitHandle offers submit(bytes) to producers. Multiple handles for the
// same Publication may be held concurrently; submit suspends while the
// outbound queue is full and only fails with ErrClosed once the Publication
// has been destroyed.
type SubmitHandle struct {
	p *Publication
}

// Submit enqueues payload for fan-out to every connected subscriber. It
// blocks while the queue is full and returns ErrClosed if the Publication
// was destroyed before the payload could be enqueued.
func (h SubmitHandle) Submit(payload []byte) error {
	select {
	case <-h.p.ctx.Done():
		return ErrClosed
	default:
	}

	select {
	case h.p.queue <- payload:
		return nil
	case <-h.p.ctx.Done():
		return ErrClosed
	}
}

// acceptLoop accepts subscriber connections, validates their handshake, and
// adds matching peers to the fan-out set. A single misbehaving peer never
// terminates the loop; only Destroy does.
func (p *Publication) acceptLoop() {
	logger := *p.log
	logger.WithFields(logrus.Fields{"topic": p.topic, "port": p.port}).Debug("Publication acceptor started")
	defer logger.WithFields(logrus.Fields{"topic": p.topic}).Debug("Publication acceptor exited")

	for {
		conn, err := p.listener.Accept()
		if err != nil {
			select {
			case <-p.ctx.Done():
				return
			default:
				logger.WithFields(logrus.Fields{"topic": p.topic, "error": err}).Debug("accept failed, retrying")
				continue
			}
		}
		go p.handleSubscriberHandshake(conn)
	}
}

// handleSubscriberHandshake reads and validates one candidate subscriber's
// connection header, and on success writes the Publication's response
// header and adds the stream to the peer set.
func (p *Publication) handleSubscriberHandshake(conn net.Conn) {
	logger := *p.log

	entries, err := readConnectionHeader(conn)
	if err != nil {
		logger.WithFields(logrus.Fields{"topic": p.topic, "error": err}).Debug("failed to read subscriber connection header")
		conn.Close()
		return
	}

	raw := make(map[string]string, len(entries))
	for _, e := range entries {
		raw[e.key] = e.value
	}

	if raw["md5sum"] != p.responseHeader.MD5Sum {
		logger.WithFields(logrus.Fields{
			"topic":  p.topic,
			"want":   p.responseHeader.MD5Sum,
			"got":    raw["md5sum"],
			"remote": conn.RemoteAddr(),
		}).Info("rejecting subscriber with mismatched md5sum")
		conn.Close()
		return
	}

	responseBytes, err := EncodeConnectionHeader(p.responseHeader, true)
	if err != nil {
		logger.WithFields(logrus.Fields{"topic": p.topic, "error": err}).Error("failed to encode response header")
		conn.Close()
		return
	}
	if _, err := conn.Write(responseBytes); err != nil {
		logger.WithFields(logrus.Fields{"topic": p.topic, "error": err}).Debug("failed to write response header")
		conn.Close()
		return
	}

	p.peersMu.Lock()
	p.peers = append(p.peers, conn)
	p.peersMu.Unlock()

	logger.WithFields(logrus.Fields{"topic": p.topic, "remote": conn.RemoteAddr()}).Debug("accepted subscriber")
}

// fanOutLoop waits for submitted payloads and writes each one to every
// connected peer, removing any peer whose write fails.
func (p *Publication) fanOutLoop() {
	logger := *p.log
	defer logger.WithFields(logrus.Fields{"topic": p.topic}).Debug("Publication fan-out exited")

	for {
		select {
		case payload := <-p.queue:
			p.fanOutOnce(payload)
		case <-p.ctx.Done():
			return
		}
	}
}

// fanOutOnce writes payload to every peer, then removes the peers whose
// write failed in a single ascending, offset-corrected pass so surviving
// peers keep their relative order stable for the duration of the pass.
func (p *Publication) fanOutOnce(payload []byte) {
	p.peersMu.Lock()
	defer p.peersMu.Unlock()

	var failed []int
	for i, conn := range p.peers {
		if _, err := conn.Write(payload); err != nil {
			conn.Close()
			failed = append(failed, i)
		}
	}

	for removed, idx := range failed {
		i := idx - removed
		p.peers = append(p.peers[:i], p.peers[i+1:]...)
	}
}
