package roscore

import "testing"

func TestStubMaster_RegisterPublisherReturnsKnownSubscribers(t *testing.T) {
	m := NewStubMaster()
	if _, err := m.RegisterSubscriber("/listener", "/chatter", "std_msgs/String", "http://sub:1"); err != nil {
		t.Fatalf("RegisterSubscriber failed: %s", err)
	}

	subscribers, err := m.RegisterPublisher("/talker", "/chatter", "std_msgs/String", "http://pub:1")
	if err != nil {
		t.Fatalf("RegisterPublisher failed: %s", err)
	}
	if len(subscribers) != 1 || subscribers[0] != "http://sub:1" {
		t.Fatalf("got %v, want [http://sub:1]", subscribers)
	}
}

func TestStubMaster_RegisterIsIdempotentPerCallerAPI(t *testing.T) {
	m := NewStubMaster()
	m.RegisterPublisher("/talker", "/chatter", "std_msgs/String", "http://pub:1")
	m.RegisterPublisher("/talker", "/chatter", "std_msgs/String", "http://pub:1")

	if len(m.publishers["/chatter"]) != 1 {
		t.Fatalf("expected a single publisher entry, got %d", len(m.publishers["/chatter"]))
	}
}

func TestStubMaster_Unregister(t *testing.T) {
	m := NewStubMaster()
	m.RegisterPublisher("/talker", "/chatter", "std_msgs/String", "http://pub:1")
	if err := m.UnregisterPublisher("/talker", "/chatter", "http://pub:1"); err != nil {
		t.Fatalf("UnregisterPublisher failed: %s", err)
	}
	if len(m.publishers["/chatter"]) != 0 {
		t.Fatalf("expected publisher list to be empty, got %v", m.publishers["/chatter"])
	}
}

func TestStubMaster_RequestTopic_UnknownPublisherErrors(t *testing.T) {
	m := NewStubMaster()
	if _, err := m.RequestTopic("/listener", "/chatter", "http://pub:1"); err == nil {
		t.Fatal("expected an error for an unregistered publisher URI")
	}
}

func TestStubMaster_RequestTopic_ReturnsConfiguredEndpoint(t *testing.T) {
	m := NewStubMaster()
	m.Topics["http://pub:1"] = TopicProtocol{Name: "TCPROS", Host: "pub-host", Port: 9001}

	proto, err := m.RequestTopic("/listener", "/chatter", "http://pub:1")
	if err != nil {
		t.Fatalf("RequestTopic failed: %s", err)
	}
	if proto != (TopicProtocol{Name: "TCPROS", Host: "pub-host", Port: 9001}) {
		t.Fatalf("got %+v", proto)
	}
}
