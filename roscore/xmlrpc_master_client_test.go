package roscore

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestXMLRPCMasterClient_RegisterPublisher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<?xml version="1.0"?>
<methodResponse><params><param><value><array><data>
<value><string>http://sub-host:1234</string></value>
</data></array></value></param></params></methodResponse>`)
	}))
	defer srv.Close()

	client := NewXMLRPCMasterClient(srv.URL)
	subscribers, err := client.RegisterPublisher("/talker", "/chatter", "std_msgs/String", "http://talker-host:1234")
	if err != nil {
		t.Fatalf("RegisterPublisher failed: %s", err)
	}
	if len(subscribers) != 1 || subscribers[0] != "http://sub-host:1234" {
		t.Fatalf("got %v, want [http://sub-host:1234]", subscribers)
	}
}

func TestXMLRPCMasterClient_RequestTopic_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<?xml version="1.0"?>
<methodResponse><params><param><value><array><data>
<value><int>1</int></value>
<value><string>Success</string></value>
<value><array><data>
<value><string>TCPROS</string></value>
<value><string>talker-host</string></value>
<value><int>9001</int></value>
</data></array></value>
</data></array></value></param></params></methodResponse>`)
	}))
	defer srv.Close()

	client := NewXMLRPCMasterClient(srv.URL)
	proto, err := client.RequestTopic("/listener", "/chatter", srv.URL)
	if err != nil {
		t.Fatalf("RequestTopic failed: %s", err)
	}
	if proto != (TopicProtocol{Name: "TCPROS", Host: "talker-host", Port: 9001}) {
		t.Fatalf("got %+v", proto)
	}
}

func TestXMLRPCMasterClient_RequestTopic_UnsupportedProtocol(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<?xml version="1.0"?>
<methodResponse><params><param><value><array><data>
<value><int>1</int></value>
<value><string>Success</string></value>
<value><array><data>
<value><string>UDPROS</string></value>
<value><string>talker-host</string></value>
<value><int>9001</int></value>
</data></array></value>
</data></array></value></param></params></methodResponse>`)
	}))
	defer srv.Close()

	client := NewXMLRPCMasterClient(srv.URL)
	if _, err := client.RequestTopic("/listener", "/chatter", srv.URL); err == nil {
		t.Fatal("expected an error when the publisher offers only UDPROS")
	}
}

func TestXMLRPCMasterClient_RequestTopic_FailureCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<?xml version="1.0"?>
<methodResponse><params><param><value><array><data>
<value><int>0</int></value>
<value><string>No such topic</string></value>
<value><int>0</int></value>
</data></array></value></param></params></methodResponse>`)
	}))
	defer srv.Close()

	client := NewXMLRPCMasterClient(srv.URL)
	if _, err := client.RequestTopic("/listener", "/chatter", srv.URL); err == nil {
		t.Fatal("expected an error for a failure status code")
	}
}
