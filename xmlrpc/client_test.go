package xmlrpc

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClient_Call_DecodesStringResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(body), "<methodName>getMasterURI</methodName>") {
			t.Errorf("request body missing expected methodName: %s", body)
		}
		fmt.Fprint(w, `<?xml version="1.0"?>
<methodResponse><params><param><value><string>http://localhost:11311</string></value></param></params></methodResponse>`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	result, err := c.Call("getMasterURI", "/talker")
	if err != nil {
		t.Fatalf("Call failed: %s", err)
	}
	if result.String() != "http://localhost:11311" {
		t.Fatalf("got %q, want %q", result.String(), "http://localhost:11311")
	}
}

func TestClient_Call_DecodesNestedArrayResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<?xml version="1.0"?>
<methodResponse><params><param><value><array><data>
<value><int>1</int></value>
<value><string>Success</string></value>
<value><array><data>
<value><string>TCPROS</string></value>
<value><string>bobross.local</string></value>
<value><int>9001</int></value>
</data></array></value>
</data></array></value></param></params></methodResponse>`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	result, err := c.Call("requestTopic", "/listener", "/chatter", []interface{}{[]interface{}{"TCPROS"}})
	if err != nil {
		t.Fatalf("Call failed: %s", err)
	}
	if len(result.Array) != 3 {
		t.Fatalf("got %d top-level values, want 3", len(result.Array))
	}
	if result.Array[0].AsInt() != 1 {
		t.Fatalf("got code %d, want 1", result.Array[0].AsInt())
	}
	chosen := result.Array[2]
	if len(chosen.Array) != 3 {
		t.Fatalf("got %d protocol values, want 3", len(chosen.Array))
	}
	if chosen.Array[0].String() != "TCPROS" {
		t.Fatalf("got protocol %q, want TCPROS", chosen.Array[0].String())
	}
	if chosen.Array[2].AsInt() != 9001 {
		t.Fatalf("got port %d, want 9001", chosen.Array[2].AsInt())
	}
}

func TestClient_Call_FaultReturnsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<?xml version="1.0"?>
<methodResponse><fault><value><string>boom</string></value></fault></methodResponse>`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if _, err := c.Call("getMasterURI", "/talker"); err == nil {
		t.Fatal("expected an error for a fault response")
	}
}

func TestClient_Call_NonOKStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if _, err := c.Call("getMasterURI", "/talker"); err == nil {
		t.Fatal("expected an error for a non-200 response")
	}
}

func TestMarshalCall_EncodesParamsInOrder(t *testing.T) {
	body, err := marshalCall("registerPublisher", []interface{}{"/talker", "/chatter", "std_msgs/String", "http://host:1234"})
	if err != nil {
		t.Fatalf("marshalCall failed: %s", err)
	}
	s := string(body)
	for _, want := range []string{"<methodName>registerPublisher</methodName>", "<string>/talker</string>", "<string>http://host:1234</string>"} {
		if !strings.Contains(s, want) {
			t.Fatalf("expected body to contain %q, got: %s", want, s)
		}
	}
}

func TestMarshalValue_RejectsUnsupportedType(t *testing.T) {
	type unsupported struct{ X int }
	if _, err := marshalValue(unsupported{X: 1}); err == nil {
		t.Fatal("expected an error for an unsupported parameter type")
	}
}
