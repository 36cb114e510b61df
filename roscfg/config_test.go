package roscfg

import "testing"

func TestLoad_FullDocument(t *testing.T) {
	doc := []byte(`{
		"node_name": "/talker",
		"master_uri": "http://localhost:11311",
		"host_addr": "0.0.0.0",
		"publications": [
			{"name": "/chatter", "type": "std_msgs/String", "queue_size": 10, "latching": true}
		],
		"subscriptions": [
			{"name": "/odom", "type": "nav_msgs/Odometry"}
		]
	}`)

	cfg, err := Load(doc)
	if err != nil {
		t.Fatalf("Load failed: %s", err)
	}

	if cfg.NodeName != "/talker" {
		t.Fatalf("got node name %q", cfg.NodeName)
	}
	if cfg.MasterURI != "http://localhost:11311" {
		t.Fatalf("got master URI %q", cfg.MasterURI)
	}
	if len(cfg.Publications) != 1 {
		t.Fatalf("got %d publications, want 1", len(cfg.Publications))
	}
	pub := cfg.Publications[0]
	if pub.Name != "/chatter" || pub.Type != "std_msgs/String" || pub.QueueSize != 10 || !pub.Latching {
		t.Fatalf("got publication %+v", pub)
	}

	if len(cfg.Subscriptions) != 1 {
		t.Fatalf("got %d subscriptions, want 1", len(cfg.Subscriptions))
	}
	sub := cfg.Subscriptions[0]
	if sub.Name != "/odom" || sub.Type != "nav_msgs/Odometry" || sub.QueueSize != 1 {
		t.Fatalf("got subscription %+v, want default queue_size 1", sub)
	}
}

func TestLoad_MissingTopicArraysDefaultToEmpty(t *testing.T) {
	doc := []byte(`{"node_name": "/talker", "master_uri": "http://localhost:11311"}`)

	cfg, err := Load(doc)
	if err != nil {
		t.Fatalf("Load failed: %s", err)
	}
	if len(cfg.Publications) != 0 || len(cfg.Subscriptions) != 0 {
		t.Fatalf("expected empty topic lists, got %+v", cfg)
	}
}

func TestLoad_MissingNodeNameErrors(t *testing.T) {
	doc := []byte(`{"master_uri": "http://localhost:11311"}`)
	if _, err := Load(doc); err == nil {
		t.Fatal("expected an error for a missing node_name")
	}
}

func TestLoad_MissingMasterURIErrors(t *testing.T) {
	doc := []byte(`{"node_name": "/talker"}`)
	if _, err := Load(doc); err == nil {
		t.Fatal("expected an error for a missing master_uri")
	}
}

func TestLoad_TopicEntryMissingTypeErrors(t *testing.T) {
	doc := []byte(`{
		"node_name": "/talker",
		"master_uri": "http://localhost:11311",
		"publications": [{"name": "/chatter"}]
	}`)
	if _, err := Load(doc); err == nil {
		t.Fatal("expected an error for a topic entry missing \"type\"")
	}
}
