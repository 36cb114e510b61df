// Package roscfg loads node and topic configuration from JSON, the way
// deployment tooling around this kind of node typically supplies master
// URI, node name, and topic queue sizes without a .launch file. It walks
// the document with github.com/buger/jsonparser's streaming ObjectEach/
// ArrayEach API rather than unmarshaling into a struct tree, the same way
// message JSON gets walked field-by-field elsewhere in this module.
package roscfg

import (
	"github.com/buger/jsonparser"
	"github.com/pkg/errors"
)

// TopicConfig describes one Publication or Subscription this node should
// create at startup.
type TopicConfig struct {
	Name      string
	Type      string
	QueueSize int
	Latching  bool
}

// NodeConfig is the decoded shape of a node's JSON configuration document:
//
//	{
//	  "node_name": "/talker",
//	  "master_uri": "http://localhost:11311",
//	  "host_addr": "0.0.0.0",
//	  "publications": [{"name": "/chatter", "type": "std_msgs/String", "queue_size": 10}],
//	  "subscriptions": [{"name": "/chatter", "type": "std_msgs/String", "queue_size": 10}]
//	}
type NodeConfig struct {
	NodeName      string
	MasterURI     string
	HostAddr      string
	Publications  []TopicConfig
	Subscriptions []TopicConfig
}

// Load parses a node configuration document. Unknown top-level keys are
// ignored; missing "publications"/"subscriptions" arrays are treated as
// empty, not an error.
func Load(doc []byte) (NodeConfig, error) {
	var cfg NodeConfig

	err := jsonparser.ObjectEach(doc, func(key, value []byte, dataType jsonparser.ValueType, offset int) error {
		switch string(key) {
		case "node_name":
			cfg.NodeName = string(value)
		case "master_uri":
			cfg.MasterURI = string(value)
		case "host_addr":
			cfg.HostAddr = string(value)
		case "publications":
			topics, err := parseTopicArray(value)
			if err != nil {
				return errors.Wrap(err, "roscfg: publications")
			}
			cfg.Publications = topics
		case "subscriptions":
			topics, err := parseTopicArray(value)
			if err != nil {
				return errors.Wrap(err, "roscfg: subscriptions")
			}
			cfg.Subscriptions = topics
		}
		return nil
	})
	if err != nil {
		return NodeConfig{}, errors.Wrap(err, "roscfg: failed to parse node configuration")
	}

	if cfg.NodeName == "" {
		return NodeConfig{}, errors.New("roscfg: node configuration is missing \"node_name\"")
	}
	if cfg.MasterURI == "" {
		return NodeConfig{}, errors.New("roscfg: node configuration is missing \"master_uri\"")
	}

	return cfg, nil
}

func parseTopicArray(arr []byte) ([]TopicConfig, error) {
	var topics []TopicConfig
	var parseErr error

	jsonparser.ArrayEach(arr, func(value []byte, dataType jsonparser.ValueType, offset int, err error) {
		if err != nil {
			parseErr = err
			return
		}
		if parseErr != nil {
			return
		}

		topic := TopicConfig{QueueSize: 1}
		walkErr := jsonparser.ObjectEach(value, func(key, v []byte, dt jsonparser.ValueType, off int) error {
			switch string(key) {
			case "name":
				topic.Name = string(v)
			case "type":
				topic.Type = string(v)
			case "queue_size":
				n, err := jsonparser.ParseInt(v)
				if err != nil {
					return err
				}
				topic.QueueSize = int(n)
			case "latching":
				b, err := jsonparser.ParseBoolean(v)
				if err != nil {
					return err
				}
				topic.Latching = b
			}
			return nil
		})
		if walkErr != nil {
			parseErr = walkErr
			return
		}
		if topic.Name == "" || topic.Type == "" {
			parseErr = errors.New("roscfg: topic entry requires \"name\" and \"type\"")
			return
		}
		topics = append(topics, topic)
	})

	return topics, parseErr
}
