package config

import (
	"os"
	"strings"
)

// Bridge captures process-level configuration for the proposal bridge.
type Bridge struct {
	OpsAddr string
	Kafka   Kafka
}

// Kafka captures broker and topic wiring.
type Kafka struct {
	Brokers       []string
	InboundTopic  string
	OutboundTopic string
	GroupID       string
	CreateTopics  bool
}

// FromEnv builds a Bridge config from environment variables so main stays
// lean. Defaults target local development; production overrides everything.
func FromEnv() Bridge {
	return Bridge{
		OpsAddr: envOr("PROPOSAL_BRIDGE_ADDR", ":8080"),
		Kafka: Kafka{
			Brokers:       strings.Split(envOr("KAFKA_BROKERS", "localhost:9092"), ","),
			InboundTopic:  envOr("KAFKA_INBOUND_TOPIC", "proposal-client-events"),
			OutboundTopic: envOr("KAFKA_OUTBOUND_TOPIC", "proposal-events"),
			GroupID:       envOr("KAFKA_GROUP_ID", "proposal-bridge"),
			CreateTopics:  os.Getenv("KAFKA_CREATE_TOPICS") == "true",
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
