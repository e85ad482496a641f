package ws

import (
	"encoding/json"
	"fmt"
)

// Topic names a category of server-pushed event. The set is closed; the
// node knows no other topics.
type Topic string

const (
	TopicConfirmation        Topic = "confirmation"
	TopicVote                Topic = "vote"
	TopicStoppedElection     Topic = "stopped_election"
	TopicActiveDifficulty    Topic = "active_difficulty"
	TopicWork                Topic = "work"
	TopicTelemetry           Topic = "telemetry"
	TopicNewUnconfirmedBlock Topic = "new_unconfirmed_block"
	TopicBootstrap           Topic = "bootstrap"
)

// parsePayload decodes an event message into the payload type of its topic:
//
//	confirmation          *Confirmation
//	vote                  *Vote
//	stopped_election      string (the election's block hash)
//	active_difficulty     *Difficulty
//	work                  *Work
//	telemetry             *Telemetry
//	new_unconfirmed_block *Block
//	bootstrap             *Bootstrap
//
// Unknown topics pass the raw message through untouched.
func parsePayload(topic Topic, message json.RawMessage) (any, error) {
	switch topic {
	case TopicConfirmation:
		return decode[Confirmation](topic, message)
	case TopicVote:
		return decode[Vote](topic, message)
	case TopicStoppedElection:
		var out struct {
			Hash string `json:"hash"`
		}
		if err := json.Unmarshal(message, &out); err != nil {
			return nil, fmt.Errorf("invalid %s payload: %w", topic, err)
		}
		return out.Hash, nil
	case TopicActiveDifficulty:
		return decode[Difficulty](topic, message)
	case TopicWork:
		return decode[Work](topic, message)
	case TopicTelemetry:
		return decode[Telemetry](topic, message)
	case TopicNewUnconfirmedBlock:
		return decode[Block](topic, message)
	case TopicBootstrap:
		return decode[Bootstrap](topic, message)
	default:
		return message, nil
	}
}

func decode[T any](topic Topic, message json.RawMessage) (*T, error) {
	out := new(T)
	if err := json.Unmarshal(message, out); err != nil {
		return nil, fmt.Errorf("invalid %s payload: %w", topic, err)
	}
	return out, nil
}
