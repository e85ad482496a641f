package ws

import (
	"encoding/json"

	"nano"
)

// Block is a state block as carried inside confirmation and
// new_unconfirmed_block events.
type Block struct {
	Type           string   `json:"type"`
	Account        string   `json:"account"`
	Previous       string   `json:"previous"`
	Representative string   `json:"representative"`
	Balance        nano.Raw `json:"balance"`
	Link           string   `json:"link"`
	LinkAsAccount  string   `json:"link_as_account"`
	Signature      string   `json:"signature"`
	Work           string   `json:"work"`
	Subtype        string   `json:"subtype"`
}

// ElectionInfo carries election statistics attached to a confirmation when
// the subscription asks for them.
type ElectionInfo struct {
	Duration     nano.UintString `json:"duration"`
	Time         nano.UintString `json:"time"`
	Tally        nano.Raw        `json:"tally"`
	RequestCount nano.UintString `json:"request_count"`
	Blocks       nano.UintString `json:"blocks"`
	Voters       nano.UintString `json:"voters"`
}

// Confirmation is the payload of the confirmation topic.
type Confirmation struct {
	Account          string        `json:"account"`
	Amount           nano.Raw      `json:"amount"`
	Hash             string        `json:"hash"`
	ConfirmationType string        `json:"confirmation_type"`
	ElectionInfo     *ElectionInfo `json:"election_info,omitempty"`
	Block            Block         `json:"block"`
}

// Vote is the payload of the vote topic.
type Vote struct {
	Account   string          `json:"account"`
	Signature string          `json:"signature"`
	Sequence  nano.UintString `json:"sequence"`
	Blocks    []string        `json:"blocks"`
	Type      string          `json:"type"`
}

// Difficulty is the payload of the active_difficulty topic.
type Difficulty struct {
	Multiplier            nano.FloatString `json:"multiplier"`
	NetworkCurrent        string           `json:"network_current"`
	NetworkMinimum        string           `json:"network_minimum"`
	NetworkReceiveCurrent string           `json:"network_receive_current"`
	NetworkReceiveMinimum string           `json:"network_receive_minimum"`
}

// WorkRequest describes the work the node asked its peers for.
type WorkRequest struct {
	Hash       string           `json:"hash"`
	Difficulty string           `json:"difficulty"`
	Multiplier nano.FloatString `json:"multiplier"`
	Version    string           `json:"version"`
}

// WorkResult is the outcome of a completed work request.
type WorkResult struct {
	Source     string           `json:"source"`
	Work       string           `json:"work"`
	Difficulty string           `json:"difficulty"`
	Multiplier nano.FloatString `json:"multiplier"`
}

// Work is the payload of the work topic. Result is nil when the request
// failed or was cancelled.
type Work struct {
	Success  nano.BoolString `json:"success"`
	Reason   string          `json:"reason"`
	Duration nano.UintString `json:"duration"`
	Request  WorkRequest     `json:"request"`
	Result   *WorkResult     `json:"result,omitempty"`
	BadPeers peerList        `json:"bad_peers"`
}

// peerList tolerates the node serializing an empty peer set as "" instead
// of an empty array.
type peerList []string

func (p *peerList) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		*p = nil
		return nil
	}
	var peers []string
	if err := json.Unmarshal(data, &peers); err != nil {
		return err
	}
	*p = peers
	return nil
}

// Telemetry is the payload of the telemetry topic.
type Telemetry struct {
	BlockCount        nano.UintString `json:"block_count"`
	CementedCount     nano.UintString `json:"cemented_count"`
	UncheckedCount    nano.UintString `json:"unchecked_count"`
	AccountCount      nano.UintString `json:"account_count"`
	BandwidthCap      nano.UintString `json:"bandwidth_cap"`
	PeerCount         nano.UintString `json:"peer_count"`
	ProtocolVersion   nano.UintString `json:"protocol_version"`
	Uptime            nano.UintString `json:"uptime"`
	GenesisBlock      string          `json:"genesis_block"`
	MajorVersion      nano.UintString `json:"major_version"`
	MinorVersion      nano.UintString `json:"minor_version"`
	PatchVersion      nano.UintString `json:"patch_version"`
	PreReleaseVersion nano.UintString `json:"pre_release_version"`
	Maker             nano.UintString `json:"maker"`
	Timestamp         nano.UintString `json:"timestamp"`
	ActiveDifficulty  string          `json:"active_difficulty"`
	NodeID            string          `json:"node_id"`
	Signature         string          `json:"signature"`
	Address           string          `json:"address"`
	Port              string          `json:"port"`
}

// Bootstrap is the payload of the bootstrap topic, emitted when a bootstrap
// attempt starts or exits.
type Bootstrap struct {
	Reason   string          `json:"reason"`
	ID       string          `json:"id"`
	Mode     string          `json:"mode"`
	Total    nano.UintString `json:"total,omitempty"`
	Duration nano.UintString `json:"duration,omitempty"`
}
