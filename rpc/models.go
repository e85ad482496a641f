package rpc

import (
	"nano"
)

// BlockSubtype classifies a state block.
type BlockSubtype string

const (
	SubtypeSend    BlockSubtype = "send"
	SubtypeReceive BlockSubtype = "receive"
	SubtypeChange  BlockSubtype = "change"
	SubtypeEpoch   BlockSubtype = "epoch"
)

// Block is the JSON representation of a block as returned with
// json_block=true.
type Block struct {
	Type           string   `json:"type"`
	Account        string   `json:"account"`
	Previous       string   `json:"previous"`
	Representative string   `json:"representative"`
	Balance        nano.Raw `json:"balance"`
	Link           string   `json:"link"`
	LinkAsAccount  string   `json:"link_as_account,omitempty"`
	Signature      string   `json:"signature"`
	Work           string   `json:"work"`
}

// BlockInfo describes a single ledger block and its confirmation state.
type BlockInfo struct {
	BlockAccount   string          `json:"block_account"`
	Amount         nano.Raw        `json:"amount"`
	Balance        nano.Raw        `json:"balance"`
	Height         nano.UintString `json:"height"`
	LocalTimestamp nano.UintString `json:"local_timestamp"`
	Successor      string          `json:"successor"`
	Confirmed      nano.BoolString `json:"confirmed"`
	Contents       Block           `json:"contents"`
	Subtype        BlockSubtype    `json:"subtype"`
	Pending        nano.BoolString `json:"pending,omitempty"`
	SourceAccount  string          `json:"source_account,omitempty"`
}

// BlocksInfo is the result of a multi-hash block lookup.
type BlocksInfo struct {
	Blocks         map[string]BlockInfo `json:"blocks"`
	BlocksNotFound []string             `json:"blocks_not_found,omitempty"`
}

// AccountBalance reports the settled and not-yet-received funds of one
// account.
type AccountBalance struct {
	Balance    nano.Raw `json:"balance"`
	Pending    nano.Raw `json:"pending"`
	Receivable nano.Raw `json:"receivable"`
}

// HistoricalBlock is one entry of an account's send/receive history.
type HistoricalBlock struct {
	Type           string          `json:"type"`
	Account        string          `json:"account"`
	Amount         nano.Raw        `json:"amount"`
	LocalTimestamp nano.UintString `json:"local_timestamp"`
	Height         nano.UintString `json:"height"`
	Hash           string          `json:"hash"`
	Confirmed      nano.BoolString `json:"confirmed"`
	Subtype        BlockSubtype    `json:"subtype,omitempty"`
	Previous       string          `json:"previous,omitempty"`
	Representative string          `json:"representative,omitempty"`
	Signature      string          `json:"signature,omitempty"`
	Work           string          `json:"work,omitempty"`
	Link           string          `json:"link,omitempty"`
}

// AccountHistory is the paged history of one account. Previous and Next
// carry the hashes to continue paging in either direction.
type AccountHistory struct {
	Account  string            `json:"account"`
	History  []HistoricalBlock `json:"history"`
	Previous string            `json:"previous,omitempty"`
	Next     string            `json:"next,omitempty"`
}

// AccountInfo is the ledger view of one account. The confirmed_* fields are
// only present when the call asks for them.
type AccountInfo struct {
	Frontier                   string          `json:"frontier"`
	OpenBlock                  string          `json:"open_block"`
	RepresentativeBlock        string          `json:"representative_block"`
	Balance                    nano.Raw        `json:"balance"`
	ConfirmedBalance           *nano.Raw       `json:"confirmed_balance,omitempty"`
	ModifiedTimestamp          nano.UintString `json:"modified_timestamp"`
	BlockCount                 nano.UintString `json:"block_count"`
	AccountVersion             nano.UintString `json:"account_version"`
	ConfirmationHeight         nano.UintString `json:"confirmation_height"`
	ConfirmationHeightFrontier string          `json:"confirmation_height_frontier"`
	Representative             string          `json:"representative,omitempty"`
	ConfirmedRepresentative    string          `json:"confirmed_representative,omitempty"`
	Weight                     *nano.Raw       `json:"weight,omitempty"`
	Pending                    *nano.Raw       `json:"pending,omitempty"`
	Receivable                 *nano.Raw       `json:"receivable,omitempty"`
	ConfirmedPending           *nano.Raw       `json:"confirmed_pending,omitempty"`
	ConfirmedReceivable        *nano.Raw       `json:"confirmed_receivable,omitempty"`
}

// BlockCount reports ledger totals.
type BlockCount struct {
	Count     nano.UintString `json:"count"`
	Unchecked nano.UintString `json:"unchecked"`
	Cemented  nano.UintString `json:"cemented,omitempty"`
}

// SignedBlock is the result of block_create.
type SignedBlock struct {
	Hash       string `json:"hash"`
	Difficulty string `json:"difficulty"`
	Block      Block  `json:"block"`
}

// ActiveConfirmations lists currently active election roots.
type ActiveConfirmations struct {
	Confirmations []string        `json:"confirmations"`
	Unconfirmed   nano.UintString `json:"unconfirmed"`
	Confirmed     nano.UintString `json:"confirmed"`
}

// ConfirmationBlock is one competing block inside an active election.
type ConfirmationBlock struct {
	Tally           nano.Raw            `json:"tally"`
	Contents        Block               `json:"contents"`
	Representatives map[string]nano.Raw `json:"representatives,omitempty"`
}

// ConfirmationInfo describes one unconfirmed active election.
type ConfirmationInfo struct {
	Announcements nano.UintString              `json:"announcements"`
	LastWinner    string                       `json:"last_winner"`
	TotalTally    nano.Raw                     `json:"total_tally"`
	Blocks        map[string]ConfirmationBlock `json:"blocks"`
}

// ConfirmationQuorumPeer is one representative peer with its voting weight.
type ConfirmationQuorumPeer struct {
	Account string   `json:"account"`
	IP      string   `json:"ip"`
	Weight  nano.Raw `json:"weight"`
}

// ConfirmationQuorum reports the node's view of voting stake on the
// network.
type ConfirmationQuorum struct {
	QuorumDelta               nano.Raw                 `json:"quorum_delta"`
	OnlineWeightQuorumPercent nano.UintString          `json:"online_weight_quorum_percent"`
	OnlineWeightMinimum       nano.Raw                 `json:"online_weight_minimum"`
	OnlineStakeTotal          nano.Raw                 `json:"online_stake_total"`
	PeersStakeTotal           nano.Raw                 `json:"peers_stake_total"`
	TrendedStakeTotal         nano.Raw                 `json:"trended_stake_total"`
	Peers                     []ConfirmationQuorumPeer `json:"peers,omitempty"`
}

// LazyBootstrapInfo is the result of bootstrap_lazy.
type LazyBootstrapInfo struct {
	Started     nano.BoolString `json:"started"`
	KeyInserted nano.BoolString `json:"key_inserted"`
}

// Keypair is a private/public key pair with its derived account address.
type Keypair struct {
	Private string `json:"private"`
	Public  string `json:"public"`
	Account string `json:"account"`
}

// LedgerInfo is one account entry of a ledger scan.
type LedgerInfo struct {
	Frontier            string          `json:"frontier"`
	OpenBlock           string          `json:"open_block"`
	RepresentativeBlock string          `json:"representative_block"`
	Balance             nano.Raw        `json:"balance"`
	ModifiedTimestamp   nano.UintString `json:"modified_timestamp"`
	BlockCount          nano.UintString `json:"block_count"`
	Representative      string          `json:"representative,omitempty"`
	Weight              *nano.Raw       `json:"weight,omitempty"`
	Pending             *nano.Raw       `json:"pending,omitempty"`
	Receivable          *nano.Raw       `json:"receivable,omitempty"`
}

// PeerInfo describes one connected peer when peer details are requested.
type PeerInfo struct {
	ProtocolVersion nano.UintString `json:"protocol_version"`
	NodeID          string          `json:"node_id"`
	Type            string          `json:"type"`
}

// Receivable is one not-yet-received block with its source account.
type Receivable struct {
	Amount nano.Raw `json:"amount"`
	Source string   `json:"source"`
}

// Representative is an online representative's voting weight.
type Representative struct {
	Weight nano.Raw `json:"weight"`
}

// Telemetry is the metric set nodes exchange with each other.
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
	NodeID            string          `json:"node_id,omitempty"`
	Signature         string          `json:"signature,omitempty"`
	Address           string          `json:"address,omitempty"`
	Port              string          `json:"port,omitempty"`
}

// VersionInfo reports the node's version numbers and network.
type VersionInfo struct {
	RPCVersion        nano.UintString `json:"rpc_version"`
	StoreVersion      nano.UintString `json:"store_version"`
	ProtocolVersion   nano.UintString `json:"protocol_version"`
	NodeVendor        string          `json:"node_vendor"`
	StoreVendor       string          `json:"store_vendor"`
	Network           string          `json:"network"`
	NetworkIdentifier string          `json:"network_identifier"`
	BuildInfo         string          `json:"build_info"`
}

// UncheckedBlock is one block waiting in the unchecked table.
type UncheckedBlock struct {
	Key               string          `json:"key"`
	Hash              string          `json:"hash"`
	ModifiedTimestamp nano.UintString `json:"modified_timestamp"`
	Contents          Block           `json:"contents"`
}

// WorkInfo is the result of work generation.
type WorkInfo struct {
	Work       string           `json:"work"`
	Difficulty string           `json:"difficulty"`
	Multiplier nano.FloatString `json:"multiplier"`
	Hash       string           `json:"hash"`
}

// ValidationInfo is the result of work validation. Valid is only present
// when a difficulty was supplied with the request.
type ValidationInfo struct {
	Valid        *nano.BoolString `json:"valid,omitempty"`
	ValidAll     nano.BoolString  `json:"valid_all"`
	ValidReceive nano.BoolString  `json:"valid_receive"`
	Difficulty   string           `json:"difficulty"`
	Multiplier   nano.FloatString `json:"multiplier"`
}
