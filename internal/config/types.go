package config

// Config is the nanowatch configuration file structure.
type Config struct {
	RPCURL            string               `json:"rpcUrl"`
	WSURL             string               `json:"wsUrl"`
	LogLevel          string               `json:"logLevel"`
	AckTimeout        int                  `json:"ackTimeout"`        // ms - how long to wait for subscription acks
	ReconnectInterval int                  `json:"reconnectInterval"` // ms - delay between reconnection attempts
	Probe             bool                 `json:"probe"`             // issue version/block_count RPC probes on startup
	Subscriptions     []SubscriptionConfig `json:"subscriptions"`
}

// SubscriptionConfig is one topic to watch, with optional node-side filter
// options.
type SubscriptionConfig struct {
	Topic   string         `json:"topic"`
	Ack     bool           `json:"ack"`
	Options map[string]any `json:"options,omitempty"`
}

// Default values
const (
	DefaultRPCURL            = "http://localhost:7076"
	DefaultWSURL             = "ws://localhost:7078"
	DefaultLogLevel          = "info"
	DefaultAckTimeout        = 10000 // ms
	DefaultReconnectInterval = 3000  // ms
)
