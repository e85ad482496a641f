package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"nano/ws"
)

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// applyDefaults sets default values for unset fields
func applyDefaults(cfg *Config) {
	if cfg.RPCURL == "" {
		cfg.RPCURL = DefaultRPCURL
	}
	if cfg.WSURL == "" {
		cfg.WSURL = DefaultWSURL
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.AckTimeout == 0 {
		cfg.AckTimeout = DefaultAckTimeout
	}
	if cfg.ReconnectInterval == 0 {
		cfg.ReconnectInterval = DefaultReconnectInterval
	}
	if len(cfg.Subscriptions) == 0 {
		cfg.Subscriptions = []SubscriptionConfig{{Topic: string(ws.TopicConfirmation)}}
	}
}

// validate checks the configuration for errors
func validate(cfg *Config) error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[cfg.LogLevel] {
		return fmt.Errorf("logLevel must be one of: debug, info, warn, error")
	}

	if len(cfg.Subscriptions) == 0 {
		return errors.New("at least one subscription is required")
	}

	validTopics := map[string]bool{
		string(ws.TopicConfirmation):        true,
		string(ws.TopicVote):                true,
		string(ws.TopicStoppedElection):     true,
		string(ws.TopicActiveDifficulty):    true,
		string(ws.TopicWork):                true,
		string(ws.TopicTelemetry):           true,
		string(ws.TopicNewUnconfirmedBlock): true,
		string(ws.TopicBootstrap):           true,
	}
	seen := make(map[string]bool)
	for i, sub := range cfg.Subscriptions {
		if sub.Topic == "" {
			return fmt.Errorf("subscriptions[%d]: topic is required", i)
		}
		if !validTopics[sub.Topic] {
			return fmt.Errorf("subscriptions[%d]: unknown topic '%s'", i, sub.Topic)
		}
		if seen[sub.Topic] {
			return fmt.Errorf("subscriptions[%d]: duplicate topic '%s'", i, sub.Topic)
		}
		seen[sub.Topic] = true
	}

	return nil
}
