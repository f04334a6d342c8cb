package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config is the daemon configuration, read from an optional TOML file with
// BANTER_* environment overrides applied on top.
type Config struct {
	// ListenAddr is the HTTP/websocket bind address.
	ListenAddr string `toml:"listen_addr"`
	// LogPath is the daemon log file.
	LogPath string `toml:"log_path"`
	// SendBuffer sizes each connection's outbound queue.
	SendBuffer int `toml:"send_buffer"`
	// TypingTTLMs is how long a typing indication stays visible on
	// clients. The server never interprets it; it is handed to the
	// client binary, which shares this config format.
	TypingTTLMs int `toml:"typing_ttl_ms"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		ListenAddr:  ":5000",
		LogPath:     "banterd.log",
		SendBuffer:  64,
		TypingTTLMs: 2000,
	}
}

// Load builds the configuration: defaults, then the TOML file at path (if
// path is non-empty), then environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("decode config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("BANTER_LISTEN_ADDR"); v != "" {
		c.ListenAddr = v
	}
	if v := os.Getenv("BANTER_LOG_PATH"); v != "" {
		c.LogPath = v
	}
	if v := os.Getenv("BANTER_SEND_BUFFER"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("BANTER_SEND_BUFFER: %w", err)
		}
		c.SendBuffer = n
	}
	if v := os.Getenv("BANTER_TYPING_TTL_MS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("BANTER_TYPING_TTL_MS: %w", err)
		}
		c.TypingTTLMs = n
	}
	return nil
}
