package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/taurusgroup/dlog-proof/pkg/math/sample"
	"github.com/taurusgroup/dlog-proof/pkg/zk/dlog"
)

// Config holds the parameters shared by every command.
type Config struct {
	SID        string `toml:"sid"`
	PID        uint32 `toml:"pid"`
	Format     string `toml:"format"`
	Iterations int    `toml:"iterations"`
	Workers    int    `toml:"workers"`
	// Seed, if set, makes the run deterministic. Hex encoded.
	Seed string `toml:"seed"`
}

func DefaultConfig() Config {
	return Config{
		SID:        "sid",
		PID:        1,
		Format:     dlog.Compressed.String(),
		Iterations: 100,
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("config: unknown keys %v", undecoded)
	}
	return cfg, nil
}

func (c Config) Context() dlog.Context {
	return dlog.Context{SID: c.SID, PID: c.PID}
}

func (c Config) Codec() (*dlog.Codec, error) {
	format, err := dlog.ParsePointFormat(c.Format)
	if err != nil {
		return nil, err
	}
	return dlog.NewCodec(format), nil
}

// Reader returns the randomness used for secrets and nonces.
func (c Config) Reader() (io.Reader, error) {
	if c.Seed == "" {
		return rand.Reader, nil
	}
	seed, err := hex.DecodeString(c.Seed)
	if err != nil {
		return nil, fmt.Errorf("config: seed: %w", err)
	}
	return sample.NewSeededReader(seed), nil
}

func (c Config) Validate() error {
	if c.Iterations < 0 {
		return fmt.Errorf("config: iterations must be >= 0, got %d", c.Iterations)
	}
	if _, err := c.Codec(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
