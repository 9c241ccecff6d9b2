// File: control/config.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Workload configuration loaded from YAML with defaults and validation.

package control

import (
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Container kinds accepted by Config.Container.
const (
	KindSeqList    = "seqlist"
	KindRingDeque  = "ringdeque"
	KindLinkedList = "linkedlist"
	KindQueue      = "queue"
	KindStack      = "stack"
)

// Backends accepted by Config.Backend.
const (
	BackendHeap = "heap"
	BackendMmap = "mmap"
)

// Config describes one workload run.
type Config struct {
	Container   string  `yaml:"container"`   // container kind to exercise
	Capacity    int     `yaml:"capacity"`    // bound for seqlist, ringdeque and stack
	Ops         int     `yaml:"ops"`         // number of operations to perform
	Seed        int64   `yaml:"seed"`        // PRNG seed for the operation mix
	PushRatio   float64 `yaml:"push_ratio"`  // probability an operation is a push
	Backend     string  `yaml:"backend"`     // raw buffer backend
	ChunkSize   int     `yaml:"chunk_size"`  // linked list arena chunk size
	LogLevel    string  `yaml:"log_level"`   // zap level name
	Development bool    `yaml:"development"` // human readable logs
}

// DefaultConfig returns default configuration values.
func DefaultConfig() *Config {
	return &Config{
		Container: KindRingDeque,
		Capacity:  1024,
		Ops:       100_000,
		Seed:      1,
		PushRatio: 0.55,
		Backend:   BackendHeap,
		ChunkSize: 64,
		LogLevel:  "info",
	}
}

// LoadConfig reads path over the defaults. Fields missing from the file
// keep their default values.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	return cfg, cfg.Validate()
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	switch c.Container {
	case KindSeqList, KindRingDeque, KindLinkedList, KindQueue, KindStack:
	default:
		return errors.Newf("unknown container %q", c.Container)
	}
	switch c.Backend {
	case BackendHeap, BackendMmap:
	default:
		return errors.Newf("unknown backend %q", c.Backend)
	}
	if c.Capacity < 0 {
		return errors.Newf("capacity must not be negative, got %d", c.Capacity)
	}
	if c.Ops < 0 {
		return errors.Newf("ops must not be negative, got %d", c.Ops)
	}
	if c.PushRatio < 0 || c.PushRatio > 1 {
		return errors.Newf("push_ratio must be within [0, 1], got %v", c.PushRatio)
	}
	return nil
}

// Bounded reports whether the configured container has a fixed capacity.
func (c *Config) Bounded() bool {
	return c.Container != KindLinkedList && c.Container != KindQueue
}
