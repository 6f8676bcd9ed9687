// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package config loads the dictctl configuration file.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/absolutelightning/go-dictionary"
	"github.com/absolutelightning/go-dictionary/internal/log"
)

// Implementation names accepted in the configuration.
const (
	Tree        = "tree"
	Hash        = "hash"
	MoveToFront = "mtf"
	Trie        = "trie"
)

// Config selects and tunes the dictionary the CLI builds.
type Config struct {
	Implementation string `yaml:"implementation"`
	// Bucket is the implementation used for hash buckets.
	Bucket   string `yaml:"bucket"`
	Primes   []int  `yaml:"primes"`
	LogLevel string `yaml:"logLevel"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Implementation: Hash,
		Bucket:         MoveToFront,
		LogLevel:       "info",
	}
}

// Load reads a YAML configuration file on top of the defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes YAML from r on top of the defaults and validates the
// result. Unknown fields are rejected.
func Parse(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	conf := Default()
	if len(bytes.TrimSpace(data)) > 0 {
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err = decoder.Decode(conf); err != nil {
			return nil, fmt.Errorf("%w: %v", dictionary.ErrInvalidConfig, err)
		}
	}
	if err = conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// Validate checks the implementation names, the log level and the prime
// schedule.
func (c *Config) Validate() error {
	switch c.Implementation {
	case Tree, Hash, MoveToFront, Trie:
	default:
		return fmt.Errorf("%w: unknown implementation %q", dictionary.ErrInvalidConfig, c.Implementation)
	}
	if c.Implementation == Hash {
		switch c.Bucket {
		case Tree, MoveToFront:
		default:
			return fmt.Errorf("%w: unsupported bucket implementation %q", dictionary.ErrInvalidConfig, c.Bucket)
		}
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", dictionary.ErrInvalidConfig, err)
	}
	// an empty schedule selects dictionary.DefaultPrimes
	if len(c.Primes) > 0 {
		return dictionary.CheckSchedule(c.Primes)
	}
	return nil
}

// NewStringDictionary builds the configured dictionary for string keys.
func (c *Config) NewStringDictionary() (dictionary.Dictionary[string, int], error) {
	switch c.Implementation {
	case Tree:
		return dictionary.NewTreeDictionary[string, int](), nil
	case MoveToFront:
		return dictionary.NewMoveToFrontDictionary[string, int](), nil
	case Trie:
		return dictionary.NewStringTrie[int](), nil
	case Hash:
		var factory dictionary.Factory[string, int]
		if c.Bucket == Tree {
			factory = func() dictionary.Dictionary[string, int] {
				return dictionary.NewTreeDictionary[string, int]()
			}
		} else {
			factory = dictionary.MoveToFrontFactory[string, int]
		}
		var opts []dictionary.HashOption[string]
		if len(c.Primes) > 0 {
			opts = append(opts, dictionary.WithPrimes[string](c.Primes...))
		}
		h, err := dictionary.NewChainingHashDictionary[string, int](factory, opts...)
		if err != nil {
			return nil, err
		}
		return h, nil
	}
	return nil, fmt.Errorf("%w: unknown implementation %q", dictionary.ErrInvalidConfig, c.Implementation)
}
