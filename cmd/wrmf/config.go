package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/implicit/als"
)

// Config is the trainer configuration: yaml file first, flags win.
type Config struct {
	Input       string  `yaml:"input"`
	Factors     int     `yaml:"factors"`
	CPos        float64 `yaml:"c_pos"`
	Reg         float64 `yaml:"reg"`
	Iterations  int     `yaml:"iterations"`
	Workers     int     `yaml:"workers"`
	Seed        int64   `yaml:"seed"`
	TopN        int     `yaml:"top_n"`
	ExcludeSeen bool    `yaml:"exclude_seen"`
}

// defaultConfig mirrors als.DefaultOptions plus CLI-only defaults.
func defaultConfig() Config {
	opts := als.DefaultOptions()

	return Config{
		Factors:     opts.NumFactors,
		CPos:        opts.CPos,
		Reg:         opts.Reg,
		Iterations:  opts.NumIter,
		Workers:     opts.Workers,
		Seed:        42,
		TopN:        10,
		ExcludeSeen: true,
	}
}

// loadConfig reads a yaml config file over the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}

// options converts the CLI configuration into solver options.
func (c Config) options() als.Options {
	opts := als.DefaultOptions()
	opts.NumFactors = c.Factors
	opts.CPos = c.CPos
	opts.Reg = c.Reg
	opts.NumIter = c.Iterations
	opts.Workers = c.Workers

	return opts
}
