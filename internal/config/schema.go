package config

import "phantomid/internal/logger"

// Config is the root configuration structure
type Config struct {
	Version  int            `yaml:"version"`
	Logging  logger.Config  `yaml:"logging"`
	Output   OutputConfig   `yaml:"output"`
	Demo     DemoConfig     `yaml:"demo"`
	Batch    BatchConfig    `yaml:"batch"`
	Identity IdentityConfig `yaml:"identity"`
}

// OutputConfig controls how commands render results
type OutputConfig struct {
	Format  string `yaml:"format"`   // text, json, yaml, pcap
	NoColor bool   `yaml:"no_color"` // force plain output even on a terminal
}

// DemoConfig lists the device types walked by the demo command
type DemoConfig struct {
	DeviceTypes []string `yaml:"device_types"`
}

// BatchConfig holds defaults for the phantom command
type BatchConfig struct {
	Count       int      `yaml:"count"`        // phantoms per device type
	DeviceTypes []string `yaml:"device_types"` // used when none are given on the command line
}

// IdentityConfig holds defaults for the imei and iccid commands
type IdentityConfig struct {
	Manufacturer string `yaml:"manufacturer,omitempty"`
	Provider     string `yaml:"provider,omitempty"`
	BatchSize    int    `yaml:"batch_size"`
}
