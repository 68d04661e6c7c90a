package main

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/shapestone/kjson/pkg/json"
)

// limitsFile is the YAML shape a --limits file takes; zero fields are left
// at DefaultLimits' value, mirroring the per-provider default-inheritance
// convention the reference corpus's own YAML config loader uses.
type limitsFile struct {
	MaxDepth         int `yaml:"max_depth"`
	MaxStringLen     int `yaml:"max_string_len"`
	MaxObjectMembers int `yaml:"max_object_members"`
	MaxArrayElements int `yaml:"max_array_elements"`
	MaxKeyLen        int `yaml:"max_key_len"`
	MaxTotalBytes    int `yaml:"max_total_bytes"`
	MaxPathBuffer    int `yaml:"max_path_buffer"`
}

// loadLimits returns DefaultLimits when path is empty, otherwise reads a
// YAML file and overlays any fields it sets onto DefaultLimits.
func loadLimits(path string) (json.Limits, error) {
	limits := json.DefaultLimits
	if path == "" {
		return limits, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return limits, err
	}

	var cfg limitsFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return limits, err
	}

	if cfg.MaxDepth != 0 {
		limits.MaxDepth = cfg.MaxDepth
	}
	if cfg.MaxStringLen != 0 {
		limits.MaxStringLen = cfg.MaxStringLen
	}
	if cfg.MaxObjectMembers != 0 {
		limits.MaxObjectMembers = cfg.MaxObjectMembers
	}
	if cfg.MaxArrayElements != 0 {
		limits.MaxArrayElements = cfg.MaxArrayElements
	}
	if cfg.MaxKeyLen != 0 {
		limits.MaxKeyLen = cfg.MaxKeyLen
	}
	if cfg.MaxTotalBytes != 0 {
		limits.MaxTotalBytes = cfg.MaxTotalBytes
	}
	if cfg.MaxPathBuffer != 0 {
		limits.MaxPathBuffer = cfg.MaxPathBuffer
	}
	return limits, nil
}
