package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Port string `yaml:"port"`
	// DataFile pins the agenda document to one path. Empty means the
	// default candidate scan (project-root and build-output layouts).
	DataFile string `yaml:"data_file"`
	// OperatorFile pins the operator document the same way.
	OperatorFile string `yaml:"operator_file"`
}

func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}
