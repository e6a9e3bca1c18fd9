package config

import (
	"encoding/json"
	"errors"
	"os"
)

// CreateSample writes the default configuration to path as indented JSON.
func CreateSample(path string) error {
	raw, err := json.MarshalIndent(Default(), "", "    ")
	if err != nil {
		return errors.Join(errors.New("could not marshal sample config"), err)
	}
	if err = os.WriteFile(path, raw, 0600); err != nil {
		return errors.Join(errors.New("could not write sample config file"), err)
	}
	return nil
}

// Load reads and parses the configuration file at path.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Join(errors.New("could not read config file"), err)
	}
	return ParseConfig(raw)
}
