package parameters

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked up in the working directory and then in the
// home directory.
const DefaultConfigFile = ".lisa.yaml"

var ErrConfigNotFound = errors.New("configuration file not found")

// File is the YAML configuration file. Empty fields keep the command line
// defaults.
type File struct {
	Durations []string `yaml:"durations"`
	Mode      string   `yaml:"mode"`
	Format    string   `yaml:"format"`
	Output    string   `yaml:"output"`
	Width     float64  `yaml:"width"`
	Height    float64  `yaml:"height"`
	Verbose   bool     `yaml:"verbose"`
}

func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-provided config path
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// FindConfigFile returns configPath if it exists, otherwise the first
// DefaultConfigFile found in the working or home directory, or "".
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	if cwd, err := os.Getwd(); err == nil {
		p := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		p := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}
