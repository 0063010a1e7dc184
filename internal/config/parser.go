package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	overlayerrors "github.com/alexisbeaulieu97/overlay/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load returns the configuration at path, or the validated defaults when
// path is empty.
func Load(path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		cfg := Default()
		if err := ValidateConfig(&cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}
	return ParseConfig(path)
}

// ParseConfig loads a configuration file from disk over the defaults,
// validates it, and returns the resulting model.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, overlayerrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes data over the defaults. path is only used for error
// reporting.
func Parse(path string, data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, overlayerrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
