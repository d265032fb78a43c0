package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/locationtag/spec-tools/pkg/constants"
)

// Config is the optional .spec-tools.yml project file at the tree root.
// Paths listed there are scanned when the command line names none; the
// allow-missing-schema toggle ORs with the CLI flag.
type Config struct {
	Paths              []string `yaml:"paths"`
	AllowMissingSchema bool     `yaml:"allow-missing-schema"`
}

// loadConfig reads the project config from root. A missing file is not an
// error; a malformed one is.
func loadConfig(root string) (Config, error) {
	var cfg Config

	content, err := os.ReadFile(filepath.Join(root, constants.ConfigFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read %s: %w", constants.ConfigFileName, err)
	}

	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", constants.ConfigFileName, err)
	}

	// Relative config paths are anchored at the tree root, not the
	// invocation directory.
	for i, p := range cfg.Paths {
		if !filepath.IsAbs(p) {
			cfg.Paths[i] = filepath.Join(root, p)
		}
	}

	return cfg, nil
}
