// Package config loads the optional vlcgen.yaml configuration file and
// merges it over built-in defaults. Command-line flags override both.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the default configuration file looked up in the
// working directory.
const ConfigFileName = "vlcgen.yaml"

// Config holds all vlcgen configuration.
type Config struct {
	Backend   string       `yaml:"backend"`
	Output    string       `yaml:"output"`
	Blacklist []string     `yaml:"blacklist"`
	Python    PythonConfig `yaml:"python"`
	Java      JavaConfig   `yaml:"java"`
}

// PythonConfig holds the combined-stream backend inputs.
type PythonConfig struct {
	Header   string `yaml:"header"`
	Footer   string `yaml:"footer"`
	Override string `yaml:"override"`
}

// JavaConfig holds the per-artifact backend inputs.
type JavaConfig struct {
	Boilerplate string `yaml:"boilerplate"`
	Header      string `yaml:"header"`
	Footer      string `yaml:"footer"`
	Package     string `yaml:"package"`
}

// DefaultConfig returns the built-in defaults, matching the companion
// files the generator historically sat next to.
func DefaultConfig() *Config {
	return &Config{
		Backend: "python",
		Output:  "-",
		Python: PythonConfig{
			Header:   "header.py",
			Footer:   "footer.py",
			Override: "override.py",
		},
		Java: JavaConfig{
			Boilerplate: "boilerplate.java",
			Header:      "LibVlc-header.java",
			Footer:      "LibVlc-footer.java",
			Package:     "org.videolan.jvlc.internal",
		},
	}
}

// Load reads config from path, or from vlcgen.yaml in the working
// directory when path is empty. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = ConfigFileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	loaded := &Config{}
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg := merge(DefaultConfig(), loaded)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the fields flags cannot correct after the fact.
func (c *Config) Validate() error {
	switch c.Backend {
	case "python", "java":
		return nil
	default:
		return fmt.Errorf("unknown backend %q (want python or java)", c.Backend)
	}
}

// merge overlays non-zero loaded fields on the defaults.
func merge(def, loaded *Config) *Config {
	out := *def
	if loaded.Backend != "" {
		out.Backend = loaded.Backend
	}
	if loaded.Output != "" {
		out.Output = loaded.Output
	}
	if len(loaded.Blacklist) > 0 {
		out.Blacklist = loaded.Blacklist
	}
	if loaded.Python.Header != "" {
		out.Python.Header = loaded.Python.Header
	}
	if loaded.Python.Footer != "" {
		out.Python.Footer = loaded.Python.Footer
	}
	if loaded.Python.Override != "" {
		out.Python.Override = loaded.Python.Override
	}
	if loaded.Java.Boilerplate != "" {
		out.Java.Boilerplate = loaded.Java.Boilerplate
	}
	if loaded.Java.Header != "" {
		out.Java.Header = loaded.Java.Header
	}
	if loaded.Java.Footer != "" {
		out.Java.Footer = loaded.Java.Footer
	}
	if loaded.Java.Package != "" {
		out.Java.Package = loaded.Java.Package
	}
	return &out
}
