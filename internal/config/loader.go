package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the configuration file name searched for.
const DefaultConfigFile = ".senadoexport.yaml"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File is the structure of the YAML configuration file.
// Omitted keys keep their defaults.
type File struct {
	API      APISection      `yaml:"api,omitempty"`
	Output   OutputSection   `yaml:"output,omitempty"`
	Bills    BillsSection    `yaml:"bills,omitempty"`
	Sessions SessionsSection `yaml:"sessions,omitempty"`

	// Votes fetches the nominal votes of the first senator.
	Votes bool `yaml:"votes,omitempty"`

	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose,omitempty"`
}

// APISection configures the HTTP session.
type APISection struct {
	BaseURL   string `yaml:"baseURL,omitempty"`
	UserAgent string `yaml:"userAgent,omitempty"`
	// Timeout is a Go duration string such as "30s".
	Timeout string `yaml:"timeout,omitempty"`
	Proxy   string `yaml:"proxy,omitempty"`
}

// OutputSection configures exported files.
type OutputSection struct {
	Dir     string `yaml:"dir,omitempty"`
	Format  string `yaml:"format,omitempty"`
	Gzip    bool   `yaml:"gzip,omitempty"`
	Summary bool   `yaml:"summary,omitempty"`
	Preview int    `yaml:"preview,omitempty"`
}

// BillsSection filters the bill search.
//
// The fields are pointers so that an explicit zero ("year: 0", "type: \"\"")
// can clear a built-in default; a nil field leaves the default in place.
type BillsSection struct {
	Type   *string `yaml:"type,omitempty"`
	Year   *int    `yaml:"year,omitempty"`
	Number *int    `yaml:"number,omitempty"`
}

// SessionsSection bounds the plenary session listing (YYYYMMDD).
type SessionsSection struct {
	StartDate string `yaml:"startDate,omitempty"`
	EndDate   string `yaml:"endDate,omitempty"`
}

// LoadConfigFile reads a YAML configuration file.
// If the file does not exist, it returns ErrConfigNotFound.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
//  1. configPath, if specified
//  2. .senadoexport.yaml in the current directory
//  3. senadoexport.yaml in the XDG config directory
//  4. .senadoexport.yaml in the user's home directory
//
// It returns an empty string when nothing is found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	candidates := make([]string, 0, 3)
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, DefaultConfigFile))
	}
	candidates = append(candidates, filepath.Join(XDGConfigDir(), AppName+".yaml"))
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, DefaultConfigFile))
	}

	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return ""
}

// Apply overlays the values set in f onto c. Zero values in f leave c
// unchanged, except for the bill filters, which are applied whenever the key
// is present.
func (c *Config) Apply(f *File) error {
	if f == nil {
		return nil
	}

	overlay := Config{
		BaseURL:      f.API.BaseURL,
		UserAgent:    f.API.UserAgent,
		ProxyAddress: f.API.Proxy,
		OutputDir:    f.Output.Dir,
		Format:       f.Output.Format,
		Gzip:         f.Output.Gzip,
		Summary:      f.Output.Summary,
		PreviewRows:  f.Output.Preview,
		StartDate:    f.Sessions.StartDate,
		EndDate:      f.Sessions.EndDate,
		Votes:        f.Votes,
		Verbose:      f.Verbose,
	}
	if f.API.Timeout != "" {
		d, err := time.ParseDuration(f.API.Timeout)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidTimeout, f.API.Timeout)
		}
		overlay.Timeout = d
	}

	if err := mergo.Merge(c, overlay, mergo.WithOverride); err != nil {
		return fmt.Errorf("failed to merge configuration file: %w", err)
	}

	// mergo skips zero values, so an explicit zero filter is set here.
	if f.Bills.Type != nil {
		c.BillType = *f.Bills.Type
	}
	if f.Bills.Year != nil {
		c.BillYear = *f.Bills.Year
	}
	if f.Bills.Number != nil {
		c.BillNumber = *f.Bills.Number
	}
	return nil
}

// Load finds and applies the configuration file to c.
// A missing file is not an error unless path was given explicitly.
// It returns the path of the file that was applied, if any.
func (c *Config) Load(path string) (string, error) {
	found := FindConfigFile(path)
	if found == "" {
		if path != "" {
			return "", fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return "", nil
	}

	f, err := LoadConfigFile(found)
	if err != nil {
		return "", err
	}
	if err := c.Apply(f); err != nil {
		return "", err
	}
	return found, nil
}
