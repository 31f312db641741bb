package config

import (
	"net/url"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "senadoexport"

	// DefaultBaseURL is the root of the Senate open-data API.
	DefaultBaseURL = "https://legis.senado.leg.br/dadosabertos"

	// DefaultUserAgent identifies senadoexport in HTTP requests.
	DefaultUserAgent = "senadoexport/1.0 (+https://github.com/nao1215/senadoexport)"

	// DefaultTimeout of zero means requests have no overall deadline.
	DefaultTimeout time.Duration = 0

	// DefaultOutputDir is created relative to the working directory.
	DefaultOutputDir = "data"

	// DefaultBillType and DefaultBillYear select the bills fetched when no
	// query is configured.
	DefaultBillType = "PL"
	DefaultBillYear = 2024

	// DateLayout is the API's date format for session ranges.
	DateLayout = "20060102"
)

// Output formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// Config holds all options for one export run.
type Config struct {
	// BaseURL is the API root.
	BaseURL string

	// UserAgent is sent with every request.
	UserAgent string

	// Timeout bounds each request. Zero disables it.
	Timeout time.Duration

	// ProxyAddress is an optional SOCKS5 proxy in "host:port" form.
	ProxyAddress string

	// OutputDir receives one file per exported table.
	OutputDir string

	// Format is FormatCSV or FormatJSON.
	Format string

	// Gzip compresses every exported file.
	Gzip bool

	// Summary also writes a Markdown run summary (resumo.md).
	Summary bool

	// PreviewRows prints the first rows of each table to stdout. Zero disables it.
	PreviewRows int

	// BillType, BillYear and BillNumber filter the bill search.
	// Zero values are left out of the query.
	BillType   string
	BillYear   int
	BillNumber int

	// StartDate and EndDate (YYYYMMDD) bound the plenary session listing.
	// Sessions are fetched only when at least one of them is set.
	StartDate string
	EndDate   string

	// Votes fetches the nominal votes of the first senator.
	Votes bool

	// Verbose enables debug logging.
	Verbose bool

	// ConfigFilePath is an explicit configuration file. Empty means search.
	ConfigFilePath string
}

// NewConfig returns a Config with default values.
func NewConfig() *Config {
	return &Config{
		BaseURL:   DefaultBaseURL,
		UserAgent: DefaultUserAgent,
		Timeout:   DefaultTimeout,
		OutputDir: DefaultOutputDir,
		Format:    FormatCSV,
		BillType:  DefaultBillType,
		BillYear:  DefaultBillYear,
	}
}

// HasSessionRange reports whether a session date bound is configured.
func (c *Config) HasSessionRange() bool {
	return c.StartDate != "" || c.EndDate != ""
}

// XDGConfigDir returns the XDG config directory for senadoexport.
// On Linux: ~/.config/senadoexport
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks the configuration and returns the first problem found.
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidBaseURL
	}

	if c.Timeout < 0 {
		return ErrInvalidTimeout
	}

	if c.OutputDir == "" {
		return ErrNoOutputDir
	}

	if c.Format != FormatCSV && c.Format != FormatJSON {
		return ErrInvalidFormat
	}

	if c.BillYear < 0 {
		return ErrInvalidBillYear
	}

	if c.BillNumber < 0 {
		return ErrInvalidBillNumber
	}

	if c.PreviewRows < 0 {
		return ErrInvalidPreviewRows
	}

	return c.validateDates()
}

func (c *Config) validateDates() error {
	var start, end time.Time
	var err error

	if c.StartDate != "" {
		if start, err = time.Parse(DateLayout, c.StartDate); err != nil {
			return ErrInvalidDate
		}
	}
	if c.EndDate != "" {
		if end, err = time.Parse(DateLayout, c.EndDate); err != nil {
			return ErrInvalidDate
		}
	}
	if !start.IsZero() && !end.IsZero() && start.After(end) {
		return ErrInvalidDateRange
	}
	return nil
}
