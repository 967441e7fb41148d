package contract

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/repograde/repograde/schema"
)

// Default values for configuration.
const (
	DefaultFetchTimeout = 60 * time.Second
	DefaultFetchWorkers = 4
	DefaultRetryLimit   = 3
	DefaultListLimit    = 25
	MaxListLimit        = 1000
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// repoURLPattern is the strict repository-URL shape accepted by check.
// Anything that does not match is rejected before any I/O happens.
var repoURLPattern = regexp.MustCompile(
	`^https://github\.com/([A-Za-z\d](?:[A-Za-z\d-]{0,37}[A-Za-z\d])?)/([A-Za-z\d._-]{1,100})$`)

// Config holds the validated runtime configuration.
type Config struct {
	RepoURL string // Canonical repository URL (check only)
	Owner   string // Parsed owner segment
	Name    string // Parsed repository name segment

	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool

	FetchTimeout time.Duration
	FetchWorkers int
	RetryLimit   int
	APIBaseURL   string
	APIToken     string // Please use env var as this is a credential

	StoreBackend   schema.StorageBackend
	StoreDBConnect string // Please use env var as this is plaintext

	ListLimit int
}

// Clone returns a shallow copy of the configuration. Handlers that receive
// per-request overrides mutate the copy, never the shared base.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config
// file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	RepoURLStr string

	Output         string `mapstructure:"output"`
	OutputFile     string `mapstructure:"output-file"`
	Width          int    `mapstructure:"width"`
	Color          string `mapstructure:"color"`
	FetchTimeout   string `mapstructure:"fetch-timeout"`
	Workers        int    `mapstructure:"workers"`
	Retries        int    `mapstructure:"retries"`
	APIURL         string `mapstructure:"api-url"`
	Token          string `mapstructure:"token"`
	StoreBackend   string `mapstructure:"store-backend"`
	StoreDBConnect string `mapstructure:"store-db-connect"`
	Limit          int    `mapstructure:"limit"`
}

// ParseRepoURL validates the strict repository-URL shape and returns the
// owner and name segments. A trailing slash or ".git" suffix is tolerated
// and stripped before matching.
func ParseRepoURL(raw string) (owner, name string, err error) {
	trimmed := strings.TrimSuffix(strings.TrimSuffix(strings.TrimSpace(raw), "/"), ".git")
	m := repoURLPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return "", "", fmt.Errorf("%w: %q does not match https://github.com/<owner>/<repo>", ErrInvalidRepoURL, raw)
	}
	return m[1], m[2], nil
}

// ProcessAndValidate populates cfg from the raw input, rejecting anything
// malformed. The repository URL is only required when requireRepo is set
// (the check command); download and reports work without one.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput, requireRepo bool) error {
	if requireRepo {
		owner, name, err := ParseRepoURL(input.RepoURLStr)
		if err != nil {
			return err
		}
		cfg.Owner = owner
		cfg.Name = name
		cfg.RepoURL = fmt.Sprintf("https://github.com/%s/%s", owner, name)
	}

	output := schema.OutputMode(input.Output)
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return fmt.Errorf("invalid output mode %q (valid: text, csv, json)", input.Output)
	}
	cfg.Output = output
	cfg.OutputFile = input.OutputFile

	if input.Width < 0 {
		return fmt.Errorf("width must be non-negative, got %d", input.Width)
	}
	cfg.Width = input.Width
	cfg.UseColors = parseBoolFlag(input.Color, true)

	timeout := DefaultFetchTimeout
	if input.FetchTimeout != "" {
		parsed, err := time.ParseDuration(input.FetchTimeout)
		if err != nil {
			return fmt.Errorf("invalid fetch timeout %q: %w", input.FetchTimeout, err)
		}
		if parsed <= 0 {
			return fmt.Errorf("fetch timeout must be positive, got %s", parsed)
		}
		timeout = parsed
	}
	cfg.FetchTimeout = timeout

	cfg.FetchWorkers = input.Workers
	if cfg.FetchWorkers <= 0 {
		cfg.FetchWorkers = DefaultFetchWorkers
	}
	cfg.RetryLimit = input.Retries
	if cfg.RetryLimit <= 0 {
		cfg.RetryLimit = DefaultRetryLimit
	}
	cfg.APIBaseURL = input.APIURL
	cfg.APIToken = input.Token

	backend := schema.StorageBackend(input.StoreBackend)
	if _, ok := schema.ValidStorageBackends[backend]; !ok {
		return fmt.Errorf("invalid store backend %q (valid: memory, sqlite, mysql, postgresql)", input.StoreBackend)
	}
	cfg.StoreBackend = backend
	cfg.StoreDBConnect = input.StoreDBConnect

	cfg.ListLimit = input.Limit
	if cfg.ListLimit <= 0 {
		cfg.ListLimit = DefaultListLimit
	}
	if cfg.ListLimit > MaxListLimit {
		cfg.ListLimit = MaxListLimit
	}

	return nil
}

// parseBoolFlag interprets yes/no style flag values.
func parseBoolFlag(value string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "true", "1", "on":
		return true
	case "no", "false", "0", "off":
		return false
	default:
		return fallback
	}
}
