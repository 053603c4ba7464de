package walrus

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Default public testnet endpoints, used when nothing else is configured.
var (
	DefaultTestnetAggregators = []string{
		"https://aggregator.walrus-testnet.walrus.space",
	}
	DefaultTestnetPublishers = []string{
		"https://publisher.walrus-testnet.walrus.space",
	}
)

const (
	defaultMaxRetries  = 3
	defaultRetryDelay  = 500 * time.Millisecond
	defaultHTTPTimeout = 30 * time.Second
)

// Config holds client connection parameters. Zero-valued fields fall back
// to defaults in NewClient.
type Config struct {
	// AggregatorURLs are base URLs of read (aggregator) endpoints. The
	// client rotates over them on retry.
	AggregatorURLs []string

	// PublisherURLs are base URLs of write (publisher) endpoints.
	PublisherURLs []string

	// MaxRetries is the total number of attempts per call, each against
	// the next endpoint in round-robin order.
	MaxRetries int

	// RetryDelay is the pause between attempts.
	RetryDelay time.Duration

	// HTTPTimeout bounds each individual HTTP round-trip.
	HTTPTimeout time.Duration
}

// DefaultTestnetConfig returns a config pointing at the public testnet.
func DefaultTestnetConfig() Config {
	return Config{
		AggregatorURLs: DefaultTestnetAggregators,
		PublisherURLs:  DefaultTestnetPublishers,
	}
}

// ResolveConfig merges configuration from three sources with decreasing
// priority:
//  1. explicit values (highest)
//  2. environment variables WALRUS_AGGREGATOR_URLS and
//     WALRUS_PUBLISHER_URLS (comma-separated lists)
//  3. public testnet defaults
func ResolveConfig(explicit Config, env map[string]string) (Config, error) {
	result := DefaultTestnetConfig()

	if env != nil {
		if v := env["WALRUS_AGGREGATOR_URLS"]; v != "" {
			result.AggregatorURLs = splitURLList(v)
		}
		if v := env["WALRUS_PUBLISHER_URLS"]; v != "" {
			result.PublisherURLs = splitURLList(v)
		}
	}

	if len(explicit.AggregatorURLs) > 0 {
		result.AggregatorURLs = explicit.AggregatorURLs
	}
	if len(explicit.PublisherURLs) > 0 {
		result.PublisherURLs = explicit.PublisherURLs
	}
	result.MaxRetries = explicit.MaxRetries
	result.RetryDelay = explicit.RetryDelay
	result.HTTPTimeout = explicit.HTTPTimeout

	if err := validateConfig(result); err != nil {
		return Config{}, err
	}
	return result, nil
}

// validateConfig checks that every configured endpoint is a parseable
// http(s) URL and at least one endpoint list is non-empty.
func validateConfig(cfg Config) error {
	if len(cfg.AggregatorURLs) == 0 && len(cfg.PublisherURLs) == 0 {
		return ErrNoEndpoints
	}
	for _, raw := range append(append([]string{}, cfg.AggregatorURLs...), cfg.PublisherURLs...) {
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("%w: %q: %w", ErrInvalidEndpoint, raw, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("%w: %q: scheme must be http or https", ErrInvalidEndpoint, raw)
		}
		if u.Host == "" {
			return fmt.Errorf("%w: %q: missing host", ErrInvalidEndpoint, raw)
		}
	}
	return nil
}

// splitURLList splits a comma-separated URL list, trimming whitespace and
// trailing slashes.
func splitURLList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimRight(strings.TrimSpace(part), "/")
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
