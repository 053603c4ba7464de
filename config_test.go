package walrus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfig_Defaults(t *testing.T) {
	cfg, err := ResolveConfig(Config{}, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultTestnetAggregators, cfg.AggregatorURLs)
	assert.Equal(t, DefaultTestnetPublishers, cfg.PublisherURLs)
}

func TestResolveConfig_EnvOverridesDefaults(t *testing.T) {
	env := map[string]string{
		"WALRUS_AGGREGATOR_URLS": "https://agg1.example.com, https://agg2.example.com/",
		"WALRUS_PUBLISHER_URLS":  "https://pub.example.com",
	}

	cfg, err := ResolveConfig(Config{}, env)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://agg1.example.com", "https://agg2.example.com"}, cfg.AggregatorURLs)
	assert.Equal(t, []string{"https://pub.example.com"}, cfg.PublisherURLs)
}

func TestResolveConfig_ExplicitOverridesEnv(t *testing.T) {
	env := map[string]string{
		"WALRUS_AGGREGATOR_URLS": "https://env.example.com",
	}
	explicit := Config{AggregatorURLs: []string{"https://explicit.example.com"}}

	cfg, err := ResolveConfig(explicit, env)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://explicit.example.com"}, cfg.AggregatorURLs)
}

func TestResolveConfig_InvalidURL(t *testing.T) {
	_, err := ResolveConfig(Config{AggregatorURLs: []string{"ftp://wrong.example.com"}}, nil)
	assert.ErrorIs(t, err, ErrInvalidEndpoint)

	_, err = ResolveConfig(Config{PublisherURLs: []string{"https://"}}, nil)
	assert.ErrorIs(t, err, ErrInvalidEndpoint)
}

func TestNewClient_NoEndpoints(t *testing.T) {
	_, err := NewClient(Config{})
	assert.ErrorIs(t, err, ErrNoEndpoints)
}

func TestSplitURLList(t *testing.T) {
	assert.Equal(t,
		[]string{"https://a.example.com", "https://b.example.com"},
		splitURLList(" https://a.example.com ,, https://b.example.com/ ,"))
	assert.Nil(t, splitURLList(""))
}
