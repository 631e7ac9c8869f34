package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err)

	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)

	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that a config without a topic fails
// validation.
func TestBuild_EmptyBuilder(t *testing.T) {
	_, err := newConfigBuilder().build()
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that non-zero fields of later configs
// override earlier ones while zero fields keep earlier values.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Topic: "env-topic"}},
		&StructuredConfig{App: App{Topic: "flag-topic", Sigil: "!"}},
	)

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "flag-topic", cfg.App.Topic)
	assert.Equal(t, "!", cfg.App.Sigil)
	assert.Equal(t, DefaultLogFile, cfg.App.LogFile)
	assert.Equal(t, DefaultAdapterAddress, cfg.Adapter.HTTPAddress)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

// TestWithDefaults_Values verifies the built-in defaults.
func TestWithDefaults_Values(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()

	require.NoError(t, err)
	assert.Equal(t, "chat", cfg.App.Topic)
	assert.Equal(t, "/", cfg.App.Sigil)
	assert.Equal(t, "127.0.0.1:5001", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 100*time.Millisecond, cfg.Workers.PollInterval)
	assert.Equal(t, 100*time.Millisecond, cfg.Workers.RetryInitialInterval)
	assert.Equal(t, 10*time.Second, cfg.Workers.RetryMaxInterval)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_TOPIC":       "env-topic",
		"ADAPTER_ADDRESS": "localhost:5005",
	})

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-topic", b.configs[0].App.Topic)
	assert.Equal(t, "localhost:5005", b.configs[0].Adapter.HTTPAddress)
}

// TestWithEnv_SetsErrorOnBadValue verifies that a malformed variable is
// recorded on the builder.
func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	setEnvVars(t, map[string]string{"WORKERS_POLL_INTERVAL": "often"})

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_ReturnsBuilder verifies the fluent interface.
func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
}

// TestWithFlags_SetsErrorOnBadArgs verifies that flag errors are recorded.
func TestWithFlags_SetsErrorOnBadArgs(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-a", "nowhere"})

	assert.ErrorIs(t, b.err, ErrInvalidFlags)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Topic = "json-topic"
	payload.Workers.PollInterval = Duration(250 * time.Millisecond)
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-topic", b.configs[1].App.Topic)
	assert.Equal(t, 250*time.Millisecond, b.configs[1].Workers.PollInterval)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})

	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.App.Topic = "first"
	last := StructuredJSONConfig{}
	last.App.Topic = "last-wins"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, last)},
	)

	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.Topic)
}

// ── GetClientConfig / GetRelayConfig ─────────────────────────────────────────

// TestGetClientConfig_Defaults verifies the client view built from defaults.
func TestGetClientConfig_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetClientConfig(nil)

	require.NoError(t, err)
	assert.Equal(t, "chat", cfg.App.Topic)
	assert.Equal(t, '/', cfg.App.Sigil)
	assert.Equal(t, "127.0.0.1:5001", cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultPollInterval, cfg.Workers.PollInterval)
}

// TestGetClientConfig_JSONOverridesFlags verifies the full priority chain.
func TestGetClientConfig_JSONOverridesFlags(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Topic = "from-json"
	path := writeTempJSONConfig(t, payload)

	setEnvVars(t, map[string]string{"APP_TOPIC": "from-env", "APP_SIGIL": "!"})

	cfg, err := GetClientConfig([]string{"-t", "from-flag", "-c", path})

	require.NoError(t, err)
	assert.Equal(t, "from-json", cfg.App.Topic)
	assert.Equal(t, '!', cfg.App.Sigil)
}

// TestGetClientConfig_InvalidSigil verifies that multi-character and
// whitespace sigils are rejected.
func TestGetClientConfig_InvalidSigil(t *testing.T) {
	for _, sigil := range []string{"//", " "} {
		t.Run(sigil, func(t *testing.T) {
			setEnvVars(t, map[string]string{"APP_SIGIL": sigil})

			_, err := GetClientConfig(nil)

			assert.ErrorIs(t, err, ErrInvalidAppConfigs)
		})
	}
}

// TestGetClientConfig_RetryMaxBelowInitial verifies backoff bounds validation.
func TestGetClientConfig_RetryMaxBelowInitial(t *testing.T) {
	clearEnvVars(t)

	_, err := GetClientConfig([]string{"-retry-initial", "5s", "-retry-max", "1s"})

	assert.ErrorIs(t, err, ErrInvalidWorkerConfigs)
}

// TestGetRelayConfig_Defaults verifies the relay view.
func TestGetRelayConfig_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetRelayConfig([]string{"-relay-address", "127.0.0.1:5099"})

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:5099", cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
}

// TestSigilRune covers single-rune conversion, including multi-byte runes.
func TestSigilRune(t *testing.T) {
	r, err := SigilRune("/")
	require.NoError(t, err)
	assert.Equal(t, '/', r)

	r, err = SigilRune("λ")
	require.NoError(t, err)
	assert.Equal(t, 'λ', r)

	_, err = SigilRune("")
	assert.Error(t, err)
}
