package api

import (
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("PORT", "8443")
	t.Setenv("SELF_TLS", "true")
	t.Setenv("DEBUG", "true")

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, uint16(8443), cfg.Port)
	assert.True(t, cfg.SelfTLS)
	assert.True(t, cfg.Debug)
	assert.Equal(t, int64(10_000), cfg.CacheSize)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("TLS_CERT", "cert.pem")
	t.Setenv("TLS_KEY", "key.pem")

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, uint16(3100), cfg.Port)
	assert.False(t, cfg.SelfTLS)
	assert.Equal(t, "cert.pem", cfg.TLSCert)
}

func TestLoadConfig_MissingTLS(t *testing.T) {
	_, err := LoadConfig(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SELF_TLS")
	assert.Contains(t, err.Error(), "TLS_CERT")
}

func TestLoadConfig_FlagsWin(t *testing.T) {
	t.Setenv("PORT", "8443")

	flags := pflag.NewFlagSet("serve", pflag.ContinueOnError)
	flags.Uint16("port", 3100, "")
	flags.Bool("self-tls", false, "")
	require.NoError(t, flags.Parse([]string{"--port", "9000", "--self-tls"}))

	cfg, err := LoadConfig(flags)
	require.NoError(t, err)
	assert.Equal(t, uint16(9000), cfg.Port)
	assert.True(t, cfg.SelfTLS)
}
