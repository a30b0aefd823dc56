package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.HTTP.Port)
	assert.Equal(t, int64(10*1024*1024), cfg.Server.HTTP.MaxBodyBytes)
	assert.Equal(t, "https://api.openai.com/v1", cfg.LLM.BaseURL)
	assert.Equal(t, "gpt-4o", cfg.LLM.Model)
	assert.Equal(t, 4000, cfg.LLM.MaxTokens)
	assert.InDelta(t, 0.7, cfg.LLM.Temperature, 0.0001)
	assert.Equal(t, 120*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, []string{"*"}, cfg.Security.CORS.AllowedOrigins)
}

func TestLoadPortFromEnv(t *testing.T) {
	t.Setenv("PORT", "8081")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.HTTP.Port)
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("TEST_EXPAND_VAR", "from-env")

	assert.Equal(t, "from-env", expandEnv("${TEST_EXPAND_VAR}"))
	assert.Equal(t, "from-env", expandEnv("${TEST_EXPAND_VAR:fallback}"))
	assert.Equal(t, "fallback", expandEnv("${TEST_EXPAND_MISSING:fallback}"))
	// 无默认值且未定义时原样保留
	assert.Equal(t, "${TEST_EXPAND_MISSING}", expandEnv("${TEST_EXPAND_MISSING}"))
}
