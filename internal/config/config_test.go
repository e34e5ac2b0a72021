package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readyforswiss/cvscan/internal/domain/persona"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
ai:
  apiKey: sk-test
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.AI.BaseURL)
	assert.Equal(t, "google/gemini-2.0-flash-001", cfg.AI.Model)
	assert.Equal(t, 60, cfg.AI.TimeoutSeconds)
	assert.Equal(t, "onboarding@resend.dev", cfg.Mail.From)
	assert.Equal(t, persona.Romandie, cfg.Scan.DefaultPersona)
	assert.Equal(t, int64(10<<20), cfg.Scan.MaxUploadBytes)
}

func TestLoadExplicitValues(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 8080
ai:
  apiKey: sk-test
  model: anthropic/claude-3-haiku
  timeoutSeconds: 30
mail:
  apiKey: re-test
  from: reports@readyforswiss.ch
  operatorBcc: ops@readyforswiss.ch
scan:
  defaultPersona: alemanique
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "anthropic/claude-3-haiku", cfg.AI.Model)
	assert.Equal(t, "ops@readyforswiss.ch", cfg.Mail.OperatorBCC)
	assert.Equal(t, persona.Alemanique, cfg.Scan.DefaultPersona)
}

func TestLoadEnvOverridesSecrets(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "sk-from-env")
	t.Setenv("RESEND_API_KEY", "re-from-env")

	path := writeConfig(t, `
ai:
  apiKey: sk-from-file
mail:
  apiKey: re-from-file
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "sk-from-env", cfg.AI.APIKey)
	assert.Equal(t, "re-from-env", cfg.Mail.APIKey)
}

func TestLoadMissingAIKey(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "")
	path := writeConfig(t, `
server:
  port: 8080
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ai.apiKey")
}

func TestLoadUnknownPersona(t *testing.T) {
	path := writeConfig(t, `
ai:
  apiKey: sk-test
scan:
  defaultPersona: martian
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "martian")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
