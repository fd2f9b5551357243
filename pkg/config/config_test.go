package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

// clearEnv blanks keys so neither godotenv nor viper's AutomaticEnv leak values between tests.
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	clearEnv(t, "PORT", "ENV", "EMAIL_SERVER_HOST", "ADMIN_EMAIL", "LIST_CACHE_TTL", "ENABLE_LIST_CACHE", "JWT_EXPIRATION")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "Registros_Colonia_AMM", cfg.Camp.FilenamePrefix)
	assert.Equal(t, 587, cfg.Mail.Port)
	assert.False(t, cfg.Mail.Enabled())
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, 12*time.Hour, cfg.JWT.Expiration)
}

func TestLoadReadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PORT=9090\nADMIN_EMAIL=admin@colonia.org\nLIST_CACHE_TTL=30s\n"), 0o600))
	chdir(t, dir)
	clearEnv(t, "PORT", "ADMIN_EMAIL", "LIST_CACHE_TTL")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "admin@colonia.org", cfg.Mail.AdminEmail)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
}

func TestCampLocationFallback(t *testing.T) {
	loc := CampConfig{Timezone: "Not/AZone"}.Location()
	_, offset := time.Date(2025, 1, 1, 12, 0, 0, 0, loc).Zone()
	assert.Equal(t, -3*60*60, offset)
}

func TestSplitAndTrim(t *testing.T) {
	assert.Nil(t, splitAndTrim(""))
	assert.Equal(t, []string{"http://a", "http://b"}, splitAndTrim(" http://a , ,http://b"))
}

func TestLoadRejectsDefaultSecretInProduction(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("ENV", EnvProduction)

	for _, secret := range []string{"", "dev_secret", "  "} {
		t.Setenv("JWT_SECRET", secret)
		_, err := Load()
		assert.ErrorIs(t, err, ErrInsecureJWTSecret, "secret %q", secret)
	}

	t.Setenv("JWT_SECRET", "s3cr3t-from-vault")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, EnvProduction, cfg.Env)
}

func TestLoadAllowsDefaultSecretInDevelopment(t *testing.T) {
	chdir(t, t.TempDir())
	clearEnv(t, "ENV", "JWT_SECRET")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "dev_secret", cfg.JWT.Secret)
}
