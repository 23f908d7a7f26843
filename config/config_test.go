package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/payroll-engine/config"
)

func TestNew_Defaults(t *testing.T) {
	conf, err := config.New[config.Server]("PAYROLL_TEST_DEFAULTS")
	require.NoError(t, err)

	assert.Equal(t, 8080, conf.Port)
	assert.Equal(t, config.StoreMemory, conf.Store)
	assert.Equal(t, "₸", conf.CurrencySymbol)
	assert.Equal(t, "KZT", conf.CurrencyCode)
	assert.Len(t, conf.AllowedOrigins, 2)
	assert.False(t, conf.Log.Debug)
	assert.NoError(t, conf.Validate())
}

func TestNew_FromEnvironment(t *testing.T) {
	t.Setenv("PAYROLL_TEST_ENV_PORT", "9090")
	t.Setenv("PAYROLL_TEST_ENV_STORE", "sqlite")
	t.Setenv("PAYROLL_TEST_ENV_LOG_DEBUG", "true")

	conf, err := config.New[config.Server]("PAYROLL_TEST_ENV")
	require.NoError(t, err)

	assert.Equal(t, 9090, conf.Port)
	assert.Equal(t, config.StoreSQLite, conf.Store)
	assert.True(t, conf.Log.Debug)
}

func TestValidate_RejectsUnknownStore(t *testing.T) {
	conf := config.Server{Store: "postgres"}
	assert.Error(t, conf.Validate())
}

func TestNew_DotEnvInWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PAYROLL_TEST_DOTENV_PORT=7070\n"), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
		_ = os.Unsetenv("PAYROLL_TEST_DOTENV_PORT")
	})

	conf, err := config.New[config.Server]("PAYROLL_TEST_DOTENV")
	require.NoError(t, err)
	assert.Equal(t, 7070, conf.Port)
}
