package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Source.Host)
	assert.Equal(t, 3306, cfg.Source.Port)
	assert.Equal(t, "localhost", cfg.Target.Host)
	assert.Equal(t, "reports", cfg.Report.OutputDir)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "drift-reports", cfg.Storage.Bucket)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("SOURCE_HOST", "db1.internal")
	t.Setenv("SOURCE_NAME", "shop")
	t.Setenv("TARGET_HOST", "db2.internal")
	t.Setenv("TARGET_PORT", "3307")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "db1.internal", cfg.Source.Host)
	assert.Equal(t, "shop", cfg.Source.Name)
	assert.Equal(t, "db2.internal", cfg.Target.Host)
	assert.Equal(t, 3307, cfg.Target.Port)
	assert.Equal(t, "json", cfg.Log.Format)
}
