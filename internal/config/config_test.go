package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campdash/internal/config/configs"
)

func noDotenv(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(noDotenv(t))
	require.NoError(t, err)

	assert.Equal(t, uint16(8050), cfg.HTTP.Port)
	assert.Equal(t, "127.0.0.1:8050", cfg.Addr())
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, configs.SourceCSV, cfg.Source.Kind)
	assert.Equal(t, "./data/Health_Camp_Detail.csv", cfg.Source.CSVPath)
	assert.Equal(t, ',', cfg.Source.DelimiterRune())
	assert.Equal(t, 10, cfg.Dashboard.PageSize)
	assert.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
	assert.Equal(t, "text", cfg.Log.SlogFormat())
	assert.Equal(t, "localhost:5432", cfg.Psql.Addr.Host)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("HTTP_HOST", "0.0.0.0")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("SOURCE_KIND", "postgres")
	t.Setenv("SOURCE_CSV_DELIMITER", ";")
	t.Setenv("PSQL_ADDRESS", "postgres://u:p@db:5433/camps")
	t.Setenv("PSQL_RUN_MIGRATIONS", "true")
	t.Setenv("DASHBOARD_PAGE_SIZE", "25")

	cfg, err := Load(noDotenv(t))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", cfg.Addr())
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	assert.Equal(t, "json", cfg.Log.SlogFormat())
	assert.Equal(t, configs.SourcePostgres, cfg.Source.Kind)
	assert.Equal(t, ';', cfg.Source.DelimiterRune())
	assert.Equal(t, "db:5433", cfg.Psql.Addr.Host)
	assert.True(t, cfg.Psql.RunMigrations)
	assert.Equal(t, 25, cfg.Dashboard.PageSize)
	assert.NoError(t, cfg.Validate())
}

func TestLoadInvalidNumber(t *testing.T) {
	t.Setenv("HTTP_PORT", "eighty")
	_, err := Load(noDotenv(t))
	assert.Error(t, err)
}

func TestLoadDotenv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("SOURCE_CSV_PATH=/srv/camps.csv\nDASHBOARD_TITLE=\"Camps\"\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("SOURCE_CSV_PATH")
		os.Unsetenv("DASHBOARD_TITLE")
	})

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/camps.csv", cfg.Source.CSVPath)
	assert.Equal(t, "Camps", cfg.Dashboard.Title)
}

func TestValidate(t *testing.T) {
	cfg, err := Load(noDotenv(t))
	require.NoError(t, err)

	cfg.Source.Kind = "excel"
	cfg.Source.Delimiter = "||"
	cfg.Dashboard.PageSize = 0
	cfg.Dashboard.ChartWidth = 10

	err = cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"invalid source kind", "invalid csv delimiter", "invalid page size", "invalid chart size"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestLoggerFallbacks(t *testing.T) {
	l := configs.Logger{Level: "loud", Format: "xml"}
	assert.Equal(t, slog.LevelInfo, l.SlogLevel())
	assert.Equal(t, "text", l.SlogFormat())
	assert.NotNil(t, l.NewLogger(os.Stderr))
}
