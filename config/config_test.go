package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_SQLiteDefaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", "test.db")
	t.Setenv("ENABLED_PROVIDERS", "localdir, s3 ,")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "sqlite", cfg.DBDriver)
	require.Equal(t, "4242", cfg.HTTPPort)
	require.Equal(t, []string{"localdir", "s3"}, cfg.Providers())
	require.False(t, cfg.S3Enabled())
}

func TestLoad_PostgresRequiresHost(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_USER", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_S3RequiresCredentials(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("S3_BUCKET", "potcars")
	t.Setenv("S3_URL", "")

	_, err := Load()
	require.ErrorContains(t, err, "S3_URL")
}

func TestDSN(t *testing.T) {
	cfg := &Config{DBHost: "db", DBUser: "vasp", DBPassword: "pw", DBName: "vasp", DBPort: 5433}
	require.Equal(t, "host=db user=vasp password=pw dbname=vasp port=5433 sslmode=disable", cfg.DSN())
}
