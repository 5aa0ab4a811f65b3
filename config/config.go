package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config enthält alle Konfigurationsparameter aus Umgebungsvariablen.
type Config struct {
	// Datenbank: "postgres" für den Betrieb, "sqlite" für lokale Importe
	DBDriver   string `envconfig:"DB_DRIVER" default:"postgres"`
	DBHost     string `envconfig:"DB_HOST"`
	DBPort     int    `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" default:"vasp"`
	SQLitePath string `envconfig:"SQLITE_PATH" default:"vasp.db"`

	HTTPPort     string `envconfig:"HTTP_PORT" default:"4242"`
	APISecretKey string `envconfig:"API_SECRET_KEY"`

	CronSchedule string `envconfig:"CRON_SCHEDULE" default:"0 3 * * *"`

	// Quellen für POTCAR-Dateien
	EnabledProviders string `envconfig:"ENABLED_PROVIDERS" default:"localdir"`
	PotcarDir        string `envconfig:"POTCAR_DIR" default:"./potpaw"`

	// S3 ist optional. Ohne Bucket wird weder archiviert noch aus S3 gelesen.
	S3Key      string `envconfig:"S3_KEY"`
	S3Secret   string `envconfig:"S3_SECRET"`
	S3URL      string `envconfig:"S3_URL"`
	S3Region   string `envconfig:"S3_REGION" default:"eu-central-1"`
	S3Bucket   string `envconfig:"S3_BUCKET"`
	S3Prefix   string `envconfig:"S3_PREFIX" default:"potpaw/"`
	S3Archive  bool   `envconfig:"S3_ARCHIVE" default:"false"`
	KeepBackup int    `envconfig:"KEEP_BACKUPS" default:"4"`
}

// DSN gibt den Data Source Name für die PostgreSQL-Verbindung zurück.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

// S3Enabled meldet, ob ein Bucket konfiguriert ist.
func (c *Config) S3Enabled() bool {
	return c.S3Bucket != ""
}

// Providers liefert die Namen der aktivierten POTCAR-Quellen.
func (c *Config) Providers() []string {
	var names []string
	for _, name := range strings.Split(c.EnabledProviders, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case "postgres":
		if c.DBHost == "" || c.DBUser == "" {
			return fmt.Errorf("DB_HOST and DB_USER are required for driver %q", c.DBDriver)
		}
	case "sqlite":
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for driver %q", c.DBDriver)
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.S3Enabled() && (c.S3URL == "" || c.S3Key == "" || c.S3Secret == "") {
		return fmt.Errorf("S3_URL, S3_KEY and S3_SECRET are required when S3_BUCKET is set")
	}
	return nil
}

// Load lädt die Konfiguration aus den Umgebungsvariablen.
func Load() (*Config, error) {
	_ = godotenv.Load()
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return &c, err
	}
	return &c, c.validate()
}
