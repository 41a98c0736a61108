package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database  DatabaseConfig
	Tenant    TenantConfig
	UI        UIConfig
	Dashboard DashboardConfig
	Log       LogConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// TenantConfig selects the organisation this console operates on.
// Every query and every stored dashboard layout is scoped to it.
type TenantConfig struct {
	ID string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DateFormat string `mapstructure:"date_format"`
}

// DashboardConfig holds widget-grid settings.
type DashboardConfig struct {
	// RowHeight is the number of terminal lines per grid row unit.
	RowHeight int `mapstructure:"row_height"`
	// StorageKey names the persisted layout slot for the main dashboard.
	StorageKey string `mapstructure:"storage_key"`
}

// LogConfig holds logging settings. An empty path disables logging,
// which a full-screen terminal program needs as its default.
type LogConfig struct {
	Path string
}

// Load reads configuration from file and env. Env var overrides use prefix VAKAFLOW_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "vakaflow", "vakaflow.db"))
	v.SetDefault("tenant.id", "")
	v.SetDefault("ui.date_format", "2006-01-02")
	v.SetDefault("dashboard.row_height", 2)
	v.SetDefault("dashboard.storage_key", "main")
	v.SetDefault("log.path", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("VAKAFLOW_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "vakaflow"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("VAKAFLOW")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory
// if needed. Used by the settings surface for non-sensitive preferences.
func Save(cfg Config) error {
	path := os.Getenv("VAKAFLOW_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "vakaflow", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("tenant.id", cfg.Tenant.ID)
	v.Set("ui.date_format", cfg.UI.DateFormat)
	v.Set("dashboard.row_height", cfg.Dashboard.RowHeight)
	v.Set("dashboard.storage_key", cfg.Dashboard.StorageKey)
	v.Set("log.path", cfg.Log.Path)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
