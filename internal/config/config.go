package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the runtime settings of the panel backend.
type Config struct {
	Port         int    `mapstructure:"PORT"`
	DatabasePath string `mapstructure:"DB_PATH"`
	// SQLDataDir is where customer database files live.
	SQLDataDir string `mapstructure:"SQL_DATA_DIR"`

	DaemonAddr    string        `mapstructure:"DAEMON_ADDR"`
	DaemonTimeout time.Duration `mapstructure:"DAEMON_TIMEOUT"`
	Version       string        `mapstructure:"VERSION"`

	// HardMailSuspension makes deactivation schedule mailboxes for the
	// daemon instead of only switching IMAP/POP off.
	HardMailSuspension bool `mapstructure:"HARD_MAIL_SUSPENSION"`

	SweepInterval time.Duration `mapstructure:"SWEEP_INTERVAL"`
}

// Load reads configuration from HOSTIQ_-prefixed environment variables,
// falling back to a .env file and built-in defaults.
func Load() (*Config, error) {
	viper.SetDefault("PORT", 8080)
	viper.SetDefault("DB_PATH", "hostiq.db")
	viper.SetDefault("SQL_DATA_DIR", "data/sql")
	viper.SetDefault("DAEMON_ADDR", "127.0.0.1:9876")
	viper.SetDefault("DAEMON_TIMEOUT", 5*time.Second)
	viper.SetDefault("VERSION", "0.1.0")
	viper.SetDefault("HARD_MAIL_SUSPENSION", false)
	viper.SetDefault("SWEEP_INTERVAL", 10*time.Minute)

	viper.SetEnvPrefix("HOSTIQ")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetConfigFile(".env")
	// Ignore err if .env doesn't exist
	_ = viper.ReadInConfig()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
