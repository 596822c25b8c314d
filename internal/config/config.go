package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// Store drivers.
const (
	DriverSQLite   = "sqlite"
	DriverDynamoDB = "dynamodb"
	DriverMemory   = "memory"
)

type Config struct {
	App struct {
		Env string
	} `mapstructure:"app"`

	HTTP struct {
		Addr string
	} `mapstructure:"http"`

	Store struct {
		Driver      string
		Path        string
		TablePrefix string `mapstructure:"table_prefix"`
	} `mapstructure:"store"`

	Metrics struct {
		Enabled bool
	} `mapstructure:"metrics"`

	Log struct {
		Level string
	} `mapstructure:"log"`
}

// Load reads the optional config file at path and applies APP_* environment
// overrides (APP_STORE_DRIVER, APP_HTTP_ADDR, ...). A missing file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return Config{}, err
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	c.Store.Driver = strings.ToLower(strings.TrimSpace(c.Store.Driver))
	switch c.Store.Driver {
	case DriverSQLite, DriverDynamoDB, DriverMemory:
	default:
		return c, fmt.Errorf("unknown store.driver %q", c.Store.Driver)
	}
	return c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "dev")
	v.SetDefault("http.addr", "127.0.0.1:8080")
	v.SetDefault("store.driver", DriverSQLite)
	v.SetDefault("store.path", "arclean.db")
	v.SetDefault("store.table_prefix", "arclean_")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("log.level", "")
}
