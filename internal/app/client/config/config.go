package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultServerAddress = "localhost:8080"
	defaultLogLevel      = "info"
	defaultEnv           = "local"
	defaultExportDir     = "."
)

type Config struct {
	Env           string `mapstructure:"app_env"`
	ServerAddress string `mapstructure:"server_address"`
	LogLevel      string `mapstructure:"log_level"`
	EnableTLS     bool   `mapstructure:"enable_tls"`
	ExportDir     string `mapstructure:"export_dir"`
}

// MustLoad reads the client configuration from the environment, with an
// optional .env file next to the binary.
func MustLoad() *Config {
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		envPath = "../.env"
	}
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Printf("failed to load .env file: %v\n", err)
		}
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("SERVER_ADDRESS", defaultServerAddress)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("EXPORT_DIR", defaultExportDir)
	viper.SetDefault("ENABLE_TLS", false)

	config := &Config{
		Env:           viper.GetString("APP_ENV"),
		ServerAddress: viper.GetString("SERVER_ADDRESS"),
		LogLevel:      viper.GetString("LOG_LEVEL"),
		EnableTLS:     viper.GetBool("ENABLE_TLS"),
		ExportDir:     viper.GetString("EXPORT_DIR"),
	}

	if err := config.validate(); err != nil {
		panic(fmt.Sprintf("configuration error: %v", err))
	}

	return config
}

func (c *Config) validate() error {
	if c.ServerAddress == "" {
		return fmt.Errorf("server_address must not be empty")
	}
	if c.ExportDir == "" {
		return fmt.Errorf("export_dir must not be empty")
	}
	return nil
}

// IsProd reports whether the prod environment is active.
func (c *Config) IsProd() bool {
	return c.Env == "prod"
}

// IsLocal reports whether the local environment is active.
func (c *Config) IsLocal() bool {
	return c.Env == "local" || c.Env == ""
}
