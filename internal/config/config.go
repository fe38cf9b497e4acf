package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Storage  StorageConfig  `mapstructure:"storage"`
	OpenAI   OpenAIConfig   `mapstructure:"openai"`
}

type ServerConfig struct {
	Port      int    `mapstructure:"port"`
	StaticDir string `mapstructure:"static_dir"`
}

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type StorageConfig struct {
	LocalDir string      `mapstructure:"local_dir"`
	Azure    AzureConfig `mapstructure:"azure"`
}

// AzureConfig enables remote blob storage when either an account name or a
// connection string is present. UseManagedIdentity selects the credential
// strategy over the connection string.
type AzureConfig struct {
	AccountName        string `mapstructure:"account_name"`
	ConnectionString   string `mapstructure:"connection_string"`
	UseManagedIdentity bool   `mapstructure:"use_managed_identity"`
}

// Configured reports whether any remote credential is present.
func (a AzureConfig) Configured() bool {
	return a.AccountName != "" || a.ConnectionString != ""
}

type OpenAIConfig struct {
	Endpoint   string `mapstructure:"endpoint"`
	APIKey     string `mapstructure:"api_key"`
	APIVersion string `mapstructure:"api_version"`
	Deployment string `mapstructure:"deployment"`
}

func Load() (*Config, error) {
	viper.SetConfigName("app")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetDefault("server.port", 8000)
	viper.SetDefault("server.static_dir", "./static")
	viper.SetDefault("storage.local_dir", ".")
	viper.SetDefault("openai.api_version", "2024-02-15-preview")
	viper.SetDefault("openai.deployment", "gpt-4o")

	// the original deployment configured everything through the environment
	_ = viper.BindEnv("server.port", "PORT")
	_ = viper.BindEnv("database.url", "PLANS_DATABASE_URL")
	_ = viper.BindEnv("storage.azure.account_name", "AZURE_STORAGE_ACCOUNT_NAME")
	_ = viper.BindEnv("storage.azure.connection_string", "AZURE_STORAGE_CONNECTION_STRING")
	_ = viper.BindEnv("storage.azure.use_managed_identity", "USE_MANAGED_IDENTITY")
	_ = viper.BindEnv("openai.endpoint", "AZURE_OPENAI_ENDPOINT")
	_ = viper.BindEnv("openai.api_key", "AZURE_OPENAI_API_KEY")
	_ = viper.BindEnv("openai.api_version", "AZURE_OPENAI_API_VERSION")
	_ = viper.BindEnv("openai.deployment", "AZURE_OPENAI_DEPLOYMENT_NAME")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}
