package config

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// SecretValue is a string that never prints its content.
type SecretValue string

func (s SecretValue) String() string {
	return "*******"
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
}

type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
}

type MongoDBConfig struct {
	Database string      `mapstructure:"database"`
	CAPem    string      `mapstructure:"ca_pem"`
	User     string      `mapstructure:"user"`
	Password SecretValue `mapstructure:"password"`
	Port     string      `mapstructure:"port"`
	Host     string      `mapstructure:"host"`
}

// URI returns the connection string for the mongo driver.
func (c MongoDBConfig) URI() string {
	return fmt.Sprintf("mongodb://%s:%s@%s:%s", c.User, string(c.Password), c.Host, c.Port)
}

// MigrateURI returns the connection string golang-migrate expects, which
// includes the target database.
func (c MongoDBConfig) MigrateURI() string {
	return fmt.Sprintf("mongodb://%s:%s@%s:%s/%s?authSource=admin", c.User, string(c.Password), c.Host, c.Port, c.Database)
}

type KeyConfig struct {
	RsaPrivateKeyPem SecretValue `mapstructure:"rsa_private_key_pem"`
}

type AccountConfig struct {
	AdminEmail    string      `mapstructure:"admin_email"`
	AdminPassword SecretValue `mapstructure:"admin_password"`
}

// AuditConfig tunes the audit logging subsystem.
type AuditConfig struct {
	// QueueSize bounds the async writer. Zero makes writes synchronous,
	// which the tests rely on.
	QueueSize int `mapstructure:"queue_size"`
	// DefaultRetentionDays is the advisory expiry horizon stamped on
	// entries that do not set one explicitly.
	DefaultRetentionDays int `mapstructure:"default_retention_days"`
	// SweepIntervalMin is how often the retention sweeper runs. Zero
	// disables it.
	SweepIntervalMin int `mapstructure:"sweep_interval_min"`
	// IdentityCacheTTLSec bounds how stale enriched user display fields
	// may be.
	IdentityCacheTTLSec int `mapstructure:"identity_cache_ttl_sec"`
}

type APIConfig struct {
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
	MongoDB MongoDBConfig `mapstructure:"mongodb"`
	Key     KeyConfig     `mapstructure:"key"`
	Account AccountConfig `mapstructure:"account"`
	Audit   AuditConfig   `mapstructure:"audit"`
}

var (
	apiCfg *APIConfig
)

func GetConfig() *APIConfig {
	return apiCfg
}

func InitAPIConfig(configName string, configPath string) (APIConfig, error) {
	var cfg APIConfig
	if configPath != "" {
		viper.AddConfigPath(configPath)
	}
	if configName == "" {
		configName = "api_config"
	}
	viper.AddConfigPath(GetAbsPath("config"))
	viper.SetConfigName(configName)
	viper.SetConfigType("toml")
	viper.SetEnvPrefix("CYLTEST")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	err := viper.ReadInConfig()
	if err != nil {
		return cfg, err
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return cfg, err
	}
	apiCfg = &cfg
	return cfg, nil
}

// GetAbsPath returns the absolute path by joining the given paths with the project root directory
func GetAbsPath(paths ...string) string {
	_, filePath, _, _ := runtime.Caller(1)
	basePath := filepath.Dir(filePath)
	rootPath := filepath.Join(basePath, "..")
	return filepath.Join(rootPath, filepath.Join(paths...))
}
