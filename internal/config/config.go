// Package config carrega o config.json da aplicação (mesmo formato de
// ConnectionStrings do appsettings), com sobrescrita por variáveis de ambiente.
package config

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultFile = "config.json"
	EnvPrefix   = "LOJA"

	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

type Config struct {
	ConnectionStrings ConnectionStrings `mapstructure:"ConnectionStrings"`
	Database          DatabaseConfig    `mapstructure:"Database"`
	Logging           LoggingConfig     `mapstructure:"Logging"`
}

type ConnectionStrings struct {
	DefaultConnection string `mapstructure:"DefaultConnection"`
}

type DatabaseConfig struct {
	// postgres, mysql ou sqlite
	Driver string `mapstructure:"Driver"`
	// Segredo no AWS Secrets Manager com username/password; vazio desliga
	SecretID string `mapstructure:"SecretId"`
	// silent, error, warn, info
	LogLevel     string `mapstructure:"LogLevel"`
	MaxOpenConns int    `mapstructure:"MaxOpenConns"`
}

type LoggingConfig struct {
	Level string `mapstructure:"Level"`
	// stderr, file ou both
	Output     string `mapstructure:"Output"`
	FilePath   string `mapstructure:"FilePath"`
	MaxSize    int    `mapstructure:"MaxSize"`
	MaxBackups int    `mapstructure:"MaxBackups"`
	MaxAge     int    `mapstructure:"MaxAge"`
	Compress   bool   `mapstructure:"Compress"`
}

// LoadEnvFile carrega um .env; arquivo inexistente não é erro.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errors.Wrapf(err, "load env file %s", path)
	}
	return nil
}

// Load lê o arquivo JSON de configuração e aplica as variáveis LOJA_*.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "read config file %s", path)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}
	return &cfg, nil
}

// ConnectionString segue a semântica de GetConnectionString: procura o nome
// dentro de ConnectionStrings.
func (c *Config) ConnectionString(name string) string {
	if strings.EqualFold(name, "DefaultConnection") {
		return c.ConnectionStrings.DefaultConnection
	}
	return ""
}

func (c *Config) Validate() error {
	c.Database.Driver = strings.ToLower(strings.TrimSpace(c.Database.Driver))
	switch c.Database.Driver {
	case DriverPostgres, DriverMySQL, DriverSQLite:
	default:
		return errors.Newf("unsupported database driver %q", c.Database.Driver)
	}
	if strings.TrimSpace(c.ConnectionStrings.DefaultConnection) == "" {
		return errors.New("ConnectionStrings:DefaultConnection is required")
	}
	if c.Database.MaxOpenConns <= 0 {
		c.Database.MaxOpenConns = 1
	}
	switch c.Logging.Output {
	case "stderr", "file", "both":
	default:
		return errors.Newf("invalid logging output %q", c.Logging.Output)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ConnectionStrings.DefaultConnection", "")

	v.SetDefault("Database.Driver", DriverPostgres)
	v.SetDefault("Database.SecretId", "")
	v.SetDefault("Database.LogLevel", "error")
	v.SetDefault("Database.MaxOpenConns", 1)

	v.SetDefault("Logging.Level", "info")
	v.SetDefault("Logging.Output", "file")
	v.SetDefault("Logging.FilePath", "logs/loja.log")
	v.SetDefault("Logging.MaxSize", 10)
	v.SetDefault("Logging.MaxBackups", 3)
	v.SetDefault("Logging.MaxAge", 30)
	v.SetDefault("Logging.Compress", false)
}
