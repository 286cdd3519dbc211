package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel            string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort            string        `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort          string        `yaml:"socket-port" env:"SOCKET_PORT" env-default:"7777"`
	Redis               Redis         `yaml:"redis"`
	SQLiteStoragePath   string        `yaml:"sqlite-storage-path" env:"SQLITE_STORAGE_PATH" env-default:"./data/arcade.db"`
	CollaboratorTimeout time.Duration `yaml:"collaborator-timeout" env:"COLLABORATOR_TIMEOUT" env-default:"5s"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file, environment variables take precedence.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
