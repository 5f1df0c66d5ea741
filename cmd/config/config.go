package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

var loadConfigOnce sync.Once
var configInstance AppConfig

// LoadConfig reads config/server.yaml once and caches the result.
// Environment variables prefixed with SENSORHUB_SERVER_ override file
// values. Extra paths are searched before the defaults.
func LoadConfig(extraPaths ...string) AppConfig {
	loadConfigOnce.Do(func() {
		viper.SetEnvPrefix("sensorhub_server")
		viper.AutomaticEnv()
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.SetConfigName("server")
		for _, path := range extraPaths {
			viper.AddConfigPath(path)
		}
		viper.AddConfigPath("config")
		viper.AddConfigPath("/config")
		if err := viper.ReadInConfig(); err != nil {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
		configInstance = AppConfig{
			General: GeneralConfig{
				LogLevel: viper.GetString("general.log_level"),
			},
			Postgresql: PostgresqlConfig{
				URL: viper.GetString("database.url"),
				DSN: viper.GetString("database.dsn"),
			},
			Redis: RedisConfig{
				Addr:     viper.GetString("redis.addr"),
				Password: viper.GetString("redis.password"),
				DB:       viper.GetInt("redis.db"),
			},
			Dispatcher: DispatcherConfig{
				PollRetryCount:    viper.GetInt("dispatcher.poll_retry_count"),
				RetentionSchedule: viper.GetString("dispatcher.retention_schedule"),
			},
			DeviceClient: DeviceClientConfig{
				TimeoutMS: viper.GetInt64("device_client.timeout_ms"),
			},
		}
	})

	return configInstance
}

type AppConfig struct {
	General      GeneralConfig
	Postgresql   PostgresqlConfig
	Redis        RedisConfig
	Dispatcher   DispatcherConfig
	DeviceClient DeviceClientConfig
}

type GeneralConfig struct {
	LogLevel string
}

type PostgresqlConfig struct {
	URL string
	DSN string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type DispatcherConfig struct {
	PollRetryCount    int
	RetentionSchedule string
}

type DeviceClientConfig struct {
	TimeoutMS int64
}
