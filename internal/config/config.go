package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for match-notifier-service
type Config struct {
	Server   ServerConfig
	Football FootballConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	FCM      FCMConfig
	Poller   PollerConfig
	Logging  LoggingConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// FootballConfig holds the football-data.org API configuration
type FootballConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Token   string
	Timeout time.Duration
}

// RedisConfig holds Redis configuration for the device/ticket store
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// KafkaConfig holds Kafka producer configuration
type KafkaConfig struct {
	Brokers []string
	Topic   string // Topic to publish notification events to
}

// FCMConfig holds the push delivery configuration
type FCMConfig struct {
	Endpoint  string
	ServerKey string `mapstructure:"server_key"`
	Timeout   time.Duration
}

// PollerConfig holds the polling loop configuration
type PollerConfig struct {
	Interval time.Duration // Measured end-of-cycle to start-of-next
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("server.port", 8082)
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)

	v.SetDefault("football.base_url", "https://api.football-data.org/v4")
	v.SetDefault("football.token", "")
	v.SetDefault("football.timeout", 10*time.Second)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topic", "match_notifications")

	v.SetDefault("fcm.endpoint", "https://fcm.googleapis.com/fcm/send")
	v.SetDefault("fcm.server_key", "")
	v.SetDefault("fcm.timeout", 10*time.Second)

	v.SetDefault("poller.interval", 60*time.Second)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	// Read config file if provided
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Override with environment variables
	v.SetEnvPrefix("MATCH_NOTIFIER")
	v.AutomaticEnv()
	// Replace . with _ for environment variables
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Unmarshal to struct
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
