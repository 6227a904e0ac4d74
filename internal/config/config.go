package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Redis      RedisConfig
	Port       PortConfig
	Exchange   ExchangeConfig
	Weather    WeatherConfig
	Narration  NarrationConfig
	Log        LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

// RedisConfig describes the optional last-known-good cache and position stream.
// When Enabled is false the service keeps everything in process memory only.
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// PortConfig pins the day to one port of call: the anchorage coordinates used for
// weather and solar lookups, the timezone all clock-of-day values are read in, and
// the two fixed checkpoints driving the countdown.
type PortConfig struct {
	Latitude      float64
	Longitude     float64
	Timezone      string
	ArrivalTime   string
	AllAboardTime string
}

type ExchangeConfig struct {
	BaseURL        string
	FallbackRate   float64
	RequestTimeout time.Duration
	SnapshotTTL    time.Duration
}

type WeatherConfig struct {
	BaseURL        string
	ForecastDays   int
	RequestTimeout time.Duration
	SnapshotTTL    time.Duration
}

type NarrationConfig struct {
	// Words-per-minute estimate used by the local speech engine to time
	// completion callbacks.
	WordsPerMinute int
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Missing .env is fine: defaults plus environment cover everything.
	_ = viper.ReadInConfig()

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Redis: RedisConfig{
			Enabled:  viper.GetBool("REDIS_ENABLED"),
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Port: PortConfig{
			Latitude:      viper.GetFloat64("PORT_LATITUDE"),
			Longitude:     viper.GetFloat64("PORT_LONGITUDE"),
			Timezone:      viper.GetString("PORT_TIMEZONE"),
			ArrivalTime:   viper.GetString("PORT_ARRIVAL_TIME"),
			AllAboardTime: viper.GetString("PORT_ALL_ABOARD_TIME"),
		},
		Exchange: ExchangeConfig{
			BaseURL:        viper.GetString("EXCHANGE_BASE_URL"),
			FallbackRate:   viper.GetFloat64("EXCHANGE_FALLBACK_RATE"),
			RequestTimeout: time.Duration(viper.GetInt("EXCHANGE_REQUEST_TIMEOUT")) * time.Second,
			SnapshotTTL:    time.Duration(viper.GetInt("EXCHANGE_SNAPSHOT_TTL")) * time.Second,
		},
		Weather: WeatherConfig{
			BaseURL:        viper.GetString("WEATHER_BASE_URL"),
			ForecastDays:   viper.GetInt("WEATHER_FORECAST_DAYS"),
			RequestTimeout: time.Duration(viper.GetInt("WEATHER_REQUEST_TIMEOUT")) * time.Second,
			SnapshotTTL:    time.Duration(viper.GetInt("WEATHER_SNAPSHOT_TTL")) * time.Second,
		},
		Narration: NarrationConfig{
			WordsPerMinute: viper.GetInt("NARRATION_WORDS_PER_MINUTE"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	applyDefaults(cfg)

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.Port.Latitude == 0 {
		cfg.Port.Latitude = 62.08
	}
	if cfg.Port.Longitude == 0 {
		cfg.Port.Longitude = 6.86
	}
	if cfg.Port.Timezone == "" {
		cfg.Port.Timezone = "Europe/Berlin"
	}
	if cfg.Port.ArrivalTime == "" {
		cfg.Port.ArrivalTime = "09:00"
	}
	if cfg.Port.AllAboardTime == "" {
		cfg.Port.AllAboardTime = "20:30"
	}
	if cfg.Exchange.BaseURL == "" {
		cfg.Exchange.BaseURL = "https://api.exchangerate-api.com"
	}
	if cfg.Exchange.FallbackRate == 0 {
		cfg.Exchange.FallbackRate = 11.8
	}
	if cfg.Exchange.RequestTimeout == 0 {
		cfg.Exchange.RequestTimeout = 10 * time.Second
	}
	if cfg.Exchange.SnapshotTTL == 0 {
		cfg.Exchange.SnapshotTTL = 24 * time.Hour
	}
	if cfg.Weather.BaseURL == "" {
		cfg.Weather.BaseURL = "https://api.open-meteo.com"
	}
	if cfg.Weather.ForecastDays == 0 {
		cfg.Weather.ForecastDays = 5
	}
	if cfg.Weather.RequestTimeout == 0 {
		cfg.Weather.RequestTimeout = 10 * time.Second
	}
	if cfg.Weather.SnapshotTTL == 0 {
		cfg.Weather.SnapshotTTL = 6 * time.Hour
	}
	if cfg.Narration.WordsPerMinute == 0 {
		cfg.Narration.WordsPerMinute = 150
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
