// Package config предоставляет структуры и функции для загрузки конфигурации сервиса.
// Значения читаются из YAML-файла (CONFIG_PATH) и/или переменных окружения,
// переменные из .env подхватываются автоматически.
package config

import (
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config общая структура для хранения настроек
type Config struct {
	Env            string          `yaml:"env" env:"APP_ENV" env-default:"local"`
	MigrationsPath string          `yaml:"migrations_path" env:"MIGRATIONS_PATH" env-default:"./migrations"`
	CacheTTL       time.Duration   `yaml:"cache_ttl" env:"CACHE_TTL" env-default:"1h"`
	HTTPServer     HTTPServer      `yaml:"http_server"`
	Storage        Storage         `yaml:"storage"`
	Redis          RedisConnection `yaml:"redis_connection"`
	RabbitMQ       RabbitMQ        `yaml:"rabbitmq"`
	RateLimit      RateLimit       `yaml:"rate_limit"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env:"HTTP_ADDRESS" env-default:"0.0.0.0:5000"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env:"HTTP_TIMEOUT" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

// Storage структура для подключения к PostgreSQL.
// Имена переменных окружения совпадают с исходным развёртыванием ФСТР.
type Storage struct {
	Host            string        `yaml:"host" env:"FSTR_DB_HOST" env-default:"localhost"`
	Port            int           `yaml:"port" env:"FSTR_DB_PORT" env-default:"5432"`
	Name            string        `yaml:"name" env:"FSTR_DB_NAME" env-default:"pereval"`
	User            string        `yaml:"user" env:"FSTR_DB_LOGIN" env-default:"postgres"`
	Password        string        `yaml:"password" env:"FSTR_DB_PASS"`
	SSLMode         string        `yaml:"sslmode" env:"FSTR_DB_SSLMODE" env-default:"disable"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout" env:"FSTR_DB_CONNECT_TIMEOUT" env-default:"5s"`
	QueryTimeout    time.Duration `yaml:"query_timeout" env:"FSTR_DB_QUERY_TIMEOUT" env-default:"10s"`
	MaxOpenConns    int           `yaml:"max_open_conns" env:"FSTR_DB_MAX_OPEN_CONNS" env-default:"10"`
	MaxIdleConns    int           `yaml:"max_idle_conns" env:"FSTR_DB_MAX_IDLE_CONNS" env-default:"5"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"FSTR_DB_CONN_MAX_LIFETIME" env-default:"30m"`
}

// RedisConnection структура для настройки подключения к redis.
// Пустой адрес отключает кеширование.
type RedisConnection struct {
	AddressRedis string        `yaml:"addressredis" env:"REDIS_ADDRESS"`
	Password     string        `yaml:"password" env:"REDIS_PASSWORD"`
	User         string        `yaml:"user" env:"REDIS_USER"`
	DB           int           `yaml:"db" env:"REDIS_DB" env-default:"0"`
	MaxRetries   int           `yaml:"max_retries" env:"REDIS_MAX_RETRIES" env-default:"3"`
	DialTimeout  time.Duration `yaml:"dial_timeout" env:"REDIS_DIAL_TIMEOUT" env-default:"5s"`
	TimeoutRedis time.Duration `yaml:"timeoutredis" env:"REDIS_TIMEOUT" env-default:"3s"`
}

// RabbitMQ структура для публикации событий модерации.
// Пустой URL отключает публикацию.
type RabbitMQ struct {
	URL        string        `yaml:"url" env:"RABBITMQ_URL"`
	Exchange   string        `yaml:"exchange" env:"RABBITMQ_EXCHANGE" env-default:"moderation"`
	Queue      string        `yaml:"queue" env:"RABBITMQ_QUEUE" env-default:"pereval.submitted"`
	RoutingKey string        `yaml:"routing_key" env:"RABBITMQ_ROUTING_KEY" env-default:"submitted"`
	MaxRetries int           `yaml:"max_retries" env:"RABBITMQ_MAX_RETRIES" env-default:"5"`
	RetryDelay time.Duration `yaml:"retry_delay" env:"RABBITMQ_RETRY_DELAY" env-default:"2s"`
}

// RateLimit ограничение частоты запросов к API.
type RateLimit struct {
	RPS   float64 `yaml:"rps" env:"RATE_LIMIT_RPS" env-default:"50"`
	Burst int     `yaml:"burst" env:"RATE_LIMIT_BURST" env-default:"100"`
}

// MustLoad загружает конфиг и завершает процесс при ошибке.
func MustLoad() *Config {
	cfg, err := Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return cfg
}

// Load читает .env (если есть), затем YAML по пути configPath
// или только переменные окружения, если путь пустой.
func Load(configPath string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config.Load: %w", err)
		}
		return &cfg, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config.Load: file %s does not exist", configPath)
	}
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return &cfg, nil
}

// ConnectionString собирает DSN для драйвера pgx.
func (s Storage) ConnectionString() string {
	q := url.Values{}
	q.Set("sslmode", s.SSLMode)
	if s.ConnectTimeout > 0 {
		q.Set("connect_timeout", strconv.Itoa(int(s.ConnectTimeout.Seconds())))
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(s.User, s.Password),
		Host:     net.JoinHostPort(s.Host, strconv.Itoa(s.Port)),
		Path:     s.Name,
		RawQuery: q.Encode(),
	}
	return u.String()
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"MigrationsPath: %s\n"+
			"CacheTTL: %s\n"+
			"Storage:\n"+
			"  Host: %s\n"+
			"  Port: %d\n"+
			"  Name: %s\n"+
			"  User: %s\n"+
			"  Password: %s\n"+
			"  ConnectTimeout: %s\n"+
			"  QueryTimeout: %s\n"+
			"RedisConnection:\n"+
			"  Addr: %s\n"+
			"  DB: %d\n"+
			"RabbitMQ:\n"+
			"  Enabled: %t\n"+
			"  Exchange: %s\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n",
		c.Env,
		c.MigrationsPath,
		c.CacheTTL,
		c.Storage.Host,
		c.Storage.Port,
		c.Storage.Name,
		c.Storage.User,
		mask(c.Storage.Password),
		c.Storage.ConnectTimeout,
		c.Storage.QueryTimeout,
		c.Redis.AddressRedis,
		c.Redis.DB,
		c.RabbitMQ.URL != "",
		c.RabbitMQ.Exchange,
		c.HTTPServer.AddressHTTP,
		c.HTTPServer.TimeoutHTTP,
		c.HTTPServer.IdleTimeout,
	)
}

func mask(secret string) string {
	if secret == "" {
		return ""
	}
	return "******"
}
