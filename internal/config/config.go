// Package config provides the structures and the loader for the service
// configuration.
package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the top-level configuration.
type Config struct {
	Env                     string `yaml:"env" env:"ENV" env-default:"local"`
	StorageConnectionString string `yaml:"storage_connection_string" env:"STORAGE_CONNECTION_STRING"`
	MigrationsPath          string `yaml:"migrations_path" env:"MIGRATIONS_PATH" env-default:"./migrations"`
	RedisConnection         `yaml:"redis_connection"`
	RabbitMQ                `yaml:"rabbitmq"`
	HTTPServer              `yaml:"http_server"`
	JWTToken                `yaml:"jwttoken"`
	Admin                   `yaml:"admin"`
	OAuth                   `yaml:"oauth"`
}

// HTTPServer holds the server settings.
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env:"HTTP_ADDRESS" env-default:":8080"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// RedisConnection holds the redis settings.
type RedisConnection struct {
	AddressRedis string        `yaml:"addressredis" env:"REDIS_ADDRESS"`
	Password     string        `yaml:"password" env:"REDIS_PASSWORD"`
	User         string        `yaml:"user" env:"REDIS_USER"`
	DB           int           `yaml:"db" env-default:"0"`
	MaxRetries   int           `yaml:"max_retries" env-default:"3"`
	DialTimeout  time.Duration `yaml:"dial_timeout" env-default:"5s"`
	TimeoutRedis time.Duration `yaml:"timeoutredis" env-default:"3s"`
}

// RabbitMQ holds the notification broker settings. An empty URL disables
// publishing.
type RabbitMQ struct {
	URL          string        `yaml:"url" env:"RABBITMQ_URL"`
	Retries      int           `yaml:"retries" env-default:"5"`
	RetryDelay   time.Duration `yaml:"retry_delay" env-default:"2s"`
	ContactQueue string        `yaml:"contact_queue" env-default:"admin.contact"`
}

// JWTToken holds the token signing settings.
type JWTToken struct {
	JWTSecretKey string        `yaml:"jwt_secret_key" env:"JWT_SECRET_KEY"`
	TokenTTL     time.Duration `yaml:"token_ttl" env-default:"1h"`
}

// Admin describes the seeded default admin account. Its email also feeds
// the protection policy: the account cannot be modified or deleted through
// the user API.
type Admin struct {
	Email    string `yaml:"email" env:"ADMIN_EMAIL"`
	Password string `yaml:"password" env:"ADMIN_PASSWORD"`
	Name     string `yaml:"name" env:"ADMIN_NAME" env-default:"Admin"`
}

// OAuth holds the Google OAuth provider settings. Empty keys disable the
// OAuth routes.
type OAuth struct {
	GoogleKey     string `yaml:"google_key" env:"GOOGLE_KEY"`
	GoogleSecret  string `yaml:"google_secret" env:"GOOGLE_SECRET"`
	CallbackBase  string `yaml:"callback_base" env:"OAUTH_CALLBACK_BASE" env-default:"http://localhost:8080"`
	SessionSecret string `yaml:"session_secret" env:"OAUTH_SESSION_SECRET"`
}

// MustLoad reads the config from CONFIG_PATH and exits on failure.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}
