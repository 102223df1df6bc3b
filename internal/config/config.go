package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	JWT       JWTConfig
	AI        AIConfig
	Redis     RedisConfig
	Logger    LoggerConfig
	Auth      AuthConfig
	CacheTTLs CacheTTLConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// JWTConfig carries distinct secrets for access and refresh tokens so a
// leaked access secret does not compromise long-lived refresh tokens.
type JWTConfig struct {
	AccessSecret    string
	RefreshSecret   string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

type AIConfig struct {
	Provider       string // "openai" or "ollama"
	RequestTimeout time.Duration
	OpenAI         OpenAIConfig
	Ollama         OllamaConfig
}

type OpenAIConfig struct {
	APIKey string
	Model  string
}

type OllamaConfig struct {
	ServerURL string
	Model     string
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type LoggerConfig struct {
	Level string
	Env   string
}

type AuthConfig struct {
	BcryptCost int
}

type CacheTTLConfig struct {
	GeneratedQuestion string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../config")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// A config file is optional; env vars and defaults are enough to run.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		DB: DBConfig{
			Host:     viper.GetString("db.host"),
			Port:     viper.GetInt("db.port"),
			User:     viper.GetString("db.user"),
			Password: viper.GetString("db.password"),
			DBName:   viper.GetString("db.name"),
			SSLMode:  viper.GetString("db.sslmode"),
		},
		JWT: JWTConfig{
			AccessSecret:    viper.GetString("jwt.access_secret"),
			RefreshSecret:   viper.GetString("jwt.refresh_secret"),
			AccessTokenTTL:  viper.GetDuration("jwt.access_token_ttl"),
			RefreshTokenTTL: viper.GetDuration("jwt.refresh_token_ttl"),
		},
		AI: AIConfig{
			Provider:       viper.GetString("ai.provider"),
			RequestTimeout: viper.GetDuration("ai.request_timeout"),
			OpenAI: OpenAIConfig{
				APIKey: viper.GetString("ai.openai.api_key"),
				Model:  viper.GetString("ai.openai.model"),
			},
			Ollama: OllamaConfig{
				ServerURL: viper.GetString("ai.ollama.server_url"),
				Model:     viper.GetString("ai.ollama.model"),
			},
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
		Auth: AuthConfig{
			BcryptCost: viper.GetInt("auth.bcrypt_cost"),
		},
		CacheTTLs: CacheTTLConfig{
			GeneratedQuestion: viper.GetString("cache_ttls.generated_question"),
		},
	}

	// Env overrides for deployment
	if host := os.Getenv("DB_HOST"); host != "" {
		config.DB.Host = host
	}
	if user := os.Getenv("DB_USER"); user != "" {
		config.DB.User = user
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		config.DB.Password = password
	}
	if dbname := os.Getenv("DB_NAME"); dbname != "" {
		config.DB.DBName = dbname
	}
	if secret := os.Getenv("JWT_ACCESS_SECRET"); secret != "" {
		config.JWT.AccessSecret = secret
	}
	if secret := os.Getenv("JWT_REFRESH_SECRET"); secret != "" {
		config.JWT.RefreshSecret = secret
	}
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		config.AI.OpenAI.APIKey = apiKey
	}
	if serverURL := os.Getenv("OLLAMA_SERVER_URL"); serverURL != "" {
		config.AI.Ollama.ServerURL = serverURL
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}

	return config, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 20)
	viper.SetDefault("db.host", "localhost")
	viper.SetDefault("db.port", 5432)
	viper.SetDefault("db.sslmode", "disable")
	viper.SetDefault("jwt.access_token_ttl", 7*24*time.Hour)
	viper.SetDefault("jwt.refresh_token_ttl", 30*24*time.Hour)
	viper.SetDefault("ai.provider", "openai")
	viper.SetDefault("ai.request_timeout", 20*time.Second)
	viper.SetDefault("ai.openai.model", "gpt-4o-mini")
	viper.SetDefault("ai.ollama.model", "qwen3:0.6b")
	viper.SetDefault("auth.bcrypt_cost", 10)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.env", "development")
}

// GetDSN builds the postgres connection string.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.DBName,
		c.DB.SSLMode,
	)
}

// ParseTTLStringOrDefault parses a duration string from config, falling back
// to def when the value is empty or malformed.
func (c *Config) ParseTTLStringOrDefault(value string, def time.Duration) time.Duration {
	if value == "" {
		return def
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return def
	}
	return parsed
}
