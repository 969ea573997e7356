package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Store drivers
const (
	StoreDriverMongo    = "mongo"
	StoreDriverPostgres = "postgres"
)

// Summarization providers
const (
	AIProviderGemini = "gemini"
	AIProviderGroq   = "groq"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Mongo    MongoConfig
	Database DatabaseConfig `envconfig:"DB"`
	Redis    RedisConfig
	Storage  StorageConfig
	AI       AIConfig
	Log      LogConfig
}

// ServerConfig holds server configuration.
// Every key can also be given without the SERVER_ prefix (PORT, HOST, ...).
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"4000"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// StoreConfig selects the persistence backend
type StoreConfig struct {
	Driver         string        `default:"mongo"`
	ConnectTimeout time.Duration `split_words:"true" default:"30s"`
}

// MongoConfig holds document store configuration
type MongoConfig struct {
	URI      string `default:"mongodb://localhost:27017"`
	Database string `default:"meeting_feedback"`
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	Host        string `default:"localhost"`
	Port        string `default:"5432"`
	User        string `default:"postgres"`
	Password    string `default:"postgres"`
	Name        string `default:"meeting_feedback"`
	SSLMode     string `split_words:"true" default:"disable"`
	MaxConns    int    `split_words:"true" default:"25"`
	MinConns    int    `split_words:"true" default:"5"`
	AutoMigrate bool   `split_words:"true" default:"false"`
}

// RedisConfig holds Redis configuration for the insight report cache
type RedisConfig struct {
	Enabled   bool          `default:"false"`
	Host      string        `default:"localhost"`
	Port      string        `default:"6379"`
	Password  string
	DB        int           `default:"0"`
	ReportTTL time.Duration `split_words:"true" default:"10m"`
}

// StorageConfig holds object storage configuration for the report archive
type StorageConfig struct {
	Enabled         bool   `default:"false"`
	Endpoint        string `default:"localhost:9000"`
	AccessKeyID     string `split_words:"true" default:"minioadmin"`
	SecretAccessKey string `split_words:"true" default:"minioadmin"`
	BucketName      string `split_words:"true" default:"meeting-feedback"`
	UseSSL          bool   `split_words:"true" default:"false"`
	PublicURL       string `split_words:"true"`
}

// AIConfig holds summarization provider configuration.
// An empty key for the selected provider disables summarization.
// The API keys are also read without the AI_ prefix (GEMINI_API_KEY, GROQ_API_KEY).
type AIConfig struct {
	Provider     string        `default:"gemini"`
	GeminiAPIKey string        `envconfig:"GEMINI_API_KEY"`
	GeminiModel  string        `split_words:"true" default:"gemini-2.0-flash"`
	GroqAPIKey   string        `envconfig:"GROQ_API_KEY"`
	GroqBaseURL  string        `envconfig:"GROQ_API_URL" default:"https://api.groq.com"`
	GroqModel    string        `split_words:"true" default:"llama-3.1-70b-versatile"`
	Timeout      time.Duration `default:"30s"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level string `default:"info"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreDriverMongo, StoreDriverPostgres:
	default:
		return fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", StoreDriverMongo, StoreDriverPostgres, c.Store.Driver)
	}
	switch c.AI.Provider {
	case AIProviderGemini, AIProviderGroq:
	default:
		return fmt.Errorf("AI_PROVIDER must be %q or %q, got %q", AIProviderGemini, AIProviderGroq, c.AI.Provider)
	}
	if c.Redis.ReportTTL <= 0 {
		return fmt.Errorf("REDIS_REPORT_TTL must be positive, got %s", c.Redis.ReportTTL)
	}
	if c.Database.AutoMigrate && c.IsProduction() {
		return fmt.Errorf("DB_AUTO_MIGRATE must not be enabled in production, run cmd/migrate instead")
	}
	return nil
}

// IsProduction reports whether the server runs in production
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// GetServerAddr returns the HTTP listen address
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// SummarizerAPIKey returns the credential of the selected provider
func (c *AIConfig) SummarizerAPIKey() string {
	if c.Provider == AIProviderGroq {
		return c.GroqAPIKey
	}
	return c.GeminiAPIKey
}
