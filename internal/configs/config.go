package configs

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

type AppConfig struct {
	AppName      string
	Rest         RestConfig
	Storage      StorageConfig
	Auth         AuthConfig
	RabbitMQ     RabbitMQConfig
	FluentBit    FluentBitConfig
	StdoutLogger StdoutLogConfig
}

type RestConfig struct {
	Port               string
	CORSAllowedOrigins []string
}

type StorageConfig struct {
	Driver       string
	DatabaseURL  string
	SeedDemoData bool
}

type AuthConfig struct {
	JWTSigningKey string
	JWTIssuer     string
	// TrustGatewayHeaders разрешает X-User-ID/X-User-Role от api-gateway вместо Bearer токена
	TrustGatewayHeaders bool
}

type RabbitMQConfig struct {
	Enabled  bool
	URL      string
	Exchange string
}

type FluentBitConfig struct {
	Host    string
	Port    int
	Enabled bool
	Level   string
}

type StdoutLogConfig struct {
	Level string
}

// LoadConfig читает .env (если он есть) и переменные окружения.
// Переменные окружения имеют приоритет: godotenv не перезаписывает уже заданные.
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath...)
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		if len(envPath) > 0 {
			return nil, fmt.Errorf("could not load env file (path: %v): %w", envPath, err)
		}
		log.Println("No .env file found, using environment variables")
	}

	cfg := &AppConfig{
		AppName: getEnvAsString("APP_NAME", "househunt-service"),
		Rest: RestConfig{
			Port:               getEnvAsString("PORT", "8085"),
			CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
		},
		Storage: StorageConfig{
			Driver:       strings.ToLower(getEnvAsString("STORAGE_DRIVER", StorageDriverPostgres)),
			DatabaseURL:  getEnvAsString("DATABASE_URL", ""),
			SeedDemoData: getEnvAsBool("SEED_DEMO_DATA", false),
		},
		Auth: AuthConfig{
			JWTSigningKey:       getEnvAsString("JWT_SIGNING_KEY", ""),
			JWTIssuer:           getEnvAsString("JWT_ISSUER", "househunt-auth"),
			TrustGatewayHeaders: getEnvAsBool("TRUST_GATEWAY_HEADERS", false),
		},
		RabbitMQ: RabbitMQConfig{
			Enabled:  getEnvAsBool("RABBITMQ_ENABLED", false),
			URL:      getEnvAsString("RABBITMQ_URL", ""),
			Exchange: getEnvAsString("RABBITMQ_EXCHANGE", "househunt_exchange"),
		},
		StdoutLogger: StdoutLogConfig{
			Level: getEnvAsString("STDOUT_LOG_LEVEL", "debug"),
		},
	}

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}
		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnvAsString("FLUENTBIT_LOG_LEVEL", "info")
	}

	return cfg, nil
}

// Validate проверяет то, без чего сервис не может стартовать
func (c *AppConfig) Validate() error {
	var errs []error
	if c.Auth.JWTSigningKey == "" {
		errs = append(errs, errors.New("JWT_SIGNING_KEY is required"))
	}
	switch c.Storage.Driver {
	case StorageDriverPostgres:
		if c.Storage.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required for the postgres storage driver"))
		}
	case StorageDriverMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver))
	}
	if c.RabbitMQ.Enabled && c.RabbitMQ.URL == "" {
		errs = append(errs, errors.New("RABBITMQ_URL is required when RABBITMQ_ENABLED is true"))
	}
	return errors.Join(errs...)
}

func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as bool: %v. Using default value: %t\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valBool
}

// getEnvAsList - список через запятую, пустые элементы отбрасываются
func getEnvAsList(key string, defaultValue []string) []string {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	items := make([]string, 0)
	for _, item := range strings.Split(valStr, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
