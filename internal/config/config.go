// internal/config/config.go
package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Analysis AnalysisConfig
	Export   ExportConfig
	Archive  ArchiveConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port           string
	Mode           string
	AllowedOrigins []string
}

// StoreConfig selects the key-value backend holding the three inventory
// collections. "file" keeps one JSON document per collection under Dir.
type StoreConfig struct {
	Backend       string
	Dir           string
	RedisURL      string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
}

type AnalysisConfig struct {
	BaseURL           string
	APIKey            string
	TimeoutSeconds    int
	RetryDelaySeconds int
	DebounceMillis    int
}

type ExportConfig struct {
	OutputDir     string
	ProductTitle  string
	WatermarkText string
}

type ArchiveConfig struct {
	Enabled   bool
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
}

// LogConfig selects the log verbosity and output encoding. Format is
// "console" for human-readable output or "json" for structured lines.
type LogConfig struct {
	Level  string
	Format string
}

var (
	once     sync.Once
	instance *Config
)

func Load() *Config {
	once.Do(func() {
		// Load .env file if it exists
		_ = godotenv.Load()

		// Set default values
		viper.SetDefault("SERVER_PORT", "8080")
		viper.SetDefault("SERVER_MODE", "debug")
		viper.SetDefault("SERVER_ALLOWED_ORIGINS", []string{"*"})
		viper.SetDefault("STORE_BACKEND", "file")
		viper.SetDefault("STORE_DIR", "./data/store")
		viper.SetDefault("STORE_REDIS_URL", "")
		viper.SetDefault("STORE_REDIS_HOST", "127.0.0.1")
		viper.SetDefault("STORE_REDIS_PORT", "6379")
		viper.SetDefault("STORE_REDIS_PASSWORD", "")
		viper.SetDefault("STORE_REDIS_DB", 0)
		viper.SetDefault("ANALYSIS_BASE_URL", "")
		viper.SetDefault("ANALYSIS_API_KEY", "")
		viper.SetDefault("ANALYSIS_TIMEOUT_SECONDS", 30)
		viper.SetDefault("ANALYSIS_RETRY_DELAY_SECONDS", 5)
		viper.SetDefault("ANALYSIS_DEBOUNCE_MILLIS", 500)
		viper.SetDefault("EXPORT_OUTPUT_DIR", "./data/exports")
		viper.SetDefault("EXPORT_PRODUCT_TITLE", "Inventory Manager")
		viper.SetDefault("EXPORT_WATERMARK_TEXT", "Confidential")
		viper.SetDefault("ARCHIVE_ENABLED", false)
		viper.SetDefault("ARCHIVE_ENDPOINT", "")
		viper.SetDefault("ARCHIVE_ACCESS_KEY", "")
		viper.SetDefault("ARCHIVE_SECRET_KEY", "")
		viper.SetDefault("ARCHIVE_BUCKET", "")
		viper.SetDefault("ARCHIVE_REGION", "")
		viper.SetDefault("ARCHIVE_USE_SSL", true)
		viper.SetDefault("LOG_LEVEL", "info")
		viper.SetDefault("LOG_FORMAT", "console")

		// Read from environment variables
		viper.AutomaticEnv()

		// Ensure store and export directories exist
		ensureDir(viper.GetString("STORE_DIR"))
		ensureDir(viper.GetString("EXPORT_OUTPUT_DIR"))

		instance = &Config{
			Server: ServerConfig{
				Port:           viper.GetString("SERVER_PORT"),
				Mode:           viper.GetString("SERVER_MODE"),
				AllowedOrigins: viper.GetStringSlice("SERVER_ALLOWED_ORIGINS"),
			},
			Store: StoreConfig{
				Backend:       viper.GetString("STORE_BACKEND"),
				Dir:           viper.GetString("STORE_DIR"),
				RedisURL:      viper.GetString("STORE_REDIS_URL"),
				RedisHost:     viper.GetString("STORE_REDIS_HOST"),
				RedisPort:     viper.GetString("STORE_REDIS_PORT"),
				RedisPassword: viper.GetString("STORE_REDIS_PASSWORD"),
				RedisDB:       viper.GetInt("STORE_REDIS_DB"),
			},
			Analysis: AnalysisConfig{
				BaseURL:           viper.GetString("ANALYSIS_BASE_URL"),
				APIKey:            viper.GetString("ANALYSIS_API_KEY"),
				TimeoutSeconds:    viper.GetInt("ANALYSIS_TIMEOUT_SECONDS"),
				RetryDelaySeconds: viper.GetInt("ANALYSIS_RETRY_DELAY_SECONDS"),
				DebounceMillis:    viper.GetInt("ANALYSIS_DEBOUNCE_MILLIS"),
			},
			Export: ExportConfig{
				OutputDir:     viper.GetString("EXPORT_OUTPUT_DIR"),
				ProductTitle:  viper.GetString("EXPORT_PRODUCT_TITLE"),
				WatermarkText: viper.GetString("EXPORT_WATERMARK_TEXT"),
			},
			Archive: ArchiveConfig{
				Enabled:   viper.GetBool("ARCHIVE_ENABLED"),
				Endpoint:  viper.GetString("ARCHIVE_ENDPOINT"),
				AccessKey: viper.GetString("ARCHIVE_ACCESS_KEY"),
				SecretKey: viper.GetString("ARCHIVE_SECRET_KEY"),
				Bucket:    viper.GetString("ARCHIVE_BUCKET"),
				Region:    viper.GetString("ARCHIVE_REGION"),
				UseSSL:    viper.GetBool("ARCHIVE_USE_SSL"),
			},
			Log: LogConfig{
				Level:  viper.GetString("LOG_LEVEL"),
				Format: viper.GetString("LOG_FORMAT"),
			},
		}
	})

	return instance
}

func ensureDir(dir string) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Failed to create directory %s: %v", dir, err)
		}
	}
}
