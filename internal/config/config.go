package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Features holds the process-wide backend selection flags.
// It is computed once by Load and never mutated afterwards, so it can be shared freely.
type Features struct {
	RemoteStorage bool `json:"remote_storage"`
	Database      bool `json:"database"`
	Auth          bool `json:"auth"`
}

// StorageConfig holds the locations of the local JSON documents.
type StorageConfig struct {
	DataDir        string
	PatientsFile   string
	FilesFile      string
	TreatmentsFile string
}

// DatabaseConfig holds PostgreSQL database connection settings.
// URL takes precedence over the individual components when set.
type DatabaseConfig struct {
	URL                string
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Configured reports whether enough settings are present to build a client.
func (c MinIOConfig) Configured() bool {
	return c.Endpoint != "" && c.AccessKey != "" && c.SecretKey != "" && c.Bucket != ""
}

// RemoteConfig holds settings for the remote file provider.
type RemoteConfig struct {
	URLExpirySec int
}

// GenAIConfig holds settings for the diagnosis assistant model.
type GenAIConfig struct {
	APIKey string
	Model  string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Port         string
	Timezone     string
	SeedDemoData bool
	Features     Features
	Storage      StorageConfig
	Database     DatabaseConfig
	MinIO        MinIOConfig
	Remote       RemoteConfig
	GenAI        GenAIConfig
}

// Location resolves the configured timezone, falling back to UTC.
func (c *AppConfig) Location() *time.Location {
	if c.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	dataDir := getEnv("DATA_DIR", "data")
	googleClientID := getEnv("GOOGLE_CLIENT_ID", "")
	databaseURL := getEnv("DATABASE_URL", "")

	return &AppConfig{
		Port:         getEnv("PORT", "8080"),
		Timezone:     getEnv("APP_TIMEZONE", "UTC"),
		SeedDemoData: getEnvBool("SEED_DEMO_DATA", false),
		Features: Features{
			// only the literal "true" turns the drive on
			RemoteStorage: getEnv("GOOGLE_DRIVE_ENABLED", "") == "true" && googleClientID != "",
			Database:      databaseURL != "",
			Auth:          googleClientID != "",
		},
		Storage: StorageConfig{
			DataDir:        dataDir,
			PatientsFile:   getEnv("PATIENTS_FILE", filepath.Join(dataDir, "patients.json")),
			FilesFile:      getEnv("FILES_FILE", filepath.Join(dataDir, "files.json")),
			TreatmentsFile: getEnv("TREATMENTS_FILE", filepath.Join(dataDir, "treatments.json")),
		},
		Database: DatabaseConfig{
			URL:                databaseURL,
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Remote: RemoteConfig{
			URLExpirySec: getEnvInt("REMOTE_URL_EXPIRY_SEC", 900),
		},
		GenAI: GenAIConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GENAI_MODEL", "gemini-2.0-flash"),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
