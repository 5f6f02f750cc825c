package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App      AppConfig      `yaml:"app"`
	Server   ServerConfig   `yaml:"server"`
	Upload   UploadConfig   `yaml:"upload"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Media    MediaConfig    `yaml:"media"`
	Auth     AuthConfig     `yaml:"auth"`
}

type AppConfig struct {
	Env string `yaml:"env"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
	Host string `yaml:"host"`
}

type UploadConfig struct {
	MaxVideoSize int64  `yaml:"max_video_size"` // bytes
	MaxImageSize int64  `yaml:"max_image_size"` // bytes
	VideoFolder  string `yaml:"video_folder"`
	ImageFolder  string `yaml:"image_folder"`
}

type DatabaseConfig struct {
	Driver        string `yaml:"driver"` // postgres | sqlite
	URL           string `yaml:"url"`
	Host          string `yaml:"host"`
	Port          string `yaml:"port"`
	User          string `yaml:"user"`
	Password      string `yaml:"password"`
	DBName        string `yaml:"dbname"`
	SSLMode       string `yaml:"sslmode"`
	SQLitePath    string `yaml:"sqlite_path"`
	AutoMigration bool   `yaml:"auto_migration"`
}

type RedisConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Password string `yaml:"password"`
}

type MediaConfig struct {
	Backend   string `yaml:"backend"` // cloudinary | s3
	CloudName string `yaml:"cloud_name"`
	APIKey    string `yaml:"api_key"`
	APISecret string `yaml:"api_secret"`
	S3Bucket  string `yaml:"s3_bucket"`
	S3Region  string `yaml:"s3_region"`
}

type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret"`
	Issuer    string `yaml:"issuer"`
	JWKSURL   string `yaml:"jwks_url"`
	Audience  string `yaml:"audience"`
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	BackendCloudinary = "cloudinary"
	BackendS3         = "s3"
)

func Default() *Config {
	return &Config{
		App: AppConfig{Env: "production"},
		Server: ServerConfig{
			Port: "3000",
			Host: "0.0.0.0",
		},
		Upload: UploadConfig{
			MaxVideoSize: 70 * 1024 * 1024, // 70MB
			MaxImageSize: 10 * 1024 * 1024, // 10MB
			VideoFolder:  "video-uploads",
			ImageFolder:  "social-share",
		},
		Database: DatabaseConfig{
			Driver:     DriverPostgres,
			Host:       "localhost",
			Port:       "5432",
			User:       "postgres",
			DBName:     "media_gallery",
			SSLMode:    "disable",
			SQLitePath: "media_gallery.db",
		},
		Redis: RedisConfig{Port: "6379"},
		Media: MediaConfig{Backend: BackendCloudinary},
	}
}

// LoadConfig builds the configuration from defaults, then the YAML file named
// by CONFIG_FILE (if any), then environment variables.
func LoadConfig() (*Config, error) {
	config := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := config.mergeFile(path); err != nil {
			return nil, err
		}
	}
	config.applyEnv()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config file okunamadı: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config file parse edilemedi: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.App.Env = getEnv("APP_ENV", c.App.Env)

	c.Server.Port = getEnv("SERVER_PORT", c.Server.Port)
	c.Server.Host = getEnv("SERVER_HOST", c.Server.Host)

	c.Upload.MaxVideoSize = getEnvAsInt64("UPLOAD_MAX_VIDEO_SIZE", c.Upload.MaxVideoSize)
	c.Upload.MaxImageSize = getEnvAsInt64("UPLOAD_MAX_IMAGE_SIZE", c.Upload.MaxImageSize)
	c.Upload.VideoFolder = getEnv("UPLOAD_VIDEO_FOLDER", c.Upload.VideoFolder)
	c.Upload.ImageFolder = getEnv("UPLOAD_IMAGE_FOLDER", c.Upload.ImageFolder)

	c.Database.Driver = strings.ToLower(getEnv("DB_DRIVER", c.Database.Driver))
	c.Database.URL = getEnv("DB_URL", c.Database.URL)
	c.Database.Host = getEnv("DB_HOST", c.Database.Host)
	c.Database.Port = getEnv("DB_PORT", c.Database.Port)
	c.Database.User = getEnv("DB_USER", c.Database.User)
	c.Database.Password = getEnv("DB_PASSWORD", c.Database.Password)
	c.Database.DBName = getEnv("DB_NAME", c.Database.DBName)
	c.Database.SSLMode = getEnv("DB_SSLMODE", c.Database.SSLMode)
	c.Database.SQLitePath = getEnv("DB_SQLITE_PATH", c.Database.SQLitePath)
	c.Database.AutoMigration = getEnvAsBool("RUN_AUTO_MIGRATION", c.Database.AutoMigration)

	c.Redis.Host = getEnv("REDIS_HOST", c.Redis.Host)
	c.Redis.Port = getEnv("REDIS_PORT", c.Redis.Port)
	c.Redis.Password = getEnv("REDIS_PASSWORD", c.Redis.Password)

	c.Media.Backend = strings.ToLower(getEnv("MEDIA_BACKEND", c.Media.Backend))
	c.Media.CloudName = getEnv("CLOUDINARY_CLOUD_NAME", c.Media.CloudName)
	c.Media.APIKey = getEnv("CLOUDINARY_API_KEY", c.Media.APIKey)
	c.Media.APISecret = getEnv("CLOUDINARY_API_SECRET", c.Media.APISecret)
	c.Media.S3Bucket = getEnv("S3_BUCKET", c.Media.S3Bucket)
	c.Media.S3Region = getEnv("S3_REGION", c.Media.S3Region)

	c.Auth.JWTSecret = getEnv("AUTH_JWT_SECRET", c.Auth.JWTSecret)
	c.Auth.Issuer = getEnv("AUTH_ISSUER", c.Auth.Issuer)
	c.Auth.JWKSURL = getEnv("AUTH_JWKS_URL", c.Auth.JWKSURL)
	c.Auth.Audience = getEnv("AUTH_AUDIENCE", c.Auth.Audience)
}

// Validate rejects settings the process cannot start with. Missing media
// credentials are deliberately not checked here: they surface per request.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unknown DB_DRIVER %q", c.Database.Driver)
	}
	switch c.Media.Backend {
	case BackendCloudinary, BackendS3:
	default:
		return fmt.Errorf("unknown MEDIA_BACKEND %q", c.Media.Backend)
	}
	if c.Upload.MaxVideoSize <= 0 || c.Upload.MaxImageSize <= 0 {
		return fmt.Errorf("upload size limits must be positive")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Addr is empty when redis is not configured.
func (r RedisConfig) Addr() string {
	if r.Host == "" {
		return ""
	}
	return fmt.Sprintf("%s:%s", r.Host, r.Port)
}

func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

// FindProjectRoot walks up from the working directory to the go.mod.
func FindProjectRoot() (string, error) {
	current, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(current, "go.mod")); err == nil {
			return current, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			// root'a ulaştık, go.mod bulunamadı
			return os.Getwd()
		}
		current = parent
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
