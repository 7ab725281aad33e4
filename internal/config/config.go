package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
	Origin  string `yaml:"origin"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	ActivationSecret string `yaml:"activation_secret"`
	AccessSecret     string `yaml:"access_secret"`
	RefreshSecret    string `yaml:"refresh_secret"`
	ActivationTTL    string `yaml:"activation_ttl"`
	AccessTTL        string `yaml:"access_ttl"`
	RefreshTTL       string `yaml:"refresh_ttl"`
}

type ActivationConfig struct {
	ResendWindow string `yaml:"resend_window"`
	MaxAttempts  int    `yaml:"max_attempts"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	From     string `yaml:"from"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type S3Config struct {
	Region        string `yaml:"region"`
	Bucket        string `yaml:"bucket"`
	Endpoint      string `yaml:"endpoint"`
	PublicBaseURL string `yaml:"public_base_url"`
	AccessKey     string `yaml:"access_key"`
	SecretKey     string `yaml:"secret_key"`
}

type ConfigFile struct {
	App        AppConfig        `yaml:"app"`
	Database   DatabaseConfig   `yaml:"database"`
	Redis      RedisConfig      `yaml:"redis"`
	JWT        JWTConfig        `yaml:"jwt"`
	Activation ActivationConfig `yaml:"activation"`
	SMTP       SMTPConfig       `yaml:"smtp"`
	S3         S3Config         `yaml:"s3"`
}

type Config struct {
	Port    string
	GinMode string
	Origin  string

	DSN string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	ActivationSecret string
	AccessSecret     string
	RefreshSecret    string
	ActivationTTL    time.Duration
	AccessTTL        time.Duration
	RefreshTTL       time.Duration

	ActivationResendWindow time.Duration
	ActivationMaxAttempts  int

	SMTPHost     string
	SMTPPort     int
	SMTPFrom     string
	SMTPUsername string
	SMTPPassword string

	S3Region        string
	S3Bucket        string
	S3Endpoint      string
	S3PublicBaseURL string
	S3AccessKey     string
	S3SecretKey     string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads config/config.yml and applies environment overrides for
// secrets and connection strings.
func Load() (*Config, error) {
	configFile, err := loadConfigFile(env("CONFIG_PATH", "config/config.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	actTTL, err := time.ParseDuration(configFile.JWT.ActivationTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid activation TTL: %w", err)
	}

	accTTL, err := time.ParseDuration(configFile.JWT.AccessTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid access TTL: %w", err)
	}

	refTTL, err := time.ParseDuration(configFile.JWT.RefreshTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh TTL: %w", err)
	}

	if accTTL >= refTTL {
		return nil, fmt.Errorf("access TTL %v must be shorter than refresh TTL %v", accTTL, refTTL)
	}

	resWnd, err := time.ParseDuration(configFile.Activation.ResendWindow)
	if err != nil {
		return nil, fmt.Errorf("invalid activation resend window: %w", err)
	}

	return &Config{
		Port:    fmt.Sprintf("%d", configFile.App.Port),
		GinMode: configFile.App.GinMode,
		Origin:  configFile.App.Origin,

		DSN: env("DB_DSN", configFile.Database.DSN),

		RedisAddr:     env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword: env("REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:       configFile.Redis.DB,

		ActivationSecret: env("ACTIVATION_SECRET", configFile.JWT.ActivationSecret),
		AccessSecret:     env("ACCESS_TOKEN_SECRET", configFile.JWT.AccessSecret),
		RefreshSecret:    env("REFRESH_TOKEN_SECRET", configFile.JWT.RefreshSecret),
		ActivationTTL:    actTTL,
		AccessTTL:        accTTL,
		RefreshTTL:       refTTL,

		ActivationResendWindow: resWnd,
		ActivationMaxAttempts:  configFile.Activation.MaxAttempts,

		SMTPHost:     env("SMTP_HOST", configFile.SMTP.Host),
		SMTPPort:     configFile.SMTP.Port,
		SMTPFrom:     env("SMTP_FROM", configFile.SMTP.From),
		SMTPUsername: env("SMTP_USERNAME", configFile.SMTP.Username),
		SMTPPassword: env("SMTP_PASSWORD", configFile.SMTP.Password),

		S3Region:        configFile.S3.Region,
		S3Bucket:        env("S3_BUCKET", configFile.S3.Bucket),
		S3Endpoint:      env("S3_ENDPOINT", configFile.S3.Endpoint),
		S3PublicBaseURL: configFile.S3.PublicBaseURL,
		S3AccessKey:     env("S3_ACCESS_KEY", configFile.S3.AccessKey),
		S3SecretKey:     env("S3_SECRET_KEY", configFile.S3.SecretKey),
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
