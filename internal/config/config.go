package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Store      StoreConfig      `yaml:"store"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Moderation ModerationConfig `yaml:"moderation"`
	AI         AIConfig         `yaml:"ai"`
	Storage    StorageConfig    `yaml:"storage"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// StoreConfig selects the record store backend.
type StoreConfig struct {
	Driver string `yaml:"driver" env:"STORE_DRIVER" env-default:"memory"`
	// SkipSeed disables loading the embedded sample catalog on startup.
	SkipSeed bool `yaml:"skip_seed" env:"STORE_SKIP_SEED"`
}

// DatabaseConfig holds PostgreSQL connection settings. Only used when store.driver is "postgres".
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	SkipAutoMigrate bool          `yaml:"skip_auto_migrate"  env:"DATABASE_SKIP_AUTO_MIGRATE"`
}

// AuthConfig holds session token and password settings.
type AuthConfig struct {
	TokenSecret      string        `yaml:"token_secret"       env:"AUTH_TOKEN_SECRET"       env-required:"true"`
	TokenIssuer      string        `yaml:"token_issuer"       env:"AUTH_TOKEN_ISSUER"       env-default:"memoriaviva"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"12h"`
	VerifyPasswords  bool          `yaml:"verify_passwords"   env:"AUTH_VERIFY_PASSWORDS"   env-default:"false"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"10"`
}

// ModerationConfig holds moderation workflow policy.
type ModerationConfig struct {
	// StrictApproval restricts story and contribution approval to admins and curators.
	StrictApproval          bool   `yaml:"strict_approval"           env:"MODERATION_STRICT_APPROVAL"           env-default:"false"`
	FeaturedStoryID         string `yaml:"featured_story_id"         env:"MODERATION_FEATURED_STORY_ID"         env-default:"h3"`
	PreviouslyFeaturedLimit int    `yaml:"previously_featured_limit" env:"MODERATION_PREVIOUSLY_FEATURED_LIMIT" env-default:"3"`
}

// AIConfig holds settings for the chat, vision and speech collaborators.
// An empty API key disables the corresponding provider.
type AIConfig struct {
	AnthropicAPIKey   string        `yaml:"anthropic_api_key"  env:"AI_ANTHROPIC_API_KEY"`
	AnthropicBaseURL  string        `yaml:"anthropic_base_url" env:"AI_ANTHROPIC_BASE_URL"`
	ChatModel         string        `yaml:"chat_model"         env:"AI_CHAT_MODEL"         env-default:"claude-3-5-haiku-latest"`
	VisionModel       string        `yaml:"vision_model"       env:"AI_VISION_MODEL"       env-default:"claude-3-5-sonnet-latest"`
	ChatTemperature   float64       `yaml:"chat_temperature"   env:"AI_CHAT_TEMPERATURE"   env-default:"0.5"`
	VisionTemperature float64       `yaml:"vision_temperature" env:"AI_VISION_TEMPERATURE" env-default:"0.4"`
	MaxTokens         int64         `yaml:"max_tokens"         env:"AI_MAX_TOKENS"         env-default:"1024"`
	OpenAIAPIKey      string        `yaml:"openai_api_key"     env:"AI_OPENAI_API_KEY"`
	OpenAIBaseURL     string        `yaml:"openai_base_url"    env:"AI_OPENAI_BASE_URL"`
	SpeechModel       string        `yaml:"speech_model"       env:"AI_SPEECH_MODEL"       env-default:"tts-1"`
	SpeechVoice       string        `yaml:"speech_voice"       env:"AI_SPEECH_VOICE"       env-default:"onyx"`
	RequestTimeout    time.Duration `yaml:"request_timeout"    env:"AI_REQUEST_TIMEOUT"    env-default:"45s"`
}

// ChatEnabled reports whether a chat/vision provider is configured.
func (c AIConfig) ChatEnabled() bool { return c.AnthropicAPIKey != "" }

// SpeechEnabled reports whether a speech provider is configured.
func (c AIConfig) SpeechEnabled() bool { return c.OpenAIAPIKey != "" }

// StorageConfig holds media storage settings.
type StorageConfig struct {
	Type           string `yaml:"type"             env:"STORAGE_TYPE"             env-default:"filesystem"`
	FSRoot         string `yaml:"fs_root"          env:"STORAGE_FS_ROOT"          env-default:"./data/media"`
	PublicBaseURL  string `yaml:"public_base_url"  env:"STORAGE_PUBLIC_BASE_URL"  env-default:"/media"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes" env:"STORAGE_MAX_UPLOAD_BYTES" env-default:"52428800"`

	S3Bucket          string `yaml:"s3_bucket"            env:"STORAGE_S3_BUCKET"`
	S3Region          string `yaml:"s3_region"            env:"STORAGE_S3_REGION"            env-default:"us-east-1"`
	S3Endpoint        string `yaml:"s3_endpoint"          env:"STORAGE_S3_ENDPOINT"`
	S3AccessKeyID     string `yaml:"s3_access_key_id"     env:"STORAGE_S3_ACCESS_KEY_ID"`
	S3SecretAccessKey string `yaml:"s3_secret_access_key" env:"STORAGE_S3_SECRET_ACCESS_KEY"`
	S3UsePathStyle    bool   `yaml:"s3_use_path_style"    env:"STORAGE_S3_USE_PATH_STYLE"    env-default:"false"`
	S3Prefix          string `yaml:"s3_prefix"            env:"STORAGE_S3_PREFIX"            env-default:"media/"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP limits for the AI routes.
type RateLimitConfig struct {
	AssistantPerMinute int           `yaml:"assistant_per_minute" env:"RATE_LIMIT_ASSISTANT_PER_MINUTE" env-default:"20"`
	LoginPerMinute     int           `yaml:"login_per_minute"     env:"RATE_LIMIT_LOGIN_PER_MINUTE"     env-default:"30"`
	CleanupInterval    time.Duration `yaml:"cleanup_interval"     env:"RATE_LIMIT_CLEANUP_INTERVAL"     env-default:"5m"`
}
