package config

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

const (
	StoreFile  = "file"
	StoreMongo = "mongo"

	SessionMemory = "memory"
	SessionRedis  = "redis"

	AttachmentLocal = "local"
	AttachmentS3    = "s3"
)

type Config struct {
	Port        string `env:"PORT,        default=5000"`
	Env         string `env:"ENV,         default=development"`
	LogLevel    string `env:"LOG_LEVEL,   default=info"`
	CORSOrigins string `env:"CORS_ORIGINS, default=http://localhost:3000;https://nyaysetu-fr.netlify.app"`

	Session    SessionConfig
	Store      StoreConfig
	Mongo      MongoConfig
	Redis      RedisConfig
	Attachment AttachmentConfig
	S3         S3Config
	News       NewsConfig
}

type SessionConfig struct {
	Secret       string        `env:"SESSION_SECRET,  default=dev-secret-nyayasetu"`
	TTL          time.Duration `env:"SESSION_TTL,     default=24h"`
	Driver       string        `env:"SESSION_DRIVER,  default=memory"`
	CookieName   string        `env:"SESSION_COOKIE,  default=nyayasetu.sid"`
	CookieSecure bool          `env:"COOKIE_SECURE,   default=true"`
	SameSite     string        `env:"COOKIE_SAMESITE, default=none"`
}

type StoreConfig struct {
	Driver    string `env:"STORE_DRIVER, default=file"`
	UsersFile string `env:"USERS_FILE,   default=users.json"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=nyayasetu"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

type AttachmentConfig struct {
	Driver        string        `env:"ATTACHMENT_DRIVER,  default=local"`
	UploadsDir    string        `env:"UPLOADS_DIR,        default=uploads"`
	Timeout       time.Duration `env:"ATTACHMENT_TIMEOUT, default=30s"`
	MaxUploadSize string        `env:"MAX_UPLOAD_SIZE,    default=5M"`
}

type S3Config struct {
	Bucket    string `env:"S3_BUCKET"`
	Region    string `env:"S3_REGION,   default=us-east-1"`
	Endpoint  string `env:"S3_ENDPOINT"`
	AccessKey string `env:"S3_ACCESS_KEY"`
	SecretKey string `env:"S3_SECRET_KEY"`
	PublicURL string `env:"S3_PUBLIC_URL"`
}

type NewsConfig struct {
	URL      string        `env:"NEWS_API_URL,  default=https://newsapi.org/v2/top-headlines"`
	APIKey   string        `env:"NEWS_API_KEY"`
	Country  string        `env:"NEWS_COUNTRY,  default=in"`
	Category string        `env:"NEWS_CATEGORY, default=general"`
	Timeout  time.Duration `env:"NEWS_TIMEOUT,  default=10s"`
}

// Load reads a .env file when present, then configuration from environment
// variables using go-envconfig.
func Load() *Config {
	_ = godotenv.Load()

	cfg, err := load(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case StoreFile, StoreMongo:
	default:
		return fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", StoreFile, StoreMongo, c.Store.Driver)
	}
	switch c.Session.Driver {
	case SessionMemory, SessionRedis:
	default:
		return fmt.Errorf("SESSION_DRIVER must be %q or %q, got %q", SessionMemory, SessionRedis, c.Session.Driver)
	}
	switch c.Attachment.Driver {
	case AttachmentLocal:
	case AttachmentS3:
		if c.S3.Bucket == "" {
			return fmt.Errorf("S3_BUCKET is required when ATTACHMENT_DRIVER=%s", AttachmentS3)
		}
	default:
		return fmt.Errorf("ATTACHMENT_DRIVER must be %q or %q, got %q", AttachmentLocal, AttachmentS3, c.Attachment.Driver)
	}
	if c.Session.Secret == "" {
		return fmt.Errorf("SESSION_SECRET must not be empty")
	}
	return nil
}

// IsProduction reports whether ENV is "production".
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// AllowedOrigins splits CORS_ORIGINS on ";".
func (c *Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ";") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// SameSiteMode maps COOKIE_SAMESITE to its http constant; unknown values fall
// back to None so cross-site frontends keep working.
func (c SessionConfig) SameSiteMode() http.SameSite {
	switch strings.ToLower(c.SameSite) {
	case "lax":
		return http.SameSiteLaxMode
	case "strict":
		return http.SameSiteStrictMode
	default:
		return http.SameSiteNoneMode
	}
}
