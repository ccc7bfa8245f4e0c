package structs

import "time"

type Config struct {
	Server    *ServerConfig
	Cors      *CorsConfig
	Store     *StoreConfig
	Auth      *AuthConfig
	RateLimit *RateLimitConfig
	Images    *ImageConfig
	Email     *EmailConfig
	Settings  *SettingsConfig
}

type ServerConfig struct {
	AppName         string        // Labisco Admin
	Environment     string        // development, production
	Port            string        // :8082
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	MaxHeaderBytes  int   // in bytes
	MaxBodyBytes    int64 // in bytes
	CookieDomain    string
}

type CorsConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int // in seconds
}

// StoreConfig selects and configures the key-value store backing the catalog and sessions.
type StoreConfig struct {
	Driver      string // redis, postgres, memory
	ProductsKey string
	DraftTTL    time.Duration
	Redis       *RedisConfig
	Postgres    *PostgresConfig
}

type RedisConfig struct {
	Address         string
	Username        string
	Password        string
	DB              int
	PoolSize        int
	MinIdleConns    int
	MaxIdleConns    int
	PoolTimeout     time.Duration
	IdleTimeout     time.Duration
	DialTimeout     time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	MaxRetries      int
	MinRetryBackoff time.Duration
	MaxRetryBackoff time.Duration
}

type PostgresConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      bool
	MaxConns     int
	MaxIdleTime  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type AuthConfig struct {
	AdminEmail        string
	AdminPassword     string
	AdminUserID       string
	AccessTokenSecret string
	SessionExpiry     time.Duration
	LoginDelay        time.Duration
	CSRFEnabled       bool
}

type RateLimitConfig struct {
	Enabled    bool
	AuthLimit  int
	AuthWindow time.Duration
}

type ImageConfig struct {
	Driver         string // inline, local, s3
	MaxFileBytes   int64
	MaxFiles       int
	LocalDir       string
	LocalURLPrefix string
	S3Region       string
	S3Bucket       string
	S3Prefix       string
	S3PublicURL    string
}

type EmailConfig struct {
	ApiKey            string
	From              string
	AlertRecipients   []string
	LowStockThreshold int
}

type SettingsConfig struct {
	SaveDelay time.Duration
}
