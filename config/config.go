package config

import (
	"labisco_server/structs"
	"sync"
	"time"
)

var (
	configInstance *structs.Config
	configOnce     sync.Once
)

func GetConfig() *structs.Config {
	configOnce.Do(func() {
		configInstance = &structs.Config{
			Server: &structs.ServerConfig{
				AppName:         getEnvAsString("APP_NAME", "Labisco_Admin_no_env"),
				Environment:     getEnvAsString("APP_ENV", "development"),
				Port:            getEnvAsString("APP_PORT", ":8082"),
				ReadTimeout:     getEnvAsTimeDuration("SERVER_READ_TIME_OUT", 15*time.Second),
				WriteTimeout:    getEnvAsTimeDuration("SERVER_WRITE_TIME_OUT", 15*time.Second),
				IdleTimeout:     getEnvAsTimeDuration("SERVER_IDLE_TIME_OUT", 60*time.Second),
				ShutdownTimeout: getEnvAsTimeDuration("SERVER_SHUTDOWN_TIME_OUT", 10*time.Second),
				MaxHeaderBytes:  getEnvAsInt("SERVER_MAX_HEADER_BYTES", 1<<20), // 1 MB
				MaxBodyBytes:    int64(getEnvAsInt("SERVER_MAX_BODY_BYTES", 20<<20)),
				CookieDomain:    getEnvAsString("COOKIE_DOMAIN", ""),
			},
			Cors: &structs.CorsConfig{
				AllowedOrigins:   getEnvAsSlice("CORS_ALLOW_ORIGINS", []string{"http://localhost:5173", "http://localhost:3000"}),
				AllowedMethods:   getEnvAsSlice("CORS_ALLOW_METHODS", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
				AllowedHeaders:   getEnvAsSlice("CORS_ALLOW_HEADERS", []string{"Origin", "Content-Type", "Accept", "X-CSRF-Token"}),
				AllowCredentials: getEnvAsBool("CORS_ALLOW_CREDENTIALS", true),
				ExposedHeaders:   getEnvAsSlice("CORS_EXPOSED_HEADERS", []string{"Content-Length"}),
				MaxAge:           getEnvAsInt("CORS_MAX_AGE", 300),
			},
			Store: &structs.StoreConfig{
				Driver:      getEnvAsString("STORE_DRIVER", "redis"),
				ProductsKey: getEnvAsString("PRODUCTS_STORAGE_KEY", "labisco_products"),
				DraftTTL:    getEnvAsTimeDuration("DRAFT_TTL", 2*time.Hour),
				Redis: &structs.RedisConfig{
					Address:         getEnvAsString("REDIS_ADDRESS", "localhost:6379"),
					Username:        getEnvAsString("REDIS_USERNAME", ""),
					Password:        getEnvAsString("REDIS_PASSWORD", ""),
					DB:              getEnvAsInt("REDIS_DB", 0),
					PoolSize:        getEnvAsInt("REDIS_POOL_SIZE", 10),
					MinIdleConns:    getEnvAsInt("REDIS_MIN_IDLE_CONNS", 2),
					MaxIdleConns:    getEnvAsInt("REDIS_MAX_IDLE_CONNS", 5),
					PoolTimeout:     getEnvAsTimeDuration("REDIS_POOL_TIMEOUT", 4*time.Second),
					IdleTimeout:     getEnvAsTimeDuration("REDIS_IDLE_TIMEOUT", 5*time.Minute),
					DialTimeout:     getEnvAsTimeDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
					ReadTimeout:     getEnvAsTimeDuration("REDIS_READ_TIMEOUT", 3*time.Second),
					WriteTimeout:    getEnvAsTimeDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
					MaxRetries:      getEnvAsInt("REDIS_MAX_RETRIES", 3),
					MinRetryBackoff: getEnvAsTimeDuration("REDIS_MIN_RETRY_BACKOFF", 8*time.Millisecond),
					MaxRetryBackoff: getEnvAsTimeDuration("REDIS_MAX_RETRY_BACKOFF", 512*time.Millisecond),
				},
				Postgres: &structs.PostgresConfig{
					Host:         getEnvAsString("DB_HOST", "localhost"),
					Port:         getEnvAsInt("DB_PORT", 5432),
					User:         getEnvAsString("DB_USER", "postgres"),
					Password:     getEnvAsString("DB_PASSWORD", "password"),
					Name:         getEnvAsString("DB_NAME", "labisco_db"),
					SSLMode:      getEnvAsBool("DB_SSL", false),
					MaxConns:     getEnvAsInt("DB_MAX_CONNS", 10),
					MaxIdleTime:  getEnvAsTimeDuration("DB_MAX_IDLE_TIME", 5*time.Minute),
					ReadTimeout:  getEnvAsTimeDuration("DB_READ_TIMEOUT", 5*time.Second),
					WriteTimeout: getEnvAsTimeDuration("DB_WRITE_TIMEOUT", 5*time.Second),
				},
			},
			Auth: &structs.AuthConfig{
				AdminEmail:        getEnvAsString("ADMIN_EMAIL", "admin@labisco.com"),
				AdminPassword:     getEnvAsString("ADMIN_PASSWORD", "password123"),
				AdminUserID:       getEnvAsString("ADMIN_USER_ID", "admin1"),
				AccessTokenSecret: getEnvAsString("AUTH_ACCESS_TOKEN_SECRET", "default_access_secret"),
				SessionExpiry:     getEnvAsTimeDuration("AUTH_SESSION_EXPIRY", 24*time.Hour),
				LoginDelay:        getEnvAsTimeDuration("AUTH_LOGIN_DELAY", 500*time.Millisecond),
				CSRFEnabled:       getEnvAsBool("CSRF_ENABLED", true),
			},
			RateLimit: &structs.RateLimitConfig{
				Enabled:    getEnvAsBool("RATE_LIMIT_ENABLED", true),
				AuthLimit:  getEnvAsInt("RATE_LIMIT_AUTH_LIMIT", 10),
				AuthWindow: getEnvAsTimeDuration("RATE_LIMIT_AUTH_WINDOW", time.Minute),
			},
			Images: &structs.ImageConfig{
				Driver:         getEnvAsString("IMAGE_STORAGE_DRIVER", "inline"),
				MaxFileBytes:   int64(getEnvAsInt("IMAGE_MAX_FILE_BYTES", 2<<20)),
				MaxFiles:       getEnvAsInt("IMAGE_MAX_FILES", 10),
				LocalDir:       getEnvAsString("LOCAL_UPLOAD_DIR", "./storage/uploads"),
				LocalURLPrefix: getEnvAsString("LOCAL_UPLOAD_URL_PREFIX", "/uploads"),
				S3Region:       getEnvAsString("S3_REGION", ""),
				S3Bucket:       getEnvAsString("S3_BUCKET", ""),
				S3Prefix:       getEnvAsString("S3_PREFIX", "products"),
				S3PublicURL:    getEnvAsString("S3_PUBLIC_BASE_URL", ""),
			},
			Email: &structs.EmailConfig{
				ApiKey:            getEnvAsString("RESEND_API_KEY", ""),
				From:              getEnvAsString("EMAIL_FROM", "Labisco Admin <alerts@labisco.com>"),
				AlertRecipients:   getEnvAsSlice("LOW_STOCK_ALERT_RECIPIENTS", nil),
				LowStockThreshold: getEnvAsInt("LOW_STOCK_THRESHOLD", 5),
			},
			Settings: &structs.SettingsConfig{
				SaveDelay: getEnvAsTimeDuration("SETTINGS_SAVE_DELAY", 1500*time.Millisecond),
			},
		}
	})
	return configInstance
}

func GetLogLevel() string {
	if GetConfig().Server.Environment == "production" {
		return "info"
	}
	return "debug"
}

func IsProduction() bool {
	return GetConfig().Server.Environment == "production"
}
