package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

var (
	APP_ENV     string
	APP_PORT    string
	MAIN_ROUTES string
	NodeID      int64

	JWTSecret     string
	JWTExpiration int

	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSeed     bool

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	MailFrom     string
	MailReplyTo  string

	OAuthTokenURL     string
	OAuthClientID     string
	OAuthClientSecret string
	OAuthPublicKey    string

	LogLevel string

	allowedOrigins map[string]bool
)

// LoadConfig membaca file .env dan menginisialisasi variabel konfigurasi
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg(".env file not found, using system environment variables")
	}

	// Server
	APP_ENV = getEnv("APP_ENV", "local")
	APP_PORT = getEnv("APP_PORT", "9000")
	MAIN_ROUTES = getEnv("MAIN_ROUTES", "/v1")
	NodeID = int64(getEnvAsInt("APP_NODE_ID", 1))

	// JWT lokal, dipakai selain production
	JWTSecret = getEnv("JWT_SECRET", "")
	JWTExpiration = getEnvAsInt("JWT_EXPIRATION", 604800)

	// Database
	DBDriver = getEnv("DB_DRIVER", "mysql")
	DBHost = getEnv("DB_HOST", "localhost")
	DBPort = getEnv("DB_PORT", "3306")
	DBUser = getEnv("DB_USER", "root")
	DBPassword = getEnv("DB_PASSWORD", "")
	DBName = getEnv("DB_NAME", "inventory")
	DBSeed = getEnvAsBool("DB_SEED", false)

	// Mail
	SMTPHost = getEnv("SMTP_HOST", "localhost")
	SMTPPort = getEnvAsInt("SMTP_PORT", 1025)
	SMTPUsername = getEnv("SMTP_USERNAME", "")
	SMTPPassword = getEnv("SMTP_PASSWORD", "")
	MailFrom = getEnv("MAIL_FROM", "no-reply@inventory.local")
	MailReplyTo = getEnv("MAIL_REPLY_TO", "")

	// OAuth password grant, dipakai di production
	OAuthTokenURL = getEnv("OAUTH_TOKEN_URL", "")
	OAuthClientID = getEnv("OAUTH_CLIENT_ID", "")
	OAuthClientSecret = getEnv("OAUTH_CLIENT_SECRET", "")
	OAuthPublicKey = getEnv("OAUTH_PUBLIC_KEY", "")

	LogLevel = getEnv("LOG_LEVEL", "info")

	loadAllowedOrigins()
}

// IsProduction reports whether tokens come from the OAuth password grant.
func IsProduction() bool {
	return APP_ENV == "production"
}

// getEnv membaca environment variable dengan nilai default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// loadAllowedOrigins memuat daftar origin yang diizinkan dari environment variable
func loadAllowedOrigins() {
	allowedOrigins = make(map[string]bool)
	originsStr := getEnv("ALLOWED_ORIGINS", "")

	if originsStr == "" {
		allowedOrigins = map[string]bool{
			"http://127.0.0.1:3000": true,
			"http://localhost:3000": true,
		}
		return
	}

	for _, origin := range strings.Split(originsStr, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			allowedOrigins[origin] = true
		}
	}
}

// SetupCORS echoes back allowed origins and short-circuits preflight requests.
func SetupCORS(app *fiber.App) {
	app.Use(func(c *fiber.Ctx) error {
		origin := c.Get("Origin")
		if allowedOrigins[origin] {
			c.Set("Access-Control-Allow-Origin", origin)
			c.Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
			c.Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization, X-Request-ID")
			c.Set("Access-Control-Allow-Credentials", "true")
		}

		// Handle preflight request
		if c.Method() == fiber.MethodOptions {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.Next()
	})
}
