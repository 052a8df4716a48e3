package config

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

var supportedDrivers = []string{"mysql", "postgres", "mssql"}

// Validate checks that the loaded configuration is usable for the current APP_ENV.
func Validate() error {
	var problems []string

	if !slices.Contains(supportedDrivers, DBDriver) {
		problems = append(problems, fmt.Sprintf("DB_DRIVER %q is not one of %s", DBDriver, strings.Join(supportedDrivers, ", ")))
	}
	if DBHost == "" || DBName == "" {
		problems = append(problems, "DB_HOST and DB_NAME are required")
	}
	if MAIN_ROUTES == "" || !strings.HasPrefix(MAIN_ROUTES, "/") {
		problems = append(problems, "MAIN_ROUTES must start with /")
	}

	if IsProduction() {
		if OAuthTokenURL == "" || OAuthClientID == "" || OAuthClientSecret == "" {
			problems = append(problems, "OAUTH_TOKEN_URL, OAUTH_CLIENT_ID and OAUTH_CLIENT_SECRET are required in production")
		}
		if OAuthPublicKey == "" {
			problems = append(problems, "OAUTH_PUBLIC_KEY is required in production")
		}
	} else {
		if len(JWTSecret) < 16 {
			problems = append(problems, "JWT_SECRET must be at least 16 characters")
		}
		if JWTExpiration <= 0 {
			problems = append(problems, "JWT_EXPIRATION must be positive")
		}
	}

	if SMTPHost == "" || SMTPPort <= 0 {
		problems = append(problems, "SMTP_HOST and SMTP_PORT are required")
	}
	if MailFrom == "" {
		problems = append(problems, "MAIL_FROM is required")
	}

	if len(problems) > 0 {
		return errors.New("invalid configuration: " + strings.Join(problems, "; "))
	}
	return nil
}
