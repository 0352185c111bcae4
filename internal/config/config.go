package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config holds everything read from the environment at boot.
type Config struct {
	Addr   string
	DBPath string
	AppEnv string

	// CORSOrigins is the allow-list for the public JSON API; the static
	// marketing site lives on a different origin than this backend.
	CORSOrigins []string

	AdminUsername     string
	AdminPasswordHash string // bcrypt
}

// Load reads configuration from the environment, with .env support for
// local development. The admin credential is always stored as a bcrypt
// hash: ADMIN_PASSWORD_HASH wins, otherwise a plaintext ADMIN_PASSWORD is
// hashed at boot so nothing downstream ever compares plaintext.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{
		Addr:              getEnv("ADDR", ":8080"),
		DBPath:            getEnv("DB_PATH", "opticode.db"),
		AppEnv:            getEnv("APP_ENV", "development"),
		CORSOrigins:       splitCSV(getEnv("CORS_ORIGINS", "*")),
		AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}
	if cfg.AdminPasswordHash == "" {
		plain := getEnv("ADMIN_PASSWORD", "opticode2025")
		hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		cfg.AdminPasswordHash = string(hash)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DBPath == "" {
		return errors.New("config: DB_PATH is required")
	}
	if c.AppEnv == "production" && os.Getenv("ADMIN_PASSWORD_HASH") == "" && os.Getenv("ADMIN_PASSWORD") == "" {
		return errors.New("config: in production set ADMIN_PASSWORD_HASH or ADMIN_PASSWORD")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitCSV(s string) []string {
	var out []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
