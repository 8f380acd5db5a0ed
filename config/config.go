package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every runtime setting. It is built once in main and
// passed by reference; nothing else reads the environment.
type Config struct {
	Addr     string `env:"ADDR" envDefault:":3000"`
	DBDriver string `env:"DB_DRIVER" envDefault:"mysql"`
	DSN      string `env:"DSN,required"`

	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"1h"`

	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`

	// SignupAdmin controls the isAdmin flag on new accounts. The
	// historical default is true; deployers must set SIGNUP_ADMIN=false
	// to stop granting it.
	SignupAdmin bool `env:"SIGNUP_ADMIN" envDefault:"true"`

	CORSOrigin string `env:"CORS_ORIGIN" envDefault:"*"`
}

// Load reads an optional .env file and parses the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
