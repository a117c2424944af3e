package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/Tmaxpro/RandomGift-Backend/models"
)

type Config struct {
	Port          int
	DatabaseURL   string
	DatabaseType  string
	JWTSecret     string
	PairingMode   string
	PairingPolicy string
}

// ParseFlags validates flags and fills in environment fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("randomgift", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", "", "JWT signing secret (prefer env)")

	// Pairing strategy
	fs.StringVar(&cfg.PairingMode, "mode", "", "Pairing mode (symmetric or bipartite)")
	fs.StringVar(&cfg.PairingPolicy, "policy", "", "Bipartite policy (strict or best-effort)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 5000 // default
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unknown database type %q (want sqlite or postgres)", cfg.DatabaseType)
	}

	// Secrets - MUST be provided
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = os.Getenv("JWT_SECRET")
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET required")
	}

	// Pairing strategy defaults
	if cfg.PairingMode == "" {
		cfg.PairingMode = os.Getenv("PAIRING_MODE")
		if cfg.PairingMode == "" {
			cfg.PairingMode = models.ModeSymmetric
		}
	}
	if cfg.PairingMode != models.ModeSymmetric && cfg.PairingMode != models.ModeBipartite {
		return Config{}, fmt.Errorf("unknown pairing mode %q (want symmetric or bipartite)", cfg.PairingMode)
	}

	if cfg.PairingPolicy == "" {
		cfg.PairingPolicy = os.Getenv("PAIRING_POLICY")
		if cfg.PairingPolicy == "" {
			cfg.PairingPolicy = models.PolicyStrict
		}
	}
	if cfg.PairingPolicy != models.PolicyStrict && cfg.PairingPolicy != models.PolicyBestEffort {
		return Config{}, fmt.Errorf("unknown pairing policy %q (want strict or best-effort)", cfg.PairingPolicy)
	}

	return cfg, nil
}
