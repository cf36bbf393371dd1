// Package config also owns the credentials read from the process environment.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Required environment variable names.
const (
	EnvJupiterAPIKey = "JUPITER_API_KEY"
	EnvXAIAPIKey     = "XAI_API_KEY"
	EnvPrivateKey    = "SOLANA_PRIVATE_KEY"
)

// Secrets carries the credentials every run requires.
type Secrets struct {
	JupiterAPIKey    string
	XAIAPIKey        string
	PrivateKeyBase58 string
}

// LoadSecrets reads the required environment variables. Rather than failing on
// the first absent variable it collects every missing name, so one run tells
// the operator the whole batch; an empty slice means all secrets are present.
func LoadSecrets() (Secrets, []string) {
	_ = godotenv.Load() // best-effort

	s := Secrets{
		JupiterAPIKey:    os.Getenv(EnvJupiterAPIKey),
		XAIAPIKey:        os.Getenv(EnvXAIAPIKey),
		PrivateKeyBase58: os.Getenv(EnvPrivateKey),
	}

	var missing []string
	if s.JupiterAPIKey == "" {
		missing = append(missing, EnvJupiterAPIKey)
	}
	if s.XAIAPIKey == "" {
		missing = append(missing, EnvXAIAPIKey)
	}
	if s.PrivateKeyBase58 == "" {
		missing = append(missing, EnvPrivateKey)
	}
	return s, missing
}
