package auth

import (
	"fmt"
	"time"

	"onboarding-backend/internal/config"
)

const defaultIssuer = "onboarding-backend"

// AuthConfig holds the operator token configuration
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
	APIKey    string
	Issuer    string
}

// NewAuthConfig derives the auth configuration from the application config
func NewAuthConfig(cfg *config.Config) *AuthConfig {
	return &AuthConfig{
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  cfg.JWTTokenTTL,
		APIKey:    cfg.AdminAPIKey,
		Issuer:    defaultIssuer,
	}
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.APIKey == "" {
		return fmt.Errorf("admin API key is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token TTL must be positive")
	}
	if c.Issuer == "" {
		c.Issuer = defaultIssuer
	}
	return nil
}
