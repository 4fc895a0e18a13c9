package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	AppName     string `mapstructure:"APP_NAME"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret      string        `mapstructure:"JWT_SECRET"`
	JWTTokenTTL    time.Duration `mapstructure:"JWT_TOKEN_TTL"`
	AdminAPIKey    string        `mapstructure:"ADMIN_API_KEY"`
	AllowedOrigins []string      `mapstructure:"ALLOWED_ORIGINS"`

	// Onboarding targets
	BaseDomain   string `mapstructure:"BASE_DOMAIN"`
	ServerIP     string `mapstructure:"SERVER_IP"`
	HostedZoneID string `mapstructure:"HOSTED_ZONE_ID"`

	// AWS configuration (Route53 + S3)
	AWSRegion          string `mapstructure:"AWS_REGION"`
	AWSAccessKeyID     string `mapstructure:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `mapstructure:"AWS_SECRET_ACCESS_KEY"`
	AWSEndpoint        string `mapstructure:"AWS_ENDPOINT"`
	S3Bucket           string `mapstructure:"S3_BUCKET"`

	// DNS propagation heuristic applied after every TXT change
	DNSPropagationDelay time.Duration `mapstructure:"DNS_PROPAGATION_DELAY"`

	// ACME configuration
	ACMEDirectoryURL          string        `mapstructure:"ACME_DIRECTORY_URL"`
	ACMEContactEmail          string        `mapstructure:"ACME_CONTACT_EMAIL"`
	ACMEChallengeAttempts     int           `mapstructure:"ACME_CHALLENGE_ATTEMPTS"`
	ACMEChallengeInterval     time.Duration `mapstructure:"ACME_CHALLENGE_INTERVAL"`
	ACMEOrderAttempts         int           `mapstructure:"ACME_ORDER_ATTEMPTS"`
	ACMEOrderInterval         time.Duration `mapstructure:"ACME_ORDER_INTERVAL"`
	CertificateRecoveryRepeat int           `mapstructure:"CERTIFICATE_RECOVERY_REPEAT"`
	TempDir                   string        `mapstructure:"TEMP_DIR"`

	// Kubernetes configuration
	K8sBasePath            string `mapstructure:"K8S_BASE_PATH"`
	K8sToken               string `mapstructure:"K8S_TOKEN"`
	K8sInsecureSkipVerify  bool   `mapstructure:"K8S_INSECURE_SKIP_VERIFY"`
	K8sNamespace           string `mapstructure:"K8S_NAMESPACE"`
	K8sServiceName         string `mapstructure:"K8S_SERVICE_NAME"`
	K8sIngressTemplatePath string `mapstructure:"K8S_INGRESS_TEMPLATE_PATH"`

	// Signer and PCM (credential issuance) configuration
	SignerHost                    string        `mapstructure:"SIGNER_HOST"`
	SignerTimeout                 time.Duration `mapstructure:"SIGNER_TIMEOUT"`
	PCMHost                       string        `mapstructure:"PCM_HOST"`
	PCMMembershipCredentialDefID  string        `mapstructure:"PCM_MEMBERSHIP_CREDENTIAL_DEFINITION_ID"`
	PCMParticipantCredentialDefID string        `mapstructure:"PCM_PARTICIPANT_CREDENTIAL_DEFINITION_ID"`
	PresignedKeyURLTTL            time.Duration `mapstructure:"PRESIGNED_KEY_URL_TTL"`

	// Scheduler configuration
	SchedulerPollInterval   time.Duration `mapstructure:"SCHEDULER_POLL_INTERVAL"`
	SchedulerWorkers        int           `mapstructure:"SCHEDULER_WORKERS"`
	SchedulerBatchSize      int           `mapstructure:"SCHEDULER_BATCH_SIZE"`
	SchedulerLeaseDuration  time.Duration `mapstructure:"SCHEDULER_LEASE_DURATION"`
	SchedulerInitialDelay   time.Duration `mapstructure:"SCHEDULER_INITIAL_DELAY"`
	SchedulerRepeatInterval time.Duration `mapstructure:"SCHEDULER_REPEAT_INTERVAL"`
	RedisAddr               string        `mapstructure:"REDIS_ADDR"`
	RedisPassword           string        `mapstructure:"REDIS_PASSWORD"`

	// Tracing
	OTelEndpoint string `mapstructure:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Set default values
	setDefaults(v)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("APP_NAME", "Onboarding Portal")

	// Database defaults
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "onboarding")
	v.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	v.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")
	v.SetDefault("JWT_TOKEN_TTL", time.Hour)
	v.SetDefault("ADMIN_API_KEY", "")
	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})

	v.SetDefault("BASE_DOMAIN", "example.com")
	v.SetDefault("SERVER_IP", "127.0.0.1")
	v.SetDefault("HOSTED_ZONE_ID", "")

	v.SetDefault("AWS_REGION", "eu-central-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "")
	v.SetDefault("AWS_ENDPOINT", "")
	v.SetDefault("S3_BUCKET", "onboarding")
	v.SetDefault("DNS_PROPAGATION_DELAY", 10*time.Second)

	// ACME defaults
	v.SetDefault("ACME_DIRECTORY_URL", "https://acme-staging-v02.api.letsencrypt.org/directory")
	v.SetDefault("ACME_CONTACT_EMAIL", "")
	v.SetDefault("ACME_CHALLENGE_ATTEMPTS", 6)
	v.SetDefault("ACME_CHALLENGE_INTERVAL", 30*time.Second)
	v.SetDefault("ACME_ORDER_ATTEMPTS", 10)
	v.SetDefault("ACME_ORDER_INTERVAL", 6*time.Second)
	v.SetDefault("CERTIFICATE_RECOVERY_REPEAT", 3)
	v.SetDefault("TEMP_DIR", "/tmp")

	// Kubernetes defaults
	v.SetDefault("K8S_BASE_PATH", "")
	v.SetDefault("K8S_TOKEN", "")
	v.SetDefault("K8S_INSECURE_SKIP_VERIFY", false)
	v.SetDefault("K8S_NAMESPACE", "default")
	v.SetDefault("K8S_SERVICE_NAME", "participant-portal")
	v.SetDefault("K8S_INGRESS_TEMPLATE_PATH", "")

	v.SetDefault("SIGNER_HOST", "http://localhost:8081")
	v.SetDefault("SIGNER_TIMEOUT", 60*time.Second)
	v.SetDefault("PCM_HOST", "http://localhost:8082")
	v.SetDefault("PCM_MEMBERSHIP_CREDENTIAL_DEFINITION_ID", "")
	v.SetDefault("PCM_PARTICIPANT_CREDENTIAL_DEFINITION_ID", "")
	v.SetDefault("PRESIGNED_KEY_URL_TTL", 20*time.Second)

	// Scheduler defaults
	v.SetDefault("SCHEDULER_POLL_INTERVAL", time.Second)
	v.SetDefault("SCHEDULER_WORKERS", 8)
	v.SetDefault("SCHEDULER_BATCH_SIZE", 16)
	v.SetDefault("SCHEDULER_LEASE_DURATION", 10*time.Minute)
	v.SetDefault("SCHEDULER_INITIAL_DELAY", 10*time.Second)
	v.SetDefault("SCHEDULER_REPEAT_INTERVAL", 30*time.Second)
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")

	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "")
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if config.HostedZoneID == "" {
			return fmt.Errorf("HOSTED_ZONE_ID must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}
	if config.BaseDomain == "" {
		return fmt.Errorf("base domain is required")
	}
	if config.ACMEChallengeAttempts < 1 || config.ACMEOrderAttempts < 1 {
		return fmt.Errorf("acme polling attempts must be positive")
	}
	if config.SchedulerWorkers < 1 {
		return fmt.Errorf("scheduler workers must be positive")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
