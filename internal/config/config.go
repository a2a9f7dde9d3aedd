package config

import "os"

// Config holds the application configuration
type Config struct {
	// Environment
	Environment string
	Port        string
	BaseURL     string

	// LLM API keys
	GeminiAPIKey string // Google Gemini API key (primary provider)
	OpenAIAPIKey string // OpenAI API key (alternative provider)
	GeminiModel  string // Gemini model used for generation and summarization

	// Content pipeline behavior: when true, an uploaded document fully
	// replaces tokenName/niche as prompt context instead of augmenting them
	DocumentOverridesManualFields bool

	// Database
	DatabaseURL string

	// Auth
	JWTSecret          string
	CookieDomain       string // empty means host-only cookies (local dev)
	GoogleClientID     string
	GoogleClientSecret string
	GitHubClientID     string
	GitHubClientSecret string

	// Mailing list (Brevo)
	BrevoAPIKey string
	BrevoListID string

	// Email (AWS SES)
	AWSRegion string
	EmailFrom string

	// Observability
	SentryDSN         string // Sentry DSN for error tracking
	LangfusePublicKey string // Langfuse public key
	LangfuseSecretKey string // Langfuse secret key
	LangfuseHost      string // Langfuse host URL (cloud or self-hosted)
	LangfuseEnabled   bool   // Feature flag for Langfuse
}

func Load() *Config {
	return &Config{
		Environment:                   getEnv("ENVIRONMENT", "development"),
		Port:                          getEnv("PORT", "8080"),
		BaseURL:                       getEnv("BASE_URL", "http://localhost:8080"),
		GeminiAPIKey:                  getEnv("GEMINI_API_KEY", ""),
		OpenAIAPIKey:                  getEnv("OPENAI_API_KEY", ""),
		GeminiModel:                   getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		DocumentOverridesManualFields: getEnv("DOCUMENT_OVERRIDES_MANUAL_FIELDS", "false") == "true",
		DatabaseURL:                   getEnv("DATABASE_URL", ""),
		JWTSecret:                     getEnv("JWT_SECRET", ""),
		CookieDomain:                  getEnv("COOKIE_DOMAIN", ""),
		GoogleClientID:                getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret:            getEnv("GOOGLE_CLIENT_SECRET", ""),
		GitHubClientID:                getEnv("GITHUB_CLIENT_ID", ""),
		GitHubClientSecret:            getEnv("GITHUB_CLIENT_SECRET", ""),
		BrevoAPIKey:                   getEnv("BREVO_API_KEY", ""),
		BrevoListID:                   getEnv("BREVO_LIST_ID", ""),
		AWSRegion:                     getEnv("AWS_REGION", "us-east-1"),
		EmailFrom:                     getEnv("EMAIL_FROM", ""),
		SentryDSN:                     getEnv("SENTRY_DSN", ""),
		LangfusePublicKey:             getEnv("LANGFUSE_PUBLIC_KEY", ""),
		LangfuseSecretKey:             getEnv("LANGFUSE_SECRET_KEY", ""),
		LangfuseHost:                  getEnv("LANGFUSE_HOST", "https://cloud.langfuse.com"),
		LangfuseEnabled:               getEnv("LANGFUSE_ENABLED", "false") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}
