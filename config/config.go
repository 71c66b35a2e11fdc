package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

type Config struct {
	Server   ServerConfig
	App      AppConfig
	LLM      LLMConfig
	Firebase FirebaseConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000"`
}

type AppConfig struct {
	Environment string `envconfig:"APP_ENV" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	Version     string `envconfig:"APP_VERSION" default:"1.0.0"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"postcraft-gateway"`
}

// LLMConfig selects and parameterises the text generation provider.
// An empty API key for the selected provider disables generation.
type LLMConfig struct {
	Provider        string  `envconfig:"LLM_PROVIDER" default:"gemini"`
	Temperature     float32 `envconfig:"LLM_TEMPERATURE" default:"0.7"`
	MaxOutputTokens int32   `envconfig:"LLM_MAX_OUTPUT_TOKENS" default:"1024"`

	GeminiAPIKey string `envconfig:"GEMINI_API_KEY"`
	GeminiModel  string `envconfig:"GEMINI_MODEL" default:"gemini-1.5-pro"`

	OpenAIAPIKey  string `envconfig:"OPENAI_API_KEY"`
	OpenAIBaseURL string `envconfig:"OPENAI_BASE_URL"`
	OpenAIModel   string `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
}

// APIKey returns the credential of the selected provider.
func (c LLMConfig) APIKey() string {
	if c.Provider == ProviderOpenAI {
		return c.OpenAIAPIKey
	}
	return c.GeminiAPIKey
}

// Model returns the model name of the selected provider.
func (c LLMConfig) Model() string {
	if c.Provider == ProviderOpenAI {
		return c.OpenAIModel
	}
	return c.GeminiModel
}

// FirebaseConfig holds the service-account fields used to reach Firestore.
// Either the individual fields or CredentialsPath may be set; neither is required.
type FirebaseConfig struct {
	ProjectID           string `envconfig:"FIREBASE_PROJECT_ID"`
	PrivateKey          string `envconfig:"FIREBASE_PRIVATE_KEY"`
	PrivateKeyID        string `envconfig:"FIREBASE_PRIVATE_KEY_ID"`
	ClientEmail         string `envconfig:"FIREBASE_CLIENT_EMAIL"`
	ClientID            string `envconfig:"FIREBASE_CLIENT_ID"`
	AuthURI             string `envconfig:"FIREBASE_AUTH_URI" default:"https://accounts.google.com/o/oauth2/auth"`
	TokenURI            string `envconfig:"FIREBASE_TOKEN_URI" default:"https://oauth2.googleapis.com/token"`
	AuthProviderCertURL string `envconfig:"FIREBASE_AUTH_PROVIDER_CERT_URL" default:"https://www.googleapis.com/oauth2/v1/certs"`
	ClientCertURL       string `envconfig:"FIREBASE_CLIENT_CERT_URL"`
	CredentialsPath     string `envconfig:"FIREBASE_CREDENTIALS_PATH"`
	Collection          string `envconfig:"FIREBASE_COLLECTION" default:"projects"`
}

// Configured reports whether enough credential material is present to attempt a connection.
func (c FirebaseConfig) Configured() bool {
	if c.CredentialsPath != "" {
		return true
	}
	return c.ProjectID != "" && c.PrivateKey != "" && c.ClientEmail != ""
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := envconfig.Process("", &cfg.Server); err != nil {
		return nil, fmt.Errorf("server config: %w", err)
	}
	if err := envconfig.Process("", &cfg.App); err != nil {
		return nil, fmt.Errorf("app config: %w", err)
	}
	if err := envconfig.Process("", &cfg.LLM); err != nil {
		return nil, fmt.Errorf("llm config: %w", err)
	}
	if err := envconfig.Process("", &cfg.Firebase); err != nil {
		return nil, fmt.Errorf("firebase config: %w", err)
	}

	cfg.LLM.Provider = strings.ToLower(strings.TrimSpace(cfg.LLM.Provider))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	switch c.LLM.Provider {
	case ProviderGemini, ProviderOpenAI:
	default:
		return fmt.Errorf("LLM_PROVIDER must be %q or %q, got %q", ProviderGemini, ProviderOpenAI, c.LLM.Provider)
	}

	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return fmt.Errorf("LLM_TEMPERATURE must be between 0 and 2")
	}

	if c.LLM.MaxOutputTokens <= 0 {
		return fmt.Errorf("LLM_MAX_OUTPUT_TOKENS must be positive")
	}

	if c.Firebase.Collection == "" {
		return fmt.Errorf("FIREBASE_COLLECTION is required")
	}

	return nil
}
