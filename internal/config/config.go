package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"     validate:"required"`
	LLM        LLMConfig        `mapstructure:"llm"        validate:"required"`
	Generation GenerationConfig `mapstructure:"generation" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// LLMConfig contains all LLM integration related settings. An empty
// GeminiAPIKey is legal and means no external term provider is configured;
// generation then falls back to cycling the user's own terms.
type LLMConfig struct {
	GeminiAPIKey       string `mapstructure:"gemini_api_key"`
	ModelName          string `mapstructure:"model_name"           validate:"required"`
	PromptTemplatePath string `mapstructure:"prompt_template_path" validate:"required"`
	MaxRetries         int    `mapstructure:"max_retries"          validate:"gte=0"`
	RetryDelaySeconds  int    `mapstructure:"retry_delay_seconds"  validate:"gte=1"`
}

// GenerationConfig bounds what a single deck request may ask for.
type GenerationConfig struct {
	MaxCardCount    int `mapstructure:"max_card_count"    validate:"gte=1"`
	MaxTermsPerCard int `mapstructure:"max_terms_per_card" validate:"gte=1"`
}
