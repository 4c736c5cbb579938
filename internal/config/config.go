package config

// Config holds all server configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth" validate:"required"`
	LLM      LLMConfig      `mapstructure:"llm" validate:"required"`
	Image    ImageConfig    `mapstructure:"image"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// AuthConfig holds the secret used to verify identity-provider tokens.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`
}

// LLMConfig contains the Gemini settings. The API key is mandatory.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`
	ModelName    string `mapstructure:"model_name" validate:"required"`
	// BaseURL overrides the Gemini endpoint; empty means the library default.
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`
}

// ImageConfig contains the OpenAI Images settings. An empty APIKey disables
// image generation without preventing startup.
type ImageConfig struct {
	OpenAIAPIKey string `mapstructure:"openai_api_key"`
	Model        string `mapstructure:"model" validate:"required"`
	BaseURL      string `mapstructure:"base_url" validate:"required,url"`
	Size         string `mapstructure:"size" validate:"required"`
}

// Enabled reports whether an image API key has been configured.
func (c ImageConfig) Enabled() bool {
	return c.OpenAIAPIKey != ""
}
