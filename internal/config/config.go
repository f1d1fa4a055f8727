package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config stores environment-driven settings for the server.
type Config struct {
	// Port is the HTTP listen port.
	Port string `env:"PORT" envDefault:"5000"`
	// OfficialEmail is echoed in every response envelope.
	OfficialEmail string `env:"OFFICIAL_EMAIL" envDefault:"sarthak1369.be23@chitkara.edu.in"`
	// GeminiAPIKey authenticates calls to the AI model.
	GeminiAPIKey string        `env:"GEMINI_API_KEY,required,notEmpty"`
	AIModel      string        `env:"AI_MODEL" envDefault:"gemini-3-flash-preview"`
	AIBaseURL    string        `env:"AI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta/openai"`
	AITimeout    time.Duration `env:"AI_TIMEOUT" envDefault:"30s"`
	// CORSAllowedOrigins is a comma separated origin list.
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	LogLevel           string   `env:"LOG_LEVEL" envDefault:"info"`
	// FibonacciMaxTerms caps the fibonacci input; 0 disables the cap.
	FibonacciMaxTerms int `env:"FIBONACCI_MAX_TERMS" envDefault:"10000"`
	// ShutdownTimeout controls graceful shutdown duration.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Addr returns the listen address for Port.
func (c Config) Addr() string {
	return ":" + c.Port
}

// Load parses environment variables into Config.
func Load() (Config, error) {
	return env.ParseAs[Config]()
}
