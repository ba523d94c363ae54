package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Groq     GroqConfig     `yaml:"groq"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig HTTP server configuration
type ServerConfig struct {
	Port int    `yaml:"port"`
	Name string `yaml:"name"`
}

// GroqConfig completion API configuration
type GroqConfig struct {
	BaseURL           string `yaml:"baseUrl"`
	Model             string `yaml:"model"`
	ClassifyMaxTokens int    `yaml:"classifyMaxTokens"`
	ReplyMaxTokens    int    `yaml:"replyMaxTokens"`
	TimeoutSeconds    int    `yaml:"timeoutSeconds"`
}

// DatabaseConfig room database configuration
type DatabaseConfig struct {
	Path           string `yaml:"path"`
	TimeoutSeconds int    `yaml:"timeoutSeconds"`
}

// LogConfig log configuration
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// LoadConfig loads the config file and fills in defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8000
	}
	if c.Server.Name == "" {
		c.Server.Name = "hotel-assistant"
	}
	if c.Groq.BaseURL == "" {
		c.Groq.BaseURL = "https://api.groq.com/openai/v1"
	}
	if c.Groq.Model == "" {
		c.Groq.Model = "llama-3.3-70b-versatile"
	}
	if c.Groq.ClassifyMaxTokens == 0 {
		c.Groq.ClassifyMaxTokens = 10
	}
	if c.Groq.ReplyMaxTokens == 0 {
		c.Groq.ReplyMaxTokens = 300
	}
	if c.Database.Path == "" {
		c.Database.Path = "rooms.db"
	}
	if c.Groq.TimeoutSeconds == 0 {
		c.Groq.TimeoutSeconds = 30
	}
	if c.Database.TimeoutSeconds == 0 {
		c.Database.TimeoutSeconds = 5
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}
