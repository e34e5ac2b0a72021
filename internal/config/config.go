package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/readyforswiss/cvscan/internal/domain/persona"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	AI struct {
		APIKey         string `yaml:"apiKey"`
		BaseURL        string `yaml:"baseURL"`
		Model          string `yaml:"model"`
		TimeoutSeconds int    `yaml:"timeoutSeconds"`
	} `yaml:"ai"`

	Mail struct {
		APIKey         string `yaml:"apiKey"`
		From           string `yaml:"from"`
		OperatorBCC    string `yaml:"operatorBcc"`
		TimeoutSeconds int    `yaml:"timeoutSeconds"`
	} `yaml:"mail"`

	Scan struct {
		DefaultPersona string `yaml:"defaultPersona"`
		MaxUploadBytes int64  `yaml:"maxUploadBytes"`
	} `yaml:"scan"`

	RateLimit struct {
		Capacity   int `yaml:"capacity"`
		RefillRate int `yaml:"refillRate"`
	} `yaml:"rateLimit"`
}

// Load reads the yaml config file, then lets environment variables
// override the secrets so keys never have to live in the file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if v := os.Getenv("OPENROUTER_API_KEY"); v != "" {
		cfg.AI.APIKey = v
	}
	if v := os.Getenv("RESEND_API_KEY"); v != "" {
		cfg.Mail.APIKey = v
	}

	cfg.applyDefaults()
	return &cfg, cfg.validate()
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 3000
	}
	if c.AI.BaseURL == "" {
		c.AI.BaseURL = "https://openrouter.ai/api/v1"
	}
	if c.AI.Model == "" {
		c.AI.Model = "google/gemini-2.0-flash-001"
	}
	if c.AI.TimeoutSeconds == 0 {
		c.AI.TimeoutSeconds = 60
	}
	if c.Mail.From == "" {
		c.Mail.From = "onboarding@resend.dev"
	}
	if c.Mail.TimeoutSeconds == 0 {
		c.Mail.TimeoutSeconds = 15
	}
	if c.Scan.DefaultPersona == "" {
		c.Scan.DefaultPersona = persona.Romandie
	}
	if c.Scan.MaxUploadBytes == 0 {
		c.Scan.MaxUploadBytes = 10 << 20 // 10 MiB
	}
	if c.RateLimit.Capacity == 0 {
		c.RateLimit.Capacity = 10
	}
	if c.RateLimit.RefillRate == 0 {
		c.RateLimit.RefillRate = 1
	}
}

func (c *Config) validate() error {
	if c.AI.APIKey == "" {
		return fmt.Errorf("ai.apiKey is required (or set OPENROUTER_API_KEY)")
	}
	if _, ok := persona.Preset(c.Scan.DefaultPersona); !ok {
		return fmt.Errorf("scan.defaultPersona %q unknown (available: %v)",
			c.Scan.DefaultPersona, persona.Names())
	}
	return nil
}
