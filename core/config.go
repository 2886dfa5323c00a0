package core

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTemplateDir = "/tmp/templates"
	DefaultPort        = 8080
)

type Config struct {
	TemplateDir  string `yaml:"templateDir"`
	Port         int    `yaml:"port"`
	Render       bool   `yaml:"render"`
	Minify       bool   `yaml:"minify"`
	DebugHeaders bool   `yaml:"debugHeaders"`
	DebugLogs    bool   `yaml:"debugLogs"`
}

var LoadConfig = func(path string) *Config {
	cfg := &Config{
		TemplateDir: DefaultTemplateDir,
		Port:        DefaultPort,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	yaml.Unmarshal(data, cfg)

	if cfg.TemplateDir == "" {
		cfg.TemplateDir = DefaultTemplateDir
	}
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}

	return cfg
}

// ApplyEnv overlays environment variables on top of the file config.
// A .env file in the working directory is loaded first if present.
func (c *Config) ApplyEnv() error {
	_ = godotenv.Load()

	if v := os.Getenv("SESSION_MANAGER_TEMPLATE_DIR"); v != "" {
		c.TemplateDir = v
	}

	if v := os.Getenv("SESSION_MANAGER_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid SESSION_MANAGER_PORT %q: %w", v, err)
		}
		c.Port = port
	}

	return nil
}
