// Package config provides configuration loading for the bakeshop server.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete server configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Admin    AdminConfig    `yaml:"admin"`
	Checkout CheckoutConfig `yaml:"checkout"`
	Media    MediaConfig    `yaml:"media"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	// Addr is the listen address (default :8000).
	Addr string `yaml:"addr"`
	// StaticDir is the directory served under /static (default ./static).
	StaticDir string `yaml:"static_dir"`
}

// AdminConfig configures access to the admin surface.
type AdminConfig struct {
	// Username and Password accepted by /api/login.
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	// Token grants admin access via the X-Admin-Token header or ?token=
	// query parameter. Empty disables token access.
	Token string `yaml:"token"`
}

// CheckoutConfig configures the checkout protocol.
type CheckoutConfig struct {
	// Delay is the simulated processing time before an accepted order
	// commits to the ledger.
	Delay time.Duration `yaml:"delay"`
}

// MediaConfig configures image handling.
type MediaConfig struct {
	// CloudinaryURL enables product image uploads when set; without it
	// uploads fall back to a placeholder URI.
	CloudinaryURL string `yaml:"cloudinary_url"`
}

// SnapshotConfig configures state bootstrapping.
type SnapshotConfig struct {
	// File is an export document applied at startup when present.
	File string `yaml:"file"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:      ":8000",
			StaticDir: "./static",
		},
		Admin: AdminConfig{
			Username: "admin",
			Password: "admin123",
		},
		Checkout: CheckoutConfig{
			Delay: 2 * time.Second,
		},
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Checkout.Delay < 0 {
		return fmt.Errorf("checkout.delay must not be negative")
	}
	if c.Admin.Username == "" || c.Admin.Password == "" {
		return fmt.Errorf("admin.username and admin.password are required")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file on top of the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return config, nil
}

// ApplyEnv overlays the environment variables the server has always been
// deployed with. Set values win over the file.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("BAKESHOP_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("ADMIN_TOKEN"); v != "" {
		c.Admin.Token = v
	}
	if v := os.Getenv("CLOUDINARY_URL"); v != "" {
		c.Media.CloudinaryURL = v
	}
}
