/*
Copyright 2026 Dima Krasner

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package cfg defines the tootgraph configuration file format and defaults.
package cfg

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents a tootgraph configuration file.
type Config struct {
	InstanceURL string `yaml:"instance" env:"TOOTGRAPH_INSTANCE" env-description:"URL of the Mastodon instance"`
	AccessToken string `yaml:"token" env:"TOOTGRAPH_TOKEN" env-description:"OAuth access token"`
	UserID      string `yaml:"user_id" env:"TOOTGRAPH_USER_ID" env-description:"account ID of the token owner, looked up if empty"`

	LogLevel string `yaml:"log_level" env:"TOOTGRAPH_LOG_LEVEL" env-description:"DEBUG, INFO, WARN or ERROR"`

	RequestTimeout      time.Duration `yaml:"request_timeout" env:"TOOTGRAPH_REQUEST_TIMEOUT"`
	MaxResponseBodySize int64         `yaml:"max_response_body_size" env:"TOOTGRAPH_MAX_RESPONSE_BODY_SIZE"`
	MaxMediaSize        int64         `yaml:"max_media_size" env:"TOOTGRAPH_MAX_MEDIA_SIZE"`
	MaxStatusLength     int           `yaml:"max_status_length" env:"TOOTGRAPH_MAX_STATUS_LENGTH"`

	BlockList     string `yaml:"blocklist" env:"TOOTGRAPH_BLOCKLIST" env-description:"CSV file of blocked domains"`
	CredentialsDB string `yaml:"credentials_db" env:"TOOTGRAPH_CREDENTIALS_DB"`
}

// FillDefaults replaces missing or invalid settings with defaults.
func (c *Config) FillDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "INFO"
	}

	if c.RequestTimeout <= 0 {
		c.RequestTimeout = time.Second * 30
	}

	if c.MaxResponseBodySize <= 0 {
		c.MaxResponseBodySize = 1024 * 1024
	}

	if c.MaxMediaSize <= 0 {
		c.MaxMediaSize = 40 * 1024 * 1024
	}

	if c.MaxStatusLength <= 0 {
		c.MaxStatusLength = 500
	}

	if c.CredentialsDB == "" {
		c.CredentialsDB = "tootgraph.sqlite3"
	}
}

// Load reads the configuration from a YAML file, if path is not empty, and from environment
// variables that override it.
func Load(path string) (*Config, error) {
	var c Config

	if path == "" {
		if err := cleanenv.ReadEnv(&c); err != nil {
			return nil, fmt.Errorf("failed to read configuration from environment: %w", err)
		}
	} else if err := cleanenv.ReadConfig(path, &c); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	c.FillDefaults()
	return &c, nil
}

// Usage describes the environment variables read by [Load].
func Usage() string {
	help, _ := cleanenv.GetDescription(&Config{}, nil)
	return help
}
