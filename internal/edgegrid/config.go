// Package edgegrid provides EdgeGrid-authenticated HTTP access to Akamai
// control-plane APIs. It loads credentials from a .edgerc file or the
// environment, signs requests with the EG1-HMAC-SHA256 scheme, and layers
// caching, deduplication, circuit breaking, and retries on top.
package edgegrid

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	apierrors "github.com/acedergren/alecs-mcp-server-go/internal/errors"
)

const (
	// DefaultSection is the .edgerc section used when none is configured
	DefaultSection = "default"

	// DefaultMaxBody caps the number of body bytes included in the request
	// signature. Matches the EdgeGrid default.
	DefaultMaxBody = 131072
)

// Config holds EdgeGrid credentials for one API client.
type Config struct {
	Host             string // e.g. akab-xxxx.luna.akamaiapis.net
	ClientToken      string
	ClientSecret     string
	AccessToken      string
	AccountSwitchKey string // optional, for partners managing multiple accounts
	MaxBody          int
}

// Validate checks that all required credential fields are present.
func (c Config) Validate() error {
	switch {
	case c.Host == "":
		return apierrors.NewValidationError("host", "", "is required")
	case strings.Contains(c.Host, "://"):
		return apierrors.NewValidationError("host", c.Host, "must not include a scheme")
	case c.ClientToken == "":
		return apierrors.NewValidationError("client_token", "", "is required")
	case c.ClientSecret == "":
		return apierrors.NewValidationError("client_secret", "", "is required")
	case c.AccessToken == "":
		return apierrors.NewValidationError("access_token", "", "is required")
	}
	return nil
}

// LoadConfig resolves EdgeGrid credentials. Environment variables win over
// the .edgerc file so containerized deployments need no file at all:
//
//   AKAMAI_HOST, AKAMAI_CLIENT_TOKEN, AKAMAI_CLIENT_SECRET,
//   AKAMAI_ACCESS_TOKEN, AKAMAI_ACCOUNT_KEY
//
// Otherwise the .edgerc at AKAMAI_EDGERC (default ~/.edgerc) is read, using
// the section named by AKAMAI_EDGERC_SECTION (default "default").
func LoadConfig() (Config, error) {
	cfg := Config{
		Host:             os.Getenv("AKAMAI_HOST"),
		ClientToken:      os.Getenv("AKAMAI_CLIENT_TOKEN"),
		ClientSecret:     os.Getenv("AKAMAI_CLIENT_SECRET"),
		AccessToken:      os.Getenv("AKAMAI_ACCESS_TOKEN"),
		AccountSwitchKey: os.Getenv("AKAMAI_ACCOUNT_KEY"),
		MaxBody:          DefaultMaxBody,
	}

	if cfg.Host != "" && cfg.ClientToken != "" && cfg.ClientSecret != "" && cfg.AccessToken != "" {
		return cfg, cfg.Validate()
	}

	path := os.Getenv("AKAMAI_EDGERC")
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("cannot locate .edgerc: %w", err)
		}
		path = filepath.Join(home, ".edgerc")
	}

	section := os.Getenv("AKAMAI_EDGERC_SECTION")
	if section == "" {
		section = DefaultSection
	}

	fileCfg, err := LoadEdgercSection(path, section)
	if err != nil {
		return Config{}, err
	}

	// Environment values already set above still win.
	if cfg.Host == "" {
		cfg.Host = fileCfg.Host
	}
	if cfg.ClientToken == "" {
		cfg.ClientToken = fileCfg.ClientToken
	}
	if cfg.ClientSecret == "" {
		cfg.ClientSecret = fileCfg.ClientSecret
	}
	if cfg.AccessToken == "" {
		cfg.AccessToken = fileCfg.AccessToken
	}
	if cfg.AccountSwitchKey == "" {
		cfg.AccountSwitchKey = fileCfg.AccountSwitchKey
	}
	if fileCfg.MaxBody > 0 {
		cfg.MaxBody = fileCfg.MaxBody
	}

	return cfg, cfg.Validate()
}

// LoadEdgercSection reads one section of an INI-format .edgerc file.
func LoadEdgercSection(path, section string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("ini")

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("failed to read .edgerc at %s: %w", path, err)
	}

	if !v.IsSet(section + ".host") {
		return Config{}, fmt.Errorf("section %q not found in %s", section, path)
	}

	get := func(key string) string {
		return strings.TrimSpace(v.GetString(section + "." + key))
	}

	cfg := Config{
		Host:             get("host"),
		ClientToken:      get("client_token"),
		ClientSecret:     get("client_secret"),
		AccessToken:      get("access_token"),
		AccountSwitchKey: get("account_key"),
		MaxBody:          v.GetInt(section + ".max-body"),
	}
	if cfg.MaxBody <= 0 {
		cfg.MaxBody = DefaultMaxBody
	}

	return cfg, nil
}
