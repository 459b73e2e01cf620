package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"dario.cat/mergo"
)

// ClientConfig holds the settings of the blog admin command-line client.
type ClientConfig struct {
	// ServerAddress is the base URL of the blog server.
	// Env: BLOG_SERVER_ADDRESS
	ServerAddress string `env:"SERVER_ADDRESS"`

	// Token is a previously issued admin bearer token. When empty, the
	// client logs in with Login and Password before admin commands.
	// Env: BLOG_TOKEN
	Token string `env:"TOKEN"`

	// Login is the admin login.
	// Env: BLOG_ADMIN_LOGIN
	Login string `env:"ADMIN_LOGIN"`

	// Password is the admin password.
	// Env: BLOG_ADMIN_PASSWORD
	Password string `env:"ADMIN_PASSWORD"`

	// RequestTimeout bounds every request to the server.
	// Env: BLOG_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// clientEnv wraps ClientConfig so that every variable gets the BLOG_ prefix.
type clientEnv struct {
	Client ClientConfig `envPrefix:"BLOG_"`
}

// ErrInvalidClientConfigs indicates an unusable client configuration.
var ErrInvalidClientConfigs = errors.New("invalid client configuration")

// GetClientConfig builds the client configuration from environment
// variables, then flags in args, then defaults; the first source setting a
// field wins. The arguments left after flag parsing are returned as the
// command to run.
func GetClientConfig(args []string, output io.Writer) (*ClientConfig, []string, error) {
	var fromEnv clientEnv
	if err := parseEnv(&fromEnv); err != nil {
		return nil, nil, err
	}

	fromFlags, rest, err := parseClientFlags(args, output)
	if err != nil {
		return nil, nil, err
	}

	cfg := new(ClientConfig)
	for _, src := range []*ClientConfig{&fromEnv.Client, fromFlags, clientDefaults()} {
		if err = mergo.Merge(cfg, src); err != nil {
			return nil, nil, fmt.Errorf("error merging client configs: %w", err)
		}
	}

	if cfg.ServerAddress == "" {
		return nil, nil, fmt.Errorf("%w: empty server address", ErrInvalidClientConfigs)
	}

	return cfg, rest, nil
}

func parseClientFlags(args []string, output io.Writer) (*ClientConfig, []string, error) {
	cfg := new(ClientConfig)

	fs := flag.NewFlagSet("blog-client", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.ServerAddress, "s", "", "Blog server base URL")
	fs.StringVar(&cfg.Token, "t", "", "Admin bearer token")
	fs.StringVar(&cfg.Login, "l", "", "Admin login")
	fs.StringVar(&cfg.Password, "p", "", "Admin password")
	fs.DurationVar(&cfg.RequestTimeout, "timeout", 0, "Request timeout (e.g., 5s)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return cfg, fs.Args(), nil
}

func clientDefaults() *ClientConfig {
	return &ClientConfig{
		ServerAddress:  "http://localhost:80",
		RequestTimeout: 15 * time.Second,
	}
}
