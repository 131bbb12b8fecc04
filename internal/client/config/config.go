// Package config holds runtime settings for the task-manager CLI.
package config

import (
	"context"
	"flag"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/taskhive/task-manager/internal/client/credstore"
)

// Config is resolved in three layers: defaults, then environment variables,
// then command-line flags. Later layers win.
type Config struct {
	ServerURL      string        `env:"TASKMAN_SERVER, default=http://localhost:5000"`
	RequestTimeout time.Duration `env:"TASKMAN_TIMEOUT, default=10s"`
	CredentialPath string        `env:"TASKMAN_CREDENTIAL_FILE"`
}

// Load resolves the configuration and returns the arguments left after flag
// parsing (the command and its operands).
func Load(args []string) (*Config, []string, error) {
	cfg := &Config{}
	if err := envconfig.Process(context.Background(), cfg); err != nil {
		return nil, nil, err
	}
	if cfg.CredentialPath == "" {
		cfg.CredentialPath = credstore.DefaultPath()
	}

	fs := flag.NewFlagSet("taskman", flag.ContinueOnError)
	fs.StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "base URL of the task-manager server")
	fs.DurationVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "per-request timeout")
	fs.StringVar(&cfg.CredentialPath, "credential-file", cfg.CredentialPath, "path of the stored credential")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return cfg, fs.Args(), nil
}
