package apikey

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/app-sre/graphgate/pkg/env"
)

const redactedSuffixLength = 4

type Env struct {
	Key string
}

func NewAPIKeyEnv() *Env {
	return &Env{}
}

func (a *Env) Populate() error {
	if path := os.Getenv("API_KEY_FILE_PATH"); path != "" {
		content, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return fmt.Errorf("unable to read API key file: %w", err)
		}

		key := strings.TrimSpace(string(content))
		if key == "" {
			return fmt.Errorf("unable to find API key in file: %s", path)
		}
		a.Key = key

		return nil
	}

	key := os.Getenv("API_KEY")
	if key == "" {
		return &env.Error{Name: "API_KEY"}
	}
	a.Key = key

	return nil
}

func (a *Env) IsConfigured() bool {
	return a.Key != ""
}

// Redacted returns the key masked for logging, keeping only a short suffix
// of sufficiently long keys.
func (a *Env) Redacted() string {
	if len(a.Key) <= 2*redactedSuffixLength {
		return strings.Repeat("*", len(a.Key))
	}
	n := len(a.Key) - redactedSuffixLength
	return strings.Repeat("*", n) + a.Key[n:]
}
