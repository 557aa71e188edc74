package graphgate

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/app-sre/graphgate/pkg/audit"
	"github.com/app-sre/graphgate/pkg/env/apikey"
	graphenv "github.com/app-sre/graphgate/pkg/env/graph"
	"github.com/app-sre/graphgate/pkg/graph"
	"github.com/app-sre/graphgate/pkg/schema"
)

const defaultRequestTimeout = 2 * time.Minute

// Config is the process-wide state shared by every handler and middleware.
// It is built once at start and never mutated afterwards.
type Config struct {
	Graph     graph.Client
	GraphEnv  *graphenv.Env
	APIKeyEnv *apikey.Env
	Schema    *schema.Schema
	Audit     audit.Audit
	Logger    *zap.SugaredLogger
}

func Production() bool {
	return os.Getenv("ENVIRONMENT") == "production"
}

// RequestTimeout returns the per-request timeout from REQUEST_TIMEOUT, or
// the default when unset or malformed.
func RequestTimeout() time.Duration {
	if s := os.Getenv("REQUEST_TIMEOUT"); s != "" {
		if d, err := parseDuration(s); err == nil {
			return d
		}
	}
	return defaultRequestTimeout
}

// Bare integers are taken as seconds. The sign is ignored.
func parseDuration(s string) (time.Duration, error) {
	if _, err := strconv.Atoi(s); err == nil {
		s += "s"
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("unable to parse duration: %w", err)
	}
	if d < 0 {
		d = -d
	}

	return d, nil
}
