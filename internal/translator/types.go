// Package translator abstracts over the incompatible request/response shapes
// of the supported translation backends. A Backend is selected once from the
// settings snapshot; callers never branch on the backend type again.
package translator

import (
	"context"
	"fmt"
	"time"

	"github.com/dangehub/dualtext/internal/config"
)

// Backend is the polymorphic translation capability. Translate returns the
// translated text as-is: no post-processing, no language auto-correction. An
// empty result with a nil error means the backend answered but produced no
// usable text; the caller decides whether that is an error.
type Backend interface {
	Name() string
	Translate(ctx context.Context, text string) (string, error)
}

// ConfigError reports a setting that is missing or invalid for the selected
// backend. It is detected before any network call.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "translator config: " + e.Reason
}

// BackendError reports a network, status, or parse failure from a backend
// call. Status is zero when no HTTP status was received; Body carries the raw
// response body when one was read.
type BackendError struct {
	Backend string
	Status  int
	Body    string
	Err     error
}

func (e *BackendError) Error() string {
	switch {
	case e.Status != 0 && e.Body != "":
		return fmt.Sprintf("%s backend: status %d: %s", e.Backend, e.Status, e.Body)
	case e.Status != 0:
		return fmt.Sprintf("%s backend: status %d", e.Backend, e.Status)
	case e.Body != "":
		return fmt.Sprintf("%s backend: %v: %s", e.Backend, e.Err, e.Body)
	default:
		return fmt.Sprintf("%s backend: %v", e.Backend, e.Err)
	}
}

func (e *BackendError) Unwrap() error { return e.Err }

// New selects and validates a Backend from the settings snapshot.
func New(cfg config.Config) (Backend, error) {
	switch cfg.APIType {
	case config.APITypeSimple, "":
		return NewSimple(cfg)
	case config.APITypeOpenAI:
		return NewOpenAI(cfg)
	case config.APITypeGoogle:
		return NewGoogle(cfg), nil
	default:
		return nil, &ConfigError{Reason: fmt.Sprintf("unknown api type %q", cfg.APIType)}
	}
}

func httpTimeout(cfg config.Config) time.Duration {
	if cfg.Timeout > 0 {
		return cfg.Timeout
	}
	return 30 * time.Second
}
