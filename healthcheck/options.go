package healthcheck

import (
	"strings"

	"github.com/directemployers/healthgate/responder"
)

// Option configures the Interceptor via the functional options pattern used
// by NewInterceptor.
type Option func(*Interceptor)

// WithLivenessPath moves the liveness probe to the supplied path. Empty
// values are ignored; a missing leading slash is added.
func WithLivenessPath(path string) Option {
	return func(i *Interceptor) {
		if normalized := normalizePath(path); normalized != "" {
			i.livenessPath = normalized
		}
	}
}

// WithReadinessPath moves the readiness probe to the supplied path. Empty
// values are ignored; a missing leading slash is added.
func WithReadinessPath(path string) Option {
	return func(i *Interceptor) {
		if normalized := normalizePath(path); normalized != "" {
			i.readinessPath = normalized
		}
	}
}

// WithResponder replaces the responder used to craft probe responses so the
// interceptor shares JSON rendering and logging with the rest of the
// service.
func WithResponder(r *responder.Responder) Option {
	return func(i *Interceptor) {
		if r != nil {
			i.Responder = r
		}
	}
}

func normalizePath(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return ""
	}
	if !strings.HasPrefix(trimmed, "/") {
		trimmed = "/" + trimmed
	}
	return trimmed
}
