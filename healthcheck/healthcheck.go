package healthcheck

import (
	"net/http"

	"github.com/directemployers/healthgate/responder"
)

// Default probe paths, matching the conventions most orchestrators use.
const (
	DefaultLivenessPath  = "/healthz"
	DefaultReadinessPath = "/readiness"
)

// Interceptor short-circuits the configured probe paths and forwards every
// other request to the wrapped handler. It keeps no per-request state, so a
// single instance can serve any number of concurrent requests.
type Interceptor struct {
	*responder.Responder
	livenessPath  string
	readinessPath string
}

// NewInterceptor constructs an Interceptor answering on the default probe
// paths. Callers can supply Option values to move the paths or share a
// responder with the rest of the service.
func NewInterceptor(opts ...Option) *Interceptor {
	i := &Interceptor{
		Responder:     responder.NewResponder(),
		livenessPath:  DefaultLivenessPath,
		readinessPath: DefaultReadinessPath,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(i)
		}
	}
	return i
}

// Wrap returns a handler that answers probe requests directly and delegates
// everything else to next. Matching is an exact comparison against the
// configured paths and ignores the HTTP method, so orchestrators are free to
// probe with GET, HEAD, or anything else.
func (i *Interceptor) Wrap(next http.Handler) http.Handler {
	if next == nil {
		panic("healthcheck: next handler cannot be nil")
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case i.livenessPath:
			i.Healthz(w, r)
		case i.readinessPath:
			i.Readiness(w, r)
		default:
			next.ServeHTTP(w, r)
		}
	})
}

// Middleware is a convenience wrapper for hosts that take middlewares of the
// common func(http.Handler) http.Handler shape. It must sit first in the
// chain so that no earlier component can fail or stall before a probe is
// answered.
func Middleware(opts ...Option) func(http.Handler) http.Handler {
	return NewInterceptor(opts...).Wrap
}

// Paths returns the configured probe path literals, liveness first. The
// router package uses this to quiet probe requests in its access logs.
func (i *Interceptor) Paths() []string {
	return []string{i.livenessPath, i.readinessPath}
}
