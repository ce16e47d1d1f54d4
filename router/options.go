package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/directemployers/healthgate/healthcheck"
	"github.com/directemployers/healthgate/responder"
)

// Middleware wraps an http.Handler to produce a new http.Handler.
type Middleware func(http.Handler) http.Handler

// Option configures the router via the functional options pattern.
type Option func(*options)

type options struct {
	config        Config
	logger        *slog.Logger
	responder     *responder.Responder
	swagger       *openapi3.T
	healthOpts    []healthcheck.Option
	prepend       []Middleware
	append        []Middleware
	override      []Middleware
	enableHealth  bool
	enableOpenAPI bool
	enableCORS    bool
	enableTimeout bool
	enableRecover bool
	enableLogging bool
}

func defaultOptions() *options {
	return &options{
		config: Config{
			Timeout: 30 * time.Second,
		},
		logger:        slog.Default(),
		enableHealth:  true,
		enableOpenAPI: true,
		enableCORS:    true,
		enableTimeout: true,
		enableRecover: true,
		enableLogging: true,
	}
}

func (o *options) middlewareChain() []Middleware {
	if len(o.override) > 0 {
		cloned := make([]Middleware, len(o.override))
		copy(cloned, o.override)
		return cloned
	}

	chain := make([]Middleware, 0, len(o.prepend)+len(o.append)+6)
	if o.enableHealth {
		chain = append(chain, o.healthMiddleware())
	}
	chain = append(chain, o.prepend...)
	chain = append(chain, o.defaultMiddlewares()...)
	chain = append(chain, o.append...)
	return chain
}

// healthMiddleware builds the probe interceptor that leads the chain. The
// interceptor shares the router's responder, and its paths become the
// default quietdown routes so probe traffic stays out of the request log.
func (o *options) healthMiddleware() Middleware {
	interceptorOpts := make([]healthcheck.Option, 0, len(o.healthOpts)+1)
	interceptorOpts = append(interceptorOpts, healthcheck.WithResponder(o.resolveResponder()))
	interceptorOpts = append(interceptorOpts, o.healthOpts...)

	interceptor := healthcheck.NewInterceptor(interceptorOpts...)
	if o.config.QuietdownRoutes == nil {
		o.config.QuietdownRoutes = interceptor.Paths()
	}
	return interceptor.Wrap
}

func (o *options) defaultMiddlewares() []Middleware {
	chain := make([]Middleware, 0, 5)

	if o.enableOpenAPI && o.swagger != nil {
		chain = append(chain, oapiMiddleware(o.swagger))
	}

	if o.enableCORS && shouldApplyCORS(o.config.CORS) {
		chain = append(chain, corsMiddleware(o.config.CORS))
	}

	if o.enableTimeout && o.config.Timeout > 0 {
		chain = append(chain, timeoutMiddleware(o.config.Timeout))
	}

	if o.enableRecover {
		chain = append(chain, recoverMiddleware(o.resolveResponder()))
	}

	if o.enableLogging && o.logger != nil {
		chain = append(chain, loggingMiddleware(o.logger, o.config.QuietdownRoutes, o.config.HideHeaders))
	}

	return chain
}

func (o *options) resolveResponder() *responder.Responder {
	if o.responder == nil {
		o.responder = responder.NewResponder(responder.WithLogger(o.logger))
	}
	return o.responder
}

// WithConfig replaces the router configuration with the provided value.
func WithConfig(cfg Config) Option {
	configCopy := sanitizeConfig(cfg)
	return func(o *options) {
		o.config = configCopy
	}
}

// WithConfigMutator applies a mutation to the router configuration after defaults are set.
func WithConfigMutator(mutator func(*Config)) Option {
	return func(o *options) {
		if mutator != nil {
			mutator(&o.config)
		}
	}
}

// WithLogger provides the structured logger to be used by the logging middleware.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithResponder shares a responder between the health interceptor, the
// recover middleware, and the caller's own handlers.
func WithResponder(resp *responder.Responder) Option {
	return func(o *options) {
		if resp != nil {
			o.responder = resp
		}
	}
}

// WithSwagger wires the OpenAPI document for request validation.
func WithSwagger(swagger *openapi3.T) Option {
	return func(o *options) {
		o.swagger = swagger
	}
}

// WithHealthOptions forwards options to the probe interceptor that leads the
// middleware chain, typically to move the probe paths.
func WithHealthOptions(opts ...healthcheck.Option) Option {
	return func(o *options) {
		o.healthOpts = append(o.healthOpts, opts...)
	}
}

// WithoutHealthEndpoints removes the probe interceptor from the chain for
// hosts that answer probes elsewhere.
func WithoutHealthEndpoints() Option {
	return func(o *options) {
		o.enableHealth = false
	}
}

// WithMiddlewares prepends custom middlewares ahead of the default chain.
// The probe interceptor still runs first.
func WithMiddlewares(middlewares ...Middleware) Option {
	return func(o *options) {
		o.prepend = append(o.prepend, middlewares...)
	}
}

// WithTrailingMiddlewares appends middlewares after the default chain.
func WithTrailingMiddlewares(middlewares ...Middleware) Option {
	return func(o *options) {
		o.append = append(o.append, middlewares...)
	}
}

// WithMiddlewareChain fully overrides the middleware chain with the provided
// sequence, including the probe interceptor. Callers taking this route are
// responsible for keeping probe handling at the front.
func WithMiddlewareChain(middlewares ...Middleware) Option {
	cloned := make([]Middleware, len(middlewares))
	copy(cloned, middlewares)
	return func(o *options) {
		o.override = cloned
	}
}

// WithoutOpenAPIValidation disables the OpenAPI validation middleware.
func WithoutOpenAPIValidation() Option {
	return func(o *options) {
		o.enableOpenAPI = false
	}
}

// WithoutCORSMiddleware disables the CORS middleware regardless of configuration.
func WithoutCORSMiddleware() Option {
	return func(o *options) {
		o.enableCORS = false
	}
}

// WithoutTimeoutMiddleware disables the timeout middleware.
func WithoutTimeoutMiddleware() Option {
	return func(o *options) {
		o.enableTimeout = false
	}
}

// WithoutRecoverMiddleware disables the panic recovery middleware.
func WithoutRecoverMiddleware() Option {
	return func(o *options) {
		o.enableRecover = false
	}
}

// WithoutLoggingMiddleware disables the logging middleware.
func WithoutLoggingMiddleware() Option {
	return func(o *options) {
		o.enableLogging = false
	}
}

func sanitizeConfig(cfg Config) Config {
	cfg.QuietdownRoutes = cloneStrings(cfg.QuietdownRoutes)
	cfg.HideHeaders = cloneStrings(cfg.HideHeaders)
	cfg.CORS = sanitizeCORSConfig(cfg.CORS)
	return cfg
}

func sanitizeCORSConfig(cfg CORSConfig) CORSConfig {
	cfg.Headers = cloneStrings(cfg.Headers)
	cfg.Methods = cloneStrings(cfg.Methods)
	cfg.Origins = cloneStrings(cfg.Origins)
	return cfg
}

func cloneStrings(values []string) []string {
	if len(values) == 0 {
		return nil
	}

	cloned := make([]string, len(values))
	copy(cloned, values)
	return cloned
}

func shouldApplyCORS(cfg CORSConfig) bool {
	return len(cfg.Origins) > 0
}
