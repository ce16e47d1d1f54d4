package router

import "time"

// Config carries the plain-data settings for the default middleware chain.
// Functional options cover everything else.
type Config struct {
	// Timeout bounds how long the application handler may take before the
	// timeout middleware replies 503. Probe requests are answered before the
	// timeout middleware and are never subject to it.
	Timeout time.Duration

	// QuietdownRoutes lists paths the logging middleware stays silent for.
	// When nil, the health interceptor's probe paths are used so that
	// orchestrator probes do not flood the logs.
	QuietdownRoutes []string

	// HideHeaders lists request headers the logging middleware redacts.
	HideHeaders []string

	CORS CORSConfig
}

// CORSConfig configures the CORS middleware. The middleware is a no-op
// unless at least one origin is listed.
type CORSConfig struct {
	Origins          []string
	Methods          []string
	Headers          []string
	AllowCredentials bool
}
