// Package healthcheck intercepts Kubernetes liveness and readiness probes at
// the front of an HTTP handler chain, answering them before any downstream
// middleware can touch a database or other fragile dependency. See
// ExampleMiddleware and ExampleInterceptor_customPaths for quick-start
// patterns.
package healthcheck
