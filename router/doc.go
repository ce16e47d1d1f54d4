// Package router wraps http.ServeMux with probe interception, OpenAPI
// validation, CORS, timeouts, panic recovery, and logging defaults. The
// health interceptor always leads the chain so orchestrator probes are
// answered before anything else can run. ExampleNew_probes and
// ExampleNew_customOptions demonstrate the wiring.
package router
