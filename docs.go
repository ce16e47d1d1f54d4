// Package healthgate bundles composable HTTP helpers for answering
// Kubernetes liveness and readiness probes without waking the rest of a
// service. The module stays intentionally small and encourages teams to pull
// in only the packages they need, keeping binaries lean and dependencies
// predictable.
//
// The healthcheck package is the heart of the module: a stateless
// interceptor that sits at the very front of a handler chain, answers
// /healthz and /readiness with a canned 200 before any downstream middleware
// runs, and delegates every other request untouched. Probe traffic therefore
// never reaches components that open database connections, enforce
// authentication, or do anything else that could fail or stall while the
// orchestrator is only asking "are you alive?".
//
// # Packages
//
//   - healthcheck: the probe interceptor plus stand-alone Healthz/Readiness
//     handlers for hosts that register routes instead of wrapping.
//   - router: an http.ServeMux wrapper that installs the interceptor first,
//     then layers OpenAPI validation, CORS, timeouts, panic recovery, and
//     quietdown-aware request logging around the application handler.
//   - responder: consistent JSON envelopes, RFC 9457 problem documents, and
//     structured logging hooks shared by the other packages.
//   - jsonutil: tiny helpers around sonic for performance-sensitive encoding
//     tasks.
//
// # Quick Start
//
//	api := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//	    // ... the actual application ...
//	})
//
//	mux := router.New(api)
//	_ = http.ListenAndServe(":8080", mux)
//
// The returned mux answers /healthz and /readiness immediately, regardless
// of HTTP method; everything else flows through the configured middleware
// chain into the application handler. Hosts with their own routing can
// instead take just the middleware:
//
//	wrapped := healthcheck.Middleware()(api)
package healthgate
