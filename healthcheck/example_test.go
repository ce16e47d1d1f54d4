package healthcheck_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/directemployers/healthgate/healthcheck"
)

func ExampleMiddleware() {
	api := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Stands in for the application chain, including anything that
		// would open a database connection per request.
		fmt.Fprint(w, "application response")
	})

	handler := healthcheck.Middleware()(api)

	probeRec := httptest.NewRecorder()
	handler.ServeHTTP(probeRec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	fmt.Println(probeRec.Code)
	fmt.Println(strings.TrimSpace(probeRec.Body.String()))

	appRec := httptest.NewRecorder()
	handler.ServeHTTP(appRec, httptest.NewRequest(http.MethodGet, "/api/orders", nil))
	fmt.Println(strings.TrimSpace(appRec.Body.String()))

	// Output:
	// 200
	// {"status":"ok"}
	// application response
}

func ExampleInterceptor_customPaths() {
	interceptor := healthcheck.NewInterceptor(
		healthcheck.WithLivenessPath("/health/live"),
		healthcheck.WithReadinessPath("/health/ready"),
	)

	handler := interceptor.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	fmt.Println(rec.Code)
	fmt.Println(strings.TrimSpace(rec.Body.String()))

	// Output:
	// 200
	// {"status":"ready"}
}
