package healthcheck

import "net/http"

type probePayload struct {
	Status string `json:"status"`
}

// Healthz implements the liveness probe recommended for Kubernetes. It
// reports that the process is alive and able to produce a response; it never
// consults external dependencies.
func (i *Interceptor) Healthz(w http.ResponseWriter, r *http.Request) {
	i.respondProbe(w, r, "ok")
}

// Readiness implements the readiness probe recommended for Kubernetes. The
// response is static: the interceptor exists precisely so probes do not
// trigger dependency traffic.
func (i *Interceptor) Readiness(w http.ResponseWriter, r *http.Request) {
	i.respondProbe(w, r, "ready")
}

func (i *Interceptor) respondProbe(w http.ResponseWriter, r *http.Request, state string) {
	i.RespondWithJSON(w, r, http.StatusOK, probePayload{Status: state})
}
