package jsonutil_test

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/directemployers/healthgate/jsonutil"
)

func Example() {
	type probeStatus struct {
		Status  string `json:"status"`
		Service string `json:"service"`
		Build   int    `json:"build"`
	}

	status := probeStatus{
		Status:  "ok",
		Service: "checkout",
		Build:   17,
	}

	data, _ := jsonutil.Marshal(status)
	fmt.Println(string(data))

	var decoded probeStatus
	_ = jsonutil.Unmarshal(data, &decoded)
	fmt.Println(decoded.Build)

	buf := &bytes.Buffer{}
	_ = jsonutil.Encode(buf, status)

	var streamed probeStatus
	_ = jsonutil.Decode(buf, &streamed)
	fmt.Println(streamed.Service)

	// Output:
	// {"status":"ok","service":"checkout","build":17}
	// 17
	// checkout
}

func ExampleMarshalIndent() {
	type report struct {
		Status string   `json:"status"`
		Checks []string `json:"checks"`
	}

	payload := report{
		Status: "ready",
		Checks: []string{"liveness", "readiness"},
	}

	data, err := jsonutil.MarshalIndent(payload, "", "  ")
	if err != nil {
		fmt.Println("marshal error:", err)
		return
	}

	fmt.Println(strings.TrimSpace(string(data)))

	// Output:
	// {
	//   "status": "ready",
	//   "checks": [
	//     "liveness",
	//     "readiness"
	//   ]
	// }
}
