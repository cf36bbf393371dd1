package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	AdvisorRequests = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "advisor_requests_total", Help: "Chat-completion calls made"},
	)
	JupiterRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "jupiter_requests_total", Help: "Jupiter API calls made"},
		[]string{"endpoint"},
	)
	SwapsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "swaps_total", Help: "Swap executions by reported status"},
		[]string{"status"},
	)
)

func init() {
	prometheus.MustRegister(AdvisorRequests, JupiterRequests, SwapsTotal)
}

func Serve(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{ Addr: addr, Handler: mux }
	go func() { _ = srv.ListenAndServe() }()
	return srv
}
