package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	evalCmd.Flags().String("metrics-addr", "", "if set, serve Prometheus metrics on this address (e.g. :9090)")
}

// newPromRegistry builds a fresh registry and, if --metrics-addr is set,
// starts a background HTTP server exposing it via promhttp.
func newPromRegistry() prometheus.Registerer {
	reg := prometheus.NewRegistry()

	addr, _ := evalCmd.Flags().GetString("metrics-addr")
	if addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		go func() {
			_ = http.ListenAndServe(addr, mux)
		}()
	}

	return reg
}
