// Package mcmetrics exposes Prometheus counters and histograms for an
// mcstat run: how many formulas were evaluated, how long numerical and
// statistical engines took, and how often the dispatcher degraded a
// mode-mismatched operator to a zero vector. New registers them with the
// given registry; serving that registry through promhttp.HandlerFor
// exposes them for scraping.
package mcmetrics
