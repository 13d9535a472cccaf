// Package engine drives the benchmark: the resize/cancellation-aware render
// loop, the rolling throughput sampler and the end-of-run summary.
package engine
