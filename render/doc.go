// Package render precomputes the encoded color ramp the benchmark streams.
//
// All color math and escape-sequence formatting happens once per rebuild
// (startup and resize); frame assembly afterwards is pure byte-slice
// arithmetic over the ramp buffer.
package render
