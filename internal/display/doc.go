// Package display holds the sinks scan results are presented on: a plain
// text terminal view, an in-memory snapshot of the latest presentation that
// the status server exposes, and a fan-out combining several sinks.
package display
