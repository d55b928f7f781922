// Package ports defines the small interfaces through which Arbor talks to
// the outside world, plus reusable contract tests for adapter authors.
package ports
