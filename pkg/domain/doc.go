// Package domain contains the core value types of Arbor: actions, slices,
// reducers, the state tree, lifecycle events, and the error taxonomy.
//
// Everything in this package is plain data plus pure functions. The dispatch
// mechanics live in internal/runtime; persistence and observability live in
// their own adapter packages.
package domain
