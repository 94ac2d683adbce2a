// Package kernel contains the shared value objects of the domain model:
// identifiers and money. These types are immutable, constructed only through
// their factory functions, and safe for concurrent use.
//
// The zero value of every kernel type is invalid; Validate reports whether a
// value was produced by a constructor. This keeps aggregates rehydrated from
// persistence and values decoded from the wire under the same validation
// rules as freshly constructed ones.
package kernel
