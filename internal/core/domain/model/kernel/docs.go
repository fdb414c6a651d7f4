// Package kernel contains shared value objects used across all domain
// aggregates: identifiers and the primitives they are built from. Types in
// this package are immutable and safe for concurrent use.
package kernel
