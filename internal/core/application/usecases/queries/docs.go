// Package queries contains the read side of the application layer.
//
// Query handlers bypass the aggregates and read straight from the database
// with raw SQL, returning flat read models. Access checks still run: a
// query resolves the rows it needs, applies the relevant policy against the
// caller's principal, and only then maps the data out. The one exception is
// parcel tracking, which is a public lookup keyed by tracking number and
// deliberately exposes scan-level facts only.
package queries
