// Package auth contains the identity model of the platform: actor types,
// role scopes, the Principal value object, the resolver that derives a
// Principal from verified token claims, and the per-request tenant context.
//
// The resolver is the zero-trust boundary of the system. Every downstream
// authorization decision re-derives from the Principal produced here and
// never from client-supplied identifiers. The resolver itself never consults
// the data store; the verified claim set is the sole source of identity.
package auth
