// Package access contains the policy engine: one decision module per
// resource family (Agency, Location, Shipment, Parcel), each evaluating a
// (principal, resource tenant, resource state) tuple.
//
// Policies are fixed, compiled decision functions with no mutable state;
// they are safe to call concurrently. Each predicate exists in two shapes:
// a Can* form returning a bool for read-only fallbacks, and a Validate*
// form returning a typed error where denial must abort the operation.
//
// Tenant match is always evaluated before role match. A correct role in the
// wrong tenant never grants access, even if role codes collide across
// tenants, and surfaces as a TenantViolationError rather than a role
// failure.
package access
