// Package agency contains the Agency aggregate, the tenant root of the
// platform, and its exclusively-owned AgencyLocation children.
//
// An agency carries two orthogonal lifecycle flags rather than a single
// status enum: active (deactivation is a reversible soft-delete-adjacent
// action) and suspended (a punitive or compliance action with a recorded
// reason). Both must be favorable for the agency to create shipments.
package agency
