// Package user contains the User aggregate and the Role entity.
//
// Users mirror the Principal's pairing invariant: an agency id is present
// if and only if the user is an agency employee. Roles attach to users only
// when the role's scope matches the user's actor type, the role is active,
// and it is not already granted. Users are soft-deleted via an explicit
// tombstone; repositories state whether tombstoned rows are included.
package user
