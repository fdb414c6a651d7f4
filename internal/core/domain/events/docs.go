// Package events defines the domain events emitted by command handlers.
//
// Events are staged on the unit of work during a transaction and written to
// the outbox table atomically with the state change. They become visible to
// consumers only after the transaction commits; the outbox publishing job
// picks them up afterwards. A rolled-back transaction leaves no trace of its
// events.
//
// Event payloads carry identifiers and denormalized lookup keys (numbers,
// timestamps), never whole aggregates.
package events
