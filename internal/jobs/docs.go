// Package jobs provides scheduled background tasks.
//
// The one job here drains the transactional outbox: it periodically reads
// unpublished event rows, hands them to the configured publisher, and
// stamps them as published. Because rows are written in the same
// transaction as the state change they describe, an event can only ever be
// observed after its fact is durable. Redelivery is possible when a stamp
// fails; consumers deduplicate on the event id.
package jobs
