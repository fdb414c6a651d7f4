// Package services contains stateless domain services that need more than
// one aggregate or a persistence lookup to do their work: the shipment and
// tracking number generators.
package services
